package router

import (
	"time"

	"github.com/Fran86-design/Proyecto-Olisev/internal/config"
	"github.com/Fran86-design/Proyecto-Olisev/internal/handler"
	"github.com/Fran86-design/Proyecto-Olisev/internal/middleware"
	"github.com/Fran86-design/Proyecto-Olisev/internal/repository"
	"github.com/Fran86-design/Proyecto-Olisev/internal/service"
	"github.com/Fran86-design/Proyecto-Olisev/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	productoRepo := repository.NewProductoRepository(db)
	movimientoRepo := repository.NewMovimientoStockRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	facturaRepo := repository.NewFacturaRepository(db)
	aceitunaRepo := repository.NewEntradaAceitunaRepository(db)
	secuenciaRepo := repository.NewSecuenciaAnualRepository(db)
	reporteRepo := repository.NewReporteRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	dispatcher := worker.NewDispatcher(rdb)

	inventarioSvc := service.NewInventarioService(movimientoRepo, productoRepo)
	productoSvc := service.NewProductoService(productoRepo, inventarioSvc)
	pedidoSvc := service.NewPedidoService(pedidoRepo, productoRepo, secuenciaRepo, inventarioSvc, dispatcher)
	facturacionSvc := service.NewFacturacionService(facturaRepo, pedidoRepo)
	reporteSvc := service.NewReporteService(reporteRepo, productoRepo, cfg.UmbralBajoStock)
	aceitunaSvc := service.NewAceitunaService(aceitunaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productosH := handler.NewProductosHandler(productoSvc)
	inventarioH := handler.NewInventarioHandler(inventarioSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	facturasH := handler.NewFacturasHandler(facturacionSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)
	aceitunasH := handler.NewAceitunasHandler(aceitunaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")
	{
		prods := api.Group("/productos")
		{
			prods.POST("", productosH.Crear)
			prods.GET("", productosH.Listar)
			prods.GET("/visibles", productosH.ListarVisibles)
			prods.GET("/:id", productosH.Obtener)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Eliminar)
		}

		// El panel de inventario lista el catálogo completo y edita
		// productos con la regla del libro de movimientos.
		inv := api.Group("/inventario")
		{
			inv.GET("", productosH.Listar)
			inv.PUT("/productos/:id", productosH.Actualizar)
			inv.POST("/entrada", inventarioH.RegistrarEntrada)
			inv.POST("/salida", inventarioH.RegistrarSalida)
			inv.GET("/movimientos", inventarioH.ListarMovimientos)
			inv.GET("/movimientos/anios", inventarioH.ListarAnios)
			inv.GET("/movimientos/anio/:anio", inventarioH.ListarMovimientosPorAnio)
			inv.GET("/reconciliacion", inventarioH.Reconciliar)
		}

		pedidos := api.Group("/pedidos")
		{
			pedidos.POST("", pedidosH.Crear)
			pedidos.GET("", pedidosH.Listar)
			pedidos.GET("/enviados", pedidosH.ListarEnviados)
			pedidos.GET("/no-enviados", pedidosH.ListarNoEnviados)
			pedidos.GET("/anio/:anio", pedidosH.ListarPorAnio)
			pedidos.GET("/cliente", pedidosH.ListarPorCliente)
			pedidos.GET("/:id", pedidosH.Obtener)
			pedidos.PUT("/:id/enviar", pedidosH.MarcarEnviado)
			pedidos.PUT("/:id/pagar", pedidosH.MarcarPagado)
			pedidos.PUT("/:id", pedidosH.ActualizarCliente)
			pedidos.DELETE("/:id", pedidosH.Eliminar)
		}

		aceitunas := api.Group("/aceitunas")
		{
			aceitunas.POST("", aceitunasH.Registrar)
			aceitunas.GET("", aceitunasH.Listar)
			aceitunas.GET("/cliente", aceitunasH.ListarPorCliente)
			aceitunas.GET("/campana/:campana", aceitunasH.ListarPorCampana)
			aceitunas.GET("/campanias", aceitunasH.ListarCampanias)
			aceitunas.PUT("/:id", aceitunasH.Actualizar)
			aceitunas.DELETE("/:id", aceitunasH.Eliminar)
		}

		facturas := api.Group("/facturas")
		{
			facturas.POST("/desde-pedido/:id", facturasH.Generar)
			facturas.GET("", facturasH.Listar)
			facturas.GET("/:id", facturasH.Obtener)
			facturas.DELETE("/:id", facturasH.Eliminar)
		}

		reportes := api.Group("/reportes")
		{
			reportes.GET("/ventas-por-fecha", reportesH.VentasPorFecha)
			reportes.GET("/ventas-del-dia", reportesH.VentasDelDia)
			reportes.GET("/ventas-por-mes", reportesH.VentasPorMes)
			reportes.GET("/ventas-por-anio", reportesH.VentasPorAnio)
			reportes.GET("/productos-vendidos-hoy", reportesH.ProductosVendidosHoy)
			reportes.GET("/productos-vendidos-mes", reportesH.ProductosVendidosMes)
			reportes.GET("/productos-vendidos-anio", reportesH.ProductosVendidosAnio)
			reportes.GET("/bajo-stock", reportesH.ProductosBajoStock)
		}
	}

	return r
}
