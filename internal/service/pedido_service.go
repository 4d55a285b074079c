package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Fran86-design/Proyecto-Olisev/internal/apperr"
	"github.com/Fran86-design/Proyecto-Olisev/internal/dto"
	"github.com/Fran86-design/Proyecto-Olisev/internal/model"
	"github.com/Fran86-design/Proyecto-Olisev/internal/repository"
	"github.com/Fran86-design/Proyecto-Olisev/internal/worker"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// maxReintentosCodigo limita los reintentos de creación cuando el código
// anual choca con el índice único.
const maxReintentosCodigo = 3

type PedidoService interface {
	CrearPedido(ctx context.Context, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error)
	ObtenerPedido(ctx context.Context, id int64) (*dto.PedidoResponse, error)
	ListarPedidos(ctx context.Context, filter dto.PedidoFilter) ([]dto.PedidoResponse, error)
	MarcarEnviado(ctx context.Context, id int64) error
	MarcarPagado(ctx context.Context, id int64) error
	ActualizarDatosCliente(ctx context.Context, id int64, req dto.ActualizarClienteRequest) error
	EliminarPedido(ctx context.Context, id int64) error
}

type pedidoService struct {
	repo          repository.PedidoRepository
	productoRepo  repository.ProductoRepository
	secuenciaRepo repository.SecuenciaAnualRepository
	inventario    InventarioService
	dispatcher    *worker.Dispatcher
}

func NewPedidoService(
	repo repository.PedidoRepository,
	productoRepo repository.ProductoRepository,
	secuenciaRepo repository.SecuenciaAnualRepository,
	inventario InventarioService,
	dispatcher *worker.Dispatcher,
) PedidoService {
	return &pedidoService{
		repo:          repo,
		productoRepo:  productoRepo,
		secuenciaRepo: secuenciaRepo,
		inventario:    inventario,
		dispatcher:    dispatcher,
	}
}

// ── CrearPedido ───────────────────────────────────────────────────────────────
// Creación en dos fases:
//  1. Pre-vuelo fuera de la transacción: resolver cada producto, congelar
//     nombre y precio unitario, acumular el total. Cualquier línea inválida
//     aborta sin tocar nada.
//  2. Transacción ACID: siguiente número de la secuencia anual, insert del
//     pedido con sus líneas, descuento condicional de stock y asiento
//     SALIDA_VENTA por cada línea. Todo confirma o todo revierte.

func (s *pedidoService) CrearPedido(ctx context.Context, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error) {
	type lineaResuelta struct {
		productoID int64
		nombre     string
		precio     decimal.Decimal
		cantidad   int
	}

	// La invariante de líneas no depende de la capa de transporte: el
	// servicio la reafirma aunque el handler ya valide el request.
	if len(req.Detalles) == 0 {
		return nil, apperr.Validacion("el pedido no tiene lineas")
	}

	// 1. Pre-vuelo: resolver productos y congelar precios.
	var resueltas []lineaResuelta
	total := decimal.Zero
	for _, linea := range req.Detalles {
		if linea.Cantidad <= 0 {
			return nil, apperr.Validacion("cantidad invalida para el producto %d", linea.ProductoID)
		}
		p, err := s.productoRepo.FindByID(ctx, linea.ProductoID)
		if err != nil {
			return nil, err
		}
		if p.Stock < linea.Cantidad {
			return nil, apperr.StockInsuficiente("producto %s: stock %d, pedido %d", p.Nombre, p.Stock, linea.Cantidad)
		}
		subtotal := p.Precio.Mul(decimal.NewFromInt(int64(linea.Cantidad)))
		total = total.Add(subtotal)
		resueltas = append(resueltas, lineaResuelta{
			productoID: linea.ProductoID,
			nombre:     p.Nombre,
			precio:     p.Precio,
			cantidad:   linea.Cantidad,
		})
	}

	// 2. Transacción, con reintento acotado si el código anual choca con
	// el índice único.
	var pedido model.Pedido
	var txErr error
	for intento := 0; intento < maxReintentosCodigo; intento++ {
		ahora := time.Now()
		pedido = model.Pedido{
			NombreCliente: req.NombreCliente,
			Direccion:     req.Direccion,
			Email:         req.Email,
			Telefono:      req.Telefono,
			FechaPedido:   ahora,
			Total:         total,
		}

		txErr = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
			n, err := s.secuenciaRepo.SiguienteTx(tx, ahora.Year())
			if err != nil {
				return err
			}
			pedido.CodigoAnual = fmt.Sprintf("%d-%d", ahora.Year(), n)

			for _, r := range resueltas {
				pid := r.productoID
				pedido.Lineas = append(pedido.Lineas, model.LineaPedido{
					ProductoID:     &pid,
					NombreProducto: r.nombre,
					Cantidad:       r.cantidad,
					PrecioUnitario: r.precio,
				})
			}
			if err := s.repo.CreateTx(tx, &pedido); err != nil {
				return err
			}

			// Descuento condicional por línea. El chequeo del pre-vuelo no
			// es autoritativo: la guarda stock >= cantidad dentro de la
			// transacción es la que decide bajo concurrencia.
			for _, r := range resueltas {
				nuevo, err := s.productoRepo.DescontarStockTx(tx, r.productoID, r.cantidad)
				if err != nil {
					return fmt.Errorf("producto %s: %w", r.nombre, err)
				}
				mov := &model.MovimientoStock{
					ProductoID:    r.productoID,
					Tipo:          model.TipoSalidaVenta,
					Cantidad:      r.cantidad,
					StockAnterior: nuevo + r.cantidad,
					StockNuevo:    nuevo,
					Motivo:        motivoVenta(pedido.CodigoAnual),
				}
				if err := s.inventario.RegistrarMovimientoTx(tx, mov); err != nil {
					return err
				}
			}
			return nil
		})

		if txErr == nil {
			break
		}
		if !errors.Is(txErr, gorm.ErrDuplicatedKey) {
			return nil, txErr
		}
		pedido = model.Pedido{}
	}
	if txErr != nil {
		return nil, apperr.Conflicto("no se pudo asignar un código anual tras %d intentos", maxReintentosCodigo)
	}

	// Notificación post-commit, best effort: el pedido ya está confirmado.
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueNotificacion(ctx, map[string]interface{}{
			"evento":       "pedido_creado",
			"pedido_id":    pedido.ID,
			"codigo_anual": pedido.CodigoAnual,
			"email":        pedido.Email,
		})
	}

	return pedidoToResponse(&pedido), nil
}

func (s *pedidoService) ObtenerPedido(ctx context.Context, id int64) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return pedidoToResponse(pedido), nil
}

func (s *pedidoService) ListarPedidos(ctx context.Context, filter dto.PedidoFilter) ([]dto.PedidoResponse, error) {
	pedidos, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PedidoResponse, 0, len(pedidos))
	for i := range pedidos {
		out = append(out, *pedidoToResponse(&pedidos[i]))
	}
	return out, nil
}

// MarcarEnviado y MarcarPagado son idempotentes: repetir la llamada sobre
// un pedido ya marcado responde igual que la primera vez.
func (s *pedidoService) MarcarEnviado(ctx context.Context, id int64) error {
	return s.repo.MarcarEnviado(ctx, id)
}

func (s *pedidoService) MarcarPagado(ctx context.Context, id int64) error {
	return s.repo.MarcarPagado(ctx, id, time.Now())
}

func (s *pedidoService) ActualizarDatosCliente(ctx context.Context, id int64, req dto.ActualizarClienteRequest) error {
	return s.repo.ActualizarCliente(ctx, id, req)
}

// EliminarPedido borra el pedido y sus líneas. No repone stock: el libro
// de movimientos conserva la salida original como hecho histórico.
func (s *pedidoService) EliminarPedido(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func pedidoToResponse(p *model.Pedido) *dto.PedidoResponse {
	detalles := make([]dto.LineaPedidoResponse, 0, len(p.Lineas))
	for _, l := range p.Lineas {
		detalles = append(detalles, dto.LineaPedidoResponse{
			ID:             l.ID,
			ProductoID:     l.ProductoID,
			NombreProducto: l.NombreProducto,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario,
		})
	}
	var fechaPago *string
	if p.FechaPago != nil {
		f := p.FechaPago.Format("2006-01-02T15:04:05Z")
		fechaPago = &f
	}
	return &dto.PedidoResponse{
		ID:            p.ID,
		NombreCliente: p.NombreCliente,
		Direccion:     p.Direccion,
		Email:         p.Email,
		Telefono:      p.Telefono,
		FechaPedido:   p.FechaPedido.Format("2006-01-02T15:04:05Z"),
		Total:         p.Total,
		Enviado:       p.Enviado,
		Pagado:        p.Pagado,
		FechaPago:     fechaPago,
		CodigoAnual:   p.CodigoAnual,
		Detalles:      detalles,
	}
}
