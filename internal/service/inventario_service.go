package service

import (
	"context"
	"fmt"

	"github.com/Fran86-design/Proyecto-Olisev/internal/apperr"
	"github.com/Fran86-design/Proyecto-Olisev/internal/dto"
	"github.com/Fran86-design/Proyecto-Olisev/internal/model"
	"github.com/Fran86-design/Proyecto-Olisev/internal/repository"

	"gorm.io/gorm"
)

// InventarioService gestiona el libro de movimientos de stock. Toda
// variación de stock que pase por aquí queda asentada con el stock
// anterior y el nuevo.
type InventarioService interface {
	RegistrarEntrada(ctx context.Context, req dto.MovimientoManualRequest) (*dto.MovimientoResponse, error)
	RegistrarSalida(ctx context.Context, req dto.MovimientoManualRequest) (*dto.MovimientoResponse, error)
	ListarMovimientos(ctx context.Context, filter dto.MovimientoFilter) (*dto.MovimientoListResponse, error)
	// ListarAnios devuelve los años que tienen movimientos asentados.
	ListarAnios(ctx context.Context) ([]int, error)
	// Reconciliar contrasta el stock de cada producto con el neto del
	// libro y marca los que divergen.
	Reconciliar(ctx context.Context) ([]dto.ReconciliacionProducto, error)

	// RegistrarMovimientoTx asienta un movimiento dentro de una
	// transacción abierta por otro servicio (ventas, edición de catálogo).
	RegistrarMovimientoTx(tx *gorm.DB, m *model.MovimientoStock) error
}

type inventarioService struct {
	movRepo  repository.MovimientoStockRepository
	prodRepo repository.ProductoRepository
}

func NewInventarioService(
	movRepo repository.MovimientoStockRepository,
	prodRepo repository.ProductoRepository,
) InventarioService {
	return &inventarioService{movRepo: movRepo, prodRepo: prodRepo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *inventarioService) RegistrarEntrada(ctx context.Context, req dto.MovimientoManualRequest) (*dto.MovimientoResponse, error) {
	return s.registrarManual(ctx, req, model.TipoEntradaManual)
}

func (s *inventarioService) RegistrarSalida(ctx context.Context, req dto.MovimientoManualRequest) (*dto.MovimientoResponse, error) {
	return s.registrarManual(ctx, req, model.TipoSalidaManual)
}

func (s *inventarioService) registrarManual(ctx context.Context, req dto.MovimientoManualRequest, tipo string) (*dto.MovimientoResponse, error) {
	if req.Cantidad <= 0 {
		return nil, apperr.Validacion("la cantidad debe ser mayor que cero")
	}

	var mov model.MovimientoStock
	txErr := runTx(ctx, s.prodRepo.DB(), func(tx *gorm.DB) error {
		if _, err := s.prodRepo.FindByIDTx(tx, req.ProductoID); err != nil {
			return err
		}

		// El asiento toma la transición del propio UPDATE, nunca de una
		// lectura previa que pudo quedar obsoleta bajo concurrencia.
		var nuevo int
		var err error
		if model.EsEntrada(tipo) {
			nuevo, err = s.prodRepo.IncrementarStockTx(tx, req.ProductoID, req.Cantidad)
		} else {
			nuevo, err = s.prodRepo.DescontarStockTx(tx, req.ProductoID, req.Cantidad)
		}
		if err != nil {
			return err
		}

		delta := req.Cantidad
		if !model.EsEntrada(tipo) {
			delta = -req.Cantidad
		}

		mov = model.MovimientoStock{
			ProductoID:    req.ProductoID,
			Tipo:          tipo,
			Cantidad:      req.Cantidad,
			StockAnterior: nuevo - delta,
			StockNuevo:    nuevo,
			Motivo:        req.Motivo,
		}
		return s.movRepo.CreateTx(tx, &mov)
	})
	if txErr != nil {
		return nil, txErr
	}
	return movimientoToResponse(&mov), nil
}

func (s *inventarioService) RegistrarMovimientoTx(tx *gorm.DB, m *model.MovimientoStock) error {
	if !model.TipoValido(m.Tipo) {
		return apperr.Validacion("tipo de movimiento desconocido: %s", m.Tipo)
	}
	return s.movRepo.CreateTx(tx, m)
}

// ListarMovimientos devuelve el libro filtrado y paginado. Un año sin
// movimientos produce una lista vacía, nunca filas inventadas.
func (s *inventarioService) ListarMovimientos(ctx context.Context, filter dto.MovimientoFilter) (*dto.MovimientoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 100
	}
	movimientos, total, err := s.movRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.MovimientoResponse, 0, len(movimientos))
	for i := range movimientos {
		data = append(data, *movimientoToResponse(&movimientos[i]))
	}
	return &dto.MovimientoListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *inventarioService) ListarAnios(ctx context.Context) ([]int, error) {
	return s.movRepo.ListAnios(ctx)
}

// Reconciliar compara el stock materializado con el neto del libro de
// cada producto. La única fuente legítima de divergencia es la bajada
// de stock por edición de catálogo, que no asienta movimiento.
func (s *inventarioService) Reconciliar(ctx context.Context) ([]dto.ReconciliacionProducto, error) {
	productos, err := s.prodRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReconciliacionProducto, 0, len(productos))
	for i := range productos {
		p := &productos[i]
		neto, err := s.movRepo.SumPorProducto(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.ReconciliacionProducto{
			ProductoID: p.ID,
			Nombre:     p.Nombre,
			Stock:      p.Stock,
			NetoLibro:  neto,
			Divergente: p.Stock != neto,
		})
	}
	return out, nil
}

func movimientoToResponse(m *model.MovimientoStock) *dto.MovimientoResponse {
	nombre := ""
	if m.Producto != nil {
		nombre = m.Producto.Nombre
	}
	return &dto.MovimientoResponse{
		ID:             m.ID,
		ProductoID:     m.ProductoID,
		NombreProducto: nombre,
		Tipo:           m.Tipo,
		Cantidad:       m.Cantidad,
		StockAnterior:  m.StockAnterior,
		StockNuevo:     m.StockNuevo,
		Motivo:         m.Motivo,
		Fecha:          m.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func motivoVenta(codigoAnual string) string {
	return fmt.Sprintf("Venta pedido %s", codigoAnual)
}
