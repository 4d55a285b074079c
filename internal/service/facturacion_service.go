package service

import (
	"context"
	"errors"
	"time"

	"github.com/Fran86-design/Proyecto-Olisev/internal/dto"
	"github.com/Fran86-design/Proyecto-Olisev/internal/model"
	"github.com/Fran86-design/Proyecto-Olisev/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Parámetros fiscales fijos de la operación: IVA general del 21% y coste
// de envío plano. Se copian a cada factura para que el histórico no
// cambie si algún día cambian los valores.
var (
	tipoIVA    = decimal.RequireFromString("0.21")
	costeEnvio = decimal.RequireFromString("2.50")
)

type FacturacionService interface {
	// GenerarFactura es idempotente: si el pedido ya tiene factura,
	// devuelve la existente sin crear otra.
	GenerarFactura(ctx context.Context, pedidoID int64) (*dto.FacturaResponse, error)
	ObtenerFactura(ctx context.Context, id int64) (*dto.FacturaResponse, error)
	ListarFacturas(ctx context.Context) ([]dto.FacturaResponse, error)
	EliminarFactura(ctx context.Context, id int64) error
}

type facturacionService struct {
	repo       repository.FacturaRepository
	pedidoRepo repository.PedidoRepository
}

func NewFacturacionService(
	repo repository.FacturaRepository,
	pedidoRepo repository.PedidoRepository,
) FacturacionService {
	return &facturacionService{repo: repo, pedidoRepo: pedidoRepo}
}

func (s *facturacionService) GenerarFactura(ctx context.Context, pedidoID int64) (*dto.FacturaResponse, error) {
	if existente, err := s.repo.FindByPedidoID(ctx, pedidoID); err != nil {
		return nil, err
	} else if existente != nil {
		return facturaToResponse(existente), nil
	}

	pedido, err := s.pedidoRepo.FindByID(ctx, pedidoID)
	if err != nil {
		return nil, err
	}

	total := pedido.Total
	totalConIva := total.Add(total.Mul(tipoIVA)).Add(costeEnvio)

	factura := model.Factura{
		Fecha:       time.Now(),
		PedidoID:    pedido.ID,
		Total:       total,
		IVA:         tipoIVA,
		CosteEnvio:  costeEnvio,
		TotalConIva: totalConIva,
		Direccion:   pedido.Direccion,
	}
	for _, l := range pedido.Lineas {
		factura.Lineas = append(factura.Lineas, model.LineaFactura{
			NombreProducto: l.NombreProducto,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.CreateTx(tx, &factura)
	})
	if txErr != nil {
		// Carrera entre dos generaciones del mismo pedido: el índice único
		// sobre pedido_id deja ganar a una sola; la perdedora devuelve la
		// factura ya creada.
		if errors.Is(txErr, gorm.ErrDuplicatedKey) {
			existente, err := s.repo.FindByPedidoID(ctx, pedidoID)
			if err == nil && existente != nil {
				return facturaToResponse(existente), nil
			}
		}
		return nil, txErr
	}
	return facturaToResponse(&factura), nil
}

func (s *facturacionService) ObtenerFactura(ctx context.Context, id int64) (*dto.FacturaResponse, error) {
	factura, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return facturaToResponse(factura), nil
}

func (s *facturacionService) ListarFacturas(ctx context.Context) ([]dto.FacturaResponse, error) {
	facturas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FacturaResponse, 0, len(facturas))
	for i := range facturas {
		out = append(out, *facturaToResponse(&facturas[i]))
	}
	return out, nil
}

func (s *facturacionService) EliminarFactura(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func facturaToResponse(f *model.Factura) *dto.FacturaResponse {
	lineas := make([]dto.LineaFacturaResponse, 0, len(f.Lineas))
	for _, l := range f.Lineas {
		lineas = append(lineas, dto.LineaFacturaResponse{
			NombreProducto: l.NombreProducto,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario,
		})
	}
	return &dto.FacturaResponse{
		ID:          f.ID,
		Fecha:       f.Fecha.Format("2006-01-02T15:04:05Z"),
		PedidoID:    f.PedidoID,
		Total:       f.Total,
		IVA:         f.IVA,
		CosteEnvio:  f.CosteEnvio,
		TotalConIva: f.TotalConIva,
		Direccion:   f.Direccion,
		Lineas:      lineas,
	}
}
