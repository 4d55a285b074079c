package service

import (
	"context"

	"github.com/Fran86-design/Proyecto-Olisev/internal/dto"
	"github.com/Fran86-design/Proyecto-Olisev/internal/model"
	"github.com/Fran86-design/Proyecto-Olisev/internal/repository"

	"gorm.io/gorm"
)

type ProductoService interface {
	CrearProducto(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ObtenerProducto(ctx context.Context, id int64) (*dto.ProductoResponse, error)
	ListarProductos(ctx context.Context) ([]dto.ProductoResponse, error)
	ListarVisibles(ctx context.Context) ([]dto.ProductoResponse, error)
	ActualizarProducto(ctx context.Context, id int64, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	EliminarProducto(ctx context.Context, id int64) error
}

type productoService struct {
	repo       repository.ProductoRepository
	inventario InventarioService
}

func NewProductoService(repo repository.ProductoRepository, inventario InventarioService) ProductoService {
	return &productoService{repo: repo, inventario: inventario}
}

// CrearProducto da de alta el producto y, si nace con stock, asienta la
// entrada inicial. Así el libro deriva el stock completo desde cero.
func (s *productoService) CrearProducto(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	p := model.Producto{
		Nombre:       req.Nombre,
		Descripcion:  req.Descripcion,
		Categoria:    req.Categoria,
		Visible:      req.Visible,
		Precio:       req.Precio,
		PrecioCompra: req.PrecioCompra,
		Descuento:    req.Descuento,
		Stock:        req.Stock,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, &p); err != nil {
			return err
		}
		if p.Stock == 0 {
			return nil
		}
		mov := &model.MovimientoStock{
			ProductoID:    p.ID,
			Tipo:          model.TipoEntradaManual,
			Cantidad:      p.Stock,
			StockAnterior: 0,
			StockNuevo:    p.Stock,
			Motivo:        "Stock inicial de alta",
		}
		return s.inventario.RegistrarMovimientoTx(tx, mov)
	})
	if txErr != nil {
		return nil, txErr
	}
	return productoToResponse(&p), nil
}

func (s *productoService) ObtenerProducto(ctx context.Context, id int64) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return productoToResponse(p), nil
}

func (s *productoService) ListarProductos(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return productosToResponse(productos), nil
}

func (s *productoService) ListarVisibles(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.ListVisibles(ctx)
	if err != nil {
		return nil, err
	}
	return productosToResponse(productos), nil
}

// ActualizarProducto reemplaza los campos editables del producto. El
// stock sigue la regla del libro: si sube, la diferencia se asienta como
// ENTRADA_EDICION; si baja, se fija el valor sin asiento.
func (s *productoService) ActualizarProducto(ctx context.Context, id int64, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	var actualizado model.Producto
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		p, err := s.repo.FindByIDTx(tx, id)
		if err != nil {
			return err
		}

		stockAntes := p.Stock
		p.Nombre = req.Nombre
		p.Descripcion = req.Descripcion
		p.Categoria = req.Categoria
		p.Visible = req.Visible
		p.Precio = req.Precio
		p.PrecioCompra = req.PrecioCompra
		p.Descuento = req.Descuento
		p.Stock = req.Stock

		if err := s.repo.ActualizarTx(tx, p); err != nil {
			return err
		}

		if req.Stock > stockAntes {
			mov := &model.MovimientoStock{
				ProductoID:    p.ID,
				Tipo:          model.TipoEntradaEdicion,
				Cantidad:      req.Stock - stockAntes,
				StockAnterior: stockAntes,
				StockNuevo:    req.Stock,
				Motivo:        "Ajuste por edición de producto",
			}
			if err := s.inventario.RegistrarMovimientoTx(tx, mov); err != nil {
				return err
			}
		}

		actualizado = *p
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return productoToResponse(&actualizado), nil
}

func (s *productoService) EliminarProducto(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func productosToResponse(productos []model.Producto) []dto.ProductoResponse {
	out := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		out = append(out, *productoToResponse(&productos[i]))
	}
	return out
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	var fechaStock *string
	if p.FechaActualizacionStock != nil {
		f := p.FechaActualizacionStock.Format("2006-01-02T15:04:05Z")
		fechaStock = &f
	}
	return &dto.ProductoResponse{
		ID:                      p.ID,
		Nombre:                  p.Nombre,
		Descripcion:             p.Descripcion,
		Categoria:               p.Categoria,
		Visible:                 p.Visible,
		Precio:                  p.Precio,
		PrecioCompra:            p.PrecioCompra,
		Descuento:               p.Descuento,
		Stock:                   p.Stock,
		FechaActualizacionStock: fechaStock,
	}
}
