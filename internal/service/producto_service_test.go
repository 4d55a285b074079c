package service

import (
	"context"
	"testing"

	"github.com/Fran86-design/Proyecto-Olisev/internal/apperr"
	"github.com/Fran86-design/Proyecto-Olisev/internal/dto"
	"github.com/Fran86-design/Proyecto-Olisev/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productoFixture struct {
	prodRepo *stubProductoRepo
	movRepo  *stubMovimientoRepo
	svc      ProductoService
}

func newProductoFixture() *productoFixture {
	prodRepo := newStubProductoRepo()
	movRepo := newStubMovimientoRepo()
	inventario := NewInventarioService(movRepo, prodRepo)
	return &productoFixture{
		prodRepo: prodRepo,
		movRepo:  movRepo,
		svc:      NewProductoService(prodRepo, inventario),
	}
}

func requestDesdeProducto(p *dto.ProductoResponse) dto.ActualizarProductoRequest {
	return dto.ActualizarProductoRequest{
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		Categoria:    p.Categoria,
		Visible:      p.Visible,
		Precio:       p.Precio,
		PrecioCompra: p.PrecioCompra,
		Descuento:    p.Descuento,
		Stock:        p.Stock,
	}
}

func TestCrearProducto(t *testing.T) {
	f := newProductoFixture()

	resp, err := f.svc.CrearProducto(context.Background(), dto.CrearProductoRequest{
		Nombre:  "Aceituna manzanilla",
		Precio:  decimal.RequireFromString("3.80"),
		Visible: true,
		Stock:   15,
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, 15, resp.Stock)

	// El stock de alta queda asentado: el libro deriva desde cero.
	movimientos := f.movRepo.porProducto(resp.ID)
	require.Len(t, movimientos, 1)
	assert.Equal(t, model.TipoEntradaManual, movimientos[0].Tipo)
	assert.Equal(t, 15, movimientos[0].Cantidad)
	assert.Equal(t, 0, movimientos[0].StockAnterior)
	assert.Equal(t, 15, movimientos[0].StockNuevo)
}

func TestCrearProducto_SinStockNoAsienta(t *testing.T) {
	f := newProductoFixture()

	resp, err := f.svc.CrearProducto(context.Background(), dto.CrearProductoRequest{
		Nombre: "Aceituna aloreña",
		Precio: decimal.RequireFromString("4.50"),
	})
	require.NoError(t, err)
	assert.Empty(t, f.movRepo.porProducto(resp.ID))
}

func TestActualizarProducto_SubirStockAsientaEntrada(t *testing.T) {
	f := newProductoFixture()
	f.prodRepo.seed(nuevoProducto(1, "Aceite virgen extra", "9.90", 4))

	p, err := f.svc.ObtenerProducto(context.Background(), 1)
	require.NoError(t, err)

	req := requestDesdeProducto(p)
	req.Stock = 10
	actualizado, err := f.svc.ActualizarProducto(context.Background(), 1, req)
	require.NoError(t, err)
	assert.Equal(t, 10, actualizado.Stock)

	movimientos := f.movRepo.porProducto(1)
	require.Len(t, movimientos, 1)
	assert.Equal(t, model.TipoEntradaEdicion, movimientos[0].Tipo)
	assert.Equal(t, 6, movimientos[0].Cantidad)
	assert.Equal(t, 4, movimientos[0].StockAnterior)
	assert.Equal(t, 10, movimientos[0].StockNuevo)
}

func TestActualizarProducto_BajarStockNoAsienta(t *testing.T) {
	f := newProductoFixture()
	f.prodRepo.seed(nuevoProducto(1, "Aceite virgen extra", "9.90", 10))

	p, err := f.svc.ObtenerProducto(context.Background(), 1)
	require.NoError(t, err)

	req := requestDesdeProducto(p)
	req.Stock = 3
	actualizado, err := f.svc.ActualizarProducto(context.Background(), 1, req)
	require.NoError(t, err)
	assert.Equal(t, 3, actualizado.Stock)
	assert.Empty(t, f.movRepo.porProducto(1))
}

func TestActualizarProducto_Inexistente(t *testing.T) {
	f := newProductoFixture()
	_, err := f.svc.ActualizarProducto(context.Background(), 9, dto.ActualizarProductoRequest{
		Nombre: "Fantasma", Precio: decimal.RequireFromString("1.00"),
	})
	assert.ErrorIs(t, err, apperr.ErrNoEncontrado)
}

func TestListarVisibles_FiltraOcultos(t *testing.T) {
	f := newProductoFixture()
	f.prodRepo.seed(nuevoProducto(1, "Visible", "1.00", 1))
	oculto := nuevoProducto(2, "Oculto", "1.00", 1)
	oculto.Visible = false
	f.prodRepo.seed(oculto)

	visibles, err := f.svc.ListarVisibles(context.Background())
	require.NoError(t, err)
	require.Len(t, visibles, 1)
	assert.Equal(t, "Visible", visibles[0].Nombre)
}

func TestEliminarProducto(t *testing.T) {
	f := newProductoFixture()
	f.prodRepo.seed(nuevoProducto(1, "Temporal", "1.00", 0))

	require.NoError(t, f.svc.EliminarProducto(context.Background(), 1))
	err := f.svc.EliminarProducto(context.Background(), 1)
	assert.ErrorIs(t, err, apperr.ErrNoEncontrado)
}
