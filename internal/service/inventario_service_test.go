package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Fran86-design/Proyecto-Olisev/internal/apperr"
	"github.com/Fran86-design/Proyecto-Olisev/internal/dto"
	"github.com/Fran86-design/Proyecto-Olisev/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevoProducto(id int64, nombre string, precio string, stock int) model.Producto {
	return model.Producto{
		ID:      id,
		Nombre:  nombre,
		Visible: true,
		Precio:  decimal.RequireFromString(precio),
		Stock:   stock,
	}
}

func TestRegistrarEntrada_SumaStockYAsienta(t *testing.T) {
	prodRepo := newStubProductoRepo()
	movRepo := newStubMovimientoRepo()
	prodRepo.seed(nuevoProducto(1, "Aceitunas verdes", "3.50", 7))

	svc := NewInventarioService(movRepo, prodRepo)

	resp, err := svc.RegistrarEntrada(context.Background(), dto.MovimientoManualRequest{
		ProductoID: 1, Cantidad: 5, Motivo: "Reposición de campaña",
	})
	require.NoError(t, err)

	assert.Equal(t, model.TipoEntradaManual, resp.Tipo)
	assert.Equal(t, 7, resp.StockAnterior)
	assert.Equal(t, 12, resp.StockNuevo)

	p, err := prodRepo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 12, p.Stock)

	movimientos := movRepo.porProducto(1)
	require.Len(t, movimientos, 1)
	assert.Equal(t, "Reposición de campaña", movimientos[0].Motivo)
}

func TestRegistrarSalida_DescuentaStock(t *testing.T) {
	prodRepo := newStubProductoRepo()
	movRepo := newStubMovimientoRepo()
	prodRepo.seed(nuevoProducto(1, "Aceite picual 5L", "28.00", 10))

	svc := NewInventarioService(movRepo, prodRepo)

	resp, err := svc.RegistrarSalida(context.Background(), dto.MovimientoManualRequest{
		ProductoID: 1, Cantidad: 4, Motivo: "Rotura en almacén",
	})
	require.NoError(t, err)

	assert.Equal(t, model.TipoSalidaManual, resp.Tipo)
	assert.Equal(t, 10, resp.StockAnterior)
	assert.Equal(t, 6, resp.StockNuevo)
	assert.Equal(t, 4, resp.Cantidad)
}

func TestRegistrarSalida_StockInsuficiente(t *testing.T) {
	prodRepo := newStubProductoRepo()
	movRepo := newStubMovimientoRepo()
	prodRepo.seed(nuevoProducto(1, "Vinagre", "2.10", 2))

	svc := NewInventarioService(movRepo, prodRepo)

	_, err := svc.RegistrarSalida(context.Background(), dto.MovimientoManualRequest{
		ProductoID: 1, Cantidad: 3,
	})
	assert.ErrorIs(t, err, apperr.ErrStockInsuficiente)

	// Ni el stock ni el libro cambiaron
	p, _ := prodRepo.FindByID(context.Background(), 1)
	assert.Equal(t, 2, p.Stock)
	assert.Empty(t, movRepo.porProducto(1))
}

func TestRegistrarEntrada_ProductoInexistente(t *testing.T) {
	svc := NewInventarioService(newStubMovimientoRepo(), newStubProductoRepo())

	_, err := svc.RegistrarEntrada(context.Background(), dto.MovimientoManualRequest{
		ProductoID: 99, Cantidad: 1,
	})
	assert.ErrorIs(t, err, apperr.ErrNoEncontrado)
}

func TestRegistrarMovimientoTx_TipoDesconocido(t *testing.T) {
	svc := NewInventarioService(newStubMovimientoRepo(), newStubProductoRepo())

	err := svc.RegistrarMovimientoTx(nil, &model.MovimientoStock{ProductoID: 1, Tipo: "AJUSTE_MAGICO", Cantidad: 1})
	assert.ErrorIs(t, err, apperr.ErrValidacion)
}

func TestListarMovimientos_AnioSinDatosDevuelveVacio(t *testing.T) {
	prodRepo := newStubProductoRepo()
	movRepo := newStubMovimientoRepo()
	prodRepo.seed(nuevoProducto(1, "Aceitunas negras", "4.00", 5))

	svc := NewInventarioService(movRepo, prodRepo)
	_, err := svc.RegistrarEntrada(context.Background(), dto.MovimientoManualRequest{ProductoID: 1, Cantidad: 2})
	require.NoError(t, err)

	resp, err := svc.ListarMovimientos(context.Background(), dto.MovimientoFilter{Anio: 1999})
	require.NoError(t, err)
	assert.Empty(t, resp.Data)
	assert.Zero(t, resp.Total)
}

// El stock materializado debe coincidir con la suma del libro cuando todos
// los cambios pasan por el servicio.
func TestLibro_ReconciliaConStock(t *testing.T) {
	prodRepo := newStubProductoRepo()
	movRepo := newStubMovimientoRepo()
	prodRepo.seed(nuevoProducto(1, "Paté de aceituna", "5.75", 0))

	svc := NewInventarioService(movRepo, prodRepo)
	ctx := context.Background()

	pasos := []struct {
		entrada  bool
		cantidad int
	}{
		{true, 10}, {false, 3}, {true, 4}, {false, 6}, {true, 1},
	}
	for _, paso := range pasos {
		var err error
		if paso.entrada {
			_, err = svc.RegistrarEntrada(ctx, dto.MovimientoManualRequest{ProductoID: 1, Cantidad: paso.cantidad})
		} else {
			_, err = svc.RegistrarSalida(ctx, dto.MovimientoManualRequest{ProductoID: 1, Cantidad: paso.cantidad})
		}
		require.NoError(t, err)
	}

	p, err := prodRepo.FindByID(ctx, 1)
	require.NoError(t, err)
	suma, err := movRepo.SumPorProducto(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, p.Stock)
	assert.Equal(t, p.Stock, suma)
}

// Cada asiento toma la transición del propio UPDATE: bajo concurrencia
// las transiciones forman una cadena sin repetidos, nunca dos asientos
// con la misma pareja anterior/nuevo.
func TestRegistrarSalida_TransicionesEncadenadasBajoConcurrencia(t *testing.T) {
	prodRepo := newStubProductoRepo()
	movRepo := newStubMovimientoRepo()
	prodRepo.seed(nuevoProducto(1, "Aceite arbequina 1L", "12.50", 40))

	svc := NewInventarioService(movRepo, prodRepo)

	const salidas = 8
	var wg sync.WaitGroup
	for i := 0; i < salidas; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RegistrarSalida(context.Background(), dto.MovimientoManualRequest{
				ProductoID: 1, Cantidad: 5,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	p, err := prodRepo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock)

	vistos := make(map[int]bool)
	for _, m := range movRepo.porProducto(1) {
		assert.Equal(t, m.StockAnterior-m.Cantidad, m.StockNuevo)
		assert.False(t, vistos[m.StockNuevo], "transición repetida hacia %d", m.StockNuevo)
		vistos[m.StockNuevo] = true
	}
	assert.Len(t, vistos, salidas)
}

// La reconciliación señala la única fuente legítima de divergencia: la
// bajada de stock por edición de catálogo, que no asienta movimiento.
func TestReconciliar_DetectaBajadaPorEdicion(t *testing.T) {
	prodRepo := newStubProductoRepo()
	movRepo := newStubMovimientoRepo()
	inv := NewInventarioService(movRepo, prodRepo)
	prods := NewProductoService(prodRepo, inv)
	ctx := context.Background()

	integro, err := prods.CrearProducto(ctx, dto.CrearProductoRequest{
		Nombre: "Olivada", Precio: decimal.RequireFromString("4.20"), Stock: 8,
	})
	require.NoError(t, err)
	editado, err := prods.CrearProducto(ctx, dto.CrearProductoRequest{
		Nombre: "Aceituna gordal", Precio: decimal.RequireFromString("5.10"), Stock: 10,
	})
	require.NoError(t, err)

	req := requestDesdeProducto(editado)
	req.Stock = 3
	_, err = prods.ActualizarProducto(ctx, editado.ID, req)
	require.NoError(t, err)

	informe, err := inv.Reconciliar(ctx)
	require.NoError(t, err)
	porID := make(map[int64]dto.ReconciliacionProducto, len(informe))
	for _, r := range informe {
		porID[r.ProductoID] = r
	}

	assert.False(t, porID[integro.ID].Divergente)
	assert.Equal(t, 8, porID[integro.ID].NetoLibro)

	div := porID[editado.ID]
	assert.True(t, div.Divergente)
	assert.Equal(t, 3, div.Stock)
	assert.Equal(t, 10, div.NetoLibro)
}

func TestListarAnios_DelMasRecienteAlMasAntiguo(t *testing.T) {
	movRepo := newStubMovimientoRepo()
	svc := NewInventarioService(movRepo, newStubProductoRepo())

	require.NoError(t, movRepo.CreateTx(nil, &model.MovimientoStock{
		ProductoID: 1, Tipo: model.TipoEntradaManual, Cantidad: 1,
		CreatedAt: time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, movRepo.CreateTx(nil, &model.MovimientoStock{
		ProductoID: 1, Tipo: model.TipoSalidaManual, Cantidad: 1,
		CreatedAt: time.Date(2026, time.January, 9, 0, 0, 0, 0, time.UTC),
	}))

	anios, err := svc.ListarAnios(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{2026, 2024}, anios)
}
