package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Fran86-design/Proyecto-Olisev/internal/apperr"
	"github.com/Fran86-design/Proyecto-Olisev/internal/dto"
	"github.com/Fran86-design/Proyecto-Olisev/internal/model"
	"github.com/Fran86-design/Proyecto-Olisev/internal/repository"

	"gorm.io/gorm"
)

// ── In-memory repository stubs ────────────────────────────────────────────────
// The services run their transaction closures with a nil *gorm.DB (runTx
// unit test mode), so the stubs ignore the tx argument.

type stubProductoRepo struct {
	mu        sync.Mutex
	productos map[int64]*model.Producto
	nextID    int64
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[int64]*model.Producto), nextID: 1}
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID
	r.nextID++
	copia := *p
	r.productos[p.ID] = &copia
	return nil
}

func (r *stubProductoRepo) CreateTx(_ *gorm.DB, p *model.Producto) error {
	return r.Create(context.Background(), p)
}

func (r *stubProductoRepo) FindByID(_ context.Context, id int64) (*model.Producto, error) {
	return r.find(id)
}

func (r *stubProductoRepo) FindByIDTx(_ *gorm.DB, id int64) (*model.Producto, error) {
	return r.find(id)
}

func (r *stubProductoRepo) find(id int64) (*model.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.productos[id]
	if !ok {
		return nil, apperr.NoEncontrado("producto %d", id)
	}
	copia := *p
	return &copia, nil
}

func (r *stubProductoRepo) List(_ context.Context) ([]model.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductoRepo) ListVisibles(_ context.Context) ([]model.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Producto
	for _, p := range r.productos {
		if p.Visible {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) ListBajoStock(_ context.Context, umbral int) ([]model.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Producto
	for _, p := range r.productos {
		if p.Stock <= umbral {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.productos[id]; !ok {
		return apperr.NoEncontrado("producto %d", id)
	}
	delete(r.productos, id)
	return nil
}

func (r *stubProductoRepo) DescontarStockTx(_ *gorm.DB, id int64, cantidad int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.productos[id]
	if !ok {
		return 0, apperr.NoEncontrado("producto %d", id)
	}
	if p.Stock < cantidad {
		return 0, apperr.StockInsuficiente("producto %d", id)
	}
	p.Stock -= cantidad
	ahora := time.Now()
	p.FechaActualizacionStock = &ahora
	return p.Stock, nil
}

func (r *stubProductoRepo) IncrementarStockTx(_ *gorm.DB, id int64, cantidad int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.productos[id]
	if !ok {
		return 0, apperr.NoEncontrado("producto %d", id)
	}
	p.Stock += cantidad
	ahora := time.Now()
	p.FechaActualizacionStock = &ahora
	return p.Stock, nil
}

func (r *stubProductoRepo) ActualizarTx(_ *gorm.DB, p *model.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.productos[p.ID]; !ok {
		return apperr.NoEncontrado("producto %d", p.ID)
	}
	copia := *p
	r.productos[p.ID] = &copia
	return nil
}

// seed inserta un producto directamente, sin pasar por Create.
func (r *stubProductoRepo) seed(p model.Producto) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}
	r.productos[p.ID] = &p
}

type stubMovimientoRepo struct {
	mu          sync.Mutex
	movimientos []model.MovimientoStock
	nextID      int64
}

var _ repository.MovimientoStockRepository = (*stubMovimientoRepo)(nil)

func newStubMovimientoRepo() *stubMovimientoRepo {
	return &stubMovimientoRepo{nextID: 1}
}

func (r *stubMovimientoRepo) CreateTx(_ *gorm.DB, m *model.MovimientoStock) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = r.nextID
	r.nextID++
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *stubMovimientoRepo) List(_ context.Context, filter dto.MovimientoFilter) ([]model.MovimientoStock, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.MovimientoStock
	for _, m := range r.movimientos {
		if filter.ProductoID != nil && m.ProductoID != *filter.ProductoID {
			continue
		}
		if filter.Tipo != "" && m.Tipo != filter.Tipo {
			continue
		}
		if filter.Anio != 0 && m.CreatedAt.Year() != filter.Anio {
			continue
		}
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

func (r *stubMovimientoRepo) SumPorProducto(_ context.Context, productoID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	suma := 0
	for _, m := range r.movimientos {
		if m.ProductoID != productoID {
			continue
		}
		if model.EsEntrada(m.Tipo) {
			suma += m.Cantidad
		} else {
			suma -= m.Cantidad
		}
	}
	return suma, nil
}

func (r *stubMovimientoRepo) ListAnios(_ context.Context) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	vistos := make(map[int]bool)
	var anios []int
	for _, m := range r.movimientos {
		a := m.CreatedAt.Year()
		if !vistos[a] {
			vistos[a] = true
			anios = append(anios, a)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(anios)))
	return anios, nil
}

func (r *stubMovimientoRepo) porProducto(productoID int64) []model.MovimientoStock {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.MovimientoStock
	for _, m := range r.movimientos {
		if m.ProductoID == productoID {
			out = append(out, m)
		}
	}
	return out
}

type stubPedidoRepo struct {
	mu      sync.Mutex
	pedidos map[int64]*model.Pedido
	nextID  int64
}

var _ repository.PedidoRepository = (*stubPedidoRepo)(nil)

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{pedidos: make(map[int64]*model.Pedido), nextID: 1}
}

func (r *stubPedidoRepo) DB() *gorm.DB { return nil }

func (r *stubPedidoRepo) CreateTx(_ *gorm.DB, p *model.Pedido) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existente := range r.pedidos {
		if existente.CodigoAnual == p.CodigoAnual {
			return gorm.ErrDuplicatedKey
		}
	}
	p.ID = r.nextID
	r.nextID++
	for i := range p.Lineas {
		p.Lineas[i].ID = int64(i + 1)
		p.Lineas[i].PedidoID = p.ID
	}
	copia := *p
	r.pedidos[p.ID] = &copia
	return nil
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id int64) (*model.Pedido, error) {
	return r.find(id)
}

func (r *stubPedidoRepo) FindByIDTx(_ *gorm.DB, id int64) (*model.Pedido, error) {
	return r.find(id)
}

func (r *stubPedidoRepo) find(id int64) (*model.Pedido, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pedidos[id]
	if !ok {
		return nil, apperr.NoEncontrado("pedido %d", id)
	}
	copia := *p
	return &copia, nil
}

func (r *stubPedidoRepo) List(_ context.Context, filter dto.PedidoFilter) ([]model.Pedido, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Pedido
	for _, p := range r.pedidos {
		if filter.Enviado != nil && p.Enviado != *filter.Enviado {
			continue
		}
		if filter.Email != "" && p.Email != filter.Email {
			continue
		}
		if filter.Anio != 0 && p.FechaPedido.Year() != filter.Anio {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPedidoRepo) MarcarEnviado(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pedidos[id]
	if !ok {
		return apperr.NoEncontrado("pedido %d", id)
	}
	p.Enviado = true
	return nil
}

func (r *stubPedidoRepo) MarcarPagado(_ context.Context, id int64, fechaPago time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pedidos[id]
	if !ok {
		return apperr.NoEncontrado("pedido %d", id)
	}
	p.Pagado = true
	p.FechaPago = &fechaPago
	return nil
}

func (r *stubPedidoRepo) ActualizarCliente(_ context.Context, id int64, req dto.ActualizarClienteRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pedidos[id]
	if !ok {
		return apperr.NoEncontrado("pedido %d", id)
	}
	p.NombreCliente = req.NombreCliente
	p.Direccion = req.Direccion
	p.Email = req.Email
	p.Telefono = req.Telefono
	return nil
}

func (r *stubPedidoRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pedidos[id]; !ok {
		return apperr.NoEncontrado("pedido %d", id)
	}
	delete(r.pedidos, id)
	return nil
}

type stubFacturaRepo struct {
	mu       sync.Mutex
	facturas map[int64]*model.Factura
	nextID   int64
}

var _ repository.FacturaRepository = (*stubFacturaRepo)(nil)

func newStubFacturaRepo() *stubFacturaRepo {
	return &stubFacturaRepo{facturas: make(map[int64]*model.Factura), nextID: 1}
}

func (r *stubFacturaRepo) DB() *gorm.DB { return nil }

func (r *stubFacturaRepo) CreateTx(_ *gorm.DB, f *model.Factura) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existente := range r.facturas {
		if existente.PedidoID == f.PedidoID {
			return gorm.ErrDuplicatedKey
		}
	}
	f.ID = r.nextID
	r.nextID++
	copia := *f
	r.facturas[f.ID] = &copia
	return nil
}

func (r *stubFacturaRepo) FindByID(_ context.Context, id int64) (*model.Factura, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.facturas[id]
	if !ok {
		return nil, apperr.NoEncontrado("factura %d", id)
	}
	copia := *f
	return &copia, nil
}

func (r *stubFacturaRepo) FindByPedidoID(_ context.Context, pedidoID int64) (*model.Factura, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.facturas {
		if f.PedidoID == pedidoID {
			copia := *f
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *stubFacturaRepo) List(_ context.Context) ([]model.Factura, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Factura, 0, len(r.facturas))
	for _, f := range r.facturas {
		out = append(out, *f)
	}
	return out, nil
}

func (r *stubFacturaRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.facturas[id]; !ok {
		return apperr.NoEncontrado("factura %d", id)
	}
	delete(r.facturas, id)
	return nil
}

type stubSecuenciaRepo struct {
	mu         sync.Mutex
	contadores map[int]int64
}

var _ repository.SecuenciaAnualRepository = (*stubSecuenciaRepo)(nil)

func newStubSecuenciaRepo() *stubSecuenciaRepo {
	return &stubSecuenciaRepo{contadores: make(map[int]int64)}
}

func (r *stubSecuenciaRepo) SiguienteTx(_ *gorm.DB, anio int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contadores[anio]++
	return r.contadores[anio], nil
}

type stubAceitunaRepo struct {
	mu       sync.Mutex
	entradas map[int64]*model.EntradaAceituna
	nextID   int64
}

var _ repository.EntradaAceitunaRepository = (*stubAceitunaRepo)(nil)

func newStubAceitunaRepo() *stubAceitunaRepo {
	return &stubAceitunaRepo{entradas: make(map[int64]*model.EntradaAceituna), nextID: 1}
}

func (r *stubAceitunaRepo) Create(_ context.Context, e *model.EntradaAceituna) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = r.nextID
	r.nextID++
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	copia := *e
	r.entradas[e.ID] = &copia
	return nil
}

func (r *stubAceitunaRepo) FindByID(_ context.Context, id int64) (*model.EntradaAceituna, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entradas[id]
	if !ok {
		return nil, apperr.NoEncontrado("entrada de aceituna %d", id)
	}
	copia := *e
	return &copia, nil
}

func (r *stubAceitunaRepo) List(_ context.Context) ([]model.EntradaAceituna, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.EntradaAceituna, 0, len(r.entradas))
	for _, e := range r.entradas {
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubAceitunaRepo) ListPorCliente(_ context.Context, email string) ([]model.EntradaAceituna, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.EntradaAceituna
	for _, e := range r.entradas {
		if e.EmailCliente == email {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *stubAceitunaRepo) ListPorCampana(_ context.Context, campana string) ([]model.EntradaAceituna, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.EntradaAceituna
	for _, e := range r.entradas {
		if e.Campana == campana {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *stubAceitunaRepo) Campanias(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	vistas := make(map[string]bool)
	var out []string
	for _, e := range r.entradas {
		if !vistas[e.Campana] {
			vistas[e.Campana] = true
			out = append(out, e.Campana)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out, nil
}

func (r *stubAceitunaRepo) Actualizar(_ context.Context, e *model.EntradaAceituna) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entradas[e.ID]; !ok {
		return apperr.NoEncontrado("entrada de aceituna %d", e.ID)
	}
	copia := *e
	r.entradas[e.ID] = &copia
	return nil
}

func (r *stubAceitunaRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entradas[id]; !ok {
		return apperr.NoEncontrado("entrada de aceituna %d", id)
	}
	delete(r.entradas, id)
	return nil
}
