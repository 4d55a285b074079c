package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Fran86-design/Proyecto-Olisev/internal/apperr"
	"github.com/Fran86-design/Proyecto-Olisev/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductoRepository defines the data access contract for catalog products.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id int64) (*model.Producto, error)
	List(ctx context.Context) ([]model.Producto, error)
	ListVisibles(ctx context.Context) ([]model.Producto, error)
	ListBajoStock(ctx context.Context, umbral int) ([]model.Producto, error)
	Delete(ctx context.Context, id int64) error

	// Variantes Tx: el llamador abre la transacción y pasa el tx.
	CreateTx(tx *gorm.DB, p *model.Producto) error
	FindByIDTx(tx *gorm.DB, id int64) (*model.Producto, error)
	// DescontarStockTx resta cantidad de forma condicional y devuelve el
	// stock resultante leído del propio UPDATE, no de una lectura previa.
	// Falla con ErrStockInsuficiente si dejaría el stock en negativo.
	DescontarStockTx(tx *gorm.DB, id int64, cantidad int) (int, error)
	// IncrementarStockTx suma cantidad al stock y devuelve el resultante.
	IncrementarStockTx(tx *gorm.DB, id int64, cantidad int) (int, error)
	// ActualizarTx guarda los campos de catálogo editados (incluido Stock,
	// que el servicio ya pasó por la regla del libro de movimientos).
	ActualizarTx(tx *gorm.DB, p *model.Producto) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) DB() *gorm.DB { return r.db }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return persist(r.db.WithContext(ctx).Create(p).Error)
}

func (r *productoRepo) FindByID(ctx context.Context, id int64) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NoEncontrado("producto %d", id)
	}
	return &p, persist(err)
}

func (r *productoRepo) List(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&productos).Error
	return productos, persist(err)
}

func (r *productoRepo) ListVisibles(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Where("visible = true").Order("nombre ASC").Find(&productos).Error
	return productos, persist(err)
}

func (r *productoRepo) ListBajoStock(ctx context.Context, umbral int) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Where("stock <= ?", umbral).Order("stock ASC").Find(&productos).Error
	return productos, persist(err)
}

func (r *productoRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Producto{}, id)
	if res.Error != nil {
		return persist(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NoEncontrado("producto %d", id)
	}
	return nil
}

func (r *productoRepo) CreateTx(tx *gorm.DB, p *model.Producto) error {
	return persist(tx.Create(p).Error)
}

func (r *productoRepo) FindByIDTx(tx *gorm.DB, id int64) (*model.Producto, error) {
	var p model.Producto
	err := tx.First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NoEncontrado("producto %d", id)
	}
	return &p, persist(err)
}

func (r *productoRepo) DescontarStockTx(tx *gorm.DB, id int64, cantidad int) (int, error) {
	// UPDATE condicional: la guarda stock >= cantidad impide que dos
	// descuentos concurrentes dejen el stock en negativo. RETURNING
	// captura la transición real aunque otra transacción se interponga.
	var p model.Producto
	res := tx.Model(&p).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "stock"}}}).
		Where("id = ? AND stock >= ?", id, cantidad).
		Updates(map[string]interface{}{
			"stock":                     gorm.Expr("stock - ?", cantidad),
			"fecha_actualizacion_stock": time.Now(),
		})
	if res.Error != nil {
		return 0, persist(res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, apperr.StockInsuficiente("producto %d", id)
	}
	return p.Stock, nil
}

func (r *productoRepo) IncrementarStockTx(tx *gorm.DB, id int64, cantidad int) (int, error) {
	var p model.Producto
	res := tx.Model(&p).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "stock"}}}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stock":                     gorm.Expr("stock + ?", cantidad),
			"fecha_actualizacion_stock": time.Now(),
		})
	if res.Error != nil {
		return 0, persist(res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, apperr.NoEncontrado("producto %d", id)
	}
	return p.Stock, nil
}

func (r *productoRepo) ActualizarTx(tx *gorm.DB, p *model.Producto) error {
	return persist(tx.Save(p).Error)
}
