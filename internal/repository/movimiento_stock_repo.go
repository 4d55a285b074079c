package repository

import (
	"context"
	"time"

	"github.com/Fran86-design/Proyecto-Olisev/internal/dto"
	"github.com/Fran86-design/Proyecto-Olisev/internal/model"

	"gorm.io/gorm"
)

type MovimientoStockRepository interface {
	// CreateTx inserta la fila del libro dentro de la transacción del
	// llamador: el asiento y el update de stock confirman juntos.
	CreateTx(tx *gorm.DB, m *model.MovimientoStock) error
	List(ctx context.Context, filter dto.MovimientoFilter) ([]model.MovimientoStock, int64, error)
	// SumPorProducto devuelve Σ entradas − Σ salidas del libro, para
	// reconciliar el stock materializado.
	SumPorProducto(ctx context.Context, productoID int64) (int, error)
	// ListAnios devuelve los años con movimientos, del más reciente al
	// más antiguo. Sin movimientos, lista vacía.
	ListAnios(ctx context.Context) ([]int, error)
}

type movimientoStockRepo struct{ db *gorm.DB }

func NewMovimientoStockRepository(db *gorm.DB) MovimientoStockRepository {
	return &movimientoStockRepo{db: db}
}

func (r *movimientoStockRepo) CreateTx(tx *gorm.DB, m *model.MovimientoStock) error {
	return persist(tx.Create(m).Error)
}

// List devuelve movimientos del más reciente al más antiguo, paginados.
func (r *movimientoStockRepo) List(ctx context.Context, filter dto.MovimientoFilter) ([]model.MovimientoStock, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.MovimientoStock{}).Preload("Producto")

	if filter.ProductoID != nil {
		q = q.Where("producto_id = ?", *filter.ProductoID)
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}
	if filter.Anio != 0 {
		inicio := time.Date(filter.Anio, time.January, 1, 0, 0, 0, 0, time.UTC)
		fin := inicio.AddDate(1, 0, 0)
		q = q.Where("created_at >= ? AND created_at < ?", inicio, fin)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, persist(err)
	}

	page := filter.Page
	limit := filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 500 {
		limit = 100
	}
	offset := (page - 1) * limit

	var movimientos []model.MovimientoStock
	err := q.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&movimientos).Error
	return movimientos, total, persist(err)
}

func (r *movimientoStockRepo) SumPorProducto(ctx context.Context, productoID int64) (int, error) {
	var suma *int
	err := r.db.WithContext(ctx).Model(&model.MovimientoStock{}).
		Select("SUM(CASE WHEN tipo IN (?, ?) THEN cantidad ELSE -cantidad END)",
			model.TipoEntradaManual, model.TipoEntradaEdicion).
		Where("producto_id = ?", productoID).
		Scan(&suma).Error
	if err != nil || suma == nil {
		return 0, persist(err)
	}
	return *suma, nil
}

func (r *movimientoStockRepo) ListAnios(ctx context.Context) ([]int, error) {
	var anios []int
	err := r.db.WithContext(ctx).Model(&model.MovimientoStock{}).
		Select("DISTINCT EXTRACT(YEAR FROM created_at)::int AS anio").
		Order("anio DESC").
		Scan(&anios).Error
	return anios, persist(err)
}
