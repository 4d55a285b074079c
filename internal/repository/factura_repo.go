package repository

import (
	"context"
	"errors"

	"github.com/Fran86-design/Proyecto-Olisev/internal/apperr"
	"github.com/Fran86-design/Proyecto-Olisev/internal/model"

	"gorm.io/gorm"
)

type FacturaRepository interface {
	CreateTx(tx *gorm.DB, f *model.Factura) error
	FindByID(ctx context.Context, id int64) (*model.Factura, error)
	// FindByPedidoID devuelve nil, nil si el pedido no tiene factura.
	FindByPedidoID(ctx context.Context, pedidoID int64) (*model.Factura, error)
	List(ctx context.Context) ([]model.Factura, error)
	Delete(ctx context.Context, id int64) error
	DB() *gorm.DB
}

type facturaRepo struct{ db *gorm.DB }

func NewFacturaRepository(db *gorm.DB) FacturaRepository { return &facturaRepo{db: db} }

func (r *facturaRepo) DB() *gorm.DB { return r.db }

func (r *facturaRepo) CreateTx(tx *gorm.DB, f *model.Factura) error {
	return persist(tx.Create(f).Error)
}

func (r *facturaRepo) FindByID(ctx context.Context, id int64) (*model.Factura, error) {
	var f model.Factura
	err := r.db.WithContext(ctx).Preload("Lineas").First(&f, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NoEncontrado("factura %d", id)
	}
	return &f, persist(err)
}

func (r *facturaRepo) FindByPedidoID(ctx context.Context, pedidoID int64) (*model.Factura, error) {
	var f model.Factura
	err := r.db.WithContext(ctx).Preload("Lineas").Where("pedido_id = ?", pedidoID).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, persist(err)
	}
	return &f, nil
}

func (r *facturaRepo) List(ctx context.Context) ([]model.Factura, error) {
	var facturas []model.Factura
	err := r.db.WithContext(ctx).Preload("Lineas").Order("fecha DESC, id DESC").Find(&facturas).Error
	return facturas, persist(err)
}

func (r *facturaRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Select("Lineas").Delete(&model.Factura{ID: id})
	if res.Error != nil {
		return persist(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NoEncontrado("factura %d", id)
	}
	return nil
}
