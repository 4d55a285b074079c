package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Fran86-design/Proyecto-Olisev/internal/apperr"
	"github.com/Fran86-design/Proyecto-Olisev/internal/dto"
	"github.com/Fran86-design/Proyecto-Olisev/internal/model"

	"gorm.io/gorm"
)

type PedidoRepository interface {
	CreateTx(tx *gorm.DB, p *model.Pedido) error
	FindByID(ctx context.Context, id int64) (*model.Pedido, error)
	FindByIDTx(tx *gorm.DB, id int64) (*model.Pedido, error)
	List(ctx context.Context, filter dto.PedidoFilter) ([]model.Pedido, error)
	MarcarEnviado(ctx context.Context, id int64) error
	MarcarPagado(ctx context.Context, id int64, fechaPago time.Time) error
	ActualizarCliente(ctx context.Context, id int64, req dto.ActualizarClienteRequest) error
	Delete(ctx context.Context, id int64) error
	DB() *gorm.DB
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) DB() *gorm.DB { return r.db }

func (r *pedidoRepo) CreateTx(tx *gorm.DB, p *model.Pedido) error {
	return persist(tx.Create(p).Error)
}

func (r *pedidoRepo) FindByID(ctx context.Context, id int64) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).Preload("Lineas").First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NoEncontrado("pedido %d", id)
	}
	return &p, persist(err)
}

func (r *pedidoRepo) FindByIDTx(tx *gorm.DB, id int64) (*model.Pedido, error) {
	var p model.Pedido
	err := tx.Preload("Lineas").First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NoEncontrado("pedido %d", id)
	}
	return &p, persist(err)
}

func (r *pedidoRepo) List(ctx context.Context, filter dto.PedidoFilter) ([]model.Pedido, error) {
	q := r.db.WithContext(ctx).Preload("Lineas")

	if filter.Enviado != nil {
		q = q.Where("enviado = ?", *filter.Enviado)
	}
	if filter.Email != "" {
		q = q.Where("email = ?", filter.Email)
	}
	if filter.Anio != 0 {
		inicio := time.Date(filter.Anio, time.January, 1, 0, 0, 0, 0, time.UTC)
		fin := inicio.AddDate(1, 0, 0)
		q = q.Where("fecha_pedido >= ? AND fecha_pedido < ?", inicio, fin)
	}

	var pedidos []model.Pedido
	err := q.Order("fecha_pedido DESC, id DESC").Find(&pedidos).Error
	return pedidos, persist(err)
}

// MarcarEnviado es idempotente: repetirlo sobre un pedido ya enviado
// no cambia nada y no es un error.
func (r *pedidoRepo) MarcarEnviado(ctx context.Context, id int64) error {
	return r.marcarFlag(ctx, id, map[string]interface{}{"enviado": true})
}

func (r *pedidoRepo) MarcarPagado(ctx context.Context, id int64, fechaPago time.Time) error {
	return r.marcarFlag(ctx, id, map[string]interface{}{
		"pagado":     true,
		"fecha_pago": fechaPago,
	})
}

func (r *pedidoRepo) marcarFlag(ctx context.Context, id int64, campos map[string]interface{}) error {
	var existe int64
	if err := r.db.WithContext(ctx).Model(&model.Pedido{}).Where("id = ?", id).Count(&existe).Error; err != nil {
		return persist(err)
	}
	if existe == 0 {
		return apperr.NoEncontrado("pedido %d", id)
	}
	return persist(r.db.WithContext(ctx).Model(&model.Pedido{}).Where("id = ?", id).Updates(campos).Error)
}

func (r *pedidoRepo) ActualizarCliente(ctx context.Context, id int64, req dto.ActualizarClienteRequest) error {
	res := r.db.WithContext(ctx).Model(&model.Pedido{}).Where("id = ?", id).Updates(map[string]interface{}{
		"nombre_cliente": req.NombreCliente,
		"direccion":      req.Direccion,
		"email":          req.Email,
		"telefono":       req.Telefono,
	})
	if res.Error != nil {
		return persist(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NoEncontrado("pedido %d", id)
	}
	return nil
}

func (r *pedidoRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Select("Lineas").Delete(&model.Pedido{ID: id})
	if res.Error != nil {
		return persist(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NoEncontrado("pedido %d", id)
	}
	return nil
}
