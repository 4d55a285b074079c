package repository

import (
	"context"
	"errors"

	"github.com/Fran86-design/Proyecto-Olisev/internal/apperr"
	"github.com/Fran86-design/Proyecto-Olisev/internal/model"

	"gorm.io/gorm"
)

type EntradaAceitunaRepository interface {
	Create(ctx context.Context, e *model.EntradaAceituna) error
	FindByID(ctx context.Context, id int64) (*model.EntradaAceituna, error)
	List(ctx context.Context) ([]model.EntradaAceituna, error)
	ListPorCliente(ctx context.Context, email string) ([]model.EntradaAceituna, error)
	ListPorCampana(ctx context.Context, campana string) ([]model.EntradaAceituna, error)
	// Campanias devuelve las campañas únicas registradas, la más
	// reciente primero.
	Campanias(ctx context.Context) ([]string, error)
	Actualizar(ctx context.Context, e *model.EntradaAceituna) error
	Delete(ctx context.Context, id int64) error
}

type entradaAceitunaRepo struct{ db *gorm.DB }

func NewEntradaAceitunaRepository(db *gorm.DB) EntradaAceitunaRepository {
	return &entradaAceitunaRepo{db: db}
}

func (r *entradaAceitunaRepo) Create(ctx context.Context, e *model.EntradaAceituna) error {
	return persist(r.db.WithContext(ctx).Create(e).Error)
}

func (r *entradaAceitunaRepo) FindByID(ctx context.Context, id int64) (*model.EntradaAceituna, error) {
	var e model.EntradaAceituna
	err := r.db.WithContext(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NoEncontrado("entrada de aceituna %d", id)
	}
	return &e, persist(err)
}

func (r *entradaAceitunaRepo) List(ctx context.Context) ([]model.EntradaAceituna, error) {
	var entradas []model.EntradaAceituna
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&entradas).Error
	return entradas, persist(err)
}

func (r *entradaAceitunaRepo) ListPorCliente(ctx context.Context, email string) ([]model.EntradaAceituna, error) {
	var entradas []model.EntradaAceituna
	err := r.db.WithContext(ctx).
		Where("email_cliente = ?", email).
		Order("created_at DESC, id DESC").
		Find(&entradas).Error
	return entradas, persist(err)
}

func (r *entradaAceitunaRepo) ListPorCampana(ctx context.Context, campana string) ([]model.EntradaAceituna, error) {
	var entradas []model.EntradaAceituna
	err := r.db.WithContext(ctx).
		Where("campana = ?", campana).
		Order("created_at DESC, id DESC").
		Find(&entradas).Error
	return entradas, persist(err)
}

func (r *entradaAceitunaRepo) Campanias(ctx context.Context) ([]string, error) {
	var campanias []string
	err := r.db.WithContext(ctx).Model(&model.EntradaAceituna{}).
		Select("DISTINCT campana").
		Order("campana DESC").
		Scan(&campanias).Error
	return campanias, persist(err)
}

func (r *entradaAceitunaRepo) Actualizar(ctx context.Context, e *model.EntradaAceituna) error {
	return persist(r.db.WithContext(ctx).Save(e).Error)
}

func (r *entradaAceitunaRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.EntradaAceituna{}, id)
	if res.Error != nil {
		return persist(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NoEncontrado("entrada de aceituna %d", id)
	}
	return nil
}
