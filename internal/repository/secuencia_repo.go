package repository

import (
	"gorm.io/gorm"
)

type SecuenciaAnualRepository interface {
	// SiguienteTx incrementa y devuelve el contador del año de forma
	// atómica. Dos transacciones concurrentes nunca reciben el mismo
	// número: el upsert serializa sobre la fila del año.
	SiguienteTx(tx *gorm.DB, anio int) (int64, error)
}

type secuenciaAnualRepo struct{ db *gorm.DB }

func NewSecuenciaAnualRepository(db *gorm.DB) SecuenciaAnualRepository {
	return &secuenciaAnualRepo{db: db}
}

func (r *secuenciaAnualRepo) SiguienteTx(tx *gorm.DB, anio int) (int64, error) {
	var contador int64
	err := tx.Raw(`
		INSERT INTO secuencias_anuales (anio, contador)
		VALUES (?, 1)
		ON CONFLICT (anio) DO UPDATE SET contador = secuencias_anuales.contador + 1
		RETURNING contador`, anio).Scan(&contador).Error
	return contador, persist(err)
}
