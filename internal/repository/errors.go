package repository

import (
	"errors"

	"github.com/Fran86-design/Proyecto-Olisev/internal/apperr"

	"gorm.io/gorm"
)

// persist envuelve fallos del almacenamiento en ErrPersistencia para que
// los handlers respondan un 500 opaco sin filtrar detalles del driver.
// La clave duplicada pasa tal cual: los servicios la inspeccionan para
// reintentar códigos anuales y resolver la carrera de facturas.
func persist(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	return apperr.Persistencia(err)
}
