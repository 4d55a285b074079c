// Package apperr defines the error taxonomy shared by all services.
// Handlers map these sentinels to HTTP status codes with errors.Is, so
// services never need to know about HTTP.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNoEncontrado: el producto, pedido o factura referenciado no existe.
	ErrNoEncontrado = errors.New("recurso no encontrado")
	// ErrValidacion: entrada rechazada antes de cualquier mutación.
	ErrValidacion = errors.New("datos invalidos")
	// ErrStockInsuficiente: una salida dejaría el stock en negativo.
	ErrStockInsuficiente = errors.New("stock insuficiente")
	// ErrConflicto: carrera detectada (código anual duplicado); reintentable.
	ErrConflicto = errors.New("conflicto de concurrencia")
	// ErrPersistencia: fallo de la capa de almacenamiento; no se reintenta.
	ErrPersistencia = errors.New("error de persistencia")
)

func NoEncontrado(format string, args ...interface{}) error {
	return wrap(ErrNoEncontrado, format, args...)
}

func Validacion(format string, args ...interface{}) error {
	return wrap(ErrValidacion, format, args...)
}

func StockInsuficiente(format string, args ...interface{}) error {
	return wrap(ErrStockInsuficiente, format, args...)
}

func Conflicto(format string, args ...interface{}) error {
	return wrap(ErrConflicto, format, args...)
}

// Persistencia envuelve un error del almacenamiento preservando la causa.
func Persistencia(cause error) error {
	if cause == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrPersistencia, cause)
}

func wrap(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
