package repository

import (
	"context"
	"time"

	"github.com/Fran86-design/Proyecto-Olisev/internal/dto"

	"gorm.io/gorm"
)

// ReporteRepository agrupa las consultas de agregación para los paneles
// de ventas. Son consultas de solo lectura sobre pedidos y líneas.
type ReporteRepository interface {
	VentasPorDia(ctx context.Context, desde, hasta time.Time) ([]dto.VentaPorFecha, error)
	// VentasPorMes agrupa por mes todo el histórico.
	VentasPorMes(ctx context.Context) ([]dto.VentaPorFecha, error)
	// VentasPorMesDelAnio agrupa por mes los pedidos de un año.
	VentasPorMesDelAnio(ctx context.Context, anio int) ([]dto.VentaPorFecha, error)
	ProductosVendidos(ctx context.Context, desde, hasta time.Time) ([]dto.ProductoVentaDetalle, error)
}

type reporteRepo struct{ db *gorm.DB }

func NewReporteRepository(db *gorm.DB) ReporteRepository { return &reporteRepo{db: db} }

func (r *reporteRepo) VentasPorDia(ctx context.Context, desde, hasta time.Time) ([]dto.VentaPorFecha, error) {
	var filas []dto.VentaPorFecha
	err := r.db.WithContext(ctx).Raw(`
		SELECT to_char(fecha_pedido, 'YYYY-MM-DD') AS fecha,
		       COALESCE(SUM(total), 0)             AS total
		FROM pedidos
		WHERE fecha_pedido >= ? AND fecha_pedido < ?
		GROUP BY 1
		ORDER BY 1`, desde, hasta).Scan(&filas).Error
	return filas, persist(err)
}

func (r *reporteRepo) VentasPorMes(ctx context.Context) ([]dto.VentaPorFecha, error) {
	var filas []dto.VentaPorFecha
	err := r.db.WithContext(ctx).Raw(`
		SELECT to_char(fecha_pedido, 'YYYY-MM') AS fecha,
		       COALESCE(SUM(total), 0)          AS total
		FROM pedidos
		GROUP BY 1
		ORDER BY 1`).Scan(&filas).Error
	return filas, persist(err)
}

func (r *reporteRepo) VentasPorMesDelAnio(ctx context.Context, anio int) ([]dto.VentaPorFecha, error) {
	inicio := time.Date(anio, time.January, 1, 0, 0, 0, 0, time.UTC)
	fin := inicio.AddDate(1, 0, 0)

	var filas []dto.VentaPorFecha
	err := r.db.WithContext(ctx).Raw(`
		SELECT to_char(fecha_pedido, 'YYYY-MM') AS fecha,
		       COALESCE(SUM(total), 0)          AS total
		FROM pedidos
		WHERE fecha_pedido >= ? AND fecha_pedido < ?
		GROUP BY 1
		ORDER BY 1`, inicio, fin).Scan(&filas).Error
	return filas, persist(err)
}

func (r *reporteRepo) ProductosVendidos(ctx context.Context, desde, hasta time.Time) ([]dto.ProductoVentaDetalle, error) {
	var filas []dto.ProductoVentaDetalle
	err := r.db.WithContext(ctx).Raw(`
		SELECT l.nombre_producto   AS nombre_producto,
		       SUM(l.cantidad)     AS cantidad_vendida
		FROM lineas_pedido l
		JOIN pedidos p ON p.id = l.pedido_id
		WHERE p.fecha_pedido >= ? AND p.fecha_pedido < ?
		GROUP BY l.nombre_producto
		ORDER BY cantidad_vendida DESC`, desde, hasta).Scan(&filas).Error
	return filas, persist(err)
}
