package service

import (
	"context"
	"time"

	"github.com/Fran86-design/Proyecto-Olisev/internal/apperr"
	"github.com/Fran86-design/Proyecto-Olisev/internal/dto"
	"github.com/Fran86-design/Proyecto-Olisev/internal/repository"
)

// umbralBajoStockDefecto aplica cuando el panel no envía umbral propio.
const umbralBajoStockDefecto = 5

type ReporteService interface {
	VentasPorFecha(ctx context.Context, desde, hasta time.Time) ([]dto.VentaPorFecha, error)
	VentasDelDia(ctx context.Context) ([]dto.VentaPorFecha, error)
	VentasPorMes(ctx context.Context) ([]dto.VentaPorFecha, error)
	VentasPorMesDelAnio(ctx context.Context, anio int) ([]dto.VentaPorFecha, error)
	ProductosVendidosMes(ctx context.Context, anio, mes int) ([]dto.ProductoVentaDetalle, error)
	ProductosVendidosHoy(ctx context.Context) ([]dto.ProductoVentaDetalle, error)
	ProductosVendidosAnio(ctx context.Context, anio int) ([]dto.ProductoVentaDetalle, error)
	ProductosBajoStock(ctx context.Context, umbral int) ([]dto.ProductoBajoStock, error)
}

type reporteService struct {
	repo            repository.ReporteRepository
	prodRepo        repository.ProductoRepository
	umbralBajoStock int
}

func NewReporteService(repo repository.ReporteRepository, prodRepo repository.ProductoRepository, umbralBajoStock int) ReporteService {
	if umbralBajoStock <= 0 {
		umbralBajoStock = umbralBajoStockDefecto
	}
	return &reporteService{repo: repo, prodRepo: prodRepo, umbralBajoStock: umbralBajoStock}
}

func (s *reporteService) VentasPorFecha(ctx context.Context, desde, hasta time.Time) ([]dto.VentaPorFecha, error) {
	return s.repo.VentasPorDia(ctx, desde, hasta)
}

func (s *reporteService) VentasDelDia(ctx context.Context) ([]dto.VentaPorFecha, error) {
	desde, hasta := rangoHoy()
	return s.repo.VentasPorDia(ctx, desde, hasta)
}

func (s *reporteService) VentasPorMes(ctx context.Context) ([]dto.VentaPorFecha, error) {
	return s.repo.VentasPorMes(ctx)
}

func (s *reporteService) VentasPorMesDelAnio(ctx context.Context, anio int) ([]dto.VentaPorFecha, error) {
	if anio == 0 {
		anio = time.Now().Year()
	}
	return s.repo.VentasPorMesDelAnio(ctx, anio)
}

func (s *reporteService) ProductosVendidosMes(ctx context.Context, anio, mes int) ([]dto.ProductoVentaDetalle, error) {
	ahora := time.Now()
	if anio == 0 {
		anio = ahora.Year()
	}
	if mes == 0 {
		mes = int(ahora.Month())
	}
	if mes < 1 || mes > 12 {
		return nil, apperr.Validacion("mes fuera de rango: %d", mes)
	}
	desde := time.Date(anio, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
	hasta := desde.AddDate(0, 1, 0)
	return s.repo.ProductosVendidos(ctx, desde, hasta)
}

func (s *reporteService) ProductosVendidosHoy(ctx context.Context) ([]dto.ProductoVentaDetalle, error) {
	desde, hasta := rangoHoy()
	return s.repo.ProductosVendidos(ctx, desde, hasta)
}

func (s *reporteService) ProductosVendidosAnio(ctx context.Context, anio int) ([]dto.ProductoVentaDetalle, error) {
	if anio == 0 {
		anio = time.Now().Year()
	}
	desde := time.Date(anio, time.January, 1, 0, 0, 0, 0, time.UTC)
	return s.repo.ProductosVendidos(ctx, desde, desde.AddDate(1, 0, 0))
}

func rangoHoy() (time.Time, time.Time) {
	ahora := time.Now().UTC()
	desde := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, time.UTC)
	return desde, desde.AddDate(0, 0, 1)
}

func (s *reporteService) ProductosBajoStock(ctx context.Context, umbral int) ([]dto.ProductoBajoStock, error) {
	if umbral <= 0 {
		umbral = s.umbralBajoStock
	}
	productos, err := s.prodRepo.ListBajoStock(ctx, umbral)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoBajoStock, 0, len(productos))
	for _, p := range productos {
		out = append(out, dto.ProductoBajoStock{ID: p.ID, Nombre: p.Nombre, Stock: p.Stock})
	}
	return out, nil
}
