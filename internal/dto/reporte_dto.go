package dto

import "github.com/shopspring/decimal"

// VentaPorFecha agrupa el total vendido por día ("2025-03-14") o por
// mes ("2025-03"), según el reporte que la produzca.
type VentaPorFecha struct {
	Fecha string          `json:"fecha"`
	Total decimal.Decimal `json:"total"`
}

type ProductoVentaDetalle struct {
	NombreProducto  string `json:"nombreProducto"`
	CantidadVendida int64  `json:"cantidadVendida"`
}

type ProductoBajoStock struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Stock  int    `json:"stock"`
}
