package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto es un artículo del catálogo (aceite, manzanilla...).
// El campo Stock es un agregado materializado: sólo cambia a través del
// libro de movimientos (ver service.InventarioService), con la única
// excepción documentada de las bajadas de stock por edición de catálogo.
type Producto struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre      string `gorm:"index;not null" json:"nombre"`
	Descripcion string `gorm:"size:1000" json:"descripcion"`
	Categoria   string `gorm:"index" json:"categoria"`
	// Visible controla si el producto aparece en la tienda pública.
	Visible bool            `gorm:"not null;default:true" json:"visible"`
	Precio  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio"`
	// PrecioCompra es el coste de adquisición, no el precio de venta.
	PrecioCompra decimal.Decimal `gorm:"type:decimal(10,2)" json:"precioCompra"`
	Descuento    *int            `json:"descuento,omitempty"`
	Stock        int             `gorm:"not null;default:0" json:"stock"`

	FechaActualizacionStock *time.Time `json:"fechaActualizacionStock,omitempty"`
	CreatedAt               time.Time  `json:"-"`
	UpdatedAt               time.Time  `json:"-"`
}
