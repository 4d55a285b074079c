package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Factura es el documento de cobro derivado de un pedido confirmado.
// Se crea una sola vez y es inmutable: total, IVA, envío y líneas son
// copias congeladas del pedido en el momento de la emisión. El índice
// único sobre PedidoID garantiza una factura por pedido.
type Factura struct {
	ID       int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Fecha    time.Time `gorm:"not null" json:"fecha"`
	PedidoID int64     `gorm:"uniqueIndex;not null" json:"pedidoId"`

	// Total es la base imponible: igual al total del pedido.
	Total      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	IVA        decimal.Decimal `gorm:"type:decimal(4,2);not null" json:"iva"`
	CosteEnvio decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"costeEnvio"`
	// TotalConIva = Total × (1+IVA) + CosteEnvio.
	TotalConIva decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalConIva"`

	Direccion string `json:"direccion"`

	Pedido *Pedido        `gorm:"foreignKey:PedidoID" json:"-"`
	Lineas []LineaFactura `gorm:"foreignKey:FacturaID;constraint:OnDelete:CASCADE" json:"lineas"`

	CreatedAt time.Time `json:"-"`
}

// LineaFactura es una copia por valor de una línea del pedido: no
// referencia LineaPedido ni vuelve a resolver precios del catálogo.
type LineaFactura struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	FacturaID      int64           `gorm:"not null;index" json:"-"`
	NombreProducto string          `gorm:"not null" json:"nombreProducto"`
	Cantidad       int             `gorm:"not null" json:"cantidad"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precioUnitario"`
}

// TableName overrides GORM's default pluralization (linea_facturas → lineas_factura).
func (LineaFactura) TableName() string { return "lineas_factura" }
