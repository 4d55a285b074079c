package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pedido es un pedido de cliente ya confirmado. Lineas y Total quedan
// congelados en la creación; después sólo mutan Enviado, Pagado (con su
// fecha) y los datos de contacto del cliente.
type Pedido struct {
	ID            int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	NombreCliente string `gorm:"not null" json:"nombreCliente"`
	Direccion     string `json:"direccion"`
	Email         string `gorm:"index" json:"email"`
	Telefono      string `json:"telefono"`

	FechaPedido time.Time       `gorm:"index;not null" json:"fechaPedido"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`

	Enviado   bool       `gorm:"not null;default:false" json:"enviado"`
	Pagado    bool       `gorm:"not null;default:false" json:"pagado"`
	FechaPago *time.Time `json:"fechaPago,omitempty"`

	// CodigoAnual tiene la forma "{año}-{n}" y es único; lo asigna el
	// procesador de pedidos a partir de SecuenciaAnual.
	CodigoAnual string `gorm:"uniqueIndex;not null" json:"codigoAnual"`

	Lineas []LineaPedido `gorm:"foreignKey:PedidoID;constraint:OnDelete:CASCADE" json:"detalles"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// LineaPedido pertenece en exclusiva a su Pedido. NombreProducto y
// PrecioUnitario son instantáneas tomadas al crear el pedido: no siguen
// cambios posteriores del catálogo. ProductoID queda a NULL si el
// producto se elimina más tarde.
type LineaPedido struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	PedidoID       int64           `gorm:"not null;index" json:"-"`
	ProductoID     *int64          `gorm:"index" json:"productoId,omitempty"`
	NombreProducto string          `gorm:"not null" json:"nombreProducto"`
	Cantidad       int             `gorm:"not null" json:"cantidad"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precioUnitario"`

	Producto *Producto `gorm:"foreignKey:ProductoID;constraint:OnDelete:SET NULL" json:"-"`
}

// TableName overrides GORM's default pluralization (linea_pedidos → lineas_pedido).
func (LineaPedido) TableName() string { return "lineas_pedido" }
