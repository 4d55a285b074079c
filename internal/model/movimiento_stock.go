package model

import "time"

// Tipos de movimiento de stock. Cantidad siempre es una magnitud positiva;
// el tipo determina el signo del ajuste sobre Producto.Stock.
const (
	// TipoEntradaManual: entrada registrada desde el panel de inventario.
	TipoEntradaManual = "ENTRADA_MANUAL"
	// TipoEntradaEdicion: entrada automática al subir el stock en una
	// edición de producto del catálogo.
	TipoEntradaEdicion = "ENTRADA_EDICION"
	// TipoSalidaManual: salida registrada desde el panel de inventario.
	TipoSalidaManual = "SALIDA_MANUAL"
	// TipoSalidaVenta: salida generada al confirmar una línea de pedido.
	TipoSalidaVenta = "SALIDA_VENTA"
)

// EsEntrada indica si un tipo de movimiento suma stock.
func EsEntrada(tipo string) bool {
	return tipo == TipoEntradaManual || tipo == TipoEntradaEdicion
}

// TipoValido indica si el tipo pertenece al conjunto conocido.
func TipoValido(tipo string) bool {
	switch tipo {
	case TipoEntradaManual, TipoEntradaEdicion, TipoSalidaManual, TipoSalidaVenta:
		return true
	}
	return false
}

// MovimientoStock es una fila inmutable del libro de inventario: la
// explicación auditable de cada cambio de Producto.Stock. Nunca se
// actualiza ni se borra después de crearse.
type MovimientoStock struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductoID int64  `gorm:"not null;index" json:"productoId"`
	Tipo       string `gorm:"not null;index" json:"tipo"`
	Cantidad   int    `gorm:"not null" json:"cantidad"`
	// StockAnterior/StockNuevo permiten reconciliar el agregado
	// materializado contra el libro sin reproducir todo el historial.
	StockAnterior int       `gorm:"not null" json:"stockAnterior"`
	StockNuevo    int       `gorm:"not null" json:"stockNuevo"`
	Motivo        string    `json:"motivo,omitempty"`
	CreatedAt     time.Time `gorm:"index" json:"fecha"`

	Producto *Producto `gorm:"foreignKey:ProductoID;constraint:OnDelete:CASCADE" json:"producto,omitempty"`
}

// TableName overrides GORM's default pluralization (movimiento_stocks → movimientos_stock).
func (MovimientoStock) TableName() string { return "movimientos_stock" }
