package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LineaPedidoRequest struct {
	ProductoID int64 `json:"productoId" validate:"required,min=1"`
	Cantidad   int   `json:"cantidad"   validate:"required,min=1"`
}

type CrearPedidoRequest struct {
	NombreCliente string `json:"nombreCliente" validate:"required,min=2"`
	Direccion     string `json:"direccion"     validate:"required"`
	// Email es opcional aquí, pero los flujos de recuperación de pedidos
	// por cliente lo requieren, así que se valida el formato si llega.
	Email    string               `json:"email"    validate:"omitempty,email"`
	Telefono string               `json:"telefono"`
	Detalles []LineaPedidoRequest `json:"detalles" validate:"required,min=1,dive"`
}

type ActualizarClienteRequest struct {
	NombreCliente string `json:"nombreCliente" validate:"required,min=2"`
	Direccion     string `json:"direccion"     validate:"required"`
	Email         string `json:"email"         validate:"omitempty,email"`
	Telefono      string `json:"telefono"`
}

// PedidoFilter is bound from the query string of GET /api/pedidos.
type PedidoFilter struct {
	Enviado *bool  `form:"enviado"`
	Anio    int    `form:"anio"`
	Email   string `form:"email"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LineaPedidoResponse struct {
	ID             int64           `json:"id"`
	ProductoID     *int64          `json:"productoId,omitempty"`
	NombreProducto string          `json:"nombreProducto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

type PedidoResponse struct {
	ID            int64                 `json:"id"`
	NombreCliente string                `json:"nombreCliente"`
	Direccion     string                `json:"direccion"`
	Email         string                `json:"email"`
	Telefono      string                `json:"telefono"`
	FechaPedido   string                `json:"fechaPedido"`
	Total         decimal.Decimal       `json:"total"`
	Enviado       bool                  `json:"enviado"`
	Pagado        bool                  `json:"pagado"`
	FechaPago     *string               `json:"fechaPago,omitempty"`
	CodigoAnual   string                `json:"codigoAnual"`
	Detalles      []LineaPedidoResponse `json:"detalles"`
}
