package dto

import "github.com/shopspring/decimal"

type CrearProductoRequest struct {
	Nombre       string          `json:"nombre"       validate:"required,min=2"`
	Descripcion  string          `json:"descripcion"  validate:"max=1000"`
	Categoria    string          `json:"categoria"`
	Visible      bool            `json:"visible"`
	Precio       decimal.Decimal `json:"precio"       validate:"required,gt=0"`
	PrecioCompra decimal.Decimal `json:"precioCompra" validate:"min=0"`
	Descuento    *int            `json:"descuento"    validate:"omitempty,min=0,max=100"`
	Stock        int             `json:"stock"        validate:"min=0"`
}

// ActualizarProductoRequest replaces the editable catalog fields wholesale,
// mirroring the PUT semantics of the inventory panel. Stock changes go
// through the ledger rule (increase → movement, decrease → direct).
type ActualizarProductoRequest struct {
	Nombre       string          `json:"nombre"       validate:"required,min=2"`
	Descripcion  string          `json:"descripcion"  validate:"max=1000"`
	Categoria    string          `json:"categoria"`
	Visible      bool            `json:"visible"`
	Precio       decimal.Decimal `json:"precio"       validate:"required,gt=0"`
	PrecioCompra decimal.Decimal `json:"precioCompra" validate:"min=0"`
	Descuento    *int            `json:"descuento"    validate:"omitempty,min=0,max=100"`
	Stock        int             `json:"stock"        validate:"min=0"`
}

type ProductoResponse struct {
	ID                      int64           `json:"id"`
	Nombre                  string          `json:"nombre"`
	Descripcion             string          `json:"descripcion"`
	Categoria               string          `json:"categoria"`
	Visible                 bool            `json:"visible"`
	Precio                  decimal.Decimal `json:"precio"`
	PrecioCompra            decimal.Decimal `json:"precioCompra"`
	Descuento               *int            `json:"descuento,omitempty"`
	Stock                   int             `json:"stock"`
	FechaActualizacionStock *string         `json:"fechaActualizacionStock,omitempty"`
}
