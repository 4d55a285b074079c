package dto

import "github.com/shopspring/decimal"

type LineaFacturaResponse struct {
	NombreProducto string          `json:"nombreProducto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

type FacturaResponse struct {
	ID       int64  `json:"id"`
	Fecha    string `json:"fecha"`
	PedidoID int64  `json:"pedidoId"`

	Total       decimal.Decimal `json:"total"`
	IVA         decimal.Decimal `json:"iva"`
	CosteEnvio  decimal.Decimal `json:"costeEnvio"`
	TotalConIva decimal.Decimal `json:"totalConIva"`

	Direccion string                 `json:"direccion"`
	Lineas    []LineaFacturaResponse `json:"lineas"`
}
