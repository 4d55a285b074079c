package dto

// MovimientoManualRequest is the body of POST /api/inventario/entrada and
// /api/inventario/salida. Cantidad is always a positive magnitude.
type MovimientoManualRequest struct {
	ProductoID int64  `json:"productoId" validate:"required,min=1"`
	Cantidad   int    `json:"cantidad"   validate:"required,min=1"`
	Motivo     string `json:"motivo"`
}

// MovimientoFilter is bound from the query string of GET /api/inventario/movimientos.
type MovimientoFilter struct {
	ProductoID *int64 `form:"productoId"`
	Tipo       string `form:"tipo"`
	Anio       int    `form:"anio"`
	Page       int    `form:"page,default=1"    validate:"min=1"`
	Limit      int    `form:"limit,default=100" validate:"min=1,max=500"`
}

type MovimientoResponse struct {
	ID             int64  `json:"id"`
	ProductoID     int64  `json:"productoId"`
	NombreProducto string `json:"nombreProducto,omitempty"`
	Tipo           string `json:"tipo"`
	Cantidad       int    `json:"cantidad"`
	StockAnterior  int    `json:"stockAnterior"`
	StockNuevo     int    `json:"stockNuevo"`
	Motivo         string `json:"motivo,omitempty"`
	Fecha          string `json:"fecha"`
}

// ReconciliacionProducto compara el stock materializado de un producto
// con el neto del libro de movimientos. Una divergencia delata una
// bajada de stock por edición de catálogo, que no genera asiento.
type ReconciliacionProducto struct {
	ProductoID int64  `json:"productoId"`
	Nombre     string `json:"nombre"`
	Stock      int    `json:"stock"`
	NetoLibro  int    `json:"netoLibro"`
	Divergente bool   `json:"divergente"`
}

type MovimientoListResponse struct {
	Data  []MovimientoResponse `json:"data"`
	Total int64                `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}
