package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntradaAceitunaRequest sirve para el alta y para el PUT de reemplazo
// completo de una entrada de aceituna.
type EntradaAceitunaRequest struct {
	NombreCliente string `json:"nombreCliente" validate:"required,min=2"`
	EmailCliente  string `json:"emailCliente"  validate:"omitempty,email"`
	Lote          *int   `json:"lote"          validate:"omitempty,min=1"`

	Variedad string          `json:"variedad"`
	Tipo     string          `json:"tipo"`
	Kilos    decimal.Decimal `json:"kilos"   validate:"required,gt=0"`
	Campana  string          `json:"campana" validate:"required"`

	FechaEntrada     *time.Time `json:"fechaEntrada"`
	Cocedera         string     `json:"cocedera"`
	FechaCocedera    *time.Time `json:"fechaCocedera"`
	Fermentador      string     `json:"fermentador"`
	FechaFermentador *time.Time `json:"fechaFermentador"`

	GradosSal  *decimal.Decimal `json:"gradosSal"`
	GradosSosa *decimal.Decimal `json:"gradosSosa"`

	Observaciones string `json:"observaciones" validate:"max=1000"`
}

type EntradaAceitunaResponse struct {
	ID            int64  `json:"id"`
	NombreCliente string `json:"nombreCliente"`
	EmailCliente  string `json:"emailCliente"`
	Lote          *int   `json:"lote,omitempty"`

	Variedad string          `json:"variedad"`
	Tipo     string          `json:"tipo"`
	Kilos    decimal.Decimal `json:"kilos"`
	Campana  string          `json:"campana"`

	FechaEntrada     *time.Time `json:"fechaEntrada,omitempty"`
	Cocedera         string     `json:"cocedera"`
	FechaCocedera    *time.Time `json:"fechaCocedera,omitempty"`
	Fermentador      string     `json:"fermentador"`
	FechaFermentador *time.Time `json:"fechaFermentador,omitempty"`

	GradosSal  *decimal.Decimal `json:"gradosSal,omitempty"`
	GradosSosa *decimal.Decimal `json:"gradosSosa,omitempty"`

	Observaciones string `json:"observaciones"`
}
