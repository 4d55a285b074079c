package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntradaAceituna registra la recepción de aceituna de un agricultor:
// variedad, kilos, campaña y el seguimiento por cocedera y fermentador.
// El cliente se identifica por nombre y email, sin cuenta asociada.
type EntradaAceituna struct {
	ID            int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	NombreCliente string `gorm:"index;not null" json:"nombreCliente"`
	EmailCliente  string `gorm:"index" json:"emailCliente"`
	Lote          *int   `json:"lote,omitempty"`

	Variedad string          `json:"variedad"`
	Tipo     string          `json:"tipo"`
	Kilos    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"kilos"`
	// Campana identifica la campaña agrícola, por ejemplo "2026".
	Campana      string     `gorm:"index;not null" json:"campana"`
	FechaEntrada *time.Time `json:"fechaEntrada,omitempty"`

	Cocedera         string     `json:"cocedera"`
	FechaCocedera    *time.Time `json:"fechaCocedera,omitempty"`
	Fermentador      string     `json:"fermentador"`
	FechaFermentador *time.Time `json:"fechaFermentador,omitempty"`

	GradosSal  *decimal.Decimal `gorm:"type:decimal(5,2)" json:"gradosSal,omitempty"`
	GradosSosa *decimal.Decimal `gorm:"type:decimal(5,2)" json:"gradosSosa,omitempty"`

	Observaciones string `gorm:"size:1000" json:"observaciones"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (EntradaAceituna) TableName() string { return "entradas_aceituna" }
