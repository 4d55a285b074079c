package model

// SecuenciaAnual es el contador explícito que respalda los códigos
// anuales de pedido ("{año}-{n}"). Sustituye al patrón contar-e-insertar:
// el incremento se hace con un upsert atómico dentro de la transacción
// del pedido, de modo que dos creaciones concurrentes nunca obtienen el
// mismo número.
type SecuenciaAnual struct {
	Anio     int `gorm:"primaryKey" json:"anio"`
	Contador int `gorm:"not null;default:0" json:"contador"`
}

// TableName overrides GORM's default pluralization (secuencia_anuals → secuencias_anuales).
func (SecuenciaAnual) TableName() string { return "secuencias_anuales" }
