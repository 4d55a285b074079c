package infra

import (
	"fmt"

	"github.com/Fran86-design/Proyecto-Olisev/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate to create / update all tables. TranslateError maps
// driver-level unique violations to gorm.ErrDuplicatedKey, which the
// services rely on for the annual code and one-invoice-per-order races.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

// RunMigrations applies the schema. Also used by integration tests.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Producto{},
		&model.MovimientoStock{},
		&model.SecuenciaAnual{},
		&model.Pedido{},
		&model.LineaPedido{},
		&model.Factura{},
		&model.LineaFactura{},
		&model.EntradaAceituna{},
	)
}
