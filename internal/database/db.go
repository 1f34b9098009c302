package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"induparts-system/internal/database/models"
)

func NewConnection(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DSN is required")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	return db, nil
}

// Migrate creates the core tables. pedido_detalle is deliberately absent
// from the default set: provisioning it is an explicit choice, and the
// rest of the system must keep working when it was never provisioned.
func Migrate(db *gorm.DB, provisionLineItems bool) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.CatalogItem{},
		&models.InventoryRecord{},
		&models.CustomerOrder{},
		&models.SupplierOrder{},
	); err != nil {
		return err
	}
	if provisionLineItems {
		return db.AutoMigrate(&models.OrderLineItem{})
	}
	return nil
}

// Features holds capabilities resolved once at startup instead of being
// re-probed on every request.
type Features struct {
	LineItems bool
}

func DetectFeatures(db *gorm.DB) Features {
	return Features{
		LineItems: db.Migrator().HasTable(&models.OrderLineItem{}),
	}
}
