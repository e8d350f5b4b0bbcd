package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ilumastore/go-store-backend/config"
	"github.com/ilumastore/go-store-backend/models"
)

// Connect opens the store and brings the schema up to date.
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates every table the backend owns. Category tables
// go first so the product foreign keys resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.DevicesCategory{},
		&models.IqosCategory{},
		&models.TereaCategory{},
		&models.Device{},
		&models.Iqos{},
		&models.Terea{},
		&models.Order{},
		&models.OrderedProduct{},
	)
}

// Close releases the pooled connections.
func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
