package database

import (
	"log"

	"cardsbackend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM and brings the
// schema up to date.
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		log.Println("WARNING: Failed to auto-migrate models:", err)
	}

	return db, nil
}

// Migrate auto-migrates every model. Split out from NewConnection so tests
// can run it against their own database handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Entity{},
		&model.Person{},
		&model.Permission{},
		&model.Card{},
		&model.CardVehicle{},
		&model.Function{},
		&model.Escort{},
		&model.VehicleBrand{},
		&model.AuditLog{},
	)
}
