package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pick-list tables feeding the front end's dropdowns. The escorts table is
// independent of the free-text Person.Escort field and is never validated
// against it.

// Function is a job-function pick-list value.
type Function struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PersonFunction string    `gorm:"type:varchar(255);not null" json:"personFunction"`
}

func (f *Function) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// Escort is an escort-status pick-list value.
type Escort struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PersonEscort string    `gorm:"type:varchar(255);not null" json:"personEscort"`
}

func (e *Escort) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// VehicleBrand is a vehicle-brand pick-list value.
type VehicleBrand struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Brand string    `gorm:"type:varchar(100);not null" json:"brand"`
}

func (b *VehicleBrand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
