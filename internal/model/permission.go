package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Permission is a named access-area label attachable to many persons.
// Seed data from the API's perspective; rows are matched by exact label.
type Permission struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Label string    `gorm:"column:permission;type:varchar(50);uniqueIndex;not null" json:"permission"`
}

func (p *Permission) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
