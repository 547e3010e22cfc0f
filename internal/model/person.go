package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Person is the badge holder. The entity reference is soft: a save with an
// unknown entity name leaves EntityID NULL instead of failing.
//
// Image is a nullable pointer but NOT NULL in the schema: the handlers accept
// a missing upload and let the store reject the row, which is the contract
// the admin front end relies on.
type Person struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string       `gorm:"type:varchar(255)" json:"name"`
	Job         string       `gorm:"type:varchar(255)" json:"job"`
	Escort      string       `gorm:"type:varchar(255);not null;default:'active'" json:"escort"`
	Image       *string      `gorm:"type:varchar(512);not null" json:"image"`
	EntityID    *uuid.UUID   `gorm:"type:uuid" json:"entityId"`
	Entity      *Entity      `gorm:"foreignKey:EntityID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"entity,omitempty"`
	Permissions []Permission `gorm:"many2many:person_permissions;" json:"permissions"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *Person) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
