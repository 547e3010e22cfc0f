package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Card is the physical badge record. Exactly one owning person, enforced by
// the non-null foreign key; one card per person by convention only.
type Card struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Expiration time.Time `gorm:"not null" json:"expiration"`
	CardNumber string    `gorm:"type:varchar(100);not null" json:"cardNumber"`
	PersonID   uuid.UUID `gorm:"type:uuid;not null;index" json:"personId"`
	Person     *Person   `gorm:"foreignKey:PersonID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"person,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
