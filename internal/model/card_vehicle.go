package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CardVehicle is the vehicle permit record, upserted by license plate rather
// than by id. EntityName duplicates the related entity's name because the
// admin list view renders permits without joining.
type CardVehicle struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EntityName   string    `gorm:"column:entity;type:varchar(255);not null" json:"entity"`
	Brand        string    `gorm:"type:varchar(100);not null" json:"brand"`
	Color        string    `gorm:"type:varchar(50);not null" json:"color"`
	CardNumber   string    `gorm:"type:varchar(100);not null" json:"cardNumber"`
	LicensePlate string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"licensePlate"`
	Type         string    `gorm:"type:varchar(50);not null" json:"type"`
	EntityID     uuid.UUID `gorm:"type:uuid;not null" json:"entityId"`
	Entity       *Entity   `gorm:"foreignKey:EntityID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"relatedEntity,omitempty"`
	Expiration   time.Time `gorm:"not null" json:"expiration"`
	PermitType   string    `gorm:"type:varchar(50)" json:"permitType"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (v *CardVehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
