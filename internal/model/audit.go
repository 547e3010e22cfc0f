package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ActionCreateCard        = "CREATE_CARD"
	ActionUpdateCard        = "UPDATE_CARD"
	ActionCreateVehicleCard = "CREATE_VEHICLE_CARD"
	ActionUpdateVehicleCard = "UPDATE_VEHICLE_CARD"
)

// AuditLog tracks What and When for every successful save workflow.
// This system has no user accounts, so there is no Who column.
type AuditLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Action       string    `gorm:"type:varchar(50);not null;index" json:"action"`
	ResourceID   string    `gorm:"type:varchar(50);index" json:"resourceId"`
	ResourceName string    `gorm:"type:varchar(255)" json:"resourceName,omitempty"`
	Details      string    `gorm:"type:text" json:"details"`
	CreatedAt    time.Time `gorm:"index" json:"createdAt"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
