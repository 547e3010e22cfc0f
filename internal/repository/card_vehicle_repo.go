package repository

import (
	"context"

	"cardsbackend/internal/model"

	"gorm.io/gorm"
)

// CardVehicleRepository defines data access for vehicle permits. Lookups are
// keyed by license plate, the permit's natural key.
type CardVehicleRepository interface {
	Create(ctx context.Context, card *model.CardVehicle) error
	Update(ctx context.Context, card *model.CardVehicle) error
	FindByLicensePlate(ctx context.Context, plate string) (*model.CardVehicle, error)
	ListAll(ctx context.Context) ([]model.CardVehicle, error)
}

type cardVehicleRepository struct {
	db *gorm.DB
}

func NewCardVehicleRepository(db *gorm.DB) CardVehicleRepository {
	return &cardVehicleRepository{db: db}
}

func (r *cardVehicleRepository) Create(ctx context.Context, card *model.CardVehicle) error {
	return GetDB(ctx, r.db).Create(card).Error
}

func (r *cardVehicleRepository) Update(ctx context.Context, card *model.CardVehicle) error {
	return GetDB(ctx, r.db).Save(card).Error
}

func (r *cardVehicleRepository) FindByLicensePlate(ctx context.Context, plate string) (*model.CardVehicle, error) {
	var card model.CardVehicle
	if err := GetDB(ctx, r.db).Where("license_plate = ?", plate).First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *cardVehicleRepository) ListAll(ctx context.Context) ([]model.CardVehicle, error) {
	var cards []model.CardVehicle
	if err := GetDB(ctx, r.db).Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}
