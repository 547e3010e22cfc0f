package repository

import (
	"context"

	"cardsbackend/internal/model"

	"gorm.io/gorm"
)

// LookupRepository defines data access for the pick-list tables feeding the
// front end's dropdowns.
type LookupRepository interface {
	CreateFunction(ctx context.Context, fn *model.Function) error
	ListFunctions(ctx context.Context) ([]model.Function, error)
	CreateEscort(ctx context.Context, escort *model.Escort) error
	ListEscorts(ctx context.Context) ([]model.Escort, error)
	CreateVehicleBrand(ctx context.Context, brand *model.VehicleBrand) error
	ListVehicleBrands(ctx context.Context) ([]model.VehicleBrand, error)
}

type lookupRepository struct {
	db *gorm.DB
}

func NewLookupRepository(db *gorm.DB) LookupRepository {
	return &lookupRepository{db: db}
}

func (r *lookupRepository) CreateFunction(ctx context.Context, fn *model.Function) error {
	return GetDB(ctx, r.db).Create(fn).Error
}

func (r *lookupRepository) ListFunctions(ctx context.Context) ([]model.Function, error) {
	var fns []model.Function
	if err := GetDB(ctx, r.db).Find(&fns).Error; err != nil {
		return nil, err
	}
	return fns, nil
}

func (r *lookupRepository) CreateEscort(ctx context.Context, escort *model.Escort) error {
	return GetDB(ctx, r.db).Create(escort).Error
}

func (r *lookupRepository) ListEscorts(ctx context.Context) ([]model.Escort, error) {
	var escorts []model.Escort
	if err := GetDB(ctx, r.db).Find(&escorts).Error; err != nil {
		return nil, err
	}
	return escorts, nil
}

func (r *lookupRepository) CreateVehicleBrand(ctx context.Context, brand *model.VehicleBrand) error {
	return GetDB(ctx, r.db).Create(brand).Error
}

func (r *lookupRepository) ListVehicleBrands(ctx context.Context) ([]model.VehicleBrand, error) {
	var brands []model.VehicleBrand
	if err := GetDB(ctx, r.db).Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}
