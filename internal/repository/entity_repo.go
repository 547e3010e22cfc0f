package repository

import (
	"context"

	"cardsbackend/internal/model"

	"gorm.io/gorm"
)

// EntityRepository defines data access for sponsoring entities.
type EntityRepository interface {
	Create(ctx context.Context, entity *model.Entity) error
	FindByName(ctx context.Context, name string) (*model.Entity, error)
	ListAll(ctx context.Context) ([]model.Entity, error)
}

type entityRepository struct {
	db *gorm.DB
}

func NewEntityRepository(db *gorm.DB) EntityRepository {
	return &entityRepository{db: db}
}

func (r *entityRepository) Create(ctx context.Context, entity *model.Entity) error {
	return GetDB(ctx, r.db).Create(entity).Error
}

// FindByName matches by exact name, no case normalization.
func (r *entityRepository) FindByName(ctx context.Context, name string) (*model.Entity, error) {
	var entity model.Entity
	if err := GetDB(ctx, r.db).Where("name = ?", name).First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *entityRepository) ListAll(ctx context.Context) ([]model.Entity, error) {
	var entities []model.Entity
	if err := GetDB(ctx, r.db).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}
