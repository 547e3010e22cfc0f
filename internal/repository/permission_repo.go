package repository

import (
	"context"

	"cardsbackend/internal/model"

	"gorm.io/gorm"
)

// PermissionRepository defines data access for access-area permissions.
type PermissionRepository interface {
	FindByLabels(ctx context.Context, labels []string) ([]model.Permission, error)
	FindOrCreate(ctx context.Context, perm *model.Permission) error
	ListAll(ctx context.Context) ([]model.Permission, error)
}

type permissionRepository struct {
	db *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) PermissionRepository {
	return &permissionRepository{db: db}
}

// FindByLabels returns the rows whose label is in the given set. Unknown
// labels are simply not part of the result; callers attach the matched
// subset and drop the rest silently.
func (r *permissionRepository) FindByLabels(ctx context.Context, labels []string) ([]model.Permission, error) {
	perms := make([]model.Permission, 0, len(labels))
	if len(labels) == 0 {
		return perms, nil
	}
	if err := GetDB(ctx, r.db).Where("permission IN ?", labels).Find(&perms).Error; err != nil {
		return nil, err
	}
	return perms, nil
}

func (r *permissionRepository) FindOrCreate(ctx context.Context, perm *model.Permission) error {
	return GetDB(ctx, r.db).Where("permission = ?", perm.Label).FirstOrCreate(perm).Error
}

func (r *permissionRepository) ListAll(ctx context.Context) ([]model.Permission, error) {
	var perms []model.Permission
	if err := GetDB(ctx, r.db).Order("permission asc").Find(&perms).Error; err != nil {
		return nil, err
	}
	return perms, nil
}
