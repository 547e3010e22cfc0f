package repository

import (
	"context"

	"cardsbackend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonRepository defines data access for persons, including the typed
// relation-mutation operations on the permission set. Attach appends to the
// set; Replace swaps it wholesale, removing labels absent from the new set.
type PersonRepository interface {
	Create(ctx context.Context, person *model.Person) error
	Update(ctx context.Context, person *model.Person) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Person, error)
	AttachPermissions(ctx context.Context, person *model.Person, perms []model.Permission) error
	ReplacePermissions(ctx context.Context, person *model.Person, perms []model.Permission) error
}

type personRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) PersonRepository {
	return &personRepository{db: db}
}

func (r *personRepository) Create(ctx context.Context, person *model.Person) error {
	return GetDB(ctx, r.db).Create(person).Error
}

func (r *personRepository) Update(ctx context.Context, person *model.Person) error {
	return GetDB(ctx, r.db).Save(person).Error
}

func (r *personRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Person, error) {
	var person model.Person
	if err := GetDB(ctx, r.db).First(&person, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *personRepository) AttachPermissions(ctx context.Context, person *model.Person, perms []model.Permission) error {
	return GetDB(ctx, r.db).Model(person).Association("Permissions").Append(perms)
}

func (r *personRepository) ReplacePermissions(ctx context.Context, person *model.Person, perms []model.Permission) error {
	return GetDB(ctx, r.db).Model(person).Association("Permissions").Replace(perms)
}
