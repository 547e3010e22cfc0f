package repository

import (
	"context"

	"cardsbackend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CardRepository defines data access for badge cards.
type CardRepository interface {
	Create(ctx context.Context, card *model.Card) error
	Update(ctx context.Context, card *model.Card) error
	FindByPersonID(ctx context.Context, personID uuid.UUID) (*model.Card, error)
	ListAllJoined(ctx context.Context) ([]model.Card, error)
}

type cardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) Create(ctx context.Context, card *model.Card) error {
	return GetDB(ctx, r.db).Create(card).Error
}

func (r *cardRepository) Update(ctx context.Context, card *model.Card) error {
	return GetDB(ctx, r.db).Save(card).Error
}

func (r *cardRepository) FindByPersonID(ctx context.Context, personID uuid.UUID) (*model.Card, error) {
	var card model.Card
	if err := GetDB(ctx, r.db).Where("person_id = ?", personID).First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// ListAllJoined returns every card with its person, that person's entity and
// permission set. No ordering is applied; the listing contract is "return
// every row, fully joined".
func (r *cardRepository) ListAllJoined(ctx context.Context) ([]model.Card, error) {
	var cards []model.Card
	err := GetDB(ctx, r.db).
		Preload("Person").
		Preload("Person.Entity").
		Preload("Person.Permissions").
		Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}
