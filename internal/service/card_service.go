package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cardsbackend/internal/model"
	"cardsbackend/internal/repository"
	ws "cardsbackend/internal/websocket"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sentinel errors the handlers map onto the 400/404 side of the taxonomy.
// Everything else surfaces through the catch-all response.
var (
	ErrPersonIDRequired = errors.New("person ID is required for update")
	ErrPersonNotFound   = errors.New("person not found")
)

// SaveCardRequest carries the multipart fields of the card save endpoints.
// AccessType is the raw JSON-encoded list of permission labels as the front
// end submits it. ImagePath is the stored upload path, nil when no file was
// part of the request.
type SaveCardRequest struct {
	PersonID   string
	Name       string
	Job        string
	Escort     string
	Entity     string
	Expiration string
	CardNumber string
	AccessType string
	ImagePath  *string
}

// SaveEvent is the hub payload pushed to connected admin views whenever a
// save workflow commits.
type SaveEvent struct {
	Event string                 `json:"event"`
	Data  map[string]interface{} `json:"data"`
}

// notifyHub pushes a save event to connected clients. A nil hub is a no-op
// so services can run without one in tests.
func notifyHub(hub *ws.Hub, event string, data map[string]interface{}) {
	if hub == nil {
		return
	}
	payload, err := json.Marshal(SaveEvent{Event: event, Data: data})
	if err != nil {
		return
	}
	hub.Broadcast <- payload
}

type CardService interface {
	CreateCard(ctx context.Context, req SaveCardRequest) error
	UpdateCard(ctx context.Context, req SaveCardRequest) error
	ListCards(ctx context.Context) ([]model.Card, error)
}

type cardService struct {
	entityRepo     repository.EntityRepository
	personRepo     repository.PersonRepository
	permissionRepo repository.PermissionRepository
	cardRepo       repository.CardRepository
	auditRepo      repository.AuditRepository
	txManager      repository.TransactionManager
	hub            *ws.Hub
}

func NewCardService(
	entityRepo repository.EntityRepository,
	personRepo repository.PersonRepository,
	permissionRepo repository.PermissionRepository,
	cardRepo repository.CardRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	hub *ws.Hub,
) CardService {
	return &cardService{
		entityRepo:     entityRepo,
		personRepo:     personRepo,
		permissionRepo: permissionRepo,
		cardRepo:       cardRepo,
		auditRepo:      auditRepo,
		txManager:      txManager,
		hub:            hub,
	}
}

// CreateCard runs the person+card issue workflow: resolve the entity (a miss
// is not an error, the person just gets no entity reference), create the
// person, attach the matched subset of the requested permission labels, then
// create the owned card. The whole sequence is one transaction, so a failed
// step leaves no orphaned rows.
func (s *cardService) CreateCard(ctx context.Context, req SaveCardRequest) error {
	labels, err := decodeAccessType(req.AccessType)
	if err != nil {
		return err
	}
	expiration, err := parseExpiration(req.Expiration)
	if err != nil {
		return err
	}

	var personID uuid.UUID
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		entityID, err := s.resolveEntityID(txCtx, req.Entity)
		if err != nil {
			return err
		}

		person := &model.Person{
			Name:     req.Name,
			Job:      req.Job,
			Escort:   req.Escort,
			Image:    req.ImagePath,
			EntityID: entityID,
		}
		if err := s.personRepo.Create(txCtx, person); err != nil {
			return fmt.Errorf("failed to create person: %w", err)
		}

		perms, err := s.permissionRepo.FindByLabels(txCtx, labels)
		if err != nil {
			return fmt.Errorf("failed to fetch permissions: %w", err)
		}
		if len(perms) > 0 {
			if err := s.personRepo.AttachPermissions(txCtx, person, perms); err != nil {
				return fmt.Errorf("failed to attach permissions: %w", err)
			}
		}

		card := &model.Card{
			Expiration: expiration,
			CardNumber: req.CardNumber,
			PersonID:   person.ID,
		}
		if err := s.cardRepo.Create(txCtx, card); err != nil {
			return fmt.Errorf("failed to create card: %w", err)
		}

		personID = person.ID
		return s.audit(txCtx, model.ActionCreateCard, card.ID.String(), req.Name, req)
	})
	if err != nil {
		return err
	}

	notifyHub(s.hub, "card.saved", map[string]interface{}{"personId": personID.String()})
	return nil
}

// UpdateCard overwrites an existing person and their card. The permission
// set is replaced, not merged: labels absent from the new payload are
// detached even if previously present. When no new image was uploaded the
// stored path is retained. A person who somehow has no card gets one created,
// self-healing that state.
func (s *cardService) UpdateCard(ctx context.Context, req SaveCardRequest) error {
	if req.PersonID == "" {
		return ErrPersonIDRequired
	}
	personID, err := uuid.Parse(req.PersonID)
	if err != nil {
		return ErrPersonNotFound
	}

	labels, err := decodeAccessType(req.AccessType)
	if err != nil {
		return err
	}
	expiration, err := parseExpiration(req.Expiration)
	if err != nil {
		return err
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		person, err := s.personRepo.FindByID(txCtx, personID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPersonNotFound
			}
			return fmt.Errorf("failed to fetch person: %w", err)
		}

		entityID, err := s.resolveEntityID(txCtx, req.Entity)
		if err != nil {
			return err
		}

		person.Name = req.Name
		person.Job = req.Job
		person.Escort = req.Escort
		person.EntityID = entityID
		if req.ImagePath != nil {
			person.Image = req.ImagePath
		}
		if err := s.personRepo.Update(txCtx, person); err != nil {
			return fmt.Errorf("failed to update person: %w", err)
		}

		perms, err := s.permissionRepo.FindByLabels(txCtx, labels)
		if err != nil {
			return fmt.Errorf("failed to fetch permissions: %w", err)
		}
		if err := s.personRepo.ReplacePermissions(txCtx, person, perms); err != nil {
			return fmt.Errorf("failed to replace permissions: %w", err)
		}

		card, err := s.cardRepo.FindByPersonID(txCtx, person.ID)
		switch {
		case err == nil:
			card.Expiration = expiration
			card.CardNumber = req.CardNumber
			if err := s.cardRepo.Update(txCtx, card); err != nil {
				return fmt.Errorf("failed to update card: %w", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			card = &model.Card{
				Expiration: expiration,
				CardNumber: req.CardNumber,
				PersonID:   person.ID,
			}
			if err := s.cardRepo.Create(txCtx, card); err != nil {
				return fmt.Errorf("failed to create card: %w", err)
			}
		default:
			return fmt.Errorf("failed to fetch card: %w", err)
		}

		return s.audit(txCtx, model.ActionUpdateCard, card.ID.String(), req.Name, req)
	})
	if err != nil {
		return err
	}

	notifyHub(s.hub, "card.saved", map[string]interface{}{"personId": personID.String()})
	return nil
}

func (s *cardService) ListCards(ctx context.Context) ([]model.Card, error) {
	return s.cardRepo.ListAllJoined(ctx)
}

// resolveEntityID looks the entity up by exact name. A miss yields a nil
// reference rather than an error; only real storage failures propagate.
func (s *cardService) resolveEntityID(ctx context.Context, name string) (*uuid.UUID, error) {
	entity, err := s.entityRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve entity: %w", err)
	}
	return &entity.ID, nil
}

func (s *cardService) audit(ctx context.Context, action, resourceID, resourceName string, req SaveCardRequest) error {
	details, _ := json.Marshal(map[string]string{
		"cardNumber": req.CardNumber,
		"entity":     req.Entity,
		"expiration": req.Expiration,
	})
	return s.auditRepo.Log(ctx, &model.AuditLog{
		Action:       action,
		ResourceID:   resourceID,
		ResourceName: resourceName,
		Details:      string(details),
	})
}

// decodeAccessType parses the JSON-encoded permission label list. A payload
// that is not a JSON string array is a client bug; it surfaces through the
// catch-all response like any other failure.
func decodeAccessType(raw string) ([]string, error) {
	var labels []string
	if err := json.Unmarshal([]byte(raw), &labels); err != nil {
		return nil, fmt.Errorf("invalid accessType payload: %w", err)
	}
	return labels, nil
}

var expirationLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

func parseExpiration(raw string) (time.Time, error) {
	for _, layout := range expirationLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid expiration date %q", raw)
}
