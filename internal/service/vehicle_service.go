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

	"gorm.io/gorm"
)

var (
	ErrEntityNotFound      = errors.New("entity not found")
	ErrVehicleCardNotFound = errors.New("vehicle card not found")
)

// VehiclePayload is the nested vehicle object of the permit endpoints.
type VehiclePayload struct {
	Entity       string `json:"entity"`
	Brand        string `json:"brand"`
	Color        string `json:"color"`
	LicensePlate string `json:"licensePlate"`
	Type         string `json:"type"`
}

// SaveVehicleCardRequest is the JSON body of the vehicle permit endpoints.
// On update the top-level LicensePlate selects the permit to overwrite; the
// nested one is the (possibly corrected) new value.
type SaveVehicleCardRequest struct {
	Vehicle      VehiclePayload `json:"vehicle"`
	Expiration   time.Time      `json:"expiration"`
	CardNumber   string         `json:"cardNumber"`
	PermitType   string         `json:"permitType"`
	LicensePlate string         `json:"licensePlate"`
}

type VehicleService interface {
	CreateVehicleCard(ctx context.Context, req SaveVehicleCardRequest) error
	UpdateVehicleCard(ctx context.Context, req SaveVehicleCardRequest) error
	ListVehicleCards(ctx context.Context) ([]model.CardVehicle, error)
}

type vehicleService struct {
	entityRepo  repository.EntityRepository
	vehicleRepo repository.CardVehicleRepository
	auditRepo   repository.AuditRepository
	txManager   repository.TransactionManager
	hub         *ws.Hub
}

func NewVehicleService(
	entityRepo repository.EntityRepository,
	vehicleRepo repository.CardVehicleRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	hub *ws.Hub,
) VehicleService {
	return &vehicleService{
		entityRepo:  entityRepo,
		vehicleRepo: vehicleRepo,
		auditRepo:   auditRepo,
		txManager:   txManager,
		hub:         hub,
	}
}

// CreateVehicleCard issues a vehicle permit. Unlike the person workflow the
// named entity must already exist; a miss is a hard not-found.
func (s *vehicleService) CreateVehicleCard(ctx context.Context, req SaveVehicleCardRequest) error {
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		entity, err := s.requireEntity(txCtx, req.Vehicle.Entity)
		if err != nil {
			return err
		}

		card := &model.CardVehicle{
			EntityName:   req.Vehicle.Entity,
			Brand:        req.Vehicle.Brand,
			Color:        req.Vehicle.Color,
			CardNumber:   req.CardNumber,
			LicensePlate: req.Vehicle.LicensePlate,
			Type:         req.Vehicle.Type,
			EntityID:     entity.ID,
			Expiration:   req.Expiration,
			PermitType:   req.PermitType,
		}
		if err := s.vehicleRepo.Create(txCtx, card); err != nil {
			return fmt.Errorf("failed to create vehicle card: %w", err)
		}

		return s.audit(txCtx, model.ActionCreateVehicleCard, card)
	})
	if err != nil {
		return err
	}

	notifyHub(s.hub, "vehicle.saved", map[string]interface{}{"licensePlate": req.Vehicle.LicensePlate})
	return nil
}

// UpdateVehicleCard overwrites the permit selected by license plate.
func (s *vehicleService) UpdateVehicleCard(ctx context.Context, req SaveVehicleCardRequest) error {
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		card, err := s.vehicleRepo.FindByLicensePlate(txCtx, req.LicensePlate)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVehicleCardNotFound
			}
			return fmt.Errorf("failed to fetch vehicle card: %w", err)
		}

		entity, err := s.requireEntity(txCtx, req.Vehicle.Entity)
		if err != nil {
			return err
		}

		card.EntityName = req.Vehicle.Entity
		card.Brand = req.Vehicle.Brand
		card.Color = req.Vehicle.Color
		card.LicensePlate = req.Vehicle.LicensePlate
		card.Type = req.Vehicle.Type
		card.EntityID = entity.ID
		card.Expiration = req.Expiration
		card.PermitType = req.PermitType
		if err := s.vehicleRepo.Update(txCtx, card); err != nil {
			return fmt.Errorf("failed to update vehicle card: %w", err)
		}

		return s.audit(txCtx, model.ActionUpdateVehicleCard, card)
	})
	if err != nil {
		return err
	}

	notifyHub(s.hub, "vehicle.saved", map[string]interface{}{"licensePlate": req.Vehicle.LicensePlate})
	return nil
}

func (s *vehicleService) ListVehicleCards(ctx context.Context) ([]model.CardVehicle, error) {
	return s.vehicleRepo.ListAll(ctx)
}

func (s *vehicleService) requireEntity(ctx context.Context, name string) (*model.Entity, error) {
	entity, err := s.entityRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntityNotFound
		}
		return nil, fmt.Errorf("failed to resolve entity: %w", err)
	}
	return entity, nil
}

func (s *vehicleService) audit(ctx context.Context, action string, card *model.CardVehicle) error {
	details, _ := json.Marshal(map[string]string{
		"licensePlate": card.LicensePlate,
		"entity":       card.EntityName,
		"permitType":   card.PermitType,
	})
	return s.auditRepo.Log(ctx, &model.AuditLog{
		Action:       action,
		ResourceID:   card.ID.String(),
		ResourceName: card.LicensePlate,
		Details:      string(details),
	})
}
