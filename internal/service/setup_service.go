package service

import (
	"context"
	"fmt"

	"cardsbackend/internal/model"
	"cardsbackend/internal/repository"
)

// Pick-list payloads, named after the form fields the front end submits.

type CreateEntityRequest struct {
	Name string `json:"name"`
}

type CreateFunctionRequest struct {
	PersonFunction string `json:"personFunction"`
}

type CreateEscortRequest struct {
	PersonEscort string `json:"personEscort"`
}

type CreateVehicleBrandRequest struct {
	Brand string `json:"brand"`
}

// SetupService manages the setup tables: sponsoring entities and the
// dropdown pick lists. It also seeds the access-area permission labels.
type SetupService interface {
	CreateEntity(ctx context.Context, req CreateEntityRequest) error
	ListEntities(ctx context.Context) ([]model.Entity, error)
	CreateFunction(ctx context.Context, req CreateFunctionRequest) error
	ListFunctions(ctx context.Context) ([]model.Function, error)
	CreateEscort(ctx context.Context, req CreateEscortRequest) error
	ListEscorts(ctx context.Context) ([]model.Escort, error)
	CreateVehicleBrand(ctx context.Context, req CreateVehicleBrandRequest) error
	ListVehicleBrands(ctx context.Context) ([]model.VehicleBrand, error)
	SeedAccessPermissions(ctx context.Context) error
}

type setupService struct {
	entityRepo     repository.EntityRepository
	lookupRepo     repository.LookupRepository
	permissionRepo repository.PermissionRepository
}

func NewSetupService(
	entityRepo repository.EntityRepository,
	lookupRepo repository.LookupRepository,
	permissionRepo repository.PermissionRepository,
) SetupService {
	return &setupService{
		entityRepo:     entityRepo,
		lookupRepo:     lookupRepo,
		permissionRepo: permissionRepo,
	}
}

func (s *setupService) CreateEntity(ctx context.Context, req CreateEntityRequest) error {
	return s.entityRepo.Create(ctx, &model.Entity{Name: req.Name})
}

func (s *setupService) ListEntities(ctx context.Context) ([]model.Entity, error) {
	return s.entityRepo.ListAll(ctx)
}

func (s *setupService) CreateFunction(ctx context.Context, req CreateFunctionRequest) error {
	return s.lookupRepo.CreateFunction(ctx, &model.Function{PersonFunction: req.PersonFunction})
}

func (s *setupService) ListFunctions(ctx context.Context) ([]model.Function, error) {
	return s.lookupRepo.ListFunctions(ctx)
}

func (s *setupService) CreateEscort(ctx context.Context, req CreateEscortRequest) error {
	return s.lookupRepo.CreateEscort(ctx, &model.Escort{PersonEscort: req.PersonEscort})
}

func (s *setupService) ListEscorts(ctx context.Context) ([]model.Escort, error) {
	return s.lookupRepo.ListEscorts(ctx)
}

func (s *setupService) CreateVehicleBrand(ctx context.Context, req CreateVehicleBrandRequest) error {
	return s.lookupRepo.CreateVehicleBrand(ctx, &model.VehicleBrand{Brand: req.Brand})
}

func (s *setupService) ListVehicleBrands(ctx context.Context) ([]model.VehicleBrand, error) {
	return s.lookupRepo.ListVehicleBrands(ctx)
}

// SeedAccessPermissions creates the access-area labels if not already
// present. Idempotent; runs at every startup.
func (s *setupService) SeedAccessPermissions(ctx context.Context) error {
	labels := []string{"A", "B", "C", "D", "E", "F"}
	for _, label := range labels {
		perm := model.Permission{Label: label}
		if err := s.permissionRepo.FindOrCreate(ctx, &perm); err != nil {
			return fmt.Errorf("failed to seed permission %q: %w", label, err)
		}
	}
	return nil
}
