package service

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"cardsbackend/internal/database"
	"cardsbackend/internal/model"
	"cardsbackend/internal/repository"
	ws "cardsbackend/internal/websocket"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type vehicleServiceFixture struct {
	db  *gorm.DB
	svc VehicleService
}

func newVehicleServiceFixture(t *testing.T) *vehicleServiceFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	svc := NewVehicleService(
		repository.NewEntityRepository(db),
		repository.NewCardVehicleRepository(db),
		repository.NewAuditRepository(db),
		repository.NewTransactionManager(db),
		nil,
	)

	return &vehicleServiceFixture{db: db, svc: svc}
}

func (f *vehicleServiceFixture) createEntity(t *testing.T, name string) model.Entity {
	t.Helper()
	entity := model.Entity{Name: name}
	require.NoError(t, f.db.Create(&entity).Error)
	return entity
}

func validVehicleRequest() SaveVehicleCardRequest {
	return SaveVehicleCardRequest{
		Vehicle: VehiclePayload{
			Entity:       "ACME",
			Brand:        "Ford",
			Color:        "Blue",
			LicensePlate: "ABC-1234",
			Type:         "Truck",
		},
		Expiration: time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC),
		CardNumber: "V-2001",
		PermitType: "Delivery",
	}
}

func TestCreateVehicleCard(t *testing.T) {
	f := newVehicleServiceFixture(t)
	entity := f.createEntity(t, "ACME")

	require.NoError(t, f.svc.CreateVehicleCard(context.Background(), validVehicleRequest()))

	cards, err := f.svc.ListVehicleCards(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "ABC-1234", cards[0].LicensePlate)
	assert.Equal(t, "ACME", cards[0].EntityName)
	assert.Equal(t, entity.ID, cards[0].EntityID)
	assert.Equal(t, "Delivery", cards[0].PermitType)
}

func TestCreateVehicleCardUnknownEntityWritesNothing(t *testing.T) {
	f := newVehicleServiceFixture(t)

	err := f.svc.CreateVehicleCard(context.Background(), validVehicleRequest())
	assert.ErrorIs(t, err, ErrEntityNotFound)

	var count int64
	require.NoError(t, f.db.Model(&model.CardVehicle{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateVehicleCardByLicensePlate(t *testing.T) {
	f := newVehicleServiceFixture(t)
	f.createEntity(t, "ACME")
	require.NoError(t, f.svc.CreateVehicleCard(context.Background(), validVehicleRequest()))

	update := validVehicleRequest()
	update.LicensePlate = "ABC-1234"
	update.Vehicle.Color = "Red"
	update.Vehicle.LicensePlate = "XYZ-9876"
	update.PermitType = "Staff"

	require.NoError(t, f.svc.UpdateVehicleCard(context.Background(), update))

	cards, err := f.svc.ListVehicleCards(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "Red", cards[0].Color)
	assert.Equal(t, "XYZ-9876", cards[0].LicensePlate)
	assert.Equal(t, "Staff", cards[0].PermitType)
}

func TestVehicleSavesBroadcastHubEvents(t *testing.T) {
	ctx := context.Background()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, db.Create(&model.Entity{Name: "ACME"}).Error)

	hub := ws.NewHub()
	svc := NewVehicleService(
		repository.NewEntityRepository(db),
		repository.NewCardVehicleRepository(db),
		repository.NewAuditRepository(db),
		repository.NewTransactionManager(db),
		hub,
	)

	events := make(chan []byte, 2)
	go func() {
		for i := 0; i < 2; i++ {
			events <- <-hub.Broadcast
		}
	}()

	receive := func() SaveEvent {
		t.Helper()
		select {
		case payload := <-events:
			var ev SaveEvent
			require.NoError(t, json.Unmarshal(payload, &ev))
			return ev
		case <-time.After(time.Second):
			t.Fatal("no hub event received")
			return SaveEvent{}
		}
	}

	require.NoError(t, svc.CreateVehicleCard(ctx, validVehicleRequest()))
	ev := receive()
	assert.Equal(t, "vehicle.saved", ev.Event)
	assert.Equal(t, "ABC-1234", ev.Data["licensePlate"])

	update := validVehicleRequest()
	update.LicensePlate = "ABC-1234"
	update.Vehicle.LicensePlate = "XYZ-9876"
	require.NoError(t, svc.UpdateVehicleCard(ctx, update))
	ev = receive()
	assert.Equal(t, "vehicle.saved", ev.Event)
	assert.Equal(t, "XYZ-9876", ev.Data["licensePlate"])
}

func TestUpdateVehicleCardUnknownPlate(t *testing.T) {
	f := newVehicleServiceFixture(t)
	f.createEntity(t, "ACME")

	update := validVehicleRequest()
	update.LicensePlate = "NO-SUCH-1"

	err := f.svc.UpdateVehicleCard(context.Background(), update)
	assert.ErrorIs(t, err, ErrVehicleCardNotFound)
}

func TestUpdateVehicleCardUnknownEntity(t *testing.T) {
	f := newVehicleServiceFixture(t)
	f.createEntity(t, "ACME")
	require.NoError(t, f.svc.CreateVehicleCard(context.Background(), validVehicleRequest()))

	update := validVehicleRequest()
	update.LicensePlate = "ABC-1234"
	update.Vehicle.Entity = "Ghost Corp"
	update.Vehicle.Color = "Red"

	err := f.svc.UpdateVehicleCard(context.Background(), update)
	assert.ErrorIs(t, err, ErrEntityNotFound)

	cards, err := f.svc.ListVehicleCards(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "Blue", cards[0].Color)
}
