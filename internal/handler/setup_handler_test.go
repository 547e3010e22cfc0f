package handler

import (
	"net/http"
	"testing"

	"cardsbackend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupEntitySaveAndGetAll(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/setup/entity/save", service.CreateEntityRequest{Name: "ACME"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doGet(t, router, "/setup/entity/getAll")
	require.Equal(t, http.StatusOK, w.Code)

	var entities []map[string]interface{}
	decodeBody(t, w, &entities)
	require.Len(t, entities, 1)
	assert.Equal(t, "ACME", entities[0]["name"])
}

func TestSetupPickListsSaveAndGetAll(t *testing.T) {
	router, _ := newTestRouter(t)

	require.Equal(t, http.StatusOK,
		doJSON(t, router, http.MethodPost, "/setup/function/save", service.CreateFunctionRequest{PersonFunction: "Welder"}).Code)
	require.Equal(t, http.StatusOK,
		doJSON(t, router, http.MethodPost, "/setup/escort/save", service.CreateEscortRequest{PersonEscort: "Escorted"}).Code)
	require.Equal(t, http.StatusOK,
		doJSON(t, router, http.MethodPost, "/setup/vehicle/save", service.CreateVehicleBrandRequest{Brand: "Ford"}).Code)

	var fns []map[string]interface{}
	decodeBody(t, doGet(t, router, "/setup/function/getAll"), &fns)
	require.Len(t, fns, 1)
	assert.Equal(t, "Welder", fns[0]["personFunction"])

	var escorts []map[string]interface{}
	decodeBody(t, doGet(t, router, "/setup/escort/getAll"), &escorts)
	require.Len(t, escorts, 1)
	assert.Equal(t, "Escorted", escorts[0]["personEscort"])

	var brands []map[string]interface{}
	decodeBody(t, doGet(t, router, "/setup/vehicle/getAll"), &brands)
	require.Len(t, brands, 1)
	assert.Equal(t, "Ford", brands[0]["brand"])
}

func TestAuditTrailListsSaves(t *testing.T) {
	router, db := newTestRouter(t)
	createEntity(t, db, "ACME")

	w := doMultipart(t, router, http.MethodPost, "/card/save", validCardFields(), true)
	require.Equal(t, http.StatusOK, w.Code)

	w = doGet(t, router, "/audit/getAll")
	require.Equal(t, http.StatusOK, w.Code)

	var logs []map[string]interface{}
	decodeBody(t, w, &logs)
	require.Len(t, logs, 1)
	assert.Equal(t, "CREATE_CARD", logs[0]["action"])
	assert.Equal(t, "John Doe", logs[0]["resourceName"])
}
