package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"cardsbackend/internal/database"
	"cardsbackend/internal/model"
	"cardsbackend/internal/repository"
	"cardsbackend/internal/service"
	"cardsbackend/internal/upload"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestRouter wires the full handler stack against an in-memory database,
// with permissions A-F seeded, mirroring the production wiring in cmd/api.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	entityRepo := repository.NewEntityRepository(db)
	personRepo := repository.NewPersonRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	cardRepo := repository.NewCardRepository(db)
	vehicleRepo := repository.NewCardVehicleRepository(db)
	lookupRepo := repository.NewLookupRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	txManager := repository.NewTransactionManager(db)

	cardService := service.NewCardService(entityRepo, personRepo, permissionRepo, cardRepo, auditRepo, txManager, nil)
	vehicleService := service.NewVehicleService(entityRepo, vehicleRepo, auditRepo, txManager, nil)
	setupService := service.NewSetupService(entityRepo, lookupRepo, permissionRepo)
	auditService := service.NewAuditService(auditRepo)

	require.NoError(t, setupService.SeedAccessPermissions(context.Background()))

	uploads := upload.NewStore(t.TempDir())

	router := gin.New()
	NewCardHandler(cardService, uploads).RegisterRoutes(router.Group(""))
	NewVehicleHandler(vehicleService).RegisterRoutes(router.Group(""))
	NewSetupHandler(setupService).RegisterRoutes(router.Group(""))
	NewAuditHandler(auditService).RegisterRoutes(router.Group(""))

	return router, db
}

func createEntity(t *testing.T, db *gorm.DB, name string) model.Entity {
	t.Helper()
	entity := model.Entity{Name: name}
	require.NoError(t, db.Create(&entity).Error)
	return entity
}

// cardForm builds the multipart body of the card save endpoints, optionally
// including a one-pixel image part.
func cardForm(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if withImage {
		part, err := writer.CreateFormFile("image", "badge.png")
		require.NoError(t, err)
		_, err = part.Write([]byte{0x89, 0x50, 0x4e, 0x47})
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func doMultipart(t *testing.T, router *gin.Engine, method, target string, fields map[string]string, withImage bool) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := cardForm(t, fields, withImage)
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doJSON(t *testing.T, router *gin.Engine, method, target string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doGet(t *testing.T, router *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
