package main

import (
	"context"
	"log"
	"os"

	"cardsbackend/internal/database"
	"cardsbackend/internal/handler"
	"cardsbackend/internal/repository"
	"cardsbackend/internal/service"
	"cardsbackend/internal/upload"
	"cardsbackend/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Badge & Credential API
// @version         1.0
// @description     CRUD backend for the access-control badge office: persons, cards, vehicle permits and setup pick lists.
// @host            localhost:8080
// @BasePath        /
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbSslMode := os.Getenv("DB_SSLMODE")

	if dbHost == "" {
		dbHost = "localhost"
	}
	if dbPort == "" {
		dbPort = "5432"
	}
	if dbUser == "" {
		dbUser = "postgres"
	}
	if dbPassword == "" {
		dbPassword = "postgres"
	}
	if dbName == "" {
		dbName = "sga_cards"
	}
	if dbSslMode == "" {
		dbSslMode = "disable"
	}

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	uploads := upload.NewStore(uploadDir)

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	entityRepo := repository.NewEntityRepository(db)
	personRepo := repository.NewPersonRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	cardRepo := repository.NewCardRepository(db)
	vehicleRepo := repository.NewCardVehicleRepository(db)
	lookupRepo := repository.NewLookupRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	txManager := repository.NewTransactionManager(db)

	cardService := service.NewCardService(entityRepo, personRepo, permissionRepo, cardRepo, auditRepo, txManager, wsHub)
	vehicleService := service.NewVehicleService(entityRepo, vehicleRepo, auditRepo, txManager, wsHub)
	setupService := service.NewSetupService(entityRepo, lookupRepo, permissionRepo)
	auditService := service.NewAuditService(auditRepo)

	if err := setupService.SeedAccessPermissions(context.Background()); err != nil {
		log.Fatalf("Permission seeding failed: %v", err)
	}

	// Initialize Handlers
	cardHandler := handler.NewCardHandler(cardService, uploads)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	setupHandler := handler.NewSetupHandler(setupService)
	auditHandler := handler.NewAuditHandler(auditService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration: the admin front end sends api-key/user headers
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "api-key", "user"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Stored badge photos are served back as static files
	router.Static("/uploads", uploadDir)

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c)
	})

	// Register API Routes
	cardHandler.RegisterRoutes(router.Group(""))
	vehicleHandler.RegisterRoutes(router.Group(""))
	setupHandler.RegisterRoutes(router.Group(""))
	auditHandler.RegisterRoutes(router.Group(""))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
