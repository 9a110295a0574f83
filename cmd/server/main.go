package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"synthex-backend/internal/api/routes"
	"synthex-backend/internal/auth"
	"synthex-backend/internal/cache"
	"synthex-backend/internal/config"
	"synthex-backend/internal/database"
	"synthex-backend/internal/repository"
	"synthex-backend/internal/scheduler"
	"synthex-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v76"
	"gorm.io/gorm"

	_ "synthex-backend/docs" // This is needed for swag
)

//	@title			Synthex Backend API
//	@version		1.0
//	@description	Multi-tenant marketing platform backend: organizations, workspaces, contacts, email campaigns, billing, and AI content generation.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Connect to Redis when configured; rate limiting and the AI cache
	// degrade to no-ops without it.
	redisClient, err := cache.NewClient(cfg)
	if err != nil {
		logrus.WithError(err).Warn("Redis unavailable, continuing without cache")
		redisClient = nil
	}

	// Stripe API key is process-global
	stripe.Key = cfg.StripeSecretKey

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, redisClient, cfg)

	// Background jobs: campaign dispatch and housekeeping. The scheduler
	// gets its own service wiring; campaign claims are conditional
	// updates so it is safe alongside the HTTP handlers.
	sched, err := buildScheduler(db, cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize scheduler:", err)
	}
	sched.Start()
	defer sched.Stop()

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logrus.Info("Shutting down")
		sched.Stop()
		os.Exit(0)
	}()

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func buildScheduler(db *gorm.DB, cfg *config.Config) (*scheduler.Scheduler, error) {
	campaignRepo := repository.NewCampaignRepository(db)
	recipientRepo := repository.NewRecipientRepository(db)
	contactRepo := repository.NewContactRepository(db)
	workspaceRepo := repository.NewWorkspaceRepository(db)
	organizationRepo := repository.NewOrganizationRepository(db)
	emailAccountRepo := repository.NewEmailAccountRepository(db)
	oauthStateRepo := repository.NewOAuthStateRepository(db)
	webhookEventRepo := repository.NewWebhookEventRepository(db)
	auditService := service.NewAuditService(repository.NewAuditLogRepository(db))

	var clientID, clientSecret string
	if authConfig, err := auth.LoadAuthConfig("config/auth.yaml"); err == nil {
		clientID = authConfig.Google.ClientID
		clientSecret = authConfig.Google.ClientSecret
	}

	mailer := service.NewGmailMailer(emailAccountRepo, clientID, clientSecret)
	campaignService := service.NewCampaignService(
		campaignRepo, recipientRepo, contactRepo, workspaceRepo, organizationRepo,
		mailer, auditService, validator.New(),
	)

	return scheduler.New(campaignService, oauthStateRepo, webhookEventRepo)
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
