package routes

import (
	"log"

	"synthex-backend/internal/api/handlers"
	"synthex-backend/internal/api/middleware"
	"synthex-backend/internal/auth"
	"synthex-backend/internal/cache"
	"synthex-backend/internal/config"
	"synthex-backend/internal/database/models"
	"synthex-backend/internal/metrics"
	"synthex-backend/internal/repository"
	"synthex-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())
	router.Use(middleware.RateLimit(redisClient, cfg.RateLimitRequests, cfg.RateLimitWindow()))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	userRepo := repository.NewUserRepository(db)
	workspaceRepo := repository.NewWorkspaceRepository(db)
	contactRepo := repository.NewContactRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	recipientRepo := repository.NewRecipientRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	webhookEventRepo := repository.NewWebhookEventRepository(db)
	oauthStateRepo := repository.NewOAuthStateRepository(db)
	emailAccountRepo := repository.NewEmailAccountRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
		// Continue without auth if config fails to load
		authConfig = nil
	}

	var authHandler *auth.AuthHandler
	var authMiddleware *auth.AuthMiddleware
	var googleClientID, googleClientSecret string
	if authConfig != nil {
		authService, err := auth.NewAuthService(authConfig, oauthStateRepo, userRepo)
		if err != nil {
			log.Printf("Warning: Failed to initialize auth service: %v", err)
		} else {
			authHandler = auth.NewAuthHandler(authService)
			authMiddleware = auth.NewAuthMiddleware(authService, membershipRepo)
		}
		googleClientID = authConfig.Google.ClientID
		googleClientSecret = authConfig.Google.ClientSecret
	}

	// Initialize services
	auditService := service.NewAuditService(auditLogRepo)
	organizationService := service.NewOrganizationService(organizationRepo, membershipRepo, userRepo, auditService, validator, cfg.TrialDays)
	workspaceService := service.NewWorkspaceService(workspaceRepo, organizationRepo, auditService, validator)
	contactService := service.NewContactService(contactRepo, workspaceRepo, organizationRepo, auditService, validator)
	mailer := service.NewGmailMailer(emailAccountRepo, googleClientID, googleClientSecret)
	campaignService := service.NewCampaignService(campaignRepo, recipientRepo, contactRepo, workspaceRepo, organizationRepo, mailer, auditService, validator)
	creditMeter := service.NewCreditMeter(redisClient)
	billingService := service.NewBillingService(organizationRepo, subscriptionRepo, workspaceRepo, contactRepo, campaignRepo, creditMeter, auditService, validator, cfg)
	webhookService := service.NewWebhookService(webhookEventRepo, subscriptionRepo, organizationRepo, billingService, auditService)
	aiCache := cache.New(redisClient, "synthex")
	aigenService := service.NewAIGenService(organizationRepo, auditService, aiCache, creditMeter, validator, cfg)
	emailAccountService := service.NewEmailAccountService(emailAccountRepo, workspaceRepo, auditService, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, redisClient)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	workspaceHandler := handlers.NewWorkspaceHandler(workspaceService)
	contactHandler := handlers.NewContactHandler(contactService, workspaceService)
	campaignHandler := handlers.NewCampaignHandler(campaignService, workspaceService)
	billingHandler := handlers.NewBillingHandler(billingService)
	webhookHandler := handlers.NewWebhookHandler(webhookService, cfg.StripeWebhookSecret)
	aigenHandler := handlers.NewAIGenHandler(aigenService)
	emailAccountHandler := handlers.NewEmailAccountHandler(emailAccountService, workspaceService)
	auditHandler := handlers.NewAuditHandler(auditService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", metrics.Handler())

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Webhook routes are public; deliveries authenticate with the
	// provider signature, not a bearer token.
	router.POST("/webhooks/stripe", webhookHandler.HandleStripe)

	// Auth routes
	if authHandler != nil {
		authGroup := router.Group("/api/auth")
		{
			google := authGroup.Group("/google")
			{
				google.GET("/start", authHandler.Start)
				google.GET("/callback", authHandler.Callback)
			}
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/logout", authHandler.Logout)
			authGroup.GET("/validate", authHandler.Validate)
		}
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")

	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		// Organization routes
		organizations := v1.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListMyOrganizations)
			organizations.POST("", organizationHandler.CreateOrganization)
		}

		// Routes below operate on a single organization and require
		// membership; the middleware resolves the caller's role from
		// the :id path parameter.
		org := v1.Group("/organizations/:id")

		member := org.Group("")
		admin := org.Group("")
		owner := org.Group("")
		if authMiddleware != nil {
			member.Use(authMiddleware.RequireOrganizationRole(models.RoleMember))
			admin.Use(authMiddleware.RequireOrganizationRole(models.RoleAdmin))
			owner.Use(authMiddleware.RequireOrganizationRole(models.RoleOwner))
		}

		{
			member.GET("", organizationHandler.GetOrganization)
			admin.PUT("", organizationHandler.UpdateOrganization)
			owner.DELETE("", organizationHandler.DeleteOrganization)

			// Membership management
			member.GET("/members", organizationHandler.GetMembers)
			admin.POST("/members", organizationHandler.AddMember)
			admin.PUT("/members/:member_id", organizationHandler.UpdateMemberRole)
			admin.DELETE("/members/:member_id", organizationHandler.RemoveMember)

			// Workspaces
			member.GET("/workspaces", workspaceHandler.ListWorkspaces)
			admin.POST("/workspaces", workspaceHandler.CreateWorkspace)
			member.GET("/workspaces/:workspace_id", workspaceHandler.GetWorkspace)
			admin.PUT("/workspaces/:workspace_id", workspaceHandler.UpdateWorkspace)
			admin.DELETE("/workspaces/:workspace_id", workspaceHandler.DeleteWorkspace)

			// Contacts
			contacts := member.Group("/workspaces/:workspace_id/contacts")
			{
				contacts.GET("", contactHandler.ListContacts)
				contacts.POST("", contactHandler.CreateContact)
				contacts.POST("/import", contactHandler.ImportContacts)
				contacts.GET("/:contact_id", contactHandler.GetContact)
				contacts.PUT("/:contact_id", contactHandler.UpdateContact)
				contacts.POST("/:contact_id/unsubscribe", contactHandler.UnsubscribeContact)
				contacts.POST("/:contact_id/lead-score", contactHandler.AdjustLeadScore)
				contacts.DELETE("/:contact_id", contactHandler.DeleteContact)
			}

			// Campaigns
			campaigns := member.Group("/workspaces/:workspace_id/campaigns")
			{
				campaigns.GET("", campaignHandler.ListCampaigns)
				campaigns.POST("", campaignHandler.CreateCampaign)
				campaigns.GET("/:campaign_id", campaignHandler.GetCampaign)
				campaigns.PUT("/:campaign_id", campaignHandler.UpdateCampaign)
				campaigns.POST("/:campaign_id/schedule", campaignHandler.ScheduleCampaign)
				campaigns.POST("/:campaign_id/send-now", campaignHandler.SendCampaignNow)
				campaigns.POST("/:campaign_id/pause", campaignHandler.PauseCampaign)
				campaigns.POST("/:campaign_id/resume", campaignHandler.ResumeCampaign)
				campaigns.DELETE("/:campaign_id", campaignHandler.DeleteCampaign)
			}

			// Sending accounts
			member.GET("/workspaces/:workspace_id/email-account", emailAccountHandler.GetEmailAccount)
			admin.POST("/workspaces/:workspace_id/email-account", emailAccountHandler.ConnectEmailAccount)
			admin.DELETE("/workspaces/:workspace_id/email-account/:account_id", emailAccountHandler.DisconnectEmailAccount)

			// Billing
			member.GET("/billing", billingHandler.GetBillingOverview)
			admin.POST("/billing/checkout", billingHandler.CreateCheckoutSession)
			admin.POST("/billing/portal", billingHandler.CreatePortalSession)

			// AI content generation
			member.POST("/ai/generate", aigenHandler.GenerateContent)

			// Audit trail
			admin.GET("/audit-logs", auditHandler.ListAuditLogs)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(middleware.RequestIDKey),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, nil)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)

	return router
}
