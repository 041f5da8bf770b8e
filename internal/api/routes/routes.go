package routes

import (
	"net/http"

	"psicomapa-backend/internal/api/handlers"
	"psicomapa-backend/internal/api/middleware"
	"psicomapa-backend/internal/auth"
	"psicomapa-backend/internal/config"
	"psicomapa-backend/internal/database/models"
	"psicomapa-backend/internal/notify"
	"psicomapa-backend/internal/observability"
	"psicomapa-backend/internal/ratelimit"
	"psicomapa-backend/internal/repository"
	"psicomapa-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// Infrastructure carries the external clients the services talk to. Nil
// fields fall back to no-op implementations.
type Infrastructure struct {
	Metrics      *observability.Metrics
	Tracer       trace.Tracer
	Limiter      ratelimit.Limiter
	Mailer       notify.Mailer
	Events       notify.Publisher
	Checkout     service.CheckoutSessionCreator
	Plans        *service.PlanCatalog
	HealthChecks map[string]handlers.DependencyCheck
}

// Services is the wired service layer shared by the router, the scheduler and the CLI
type Services struct {
	Organizations  *service.OrganizationService
	Profiles       *service.ProfileService
	Questionnaires *service.QuestionnaireService
	Assessments    *service.AssessmentService
	Responses      *service.PublicResponseService
	Analytics      *service.AnalyticsService
	Reports        *service.ReportService
	ActionItems    *service.ActionItemService
	Billing        *service.BillingService
	DevSeed        *service.DevSeedService
	Auth           *auth.AuthMiddleware
}

// NewServices builds repositories and services on top of db
func NewServices(db *gorm.DB, cfg *config.Config, infra *Infrastructure) (*Services, error) {
	if infra == nil {
		infra = &Infrastructure{}
	}
	if infra.Mailer == nil {
		infra.Mailer = notify.NoopMailer{}
	}
	if infra.Events == nil {
		infra.Events = notify.NoopPublisher{}
	}
	if infra.Limiter == nil {
		infra.Limiter = ratelimit.Unlimited{}
	}
	if infra.Plans == nil {
		plans, err := service.LoadPlans()
		if err != nil {
			return nil, err
		}
		infra.Plans = plans
	}

	authService, err := auth.NewAuthService(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	validator := service.NewValidator()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	questionnaireRepo := repository.NewQuestionnaireRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)
	responseRepo := repository.NewResponseRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	webhookEventRepo := repository.NewWebhookEventRepository(db)
	actionItemRepo := repository.NewActionItemRepository(db)

	// Initialize services
	analyticsService := service.NewAnalyticsService(assessmentRepo, responseRepo, service.AnalyticsOptions{
		MinGroupSize: cfg.AnalyticsMinGroupSize,
		CacheSize:    cfg.AnalyticsCacheSize,
		CacheTTL:     cfg.AnalyticsCacheTTL,
	}, infra.Metrics, infra.Tracer)

	return &Services{
		Organizations:  service.NewOrganizationService(organizationRepo, infra.Events, validator),
		Profiles:       service.NewProfileService(profileRepo, organizationRepo, infra.Mailer, cfg.AppURL, validator),
		Questionnaires: service.NewQuestionnaireService(questionnaireRepo, validator),
		Assessments: service.NewAssessmentService(service.AssessmentDependencies{
			Assessments:    assessmentRepo,
			Questionnaires: questionnaireRepo,
			Responses:      responseRepo,
			Subscriptions:  subscriptionRepo,
			Profiles:       profileRepo,
			Organizations:  organizationRepo,
			Plans:          infra.Plans,
			Mailer:         infra.Mailer,
			Events:         infra.Events,
			Metrics:        infra.Metrics,
			AppURL:         cfg.AppURL,
			Validator:      validator,
		}),
		Responses: service.NewPublicResponseService(service.PublicResponseDependencies{
			Assessments:   assessmentRepo,
			Responses:     responseRepo,
			Subscriptions: subscriptionRepo,
			Organizations: organizationRepo,
			Plans:         infra.Plans,
			Limiter:       infra.Limiter,
			Cache:         analyticsService,
			Metrics:       infra.Metrics,
			Validator:     validator,
		}),
		Analytics:   analyticsService,
		Reports:     service.NewReportService(assessmentRepo, organizationRepo, actionItemRepo, analyticsService, infra.Metrics, infra.Tracer),
		ActionItems: service.NewActionItemService(actionItemRepo, assessmentRepo, validator),
		Billing: service.NewBillingService(service.BillingDependencies{
			Subscriptions: subscriptionRepo,
			WebhookEvents: webhookEventRepo,
			Organizations: organizationRepo,
			Profiles:      profileRepo,
			Catalog:       infra.Plans,
			Checkout:      infra.Checkout,
			WebhookSecret: cfg.StripeWebhookSecret,
			AppURL:        cfg.AppURL,
			Mailer:        infra.Mailer,
			Events:        infra.Events,
			Metrics:       infra.Metrics,
			Tracer:        infra.Tracer,
			Validator:     validator,
		}),
		DevSeed: service.NewDevSeedService(assessmentRepo, responseRepo, analyticsService, validator),
		Auth:    auth.NewAuthMiddleware(authService, profileRepo),
	}, nil
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, infra *Infrastructure, services *Services) *gin.Engine {
	if infra == nil {
		infra = &Infrastructure{}
	}

	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics(infra.Metrics))

	authMiddleware := services.Auth

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, infra.HealthChecks)
	organizationHandler := handlers.NewOrganizationHandler(services.Organizations)
	profileHandler := handlers.NewProfileHandler(services.Profiles)
	questionnaireHandler := handlers.NewQuestionnaireHandler(services.Questionnaires)
	assessmentHandler := handlers.NewAssessmentHandler(services.Assessments)
	analyticsHandler := handlers.NewAnalyticsHandler(services.Analytics, services.Reports)
	actionItemHandler := handlers.NewActionItemHandler(services.ActionItems)
	publicHandler := handlers.NewPublicSurveyHandler(services.Responses)
	billingHandler := handlers.NewBillingHandler(services.Billing)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if infra.Metrics != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(infra.Metrics.Registry, promhttp.HandlerOpts{})))
	}

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Stripe calls this without a session; the signature authenticates it
	router.POST("/api/webhooks/stripe", billingHandler.StripeWebhook)

	// Anonymous survey routes
	public := router.Group("/api/public")
	{
		public.GET("/assessments/:token", publicHandler.GetPublicAssessment)
		public.POST("/assessments/:token/responses", publicHandler.SubmitResponse)
	}

	router.GET("/api/v1/plans", billingHandler.ListPlans)

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	orgAdmin := authMiddleware.RequireRole(models.RoleOrgAdmin)
	manager := authMiddleware.RequireRole(models.RoleManager)
	{
		v1.GET("/me", profileHandler.Me)

		// Organization routes
		organizations := v1.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.POST("", authMiddleware.RequireRole(models.RolePlatformAdmin), organizationHandler.CreateOrganization)
			organizations.GET("/by-slug/:slug", organizationHandler.GetOrganizationBySlug)
			organizations.GET("/:id", organizationHandler.GetOrganization)
			organizations.PUT("/:id", orgAdmin, organizationHandler.UpdateOrganization)
			organizations.DELETE("/:id", authMiddleware.RequireRole(models.RolePlatformAdmin), organizationHandler.DeleteOrganization)
		}

		// Profile routes
		profiles := v1.Group("/profiles")
		{
			profiles.GET("", profileHandler.ListProfiles)
			profiles.POST("", orgAdmin, profileHandler.CreateProfile)
			profiles.GET("/:id", profileHandler.GetProfile)
			profiles.PUT("/:id/role", orgAdmin, profileHandler.UpdateRole)
			profiles.POST("/:id/deactivate", orgAdmin, profileHandler.DeactivateProfile)
			profiles.DELETE("/:id", orgAdmin, profileHandler.DeleteProfile)
		}

		// Questionnaire routes
		questionnaires := v1.Group("/questionnaires")
		{
			questionnaires.GET("", questionnaireHandler.ListQuestionnaires)
			questionnaires.POST("", manager, questionnaireHandler.CreateQuestionnaire)
			questionnaires.GET("/:id", questionnaireHandler.GetQuestionnaire)
			questionnaires.PUT("/:id", manager, questionnaireHandler.UpdateQuestionnaire)
			questionnaires.DELETE("/:id", manager, questionnaireHandler.DeleteQuestionnaire)
			questionnaires.POST("/:id/clone", manager, questionnaireHandler.CloneQuestionnaire)
		}

		// Assessment routes
		assessments := v1.Group("/assessments")
		{
			assessments.GET("", assessmentHandler.ListAssessments)
			assessments.POST("", manager, assessmentHandler.CreateAssessment)
			assessments.GET("/:id", assessmentHandler.GetAssessment)
			assessments.PUT("/:id", manager, assessmentHandler.UpdateAssessment)
			assessments.DELETE("/:id", manager, assessmentHandler.DeleteAssessment)
			assessments.POST("/:id/activate", manager, assessmentHandler.ActivateAssessment)
			assessments.POST("/:id/close", manager, assessmentHandler.CloseAssessment)
			assessments.GET("/:id/analytics", analyticsHandler.GetAnalytics)
			assessments.GET("/:id/report.xlsx", analyticsHandler.DownloadXLSX)
			assessments.GET("/:id/report.pdf", analyticsHandler.DownloadPDF)
			assessments.GET("/:id/action-items", actionItemHandler.ListActionItems)
			assessments.POST("/:id/action-items", manager, actionItemHandler.CreateActionItem)
		}

		// Action plan routes
		actionItems := v1.Group("/action-items")
		{
			actionItems.PATCH("/:id", manager, actionItemHandler.UpdateActionItem)
			actionItems.DELETE("/:id", manager, actionItemHandler.DeleteActionItem)
		}

		// Billing routes
		billing := v1.Group("/billing")
		{
			billing.POST("/checkout", orgAdmin, billingHandler.CreateCheckout)
			billing.GET("/subscription", billingHandler.GetSubscription)
		}
	}

	if !cfg.IsProduction() {
		devHandler := handlers.NewDevHandler(services.DevSeed)
		dev := router.Group("/api/dev")
		dev.Use(authMiddleware.RequireAuth(), manager)
		dev.POST("/seed-responses", devHandler.SeedResponses)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
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
	router.GET("/health/live", healthHandler.Live)

	return router
}
