package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	alertApp "licenza/internal/application/alert"
	companyApp "licenza/internal/application/company"
	licenseApp "licenza/internal/application/license"
	statsApp "licenza/internal/application/stats"
	"licenza/internal/infrastructure/cache"
	"licenza/internal/infrastructure/config"
	"licenza/internal/infrastructure/email"
	"licenza/internal/infrastructure/repository"
	"licenza/internal/interfaces/http/handlers"
	"licenza/internal/interfaces/http/middleware"
	"licenza/internal/shared/logger"
	"licenza/internal/shared/utils"
)

// Router represents the HTTP router configuration
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	companyHandler *handlers.CompanyHandler
	licenseHandler *handlers.LicenseHandler
	statsHandler   *handlers.StatsHandler
	alertHandler   *handlers.AlertHandler
	alertService   *alertApp.Service
	logger         logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies wired.
// statsCache may be nil when Redis is not configured.
func NewRouter(db *gorm.DB, statsCache *cache.StatsCache, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	companyRepo := repository.NewCompanyRepository(db, log)
	licenseRepo := repository.NewLicenseRepository(db, log)
	settingsRepo := repository.NewAlertSettingsRepository(db, log)
	ledgerRepo := repository.NewNotificationLedgerRepository(db, log)

	mailer := email.NewSMTPMailer(log)

	// A typed nil pointer must not leak into the interface fields, the
	// services treat a nil interface as "caching disabled".
	var summaryCache statsApp.SummaryCache
	var companyInvalidator companyApp.StatsInvalidator
	var licenseInvalidator licenseApp.StatsInvalidator
	if statsCache != nil {
		summaryCache = statsCache
		companyInvalidator = statsCache
		licenseInvalidator = statsCache
	}

	companyService := companyApp.NewService(companyRepo, companyInvalidator, log)
	licenseService := licenseApp.NewService(licenseRepo, companyRepo, licenseInvalidator, log)
	statsService := statsApp.NewService(licenseRepo, companyRepo, summaryCache, log)
	alertService := alertApp.NewService(settingsRepo, licenseRepo, ledgerRepo, mailer, log)

	return &Router{
		engine:         engine,
		cfg:            cfg,
		companyHandler: handlers.NewCompanyHandler(companyService, log),
		licenseHandler: handlers.NewLicenseHandler(licenseService, log),
		statsHandler:   handlers.NewStatsHandler(statsService, log),
		alertHandler:   handlers.NewAlertHandler(alertService, log),
		alertService:   alertService,
		logger:         log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, 200, "", gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")
	{
		api.GET("/dashboard", r.statsHandler.GetDashboard)
		api.GET("/stats", r.statsHandler.GetFleetStats)

		companies := api.Group("/companies")
		{
			companies.GET("", r.companyHandler.List)
			companies.POST("", r.companyHandler.Create)
			companies.GET("/:id", r.companyHandler.Get)
			companies.PUT("/:id", r.companyHandler.Update)
			companies.DELETE("/:id", r.companyHandler.Delete)
			companies.GET("/:id/stats", r.statsHandler.GetCompanyStats)
		}

		licenses := api.Group("/licenses")
		{
			licenses.GET("", r.licenseHandler.List)
			licenses.POST("", r.licenseHandler.Create)
			licenses.GET("/:id", r.licenseHandler.Get)
			licenses.PUT("/:id", r.licenseHandler.Update)
			licenses.DELETE("/:id", r.licenseHandler.Delete)
		}

		alerts := api.Group("/alerts")
		{
			alerts.POST("/run", r.alertHandler.Run)
			alerts.POST("/test", r.alertHandler.SendTest)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/alerts", r.alertHandler.GetSettings)
			settings.PUT("/alerts", r.alertHandler.UpdateSettings)
		}
	}
}

// AlertService exposes the alert service for the scheduler.
func (r *Router) AlertService() *alertApp.Service {
	return r.alertService
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
