package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/minseo-dev/event-marketing-backend/config"
	"github.com/minseo-dev/event-marketing-backend/database"
	"github.com/minseo-dev/event-marketing-backend/internal/analytics"
	"github.com/minseo-dev/event-marketing-backend/internal/auth"
	"github.com/minseo-dev/event-marketing-backend/internal/event"
	"github.com/minseo-dev/event-marketing-backend/internal/location"
	"github.com/minseo-dev/event-marketing-backend/internal/manager"
	"github.com/minseo-dev/event-marketing-backend/internal/notification"
	"github.com/minseo-dev/event-marketing-backend/internal/partner"
	"github.com/minseo-dev/event-marketing-backend/internal/reports"
	"github.com/minseo-dev/event-marketing-backend/middleware"

	_ "github.com/minseo-dev/event-marketing-backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func Setup(r *gin.Engine, cfg *config.Config) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter())
	api.Use(middleware.RequestLogger())

	// ========== Auth ==========
	authRepo := auth.NewRepository(database.DB)
	authSvc := auth.NewService(authRepo, cfg)
	authHandler := auth.NewHandler(authSvc)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/logout", middleware.AuthMiddleware(cfg, authSvc), authHandler.Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(cfg, authSvc), authHandler.Me)
	}

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg, authSvc))

	// ========== Events ==========
	eventRepo := event.NewRepository(database.DB)
	eventSvc := event.NewService(eventRepo)
	eventHandler := event.NewHandler(eventSvc)

	eventRoutes := protected.Group("/events")
	{
		writeRoutes := eventRoutes.Group("")
		writeRoutes.Use(middleware.RequireWriter())
		{
			writeRoutes.POST("", eventHandler.CreateEvent)
			writeRoutes.PATCH("/:id", eventHandler.UpdateEvent)
			writeRoutes.DELETE("/:id", eventHandler.DeleteEvent)
		}

		eventRoutes.GET("", eventHandler.ListEvents)
		eventRoutes.GET("/types", eventHandler.EventTypes)
		eventRoutes.GET("/:id", eventHandler.GetEvent)
	}

	// ========== Dashboard & Analytics ==========
	analyticsSvc := analytics.NewService(eventRepo, cfg)
	analyticsHandler := analytics.NewHandler(analyticsSvc)

	protected.GET("/dashboard", analyticsHandler.Dashboard)
	analyticsRoutes := protected.Group("/analytics")
	{
		analyticsRoutes.GET("/monthly", analyticsHandler.MonthlySeries)
		analyticsRoutes.GET("/channels", analyticsHandler.Channels)
		analyticsRoutes.GET("/trend", analyticsHandler.ChannelTrend)
	}

	// ========== Reference data: partners, locations, managers ==========
	partnerHandler := partner.NewHandler(partner.NewService(partner.NewRepository(database.DB)))
	partnerRoutes := protected.Group("/partners")
	{
		partnerRoutes.GET("", partnerHandler.ListPartners)

		writeRoutes := partnerRoutes.Group("")
		writeRoutes.Use(middleware.RequireWriter())
		{
			writeRoutes.POST("", partnerHandler.CreatePartner)
			writeRoutes.PATCH("/:id", partnerHandler.UpdatePartner)
			writeRoutes.DELETE("/:id", partnerHandler.DeletePartner)
		}
	}

	locationHandler := location.NewHandler(location.NewService(location.NewRepository(database.DB)))
	locationRoutes := protected.Group("/locations")
	{
		locationRoutes.GET("", locationHandler.ListLocations)

		writeRoutes := locationRoutes.Group("")
		writeRoutes.Use(middleware.RequireWriter())
		{
			writeRoutes.POST("", locationHandler.CreateLocation)
			writeRoutes.PATCH("/:id", locationHandler.UpdateLocation)
			writeRoutes.DELETE("/:id", locationHandler.DeleteLocation)
		}
	}

	managerHandler := manager.NewHandler(manager.NewService(manager.NewRepository(database.DB)))
	managerRoutes := protected.Group("/managers")
	{
		managerRoutes.GET("", managerHandler.ListManagers)

		writeRoutes := managerRoutes.Group("")
		writeRoutes.Use(middleware.RequireWriter())
		{
			writeRoutes.POST("", managerHandler.CreateManager)
			writeRoutes.PATCH("/:id", managerHandler.UpdateManager)
			writeRoutes.DELETE("/:id", managerHandler.DeleteManager)
		}
	}

	// ========== Reports ==========
	reportsSvc := reports.NewService(reports.NewRepository(database.DB), eventRepo)
	reportsHandler := reports.NewHandler(reportsSvc)

	reportRoutes := protected.Group("/reports")
	{
		reportRoutes.GET("", reportsHandler.ListReports)
		reportRoutes.GET("/:id", reportsHandler.GetReport)
		reportRoutes.GET("/:id/export", reportsHandler.ExportReport)

		writeRoutes := reportRoutes.Group("")
		writeRoutes.Use(middleware.RequireWriter())
		{
			writeRoutes.POST("", reportsHandler.CreateReport)
		}

		adminRoutes := reportRoutes.Group("")
		adminRoutes.Use(middleware.RequireRole(auth.RoleAdmin))
		{
			adminRoutes.DELETE("/:id", reportsHandler.DeleteReport)
		}
	}

	// ========== Notifications ==========
	notifHandler := notification.NewHandler(notification.NewService(notification.NewRepository(database.DB)))

	notifRoutes := protected.Group("/notifications")
	{
		notifRoutes.GET("", notifHandler.ListNotifications)
		notifRoutes.PATCH("/:id/read", notifHandler.MarkRead)
		notifRoutes.POST("/read-all", notifHandler.MarkAllRead)
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}
