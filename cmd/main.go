package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/minseo-dev/event-marketing-backend/config"
	"github.com/minseo-dev/event-marketing-backend/database"
	"github.com/minseo-dev/event-marketing-backend/internal/auth"
	"github.com/minseo-dev/event-marketing-backend/internal/event"
	"github.com/minseo-dev/event-marketing-backend/internal/location"
	"github.com/minseo-dev/event-marketing-backend/internal/manager"
	"github.com/minseo-dev/event-marketing-backend/internal/notification"
	"github.com/minseo-dev/event-marketing-backend/internal/partner"
	"github.com/minseo-dev/event-marketing-backend/internal/reports"
	"github.com/minseo-dev/event-marketing-backend/routes"
	"github.com/minseo-dev/event-marketing-backend/utils"
)

// @title Event Marketing Backend API
// @version 1.0
// @description Admin backend for marketing and sales events: KPI tracking, analytics and period reports.
// @BasePath /api/v1
func main() {
	cfg := config.Load()

	utils.InitLogger()

	db := database.Connect(cfg)

	if err := utils.InitRedis(cfg); err != nil {
		log.Fatalf("❌ Redis init failed: %v", err)
	}

	utils.InitializeKafka(cfg)

	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&auth.User{},
		&event.Event{},
		&partner.Partner{},
		&location.Location{},
		&manager.EventManager{},
		&reports.Report{},
		&notification.InAppNotification{},
	); err != nil {
		log.Fatalf("❌ DB AutoMigrate failed: %v", err)
	}
	log.Println("✅ Database migrations completed")

	notifSvc := notification.NewService(notification.NewRepository(db))
	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()
	go notification.StartKafkaConsumer(consumerCtx, cfg, notifSvc)

	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:4173", "http://127.0.0.1:4173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, cfg)

	log.Printf("🚀 Server listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
