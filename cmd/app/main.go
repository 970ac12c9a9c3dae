package main

import (
	"wallpaperhub/internal/app"
	"wallpaperhub/pkg/cache"
	"wallpaperhub/pkg/config"
	"wallpaperhub/pkg/database"
	"wallpaperhub/pkg/logger"
	"wallpaperhub/pkg/queue"
	"wallpaperhub/pkg/s3"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// @title           WallpaperHub API
// @version         1.0
// @description     Wallpaper gallery with interaction tracking, blog and comment moderation

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token. Browser clients use the session cookie instead.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to initialize object storage: %v", err)
		panic(err)
	}

	// Connect to RabbitMQ for publishing analytics events
	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil // Allow service to start without RabbitMQ
	}

	app.Run(cfg, log, db, s3Client, queueClient, redisClient)
}
