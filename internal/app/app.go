package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appHTTP "wallpaperhub/internal/controller/http"
	"wallpaperhub/internal/moderation"
	"wallpaperhub/internal/repo/persistent"
	"wallpaperhub/internal/stats"
	"wallpaperhub/internal/usecase"
	"wallpaperhub/pkg/config"
	"wallpaperhub/pkg/jwt"
	"wallpaperhub/pkg/logger"
	"wallpaperhub/pkg/middleware"
	"wallpaperhub/pkg/queue"
	"wallpaperhub/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "wallpaperhub/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)
	aggregator := stats.NewAggregator(stats.Mode(cfg.StatsMode))

	// Initialize repositories
	wallpaperRepo := persistent.NewWallpaperRepository(db)
	interactionRepo := persistent.NewInteractionRepository(db)
	blogRepo := persistent.NewBlogRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	adminRepo := persistent.NewAdminRepository(db)

	// Initialize use cases
	wallpaperUseCase := usecase.NewWallpaperUseCase(wallpaperRepo, aggregator, s3Client, log)
	interactionUseCase := usecase.NewInteractionUseCase(wallpaperRepo, interactionRepo, redisClient, queueClient, log)
	blogUseCase := usecase.NewBlogUseCase(blogRepo, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, blogRepo, moderation.NewFilter(), log)
	authUseCase := usecase.NewAuthUseCase(adminRepo, jwtService, log)

	// Initialize HTTP handlers
	wallpaperHandler := appHTTP.NewWallpaperHandler(wallpaperUseCase, interactionUseCase, log)
	interactionHandler := appHTTP.NewInteractionHandler(interactionUseCase, log)
	blogHandler := appHTTP.NewBlogHandler(blogUseCase, log)
	commentHandler := appHTTP.NewCommentHandler(commentUseCase, log)
	authHandler := appHTTP.NewAuthHandler(authUseCase, cfg.SessionCookieName, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", cfg.PublicURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	if redisClient != nil {
		api.Use(middleware.RateLimitMiddleware(redisClient, cfg.RateLimitPerMinute, time.Minute))
	}

	{
		api.GET("/wallpapers", wallpaperHandler.ListWallpapers)
		api.GET("/wallpapers/:id", wallpaperHandler.GetWallpaper)
		api.GET("/search", wallpaperHandler.SearchWallpapers)
		api.POST("/wallpapers/:id/like", interactionHandler.LikeWallpaper)
		api.POST("/interactions", interactionHandler.RecordInteraction)
		api.GET("/download/:id", wallpaperHandler.DownloadWallpaper)

		api.GET("/blog/posts", blogHandler.ListPosts)
		api.GET("/blog/posts/:id", blogHandler.GetPost)
		api.GET("/blog/posts/:id/comments", commentHandler.ListComments)
		api.POST("/blog/posts/:id/comments", commentHandler.SubmitComment)

		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
	}

	admin := api.Group("")
	admin.Use(middleware.AuthMiddleware(jwtService, cfg.SessionCookieName))
	{
		admin.POST("/wallpapers", wallpaperHandler.UploadWallpaper)
		admin.DELETE("/wallpapers/:id", wallpaperHandler.DeleteWallpaper)

		admin.POST("/blog/posts", blogHandler.CreatePost)
		admin.PUT("/blog/posts/:id", blogHandler.UpdatePost)
		admin.DELETE("/blog/posts/:id", blogHandler.DeletePost)

		admin.GET("/admin/comments", commentHandler.ListModerationQueue)
		admin.PATCH("/admin/comments/:id", commentHandler.ModerateComment)
		admin.DELETE("/admin/comments/:id", commentHandler.DeleteComment)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Wallpaper service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down wallpaper service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Wallpaper service exited")
}
