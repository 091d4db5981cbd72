package server

import (
	"fmt"
	"os"

	"github.com/farellandr/meetapp/config"
	"github.com/farellandr/meetapp/internal/handlers"
	"github.com/farellandr/meetapp/internal/helpers"
	"github.com/farellandr/meetapp/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	setupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.DatabaseMiddleware(db))

	r.Static("/files", helpers.DefaultImageUploadConfig.UploadBasePath)

	r.POST("/users", handlers.Register)
	r.POST("/sessions", handlers.Login)

	protected := r.Group("/")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		protected.PUT("/users", handlers.UpdateProfile)
		protected.POST("/files", handlers.StoreFile)

		meetups := protected.Group("/meetups")
		{
			meetups.GET("", handlers.ListMeetups)
			meetups.POST("", handlers.CreateMeetup)
			meetups.PUT("/:id", handlers.UpdateMeetup)
			meetups.DELETE("/:id", handlers.CancelMeetup)
		}

		enrollments := protected.Group("/enrollments")
		{
			enrollments.GET("", handlers.ListEnrollments)
			enrollments.POST("", handlers.CreateEnrollment)
			enrollments.DELETE("/:id", handlers.CancelEnrollment)
		}
	}
}
