package handlers

import (
	"net/http"

	"newsroom-api/helper"
	"newsroom-api/middleware"
	"newsroom-api/repositories"
	"newsroom-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers onto a gin engine.
func NewRouter(db *gorm.DB) *gin.Engine {
	userRepo := repositories.NewUserRepository(db)
	contentRepo := repositories.NewContentRepository(db)

	authService := services.NewAuthService(userRepo)
	contentService := services.NewContentService(contentRepo)

	httpHelper := helper.NewHTTPHelper()
	authHandler := NewAuthHandler(authService, httpHelper)
	contentHandler := NewContentHandler(contentService, httpHelper)

	router := gin.New()
	router.Use(gin.Recovery())

	// CORS, open to all origins
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "newsroom-api",
			"status":  "running",
			"version": "1.0",
			"endpoints": gin.H{
				"auth":      []string{"POST /api/register", "POST /api/login"},
				"public":    []string{"GET /api/contents", "GET /api/contents/:id"},
				"profile":   []string{"GET /api/profile"},
				"publisher": []string{"GET /api/publisher/contents", "POST /api/publisher/contents", "PUT /api/publisher/contents/:id", "PUT /api/publisher/contents/:id/publish"},
			},
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := router.Group("/api")
	{
		// Public routes
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.GET("/contents", contentHandler.GetPublicContents)
		api.GET("/contents/:id", contentHandler.GetPublicContent)

		// Authenticated routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", authHandler.GetProfile)

			publisher := protected.Group("/publisher/contents")
			publisher.Use(middleware.RequirePublisher())
			{
				publisher.GET("", contentHandler.GetPublisherContents)
				publisher.POST("", contentHandler.CreateContent)
				publisher.PUT("/:id", contentHandler.UpdateContent)
				publisher.PUT("/:id/publish", contentHandler.PublishContent)
			}
		}
	}

	return router
}
