package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"newsorbit-api/config"
	"newsorbit-api/handlers"
	"newsorbit-api/logger"
	"newsorbit-api/middleware"
	"newsorbit-api/models"
	"newsorbit-api/repositories"
	"newsorbit-api/services"
	"newsorbit-api/storage"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	appLog := logger.New()

	// Initialize database
	db := config.InitDB(cfg)
	if err := config.SeedMasterAdmin(db, cfg); err != nil {
		appLog.Fatal().Err(err).Msg("failed to seed master admin")
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	configRepo := repositories.NewSiteConfigRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.Master.Email)
	articleService := services.NewArticleService(articleRepo, appLog)
	configService := services.NewConfigService(configRepo)
	blobStore := storage.NewLocalStore(cfg.Upload.Dir, cfg.Upload.BaseURL)
	uploadService := services.NewUploadService(blobStore, cfg.Upload)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService)
	adminHandler := handlers.NewAdminHandler(authService, articleService, configService)
	publicHandler := handlers.NewPublicHandler(configService)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	// Setup router
	router := gin.Default()

	// CORS middleware
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

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Uploaded images
	router.Static(cfg.Upload.BaseURL, cfg.Upload.Dir)

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public site surface
		public := v1.Group("/public")
		{
			public.GET("/config", publicHandler.GetSiteConfig)
			public.GET("/categories", publicHandler.GetCategories)
			public.GET("/news", articleHandler.GetPublicArticles)
			public.GET("/news/:id", articleHandler.GetPublicArticle)
		}

		// Authenticated routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware(userRepo))
		{
			protected.GET("/profile", authHandler.GetProfile)

			// Reporter desk
			news := protected.Group("/news")
			news.Use(middleware.RequireRole(models.RoleReporter, models.RoleAdmin))
			{
				news.POST("", articleHandler.SubmitArticle)
				news.GET("", articleHandler.GetMyArticles)
				news.GET("/:id", articleHandler.GetArticle)
				news.PUT("/:id", articleHandler.UpdateArticle)
			}

			uploads := protected.Group("/uploads")
			uploads.Use(middleware.RequireRole(models.RoleReporter, models.RoleAdmin))
			{
				uploads.POST("/image", uploadHandler.UploadImage)
			}

			// Admin dashboard
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/news", adminHandler.ListArticles)
				admin.PUT("/news/:id/status", adminHandler.UpdateArticleStatus)
				admin.DELETE("/news/:id", adminHandler.DeleteArticle)

				admin.GET("/users", adminHandler.ListUsers)
				admin.POST("/users", adminHandler.CreateUser)
				admin.PUT("/users/:id/status", adminHandler.UpdateUserStatus)
				admin.PUT("/users/:id/blocked", adminHandler.SetUserBlocked)
				admin.PUT("/users/:id/can-post", adminHandler.SetUserCanPost)

				admin.PUT("/config", adminHandler.UpdateSiteConfig)
			}
		}
	}

	// Any other route falls back to the public front page.
	router.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})

	appLog.Info().Str("port", cfg.Server.Port).Msg("server starting")
	log.Fatal(http.ListenAndServe(":"+cfg.Server.Port, router))
}
