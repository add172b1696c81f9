// main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"portfolio-backend/internal/api/handlers"
	"portfolio-backend/internal/api/middleware"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/db"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/seed"
	"portfolio-backend/internal/service"
	"portfolio-backend/internal/session"
)

func main() {
	// ============================================
	// Load environment variables
	// ============================================
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// ============================================
	// Load configuration
	// ============================================
	cfg := config.Load()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ============================================
	// Initialize MongoDB (document store)
	// ============================================
	mongoDB, err := db.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}
	defer mongoDB.Close()

	// ============================================
	// Initialize Redis (session store)
	// ============================================
	redisDB, err := db.NewRedisDB(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisDB.Close()

	// ============================================
	// Initialize Repositories
	// ============================================
	repos := repository.NewRepositories(mongoDB.Database)
	log.Println("📦 Repositories initialized")

	// ============================================
	// Initialize Sessions
	// ============================================
	sessionStore := session.NewRedisStore(redisDB)
	cookies := session.NewCookieManager(cfg.SessionSecret, cfg.Environment == "production")
	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour

	// ============================================
	// Seed Data (for development)
	// ============================================
	if cfg.Environment != "production" {
		seed.SeedData(repos)
	}

	// ============================================
	// Initialize Services
	// ============================================
	services := service.NewServices(&service.ServiceDeps{
		Config:     cfg,
		Repos:      repos,
		Sessions:   sessionStore,
		SessionTTL: sessionTTL,
	})
	log.Println("✨ All services initialized")

	// ============================================
	// Initialize Handlers
	// ============================================
	h := handlers.NewHandlers(&handlers.HandlerDeps{
		Services:   services,
		Cookies:    cookies,
		SessionTTL: sessionTTL,
		WebDir:     "./web",
	})

	// ============================================
	// Create Gin Router
	// ============================================
	r := gin.Default()

	// Credentials must be allowed for the session cookie to travel.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.LoadSession(sessionStore, cookies, sessionTTL))

	// Health check
	r.GET("/health", handlers.NewHealthHandler(mongoDB, redisDB).Check)

	// API routes
	api := r.Group("/api")
	{
		// ============================================
		// Admin auth routes
		// ============================================
		admin := api.Group("/admin")
		{
			admin.POST("/login", h.Auth.Login)
			admin.POST("/logout", h.Auth.Logout)
			admin.GET("/check", h.Auth.Check)
		}

		api.GET("/check-auth", h.Auth.CheckAuth)

		// ============================================
		// Project routes (public read, admin write)
		// ============================================
		projects := api.Group("/projects")
		{
			projects.GET("", h.Project.List)
			projects.GET("/:id", h.Project.Get)

			adminProjects := projects.Group("", middleware.RequireAdmin())
			{
				adminProjects.POST("", h.Project.Create)
				adminProjects.PUT("/:id", h.Project.Update)
				adminProjects.DELETE("/:id", h.Project.Delete)
			}
		}

		// ============================================
		// Message routes (public create, admin inbox)
		// ============================================
		messages := api.Group("/messages")
		{
			messages.POST("", h.Message.Create)

			adminMessages := messages.Group("", middleware.RequireAdmin())
			{
				adminMessages.GET("", h.Message.List)
				adminMessages.PUT("/:id/read", h.Message.MarkRead)
				adminMessages.DELETE("/:id", h.Message.Delete)
			}
		}
	}

	// ============================================
	// Frontend pages
	// ============================================
	r.GET("/", h.Pages.Index)
	r.GET("/projects", h.Pages.Projects)
	r.GET("/admin", h.Pages.Admin)
	r.GET("/admin/dashboard", h.Pages.AdminDashboard)
	r.Static("/assets", "./web/assets")

	// Create server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		log.Printf("🚀 Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
