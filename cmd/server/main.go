package main

import (
	"context"
	"log"
	"net/http"

	_ "portfolio/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"portfolio/internal/auth"
	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/handler"
	"portfolio/internal/repository"
	"portfolio/internal/router"
	"portfolio/internal/service"
)

// @title Portfolio API
// @version 1.0
// @description Bilingual portfolio content API with a cookie-gated admin surface.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	// One client per process, reused across requests, closed at shutdown.
	client, err := db.NewMongo(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("mongo disconnect: %v", err)
		}
	}()
	database := client.Database(cfg.MongoDatabase)

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(database)
	projectRepo := repository.NewProjectRepository(database)
	educationRepo := repository.NewEducationRepository(database)
	certificateRepo := repository.NewCertificateRepository(database)
	softSkillRepo := repository.NewSkillRepository(database, repository.CollectionSoftSkills)
	hardSkillRepo := repository.NewSkillRepository(database, repository.CollectionHardSkills)
	softwareRepo := repository.NewSoftwareSkillRepository(database)

	// Initialize auth components
	sessions := auth.NewSessionService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(profileRepo, sessions)
	portfolioService := service.NewPortfolioService(
		profileRepo,
		projectRepo,
		educationRepo,
		certificateRepo,
		softSkillRepo,
		hardSkillRepo,
		softwareRepo,
		cacheClient,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	portfolioHandler := handler.NewPortfolioHandler(portfolioService)
	adminHandler := handler.NewAdminHandler(portfolioService)

	// Register routes
	router.Register(e, cfg, sessions, authHandler, portfolioHandler, adminHandler)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
