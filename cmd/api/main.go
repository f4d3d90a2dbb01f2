// Package main is the entry point for the registration service.
package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/B01812625/sportgames/internal/config"
	"github.com/B01812625/sportgames/internal/database"
	"github.com/B01812625/sportgames/internal/handlers"
	"github.com/B01812625/sportgames/internal/repository"
	"github.com/B01812625/sportgames/internal/routes"
	"github.com/B01812625/sportgames/internal/service"
	"github.com/B01812625/sportgames/internal/storage"
	"github.com/B01812625/sportgames/pkg/redis"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatal("Failed to connect to Redis: ", err)
	}

	documents, err := storage.NewDocumentStore(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to initialize document storage: ", err)
	}

	userRepo := repository.NewUserRepository(db)
	compRepo := repository.NewCompetitionRepository(db)
	appRepo := repository.NewApplicationRepository(db)

	sessions := service.NewSessionService(redisClient, cfg.SessionSecret)
	authService := service.NewAuthService(userRepo, appRepo, sessions, documents)
	compService := service.NewCompetitionService(compRepo, appRepo, documents)
	appService := service.NewApplicationService(appRepo, compRepo, documents, cfg.AllowedExtensions)
	adminService := service.NewAdminService(userRepo, compRepo, appRepo)

	cookies := handlers.NewSessionCookie(cfg.Environment != "development")

	h := routes.Handlers{
		Auth:         handlers.NewAuthHandler(authService, cookies),
		Competitions: handlers.NewCompetitionHandler(compService),
		Applications: handlers.NewApplicationHandler(appService, documents, cfg.MaxUploadBytes),
		Admin:        handlers.NewAdminHandler(adminService, compService),
		Health:       handlers.NewHealthHandler(db, redisClient),
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	routes.Setup(router, h, authService, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Registration service listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
