package main

import (
	"log"
	"net/http"

	_ "smartgoals/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"smartgoals/internal/auth"
	"smartgoals/internal/cache"
	"smartgoals/internal/config"
	"smartgoals/internal/db"
	"smartgoals/internal/handler"
	"smartgoals/internal/model"
	"smartgoals/internal/repository"
	"smartgoals/internal/router"
	"smartgoals/internal/service"
)

// @title SMART Goals API
// @version 1.0
// @description Goal tracking backend with user accounts, JWT authentication, and SMART goal records.
// @host localhost:3030
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Goal{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	goalRepo := repository.NewGoalRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	cookieManager := auth.NewCookieManager(true, http.SameSiteNoneMode)

	// Initialize services
	userService := service.NewUserService(userRepo, jwtService, cacheClient)
	goalService := service.NewGoalService(goalRepo, cacheClient)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService, cookieManager)
	goalHandler := handler.NewGoalHandler(goalService)

	// Register routes
	router.Register(e, cfg, userHandler, goalHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
