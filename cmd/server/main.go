package main

import (
	"log"
	"math/rand"
	"net/http"
	"time"

	_ "mealplan/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"mealplan/internal/auth"
	"mealplan/internal/cache"
	"mealplan/internal/config"
	"mealplan/internal/db"
	"mealplan/internal/handler"
	"mealplan/internal/model"
	"mealplan/internal/repository"
	"mealplan/internal/router"
	"mealplan/internal/service"
)

// @title Meal Plan API
// @version 1.0
// @description Dish catalog, randomized recommendations, and weekly menu planning with token-based admin auth.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey TokenAuth
// @in header
// @name x-auth-token
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.Dish{},
		&model.RecommendationRecord{},
		&model.WeekMenuEntry{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Sessions live in memory unless Redis is configured.
	var sessions auth.SessionStore
	if cfg.RedisAddr != "" {
		sessions = auth.NewRedisSessionStore(cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB))
		log.Printf("sessions backed by redis at %s", cfg.RedisAddr)
	} else {
		sessions = auth.NewMemorySessionStore()
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Initialize repositories
	dishRepo := repository.NewDishRepository(gormDB)
	recRepo := repository.NewRecommendationRepository(gormDB)
	menuRepo := repository.NewMenuRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(cfg.AdminPassword, sessions, cfg.SessionTTL)
	catalogService := service.NewCatalogService(dishRepo)
	recommendService := service.NewRecommendService(recRepo, rng)
	menuService := service.NewMenuService(dishRepo, menuRepo, rng)

	// Initialize handlers
	dishHandler := handler.NewDishHandler(catalogService)
	recommendHandler := handler.NewRecommendHandler(recommendService)
	menuHandler := handler.NewMenuHandler(menuService)
	authHandler := handler.NewAuthHandler(authService)

	// Register routes
	router.Register(
		e,
		authService,
		dishHandler,
		recommendHandler,
		menuHandler,
		authHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: http://%s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
