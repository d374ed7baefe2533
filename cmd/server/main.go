package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/johnpaulpatigas/focusflow-api/internal/adapter/ai"
	"github.com/johnpaulpatigas/focusflow-api/internal/adapter/identity"
	"github.com/johnpaulpatigas/focusflow-api/internal/adapter/store"
	"github.com/johnpaulpatigas/focusflow-api/internal/handler"
	"github.com/johnpaulpatigas/focusflow-api/internal/middleware"
	"github.com/johnpaulpatigas/focusflow-api/internal/service"
	"github.com/johnpaulpatigas/focusflow-api/pkg/config"

	_ "github.com/lib/pq"
)

func main() {
	_ = godotenv.Load() // silently ignore if .env doesn't exist

	cfg := config.Load()

	slog.Info("starting FocusFlow API",
		"port", cfg.Port,
		"identity", cfg.IdentityBaseURL,
		"ai_model", cfg.AIModel,
	)

	// ── Collaborators ────────────────────────────────────────────────────
	pgStore, err := store.NewPostgresStore(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pgStore.Close()

	identityProvider := identity.NewProvider(cfg.IdentityBaseURL, cfg.IdentityServiceKey)
	aiProvider := ai.NewOllamaProvider(ai.OllamaConfig{
		BaseURL: cfg.AIBaseURL,
		Model:   cfg.AIModel,
		Token:   cfg.AIToken,
	})

	// ── Services ─────────────────────────────────────────────────────────
	authService := service.NewAuthService(identityProvider, pgStore, cfg.GoogleRedirectURL)
	statsService := service.NewStatsService(pgStore, pgStore)
	insightsService := service.NewInsightsService(aiProvider)

	// ── Fiber App ────────────────────────────────────────────────────────
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
	}))

	// ── Public routes ────────────────────────────────────────────────────
	authHandler := handler.NewAuthHandler(authService)
	authHandler.RegisterPublic(app)

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"app":     cfg.AppName,
			"version": "1.0.0",
		})
	})

	// ── Protected routes ─────────────────────────────────────────────────
	// The contract exposes protected and public routes side by side at the
	// root, so the auth middleware is mounted per path instead of on a
	// route group.
	authMW := middleware.AuthRequired(identityProvider)
	for _, path := range []string{
		"/auth/password",
		"/profile",
		"/profile-stats",
		"/tasks",
		"/focus-sessions",
		"/dashboard-stats",
		"/progress-stats",
		"/get-insights",
	} {
		app.Use(path, authMW)
	}

	authHandler.RegisterProtected(app)
	handler.NewProfileHandler(pgStore).Register(app)
	handler.NewTaskHandler(pgStore).Register(app)
	handler.NewFocusHandler(pgStore).Register(app)
	handler.NewStatsHandler(statsService).Register(app)
	handler.NewInsightsHandler(insightsService).Register(app)

	slog.Info("listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
