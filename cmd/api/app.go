package main

import (
	"fmt"
	"log/slog"

	"fire-monitor/internal/config"
	"fire-monitor/internal/fire"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router      *gin.Engine
	logger      *slog.Logger
	fireService fire.Service
	cfg         *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	fireSvc, err := fire.NewFireService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return newApp(cfg, logger, fireSvc)
}

func newApp(cfg *config.Config, logger *slog.Logger, fireSvc fire.Service) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	app := &App{
		router:      router,
		logger:      logger.With("component", "api"),
		fireService: fireSvc,
		cfg:         cfg,
	}

	app.registerRoutes()

	logger.Info("application initialized")

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
