package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/hbnb-platform/hbnb-api/internal/config"
	"github.com/hbnb-platform/hbnb-api/internal/platform/logger"
	"github.com/hbnb-platform/hbnb-api/internal/platform/postgres"
	"github.com/hbnb-platform/hbnb-api/internal/service"
	"github.com/hbnb-platform/hbnb-api/internal/service/auth"
)

// application holds the long-lived dependencies of the server process.
type application struct {
	config     *config.Config
	logger     *slog.Logger
	db         *sql.DB
	jwtService auth.JWTService
	facade     service.Facade
}

// newApplication loads configuration and wires every dependency. The caller
// must call cleanup when done.
func newApplication(ctx context.Context, configDir string) (*application, error) {
	cfg, err := config.LoadFrom(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	log.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := openDatabase(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}

	app, err := wireApplication(cfg, log, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return app, nil
}

// wireApplication builds the stores, auth services and facade on top of an
// open database handle.
func wireApplication(cfg *config.Config, log *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	stores := service.Stores{
		Users:     postgres.NewPostgresUserStore(db, log),
		Amenities: postgres.NewPostgresAmenityStore(db, log),
		Places:    postgres.NewPostgresPlaceStore(db, log),
		Reviews:   postgres.NewPostgresReviewStore(db, log),
	}

	facade, err := service.NewFacade(db, stores, auth.NewBcryptHasher(cfg.Auth.BcryptCost), log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize facade: %w", err)
	}

	return &application{
		config:     cfg,
		logger:     log,
		db:         db,
		jwtService: jwtService,
		facade:     facade,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database connection", "error", err)
		return
	}
	app.logger.Info("database connection closed")
}
