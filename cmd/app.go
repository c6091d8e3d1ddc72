package cmd

import (
	"context"
	"fmt"

	"inventory-manager/core/config"
	"inventory-manager/core/database"
	"inventory-manager/core/logger"
	"inventory-manager/core/storage"
	"inventory-manager/core/validator"
	"inventory-manager/feature/inventory"

	"go.uber.org/zap"
)

// app bundles everything a command needs.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *inventory.Service
	close   func()
}

// bootstrap loads configuration and wires the inventory service.
func bootstrap() (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := inventory.NewStore(db)
	if err := store.Migrate(); err != nil {
		_ = database.Close(db)
		return nil, err
	}

	var client storage.Client
	if cfg.Storage.Enabled {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			_ = database.Close(db)
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
	}

	count, err := store.Count(context.Background())
	if err != nil {
		_ = database.Close(db)
		return nil, err
	}

	v, err := validator.NewDefaultValidator()
	if err != nil {
		_ = database.Close(db)
		return nil, err
	}

	l.Debug("Inventory ready",
		zap.Int64("products", count),
		zap.String("driver", cfg.Database.Driver),
		zap.String("database", cfg.Database.Name),
		zap.Bool("storage", cfg.Storage.Enabled),
	)

	return &app{
		cfg:     cfg,
		logger:  l,
		service: inventory.NewService(store, client, cfg.Storage, v, l),
		close: func() {
			_ = database.Close(db)
			_ = l.Sync()
		},
	}, nil
}
