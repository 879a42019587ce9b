package server

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"product-catalog-api/internal/config"
	"product-catalog-api/internal/services"
	"product-catalog-api/internal/store"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *logrus.Logger
	ProductService services.ProductService

	store store.RecordStore
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cfg)

	recordStore, err := store.New(ctx, &store.Config{
		Type:       cfg.Store.Type,
		Table:      cfg.Store.Table,
		Region:     cfg.Store.Region,
		SQLitePath: cfg.Store.SQLitePath,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create record store: %w", err)
	}

	return &Container{
		Config:         cfg,
		Logger:         logger,
		ProductService: services.NewProductService(recordStore),
		store:          recordStore,
	}, nil
}

// newLogger builds the process logger from configuration. The standard
// logrus logger is configured the same way so middleware that logs
// through the package-level functions matches.
func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logrus.SetLevel(level)

	if cfg.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.store != nil {
		if err := c.store.Close(); err != nil {
			return fmt.Errorf("failed to close record store: %w", err)
		}
	}

	return nil
}
