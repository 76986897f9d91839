package cmd

import (
	"context"
	"fmt"

	"factory-planner/core/config"
	"factory-planner/core/database"
	"factory-planner/core/format"
	"factory-planner/core/logger"
	"factory-planner/core/storage"
	"factory-planner/feature/catalog"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// env bundles what every command needs after startup.
type env struct {
	cfg    *config.Config
	log    *zap.Logger
	store  storage.Client
	db     *gorm.DB
	format *format.Formatter
}

// setupEnv loads config and logger and opens storage. The database is
// opened only when requireDB is set or the catalog is read from it;
// otherwise a failure to connect is logged and db stays nil.
func setupEnv(requireDB bool) (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	f, err := format.NewFormatter(cfg.Format)
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, log: logg, format: f}

	if e.store, err = storage.NewClient(cfg.Storage); err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	needDB := requireDB || cfg.Catalog.Source == catalog.SourceDatabase
	if conn, err := database.Connect(cfg.Database); err != nil {
		if needDB {
			return nil, fmt.Errorf("database connection required: %w", err)
		}
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		e.db = conn
	}

	return e, nil
}

// source returns the configured catalog source.
func (e *env) source() (catalog.Source, error) {
	return catalog.NewSource(e.cfg.Catalog, e.store, e.cfg.Storage.Bucket, e.db)
}

// loadCatalog reads the catalog once, bypassing the cache.
func (e *env) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	src, err := e.source()
	if err != nil {
		return nil, err
	}
	c, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", src.Name(), err)
	}
	return c, nil
}
