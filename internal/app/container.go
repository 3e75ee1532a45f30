package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"homefinder/internal/config"
	"homefinder/internal/database"
	"homefinder/internal/database/migration"
	dbpostgres "homefinder/internal/database/postgres"
	"homefinder/internal/delivery/http/handler"
	"homefinder/internal/domain/document"
	"homefinder/internal/infrastructure/persistence/postgres"
	"homefinder/internal/infrastructure/persistence/redis"
	"homefinder/migrations"

	"go.uber.org/zap"
)

// Container owns the process's external connections.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Store  document.Store

	pingers map[string]handler.Pinger
	closers []func() error
}

func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Container{Config: cfg, Logger: logger, pingers: map[string]handler.Pinger{}}

	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connCtx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	c.DB = db
	c.pingers["postgres"] = db
	c.closers = append(c.closers, db.Close)

	migCtx, migCancel := context.WithTimeout(ctx, 2*time.Minute)
	defer migCancel()
	r := migration.Runner{FS: migrationSource(cfg.App), Logger: logger.Named("migration")}
	if err := r.Run(migCtx, db.SQLDB()); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	switch cfg.Store.Driver {
	case config.StoreDriverRedis:
		rs, err := redis.Connect(ctx, cfg.Redis, logger)
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		c.Store = rs
		c.pingers["redis"] = rs
		c.closers = append(c.closers, rs.Close)
	default:
		c.Store = postgres.NewDocumentStore(db)
	}

	logger.Info("container ready", zap.String("document_store", cfg.Store.Driver))
	return c, nil
}

// migrationSource returns MIGRATIONS_DIR when set, otherwise the embedded files.
func migrationSource(cfg config.AppConfig) fs.FS {
	if cfg.MigrationsDir != "" {
		return os.DirFS(cfg.MigrationsDir)
	}
	return migrations.FS
}

func (c *Container) Pingers() map[string]handler.Pinger {
	if c == nil {
		return nil
	}
	return c.pingers
}

// Close releases connections in reverse order of acquisition.
func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
