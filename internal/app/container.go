package app

import (
	"context"
	"log"
	"os"
	"time"

	"gradmatch/internal/config"
	"gradmatch/internal/database"
	"gradmatch/internal/database/migration"
	dbpostgres "gradmatch/internal/database/postgres"
	"gradmatch/internal/infrastructure/adzuna"
	"gradmatch/internal/infrastructure/cache"
)

// Container holds the process-wide dependencies. Everything below the
// HTTP layer hangs off it.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Adzuna adzuna.Client
	Logger *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{Dir: "migrations"}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Adzuna: adzuna.NewClient(cfg.Adzuna, logger),
		Logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
