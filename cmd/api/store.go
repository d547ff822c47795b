package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dchlearning/platform/internal/api/handler"
	"github.com/dchlearning/platform/internal/core/ports"
	"github.com/dchlearning/platform/internal/infrastructure/config"
	"github.com/dchlearning/platform/internal/infrastructure/db/memory"
	"github.com/dchlearning/platform/internal/infrastructure/db/mongo"
	"github.com/dchlearning/platform/internal/infrastructure/db/postgres"
)

// store bundles the repositories of the selected driver with its lifecycle.
type store struct {
	users      ports.UserRepository
	formations ports.FormationRepository
	contacts   ports.ContactRepository
	checks     []handler.DependencyCheck
	close      func()
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*store, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		return openPostgres(ctx, cfg, log)
	case config.StoreMongo:
		return openMongo(ctx, cfg, log)
	case config.StoreMemory:
		db := memory.Open()
		logStoreReady(log, cfg.StoreDriver)
		return &store{
			users:      memory.NewUserRepository(db),
			formations: memory.NewFormationRepository(db),
			contacts:   memory.NewContactRepository(db),
			close:      func() {},
		}, nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*store, error) {
	pool, err := postgres.Connect(ctx, postgres.Config{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		Name:     cfg.Postgres.Name,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		SSLMode:  cfg.Postgres.SSLMode,
		MaxConns: cfg.Postgres.MaxConns,
		MinConns: cfg.Postgres.MinConns,
	})
	if err != nil {
		return nil, err
	}

	if cfg.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("migrations applied")
	}

	logStoreReady(log, cfg.StoreDriver)
	return &store{
		users:      postgres.NewUserRepository(pool),
		formations: postgres.NewFormationRepository(pool),
		contacts:   postgres.NewContactRepository(pool),
		checks:     []handler.DependencyCheck{{Name: "postgres", Ping: pool.Ping}},
		close:      pool.Close,
	}, nil
}

func openMongo(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*store, error) {
	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return nil, err
	}

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	logStoreReady(log, cfg.StoreDriver)
	return &store{
		users:      mongo.NewUserRepository(db),
		formations: mongo.NewFormationRepository(db),
		contacts:   mongo.NewContactRepository(db),
		checks: []handler.DependencyCheck{{
			Name: "mongodb",
			Ping: func(ctx context.Context) error { return client.Ping(ctx, nil) },
		}},
		close: func() { _ = client.Disconnect(context.Background()) },
	}, nil
}

func logStoreReady(log zerolog.Logger, driver string) {
	log.Info().Str("driver", driver).Msg("store ready")
}
