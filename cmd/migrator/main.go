// Command migrator applies the PostgreSQL schema migrations.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/dchlearning/platform/internal/infrastructure/config"
	"github.com/dchlearning/platform/internal/infrastructure/db/postgres"
	"github.com/dchlearning/platform/pkg/logger"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	if err := run(context.Background(), args[0]); err != nil {
		fmt.Fprintln(os.Stderr, "migrator:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Service: "dch-migrator"})

	pool, err := postgres.Connect(ctx, postgres.Config{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		Name:     cfg.Postgres.Name,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		SSLMode:  cfg.Postgres.SSLMode,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := postgres.RunMigrations(ctx, db, command); err != nil {
		return err
	}
	log.Info().Str("command", command).Msg("migration done")
	return nil
}

func usage() {
	fmt.Println("Usage: migrator [command]")
	fmt.Println("Commands:")
	fmt.Println("  up      - apply all pending migrations")
	fmt.Println("  down    - roll back the latest migration")
	fmt.Println("  status  - print migration status")
}
