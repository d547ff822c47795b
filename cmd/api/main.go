// Command api serves the DCH Learning HTTP API.
//
// @title                       API DCH Learning
// @version                     1.0.0
// @description                 API pour la plateforme de formation DCH Learning
// @contact.name                Équipe DCH Learning
// @contact.email               contact@dchlearning.fr
// @BasePath                    /
// @securityDefinitions.apikey  AdminAuth
// @in                          header
// @name                        user-email
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dchlearning/platform/internal/api"
	"github.com/dchlearning/platform/internal/api/handler"
	"github.com/dchlearning/platform/internal/core/ports"
	"github.com/dchlearning/platform/internal/core/service"
	"github.com/dchlearning/platform/internal/infrastructure/config"
	"github.com/dchlearning/platform/internal/infrastructure/credential"
	"github.com/dchlearning/platform/internal/infrastructure/db/redis"
	"github.com/dchlearning/platform/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is fine: the environment may already be populated.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "api:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "dch-api",
	})

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close()

	readiness := st.checks

	var idem ports.IdempotencyStore
	redisCfg := redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if redisCfg.Enabled() {
		rdb, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer rdb.Close()

		idem = redis.NewIdempotencyStore(rdb, cfg.Redis.IdempotencyTTL)
		readiness = append(readiness, handler.DependencyCheck{
			Name: "redis",
			Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
		log.Info().Str("addr", cfg.Redis.Addr).Msg("idempotency cache enabled")
	}

	var tokens ports.TokenIssuer
	if cfg.TokenAuth() {
		tokens = service.NewJWTIssuer(cfg.JWTSecret, cfg.TokenTTL)
	}

	hasher := credential.NewBcryptHasher(credential.DefaultCost)
	accounts := service.NewAccountService(st.users, hasher, tokens, logger.Component("accounts"))
	authz := service.NewAuthorizationService(st.users, tokens, logger.Component("authorization"))
	catalog := service.NewCatalogService(st.formations, logger.Component("catalog"))
	contacts := service.NewContactService(st.contacts, idem, logger.Component("contact"))

	if cfg.SeedCatalog {
		if _, err := catalog.Seed(ctx); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	e := api.NewRouter(api.Dependencies{
		Accounts:      accounts,
		Authorization: authz,
		Catalog:       catalog,
		Contacts:      contacts,
		Readiness:     readiness,
		TokenAuth:     cfg.TokenAuth(),
		CORSOrigins:   cfg.CORSOrigins,
		Log:           logger.Component("http"),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("store", cfg.StoreDriver).
			Str("auth_mode", cfg.AuthMode).
			Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
