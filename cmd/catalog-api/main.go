// Command catalog-api serves the product catalog over HTTP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nikolayk812/eshop/internal/catalog/api"
	"github.com/nikolayk812/eshop/internal/catalog/feature"
	"github.com/nikolayk812/eshop/internal/catalog/migrations"
	"github.com/nikolayk812/eshop/internal/catalog/repository"
	"github.com/nikolayk812/eshop/internal/catalog/seed"
	"github.com/nikolayk812/eshop/internal/platform/config"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
	"github.com/nikolayk812/eshop/internal/platform/health"
	"github.com/nikolayk812/eshop/internal/platform/httpx"
	"github.com/nikolayk812/eshop/internal/platform/logger"
	"github.com/nikolayk812/eshop/internal/platform/postgres"
	"github.com/nikolayk812/eshop/internal/platform/telemetry"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

const serviceName = "catalog-api"

type settings struct {
	App       config.App
	Telemetry config.Telemetry
	Postgres  config.Postgres

	Addr string `env:"HTTP_ADDR" envDefault:":8080"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg settings
	if err := config.Parse(&cfg); err != nil {
		return err
	}

	log, err := logger.New(logger.Options{Service: serviceName, Env: cfg.App.Env, Level: cfg.App.LogLevel})
	if err != nil {
		return fmt.Errorf("logger.New: %w", err)
	}
	defer func() { _ = log.Sync() }()

	shutdown, err := telemetry.Setup(ctx, serviceName, cfg.App.Env, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("telemetry.Setup: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			log.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	pool, err := postgres.Connect(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("postgres.Connect: %w", err)
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool, migrations.FS)
	if err != nil {
		return fmt.Errorf("postgres.Migrate: %w", err)
	}
	log.Info("migrations applied", zap.Strings("versions", applied))

	repo := repository.NewProduct(pool)

	products, err := seed.Products()
	if err != nil {
		return fmt.Errorf("seed.Products: %w", err)
	}
	seeded, err := repo.SeedProducts(ctx, products)
	if err != nil {
		return fmt.Errorf("repo.SeedProducts: %w", err)
	}
	if seeded > 0 {
		log.Info("catalog seeded", zap.Int("products", seeded))
	}

	m := cqrs.NewDefault(otel.Tracer(serviceName), log)
	feature.Register(m, repo)

	router := api.NewRouter(m, log, map[string]health.Check{
		"postgres": pool.Ping,
	})

	return httpx.Serve(ctx, httpx.NewServer(cfg.Addr, router), log)
}
