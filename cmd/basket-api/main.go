// Command basket-api serves shopping carts and checkout over HTTP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nikolayk812/eshop/internal/basket/adapter"
	"github.com/nikolayk812/eshop/internal/basket/api"
	"github.com/nikolayk812/eshop/internal/basket/feature"
	"github.com/nikolayk812/eshop/internal/basket/migrations"
	"github.com/nikolayk812/eshop/internal/basket/repository"
	discountgrpc "github.com/nikolayk812/eshop/internal/discount/grpc"
	"github.com/nikolayk812/eshop/internal/platform/config"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
	"github.com/nikolayk812/eshop/internal/platform/health"
	"github.com/nikolayk812/eshop/internal/platform/httpx"
	"github.com/nikolayk812/eshop/internal/platform/logger"
	"github.com/nikolayk812/eshop/internal/platform/messaging"
	"github.com/nikolayk812/eshop/internal/platform/postgres"
	"github.com/nikolayk812/eshop/internal/platform/redisx"
	"github.com/nikolayk812/eshop/internal/platform/telemetry"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

const serviceName = "basket-api"

type settings struct {
	App       config.App
	Telemetry config.Telemetry
	Postgres  config.Postgres
	Redis     config.Redis

	Addr         string        `env:"HTTP_ADDR" envDefault:":8081"`
	DiscountAddr string        `env:"DISCOUNT_GRPC_ADDR" envDefault:"localhost:8082"`
	CacheTTL     time.Duration `env:"BASKET_CACHE_TTL" envDefault:"30m"`
	StreamMaxLen int64         `env:"EVENT_STREAM_MAX_LEN" envDefault:"10000"`
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

	rdb, err := redisx.Connect(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("redisx.Connect: %w", err)
	}
	defer func() { _ = rdb.Close() }()

	discountClient, err := discountgrpc.Dial(cfg.DiscountAddr)
	if err != nil {
		return fmt.Errorf("discountgrpc.Dial: %w", err)
	}
	defer func() { _ = discountClient.Close() }()

	repo := repository.NewCachedBasket(repository.NewBasket(pool), rdb, cfg.CacheTTL, log)

	m := cqrs.NewDefault(otel.Tracer(serviceName), log)
	feature.Register(m, repo,
		adapter.NewDiscount(discountClient),
		messaging.NewRedisPublisher(rdb, cfg.StreamMaxLen))

	router := api.NewRouter(m, log, map[string]health.Check{
		"postgres": pool.Ping,
		"redis": func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		},
	})

	return httpx.Serve(ctx, httpx.NewServer(cfg.Addr, router), log)
}
