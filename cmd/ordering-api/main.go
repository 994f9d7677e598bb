// Command ordering-api serves orders over HTTP and turns basket checkouts
// into orders.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nikolayk812/eshop/internal/ordering/api"
	"github.com/nikolayk812/eshop/internal/ordering/feature"
	"github.com/nikolayk812/eshop/internal/ordering/integration"
	"github.com/nikolayk812/eshop/internal/ordering/repository"
	"github.com/nikolayk812/eshop/internal/platform/config"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
	"github.com/nikolayk812/eshop/internal/platform/health"
	"github.com/nikolayk812/eshop/internal/platform/httpx"
	"github.com/nikolayk812/eshop/internal/platform/logger"
	"github.com/nikolayk812/eshop/internal/platform/messaging"
	"github.com/nikolayk812/eshop/internal/platform/redisx"
	"github.com/nikolayk812/eshop/internal/platform/telemetry"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const serviceName = "ordering-api"

type settings struct {
	App       config.App
	Telemetry config.Telemetry
	Postgres  config.Postgres
	Redis     config.Redis

	Addr             string        `env:"HTTP_ADDR" envDefault:":8083"`
	OrderFulfillment bool          `env:"FEATURE_ORDER_FULFILLMENT" envDefault:"false"`
	ConsumerGroup    string        `env:"CHECKOUT_CONSUMER_GROUP" envDefault:"ordering"`
	ConsumerName     string        `env:"CHECKOUT_CONSUMER_NAME" envDefault:"ordering-1"`
	RetryIdle        time.Duration `env:"CHECKOUT_RETRY_IDLE" envDefault:"30s"`
	StreamMaxLen     int64         `env:"EVENT_STREAM_MAX_LEN" envDefault:"10000"`
	SeedData         bool          `env:"SEED_INITIAL_DATA" envDefault:"true"`
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

	db, err := repository.Open(ctx, cfg.Postgres, log)
	if err != nil {
		return fmt.Errorf("repository.Open: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if err := repository.Migrate(ctx, db); err != nil {
		return fmt.Errorf("repository.Migrate: %w", err)
	}
	if cfg.SeedData {
		if err := repository.Seed(ctx, db); err != nil {
			return fmt.Errorf("repository.Seed: %w", err)
		}
	}

	rdb, err := redisx.Connect(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("redisx.Connect: %w", err)
	}
	defer func() { _ = rdb.Close() }()

	events := feature.NewEventDispatcher(
		messaging.NewRedisPublisher(rdb, cfg.StreamMaxLen),
		cfg.OrderFulfillment,
		log)

	m := cqrs.NewDefault(otel.Tracer(serviceName), log)
	feature.Register(m, repository.NewOrder(db), events)

	router := api.NewRouter(m, log, map[string]health.Check{
		"postgres": repository.Ping(db),
		"redis": func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		},
	})

	consumer := messaging.NewRedisConsumer(rdb, messaging.ConsumerConfig{
		Stream:   messaging.BasketCheckoutStream,
		Group:    cfg.ConsumerGroup,
		Consumer: cfg.ConsumerName,
		MinIdle:  cfg.RetryIdle,
	}, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpx.Serve(gctx, httpx.NewServer(cfg.Addr, router), log)
	})
	g.Go(func() error {
		return consumer.Run(gctx, integration.BasketCheckoutHandler(m, log))
	})

	return g.Wait()
}
