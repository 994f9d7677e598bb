// Command discount-grpc serves product coupons over gRPC.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nikolayk812/eshop/internal/discount/app"
	"github.com/nikolayk812/eshop/internal/platform/config"
	"github.com/nikolayk812/eshop/internal/platform/logger"
	"github.com/nikolayk812/eshop/internal/platform/telemetry"
	"go.uber.org/zap"
)

const serviceName = "discount-grpc"

type settings struct {
	App       config.App
	Telemetry config.Telemetry

	Addr   string `env:"GRPC_ADDR" envDefault:":8082"`
	DBPath string `env:"DISCOUNT_DB_PATH" envDefault:"discountdb.sqlite"`
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

	srv, err := app.New(ctx, cfg.Addr, cfg.DBPath, log)
	if err != nil {
		return fmt.Errorf("app.New: %w", err)
	}

	return srv.Serve(ctx)
}
