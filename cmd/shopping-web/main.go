// Command shopping-web serves the storefront.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/eshop/internal/platform/config"
	"github.com/nikolayk812/eshop/internal/platform/health"
	"github.com/nikolayk812/eshop/internal/platform/httpx"
	"github.com/nikolayk812/eshop/internal/platform/logger"
	"github.com/nikolayk812/eshop/internal/platform/money"
	"github.com/nikolayk812/eshop/internal/platform/telemetry"
	"github.com/nikolayk812/eshop/internal/web"
	"github.com/nikolayk812/eshop/internal/web/client"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const serviceName = "shopping-web"

type settings struct {
	App       config.App
	Telemetry config.Telemetry

	Addr         string        `env:"HTTP_ADDR" envDefault:":8084"`
	CatalogURL   string        `env:"CATALOG_API_URL" envDefault:"http://localhost:8080"`
	BasketURL    string        `env:"BASKET_API_URL" envDefault:"http://localhost:8081"`
	OrderingURL  string        `env:"ORDERING_API_URL" envDefault:"http://localhost:8083"`
	APITimeout   time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	UserName     string        `env:"SHOP_USER_NAME" envDefault:"swn"`
	CustomerID   uuid.UUID     `env:"SHOP_CUSTOMER_ID" envDefault:"9dbc33d1-2398-4b96-adc4-2752846e5b90"`
	Currency     string        `env:"SHOP_CURRENCY" envDefault:"USD"`
	Language     string        `env:"SHOP_LANGUAGE" envDefault:"en-US"`
	AllowOrigins []string      `env:"CORS_ALLOW_ORIGINS" envSeparator:","`
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

	cur, err := money.ParseCurrency(cfg.Currency)
	if err != nil {
		return err
	}
	lang, err := language.Parse(cfg.Language)
	if err != nil {
		return fmt.Errorf("language.Parse[%s]: %w", cfg.Language, err)
	}

	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	hc := client.NewHTTPClient(cfg.APITimeout)

	router, err := web.NewRouter(
		web.Services{
			Catalog:  client.NewCatalog(cfg.CatalogURL, hc),
			Basket:   client.NewBasket(cfg.BasketURL, hc),
			Ordering: client.NewOrdering(cfg.OrderingURL, hc),
		},
		web.Options{
			Service:      serviceName,
			UserName:     cfg.UserName,
			CustomerID:   cfg.CustomerID,
			Currency:     cur,
			Language:     lang,
			AllowOrigins: cfg.AllowOrigins,
		},
		log,
		map[string]health.Check{
			"catalog":  upstream(hc, cfg.CatalogURL),
			"basket":   upstream(hc, cfg.BasketURL),
			"ordering": upstream(hc, cfg.OrderingURL),
		},
	)
	if err != nil {
		return fmt.Errorf("web.NewRouter: %w", err)
	}

	return httpx.Serve(ctx, httpx.NewServer(cfg.Addr, router), log)
}

// upstream checks that the health endpoint of an API answers 200.
func upstream(hc *http.Client, baseURL string) health.Check {
	return func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/health", nil)
		if err != nil {
			return err
		}
		resp, err := hc.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("status %d", resp.StatusCode)
		}
		return nil
	}
}
