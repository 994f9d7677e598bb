// Package web serves the server-rendered storefront.
package web

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/eshop/internal/platform/health"
	"github.com/nikolayk812/eshop/internal/platform/money"
	"github.com/nikolayk812/eshop/internal/web/client"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

type CatalogService interface {
	GetProducts(ctx context.Context, pageNumber, pageSize int) ([]client.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (client.Product, error)
	GetProductsByCategory(ctx context.Context, category string) ([]client.Product, error)
}

type BasketService interface {
	LoadUserBasket(ctx context.Context, userName string) (client.ShoppingCart, error)
	StoreBasket(ctx context.Context, cart client.ShoppingCart) error
	CheckoutBasket(ctx context.Context, checkout client.BasketCheckout) error
}

type OrderingService interface {
	GetOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]client.Order, error)
}

type Options struct {
	Service string
	// UserName and CustomerID stand in for the signed-in shopper.
	UserName     string
	CustomerID   uuid.UUID
	Currency     currency.Unit
	Language     language.Tag
	AllowOrigins []string
}

type Services struct {
	Catalog  CatalogService
	Basket   BasketService
	Ordering OrderingService
}

func NewRouter(svc Services, opts Options, log *zap.Logger, checks map[string]health.Check) (*gin.Engine, error) {
	renderer, err := NewRenderer(template.FuncMap{
		"price": func(d decimal.Decimal) string {
			return money.New(d, opts.Currency).Format(opts.Language)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("NewRenderer: %w", err)
	}

	h := &handler{
		catalog:  svc.Catalog,
		basket:   svc.Basket,
		ordering: svc.Ordering,
		opts:     opts,
		log:      log,
	}

	r := gin.New()
	r.HTMLRender = renderer

	r.Use(requestLogger(log))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("panic recovered", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		h.renderError(c, http.StatusInternalServerError, "Something went wrong", "Please try again later.")
	}))
	r.Use(otelgin.Middleware(opts.Service))
	r.Use(newCORS(opts.AllowOrigins))

	r.GET("/", h.index)
	r.GET("/products", h.products)
	r.GET("/products/:id", h.product)
	r.GET("/cart", h.cart)
	r.POST("/cart/add", h.addToCart)
	r.POST("/cart/remove", h.removeFromCart)
	r.GET("/checkout", h.checkout)
	r.POST("/checkout", h.submitCheckout)
	r.GET("/confirmation", h.confirmation)
	r.GET("/orders", h.orders)
	r.GET("/health", gin.WrapF(health.Handler(log, checks)))

	return r, nil
}

func newCORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Requested-With"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Int("bytes", c.Writer.Size()),
			zap.Duration("duration", time.Since(start)),
			zap.String("clientIp", c.ClientIP()))
	}
}
