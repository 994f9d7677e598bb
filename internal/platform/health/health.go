// Package health exposes dependency checks over HTTP.
package health

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/nikolayk812/eshop/internal/platform/httpx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const checkTimeout = 3 * time.Second

type Check func(ctx context.Context) error

type Entry struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type Report struct {
	Status  string           `json:"status"`
	Entries map[string]Entry `json:"entries"`
}

// Run executes every check concurrently and reports Unhealthy if any fails.
func Run(ctx context.Context, checks map[string]Check) Report {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	var (
		mu     sync.Mutex
		report = Report{Status: "Healthy", Entries: make(map[string]Entry, len(checks))}
	)

	var g errgroup.Group
	for name, check := range checks {
		g.Go(func() error {
			entry := Entry{Status: "Healthy"}
			if err := check(ctx); err != nil {
				entry = Entry{Status: "Unhealthy", Error: err.Error()}
			}

			mu.Lock()
			defer mu.Unlock()
			report.Entries[name] = entry
			if entry.Status != "Healthy" {
				report.Status = "Unhealthy"
			}
			return nil
		})
	}
	_ = g.Wait()

	return report
}

func Handler(log *zap.Logger, checks map[string]Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := Run(r.Context(), checks)

		code := http.StatusOK
		if report.Status != "Healthy" {
			code = http.StatusServiceUnavailable
			log.Warn("health check failed", zap.Any("entries", report.Entries))
		}

		httpx.WriteJSON(w, code, report)
	}
}
