package cqrs

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/nikolayk812/eshop/internal/platform/apperr"
	"go.uber.org/zap"
)

const DefaultSlowThreshold = 3 * time.Second

// LoggingBehavior logs the start and end of every request and warns when a
// request runs longer than threshold.
func LoggingBehavior(log *zap.Logger, threshold time.Duration) Behavior {
	if threshold <= 0 {
		threshold = DefaultSlowThreshold
	}

	return func(ctx context.Context, req any, next Next) (any, error) {
		name := Name(req)

		log.Info(fmt.Sprintf("[START] Handle request=%s - Response=%s", name, ResponseName(ctx)),
			zap.String("kind", Kind(req)),
			zap.Any("requestData", req))

		start := time.Now()
		resp, err := next(ctx)
		elapsed := time.Since(start)

		if elapsed > threshold {
			log.Warn(fmt.Sprintf("[PERFORMANCE] The request %s took %.3f seconds.", name, elapsed.Seconds()),
				zap.Duration("elapsed", elapsed))
		}

		if err != nil {
			lvl := log.Error
			if apperr.StatusOf(err) < http.StatusInternalServerError {
				lvl = log.Warn
			}
			lvl(fmt.Sprintf("[END] Failed %s", name), zap.Error(err), zap.Duration("elapsed", elapsed))
			return nil, err
		}

		log.Info(fmt.Sprintf("[END] Handled %s with %s", name, Name(resp)), zap.Duration("elapsed", elapsed))

		return resp, nil
	}
}
