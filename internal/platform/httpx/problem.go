package httpx

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/nikolayk812/eshop/internal/platform/apperr"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Problem is an RFC 7807 problem details body.
type Problem struct {
	Title            string              `json:"title"`
	Status           int                 `json:"status"`
	Detail           string              `json:"detail"`
	Instance         string              `json:"instance"`
	TraceID          string              `json:"traceId,omitempty"`
	ValidationErrors []apperr.FieldError `json:"validationErrors,omitempty"`
}

func (p Problem) Error() string {
	return p.Title + ": " + p.Detail
}

// NewProblem describes err as it should be reported to the client of r.
func NewProblem(r *http.Request, err error) Problem {
	status := apperr.StatusOf(err)

	p := Problem{
		Title:    apperr.Title(err),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.URL.Path,
		TraceID:  middleware.GetReqID(r.Context()),
	}
	if sc := trace.SpanContextFromContext(r.Context()); sc.HasTraceID() {
		p.TraceID = sc.TraceID().String()
	}

	var verr *apperr.ValidationError
	if errors.As(err, &verr) {
		p.ValidationErrors = verr.Errors
	}

	if status >= http.StatusInternalServerError {
		var internal *apperr.InternalServerError
		if !errors.As(err, &internal) {
			p.Detail = http.StatusText(status)
		}
	}

	return p
}

// WriteProblem logs err and writes it as application/problem+json.
func WriteProblem(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	p := NewProblem(r, err)

	if p.Status >= http.StatusInternalServerError {
		log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}

	writeBody(w, "application/problem+json", p.Status, p)
}
