// Package httpx holds the HTTP plumbing shared by the JSON APIs.
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/nikolayk812/eshop/internal/platform/apperr"
)

const maxBodyBytes = 1 << 20

func WriteJSON(w http.ResponseWriter, code int, v any) {
	writeBody(w, "application/json", code, v)
}

func writeBody(w http.ResponseWriter, contentType string, code int, v any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(code)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// DecodeJSON reads a single JSON object from the request body into dst.
// Malformed bodies become a BadRequestError.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return apperr.BadRequest("request body is empty")
		case errors.As(err, &maxErr):
			return apperr.BadRequest(fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit))
		default:
			return &apperr.BadRequestError{Message: "request body is not valid JSON", Details: err.Error()}
		}
	}

	if dec.More() {
		return apperr.BadRequest("request body must contain a single JSON object")
	}

	return nil
}
