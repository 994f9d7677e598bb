// Package pagination carries page requests and page results between
// handlers and stores.
package pagination

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	// MaxOffset keeps offsets within the int32 range SQL drivers bind.
	MaxOffset = math.MaxInt32
)

// Request addresses a zero-based page.
type Request struct {
	PageIndex int `json:"pageIndex"`
	PageSize  int `json:"pageSize"`
}

// Normalize replaces out of range values with defaults. PageIndex is capped
// so that Offset never exceeds MaxOffset.
func (r Request) Normalize() Request {
	if r.PageIndex < 0 {
		r.PageIndex = 0
	}
	switch {
	case r.PageSize <= 0:
		r.PageSize = DefaultPageSize
	case r.PageSize > MaxPageSize:
		r.PageSize = MaxPageSize
	}
	r.PageIndex = min(r.PageIndex, MaxOffset/r.PageSize)
	return r
}

// Offset is PageIndex*PageSize, saturating at MaxOffset.
func (r Request) Offset() int {
	if r.PageIndex <= 0 || r.PageSize <= 0 {
		return 0
	}
	if r.PageIndex > MaxOffset/r.PageSize {
		return MaxOffset
	}
	return r.PageIndex * r.PageSize
}

type Result[T any] struct {
	PageIndex int   `json:"pageIndex"`
	PageSize  int   `json:"pageSize"`
	Count     int64 `json:"count"`
	Data      []T   `json:"data"`
}

func NewResult[T any](req Request, count int64, data []T) Result[T] {
	if data == nil {
		data = []T{}
	}
	return Result[T]{
		PageIndex: req.PageIndex,
		PageSize:  req.PageSize,
		Count:     count,
		Data:      data,
	}
}

// Map converts every item of r with fn.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	out := make([]U, 0, len(r.Data))
	for _, v := range r.Data {
		out = append(out, fn(v))
	}
	return Result[U]{PageIndex: r.PageIndex, PageSize: r.PageSize, Count: r.Count, Data: out}
}
