// Package cqrs routes commands and queries to their handlers through an
// ordered chain of behaviors.
package cqrs

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var ErrHandlerNotFound = errors.New("handler not found")

// Command marks a request that changes state.
type Command interface{ isCommand() }

// Query marks a request that only reads state.
type Query interface{ isQuery() }

// CommandMarker is embedded by command structs.
type CommandMarker struct{}

func (CommandMarker) isCommand() {}

// QueryMarker is embedded by query structs.
type QueryMarker struct{}

func (QueryMarker) isQuery() {}

// Unit is the response of commands that return nothing.
type Unit struct{}

type Handler[Req, Resp any] interface {
	Handle(ctx context.Context, req Req) (Resp, error)
}

type HandlerFunc[Req, Resp any] func(ctx context.Context, req Req) (Resp, error)

func (f HandlerFunc[Req, Resp]) Handle(ctx context.Context, req Req) (Resp, error) {
	return f(ctx, req)
}

type Next func(ctx context.Context) (any, error)

// Behavior wraps handler invocation. It must call next at most once.
type Behavior func(ctx context.Context, req any, next Next) (any, error)

type Mediator struct {
	mu        sync.RWMutex
	handlers  map[reflect.Type]func(ctx context.Context, req any) (any, error)
	behaviors []Behavior
}

// New returns a mediator; the first behavior is the outermost.
func New(behaviors ...Behavior) *Mediator {
	return &Mediator{
		handlers:  make(map[reflect.Type]func(ctx context.Context, req any) (any, error)),
		behaviors: behaviors,
	}
}

// Register binds h to requests of type Req. Registering a type twice panics.
func Register[Req, Resp any](m *Mediator, h Handler[Req, Resp]) {
	key := reflect.TypeFor[Req]()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.handlers[key]; ok {
		panic(fmt.Sprintf("cqrs: handler for %s already registered", key))
	}

	m.handlers[key] = func(ctx context.Context, req any) (any, error) {
		return h.Handle(ctx, req.(Req))
	}
}

// Send dispatches req to its handler through every behavior.
func Send[Req, Resp any](ctx context.Context, m *Mediator, req Req) (Resp, error) {
	var zero Resp

	key := reflect.TypeFor[Req]()

	m.mu.RLock()
	handle, ok := m.handlers[key]
	m.mu.RUnlock()
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrHandlerNotFound, key)
	}

	next := func(ctx context.Context) (any, error) {
		return handle(ctx, req)
	}
	for i := len(m.behaviors) - 1; i >= 0; i-- {
		b, inner := m.behaviors[i], next
		next = func(ctx context.Context) (any, error) {
			return b(ctx, req, inner)
		}
	}

	out, err := next(context.WithValue(ctx, responseKey{}, reflect.TypeFor[Resp]()))
	if err != nil {
		return zero, err
	}

	resp, ok := out.(Resp)
	if !ok {
		return zero, fmt.Errorf("cqrs: handler for %s returned %T", key, out)
	}

	return resp, nil
}

// Kind reports whether req is a command, a query, or neither.
func Kind(req any) string {
	switch req.(type) {
	case Command:
		return "command"
	case Query:
		return "query"
	default:
		return "request"
	}
}

// Name returns the request type name used in logs and spans.
func Name(v any) string {
	return typeName(reflect.TypeOf(v))
}

type responseKey struct{}

// ResponseName returns the name of the response type expected by the Send
// call that ctx belongs to, or "" outside of Send.
func ResponseName(ctx context.Context) string {
	t, ok := ctx.Value(responseKey{}).(reflect.Type)
	if !ok {
		return ""
	}
	return typeName(t)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
