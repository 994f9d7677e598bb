// Package api exposes the basket over HTTP.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nikolayk812/eshop/internal/basket/feature"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
	"github.com/nikolayk812/eshop/internal/platform/health"
	"github.com/nikolayk812/eshop/internal/platform/httpx"
	"go.uber.org/zap"
)

type handler struct {
	m   *cqrs.Mediator
	log *zap.Logger
}

func NewRouter(m *cqrs.Mediator, log *zap.Logger, checks map[string]health.Check) http.Handler {
	h := &handler{m: m, log: log}

	r := httpx.NewRouter(log)

	r.Route("/basket", func(r chi.Router) {
		r.Post("/", h.storeBasket)
		r.Post("/checkout", h.checkoutBasket)
		r.Get("/{userName}", h.getBasket)
		r.Delete("/{userName}", h.deleteBasket)
	})

	r.Get("/health", health.Handler(log, checks))

	return r
}

func (h *handler) getBasket(w http.ResponseWriter, r *http.Request) {
	res, err := cqrs.Send[feature.GetBasketQuery, feature.GetBasketResult](r.Context(), h.m,
		feature.GetBasketQuery{UserName: chi.URLParam(r, "userName")})
	if err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *handler) storeBasket(w http.ResponseWriter, r *http.Request) {
	var cmd feature.StoreBasketCommand
	if err := httpx.DecodeJSON(w, r, &cmd); err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	res, err := cqrs.Send[feature.StoreBasketCommand, feature.StoreBasketResult](r.Context(), h.m, cmd)
	if err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/basket/%s", res.UserName))
	httpx.WriteJSON(w, http.StatusCreated, res)
}

func (h *handler) deleteBasket(w http.ResponseWriter, r *http.Request) {
	res, err := cqrs.Send[feature.DeleteBasketCommand, feature.DeleteBasketResult](r.Context(), h.m,
		feature.DeleteBasketCommand{UserName: chi.URLParam(r, "userName")})
	if err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *handler) checkoutBasket(w http.ResponseWriter, r *http.Request) {
	var cmd feature.CheckoutBasketCommand
	if err := httpx.DecodeJSON(w, r, &cmd); err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	res, err := cqrs.Send[feature.CheckoutBasketCommand, feature.CheckoutBasketResult](r.Context(), h.m, cmd)
	if err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, res)
}
