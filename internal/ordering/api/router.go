// Package api exposes ordering over HTTP.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nikolayk812/eshop/internal/ordering/feature"
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

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.createOrder)
		r.Put("/", h.updateOrder)
		r.Get("/", h.getOrders)
		r.Get("/customer/{customerId}", h.getOrdersByCustomer)
		// the segment is an order name for GET and an order id for DELETE
		r.Get("/{order}", h.getOrdersByName)
		r.Delete("/{order}", h.deleteOrder)
	})

	r.Get("/health", health.Handler(log, checks))

	return r
}

func (h *handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var cmd feature.CreateOrderCommand
	if err := httpx.DecodeJSON(w, r, &cmd); err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	res, err := cqrs.Send[feature.CreateOrderCommand, feature.CreateOrderResult](r.Context(), h.m, cmd)
	if err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/orders/%s", res.ID))
	httpx.WriteJSON(w, http.StatusCreated, res)
}

func (h *handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	var cmd feature.UpdateOrderCommand
	if err := httpx.DecodeJSON(w, r, &cmd); err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	res, err := cqrs.Send[feature.UpdateOrderCommand, feature.UpdateOrderResult](r.Context(), h.m, cmd)
	if err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.URLParamUUID(r, "order")
	if err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	res, err := cqrs.Send[feature.DeleteOrderCommand, feature.DeleteOrderResult](r.Context(), h.m,
		feature.DeleteOrderCommand{OrderID: id})
	if err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *handler) getOrders(w http.ResponseWriter, r *http.Request) {
	pageIndex, err := httpx.QueryInt(r, "pageIndex", 0)
	if err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}
	pageSize, err := httpx.QueryInt(r, "pageSize", 10)
	if err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	res, err := cqrs.Send[feature.GetOrdersQuery, feature.GetOrdersResult](r.Context(), h.m,
		feature.GetOrdersQuery{PageIndex: pageIndex, PageSize: pageSize})
	if err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *handler) getOrdersByName(w http.ResponseWriter, r *http.Request) {
	res, err := cqrs.Send[feature.GetOrdersByNameQuery, feature.GetOrdersByNameResult](r.Context(), h.m,
		feature.GetOrdersByNameQuery{Name: chi.URLParam(r, "order")})
	if err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *handler) getOrdersByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := httpx.URLParamUUID(r, "customerId")
	if err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	res, err := cqrs.Send[feature.GetOrdersByCustomerQuery, feature.GetOrdersByCustomerResult](r.Context(), h.m,
		feature.GetOrdersByCustomerQuery{CustomerID: customerID})
	if err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, res)
}
