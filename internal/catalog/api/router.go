// Package api exposes the catalog over HTTP.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nikolayk812/eshop/internal/catalog/feature"
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

	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.createProduct)
		r.Put("/", h.updateProduct)
		r.Get("/", h.getProducts)
		r.Get("/category/{category}", h.getProductsByCategory)
		r.Get("/{id}", h.getProductByID)
		r.Delete("/{id}", h.deleteProduct)
	})

	r.Get("/health", health.Handler(log, checks))

	return r
}

func (h *handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var cmd feature.CreateProductCommand
	if err := httpx.DecodeJSON(w, r, &cmd); err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	res, err := cqrs.Send[feature.CreateProductCommand, feature.CreateProductResult](r.Context(), h.m, cmd)
	if err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/products/%s", res.ID))
	httpx.WriteJSON(w, http.StatusCreated, res)
}

func (h *handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var cmd feature.UpdateProductCommand
	if err := httpx.DecodeJSON(w, r, &cmd); err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	res, err := cqrs.Send[feature.UpdateProductCommand, feature.UpdateProductResult](r.Context(), h.m, cmd)
	if err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *handler) getProducts(w http.ResponseWriter, r *http.Request) {
	pageNumber, err := httpx.QueryInt(r, "pageNumber", 1)
	if err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}
	pageSize, err := httpx.QueryInt(r, "pageSize", 10)
	if err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	res, err := cqrs.Send[feature.GetProductsQuery, feature.GetProductsResult](r.Context(), h.m,
		feature.GetProductsQuery{PageNumber: pageNumber, PageSize: pageSize})
	if err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *handler) getProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.URLParamUUID(r, "id")
	if err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	res, err := cqrs.Send[feature.GetProductByIDQuery, feature.GetProductByIDResult](r.Context(), h.m,
		feature.GetProductByIDQuery{ID: id})
	if err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *handler) getProductsByCategory(w http.ResponseWriter, r *http.Request) {
	res, err := cqrs.Send[feature.GetProductsByCategoryQuery, feature.GetProductsByCategoryResult](r.Context(), h.m,
		feature.GetProductsByCategoryQuery{Category: chi.URLParam(r, "category")})
	if err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.URLParamUUID(r, "id")
	if err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	res, err := cqrs.Send[feature.DeleteProductCommand, feature.DeleteProductResult](r.Context(), h.m,
		feature.DeleteProductCommand{ID: id})
	if err != nil {
		httpx.WriteProblem(w, r, h.log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, res)
}
