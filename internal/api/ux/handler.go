package ux

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charole/auto-ux-backend/internal/entity"
	"github.com/charole/auto-ux-backend/internal/pkg/logger"
	"github.com/charole/auto-ux-backend/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	uxUsecase      UXUsecase
	catalogUsecase CatalogUsecase
	validator      *validator.Validator
}

func NewHandler(
	uxUsecase UXUsecase,
	catalogUsecase CatalogUsecase,
	validator *validator.Validator,
) *Handler {
	return &Handler{
		uxUsecase:      uxUsecase,
		catalogUsecase: catalogUsecase,
		validator:      validator,
	}
}

// GenerateUI handles GET|POST /api/v1/ux/generate-ui
func (h *Handler) GenerateUI(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateUI")

	req, err := toGenerateUIRequest(r)
	if err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateGenerateUI(req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	ctxzap.Info(ctx, "generating UI",
		zap.String("page_type", req.PageType.String()),
		zap.Bool("has_query", req.UserQuery != ""),
		zap.String("product_id", req.ProductID),
	)

	h.respondJSON(w, http.StatusOK, h.uxUsecase.GenerateUI(ctx, req))
}

// GenerateSmartUI handles GET /api/v1/ux/generate-ui-smart
func (h *Handler) GenerateSmartUI(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateSmartUI")

	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if err := h.validator.ValidateSmartQuery(query); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.uxUsecase.GenerateSmartUI(ctx, query))
}

// Search handles GET /api/v1/ux/search
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Search")

	req, err := toSearchRequest(r.URL.Query())
	if err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid limit", err)
		return
	}

	if err := h.validator.ValidateSearch(req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	resp, err := h.catalogUsecase.Search(ctx, req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// ListProducts handles GET /api/v1/ux/products
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListProducts")

	limit, err := h.limit(r)
	if err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid limit", err)
		return
	}

	resp, err := h.catalogUsecase.ListProducts(ctx, &entity.ListProductsRequest{
		Category: strings.TrimSpace(r.URL.Query().Get("category")),
		Limit:    limit,
	})
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Debug(ctx, "products listed", zap.Int("count", resp.Total))
	h.respondJSON(w, http.StatusOK, resp)
}

// GetProduct handles GET /api/v1/ux/products/{product_id}
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("product_id", productID),
		zap.String("action", "GetProduct"),
	)

	product, err := h.catalogUsecase.GetProduct(ctx, productID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, product)
}

// ListCategories handles GET /api/v1/ux/categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListCategories")

	resp, err := h.catalogUsecase.ListCategories(ctx)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// ListFAQs handles GET /api/v1/ux/faqs
func (h *Handler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListFAQs")

	limit, err := h.limit(r)
	if err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid limit", err)
		return
	}

	resp, err := h.catalogUsecase.ListFAQs(ctx, &entity.ListFAQsRequest{
		Category: strings.TrimSpace(r.URL.Query().Get("category")),
		Limit:    limit,
	})
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// ListTestimonials handles GET /api/v1/ux/testimonials
func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListTestimonials")

	limit, err := h.limit(r)
	if err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid limit", err)
		return
	}

	resp, err := h.catalogUsecase.ListTestimonials(ctx, &entity.ListTestimonialsRequest{
		ProductID: strings.TrimSpace(r.URL.Query().Get("product_id")),
		Limit:     limit,
	})
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// Health handles GET /health and GET /api/v1/ux/health. The service stays
// healthy without a database or generator; the fields report what is degraded.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	dbErr := h.catalogUsecase.Ping(pingCtx)
	if dbErr != nil {
		ctxzap.Warn(ctx, "database ping failed", zap.Error(dbErr))
	}

	h.respondJSON(w, http.StatusOK, &entity.HealthResponse{
		Status:            "healthy",
		DatabaseConnected: dbErr == nil,
		AIAvailable:       h.uxUsecase.GenerationAvailable(),
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) limit(r *http.Request) (int, error) {
	limit, err := parseLimit(r.URL.Query())
	if err != nil {
		return 0, fmt.Errorf("%w: limit: %w", entity.ErrInvalidParameter, err)
	}
	if err := h.validator.ValidateLimit(limit); err != nil {
		return 0, err
	}
	return limit, nil
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Error(ctx, message)
	}

	resp := entity.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	}
	if err != nil && status < http.StatusInternalServerError {
		resp.Message = fmt.Sprintf("%s: %s", message, err)
	}
	h.respondJSON(w, status, resp)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrProductNotFound) {
		h.respondError(ctx, w, http.StatusNotFound, "resource not found", err)
	} else if errors.Is(err, entity.ErrInvalidParameter) || errors.Is(err, entity.ErrMissingField) || errors.Is(err, entity.ErrInvalidFormat) {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	} else if errors.Is(err, entity.ErrDataAccess) {
		h.respondError(ctx, w, http.StatusServiceUnavailable, "catalog temporarily unavailable", err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
