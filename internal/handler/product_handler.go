package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"compumart/internal/model"
	"compumart/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles catalogue HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// GetAll handles GET /api/products requests.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve products", h.logger)
		return
	}

	if products == nil {
		products = []model.Product{}
	}

	writeJSON(w, http.StatusOK, products)
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), &req)
	if err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			writeDomainError(w, http.StatusBadRequest, err, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to create product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeDomainError(w, http.StatusNotFound, err, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeDomainError(w, http.StatusNotFound, err, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to delete product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}

// productID extracts and parses the product ID from /api/products/{id}.
func (h *ProductHandler) productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if idStr == "" || strings.Contains(idStr, "/") {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "product ID is required", h.logger)
		return 0, false
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "invalid product ID", h.logger)
		return 0, false
	}

	return id, true
}
