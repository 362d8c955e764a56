package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"compumart/internal/model"
	"compumart/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// Get handles GET /api/cart?userId= requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	items, err := h.service.Get(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrMissingUserID):
			writeDomainError(w, http.StatusBadRequest, err, h.logger)
		case errors.Is(err, model.ErrCartEmpty):
			writeDomainError(w, http.StatusNotFound, err, h.logger)
		default:
			writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve cart", h.logger)
		}
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Add handles POST /api/cart requests.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req model.CartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.service.Add(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, model.ErrMissingUserID),
			errors.Is(err, model.ErrInvalidQuantity),
			errors.Is(err, model.ErrProductNotFound):
			writeDomainError(w, http.StatusBadRequest, err, h.logger)
		default:
			writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to add product to cart", h.logger)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Product added to cart"})
}

// Update handles PUT /api/cart requests.
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.CartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.service.SetQuantity(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, model.ErrMissingUserID), errors.Is(err, model.ErrInvalidQuantity):
			writeDomainError(w, http.StatusBadRequest, err, h.logger)
		case errors.Is(err, model.ErrCartItemNotFound):
			writeDomainError(w, http.StatusNotFound, err, h.logger)
		default:
			writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to update product quantity", h.logger)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Product quantity updated"})
}

// Remove handles DELETE /api/cart requests.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req model.CartRemoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.service.Remove(r.Context(), req.UserID, req.ProductID); err != nil {
		switch {
		case errors.Is(err, model.ErrMissingUserID):
			writeDomainError(w, http.StatusBadRequest, err, h.logger)
		case errors.Is(err, model.ErrCartItemNotFound):
			writeDomainError(w, http.StatusNotFound, err, h.logger)
		default:
			writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to remove product from cart", h.logger)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Product removed from cart"})
}
