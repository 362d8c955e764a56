package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"compumart/internal/model"
	"compumart/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderHandler handles order HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/admin/orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	order, err := h.service.Place(r.Context(), &req)
	if err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			writeDomainError(w, http.StatusBadRequest, err, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to place order", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, model.OrderCreatedResponse{
		Message: "Order placed successfully",
		OrderID: order.ID,
	})
}

// ListAdmin handles GET /api/admin/orders requests.
func (h *OrderHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListAdmin(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve orders", h.logger)
		return
	}

	if orders == nil {
		orders = []model.Order{}
	}

	writeJSON(w, http.StatusOK, orders)
}

// ListCustomer handles GET /api/orders requests with the reduced field set.
func (h *OrderHandler) ListCustomer(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.ListCustomer(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve orders", h.logger)
		return
	}

	if summaries == nil {
		summaries = []model.OrderSummary{}
	}

	writeJSON(w, http.StatusOK, summaries)
}

// UpdateStatus handles PUT /api/admin/orders/{id}/status requests.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var req model.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidStatus):
			writeDomainError(w, http.StatusBadRequest, err, h.logger)
		case errors.Is(err, model.ErrOrderNotFound):
			writeDomainError(w, http.StatusNotFound, err, h.logger)
		case errors.Is(err, model.ErrInvalidTransition):
			writeDomainError(w, http.StatusConflict, err, h.logger)
		default:
			writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to update order status", h.logger)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Order status updated"})
}

// Delete handles DELETE /api/admin/orders/{id} requests.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			writeDomainError(w, http.StatusNotFound, err, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to delete order", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Order deleted"})
}

// orderID extracts and parses the order ID from /api/admin/orders/{id}[/status].
func (h *OrderHandler) orderID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/admin/orders/")
	idStr = strings.TrimSuffix(idStr, "/status")

	if idStr == "" || strings.Contains(idStr, "/") {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "order ID is required", h.logger)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "invalid order ID format", h.logger)
		return uuid.Nil, false
	}

	return id, true
}
