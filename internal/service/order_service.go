package service

import (
	"context"
	"fmt"
	"time"

	"compumart/internal/model"
	"compumart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Place persists a new order from a checkout snapshot. The snapshot and
// shipping info are frozen at this point; only the status may change later.
func (s *orderService) Place(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	if err := s.validateOrderRequest(req); err != nil {
		return nil, err
	}

	order := &model.Order{
		ID:            uuid.New(),
		ShippingInfo:  req.ShippingInfo,
		Cart:          req.Cart,
		TotalPrice:    req.TotalPrice,
		PaymentMethod: req.PaymentMethod,
		Status:        model.StatusPlaced,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to place order")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int("line_count", len(order.Cart)).
		Float64("total_price", order.TotalPrice).
		Msg("order placed")

	return order, nil
}

// ListAdmin retrieves all orders with every field.
func (s *orderService) ListAdmin(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	s.logger.Debug().Int("count", len(orders)).Msg("retrieved orders")

	return orders, nil
}

// ListCustomer retrieves the reduced customer view of all orders.
func (s *orderService) ListCustomer(ctx context.Context) ([]model.OrderSummary, error) {
	summaries, err := s.orderRepo.GetSummaries(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list order summaries")
		return nil, fmt.Errorf("failed to list order summaries: %w", err)
	}

	s.logger.Debug().Int("count", len(summaries)).Msg("retrieved order summaries")

	return summaries, nil
}

// UpdateStatus transitions an order to a new status. The status must belong
// to the known set and be reachable from the order's current status.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	newStatus, err := model.ParseOrderStatus(status)
	if err != nil {
		s.logger.Warn().Str("status", status).Msg("unknown order status")
		return err
	}

	current, found, err := s.orderRepo.GetStatus(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to read order status")
		return fmt.Errorf("failed to read order status: %w", err)
	}
	if !found {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return model.ErrOrderNotFound
	}

	if !model.CanTransition(current, newStatus) {
		s.logger.Warn().
			Str("order_id", id.String()).
			Str("from", string(current)).
			Str("to", string(newStatus)).
			Msg("order status transition not allowed")
		return model.ErrInvalidTransition
	}

	updated, err := s.orderRepo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if !updated {
		return model.ErrOrderNotFound
	}

	s.logger.Info().
		Str("order_id", id.String()).
		Str("from", string(current)).
		Str("to", string(newStatus)).
		Msg("order status updated")

	return nil
}

// Delete removes an order permanently.
func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.orderRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to delete order")
		return fmt.Errorf("failed to delete order: %w", err)
	}

	if !deleted {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return model.ErrOrderNotFound
	}

	s.logger.Info().Str("order_id", id.String()).Msg("order deleted")

	return nil
}

// validateOrderRequest validates the checkout payload.
func (s *orderService) validateOrderRequest(req *model.OrderRequest) error {
	if req == nil || len(req.Cart) == 0 {
		return model.NewDomainError(model.ErrCodeMissingField, "order must contain at least one cart line")
	}

	for i, line := range req.Cart {
		if line.ProductID <= 0 {
			return model.NewDomainError(model.ErrCodeMissingField, fmt.Sprintf("cart line %d: product ID is required", i))
		}
		if line.Quantity <= 0 {
			s.logger.Warn().
				Int("line_index", i).
				Int64("product_id", line.ProductID).
				Int("quantity", line.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}
	}

	if req.TotalPrice < 0 {
		return model.NewDomainError(model.ErrCodeMissingField, "total price must not be negative")
	}

	return nil
}
