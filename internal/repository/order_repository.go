package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"compumart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
// Shipping info and the cart snapshot are persisted as JSONB documents; the
// snapshot is a value copy, never a reference to live cart or product rows.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// Create persists a new order with its serialized shipping info and cart snapshot.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	shippingJSON, err := json.Marshal(order.ShippingInfo)
	if err != nil {
		return fmt.Errorf("failed to serialize shipping info: %w", err)
	}

	cartJSON, err := json.Marshal(order.Cart)
	if err != nil {
		return fmt.Errorf("failed to serialize cart snapshot: %w", err)
	}

	query := `
		INSERT INTO orders (id, shipping_info, cart, total_price, payment_method, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.pool.Exec(ctx, query,
		order.ID, shippingJSON, cartJSON,
		order.TotalPrice, order.PaymentMethod, order.Status, order.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Msg("order created successfully")

	return nil
}

// GetAll retrieves all orders with snapshots deserialized.
func (r *orderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	query := `
		SELECT id, shipping_info, cart, total_price, payment_method, status, created_at
		FROM orders
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, err
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

// GetSummaries retrieves the reduced customer view of all orders.
func (r *orderRepository) GetSummaries(ctx context.Context) ([]model.OrderSummary, error) {
	query := `
		SELECT id, shipping_info, total_price, status, created_at
		FROM orders
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query order summaries")
		return nil, fmt.Errorf("failed to query order summaries: %w", err)
	}
	defer rows.Close()

	var summaries []model.OrderSummary
	for rows.Next() {
		var s model.OrderSummary
		var shippingJSON []byte
		err := rows.Scan(&s.ID, &shippingJSON, &s.TotalPrice, &s.Status, &s.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order summary row")
			return nil, fmt.Errorf("failed to scan order summary: %w", err)
		}
		if err := json.Unmarshal(shippingJSON, &s.ShippingInfo); err != nil {
			return nil, fmt.Errorf("failed to deserialize shipping info: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order summary rows")
		return nil, fmt.Errorf("error iterating order summaries: %w", err)
	}

	return summaries, nil
}

// GetStatus retrieves the current status of an order.
func (r *orderRepository) GetStatus(ctx context.Context, id uuid.UUID) (model.OrderStatus, bool, error) {
	var status model.OrderStatus
	err := r.pool.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return "", false, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order status")
		return "", false, fmt.Errorf("failed to query order status: %w", err)
	}

	return status, true, nil
}

// UpdateStatus sets the status column only; all other order fields are
// immutable after creation.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", id.String()).
			Str("status", string(status)).
			Msg("failed to update order status")
		return false, fmt.Errorf("failed to update order status: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes an order permanently.
func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to delete order")
		return false, fmt.Errorf("failed to delete order: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// scanOrder scans a full order row and deserializes its JSONB documents.
func scanOrder(rows pgx.Rows) (*model.Order, error) {
	var order model.Order
	var shippingJSON, cartJSON []byte

	err := rows.Scan(
		&order.ID,
		&shippingJSON,
		&cartJSON,
		&order.TotalPrice,
		&order.PaymentMethod,
		&order.Status,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan order: %w", err)
	}

	if err := json.Unmarshal(shippingJSON, &order.ShippingInfo); err != nil {
		return nil, fmt.Errorf("failed to deserialize shipping info: %w", err)
	}
	if err := json.Unmarshal(cartJSON, &order.Cart); err != nil {
		return nil, fmt.Errorf("failed to deserialize cart snapshot: %w", err)
	}

	return &order, nil
}
