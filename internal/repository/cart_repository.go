package repository

import (
	"context"
	"fmt"

	"compumart/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// cartRepository implements the CartRepository interface using PostgreSQL.
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

// Get retrieves the user's cart lines joined with current product attributes.
func (r *cartRepository) Get(ctx context.Context, userID string) ([]model.CartItem, error) {
	query := `
		SELECT c.product_id, p.name, p.price, p.image, p.brand, c.quantity
		FROM cart_items c
		INNER JOIN products p ON c.product_id = p.id
		WHERE c.user_id = $1
		ORDER BY c.product_id
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to query cart")
		return nil, fmt.Errorf("failed to query cart: %w", err)
	}
	defer rows.Close()

	var items []model.CartItem
	for rows.Next() {
		var item model.CartItem
		err := rows.Scan(&item.ProductID, &item.Name, &item.Price, &item.Image, &item.Brand, &item.Quantity)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cart row")
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cart rows")
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}

	return items, nil
}

// Add upserts a cart line. A single conditional statement keeps concurrent
// adds to the same (user, product) pair from losing updates.
func (r *cartRepository) Add(ctx context.Context, line model.CartLine) error {
	query := `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
	`

	_, err := r.pool.Exec(ctx, query, line.UserID, line.ProductID, line.Quantity)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("user_id", line.UserID).
			Int64("product_id", line.ProductID).
			Msg("failed to upsert cart line")
		return fmt.Errorf("failed to upsert cart line: %w", err)
	}

	r.logger.Debug().
		Str("user_id", line.UserID).
		Int64("product_id", line.ProductID).
		Int("quantity", line.Quantity).
		Msg("cart line upserted")

	return nil
}

// SetQuantity replaces the quantity of an existing line.
func (r *cartRepository) SetQuantity(ctx context.Context, userID string, productID int64, quantity int) (bool, error) {
	query := `
		UPDATE cart_items
		SET quantity = $3
		WHERE user_id = $1 AND product_id = $2
	`

	tag, err := r.pool.Exec(ctx, query, userID, productID, quantity)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("user_id", userID).
			Int64("product_id", productID).
			Msg("failed to update cart quantity")
		return false, fmt.Errorf("failed to update cart quantity: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Remove deletes a cart line.
func (r *cartRepository) Remove(ctx context.Context, userID string, productID int64) (bool, error) {
	query := `
		DELETE FROM cart_items
		WHERE user_id = $1 AND product_id = $2
	`

	tag, err := r.pool.Exec(ctx, query, userID, productID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("user_id", userID).
			Int64("product_id", productID).
			Msg("failed to delete cart line")
		return false, fmt.Errorf("failed to delete cart line: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
