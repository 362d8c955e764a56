package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Schema is the DDL for all tables. Idempotent so it can run on every start.
//
// The composite primary key on cart_items backs the single-statement upsert
// in the cart repository: at most one line per (user, product) pair.
// Orders keep shipping_info and the cart snapshot as JSONB documents; only
// the status column changes after insert.
const Schema = `
	CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		price DECIMAL(10,2) NOT NULL CHECK (price >= 0),
		quantity INTEGER NOT NULL DEFAULT 0,
		image TEXT NOT NULL DEFAULT '',
		brand TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS cart_items (
		user_id TEXT NOT NULL,
		product_id BIGINT NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity >= 1),
		PRIMARY KEY (user_id, product_id)
	);

	CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		shipping_info JSONB NOT NULL,
		cart JSONB NOT NULL,
		total_price DECIMAL(10,2) NOT NULL,
		payment_method TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_cart_items_user_id ON cart_items(user_id);
	CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);
`

// EnsureSchema creates the tables and indexes if they do not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to sync database schema: %w", err)
	}

	logger.Info().Msg("database schema synced")

	return nil
}
