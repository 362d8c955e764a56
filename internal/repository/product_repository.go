package repository

import (
	"context"
	"fmt"

	"compumart/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// GetAll retrieves all products.
func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT id, name, price, quantity, image, brand, created_at
		FROM products
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity, &p.Image, &p.Brand, &p.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `
		SELECT id, name, price, quantity, image, brand, created_at
		FROM products
		WHERE id = $1
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.Price, &p.Quantity, &p.Image, &p.Brand, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// Create inserts a new product and returns it with the generated ID.
func (r *productRepository) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	query := `
		INSERT INTO products (name, price, quantity, image, brand)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, price, quantity, image, brand, created_at
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, req.Name, req.Price, req.Quantity, req.Image, req.Brand).
		Scan(&p.ID, &p.Name, &p.Price, &p.Quantity, &p.Image, &p.Brand, &p.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("name", req.Name).Msg("failed to insert product")
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	r.logger.Debug().Int64("product_id", p.ID).Msg("product created")

	return &p, nil
}

// Delete removes a product. Returns false when no row was affected.
func (r *productRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return false, fmt.Errorf("failed to delete product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Exists reports whether a product with the given ID exists.
func (r *productRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to check product existence")
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}

	return exists, nil
}
