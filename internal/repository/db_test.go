package repository

import (
	"context"
	"testing"
	"time"

	"compumart/internal/database"
	"compumart/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer and returns a connection pool.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	ctx := context.Background()

	// Start PostgreSQL container
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	// Get connection string
	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Create connection pool
	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	// Create schema
	err = database.EnsureSchema(ctx, pool, zerolog.Nop())
	require.NoError(t, err)

	// Cleanup function
	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

// seedProducts inserts test products and returns their generated IDs in
// insertion order.
func seedProducts(t *testing.T, pool *pgxpool.Pool, products []model.ProductRequest) []int64 {
	ctx := context.Background()

	query := `
		INSERT INTO products (name, price, quantity, image, brand)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	ids := make([]int64, 0, len(products))
	for _, p := range products {
		var id int64
		err := pool.QueryRow(ctx, query, p.Name, p.Price, p.Quantity, p.Image, p.Brand).Scan(&id)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	return ids
}
