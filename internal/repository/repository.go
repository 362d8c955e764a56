package repository

import (
	"context"

	"compumart/internal/model"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for catalogue data access.
type ProductRepository interface {
	// GetAll retrieves all products.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when the
	// product does not exist.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create inserts a new product and returns it with the generated ID.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// Delete removes a product. Returns false when no row was affected.
	Delete(ctx context.Context, id int64) (bool, error)

	// Exists reports whether a product with the given ID exists.
	Exists(ctx context.Context, id int64) (bool, error)
}

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	// Get retrieves the user's cart lines joined with current product
	// attributes. Returns an empty slice when the cart is empty.
	Get(ctx context.Context, userID string) ([]model.CartItem, error)

	// Add upserts a cart line: inserts it, or increments the existing
	// line's quantity by line.Quantity. The upsert is a single statement,
	// atomic with respect to concurrent adds to the same (user, product).
	Add(ctx context.Context, line model.CartLine) error

	// SetQuantity replaces the quantity of an existing line. Returns false
	// when no such line exists; it never creates one.
	SetQuantity(ctx context.Context, userID string, productID int64, quantity int) (bool, error)

	// Remove deletes a cart line. Returns false when no row was affected.
	Remove(ctx context.Context, userID string, productID int64) (bool, error)
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// Create persists a new order with its serialized shipping info and
	// cart snapshot.
	Create(ctx context.Context, order *model.Order) error

	// GetAll retrieves all orders with snapshots deserialized.
	GetAll(ctx context.Context) ([]model.Order, error)

	// GetSummaries retrieves the reduced customer view of all orders.
	GetSummaries(ctx context.Context) ([]model.OrderSummary, error)

	// GetStatus retrieves the current status of an order. Returns false
	// when the order does not exist.
	GetStatus(ctx context.Context, id uuid.UUID) (model.OrderStatus, bool, error)

	// UpdateStatus sets the status column only. Returns false when no row
	// was affected.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (bool, error)

	// Delete removes an order permanently. Returns false when no row was
	// affected.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
