package service

import (
	"context"

	"compumart/internal/model"

	"github.com/google/uuid"
)

// ProductService defines operations for catalogue management.
type ProductService interface {
	// GetAll retrieves all products.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create adds a new product to the catalogue.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// Delete removes a product from the catalogue.
	Delete(ctx context.Context, id int64) error
}

// CartService defines operations for per-user cart management.
type CartService interface {
	// Get retrieves the user's cart lines with current product attributes.
	Get(ctx context.Context, userID string) ([]model.CartItem, error)

	// Add adds a quantity of a product to the user's cart; adds to the
	// same (user, product) pair accumulate into one line.
	Add(ctx context.Context, req *model.CartRequest) error

	// SetQuantity replaces the quantity of an existing cart line.
	SetQuantity(ctx context.Context, req *model.CartRequest) error

	// Remove deletes a line from the user's cart.
	Remove(ctx context.Context, userID string, productID int64) error
}

// OrderService defines operations for order management.
type OrderService interface {
	// Place persists a new order from a checkout snapshot and returns it.
	Place(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// ListAdmin retrieves all orders with every field.
	ListAdmin(ctx context.Context) ([]model.Order, error)

	// ListCustomer retrieves the reduced customer view of all orders.
	ListCustomer(ctx context.Context) ([]model.OrderSummary, error)

	// UpdateStatus transitions an order to a new status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	// Delete removes an order permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
