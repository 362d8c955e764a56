package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the closed set of order states.
type OrderStatus string

const (
	StatusPlaced    OrderStatus = "placed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// statusTransitions defines which statuses may follow which.
// Delivered and cancelled are terminal.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusPlaced:    {StatusShipped, StatusCancelled},
	StatusShipped:   {StatusDelivered, StatusCancelled},
	StatusDelivered: {},
	StatusCancelled: {},
}

// ParseOrderStatus validates a status string against the known set.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := statusTransitions[status]; !ok {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ShippingInfo is the contact and address document captured at checkout.
type ShippingInfo struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
}

// OrderLine is one entry of the cart snapshot stored on an order. It is a
// value copy taken at checkout; later product or cart changes never affect it.
type OrderLine struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

// Order represents a completed checkout. Everything except Status is
// immutable once created.
type Order struct {
	ID            uuid.UUID    `json:"id" db:"id"`
	ShippingInfo  ShippingInfo `json:"shippingInfo" db:"shipping_info"`
	Cart          []OrderLine  `json:"cart" db:"cart"`
	TotalPrice    float64      `json:"totalPrice" db:"total_price"`
	PaymentMethod string       `json:"paymentMethod" db:"payment_method"`
	Status        OrderStatus  `json:"status" db:"status"`
	CreatedAt     time.Time    `json:"createdAt" db:"created_at"`
}

// OrderSummary is the reduced field set exposed on the customer order list.
type OrderSummary struct {
	ID           uuid.UUID    `json:"id"`
	TotalPrice   float64      `json:"totalPrice"`
	ShippingInfo ShippingInfo `json:"shippingInfo"`
	Status       OrderStatus  `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// OrderRequest represents the request payload for placing an order.
type OrderRequest struct {
	ShippingInfo  ShippingInfo `json:"shippingInfo"`
	Cart          []OrderLine  `json:"cart"`
	TotalPrice    float64      `json:"totalPrice"`
	PaymentMethod string       `json:"paymentMethod"`
}

// OrderCreatedResponse is returned after a successful checkout.
type OrderCreatedResponse struct {
	Message string    `json:"message"`
	OrderID uuid.UUID `json:"orderId"`
}

// StatusUpdateRequest represents the request payload for an order status
// change.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
