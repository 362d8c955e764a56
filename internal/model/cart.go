package model

// CartLine represents a persisted cart row keyed by (user, product).
// At most one line exists per pair; adds accumulate into Quantity.
type CartLine struct {
	UserID    string `json:"userId" db:"user_id"`
	ProductID int64  `json:"productId" db:"product_id"`
	Quantity  int    `json:"quantity" db:"quantity"`
}

// CartItem is a cart line joined with the current product attributes,
// as returned to clients.
type CartItem struct {
	ProductID int64   `json:"productId" db:"product_id"`
	Name      string  `json:"name" db:"name"`
	Price     float64 `json:"price" db:"price"`
	Image     string  `json:"image" db:"image"`
	Brand     string  `json:"brand" db:"brand"`
	Quantity  int     `json:"quantity" db:"quantity"`
}

// CartRequest represents the request payload for adding to or updating
// the cart.
type CartRequest struct {
	UserID    string `json:"userId"`
	ProductID int64  `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartRemoveRequest represents the request payload for removing a line
// from the cart.
type CartRemoveRequest struct {
	UserID    string `json:"userId"`
	ProductID int64  `json:"productId"`
}
