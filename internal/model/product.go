package model

import "time"

// Product represents an item in the store catalogue.
type Product struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Price     float64   `json:"price" db:"price"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Image     string    `json:"image" db:"image"`
	Brand     string    `json:"brand" db:"brand"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ProductRequest represents the request payload for creating a product.
type ProductRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
	Brand    string  `json:"brand"`
}
