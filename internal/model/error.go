package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeMissingUserID     = "MISSING_USER_ID"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeCartEmpty         = "CART_EMPTY"
	ErrCodeCartItemNotFound  = "CART_ITEM_NOT_FOUND"
	ErrCodeOrderNotFound     = "ORDER_NOT_FOUND"
	ErrCodeInvalidStatus     = "INVALID_STATUS"
	ErrCodeInvalidTransition = "INVALID_STATUS_TRANSITION"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError is a business-rule error carrying an API error code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrMissingUserID     = NewDomainError(ErrCodeMissingUserID, "User ID is required")
	ErrInvalidQuantity   = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrProductNotFound   = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrCartEmpty         = NewDomainError(ErrCodeCartEmpty, "No products found in cart")
	ErrCartItemNotFound  = NewDomainError(ErrCodeCartItemNotFound, "Product not found in cart")
	ErrOrderNotFound     = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidStatus     = NewDomainError(ErrCodeInvalidStatus, "Unknown order status")
	ErrInvalidTransition = NewDomainError(ErrCodeInvalidTransition, "Order status transition not allowed")
)
