package model

// Standard error codes surfaced to the presentation layer.
const (
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeEmptyCart       = "EMPTY_CART"
	ErrCodeInvalidQuantity = "INVALID_QUANTITY"
	ErrCodePersistence     = "PERSISTENCE_ERROR"
	ErrCodeCartNotCleared  = "CART_NOT_CLEARED"
)

// DomainError is a business-logic failure with a stable code for
// user-facing messaging.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found in catalogue")
	ErrEmptyCart       = NewDomainError(ErrCodeEmptyCart, "Cannot place an order with an empty cart")
	ErrInvalidQuantity = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrCartNotCleared  = NewDomainError(ErrCodeCartNotCleared, "Order was placed but the cart could not be cleared")
)
