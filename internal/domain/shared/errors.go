package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is matches domain errors by code, so an error built with
// NewValidationError compares equal to ErrValidation under errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
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
	ErrNotFound      = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrValidation    = NewDomainError("VALIDATION_ERROR", "Invalid input provided")

	// ErrConcurrentModification signals a write-write conflict detected by a
	// conditional update. The operation must be retried from the start, never
	// resumed mid-way.
	ErrConcurrentModification = NewDomainError("CONCURRENT_MODIFICATION", "Resource was modified by another transaction")

	// ErrConstraintViolation signals that a store-level invariant (such as a
	// remaining quantity going negative) was about to be broken. Treated as an
	// integrity fault, not a user error.
	ErrConstraintViolation = NewDomainError("CONSTRAINT_VIOLATION", "Store invariant would be violated")
)

// NewValidationError creates a validation error with a specific message
func NewValidationError(message string) *DomainError {
	return NewDomainError("VALIDATION_ERROR", message)
}

// InsufficientStockError is returned when an allocation requests more quantity
// than the batches of a product can supply. It is an expected business
// condition, surfaced verbatim to the caller.
type InsufficientStockError struct {
	Product   string
	Available int64
	Requested int64
}

// Error implements the error interface
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: available %d, requested %d", e.Product, e.Available, e.Requested)
}

// NewInsufficientStockError creates an insufficient stock error
func NewInsufficientStockError(product string, available, requested int64) *InsufficientStockError {
	return &InsufficientStockError{
		Product:   product,
		Available: available,
		Requested: requested,
	}
}
