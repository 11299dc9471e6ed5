package dto

import "net/http"

// Error code constants exposed by the API
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeValidation is used for invalid input data
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConcurrencyConflict is used when a conditional update lost a race
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
	// ErrCodeInsufficientStock is used when stock cannot cover a sale
	ErrCodeInsufficientStock = "ERR_INSUFFICIENT_STOCK"
	// ErrCodeConstraintViolation is used when a store invariant would break
	ErrCodeConstraintViolation = "ERR_CONSTRAINT_VIOLATION"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:            http.StatusInternalServerError,
	ErrCodeValidation:          http.StatusBadRequest,
	ErrCodeBadRequest:          http.StatusBadRequest,
	ErrCodeInvalidJSON:         http.StatusBadRequest,
	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,
	ErrCodeInsufficientStock:   http.StatusUnprocessableEntity,
	ErrCodeConstraintViolation: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code, falling back
// to 500 for unknown codes
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// domainErrorCodeMapping translates domain error codes to API error codes
var domainErrorCodeMapping = map[string]string{
	"NOT_FOUND":               ErrCodeNotFound,
	"ALREADY_EXISTS":          ErrCodeAlreadyExists,
	"VALIDATION_ERROR":        ErrCodeValidation,
	"CONCURRENT_MODIFICATION": ErrCodeConcurrencyConflict,
	"CONSTRAINT_VIOLATION":    ErrCodeConstraintViolation,
}

// MapDomainErrorCode converts a domain error code to the API format
func MapDomainErrorCode(code string) string {
	if apiCode, ok := domainErrorCodeMapping[code]; ok {
		return apiCode
	}
	return ErrCodeInternal
}
