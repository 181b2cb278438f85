package model

import (
	"errors"
	"fmt"
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// ErrNotFound matches every NotFoundError through errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError reports that no row with ID exists in Table.
type NotFoundError struct {
	Table string
	ID    int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item with id %d not found in table %s", e.ID, e.Table)
}

// Is makes errors.Is(err, ErrNotFound) hold for any NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// UnknownTableError reports a lookup against a table the catalog does not hold.
// It is always a programming error.
type UnknownTableError struct {
	Table string
}

func (e *UnknownTableError) Error() string {
	return fmt.Sprintf("table %s does not exist in the catalog", e.Table)
}

// EnrichmentError wraps any failure raised while resolving a product's
// categories, payment methods or rating summary.
type EnrichmentError struct {
	ProductID int
	Err       error
}

func (e *EnrichmentError) Error() string {
	return fmt.Sprintf("error enriching product %d: %v", e.ProductID, e.Err)
}

func (e *EnrichmentError) Unwrap() error {
	return e.Err
}

// Domain errors for business logic
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
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredentials, "Incorrect username or password")
	ErrUnauthorised       = NewDomainError(ErrCodeUnauthorised, "Could not validate credentials")
)
