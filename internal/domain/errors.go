package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Field   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeOrderSubmitted    = "ORDER_SUBMITTED"
	ErrCodeInvalidTransition = "INVALID_TRANSITION"
	ErrCodeAttemptNotFound   = "ATTEMPT_NOT_FOUND"
	ErrCodeAttemptSettled    = "ATTEMPT_SETTLED"
	ErrCodeCheckoutNotFound  = "CHECKOUT_NOT_FOUND"
)

var (
	ErrWalletCancelled   = errors.New("payment cancelled by user")
	ErrWalletFailed      = errors.New("wallet payment failed")
	ErrAuthTimeout       = errors.New("authentication timed out")
	ErrAuthCancelled     = errors.New("cancelled by user")
	ErrAuthFailed        = errors.New("authentication failed")
	ErrAttemptNotFound   = errors.New("attempt not found")
	ErrAttemptSettled    = errors.New("attempt already settled")
	ErrCheckoutNotFound  = errors.New("checkout not found")
	ErrInvalidTransition = errors.New("invalid state transition")
)

func NewValidationError(field, reason string) *DomainError {
	return &DomainError{
		Code:    ErrCodeValidation,
		Field:   field,
		Message: fmt.Sprintf("invalid %s: %s", field, reason),
	}
}

func NewOrderSubmittedError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeOrderSubmitted,
		Field:   field,
		Message: fmt.Sprintf("cannot change %s: order already submitted", field),
	}
}

func NewInvalidTransitionError(from, to AttemptStatus) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidTransition,
		Message: fmt.Sprintf("cannot transition from %s to %s", from, to),
		Err:     ErrInvalidTransition,
	}
}

func NewAttemptNotFoundError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeAttemptNotFound,
		Message: fmt.Sprintf("attempt with ID %s not found", id),
		Err:     ErrAttemptNotFound,
	}
}

// NewAttemptSettledError reports a write to an attempt whose stored status is
// already terminal. The stored result stands.
func NewAttemptSettledError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeAttemptSettled,
		Message: fmt.Sprintf("attempt with ID %s is already settled", id),
		Err:     ErrAttemptSettled,
	}
}

func NewCheckoutNotFoundError(orderID string) *DomainError {
	return &DomainError{
		Code:    ErrCodeCheckoutNotFound,
		Message: fmt.Sprintf("checkout for order %s not found", orderID),
		Err:     ErrCheckoutNotFound,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// ValidationField returns the offending field of a validation error, if any.
func ValidationField(err error) (string, bool) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) && domainErr.Code == ErrCodeValidation {
		return domainErr.Field, true
	}
	return "", false
}
