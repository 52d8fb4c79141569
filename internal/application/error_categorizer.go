package application

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/infrastructure/gateway"
)

// ErrorCategory represents the nature of an error for retry logic
type ErrorCategory string

const (
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryPermanent      ErrorCategory = "PERMANENT"
	CategoryBusinessRule   ErrorCategory = "BUSINESS_RULE"
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines error category for retry and logging purposes
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	// The cardholder walked away or the issuer said no.
	if errors.Is(err, domain.ErrWalletCancelled) ||
		errors.Is(err, domain.ErrAuthCancelled) ||
		errors.Is(err, domain.ErrAuthFailed) ||
		errors.Is(err, domain.ErrWalletFailed) {
		return CategoryPermanent
	}

	if errors.Is(err, domain.ErrAuthTimeout) {
		return CategoryTransient
	}

	if errors.Is(err, domain.ErrInvalidTransition) ||
		errors.Is(err, domain.ErrAttemptSettled) ||
		domain.IsErrorCode(err, domain.ErrCodeOrderSubmitted) {
		return CategoryBusinessRule
	}

	if errors.Is(err, domain.ErrAttemptNotFound) ||
		errors.Is(err, domain.ErrCheckoutNotFound) ||
		domain.IsErrorCode(err, domain.ErrCodeValidation) {
		return CategoryClientError
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeInvalidInput, ErrCodeInvalidSignature, ErrCodeNotFound, ErrCodeNoPendingAction:
			return CategoryClientError
		case ErrCodeInvalidState, ErrCodePaymentInProgress:
			return CategoryBusinessRule
		case ErrCodeInternal:
			return CategoryInfrastructure
		case ErrCodeTimeout:
			return CategoryTransient
		}
	}

	if apiErr, ok := gateway.IsAPIError(err); ok {
		if apiErr.StatusCode >= 500 {
			return CategoryTransient
		}

		switch apiErr.Code {
		case gateway.CodeMalformedResponse:
			return CategoryInfrastructure
		case gateway.CodeChallengeUnavailable:
			return CategoryTransient
		default:
			return CategoryPermanent
		}
	}

	// Default: Transient (safe fallback)
	return CategoryTransient
}

// IsRetryable returns true if the error category suggests retry
func IsRetryable(err error) bool {
	category := CategorizeError(err)
	return category == CategoryTransient || category == CategoryInfrastructure
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	switch {
	case domain.IsErrorCode(err, domain.ErrCodeValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrAttemptSettled),
		domain.IsErrorCode(err, domain.ErrCodeOrderSubmitted):
		return http.StatusConflict
	case errors.Is(err, domain.ErrAttemptNotFound),
		errors.Is(err, domain.ErrCheckoutNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}

	if _, ok := gateway.IsAPIError(err); ok {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	if apiErr, ok := gateway.IsAPIError(err); ok {
		return "GATEWAY_" + strings.ToUpper(apiErr.Code)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrCodeTimeout
	}

	return ErrCodeInternal
}
