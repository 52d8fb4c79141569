package gateway

import (
	"errors"
	"fmt"
)

const (
	CodeMalformedResponse    = "malformed_response"
	CodeWalletNotSupported   = "wallet_not_supported"
	CodeChallengeUnavailable = "challenge_unavailable"
	CodeUnknown              = "unknown"
)

// APIError is a failure reported by, or while talking to, the gateway.
type APIError struct {
	Code       string
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway error [%s]: %s (status: %d)", e.Code, e.Message, e.StatusCode)
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

func newMalformedError(statusCode int, detail string) *APIError {
	return &APIError{
		Code:       CodeMalformedResponse,
		Message:    "invalid API response format: " + detail,
		StatusCode: statusCode,
	}
}
