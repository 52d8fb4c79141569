package application

import (
	"errors"
	"fmt"
	"net/http"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInvalidInput      = "INVALID_INPUT"
	ErrCodeInvalidState      = "INVALID_STATE"
	ErrCodeInvalidSignature  = "INVALID_SIGNATURE"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodePaymentInProgress = "PAYMENT_IN_PROGRESS"
	ErrCodeNoPendingAction   = "NO_PENDING_ACTION"
	ErrCodeGateway           = "GATEWAY_ERROR"
	ErrCodeTimeout           = "TIMEOUT"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

func NewInvalidInputError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidInput,
		Message:    "Invalid input",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewInvalidStateError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidState,
		Message:    "Invalid state",
		HTTPStatus: http.StatusConflict,
		Err:        err,
	}
}

func NewInvalidSignatureError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidSignature,
		Message:    "Callback signature does not match",
		HTTPStatus: http.StatusUnauthorized,
	}
}

func NewNotFoundError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeNotFound,
		Message:    "Resource not found",
		HTTPStatus: http.StatusNotFound,
		Err:        err,
	}
}

func NewPaymentInProgressError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodePaymentInProgress,
		Message:    "A payment is already in progress",
		HTTPStatus: http.StatusConflict,
	}
}

func NewNoPendingActionError(action string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeNoPendingAction,
		Message:    fmt.Sprintf("Payment is not waiting for %s", action),
		HTTPStatus: http.StatusConflict,
	}
}

func NewGatewayError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeGateway,
		Message:    "Payment gateway request failed",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

func NewTimeoutError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeTimeout,
		Message:    "Request timed out waiting for completion",
		HTTPStatus: http.StatusRequestTimeout,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
