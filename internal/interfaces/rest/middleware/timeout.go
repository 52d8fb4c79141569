package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/api"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application"
)

// Timeout bounds a request. Payment calls return as soon as the payment has
// started, so no handler is expected to come close to the limit.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	body, _ := json.Marshal(api.ErrorResponse{
		Error: api.ErrorDetail{Code: application.ErrCodeTimeout, Message: "Request timeout"},
	})

	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, string(body))
	}
}
