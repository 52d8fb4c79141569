package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/config"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
)

// PaymentAPI is the part of the gateway the payment flow talks to.
type PaymentAPI interface {
	FetchConfig(ctx context.Context, token string) (*domain.GatewayConfig, error)
	SubmitPayment(ctx context.Context, call domain.GatewayCall, paymentData json.RawMessage, email string) (*domain.Submission, error)
	GetOrder(ctx context.Context, token string) (*domain.Receipt, error)
}

// RetryClient retries order lookups, which are read-only. Config fetches and
// submissions go through exactly once.
type RetryClient struct {
	inner      PaymentAPI
	baseDelay  time.Duration
	maxRetries int
}

func NewRetryClient(inner PaymentAPI, cfg config.RetryConfig) *RetryClient {
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &RetryClient{
		inner:      inner,
		baseDelay:  cfg.BaseDelay,
		maxRetries: maxRetries,
	}
}

func (r *RetryClient) FetchConfig(ctx context.Context, token string) (*domain.GatewayConfig, error) {
	return r.inner.FetchConfig(ctx, token)
}

func (r *RetryClient) SubmitPayment(ctx context.Context, call domain.GatewayCall, paymentData json.RawMessage, email string) (*domain.Submission, error) {
	return r.inner.SubmitPayment(ctx, call, paymentData, email)
}

func (r *RetryClient) GetOrder(ctx context.Context, token string) (*domain.Receipt, error) {
	return retry(r, ctx, func(ctx context.Context) (*domain.Receipt, error) {
		return r.inner.GetOrder(ctx, token)
	})
}

func retry[T any](r *RetryClient, ctx context.Context, operation func(ctx context.Context) (*T, error)) (*T, error) {
	var lastErr error

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := operation(ctx)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !isRetryable(err) {
			return nil, err
		}
		if attempt == r.maxRetries-1 {
			break
		}

		timer := time.NewTimer(r.backoff(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return nil, fmt.Errorf("maximum retries exceeded: %w", lastErr)
}

// isRetryable treats gateway 5xx answers and transport failures as
// transient. Anything the gateway rejected outright is not retried.
func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	if apiErr, ok := IsAPIError(err); ok {
		return apiErr.StatusCode >= 500
	}
	return true
}

// backoff doubles the base delay per attempt and adds up to 10% jitter.
func (r *RetryClient) backoff(attempt int) time.Duration {
	base := r.baseDelay * time.Duration(1<<attempt)
	if base <= 0 {
		return 0
	}
	return base + rand.N(base/10+1)
}
