package testhelpers

import (
	"context"
	"testing"
	"time"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// CreateAttempt stores a PENDING attempt for token whose last update lies
// age in the past.
func CreateAttempt(
	t *testing.T,
	ctx context.Context,
	repo application.AttemptRepository,
	token string,
	age time.Duration,
) *domain.Attempt {
	attempt, err := domain.NewAttempt(uuid.New().String(), token)
	require.NoError(t, err)

	attempt.PaymentSystem = "card"
	attempt.CreatedAt = time.Now().Add(-age).UTC().Truncate(time.Microsecond)
	attempt.UpdatedAt = attempt.CreatedAt

	require.NoError(t, repo.Create(ctx, attempt))
	return attempt
}

// CreateCheckout stores a checkout for a fresh order id.
func CreateCheckout(
	t *testing.T,
	ctx context.Context,
	repo application.CheckoutRepository,
	token string,
) *domain.Checkout {
	order, err := domain.NewOrder(1000, "UAH", "order-"+uuid.New().String(), "Test payment", "")
	require.NoError(t, err)

	checkout, err := domain.NewCheckout(token, order)
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, checkout))
	return checkout
}

// ApprovedReceipt is a receipt as the gateway reports a settled order.
func ApprovedReceipt() *domain.Receipt {
	return &domain.Receipt{
		MaskedCard:      "444455XXXXXX1111",
		CardBin:         "444455",
		Amount:          1000,
		PaymentID:       42,
		Currency:        "UAH",
		OrderStatus:     domain.OrderStatusApproved,
		TransactionType: "purchase",
		RRN:             "111111111111",
		ApprovalCode:    "123456",
		ResponseCode:    "",
		PaymentSystem:   "card",
	}
}
