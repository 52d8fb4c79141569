package domain_test

import (
	"strings"
	"testing"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("creates order with valid email", func(t *testing.T) {
		order, err := domain.NewOrder(100, "uah", "order-1", "Coffee", "buyer@example.com")

		require.NoError(t, err)
		assert.Equal(t, int64(100), order.Amount())
		assert.Equal(t, "UAH", order.Currency())
		assert.Equal(t, "order-1", order.OrderID())
		assert.Equal(t, "buyer@example.com", order.Email())
	})

	tests := []struct {
		name        string
		amount      int64
		currency    string
		orderID     string
		description string
		email       string
		field       string
	}{
		{"zero amount", 0, "USD", "order-1", "desc", "", "amount"},
		{"negative amount", -5, "USD", "order-1", "desc", "", "amount"},
		{"bad currency", 100, "US", "order-1", "desc", "", "currency"},
		{"empty order id", 100, "USD", "", "desc", "", "order_id"},
		{"order id too long", 100, "USD", strings.Repeat("x", 1025), "desc", "", "order_id"},
		{"empty description", 100, "USD", "order-1", "", "", "order_desc"},
		{"description too long", 100, "USD", "order-1", strings.Repeat("d", 1025), "", "order_desc"},
		{"invalid email", 100, "USD", "order-1", "desc", "not-an-email", "sender_email"},
	}

	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := domain.NewOrder(tt.amount, tt.currency, tt.orderID, tt.description, tt.email)

			require.Error(t, err)
			field, ok := domain.ValidationField(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, field)
		})
	}

	t.Run("accepts order id of exactly 1024 characters", func(t *testing.T) {
		_, err := domain.NewOrder(100, "USD", strings.Repeat("x", 1024), "desc", "")

		assert.NoError(t, err)
	})
}

func TestOrder_Mutators(t *testing.T) {
	t.Run("rejects merchant data over 2048 characters", func(t *testing.T) {
		order := createTestOrder(t)

		err := order.SetMerchantData(strings.Repeat("m", 2049))

		field, ok := domain.ValidationField(err)
		require.True(t, ok)
		assert.Equal(t, "merchant_data", field)
	})

	t.Run("rejects relative server callback URL", func(t *testing.T) {
		order := createTestOrder(t)

		err := order.SetServerCallbackURL("/callback")

		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeValidation))
	})

	t.Run("rejects non-positive lifetime", func(t *testing.T) {
		order := createTestOrder(t)

		assert.Error(t, order.SetLifetime(0))
	})

	t.Run("mutations fail after submission", func(t *testing.T) {
		order := createTestOrder(t)
		order.MarkSubmitted()

		err := order.SetProductID("sku-1")

		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeOrderSubmitted))
	})
}

func TestOrder_Params(t *testing.T) {
	order := createTestOrder(t)
	require.NoError(t, order.SetPreauth(true))
	require.NoError(t, order.SetLifetime(3600))
	require.NoError(t, order.SetPaymentSystems("card", "googlepay"))
	require.NoError(t, order.SetServerCallbackURL("https://merchant.example/callback"))
	require.NoError(t, order.SetArgument("amount", "ignored"))
	require.NoError(t, order.SetArgument("campaign", "spring"))

	params := order.Params()

	assert.Equal(t, "100", params["amount"])
	assert.Equal(t, "USD", params["currency"])
	assert.Equal(t, "Y", params["preauth"])
	assert.Equal(t, "3600", params["lifetime"])
	assert.Equal(t, "card,googlepay", params["payment_systems"])
	assert.Equal(t, "https://merchant.example/callback", params["server_callback_url"])
	assert.Equal(t, "spring", params["campaign"])
	assert.NotContains(t, params, "merchant_data")
	assert.NotContains(t, params, "verification")
}

func createTestOrder(t *testing.T) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder(100, "USD", "order-1", "Coffee", "")
	require.NoError(t, err)
	return order
}
