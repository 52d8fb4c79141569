package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application/mocks"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application/services"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/infrastructure/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func defaultCreateOrderCommand() services.CreateOrderCommand {
	return services.CreateOrderCommand{
		Amount:            1000,
		Currency:          "uah",
		OrderID:           "order-1",
		Description:       "Test payment",
		Email:             "buyer@example.com",
		PaymentSystems:    []string{"card", "googlepay"},
		Lifetime:          3600,
		ServerCallbackURL: "https://merchant.example.com/callback",
		Preauth:           true,
		Arguments:         map[string]string{"campaign": "spring"},
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := context.Background()
	orderGateway := mocks.NewMockOrderGateway(t)
	checkouts := mocks.NewCheckoutRepository()
	service := services.NewOrderService(orderGateway, checkouts, discardLogger())

	orderGateway.EXPECT().
		CreateOrderToken(mock.Anything, mock.MatchedBy(func(order *domain.Order) bool {
			params := order.Params()
			return params["currency"] == "UAH" &&
				params["payment_systems"] == "card,googlepay" &&
				params["preauth"] == "Y" &&
				params["lifetime"] == "3600" &&
				params["campaign"] == "spring"
		})).
		Return("tok-1", nil).
		Once()

	checkout, err := service.CreateOrder(ctx, defaultCreateOrderCommand())
	require.NoError(t, err)

	assert.Equal(t, "tok-1", checkout.Token)
	assert.Equal(t, "order-1", checkout.OrderID)
	assert.Equal(t, int64(1000), checkout.Amount)
	assert.Equal(t, domain.OrderStatusCreated, checkout.OrderStatus)

	stored, err := checkouts.FindByOrderID(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", stored.Token)
}

func TestOrderService_CreateOrder_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*services.CreateOrderCommand)
		field  string
	}{
		{"zero amount", func(c *services.CreateOrderCommand) { c.Amount = 0 }, "amount"},
		{"bad currency", func(c *services.CreateOrderCommand) { c.Currency = "US" }, "currency"},
		{"missing description", func(c *services.CreateOrderCommand) { c.Description = "" }, "order_desc"},
		{"bad email", func(c *services.CreateOrderCommand) { c.Email = "not-an-email" }, "sender_email"},
		{"negative lifetime", func(c *services.CreateOrderCommand) { c.Lifetime = -5 }, "lifetime"},
		{"relative callback", func(c *services.CreateOrderCommand) { c.ServerCallbackURL = "/callback" }, "server_callback_url"},
		{"comma in payment system", func(c *services.CreateOrderCommand) { c.PaymentSystems = []string{"card,bank"} }, "payment_systems"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderGateway := mocks.NewMockOrderGateway(t)
			service := services.NewOrderService(orderGateway, mocks.NewCheckoutRepository(), discardLogger())

			cmd := defaultCreateOrderCommand()
			tt.mutate(&cmd)

			_, err := service.CreateOrder(context.Background(), cmd)

			svcErr, ok := application.IsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, application.ErrCodeInvalidInput, svcErr.Code)
			field, ok := domain.ValidationField(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, field)
		})
	}
}

func TestOrderService_CreateOrder_GatewayRejects(t *testing.T) {
	orderGateway := mocks.NewMockOrderGateway(t)
	checkouts := mocks.NewCheckoutRepository()
	service := services.NewOrderService(orderGateway, checkouts, discardLogger())

	orderGateway.EXPECT().
		CreateOrderToken(mock.Anything, mock.Anything).
		Return("", &gateway.APIError{Code: "1011", Message: "Parameter `amount` is incorrect"}).
		Once()

	_, err := service.CreateOrder(context.Background(), defaultCreateOrderCommand())

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeGateway, svcErr.Code)
	_, err = checkouts.FindByOrderID(context.Background(), "order-1")
	assert.ErrorIs(t, err, domain.ErrCheckoutNotFound)
}

func TestOrderService_CreateOrder_StoreFails(t *testing.T) {
	orderGateway := mocks.NewMockOrderGateway(t)
	checkouts := mocks.NewCheckoutRepository()
	checkouts.CreateFn = func(context.Context, *domain.Checkout) error {
		return errors.New("connection refused")
	}
	service := services.NewOrderService(orderGateway, checkouts, discardLogger())

	orderGateway.EXPECT().
		CreateOrderToken(mock.Anything, mock.Anything).
		Return("tok-1", nil).
		Once()

	_, err := service.CreateOrder(context.Background(), defaultCreateOrderCommand())

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeInternal, svcErr.Code)
}
