package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
)

// OrderService registers merchant orders with the gateway and keeps the
// issued checkout token so server callbacks can be matched later.
type OrderService struct {
	gateway   application.OrderGateway
	checkouts application.CheckoutRepository
	logger    *slog.Logger
}

func NewOrderService(
	gw application.OrderGateway,
	checkouts application.CheckoutRepository,
	logger *slog.Logger,
) *OrderService {
	return &OrderService{
		gateway:   gw,
		checkouts: checkouts,
		logger:    logger,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*domain.Checkout, error) {
	order, err := buildOrder(cmd)
	if err != nil {
		return nil, application.NewInvalidInputError(err)
	}

	token, err := s.gateway.CreateOrderToken(ctx, order)
	if err != nil {
		if domain.IsErrorCode(err, domain.ErrCodeOrderSubmitted) {
			return nil, application.NewInvalidStateError(err)
		}
		return nil, application.NewGatewayError(err)
	}

	checkout, err := domain.NewCheckout(token, order)
	if err != nil {
		return nil, application.NewInternalError(err)
	}

	if err := s.checkouts.Create(ctx, checkout); err != nil {
		s.logger.Error("failed to store checkout", "order_id", order.OrderID(), "error", err)
		return nil, application.NewInternalError(err)
	}

	s.logger.Info("checkout created", "order_id", order.OrderID(), "token", token)
	return checkout, nil
}

func buildOrder(cmd CreateOrderCommand) (*domain.Order, error) {
	order, err := domain.NewOrder(cmd.Amount, cmd.Currency, cmd.OrderID, cmd.Description, cmd.Email)
	if err != nil {
		return nil, err
	}

	var setters []func() error
	if cmd.ProductID != "" {
		setters = append(setters, func() error { return order.SetProductID(cmd.ProductID) })
	}
	if len(cmd.PaymentSystems) > 0 {
		setters = append(setters, func() error { return order.SetPaymentSystems(cmd.PaymentSystems...) })
	}
	if cmd.Lifetime != 0 {
		setters = append(setters, func() error { return order.SetLifetime(cmd.Lifetime) })
	}
	if cmd.MerchantData != "" {
		setters = append(setters, func() error { return order.SetMerchantData(cmd.MerchantData) })
	}
	if cmd.Language != "" {
		setters = append(setters, func() error { return order.SetLanguage(cmd.Language) })
	}
	if cmd.ServerCallbackURL != "" {
		setters = append(setters, func() error { return order.SetServerCallbackURL(cmd.ServerCallbackURL) })
	}
	if cmd.ReservationData != "" {
		setters = append(setters, func() error { return order.SetReservationData(cmd.ReservationData) })
	}
	setters = append(setters,
		func() error { return order.SetPreauth(cmd.Preauth) },
		func() error { return order.SetRequiredRecToken(cmd.RequiredRecToken) },
		func() error { return order.SetVerification(cmd.Verification) },
	)
	for k, v := range cmd.Arguments {
		setters = append(setters, func() error { return order.SetArgument(k, v) })
	}

	for _, set := range setters {
		if err := set(); err != nil {
			return nil, err
		}
	}
	return order, nil
}
