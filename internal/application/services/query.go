package services

import (
	"context"
	"errors"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
)

type QueryService struct {
	attempts  application.AttemptRepository
	checkouts application.CheckoutRepository
}

func NewQueryService(
	attempts application.AttemptRepository,
	checkouts application.CheckoutRepository,
) *QueryService {
	return &QueryService{
		attempts:  attempts,
		checkouts: checkouts,
	}
}

func (s *QueryService) FindAttempt(ctx context.Context, id string) (*domain.Attempt, error) {
	attempt, err := s.attempts.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err)
	}
	return attempt, nil
}

func (s *QueryService) FindCheckout(ctx context.Context, orderID string) (*domain.Checkout, error) {
	checkout, err := s.checkouts.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, lookupError(err)
	}
	return checkout, nil
}

func lookupError(err error) error {
	if errors.Is(err, domain.ErrAttemptNotFound) || errors.Is(err, domain.ErrCheckoutNotFound) {
		return application.NewNotFoundError(err)
	}
	return application.NewInternalError(err)
}
