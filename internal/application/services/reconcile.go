package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
)

// ReconcileService settles attempts that stopped before recording an
// outcome, using a single order lookup. It never resubmits a payment.
type ReconcileService struct {
	gateway  application.Gateway
	attempts application.AttemptRepository
	logger   *slog.Logger
}

func NewReconcileService(
	gw application.Gateway,
	attempts application.AttemptRepository,
	logger *slog.Logger,
) *ReconcileService {
	return &ReconcileService{
		gateway:  gw,
		attempts: attempts,
		logger:   logger,
	}
}

// Reconcile looks the attempt's order up once. A final order status settles
// the attempt; a retryable lookup failure leaves it for the next cycle and
// any other failure fails it with the gateway's reason.
func (s *ReconcileService) Reconcile(ctx context.Context, attempt *domain.Attempt) error {
	if attempt.IsTerminal() {
		return nil
	}

	receipt, err := s.gateway.GetOrder(ctx, attempt.Token)
	if err != nil {
		if application.IsRetryable(err) {
			return err
		}
		if failErr := attempt.Fail(failure(err).Reason, time.Now()); failErr != nil {
			return application.NewInvalidStateError(failErr)
		}
		return s.save(ctx, attempt)
	}

	if !receipt.IsFinal() {
		s.logger.Debug("order not final yet", "attempt_id", attempt.ID, "order_status", receipt.OrderStatus)
		return nil
	}

	if err := settle(attempt, receipt, time.Now()); err != nil {
		return application.NewInvalidStateError(err)
	}
	return s.save(ctx, attempt)
}

func (s *ReconcileService) save(ctx context.Context, attempt *domain.Attempt) error {
	if err := s.attempts.Update(ctx, attempt); err != nil {
		if errors.Is(err, domain.ErrAttemptSettled) {
			s.logger.Info("attempt already settled, keeping stored result", "attempt_id", attempt.ID)
			return nil
		}
		return application.NewInternalError(err)
	}
	return nil
}
