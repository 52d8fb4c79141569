package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
)

// CallbackService applies the gateway's server-to-server order callbacks.
type CallbackService struct {
	gateway   application.OrderGateway
	checkouts application.CheckoutRepository
	attempts  application.AttemptRepository
	logger    *slog.Logger
}

func NewCallbackService(
	gw application.OrderGateway,
	checkouts application.CheckoutRepository,
	attempts application.AttemptRepository,
	logger *slog.Logger,
) *CallbackService {
	return &CallbackService{
		gateway:   gw,
		checkouts: checkouts,
		attempts:  attempts,
		logger:    logger,
	}
}

// HandleCallback verifies the callback signature, records the reported
// order status on the checkout and settles the latest attempt for its token
// once the status is final. A callback for an already settled attempt is
// acknowledged without changes.
func (s *CallbackService) HandleCallback(ctx context.Context, cmd CallbackCommand) (*domain.Checkout, error) {
	params := stringParams(cmd.Params)
	if !s.gateway.VerifySignature(params) {
		s.logger.Warn("callback signature mismatch", "order_id", params["order_id"])
		return nil, application.NewInvalidSignatureError()
	}

	orderID := params["order_id"]
	if orderID == "" {
		return nil, application.NewInvalidInputError(domain.NewValidationError("order_id", "is required"))
	}

	checkout, err := s.checkouts.FindByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrCheckoutNotFound) {
			return nil, application.NewNotFoundError(err)
		}
		return nil, application.NewInternalError(err)
	}

	status := params["order_status"]
	if checkout.ApplyStatus(status) {
		if err := s.checkouts.UpdateStatus(ctx, checkout); err != nil {
			return nil, application.NewInternalError(err)
		}
	}

	receipt, err := domain.ReceiptFromParams(cmd.Params, params["response_url"])
	if err != nil {
		return nil, application.NewInvalidInputError(err)
	}
	if !receipt.IsFinal() {
		return checkout, nil
	}

	if err := s.settleAttempt(ctx, checkout.Token, receipt); err != nil {
		return nil, err
	}
	return checkout, nil
}

func (s *CallbackService) settleAttempt(ctx context.Context, token string, receipt *domain.Receipt) error {
	logger := s.logger.With("token", token, "order_status", receipt.OrderStatus)

	attempt, err := s.attempts.FindLatestByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrAttemptNotFound) {
			logger.Info("callback has no attempt to settle")
			return nil
		}
		return application.NewInternalError(err)
	}
	if attempt.IsTerminal() {
		return nil
	}

	if err := settle(attempt, receipt, time.Now()); err != nil {
		return application.NewInvalidStateError(err)
	}
	if err := s.attempts.Update(ctx, attempt); err != nil {
		if errors.Is(err, domain.ErrAttemptSettled) {
			logger.Info("attempt already settled, keeping stored result", "attempt_id", attempt.ID)
			return nil
		}
		return application.NewInternalError(err)
	}

	logger.Info("attempt settled by callback", "attempt_id", attempt.ID, "status", attempt.Status)
	return nil
}

// settle finishes an attempt from a final gateway receipt.
func settle(attempt *domain.Attempt, receipt *domain.Receipt, at time.Time) error {
	if receipt.OrderStatus == domain.OrderStatusApproved {
		return attempt.Succeed(receipt, at)
	}
	return attempt.Fail("order "+receipt.OrderStatus, at)
}

func stringParams(params map[string]any) map[string]string {
	out := make(map[string]string, len(params))
	for k, v := range params {
		switch val := v.(type) {
		case nil:
			out[k] = ""
		case string:
			out[k] = val
		case json.Number:
			out[k] = val.String()
		case map[string]any, []any:
			raw, err := json.Marshal(val)
			if err != nil {
				continue
			}
			out[k] = string(raw)
		default:
			out[k] = fmt.Sprint(val)
		}
	}
	return out
}
