package services

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
)

// recorder mirrors an attempt's progress into the repository. A failed write
// is logged and otherwise ignored; it never changes the payment outcome.
type recorder struct {
	repo    application.AttemptRepository
	attempt *domain.Attempt
	logger  *slog.Logger
}

func (o *PaymentOrchestrator) record(ctx context.Context, id, token string, logger *slog.Logger) *recorder {
	r := &recorder{repo: o.attempts, logger: logger}
	if o.attempts == nil {
		return r
	}

	attempt, err := domain.NewAttempt(id, token)
	if err != nil {
		logger.Warn("attempt not recorded", "error", err)
		return r
	}
	if err := o.attempts.Create(ctx, attempt); err != nil {
		logger.Error("failed to record attempt", "error", err)
		return r
	}
	r.attempt = attempt
	return r
}

func (r *recorder) setPaymentSystem(paymentSystem string) {
	if r.attempt != nil {
		r.attempt.PaymentSystem = paymentSystem
	}
}

func (r *recorder) authenticating(ctx context.Context, challengeURL string) {
	if r.attempt == nil {
		return
	}
	host := challengeURL
	if u, err := url.Parse(challengeURL); err == nil && u.Host != "" {
		host = u.Host
	}
	if err := r.attempt.MarkAuthenticating(host, time.Now()); err != nil {
		r.logger.Warn("attempt transition rejected", "error", err)
		return
	}
	r.save(ctx)
}

// finish records outcome and returns the attempt's final outcome. When a
// gateway callback or the reconciler settled the attempt first, the stored
// result stands and is returned in place of outcome.
func (r *recorder) finish(ctx context.Context, outcome domain.Outcome) domain.Outcome {
	if r.attempt == nil {
		return outcome
	}
	if err := r.attempt.Finish(outcome, time.Now()); err != nil {
		r.logger.Warn("attempt transition rejected", "error", err)
		return outcome
	}

	// The attempt's own context may already be cancelled.
	ctx = context.WithoutCancel(ctx)
	err := r.repo.Update(ctx, r.attempt)
	if err == nil {
		return outcome
	}
	if !errors.Is(err, domain.ErrAttemptSettled) {
		r.logger.Error("failed to update attempt", "status", r.attempt.Status, "error", err)
		return outcome
	}

	stored, err := r.repo.FindByID(ctx, r.attempt.ID)
	if err != nil {
		r.logger.Error("failed to load settled attempt", "error", err)
		return outcome
	}
	r.logger.Info("attempt already settled, keeping stored result",
		"stored_status", stored.Status,
		"local_status", r.attempt.Status,
	)
	return settledOutcome(stored, outcome)
}

func settledOutcome(stored *domain.Attempt, local domain.Outcome) domain.Outcome {
	if stored.Status == domain.AttemptSucceeded {
		return domain.Succeeded(stored.Receipt, local.PaymentData)
	}
	reason := domain.ErrAttemptSettled.Error()
	if stored.FailureReason != nil {
		reason = *stored.FailureReason
	}
	err := local.Err
	if err == nil {
		err = domain.ErrAttemptSettled
	}
	return domain.Failed(reason, err)
}

func (r *recorder) save(ctx context.Context) {
	err := r.repo.Update(ctx, r.attempt)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrAttemptSettled):
		r.logger.Info("attempt already settled, keeping stored result", "status", r.attempt.Status)
	default:
		r.logger.Error("failed to update attempt", "status", r.attempt.Status, "error", err)
	}
}
