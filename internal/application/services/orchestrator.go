package services

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/authsession"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/infrastructure/gateway"
	"github.com/google/uuid"
)

const (
	ReadinessReady       = "ready"
	ReadinessUnavailable = "not available"
)

// PaymentOrchestrator runs one wallet payment at a time: gateway config,
// wallet token, submission, optional step-up authentication and the final
// receipt. Every step runs once; the first failure ends the attempt.
type PaymentOrchestrator struct {
	gateway  application.Gateway
	wallet   application.Wallet
	surface  authsession.Surface
	attempts application.AttemptRepository

	redirectDomain string
	authTimeout    time.Duration
	logger         *slog.Logger

	busy atomic.Bool
}

type OrchestratorOption func(*PaymentOrchestrator)

// WithAttemptRepository records every attempt. Recording is best effort.
func WithAttemptRepository(repo application.AttemptRepository) OrchestratorOption {
	return func(o *PaymentOrchestrator) {
		o.attempts = repo
	}
}

func WithAuthTimeout(d time.Duration) OrchestratorOption {
	return func(o *PaymentOrchestrator) {
		o.authTimeout = d
	}
}

func WithRedirectDomain(domain string) OrchestratorOption {
	return func(o *PaymentOrchestrator) {
		o.redirectDomain = domain
	}
}

func WithOrchestratorLogger(logger *slog.Logger) OrchestratorOption {
	return func(o *PaymentOrchestrator) {
		o.logger = logger
	}
}

func NewPaymentOrchestrator(
	gw application.Gateway,
	wallet application.Wallet,
	surface authsession.Surface,
	opts ...OrchestratorOption,
) *PaymentOrchestrator {
	o := &PaymentOrchestrator{
		gateway:        gw,
		wallet:         wallet,
		surface:        surface,
		redirectDomain: "flitt.com",
		authTimeout:    authsession.DefaultTimeout,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Readiness reports whether the wallet can be offered. A wallet that errors
// is simply not available.
func (o *PaymentOrchestrator) Readiness(ctx context.Context) string {
	ready, err := o.wallet.IsReady(ctx)
	if err != nil {
		o.logger.Warn("wallet readiness check failed", "error", err)
		return ReadinessUnavailable
	}
	if !ready {
		return ReadinessUnavailable
	}
	return ReadinessReady
}

func (o *PaymentOrchestrator) Pay(ctx context.Context, token string) domain.Outcome {
	return o.PayAttempt(ctx, uuid.New().String(), token)
}

// PayAttempt is Pay with a caller-chosen attempt id.
func (o *PaymentOrchestrator) PayAttempt(ctx context.Context, attemptID, token string) domain.Outcome {
	if !o.busy.CompareAndSwap(false, true) {
		err := application.NewPaymentInProgressError()
		return domain.Failed(err.Message, err)
	}
	defer o.busy.Store(false)

	logger := o.logger.With("attempt_id", attemptID, "token", token)
	rec := o.record(ctx, attemptID, token, logger)

	outcome := o.run(ctx, token, rec, logger)

	outcome = rec.finish(ctx, outcome)
	if outcome.Success {
		logger.Info("payment succeeded")
	} else {
		logger.Warn("payment failed",
			"reason", outcome.Reason,
			"category", application.CategorizeError(outcome.Err),
		)
	}
	return outcome
}

func (o *PaymentOrchestrator) run(ctx context.Context, token string, rec *recorder, logger *slog.Logger) domain.Outcome {
	cfg, err := o.gateway.FetchConfig(ctx, token)
	if err != nil {
		return failure(err)
	}
	rec.setPaymentSystem(cfg.PaymentSystem)
	call := cfg.Call()

	env := cfg.Environment()
	logger.Info("requesting wallet token", "environment", env, "payment_system", cfg.PaymentSystem)

	wallet, err := o.wallet.RequestPaymentToken(ctx, application.WalletRequest{
		Environment:   env,
		PaymentSystem: cfg.PaymentSystem,
		Payload:       cfg.WalletRequest,
	})
	if err != nil {
		return failure(err)
	}
	switch wallet.Status {
	case application.WalletCompleted:
	case application.WalletCancelled:
		return domain.Failed(reasonOr(wallet.Reason, domain.ErrWalletCancelled), domain.ErrWalletCancelled)
	default:
		return domain.Failed(reasonOr(wallet.Reason, domain.ErrWalletFailed), domain.ErrWalletFailed)
	}

	submission, err := o.gateway.SubmitPayment(ctx, call, wallet.PaymentData, wallet.Email)
	if err != nil {
		return failure(err)
	}
	if submission.Receipt != nil {
		return domain.Succeeded(submission.Receipt, wallet.PaymentData)
	}
	if submission.Challenge == nil {
		return failure(&gateway.APIError{
			Code:    gateway.CodeMalformedResponse,
			Message: "submission returned neither a receipt nor a challenge",
		})
	}

	rec.authenticating(ctx, submission.Challenge.URL)

	session := authsession.New(*submission.Challenge, o.redirectDomain, o.surface,
		authsession.WithTimeout(o.authTimeout),
		authsession.WithLogger(logger),
	)
	result := session.Run(ctx)
	if !result.Success {
		return domain.Failed(result.Reason, result.Err)
	}

	if result.Params != nil {
		receipt, err := domain.ReceiptFromParams(result.Params, "")
		if err == nil {
			return domain.Succeeded(receipt, wallet.PaymentData)
		}
		logger.Warn("inline order params unusable, looking up order", "error", err)
	}

	receipt, err := o.gateway.GetOrder(ctx, call.Token)
	if err != nil {
		return failure(err)
	}
	return domain.Succeeded(receipt, wallet.PaymentData)
}

// failure keeps the originating message as the outcome reason.
func failure(err error) domain.Outcome {
	if apiErr, ok := gateway.IsAPIError(err); ok {
		return domain.Failed(apiErr.Message, err)
	}
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domain.Failed(domainErr.Message, err)
	}
	return domain.Failed(err.Error(), err)
}

func reasonOr(reason string, fallback error) string {
	if reason != "" {
		return reason
	}
	return fallback.Error()
}
