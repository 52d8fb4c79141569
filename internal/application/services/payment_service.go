package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/adapters/remote"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/authsession"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
	"github.com/google/uuid"
)

// PaymentService runs wallet payments on behalf of mobile clients. Each
// payment gets its own orchestrator whose wallet and authentication surface
// are a remote client fed by REST calls.
type PaymentService struct {
	gateway  application.Gateway
	attempts application.AttemptRepository
	registry *remote.Registry

	redirectDomain string
	authTimeout    time.Duration
	attemptTimeout time.Duration
	retention      time.Duration
	logger         *slog.Logger

	base context.Context
	stop context.CancelFunc
	wg   sync.WaitGroup
}

// PaymentServiceConfig tunes remote payments. Retention is how long a
// finished payment stays in the registry so clients can still poll its
// result, even when it never reached the attempt store.
type PaymentServiceConfig struct {
	RedirectDomain string
	AuthTimeout    time.Duration
	AttemptTimeout time.Duration
	Retention      time.Duration
}

func NewPaymentService(
	gw application.Gateway,
	attempts application.AttemptRepository,
	registry *remote.Registry,
	cfg PaymentServiceConfig,
	logger *slog.Logger,
) *PaymentService {
	if cfg.AuthTimeout <= 0 {
		cfg.AuthTimeout = authsession.DefaultTimeout
	}
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = 5 * time.Minute
	}
	if cfg.Retention <= 0 {
		cfg.Retention = time.Minute
	}

	base, stop := context.WithCancel(context.Background())
	return &PaymentService{
		gateway:        gw,
		attempts:       attempts,
		registry:       registry,
		redirectDomain: cfg.RedirectDomain,
		authTimeout:    cfg.AuthTimeout,
		attemptTimeout: cfg.AttemptTimeout,
		retention:      cfg.Retention,
		logger:         logger,
		base:           base,
		stop:           stop,
	}
}

// Start launches a payment for the checkout token and returns at once. The
// payment outlives the request that started it.
func (s *PaymentService) Start(_ context.Context, cmd StartPaymentCommand) (remote.View, error) {
	token := strings.TrimSpace(cmd.Token)
	if token == "" {
		return remote.View{}, application.NewInvalidInputError(domain.NewValidationError("token", "is required"))
	}
	if s.base.Err() != nil {
		return remote.View{}, application.NewInternalError(errors.New("payment service is shutting down"))
	}

	id := uuid.New().String()
	client := s.registry.Open(id, true)

	opts := []OrchestratorOption{
		WithAttemptRepository(s.attempts),
		WithAuthTimeout(s.authTimeout),
		WithOrchestratorLogger(s.logger),
	}
	if s.redirectDomain != "" {
		opts = append(opts, WithRedirectDomain(s.redirectDomain))
	}
	orchestrator := NewPaymentOrchestrator(s.gateway, client, client, opts...)

	ctx, cancel := context.WithTimeout(s.base, s.attemptTimeout)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()

		outcome := orchestrator.PayAttempt(ctx, id, token)
		client.Finish(outcome)
		time.AfterFunc(s.retention, func() { s.registry.Remove(id) })
	}()

	return client.View(), nil
}

// Status returns the view of a running or recently finished payment, or the
// recorded result of one that has left the registry.
func (s *PaymentService) Status(ctx context.Context, attemptID string) (remote.View, error) {
	if client, ok := s.registry.Get(attemptID); ok {
		return client.View(), nil
	}

	attempt, err := s.attempts.FindByID(ctx, attemptID)
	if err != nil {
		if errors.Is(err, domain.ErrAttemptNotFound) {
			return remote.View{}, application.NewNotFoundError(err)
		}
		return remote.View{}, application.NewInternalError(err)
	}
	return attemptView(attempt), nil
}

func (s *PaymentService) SubmitWallet(_ context.Context, cmd WalletResultCommand) error {
	client, err := s.client(cmd.AttemptID)
	if err != nil {
		return err
	}

	switch cmd.Result.Status {
	case application.WalletCompleted:
		if len(cmd.Result.PaymentData) == 0 {
			return application.NewInvalidInputError(domain.NewValidationError("payment_data", "is required for a completed wallet result"))
		}
	case application.WalletCancelled, application.WalletFailed:
	default:
		return application.NewInvalidInputError(domain.NewValidationError("status", "must be completed, cancelled or failed"))
	}

	if err := client.SubmitWallet(cmd.Result); err != nil {
		return pendingAction(err, "a wallet result")
	}
	return nil
}

// ReportNavigation forwards a webview navigation. For the navigating phase it
// reports whether the client must abort the navigation.
func (s *PaymentService) ReportNavigation(_ context.Context, cmd NavigationCommand) (bool, error) {
	client, err := s.client(cmd.AttemptID)
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(cmd.URL) == "" {
		return false, application.NewInvalidInputError(domain.NewValidationError("url", "is required"))
	}

	switch cmd.Phase {
	case PhaseNavigating:
		cancel, err := client.Navigating(cmd.URL)
		if err != nil {
			return false, pendingAction(err, "navigation events")
		}
		return cancel, nil
	case PhaseNavigated:
		var navErr error
		if cmd.Error != "" {
			navErr = errors.New(cmd.Error)
		}
		if err := client.Navigated(cmd.URL, navErr); err != nil {
			return false, pendingAction(err, "navigation events")
		}
		return false, nil
	default:
		return false, application.NewInvalidInputError(domain.NewValidationError("phase", "must be navigating or navigated"))
	}
}

func (s *PaymentService) Cancel(_ context.Context, attemptID string) error {
	client, err := s.client(attemptID)
	if err != nil {
		return err
	}
	if err := client.Cancel(); err != nil {
		return pendingAction(err, "a cancel")
	}
	return nil
}

// Shutdown aborts running payments and waits for them to record their
// outcome, or for ctx to expire.
func (s *PaymentService) Shutdown(ctx context.Context) error {
	s.stop()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *PaymentService) client(attemptID string) (*remote.Client, error) {
	client, ok := s.registry.Get(attemptID)
	if !ok {
		return nil, application.NewNotFoundError(domain.NewAttemptNotFoundError(attemptID))
	}
	return client, nil
}

func pendingAction(err error, action string) error {
	if errors.Is(err, remote.ErrNotWaiting) {
		return application.NewNoPendingActionError(action)
	}
	return application.NewInternalError(err)
}

func attemptView(attempt *domain.Attempt) remote.View {
	view := remote.View{ID: attempt.ID, Stage: remote.StageProcessing}
	if !attempt.IsTerminal() {
		return view
	}

	view.Stage = remote.StageDone
	outcome := domain.Outcome{Success: attempt.Status == domain.AttemptSucceeded, Receipt: attempt.Receipt}
	if attempt.FailureReason != nil {
		outcome.Reason = *attempt.FailureReason
	}
	view.Outcome = &outcome
	return view
}
