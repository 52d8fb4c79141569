package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
)

type ReconcilerService interface {
	Reconcile(ctx context.Context, attempt *domain.Attempt) error
}

// Reconciler periodically settles attempts left in PENDING or
// AUTHENTICATING for longer than staleAfter.
type Reconciler struct {
	repo       application.AttemptRepository
	service    ReconcilerService
	interval   time.Duration
	batchSize  int
	staleAfter time.Duration
	logger     *slog.Logger
}

func NewReconciler(
	repo application.AttemptRepository,
	service ReconcilerService,
	interval time.Duration,
	batchSize int,
	staleAfter time.Duration,
	logger *slog.Logger,
) *Reconciler {
	return &Reconciler{
		repo:       repo,
		service:    service,
		interval:   interval,
		batchSize:  batchSize,
		staleAfter: staleAfter,
		logger:     logger,
	}
}

func (r *Reconciler) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("starting background reconciler",
		"interval", r.interval,
		"batch_size", r.batchSize,
		"stale_after", r.staleAfter,
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("stopping background reconciler")
			return
		case <-ticker.C:
			r.run(ctx)
		}
	}
}

// RunOnce executes a single reconciliation cycle.
func (r *Reconciler) RunOnce(ctx context.Context) {
	r.run(ctx)
}

func (r *Reconciler) run(ctx context.Context) {
	stale, err := r.repo.FindStale(ctx, time.Now().Add(-r.staleAfter), r.batchSize)
	if err != nil {
		r.logger.Error("failed to fetch stale attempts", "error", err)
		return
	}

	if len(stale) == 0 {
		return
	}

	r.logger.Info("reconciling stale attempts", "count", len(stale))

	for _, attempt := range stale {
		if ctx.Err() != nil {
			return
		}
		if err := r.service.Reconcile(ctx, attempt); err != nil {
			r.logger.Error("reconciliation failed for attempt",
				"attempt_id", attempt.ID,
				"status", attempt.Status,
				"category", application.CategorizeError(err),
				"error", err,
			)
			continue
		}
		if attempt.IsTerminal() {
			r.logger.Info("successfully reconciled attempt", "attempt_id", attempt.ID, "new_status", attempt.Status)
		}
	}
}
