package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application/mocks"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingService struct {
	mu   sync.Mutex
	seen []string
	err  error
}

func (s *recordingService) Reconcile(_ context.Context, attempt *domain.Attempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen = append(s.seen, attempt.ID)
	if s.err != nil {
		return s.err
	}
	return attempt.Fail("order expired", time.Now())
}

func (s *recordingService) calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.seen...)
}

func seed(t *testing.T, repo *mocks.AttemptRepository, id string, age time.Duration) {
	t.Helper()
	attempt, err := domain.NewAttempt(id, "tok-"+id)
	require.NoError(t, err)
	attempt.UpdatedAt = time.Now().Add(-age)
	repo.Put(attempt)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReconciler_OnlyStaleAttempts(t *testing.T) {
	repo := mocks.NewAttemptRepository()
	seed(t, repo, "stale-old", 30*time.Minute)
	seed(t, repo, "stale", 11*time.Minute)
	seed(t, repo, "fresh", time.Minute)

	svc := &recordingService{}
	reconciler := NewReconciler(repo, svc, time.Second, 10, 10*time.Minute, testLogger())

	reconciler.RunOnce(context.Background())

	assert.Equal(t, []string{"stale-old", "stale"}, svc.calls())
}

func TestReconciler_BatchSize(t *testing.T) {
	repo := mocks.NewAttemptRepository()
	seed(t, repo, "a", 40*time.Minute)
	seed(t, repo, "b", 30*time.Minute)
	seed(t, repo, "c", 20*time.Minute)

	svc := &recordingService{}
	reconciler := NewReconciler(repo, svc, time.Second, 2, 10*time.Minute, testLogger())

	reconciler.RunOnce(context.Background())

	assert.Equal(t, []string{"a", "b"}, svc.calls())
}

func TestReconciler_ContinuesAfterFailure(t *testing.T) {
	repo := mocks.NewAttemptRepository()
	seed(t, repo, "a", 40*time.Minute)
	seed(t, repo, "b", 30*time.Minute)

	svc := &recordingService{err: errors.New("gateway unavailable")}
	reconciler := NewReconciler(repo, svc, time.Second, 10, 10*time.Minute, testLogger())

	reconciler.RunOnce(context.Background())

	assert.Len(t, svc.calls(), 2)
}

func TestReconciler_RepositoryError(t *testing.T) {
	repo := mocks.NewAttemptRepository()
	repo.FindStaleFn = func(context.Context, time.Time, int) ([]*domain.Attempt, error) {
		return nil, errors.New("connection refused")
	}

	svc := &recordingService{}
	reconciler := NewReconciler(repo, svc, time.Second, 10, 10*time.Minute, testLogger())

	reconciler.RunOnce(context.Background())

	assert.Empty(t, svc.calls())
}

func TestReconciler_StartStopsOnCancel(t *testing.T) {
	repo := mocks.NewAttemptRepository()
	seed(t, repo, "a", time.Hour)

	svc := &recordingService{}
	reconciler := NewReconciler(repo, svc, 10*time.Millisecond, 10, 10*time.Minute, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		reconciler.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return len(svc.calls()) > 0 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reconciler did not stop")
	}
}
