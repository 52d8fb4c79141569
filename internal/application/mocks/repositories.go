package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
)

// AttemptRepository is an in-memory AttemptRepository. Stored attempts are
// copied on the way in and out; the Fn fields override single methods.
type AttemptRepository struct {
	mu       sync.RWMutex
	attempts map[string]domain.Attempt

	CreateFn            func(ctx context.Context, attempt *domain.Attempt) error
	UpdateFn            func(ctx context.Context, attempt *domain.Attempt) error
	FindByIDFn          func(ctx context.Context, id string) (*domain.Attempt, error)
	FindLatestByTokenFn func(ctx context.Context, token string) (*domain.Attempt, error)
	FindStaleFn         func(ctx context.Context, olderThan time.Time, limit int) ([]*domain.Attempt, error)
}

func NewAttemptRepository() *AttemptRepository {
	return &AttemptRepository{attempts: make(map[string]domain.Attempt)}
}

func (m *AttemptRepository) Create(ctx context.Context, attempt *domain.Attempt) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, attempt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts[attempt.ID] = *attempt
	return nil
}

func (m *AttemptRepository) Update(ctx context.Context, attempt *domain.Attempt) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, attempt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.attempts[attempt.ID]
	if !ok {
		return domain.NewAttemptNotFoundError(attempt.ID)
	}
	if stored.IsTerminal() {
		return domain.NewAttemptSettledError(attempt.ID)
	}
	m.attempts[attempt.ID] = *attempt
	return nil
}

func (m *AttemptRepository) FindByID(ctx context.Context, id string) (*domain.Attempt, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.attempts[id]
	if !ok {
		return nil, domain.NewAttemptNotFoundError(id)
	}
	return &a, nil
}

func (m *AttemptRepository) FindLatestByToken(ctx context.Context, token string) (*domain.Attempt, error) {
	if m.FindLatestByTokenFn != nil {
		return m.FindLatestByTokenFn(ctx, token)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var latest *domain.Attempt
	for _, a := range m.attempts {
		if a.Token != token {
			continue
		}
		if latest == nil || a.CreatedAt.After(latest.CreatedAt) {
			found := a
			latest = &found
		}
	}
	if latest == nil {
		return nil, domain.NewAttemptNotFoundError(token)
	}
	return latest, nil
}

func (m *AttemptRepository) FindStale(ctx context.Context, olderThan time.Time, limit int) ([]*domain.Attempt, error) {
	if m.FindStaleFn != nil {
		return m.FindStaleFn(ctx, olderThan, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var stale []*domain.Attempt
	for _, a := range m.attempts {
		if a.IsTerminal() || !a.UpdatedAt.Before(olderThan) {
			continue
		}
		found := a
		stale = append(stale, &found)
	}
	sort.Slice(stale, func(i, j int) bool { return stale[i].UpdatedAt.Before(stale[j].UpdatedAt) })
	if limit > 0 && len(stale) > limit {
		stale = stale[:limit]
	}
	return stale, nil
}

// Put stores an attempt as is, bypassing the Fn overrides.
func (m *AttemptRepository) Put(attempt *domain.Attempt) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts[attempt.ID] = *attempt
}

func (m *AttemptRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.attempts)
}

// CheckoutRepository is an in-memory CheckoutRepository keyed by order id.
type CheckoutRepository struct {
	mu        sync.RWMutex
	checkouts map[string]domain.Checkout

	CreateFn       func(ctx context.Context, checkout *domain.Checkout) error
	FindByOrderFn  func(ctx context.Context, orderID string) (*domain.Checkout, error)
	UpdateStatusFn func(ctx context.Context, checkout *domain.Checkout) error
}

func NewCheckoutRepository() *CheckoutRepository {
	return &CheckoutRepository{checkouts: make(map[string]domain.Checkout)}
}

func (m *CheckoutRepository) Create(ctx context.Context, checkout *domain.Checkout) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, checkout)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkouts[checkout.OrderID] = *checkout
	return nil
}

func (m *CheckoutRepository) FindByOrderID(ctx context.Context, orderID string) (*domain.Checkout, error) {
	if m.FindByOrderFn != nil {
		return m.FindByOrderFn(ctx, orderID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.checkouts[orderID]
	if !ok {
		return nil, domain.NewCheckoutNotFoundError(orderID)
	}
	return &c, nil
}

func (m *CheckoutRepository) UpdateStatus(ctx context.Context, checkout *domain.Checkout) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, checkout)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.checkouts[checkout.OrderID]; !ok {
		return domain.NewCheckoutNotFoundError(checkout.OrderID)
	}
	m.checkouts[checkout.OrderID] = *checkout
	return nil
}

func (m *CheckoutRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.checkouts)
}
