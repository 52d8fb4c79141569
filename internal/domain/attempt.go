// Package domain holds the checkout entities: orders, gateway configuration,
// receipts, attempt records and the terminal outcome of a payment.
package domain

import (
	"slices"
	"time"
)

// AttemptStatus represents where a payment attempt is in its lifecycle
type AttemptStatus string

const (
	AttemptPending        AttemptStatus = "PENDING"
	AttemptAuthenticating AttemptStatus = "AUTHENTICATING"
	AttemptSucceeded      AttemptStatus = "SUCCEEDED"
	AttemptFailed         AttemptStatus = "FAILED"
)

// Attempt is the persisted trace of one orchestrator invocation.
type Attempt struct {
	ID            string
	Token         string
	PaymentSystem string
	Status        AttemptStatus
	FailureReason *string
	Receipt       *Receipt

	CreatedAt     time.Time
	UpdatedAt     time.Time
	CompletedAt   *time.Time
	ChallengedAt  *time.Time
	ChallengeHost *string
}

func NewAttempt(id, token string) (*Attempt, error) {
	if id == "" {
		return nil, NewValidationError("attempt_id", "is required")
	}
	if token == "" {
		return nil, NewValidationError("token", "is required")
	}

	now := time.Now()
	return &Attempt{
		ID:        id,
		Token:     token,
		Status:    AttemptPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// MarkAuthenticating records that the gateway demanded step-up authentication.
func (a *Attempt) MarkAuthenticating(host string, at time.Time) error {
	if err := a.transition(AttemptAuthenticating); err != nil {
		return err
	}
	a.ChallengeHost = &host
	a.ChallengedAt = &at
	return nil
}

func (a *Attempt) Succeed(receipt *Receipt, at time.Time) error {
	if err := a.transition(AttemptSucceeded); err != nil {
		return err
	}
	a.Receipt = receipt
	a.CompletedAt = &at
	return nil
}

func (a *Attempt) Fail(reason string, at time.Time) error {
	if err := a.transition(AttemptFailed); err != nil {
		return err
	}
	a.FailureReason = &reason
	a.CompletedAt = &at
	return nil
}

// Finish applies a terminal outcome to the attempt.
func (a *Attempt) Finish(outcome Outcome, at time.Time) error {
	if outcome.Success {
		return a.Succeed(outcome.Receipt, at)
	}
	return a.Fail(outcome.Reason, at)
}

func (a *Attempt) IsTerminal() bool {
	return a.Status == AttemptSucceeded || a.Status == AttemptFailed
}

func (a *Attempt) transition(target AttemptStatus) error {
	if err := a.canTransitionTo(target); err != nil {
		return err
	}
	a.Status = target
	a.UpdatedAt = time.Now()
	return nil
}

func (a *Attempt) canTransitionTo(target AttemptStatus) error {
	switch a.Status {
	case AttemptPending:
		return a.allow(target, AttemptAuthenticating, AttemptSucceeded, AttemptFailed)
	case AttemptAuthenticating:
		return a.allow(target, AttemptSucceeded, AttemptFailed)
	}
	return NewInvalidTransitionError(a.Status, target)
}

func (a *Attempt) allow(target AttemptStatus, allowed ...AttemptStatus) error {
	if slices.Contains(allowed, target) {
		return nil
	}
	return NewInvalidTransitionError(a.Status, target)
}
