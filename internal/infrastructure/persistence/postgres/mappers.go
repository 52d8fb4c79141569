package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
)

func toDomainAttempt(m AttemptModel) (*domain.Attempt, error) {
	a := &domain.Attempt{
		ID:            m.ID,
		Token:         m.Token,
		PaymentSystem: m.PaymentSystem,
		Status:        domain.AttemptStatus(m.Status),
		FailureReason: m.FailureReason,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		CompletedAt:   m.CompletedAt,
		ChallengedAt:  m.ChallengedAt,
		ChallengeHost: m.ChallengeHost,
	}
	if len(m.Receipt) > 0 {
		var receipt domain.Receipt
		if err := json.Unmarshal(m.Receipt, &receipt); err != nil {
			return nil, fmt.Errorf("decode receipt of attempt %s: %w", m.ID, err)
		}
		a.Receipt = &receipt
	}
	return a, nil
}

func toAttemptModel(a *domain.Attempt) (*AttemptModel, error) {
	m := &AttemptModel{
		ID:            a.ID,
		Token:         a.Token,
		PaymentSystem: a.PaymentSystem,
		Status:        string(a.Status),
		FailureReason: a.FailureReason,
		ChallengeHost: a.ChallengeHost,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
		ChallengedAt:  a.ChallengedAt,
		CompletedAt:   a.CompletedAt,
	}
	if a.Receipt != nil {
		raw, err := json.Marshal(a.Receipt)
		if err != nil {
			return nil, fmt.Errorf("encode receipt of attempt %s: %w", a.ID, err)
		}
		m.Receipt = raw
	}
	return m, nil
}

func toDomainCheckout(m CheckoutModel) *domain.Checkout {
	return &domain.Checkout{
		Token:       m.Token,
		OrderID:     m.OrderID,
		Amount:      m.Amount,
		Currency:    m.Currency,
		OrderStatus: m.OrderStatus,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toCheckoutModel(c *domain.Checkout) *CheckoutModel {
	return &CheckoutModel{
		OrderID:     c.OrderID,
		Token:       c.Token,
		Amount:      c.Amount,
		Currency:    c.Currency,
		OrderStatus: c.OrderStatus,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
