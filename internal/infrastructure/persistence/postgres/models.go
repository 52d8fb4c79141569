package postgres

import "time"

// AttemptModel is the attempts row. Receipt holds the JSONB snapshot of the
// gateway receipt.
type AttemptModel struct {
	ID            string
	Token         string
	PaymentSystem string
	Status        string
	FailureReason *string
	Receipt       []byte
	ChallengeHost *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ChallengedAt  *time.Time
	CompletedAt   *time.Time
}

type CheckoutModel struct {
	OrderID     string
	Token       string
	Amount      int64
	Currency    string
	OrderStatus string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
