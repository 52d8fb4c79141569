package application

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
)

// Gateway is the port for the payment gateway's checkout API.
type Gateway interface {
	FetchConfig(ctx context.Context, token string) (*domain.GatewayConfig, error)
	SubmitPayment(ctx context.Context, call domain.GatewayCall, paymentData json.RawMessage, email string) (*domain.Submission, error)
	GetOrder(ctx context.Context, token string) (*domain.Receipt, error)
}

// OrderGateway registers orders and checks the signatures of gateway callbacks.
type OrderGateway interface {
	CreateOrderToken(ctx context.Context, order *domain.Order) (string, error)
	VerifySignature(params map[string]string) bool
}

type WalletStatus string

const (
	WalletCompleted WalletStatus = "completed"
	WalletCancelled WalletStatus = "cancelled"
	WalletFailed    WalletStatus = "failed"
)

// WalletRequest is what the wallet SDK needs to show its payment sheet.
type WalletRequest struct {
	Environment   domain.WalletEnvironment `json:"environment"`
	PaymentSystem string                   `json:"payment_system"`
	Payload       json.RawMessage          `json:"payload"`
}

type WalletResult struct {
	Status      WalletStatus    `json:"status"`
	PaymentData json.RawMessage `json:"payment_data,omitempty"`
	Email       string          `json:"email,omitempty"`
	Reason      string          `json:"reason,omitempty"`
}

// Wallet is the port for the device wallet SDK.
type Wallet interface {
	IsReady(ctx context.Context) (bool, error)
	RequestPaymentToken(ctx context.Context, req WalletRequest) (WalletResult, error)
}

// AttemptRepository is the port for attempt persistence.
type AttemptRepository interface {
	Create(ctx context.Context, attempt *domain.Attempt) error
	Update(ctx context.Context, attempt *domain.Attempt) error
	FindByID(ctx context.Context, id string) (*domain.Attempt, error)
	FindLatestByToken(ctx context.Context, token string) (*domain.Attempt, error)
	FindStale(ctx context.Context, olderThan time.Time, limit int) ([]*domain.Attempt, error)
}

// CheckoutRepository keeps the order id behind each issued checkout token.
type CheckoutRepository interface {
	Create(ctx context.Context, checkout *domain.Checkout) error
	FindByOrderID(ctx context.Context, orderID string) (*domain.Checkout, error)
	UpdateStatus(ctx context.Context, checkout *domain.Checkout) error
}
