package services

import "github.com/DanielPopoola/ficmart-wallet-checkout/internal/application"

type CreateOrderCommand struct {
	Amount      int64
	Currency    string
	OrderID     string
	Description string
	Email       string

	ProductID         string
	PaymentSystems    []string
	Lifetime          int
	MerchantData      string
	Preauth           bool
	RequiredRecToken  bool
	Verification      bool
	Language          string
	ServerCallbackURL string
	ReservationData   string
	Arguments         map[string]string
}

type StartPaymentCommand struct {
	Token string
}

type WalletResultCommand struct {
	AttemptID string
	Result    application.WalletResult
}

type NavigationPhase string

const (
	PhaseNavigating NavigationPhase = "navigating"
	PhaseNavigated  NavigationPhase = "navigated"
)

// NavigationCommand is a webview navigation reported by the mobile client.
// Error is set when a navigated page failed to load.
type NavigationCommand struct {
	AttemptID string
	URL       string
	Phase     NavigationPhase
	Error     string
}

// CallbackCommand carries the flat parameter set of a gateway server callback.
type CallbackCommand struct {
	Params map[string]any
}
