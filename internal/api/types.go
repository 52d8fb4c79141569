package api

import (
	"encoding/json"
	"time"
)

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type AcceptedResponse struct {
	Success bool `json:"success"`
}

type CreateOrderRequest struct {
	Amount            int64             `json:"amount"`
	Currency          string            `json:"currency"`
	OrderID           string            `json:"order_id"`
	OrderDesc         string            `json:"order_desc"`
	SenderEmail       string            `json:"sender_email,omitempty"`
	ProductID         string            `json:"product_id,omitempty"`
	PaymentSystems    []string          `json:"payment_systems,omitempty"`
	Lifetime          int               `json:"lifetime,omitempty"`
	MerchantData      string            `json:"merchant_data,omitempty"`
	Preauth           bool              `json:"preauth,omitempty"`
	RequiredRecToken  bool              `json:"required_rectoken,omitempty"`
	Verification      bool              `json:"verification,omitempty"`
	Lang              string            `json:"lang,omitempty"`
	ServerCallbackURL string            `json:"server_callback_url,omitempty"`
	ReservationData   string            `json:"reservation_data,omitempty"`
	Arguments         map[string]string `json:"arguments,omitempty"`
}

type Checkout struct {
	Token       string    `json:"token"`
	OrderID     string    `json:"order_id"`
	Amount      int64     `json:"amount"`
	Currency    string    `json:"currency"`
	OrderStatus string    `json:"order_status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CheckoutResponse struct {
	Success bool     `json:"success"`
	Data    Checkout `json:"data"`
}

type StartPaymentRequest struct {
	Token string `json:"token"`
}

type WalletRequest struct {
	Environment   string          `json:"environment"`
	PaymentSystem string          `json:"payment_system"`
	Payload       json.RawMessage `json:"payload,omitempty"`
}

type WalletResult struct {
	Status      string          `json:"status"`
	PaymentData json.RawMessage `json:"payment_data,omitempty"`
	Email       string          `json:"email,omitempty"`
	Reason      string          `json:"reason,omitempty"`
}

type AuthenticationPage struct {
	HTML        string `json:"html,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	BaseURL     string `json:"base_url,omitempty"`
	Cookie      string `json:"cookie,omitempty"`
}

type Receipt struct {
	MaskedCard    string `json:"masked_card,omitempty"`
	CardBin       string `json:"card_bin,omitempty"`
	Amount        int64  `json:"amount"`
	PaymentID     int64  `json:"payment_id"`
	Currency      string `json:"currency,omitempty"`
	OrderStatus   string `json:"order_status,omitempty"`
	TranType      string `json:"tran_type,omitempty"`
	RRN           string `json:"rrn,omitempty"`
	ApprovalCode  string `json:"approval_code,omitempty"`
	ResponseCode  string `json:"response_code,omitempty"`
	PaymentSystem string `json:"payment_system,omitempty"`
	ResponseURL   string `json:"response_url,omitempty"`
}

type Outcome struct {
	Success bool     `json:"success"`
	Reason  string   `json:"reason,omitempty"`
	Receipt *Receipt `json:"receipt,omitempty"`
}

type Payment struct {
	AttemptID     string              `json:"attempt_id"`
	Stage         string              `json:"stage"`
	WalletRequest *WalletRequest      `json:"wallet_request,omitempty"`
	Page          *AuthenticationPage `json:"page,omitempty"`
	Outcome       *Outcome            `json:"outcome,omitempty"`
}

type PaymentResponse struct {
	Success bool    `json:"success"`
	Data    Payment `json:"data"`
}

type NavigationRequest struct {
	URL   string `json:"url"`
	Phase string `json:"phase"`
	Error string `json:"error,omitempty"`
}

type NavigationResponse struct {
	Success bool `json:"success"`
	Cancel  bool `json:"cancel"`
}

type Attempt struct {
	ID            string     `json:"id"`
	Token         string     `json:"token"`
	PaymentSystem string     `json:"payment_system,omitempty"`
	Status        string     `json:"status"`
	FailureReason *string    `json:"failure_reason,omitempty"`
	ChallengeHost *string    `json:"challenge_host,omitempty"`
	Receipt       *Receipt   `json:"receipt,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	ChallengedAt  *time.Time `json:"challenged_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

type AttemptResponse struct {
	Success bool    `json:"success"`
	Data    Attempt `json:"data"`
}
