package gateway

import "encoding/json"

const (
	pathMobilePay = "/api/checkout/ajax/mobile_pay"
	pathCheckout  = "/api/checkout/ajax"
	pathOrder     = "/api/checkout/merchant/order"
	pathToken     = "/api/checkout/token"

	statusSuccess    = "success"
	googlePayMethod  = "https://google.com/pay"
	defaultErrorText = "Unknown error"
)

type envelope struct {
	Request any `json:"request"`
}

type statusFields struct {
	ResponseStatus string `json:"response_status"`
	ErrorMessage   string `json:"error_message"`
	ErrorCode      any    `json:"error_code"`
}

type MobilePayRequest struct {
	MerchantID int64  `json:"merchant_id"`
	Token      string `json:"token"`
}

type MobilePayResponse struct {
	PaymentSystem string          `json:"payment_system"`
	Methods       []PaymentMethod `json:"methods"`
	ErrorMessage  string          `json:"error_message"`
}

type PaymentMethod struct {
	SupportedMethods string          `json:"supportedMethods"`
	Data             json.RawMessage `json:"data"`
}

type CheckoutRequest struct {
	PaymentSystem string          `json:"payment_system"`
	Token         string          `json:"token"`
	Data          json.RawMessage `json:"data"`
	Email         string          `json:"email,omitempty"`
}

type CheckoutResponse struct {
	URL      string    `json:"url"`
	SendData *SendData `json:"send_data"`
}

// SendData is the classic 3DS form the ACS expects.
type SendData struct {
	MD      string `json:"MD"`
	PaReq   string `json:"PaReq"`
	TermURL string `json:"TermUrl"`
}

type OrderRequest struct {
	Token string `json:"token"`
}

type OrderResponse struct {
	OrderData   json.RawMessage `json:"order_data"`
	ResponseURL string          `json:"response_url"`
}

type TokenResponse struct {
	Token       string `json:"token"`
	CheckoutURL string `json:"checkout_url"`
}
