package domain

import (
	"encoding/json"
	"strings"
)

// WalletEnvironment selects the wallet SDK's test or production backend.
type WalletEnvironment string

const (
	EnvironmentTest       WalletEnvironment = "TEST"
	EnvironmentProduction WalletEnvironment = "PRODUCTION"
)

// GatewayConfig is the gateway's answer to "how should the wallet be asked
// for a token" for a single checkout token.
type GatewayConfig struct {
	PaymentSystem  string
	WalletRequest  json.RawMessage
	Token          string
	CallbackOrigin string
}

// Environment reads the wallet environment from the request payload,
// defaulting to TEST when absent or unreadable.
func (c GatewayConfig) Environment() WalletEnvironment {
	var payload struct {
		Environment string `json:"environment"`
	}
	if err := json.Unmarshal(c.WalletRequest, &payload); err != nil {
		return EnvironmentTest
	}
	if strings.EqualFold(payload.Environment, string(EnvironmentProduction)) {
		return EnvironmentProduction
	}
	return EnvironmentTest
}

// Call keeps what the attempt needs once the wallet hands back a token.
func (c GatewayConfig) Call() GatewayCall {
	return GatewayCall{
		Token:          c.Token,
		PaymentSystem:  c.PaymentSystem,
		CallbackOrigin: c.CallbackOrigin,
	}
}

type GatewayCall struct {
	Token          string
	PaymentSystem  string
	CallbackOrigin string
}

// Challenge is the issuer's step-up authentication page, fetched by posting
// the gateway's 3DS form to the ACS URL.
type Challenge struct {
	HTML           string
	ContentType    string
	URL            string
	CallbackOrigin string
	GatewayHost    string
	Cookie         string
}

// Submission is what the gateway answers to a wallet token: either the
// order is already complete, or the issuer wants the cardholder to step up.
type Submission struct {
	Receipt   *Receipt
	Challenge *Challenge
}
