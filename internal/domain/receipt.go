package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Receipt is the gateway-confirmed record of a completed order.
type Receipt struct {
	MaskedCard      string `json:"masked_card"`
	CardBin         string `json:"card_bin"`
	Amount          int64  `json:"amount"`
	PaymentID       int64  `json:"payment_id"`
	Currency        string `json:"currency"`
	OrderStatus     string `json:"order_status"`
	TransactionType string `json:"tran_type"`
	RRN             string `json:"rrn"`
	ApprovalCode    string `json:"approval_code"`
	ResponseCode    string `json:"response_code"`
	PaymentSystem   string `json:"payment_system"`
	ResponseURL     string `json:"response_url"`
}

// Order statuses reported by the gateway.
const (
	OrderStatusApproved   = "approved"
	OrderStatusDeclined   = "declined"
	OrderStatusExpired    = "expired"
	OrderStatusReversed   = "reversed"
	OrderStatusProcessing = "processing"
	OrderStatusCreated    = "created"
)

// IsFinal reports whether the gateway will not change the order status anymore.
func (r *Receipt) IsFinal() bool {
	switch r.OrderStatus {
	case OrderStatusApproved, OrderStatusDeclined, OrderStatusExpired, OrderStatusReversed:
		return true
	}
	return false
}

// ReceiptFromParams builds a receipt from a gateway order object. Numeric
// fields may arrive as JSON numbers or as numeric strings.
func ReceiptFromParams(params map[string]any, responseURL string) (*Receipt, error) {
	if params == nil {
		return nil, NewValidationError("order_data", "is required")
	}

	amount, err := intField(params, "amount")
	if err != nil {
		return nil, err
	}
	paymentID, err := intField(params, "payment_id")
	if err != nil {
		return nil, err
	}

	return &Receipt{
		MaskedCard:      stringField(params, "masked_card"),
		CardBin:         stringField(params, "card_bin"),
		Amount:          amount,
		PaymentID:       paymentID,
		Currency:        stringField(params, "currency"),
		OrderStatus:     stringField(params, "order_status"),
		TransactionType: stringField(params, "tran_type"),
		RRN:             stringField(params, "rrn"),
		ApprovalCode:    stringField(params, "approval_code"),
		ResponseCode:    stringField(params, "response_code"),
		PaymentSystem:   stringField(params, "payment_system"),
		ResponseURL:     responseURL,
	}, nil
}

func stringField(params map[string]any, key string) string {
	switch v := params[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func intField(params map[string]any, key string) (int64, error) {
	switch v := params[key].(type) {
	case nil:
		return 0, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, NewValidationError(key, "must be an integer")
		}
		return int64(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, NewValidationError(key, "must be an integer")
		}
		return n, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return 0, nil
		}
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, NewValidationError(key, "must be an integer")
		}
		return n, nil
	default:
		return 0, NewValidationError(key, "must be an integer")
	}
}
