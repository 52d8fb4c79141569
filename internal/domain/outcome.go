package domain

import "encoding/json"

// Outcome is the single terminal result of one payment attempt.
type Outcome struct {
	Success     bool
	Receipt     *Receipt
	PaymentData json.RawMessage
	Reason      string
	Err         error
}

func Succeeded(receipt *Receipt, paymentData json.RawMessage) Outcome {
	return Outcome{
		Success:     true,
		Receipt:     receipt,
		PaymentData: paymentData,
	}
}

// Failed builds a failure outcome. err is kept for classification; reason is
// what the caller shows.
func Failed(reason string, err error) Outcome {
	return Outcome{
		Success: false,
		Reason:  reason,
		Err:     err,
	}
}
