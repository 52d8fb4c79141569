package domain

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator"
)

const (
	maxOrderIDLength      = 1024
	maxDescriptionLength  = 1024
	maxMerchantDataLength = 2048
	maxCallbackURLLength  = 2048
)

var validate = validator.New()

// Order describes what the customer pays for. Identity fields (amount, currency,
// order id, description, email) are fixed at construction; the optional
// attributes may change only until the order is submitted to the gateway.
type Order struct {
	amount      int64
	currency    string
	orderID     string
	description string
	email       string

	productID         string
	paymentSystems    []string
	lifetime          int
	merchantData      string
	preauth           bool
	requiredRecToken  bool
	verification      bool
	language          string
	serverCallbackURL string
	reservationData   string
	arguments         map[string]string

	submitted bool
}

func NewOrder(amount int64, currency, orderID, description, email string) (*Order, error) {
	if amount <= 0 {
		return nil, NewValidationError("amount", "must be a positive number of minor units")
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if err := validate.Var(currency, "required,len=3,alpha"); err != nil {
		return nil, NewValidationError("currency", "must be a three letter code")
	}

	if err := checkLength("order_id", orderID, maxOrderIDLength); err != nil {
		return nil, err
	}
	if err := checkLength("order_desc", description, maxDescriptionLength); err != nil {
		return nil, err
	}

	if email != "" {
		if err := validate.Var(email, "email"); err != nil {
			return nil, NewValidationError("sender_email", "not a valid email address")
		}
	}

	return &Order{
		amount:      amount,
		currency:    currency,
		orderID:     orderID,
		description: description,
		email:       email,
		arguments:   make(map[string]string),
	}, nil
}

func checkLength(field, value string, maxLen int) error {
	n := utf8.RuneCountInString(value)
	if n == 0 {
		return NewValidationError(field, "is required")
	}
	if n > maxLen {
		return NewValidationError(field, "must be at most "+strconv.Itoa(maxLen)+" characters")
	}
	return nil
}

func (o *Order) Amount() int64       { return o.amount }
func (o *Order) Currency() string    { return o.currency }
func (o *Order) OrderID() string     { return o.orderID }
func (o *Order) Description() string { return o.description }
func (o *Order) Email() string       { return o.email }
func (o *Order) Submitted() bool     { return o.submitted }

func (o *Order) SetProductID(productID string) error {
	return o.mutate("product_id", func() error {
		o.productID = productID
		return nil
	})
}

func (o *Order) SetPaymentSystems(systems ...string) error {
	return o.mutate("payment_systems", func() error {
		for _, s := range systems {
			if strings.TrimSpace(s) == "" || strings.Contains(s, ",") {
				return NewValidationError("payment_systems", "entries must be non-empty and contain no commas")
			}
		}
		o.paymentSystems = append([]string(nil), systems...)
		return nil
	})
}

// SetLifetime sets how long, in seconds, the checkout stays payable.
func (o *Order) SetLifetime(seconds int) error {
	return o.mutate("lifetime", func() error {
		if seconds <= 0 {
			return NewValidationError("lifetime", "must be positive")
		}
		o.lifetime = seconds
		return nil
	})
}

func (o *Order) SetMerchantData(data string) error {
	return o.mutate("merchant_data", func() error {
		if utf8.RuneCountInString(data) > maxMerchantDataLength {
			return NewValidationError("merchant_data", "must be at most 2048 characters")
		}
		o.merchantData = data
		return nil
	})
}

func (o *Order) SetPreauth(preauth bool) error {
	return o.mutate("preauth", func() error {
		o.preauth = preauth
		return nil
	})
}

func (o *Order) SetRequiredRecToken(required bool) error {
	return o.mutate("required_rectoken", func() error {
		o.requiredRecToken = required
		return nil
	})
}

func (o *Order) SetVerification(verification bool) error {
	return o.mutate("verification", func() error {
		o.verification = verification
		return nil
	})
}

func (o *Order) SetLanguage(lang string) error {
	return o.mutate("lang", func() error {
		if err := validate.Var(lang, "omitempty,min=2,max=5"); err != nil {
			return NewValidationError("lang", "must be a language code")
		}
		o.language = lang
		return nil
	})
}

func (o *Order) SetServerCallbackURL(callbackURL string) error {
	return o.mutate("server_callback_url", func() error {
		if utf8.RuneCountInString(callbackURL) > maxCallbackURLLength {
			return NewValidationError("server_callback_url", "must be at most 2048 characters")
		}
		if err := validate.Var(callbackURL, "omitempty,url"); err != nil {
			return NewValidationError("server_callback_url", "must be an absolute URL")
		}
		o.serverCallbackURL = callbackURL
		return nil
	})
}

func (o *Order) SetReservationData(data string) error {
	return o.mutate("reservation_data", func() error {
		o.reservationData = data
		return nil
	})
}

func (o *Order) SetArgument(key, value string) error {
	return o.mutate("arguments", func() error {
		if strings.TrimSpace(key) == "" {
			return NewValidationError("arguments", "key is required")
		}
		o.arguments[key] = value
		return nil
	})
}

// MarkSubmitted freezes the order. Every later mutation fails.
func (o *Order) MarkSubmitted() {
	o.submitted = true
}

func (o *Order) mutate(field string, apply func() error) error {
	if o.submitted {
		return NewOrderSubmittedError(field)
	}
	return apply()
}

// Params renders the order as the flat parameter set the gateway expects.
// Empty optional attributes are omitted.
func (o *Order) Params() map[string]string {
	params := map[string]string{
		"amount":     strconv.FormatInt(o.amount, 10),
		"currency":   o.currency,
		"order_id":   o.orderID,
		"order_desc": o.description,
	}

	optional := map[string]string{
		"sender_email":        o.email,
		"product_id":          o.productID,
		"payment_systems":     strings.Join(o.paymentSystems, ","),
		"merchant_data":       o.merchantData,
		"lang":                o.language,
		"server_callback_url": o.serverCallbackURL,
		"reservation_data":    o.reservationData,
	}
	for k, v := range optional {
		if v != "" {
			params[k] = v
		}
	}

	if o.lifetime > 0 {
		params["lifetime"] = strconv.Itoa(o.lifetime)
	}
	if o.preauth {
		params["preauth"] = "Y"
	}
	if o.requiredRecToken {
		params["required_rectoken"] = "Y"
	}
	if o.verification {
		params["verification"] = "Y"
	}
	for k, v := range o.arguments {
		if _, taken := params[k]; !taken {
			params[k] = v
		}
	}

	return params
}
