package domain

import "time"

// Checkout ties a merchant order to the checkout token the gateway issued
// for it, and tracks the order status reported by server callbacks.
type Checkout struct {
	Token       string
	OrderID     string
	Amount      int64
	Currency    string
	OrderStatus string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewCheckout(token string, order *Order) (*Checkout, error) {
	if token == "" {
		return nil, NewValidationError("token", "is required")
	}
	if order == nil {
		return nil, NewValidationError("order", "is required")
	}

	now := time.Now()
	return &Checkout{
		Token:       token,
		OrderID:     order.OrderID(),
		Amount:      order.Amount(),
		Currency:    order.Currency(),
		OrderStatus: OrderStatusCreated,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ApplyStatus records a status reported by the gateway. Final statuses are
// never overwritten.
func (c *Checkout) ApplyStatus(status string) bool {
	if status == "" || status == c.OrderStatus {
		return false
	}
	current := Receipt{OrderStatus: c.OrderStatus}
	if current.IsFinal() {
		return false
	}
	c.OrderStatus = status
	c.UpdatedAt = time.Now()
	return true
}
