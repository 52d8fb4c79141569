package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
	"github.com/jackc/pgx/v5"
)

var ErrDuplicateCheckout = errors.New("checkout already exists for order")

type CheckoutRepository struct {
	q Executor
}

func NewCheckoutRepository(db *DB) *CheckoutRepository {
	return &CheckoutRepository{q: db.Pool}
}

func (r *CheckoutRepository) Create(ctx context.Context, checkout *domain.Checkout) error {
	query := `
		INSERT INTO checkouts (order_id, token, amount, currency, order_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	m := toCheckoutModel(checkout)
	_, err := r.q.Exec(ctx, query,
		m.OrderID,
		m.Token,
		m.Amount,
		m.Currency,
		m.OrderStatus,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateCheckout, checkout.OrderID)
		}
		return fmt.Errorf("failed to create checkout: %w", err)
	}

	return nil
}

func (r *CheckoutRepository) FindByOrderID(ctx context.Context, orderID string) (*domain.Checkout, error) {
	query := `
		SELECT order_id, token, amount, currency, order_status, created_at, updated_at
		FROM checkouts WHERE order_id = $1
	`

	var m CheckoutModel
	err := r.q.QueryRow(ctx, query, orderID).Scan(
		&m.OrderID, &m.Token, &m.Amount, &m.Currency, &m.OrderStatus, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewCheckoutNotFoundError(orderID)
		}
		return nil, fmt.Errorf("failed to scan checkout: %w", err)
	}

	return toDomainCheckout(m), nil
}

func (r *CheckoutRepository) UpdateStatus(ctx context.Context, checkout *domain.Checkout) error {
	query := `UPDATE checkouts SET order_status = $1, updated_at = $2 WHERE order_id = $3`

	result, err := r.q.Exec(ctx, query, checkout.OrderStatus, checkout.UpdatedAt, checkout.OrderID)
	if err != nil {
		return fmt.Errorf("failed to update checkout status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.NewCheckoutNotFoundError(checkout.OrderID)
	}

	return nil
}
