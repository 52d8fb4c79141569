package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
	"github.com/jackc/pgx/v5"
)

const attemptColumns = `
	id, token, payment_system, status, failure_reason, receipt, challenge_host,
	created_at, updated_at, challenged_at, completed_at`

type AttemptRepository struct {
	q Executor
}

func NewAttemptRepository(db *DB) *AttemptRepository {
	return &AttemptRepository{q: db.Pool}
}

func (r *AttemptRepository) Create(ctx context.Context, attempt *domain.Attempt) error {
	query := `
		INSERT INTO attempts (` + attemptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	m, err := toAttemptModel(attempt)
	if err != nil {
		return err
	}

	_, err = r.q.Exec(ctx, query,
		m.ID,
		m.Token,
		m.PaymentSystem,
		m.Status,
		m.FailureReason,
		m.Receipt,
		m.ChallengeHost,
		m.CreatedAt,
		m.UpdatedAt,
		m.ChallengedAt,
		m.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}

	return nil
}

// Update writes the attempt unless its stored status is already terminal.
// A settled row is left alone and ErrAttemptSettled is returned.
func (r *AttemptRepository) Update(ctx context.Context, attempt *domain.Attempt) error {
	query := `
		UPDATE attempts
		SET payment_system = $1, status = $2, failure_reason = $3, receipt = $4,
			challenge_host = $5, updated_at = $6, challenged_at = $7, completed_at = $8
		WHERE id = $9 AND status IN ('PENDING', 'AUTHENTICATING')
	`

	m, err := toAttemptModel(attempt)
	if err != nil {
		return err
	}

	result, err := r.q.Exec(ctx, query,
		m.PaymentSystem,
		m.Status,
		m.FailureReason,
		m.Receipt,
		m.ChallengeHost,
		m.UpdatedAt,
		m.ChallengedAt,
		m.CompletedAt,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attempt: %w", err)
	}

	if result.RowsAffected() == 0 {
		var exists bool
		err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM attempts WHERE id = $1)`, attempt.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check attempt: %w", err)
		}
		if exists {
			return domain.NewAttemptSettledError(attempt.ID)
		}
		return domain.NewAttemptNotFoundError(attempt.ID)
	}

	return nil
}

func (r *AttemptRepository) FindByID(ctx context.Context, id string) (*domain.Attempt, error) {
	query := `SELECT ` + attemptColumns + ` FROM attempts WHERE id = $1`

	attempt, err := scanAttempt(r.q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewAttemptNotFoundError(id)
	}
	return attempt, err
}

// FindLatestByToken returns the most recently created attempt for a checkout token.
func (r *AttemptRepository) FindLatestByToken(ctx context.Context, token string) (*domain.Attempt, error) {
	query := `
		SELECT ` + attemptColumns + `
		FROM attempts
		WHERE token = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	attempt, err := scanAttempt(r.q.QueryRow(ctx, query, token))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewAttemptNotFoundError(token)
	}
	return attempt, err
}

// FindStale returns open attempts not updated since olderThan, oldest first.
func (r *AttemptRepository) FindStale(ctx context.Context, olderThan time.Time, limit int) ([]*domain.Attempt, error) {
	query := `
		SELECT ` + attemptColumns + `
		FROM attempts
		WHERE status IN ('PENDING', 'AUTHENTICATING')
		  AND updated_at < $1
		ORDER BY updated_at ASC
		LIMIT $2
	`

	rows, err := r.q.Query(ctx, query, olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("query stale attempts: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Attempt, error) {
		return scanAttempt(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan stale attempts: %w", err)
	}

	return results, nil
}

// scanAttempt converts a row into a domain Attempt. pgx.ErrNoRows is passed
// through unwrapped.
func scanAttempt(row pgx.Row) (*domain.Attempt, error) {
	var m AttemptModel
	err := row.Scan(
		&m.ID, &m.Token, &m.PaymentSystem, &m.Status, &m.FailureReason, &m.Receipt, &m.ChallengeHost,
		&m.CreatedAt, &m.UpdatedAt, &m.ChallengedAt, &m.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("failed to scan attempt: %w", err)
	}
	return toDomainAttempt(m)
}
