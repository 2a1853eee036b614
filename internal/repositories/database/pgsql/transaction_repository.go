package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkopo/chama_management_app/internal/apperrors"
	"github.com/mkopo/chama_management_app/internal/core/domain"
	portsrepo "github.com/mkopo/chama_management_app/internal/core/ports/repositories"
	"github.com/mkopo/chama_management_app/internal/models"
	"github.com/mkopo/chama_management_app/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for audit transactions.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `id, amount, description, timestamp, user_id, advance_id, is_flagged, transaction_ref`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.ID,
		&m.Amount,
		&m.Description,
		&m.Timestamp,
		&m.UserID,
		&m.AdvanceID,
		&m.IsFlagged,
		&m.TransactionRef,
	)
	return m, err
}

// FindTransactionByID retrieves a transaction by ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %d: %w", transactionID, err)
	}

	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// ListTransactionsByUser retrieves up to limit transactions for a user,
// newest first, optionally starting strictly after the (before, beforeID)
// cursor position.
func (r *PgxTransactionRepository) ListTransactionsByUser(ctx context.Context, userID int64, before time.Time, beforeID int64, limit int32) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`
	args := []any{userID}

	if !before.IsZero() {
		query += ` AND (timestamp, id) < ($2, $3)`
		args = append(args, before, beforeID)
	}
	query += fmt.Sprintf(` ORDER BY timestamp DESC, id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for user %d: %w", userID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions for user %d: %w", userID, err)
	}

	return mapping.ToDomainTransactionSlice(ms), nil
}

// SaveTransaction inserts a new transaction and returns its identifier.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (amount, description, timestamp, user_id, advance_id, is_flagged, transaction_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.Amount,
		m.Description,
		m.Timestamp,
		m.UserID,
		m.AdvanceID,
		m.IsFlagged,
		m.TransactionRef,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction %s: %w", m.TransactionRef, err)
	}
	return id, nil
}

// UpdateTransaction overwrites the mutable fields of a transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `UPDATE transactions SET description = $2, is_flagged = $3 WHERE id = $1;`

	tag, err := r.Pool.Exec(ctx, query, m.ID, m.Description, m.IsFlagged)
	if err != nil {
		return fmt.Errorf("failed to update transaction %d: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
