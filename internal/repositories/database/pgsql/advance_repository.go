package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkopo/chama_management_app/internal/apperrors"
	"github.com/mkopo/chama_management_app/internal/core/domain"
	portsrepo "github.com/mkopo/chama_management_app/internal/core/ports/repositories"
	"github.com/mkopo/chama_management_app/internal/models"
	"github.com/mkopo/chama_management_app/internal/utils/mapping"
)

type PgxAdvanceRepository struct {
	BaseRepository
}

// newPgxAdvanceRepository creates a new repository for cash advances.
func newPgxAdvanceRepository(pool *pgxpool.Pool) portsrepo.AdvanceRepositoryFacade {
	return &PgxAdvanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AdvanceRepositoryFacade = (*PgxAdvanceRepository)(nil)

const advanceColumns = `
	id, member_name, initial_amount, payment_amount, interest_rate, paid_amount,
	total_amount_due, is_paid, status, group_id, user_id, created_at, updated_at
`

func scanAdvance(row pgx.Row) (models.Advance, error) {
	var m models.Advance
	err := row.Scan(
		&m.ID,
		&m.MemberName,
		&m.InitialAmount,
		&m.PaymentAmount,
		&m.InterestRate,
		&m.PaidAmount,
		&m.TotalAmountDue,
		&m.IsPaid,
		&m.Status,
		&m.GroupID,
		&m.UserID,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// FindAdvanceByID retrieves an advance by ID.
func (r *PgxAdvanceRepository) FindAdvanceByID(ctx context.Context, advanceID int64) (*domain.Advance, error) {
	query := `SELECT ` + advanceColumns + ` FROM advances WHERE id = $1;`

	m, err := scanAdvance(r.Pool.QueryRow(ctx, query, advanceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find advance %d: %w", advanceID, err)
	}

	d := mapping.ToDomainAdvance(m)
	return &d, nil
}

func (r *PgxAdvanceRepository) listAdvances(ctx context.Context, query string, args ...any) ([]domain.Advance, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query advances: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Advance, error) {
		return scanAdvance(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan advances: %w", err)
	}

	return mapping.ToDomainAdvanceSlice(ms), nil
}

// ListAdvancesByGroup retrieves every advance of a group regardless of status.
func (r *PgxAdvanceRepository) ListAdvancesByGroup(ctx context.Context, groupID int64) ([]domain.Advance, error) {
	query := `SELECT ` + advanceColumns + ` FROM advances WHERE group_id = $1 ORDER BY created_at;`
	return r.listAdvances(ctx, query, groupID)
}

// ListPendingAdvancesByGroup retrieves the group's advances still pending.
func (r *PgxAdvanceRepository) ListPendingAdvancesByGroup(ctx context.Context, groupID int64) ([]domain.Advance, error) {
	query := `SELECT ` + advanceColumns + ` FROM advances WHERE group_id = $1 AND status = $2 ORDER BY created_at;`
	return r.listAdvances(ctx, query, groupID, string(domain.AdvancePending))
}

// ListAdvancesByUser retrieves all advances created by a user.
func (r *PgxAdvanceRepository) ListAdvancesByUser(ctx context.Context, userID int64) ([]domain.Advance, error) {
	query := `SELECT ` + advanceColumns + ` FROM advances WHERE user_id = $1 ORDER BY created_at;`
	return r.listAdvances(ctx, query, userID)
}

// SaveAdvance inserts a new advance and returns its identifier.
func (r *PgxAdvanceRepository) SaveAdvance(ctx context.Context, advance domain.Advance) (int64, error) {
	m := mapping.ToModelAdvance(advance)
	query := `
		INSERT INTO advances (
			member_name, initial_amount, payment_amount, interest_rate, paid_amount,
			total_amount_due, is_paid, status, group_id, user_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.MemberName,
		m.InitialAmount,
		m.PaymentAmount,
		m.InterestRate,
		m.PaidAmount,
		m.TotalAmountDue,
		m.IsPaid,
		m.Status,
		m.GroupID,
		m.UserID,
		m.CreatedAt,
		m.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert advance for %s: %w", m.MemberName, err)
	}
	return id, nil
}

const updateAdvanceQuery = `
	UPDATE advances SET
		paid_amount = $2,
		is_paid = $3,
		status = $4,
		updated_at = $5
	WHERE id = $1;
`

// UpdateAdvance overwrites the mutable fields of an advance.
func (r *PgxAdvanceRepository) UpdateAdvance(ctx context.Context, advance domain.Advance) error {
	m := mapping.ToModelAdvance(advance)
	tag, err := r.Pool.Exec(ctx, updateAdvanceQuery, m.ID, m.PaidAmount, m.IsPaid, m.Status, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update advance %d: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ApplyPayment persists the updated advance and its audit transaction in one
// database transaction.
func (r *PgxAdvanceRepository) ApplyPayment(ctx context.Context, advance domain.Advance, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelAdvance(advance)
	tag, err := tx.Exec(ctx, updateAdvanceQuery, m.ID, m.PaidAmount, m.IsPaid, m.Status, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update advance %d: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	mt := mapping.ToModelTransaction(txn)
	txnQuery := `
		INSERT INTO transactions (amount, description, timestamp, user_id, advance_id, is_flagged, transaction_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, txnQuery,
		mt.Amount,
		mt.Description,
		mt.Timestamp,
		mt.UserID,
		mt.AdvanceID,
		mt.IsFlagged,
		mt.TransactionRef,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment transaction for advance %d: %w", m.ID, err)
	}

	return r.Commit(ctx, tx)
}

type PgxAdvanceCreditRepository struct {
	BaseRepository
}

// newPgxAdvanceCreditRepository creates a new repository for the manual
// monthly advance credit ledger.
func newPgxAdvanceCreditRepository(pool *pgxpool.Pool) portsrepo.AdvanceCreditRepositoryFacade {
	return &PgxAdvanceCreditRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AdvanceCreditRepositoryFacade = (*PgxAdvanceCreditRepository)(nil)

const advanceCreditColumns = `id, group_id, group_name, date, total_advance_amount, deductions`

func scanAdvanceCredit(row pgx.Row) (models.MonthlyAdvanceCredit, error) {
	var m models.MonthlyAdvanceCredit
	err := row.Scan(
		&m.ID,
		&m.GroupID,
		&m.GroupName,
		&m.Date,
		&m.TotalAdvanceAmount,
		&m.Deductions,
	)
	return m, err
}

// FindCreditByGroupID retrieves the most recent credit entry for the group.
func (r *PgxAdvanceCreditRepository) FindCreditByGroupID(ctx context.Context, groupID int64) (*domain.MonthlyAdvanceCredit, error) {
	query := `
		SELECT ` + advanceCreditColumns + `
		FROM monthly_advance_credits
		WHERE group_id = $1
		ORDER BY date DESC
		LIMIT 1;
	`

	m, err := scanAdvanceCredit(r.Pool.QueryRow(ctx, query, groupID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find advance credit for group %d: %w", groupID, err)
	}

	d := mapping.ToDomainAdvanceCredit(m)
	return &d, nil
}

// SaveCredit inserts a new ledger entry and returns its identifier.
func (r *PgxAdvanceCreditRepository) SaveCredit(ctx context.Context, credit domain.MonthlyAdvanceCredit) (int64, error) {
	m := mapping.ToModelAdvanceCredit(credit)
	query := `
		INSERT INTO monthly_advance_credits (group_id, group_name, date, total_advance_amount, deductions)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.GroupID,
		m.GroupName,
		m.Date,
		m.TotalAdvanceAmount,
		m.Deductions,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert advance credit for %s: %w", m.GroupName, err)
	}
	return id, nil
}

// ListCredits retrieves all ledger entries.
func (r *PgxAdvanceCreditRepository) ListCredits(ctx context.Context) ([]domain.MonthlyAdvanceCredit, error) {
	query := `SELECT ` + advanceCreditColumns + ` FROM monthly_advance_credits ORDER BY date DESC, group_name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query advance credits: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.MonthlyAdvanceCredit, error) {
		return scanAdvanceCredit(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan advance credits: %w", err)
	}

	return mapping.ToDomainAdvanceCreditSlice(ms), nil
}
