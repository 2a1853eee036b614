package pgsql

import (
	"context"
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

type PgxHistoryRepository struct {
	BaseRepository
}

// newPgxHistoryRepository creates a new repository for the performance archive.
func newPgxHistoryRepository(pool *pgxpool.Pool) portsrepo.HistoryRepositoryFacade {
	return &PgxHistoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.HistoryRepositoryFacade = (*PgxHistoryRepository)(nil)

// ListHistories retrieves all archival headers, newest first.
func (r *PgxHistoryRepository) ListHistories(ctx context.Context) ([]domain.History, error) {
	query := `SELECT id, group_name, date, created_by, updated_at FROM history ORDER BY date DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query histories: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.History, error) {
		var m models.History
		err := row.Scan(&m.ID, &m.GroupName, &m.Date, &m.CreatedBy, &m.UpdatedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan histories: %w", err)
	}

	return mapping.ToDomainHistorySlice(ms), nil
}

// FindFormRecordsByHistoryID retrieves the snapshots owned by a history entry.
func (r *PgxHistoryRepository) FindFormRecordsByHistoryID(ctx context.Context, historyID int64) ([]domain.FormRecord, error) {
	query := `
		SELECT id, history_id, group_id, member_details, savings_shares_bf, loan_balance_bf,
		       total_paid, principal, loan_interest, this_month_shares, fine_and_charges,
		       savings_shares_cf, loan_cf, month, year, created_at
		FROM form_records
		WHERE history_id = $1
		ORDER BY member_details;
	`
	rows, err := r.Pool.Query(ctx, query, historyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query form records for history %d: %w", historyID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FormRecord, error) {
		var m models.FormRecord
		err := row.Scan(
			&m.ID,
			&m.HistoryID,
			&m.GroupID,
			&m.MemberDetails,
			&m.SavingsSharesBF,
			&m.LoanBalanceBF,
			&m.TotalPaid,
			&m.Principal,
			&m.LoanInterest,
			&m.ThisMonthShares,
			&m.FineAndCharges,
			&m.SavingsSharesCF,
			&m.LoanCF,
			&m.Month,
			&m.Year,
			&m.CreatedAt,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan form records for history %d: %w", historyID, err)
	}
	if len(ms) == 0 {
		return nil, apperrors.ErrNotFound
	}

	return mapping.ToDomainFormRecordSlice(ms), nil
}

// ArchiveGroupPerformance creates the history header, bulk-inserts the
// snapshots, deletes the group's live rows and bulk-inserts the carry-forward
// replacements, all in one database transaction.
func (r *PgxHistoryRepository) ArchiveGroupPerformance(ctx context.Context, history domain.History, records []domain.FormRecord, resets []domain.GroupMonthlyPerformance, groupID int64) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	mh := mapping.ToModelHistory(history)
	var historyID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO history (group_name, date, created_by, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`, mh.GroupName, mh.Date, mh.CreatedBy, mh.UpdatedAt).Scan(&historyID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert history for %s: %w", mh.GroupName, err)
	}

	batch := &pgx.Batch{}
	recordQuery := `
		INSERT INTO form_records (
			history_id, group_id, member_details, savings_shares_bf, loan_balance_bf,
			total_paid, principal, loan_interest, this_month_shares, fine_and_charges,
			savings_shares_cf, loan_cf, month, year, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	for _, rec := range records {
		m := mapping.ToModelFormRecord(rec)
		batch.Queue(recordQuery,
			historyID,
			m.GroupID,
			m.MemberDetails,
			m.SavingsSharesBF,
			m.LoanBalanceBF,
			m.TotalPaid,
			m.Principal,
			m.LoanInterest,
			m.ThisMonthShares,
			m.FineAndCharges,
			m.SavingsSharesCF,
			m.LoanCF,
			m.Month,
			m.Year,
			m.CreatedAt,
		)
	}

	batch.Queue(`DELETE FROM group_monthly_performance WHERE group_id = $1;`, groupID)

	resetQuery := `
		INSERT INTO group_monthly_performance (
			group_id, member_details, savings_shares_bf, loan_balance_bf, total_paid,
			principal, loan_interest, this_month_shares, fine_and_charges,
			savings_shares_cf, loan_cf, month, year
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	for _, reset := range resets {
		m := mapping.ToModelGroupPerformance(reset)
		batch.Queue(resetQuery,
			m.GroupID,
			m.MemberDetails,
			m.SavingsSharesBF,
			m.LoanBalanceBF,
			m.TotalPaid,
			m.Principal,
			m.LoanInterest,
			m.ThisMonthShares,
			m.FineAndCharges,
			m.SavingsSharesCF,
			m.LoanCF,
			m.Month,
			m.Year,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("failed to execute archive batch for history %d: %w", historyID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return historyID, nil
}

type PgxAdvanceArchiveRepository struct {
	BaseRepository
}

// newPgxAdvanceArchiveRepository creates a new repository for the advance
// archive.
func newPgxAdvanceArchiveRepository(pool *pgxpool.Pool) portsrepo.AdvanceArchiveRepositoryFacade {
	return &PgxAdvanceArchiveRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AdvanceArchiveRepositoryFacade = (*PgxAdvanceArchiveRepository)(nil)

// ListAdvanceHistoryByGroup retrieves archived advance copies for a group.
func (r *PgxAdvanceArchiveRepository) ListAdvanceHistoryByGroup(ctx context.Context, groupID int64) ([]domain.AdvanceHistory, error) {
	query := `
		SELECT id, member_name, initial_amount, payment_amount, interest_rate, paid_amount,
		       total_amount_due, is_paid, status, group_id, user_id, created_at, updated_at
		FROM advance_history
		WHERE group_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query advance history for group %d: %w", groupID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AdvanceHistory, error) {
		var m models.AdvanceHistory
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
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan advance history for group %d: %w", groupID, err)
	}

	return mapping.ToDomainAdvanceHistorySlice(ms), nil
}

// ListAdvanceSummaries retrieves summaries filtered by optional group name
// and date.
func (r *PgxAdvanceArchiveRepository) ListAdvanceSummaries(ctx context.Context, groupName string, date *time.Time) ([]domain.AdvanceSummary, error) {
	query := `
		SELECT id, group_name, date, total_advances
		FROM advance_summaries
		WHERE ($1 = '' OR group_name = $1)
		  AND ($2::date IS NULL OR date = $2)
		ORDER BY date DESC, group_name;
	`
	rows, err := r.Pool.Query(ctx, query, groupName, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query advance summaries: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AdvanceSummary, error) {
		var m models.AdvanceSummary
		err := row.Scan(&m.ID, &m.GroupName, &m.Date, &m.TotalAdvances)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan advance summaries: %w", err)
	}

	return mapping.ToDomainAdvanceSummarySlice(ms), nil
}

// ArchiveAdvances bulk-inserts the advance copies and upserts the summary
// keyed by (group_name, date) in one database transaction.
func (r *PgxAdvanceArchiveRepository) ArchiveAdvances(ctx context.Context, entries []domain.AdvanceHistory, summary domain.AdvanceSummary) (*domain.AdvanceSummary, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	entryQuery := `
		INSERT INTO advance_history (
			member_name, initial_amount, payment_amount, interest_rate, paid_amount,
			total_amount_due, is_paid, status, group_id, user_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	for _, entry := range entries {
		m := mapping.ToModelAdvanceHistory(entry)
		batch.Queue(entryQuery,
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
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return nil, fmt.Errorf("failed to execute advance archive batch: %w", err)
	}

	var stored models.AdvanceSummary
	err = tx.QueryRow(ctx, `
		INSERT INTO advance_summaries (group_name, date, total_advances)
		VALUES ($1, $2, $3)
		ON CONFLICT (group_name, date) DO UPDATE SET total_advances = EXCLUDED.total_advances
		RETURNING id, group_name, date, total_advances;
	`, summary.GroupName, summary.Date, summary.TotalAdvances).Scan(
		&stored.ID,
		&stored.GroupName,
		&stored.Date,
		&stored.TotalAdvances,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert advance summary for %s: %w", summary.GroupName, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	d := mapping.ToDomainAdvanceSummary(stored)
	return &d, nil
}
