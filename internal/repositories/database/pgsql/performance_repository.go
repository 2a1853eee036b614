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

type PgxGroupPerformanceRepository struct {
	BaseRepository
}

// newPgxGroupPerformanceRepository creates a new repository for live group
// performance records.
func newPgxGroupPerformanceRepository(pool *pgxpool.Pool) portsrepo.GroupPerformanceRepositoryFacade {
	return &PgxGroupPerformanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.GroupPerformanceRepositoryFacade = (*PgxGroupPerformanceRepository)(nil)

const groupPerformanceColumns = `
	id, group_id, member_details, savings_shares_bf, loan_balance_bf, total_paid,
	principal, loan_interest, this_month_shares, fine_and_charges,
	savings_shares_cf, loan_cf, month, year
`

func scanGroupPerformance(row pgx.Row) (models.GroupMonthlyPerformance, error) {
	var m models.GroupMonthlyPerformance
	err := row.Scan(
		&m.ID,
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
	)
	return m, err
}

// FindPerformanceByID retrieves a live record by ID.
func (r *PgxGroupPerformanceRepository) FindPerformanceByID(ctx context.Context, id int64) (*domain.GroupMonthlyPerformance, error) {
	query := `SELECT ` + groupPerformanceColumns + ` FROM group_monthly_performance WHERE id = $1;`

	m, err := scanGroupPerformance(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find performance %d: %w", id, err)
	}

	d := mapping.ToDomainGroupPerformance(m)
	return &d, nil
}

// FindPerformanceByPeriod retrieves the live record for one member of one
// group in one period.
func (r *PgxGroupPerformanceRepository) FindPerformanceByPeriod(ctx context.Context, groupID int64, memberDetails, month string, year int) (*domain.GroupMonthlyPerformance, error) {
	query := `
		SELECT ` + groupPerformanceColumns + `
		FROM group_monthly_performance
		WHERE group_id = $1 AND member_details = $2 AND month = $3 AND year = $4;
	`

	m, err := scanGroupPerformance(r.Pool.QueryRow(ctx, query, groupID, memberDetails, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find performance for group %d member %s: %w", groupID, memberDetails, err)
	}

	d := mapping.ToDomainGroupPerformance(m)
	return &d, nil
}

// ListPerformancesByGroup retrieves every live record of a group.
func (r *PgxGroupPerformanceRepository) ListPerformancesByGroup(ctx context.Context, groupID int64) ([]domain.GroupMonthlyPerformance, error) {
	query := `
		SELECT ` + groupPerformanceColumns + `
		FROM group_monthly_performance
		WHERE group_id = $1
		ORDER BY member_details;
	`
	rows, err := r.Pool.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query performances for group %d: %w", groupID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.GroupMonthlyPerformance, error) {
		return scanGroupPerformance(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan performances for group %d: %w", groupID, err)
	}

	return mapping.ToDomainGroupPerformanceSlice(ms), nil
}

// FilterPerformances retrieves live records matching the given criteria. The
// group name is resolved through the monthly sheet whose row ID is the group
// identifier.
func (r *PgxGroupPerformanceRepository) FilterPerformances(ctx context.Context, month, groupName string, year int) ([]domain.GroupMonthlyPerformance, error) {
	query := `SELECT ` + groupPerformanceColumns + ` FROM group_monthly_performance WHERE 1 = 1`
	args := []any{}

	if month != "" {
		args = append(args, "%"+month+"%")
		query += fmt.Sprintf(" AND month ILIKE $%d", len(args))
	}
	if year != 0 {
		args = append(args, year)
		query += fmt.Sprintf(" AND year = $%d", len(args))
	}
	if groupName != "" {
		args = append(args, "%"+groupName+"%")
		query += fmt.Sprintf(" AND group_id IN (SELECT id FROM monthly_performance WHERE group_name ILIKE $%d)", len(args))
	}
	query += " ORDER BY group_id, member_details;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to filter performances: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.GroupMonthlyPerformance, error) {
		return scanGroupPerformance(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan filtered performances: %w", err)
	}

	return mapping.ToDomainGroupPerformanceSlice(ms), nil
}

// HasPerformancesForGroup reports whether any live record exists for the group.
func (r *PgxGroupPerformanceRepository) HasPerformancesForGroup(ctx context.Context, groupID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM group_monthly_performance WHERE group_id = $1);`

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, groupID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check performances for group %d: %w", groupID, err)
	}
	return exists, nil
}

// ListMemberNames retrieves the distinct member names across all groups.
func (r *PgxGroupPerformanceRepository) ListMemberNames(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT member_details FROM group_monthly_performance ORDER BY member_details;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query member names: %w", err)
	}
	defer rows.Close()

	names, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (string, error) {
		var name string
		err := row.Scan(&name)
		return name, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan member names: %w", err)
	}
	return names, nil
}

// SummarizeMembers aggregates member counts and brought-forward totals.
func (r *PgxGroupPerformanceRepository) SummarizeMembers(ctx context.Context) (*domain.MemberSummary, error) {
	query := `
		SELECT COUNT(DISTINCT member_details),
		       COALESCE(SUM(savings_shares_bf), 0),
		       COALESCE(SUM(loan_balance_bf), 0)
		FROM group_monthly_performance;
	`
	var summary domain.MemberSummary
	err := r.Pool.QueryRow(ctx, query).Scan(
		&summary.TotalMembers,
		&summary.TotalSavingsSharesBF,
		&summary.TotalLoanBalanceBF,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize members: %w", err)
	}
	return &summary, nil
}

// SavePerformance inserts a new record and returns its identifier.
func (r *PgxGroupPerformanceRepository) SavePerformance(ctx context.Context, p domain.GroupMonthlyPerformance) (int64, error) {
	m := mapping.ToModelGroupPerformance(p)
	query := `
		INSERT INTO group_monthly_performance (
			group_id, member_details, savings_shares_bf, loan_balance_bf, total_paid,
			principal, loan_interest, this_month_shares, fine_and_charges,
			savings_shares_cf, loan_cf, month, year
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
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
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert performance for group %d: %w", m.GroupID, err)
	}
	return id, nil
}

// UpdatePerformance overwrites an existing record in place.
func (r *PgxGroupPerformanceRepository) UpdatePerformance(ctx context.Context, p domain.GroupMonthlyPerformance) error {
	m := mapping.ToModelGroupPerformance(p)
	query := `
		UPDATE group_monthly_performance SET
			member_details = $2,
			savings_shares_bf = $3,
			loan_balance_bf = $4,
			total_paid = $5,
			principal = $6,
			loan_interest = $7,
			this_month_shares = $8,
			fine_and_charges = $9,
			savings_shares_cf = $10,
			loan_cf = $11,
			month = $12,
			year = $13
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ID,
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
	if err != nil {
		return fmt.Errorf("failed to update performance %d: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
