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

type PgxMonthlyPerformanceRepository struct {
	BaseRepository
}

// newPgxMonthlyPerformanceRepository creates a new repository for the
// per-group monthly sheets.
func newPgxMonthlyPerformanceRepository(pool *pgxpool.Pool) portsrepo.MonthlyPerformanceRepositoryFacade {
	return &PgxMonthlyPerformanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.MonthlyPerformanceRepositoryFacade = (*PgxMonthlyPerformanceRepository)(nil)

const monthlyPerformanceColumns = `
	id, group_name, banking, service_fee, loan_form, passbook,
	office_debt_paid, office_banking, month, year
`

func scanMonthlyPerformance(row pgx.Row) (models.MonthlyPerformance, error) {
	var m models.MonthlyPerformance
	err := row.Scan(
		&m.ID,
		&m.GroupName,
		&m.Banking,
		&m.ServiceFee,
		&m.LoanForm,
		&m.Passbook,
		&m.OfficeDebtPaid,
		&m.OfficeBanking,
		&m.Month,
		&m.Year,
	)
	return m, err
}

// FindGroupByID retrieves the sheet whose row ID is the group identifier.
func (r *PgxMonthlyPerformanceRepository) FindGroupByID(ctx context.Context, groupID int64) (*domain.MonthlyPerformance, error) {
	query := `SELECT ` + monthlyPerformanceColumns + ` FROM monthly_performance WHERE id = $1;`

	m, err := scanMonthlyPerformance(r.Pool.QueryRow(ctx, query, groupID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find group %d: %w", groupID, err)
	}

	d := mapping.ToDomainMonthlyPerformance(m)
	return &d, nil
}

// FindGroupByPeriod retrieves the sheet for a group name and period.
func (r *PgxMonthlyPerformanceRepository) FindGroupByPeriod(ctx context.Context, groupName, month string, year int) (*domain.MonthlyPerformance, error) {
	query := `
		SELECT ` + monthlyPerformanceColumns + `
		FROM monthly_performance
		WHERE group_name = $1 AND month = $2 AND year = $3;
	`

	m, err := scanMonthlyPerformance(r.Pool.QueryRow(ctx, query, groupName, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find group %s for %s %d: %w", groupName, month, year, err)
	}

	d := mapping.ToDomainMonthlyPerformance(m)
	return &d, nil
}

// ListGroups retrieves all monthly sheets.
func (r *PgxMonthlyPerformanceRepository) ListGroups(ctx context.Context) ([]domain.MonthlyPerformance, error) {
	query := `SELECT ` + monthlyPerformanceColumns + ` FROM monthly_performance ORDER BY group_name, year, month;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly performance: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.MonthlyPerformance, error) {
		return scanMonthlyPerformance(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan monthly performance: %w", err)
	}

	return mapping.ToDomainMonthlyPerformanceSlice(ms), nil
}

// FilterGroups retrieves sheets matching the given criteria.
func (r *PgxMonthlyPerformanceRepository) FilterGroups(ctx context.Context, month, groupName string, year int) ([]domain.MonthlyPerformance, error) {
	query := `SELECT ` + monthlyPerformanceColumns + ` FROM monthly_performance WHERE 1 = 1`
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
		query += fmt.Sprintf(" AND group_name ILIKE $%d", len(args))
	}
	query += " ORDER BY group_name, year, month;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to filter monthly performance: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.MonthlyPerformance, error) {
		return scanMonthlyPerformance(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan filtered monthly performance: %w", err)
	}

	return mapping.ToDomainMonthlyPerformanceSlice(ms), nil
}

// SaveGroup inserts a new sheet and returns its identifier.
func (r *PgxMonthlyPerformanceRepository) SaveGroup(ctx context.Context, p domain.MonthlyPerformance) (int64, error) {
	m := mapping.ToModelMonthlyPerformance(p)
	query := `
		INSERT INTO monthly_performance (
			group_name, banking, service_fee, loan_form, passbook,
			office_debt_paid, office_banking, month, year
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.GroupName,
		m.Banking,
		m.ServiceFee,
		m.LoanForm,
		m.Passbook,
		m.OfficeDebtPaid,
		m.OfficeBanking,
		m.Month,
		m.Year,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert monthly performance for %s: %w", m.GroupName, err)
	}
	return id, nil
}

// UpdateGroup overwrites an existing sheet in place.
func (r *PgxMonthlyPerformanceRepository) UpdateGroup(ctx context.Context, p domain.MonthlyPerformance) error {
	m := mapping.ToModelMonthlyPerformance(p)
	query := `
		UPDATE monthly_performance SET
			group_name = $2,
			banking = $3,
			service_fee = $4,
			loan_form = $5,
			passbook = $6,
			office_debt_paid = $7,
			office_banking = $8,
			month = $9,
			year = $10
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ID,
		m.GroupName,
		m.Banking,
		m.ServiceFee,
		m.LoanForm,
		m.Passbook,
		m.OfficeDebtPaid,
		m.OfficeBanking,
		m.Month,
		m.Year,
	)
	if err != nil {
		return fmt.Errorf("failed to update monthly performance %d: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
