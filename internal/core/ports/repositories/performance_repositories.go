package repositories

import (
	"context"

	"github.com/mkopo/chama_management_app/internal/core/domain"
)

// GroupPerformanceReader defines read operations over the live group
// performance table.
type GroupPerformanceReader interface {
	// FindPerformanceByID retrieves a live record by ID, or apperrors.ErrNotFound.
	FindPerformanceByID(ctx context.Context, id int64) (*domain.GroupMonthlyPerformance, error)

	// FindPerformanceByPeriod retrieves the live record for one member of one
	// group in one period, or apperrors.ErrNotFound.
	FindPerformanceByPeriod(ctx context.Context, groupID int64, memberDetails, month string, year int) (*domain.GroupMonthlyPerformance, error)

	// ListPerformancesByGroup retrieves every live record of a group.
	ListPerformancesByGroup(ctx context.Context, groupID int64) ([]domain.GroupMonthlyPerformance, error)

	// FilterPerformances retrieves live records matching the given criteria.
	// Empty month/groupName and zero year mean unset; month and groupName
	// match case-insensitive substrings, groupName against the sheet name of
	// the record's group.
	FilterPerformances(ctx context.Context, month, groupName string, year int) ([]domain.GroupMonthlyPerformance, error)

	// HasPerformancesForGroup reports whether any live record exists for the group.
	HasPerformancesForGroup(ctx context.Context, groupID int64) (bool, error)

	// ListMemberNames retrieves the distinct member names across all groups.
	ListMemberNames(ctx context.Context) ([]string, error)

	// SummarizeMembers aggregates member counts and brought-forward totals.
	SummarizeMembers(ctx context.Context) (*domain.MemberSummary, error)
}

// GroupPerformanceWriter defines write operations over the live group
// performance table.
type GroupPerformanceWriter interface {
	// SavePerformance inserts a new record and returns its identifier.
	SavePerformance(ctx context.Context, p domain.GroupMonthlyPerformance) (int64, error)

	// UpdatePerformance overwrites an existing record in place.
	UpdatePerformance(ctx context.Context, p domain.GroupMonthlyPerformance) error
}

// GroupPerformanceRepositoryFacade combines all group performance repository interfaces
type GroupPerformanceRepositoryFacade interface {
	GroupPerformanceReader
	GroupPerformanceWriter
}

// MonthlyPerformanceReader defines read operations over the per-group monthly sheet.
type MonthlyPerformanceReader interface {
	// FindGroupByID retrieves the sheet whose row ID is the group identifier,
	// or apperrors.ErrNotFound.
	FindGroupByID(ctx context.Context, groupID int64) (*domain.MonthlyPerformance, error)

	// FindGroupByPeriod retrieves the sheet for a group name and period, or
	// apperrors.ErrNotFound.
	FindGroupByPeriod(ctx context.Context, groupName, month string, year int) (*domain.MonthlyPerformance, error)

	// ListGroups retrieves all monthly sheets.
	ListGroups(ctx context.Context) ([]domain.MonthlyPerformance, error)

	// FilterGroups retrieves sheets matching the given criteria. Empty
	// month/groupName and zero year mean unset; month and groupName match
	// case-insensitive substrings.
	FilterGroups(ctx context.Context, month, groupName string, year int) ([]domain.MonthlyPerformance, error)
}

// MonthlyPerformanceWriter defines write operations over the per-group monthly sheet.
type MonthlyPerformanceWriter interface {
	// SaveGroup inserts a new sheet and returns its identifier.
	SaveGroup(ctx context.Context, p domain.MonthlyPerformance) (int64, error)

	// UpdateGroup overwrites an existing sheet in place.
	UpdateGroup(ctx context.Context, p domain.MonthlyPerformance) error
}

// MonthlyPerformanceRepositoryFacade combines all monthly sheet repository interfaces
type MonthlyPerformanceRepositoryFacade interface {
	MonthlyPerformanceReader
	MonthlyPerformanceWriter
}
