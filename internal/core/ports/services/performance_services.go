package services

import (
	"context"

	"github.com/mkopo/chama_management_app/internal/core/domain"
	"github.com/mkopo/chama_management_app/internal/dto"
)

// PerformanceReaderSvc defines read operations for performance data
type PerformanceReaderSvc interface {
	// ListGroupPerformances retrieves a group's live records with the group name.
	ListGroupPerformances(ctx context.Context, groupID int64) (*dto.GroupPerformancesResponse, error)

	// GetGroupPerformance retrieves one live record by ID.
	GetGroupPerformance(ctx context.Context, id int64) (*domain.GroupMonthlyPerformance, error)

	// ListMonthlyPerformances retrieves all monthly sheets.
	ListMonthlyPerformances(ctx context.Context) ([]domain.MonthlyPerformance, error)

	// FilterGroupPerformances retrieves live records matching the filter.
	// At least one filter field must be set.
	FilterGroupPerformances(ctx context.Context, req dto.PerformanceFilterRequest) ([]domain.GroupMonthlyPerformance, error)

	// FilterMonthlyPerformances retrieves monthly sheets matching the filter.
	// At least one filter field must be set.
	FilterMonthlyPerformances(ctx context.Context, req dto.PerformanceFilterRequest) ([]domain.MonthlyPerformance, error)

	// GetMemberSummary aggregates member details and totals for dashboards,
	// greeting the requesting user by first name.
	GetMemberSummary(ctx context.Context, requestingUserID int64) (*dto.MemberSummaryResponse, error)
}

// PerformanceWriterSvc defines write operations for performance data
type PerformanceWriterSvc interface {
	// CreateOrUpdateGroupPerformance resolves and persists one member's
	// payment entry, computing interest, principal and carry-forward values.
	CreateOrUpdateGroupPerformance(ctx context.Context, req dto.CreateGroupPerformanceRequest) (*domain.GroupMonthlyPerformance, error)

	// UpsertMonthlyPerformance creates or updates a group's monthly sheet.
	UpsertMonthlyPerformance(ctx context.Context, req dto.UpsertMonthlyPerformanceRequest) (*domain.MonthlyPerformance, error)

	// UpdateGroupPerformance applies a partial admin edit to a live record
	// without recalculating derived values.
	UpdateGroupPerformance(ctx context.Context, id int64, req dto.UpdateGroupPerformanceRequest) (*domain.GroupMonthlyPerformance, error)

	// UpdateMonthlyPerformance applies a partial admin edit to a sheet.
	UpdateMonthlyPerformance(ctx context.Context, id int64, req dto.UpdateMonthlyPerformanceRequest) (*domain.MonthlyPerformance, error)
}

// PerformanceSvcFacade combines all performance-related service interfaces
type PerformanceSvcFacade interface {
	PerformanceReaderSvc
	PerformanceWriterSvc
}
