package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mkopo/chama_management_app/internal/apperrors"
	"github.com/mkopo/chama_management_app/internal/core/domain"
	portsrepo "github.com/mkopo/chama_management_app/internal/core/ports/repositories"
	portssvc "github.com/mkopo/chama_management_app/internal/core/ports/services"
	"github.com/mkopo/chama_management_app/internal/dto"
	"github.com/mkopo/chama_management_app/internal/middleware"
	"github.com/mkopo/chama_management_app/internal/utils/money"
)

var (
	ErrSharesExceedTotalPaid = errors.New("this_month_shares cannot be greater than total_paid")
	ErrNegativeTotalPaid     = errors.New("total_paid cannot be negative")
	ErrInvalidMonth          = errors.New("invalid month name")
	ErrInvalidGroupID        = errors.New("invalid group ID")
	ErrNoFilterParams        = errors.New("no filter parameters provided")
)

// monthlyLoanInterestRate is the interest charged on the brought-forward loan
// balance each period (1.5%).
var monthlyLoanInterestRate = decimal.RequireFromString("0.015")

// performanceService implements the group performance calculator and the
// per-group monthly sheet upsert.
type performanceService struct {
	groupPerfRepo portsrepo.GroupPerformanceRepositoryFacade
	monthlyRepo   portsrepo.MonthlyPerformanceRepositoryFacade
	userRepo      portsrepo.UserRepositoryFacade
}

// NewPerformanceService creates a new performance service.
func NewPerformanceService(groupPerfRepo portsrepo.GroupPerformanceRepositoryFacade, monthlyRepo portsrepo.MonthlyPerformanceRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.PerformanceSvcFacade {
	return &performanceService{
		groupPerfRepo: groupPerfRepo,
		monthlyRepo:   monthlyRepo,
		userRepo:      userRepo,
	}
}

var _ portssvc.PerformanceSvcFacade = (*performanceService)(nil)

// CreateOrUpdateGroupPerformance resolves one member's payment entry for a
// period. When a record already exists for (group, member, month, year) its
// carried-forward balances become this period's brought-forward balances and
// the record is overwritten in place; otherwise a new record is created.
func (s *performanceService) CreateOrUpdateGroupPerformance(ctx context.Context, req dto.CreateGroupPerformanceRequest) (*domain.GroupMonthlyPerformance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.IsValidMonth(req.Month) {
		return nil, fmt.Errorf("%w: %s: %s", apperrors.ErrValidation, ErrInvalidMonth, req.Month)
	}
	if req.TotalPaid.IsNegative() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNegativeTotalPaid)
	}

	// Every monetary input is normalized to a multiple of five on ingestion.
	totalPaid := money.RoundToNearestFive(req.TotalPaid)
	thisMonthShares := money.RoundToNearestFive(req.ThisMonthShares)
	fineAndCharges := money.RoundToNearestFive(req.FineAndCharges)
	savingsSharesBF := money.RoundToNearestFive(req.SavingsSharesBF)
	loanBalanceBF := money.RoundToNearestFive(req.LoanBalanceBF)

	if thisMonthShares.GreaterThan(totalPaid) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrSharesExceedTotalPaid)
	}

	if _, err := s.monthlyRepo.FindGroupByID(ctx, req.GroupID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s %d", apperrors.ErrValidation, ErrInvalidGroupID, req.GroupID)
		}
		return nil, fmt.Errorf("failed to resolve group %d: %w", req.GroupID, err)
	}

	existing, err := s.groupPerfRepo.FindPerformanceByPeriod(ctx, req.GroupID, req.MemberDetails, req.Month, req.Year)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up existing performance: %w", err)
	}

	if existing != nil {
		// Update path: the stored carried-forward balances are this period's
		// brought-forward balances. The payload's bf values are ignored.
		savingsSharesBF = money.RoundToNearestFive(existing.SavingsSharesCF)
		loanBalanceBF = money.RoundToNearestFive(existing.LoanCF)

		result := resolvePeriod(totalPaid, thisMonthShares, savingsSharesBF, loanBalanceBF)

		existing.SavingsSharesBF = savingsSharesBF
		existing.LoanBalanceBF = loanBalanceBF
		existing.TotalPaid = totalPaid
		existing.Principal = result.principal
		existing.LoanInterest = result.loanInterest
		existing.ThisMonthShares = result.thisMonthShares
		existing.FineAndCharges = fineAndCharges
		existing.SavingsSharesCF = result.savingsSharesCF
		existing.LoanCF = result.loanCF

		if err := s.groupPerfRepo.UpdatePerformance(ctx, *existing); err != nil {
			logger.Error("Failed to update group performance", slog.Int64("group_id", req.GroupID), slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to update group performance: %w", err)
		}
		logger.Info("Group performance updated", slog.Int64("id", existing.ID), slog.Int64("group_id", existing.GroupID))
		return existing, nil
	}

	record := domain.GroupMonthlyPerformance{
		GroupID:         req.GroupID,
		MemberDetails:   req.MemberDetails,
		SavingsSharesBF: savingsSharesBF,
		LoanBalanceBF:   loanBalanceBF,
		TotalPaid:       totalPaid,
		FineAndCharges:  fineAndCharges,
		Month:           req.Month,
		Year:            req.Year,
	}

	if savingsSharesBF.IsZero() && loanBalanceBF.IsZero() {
		// Brand-new member with no history: the whole payment carries to
		// savings; no interest or principal applies.
		record.LoanInterest = decimal.Zero
		record.Principal = decimal.Zero
		record.LoanCF = decimal.Zero
		record.ThisMonthShares = thisMonthShares
		record.SavingsSharesCF = totalPaid
	} else {
		result := resolvePeriod(totalPaid, thisMonthShares, savingsSharesBF, loanBalanceBF)
		record.LoanInterest = result.loanInterest
		record.Principal = result.principal
		record.ThisMonthShares = result.thisMonthShares
		record.SavingsSharesCF = result.savingsSharesCF
		record.LoanCF = result.loanCF
	}

	id, err := s.groupPerfRepo.SavePerformance(ctx, record)
	if err != nil {
		logger.Error("Failed to create group performance", slog.Int64("group_id", req.GroupID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create group performance: %w", err)
	}
	record.ID = id
	logger.Info("Group performance created", slog.Int64("id", id), slog.Int64("group_id", record.GroupID))
	return &record, nil
}

// periodResult holds the resolved flow values of one period computation.
type periodResult struct {
	loanInterest    decimal.Decimal
	principal       decimal.Decimal
	thisMonthShares decimal.Decimal
	savingsSharesCF decimal.Decimal
	loanCF          decimal.Decimal
}

// resolvePeriod applies the interest/principal/carry-forward rules to one
// member's payment. Interest is charged on the brought-forward loan balance;
// whatever the payment does not cover as shares or interest repays principal.
// Principal never goes negative and never exceeds the loan balance; the
// excess folds back into this month's shares in either case.
func resolvePeriod(totalPaid, thisMonthShares, savingsSharesBF, loanBalanceBF decimal.Decimal) periodResult {
	loanInterest := money.RoundToNearestFive(loanBalanceBF.Mul(monthlyLoanInterestRate))
	principal := money.RoundToNearestFive(totalPaid.Sub(thisMonthShares).Sub(loanInterest))

	if principal.IsNegative() {
		principal = decimal.Zero
		thisMonthShares = money.RoundToNearestFive(totalPaid.Sub(loanInterest))
	}

	loanCF := money.RoundToNearestFive(loanBalanceBF.Sub(principal))
	if loanCF.IsNegative() {
		principal = money.RoundToNearestFive(loanBalanceBF)
		loanCF = decimal.Zero
		thisMonthShares = money.RoundToNearestFive(totalPaid.Sub(principal).Sub(loanInterest))
	}

	savingsSharesCF := money.RoundToNearestFive(savingsSharesBF.Add(thisMonthShares))

	return periodResult{
		loanInterest:    loanInterest,
		principal:       principal,
		thisMonthShares: thisMonthShares,
		savingsSharesCF: savingsSharesCF,
		loanCF:          loanCF,
	}
}

// UpsertMonthlyPerformance creates or updates the per-group monthly sheet
// keyed by (group_name, month, year).
func (s *performanceService) UpsertMonthlyPerformance(ctx context.Context, req dto.UpsertMonthlyPerformanceRequest) (*domain.MonthlyPerformance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.IsValidMonth(req.Month) {
		return nil, fmt.Errorf("%w: %s: %s", apperrors.ErrValidation, ErrInvalidMonth, req.Month)
	}

	sheet := domain.MonthlyPerformance{
		GroupName:      req.GroupName,
		Banking:        money.RoundToNearestFive(req.Banking),
		ServiceFee:     money.RoundToNearestFive(req.ServiceFee),
		LoanForm:       money.RoundToNearestFive(req.LoanForm),
		Passbook:       money.RoundToNearestFive(req.Passbook),
		OfficeDebtPaid: money.RoundToNearestFive(req.OfficeDebtPaid),
		OfficeBanking:  money.RoundToNearestFive(req.OfficeBanking),
		Month:          req.Month,
		Year:           req.Year,
	}

	existing, err := s.monthlyRepo.FindGroupByPeriod(ctx, req.GroupName, req.Month, req.Year)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up monthly performance: %w", err)
	}

	if existing != nil {
		sheet.ID = existing.ID
		if err := s.monthlyRepo.UpdateGroup(ctx, sheet); err != nil {
			return nil, fmt.Errorf("failed to update monthly performance: %w", err)
		}
		logger.Info("Monthly performance updated", slog.Int64("id", sheet.ID), slog.String("group_name", sheet.GroupName))
		return &sheet, nil
	}

	id, err := s.monthlyRepo.SaveGroup(ctx, sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create monthly performance: %w", err)
	}
	sheet.ID = id
	logger.Info("Monthly performance created", slog.Int64("id", id), slog.String("group_name", sheet.GroupName))
	return &sheet, nil
}

// UpdateGroupPerformance applies a partial admin edit to a live record. Only
// the provided fields change; derived values are not recalculated. Monetary
// fields are normalized to a multiple of five like every other ingestion path.
func (s *performanceService) UpdateGroupPerformance(ctx context.Context, id int64, req dto.UpdateGroupPerformanceRequest) (*domain.GroupMonthlyPerformance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Month != nil && !domain.IsValidMonth(*req.Month) {
		return nil, fmt.Errorf("%w: %s: %s", apperrors.ErrValidation, ErrInvalidMonth, *req.Month)
	}

	record, err := s.groupPerfRepo.FindPerformanceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find group performance %d: %w", id, err)
	}

	if req.MemberDetails != nil {
		record.MemberDetails = *req.MemberDetails
	}
	applyMoney(&record.SavingsSharesBF, req.SavingsSharesBF)
	applyMoney(&record.LoanBalanceBF, req.LoanBalanceBF)
	applyMoney(&record.TotalPaid, req.TotalPaid)
	applyMoney(&record.Principal, req.Principal)
	applyMoney(&record.LoanInterest, req.LoanInterest)
	applyMoney(&record.ThisMonthShares, req.ThisMonthShares)
	applyMoney(&record.FineAndCharges, req.FineAndCharges)
	applyMoney(&record.SavingsSharesCF, req.SavingsSharesCF)
	applyMoney(&record.LoanCF, req.LoanCF)
	if req.Month != nil {
		record.Month = *req.Month
	}
	if req.Year != nil {
		record.Year = *req.Year
	}

	if err := s.groupPerfRepo.UpdatePerformance(ctx, *record); err != nil {
		logger.Error("Failed to edit group performance", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to edit group performance %d: %w", id, err)
	}
	logger.Info("Group performance edited", slog.Int64("id", id))
	return record, nil
}

// UpdateMonthlyPerformance applies a partial admin edit to a monthly sheet.
func (s *performanceService) UpdateMonthlyPerformance(ctx context.Context, id int64, req dto.UpdateMonthlyPerformanceRequest) (*domain.MonthlyPerformance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Month != nil && !domain.IsValidMonth(*req.Month) {
		return nil, fmt.Errorf("%w: %s: %s", apperrors.ErrValidation, ErrInvalidMonth, *req.Month)
	}

	sheet, err := s.monthlyRepo.FindGroupByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find monthly performance %d: %w", id, err)
	}

	if req.GroupName != nil {
		sheet.GroupName = *req.GroupName
	}
	applyMoney(&sheet.Banking, req.Banking)
	applyMoney(&sheet.ServiceFee, req.ServiceFee)
	applyMoney(&sheet.LoanForm, req.LoanForm)
	applyMoney(&sheet.Passbook, req.Passbook)
	applyMoney(&sheet.OfficeDebtPaid, req.OfficeDebtPaid)
	applyMoney(&sheet.OfficeBanking, req.OfficeBanking)
	if req.Month != nil {
		sheet.Month = *req.Month
	}
	if req.Year != nil {
		sheet.Year = *req.Year
	}

	if err := s.monthlyRepo.UpdateGroup(ctx, *sheet); err != nil {
		logger.Error("Failed to edit monthly performance", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to edit monthly performance %d: %w", id, err)
	}
	logger.Info("Monthly performance edited", slog.Int64("id", id))
	return sheet, nil
}

// applyMoney overwrites dst with the rounded value when one was provided.
func applyMoney(dst *decimal.Decimal, src *decimal.Decimal) {
	if src != nil {
		*dst = money.RoundToNearestFive(*src)
	}
}

// FilterGroupPerformances retrieves live records matching the filter.
func (s *performanceService) FilterGroupPerformances(ctx context.Context, req dto.PerformanceFilterRequest) ([]domain.GroupMonthlyPerformance, error) {
	if req.Month == "" && req.Year == 0 && req.GroupName == "" {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNoFilterParams)
	}

	records, err := s.groupPerfRepo.FilterPerformances(ctx, req.Month, req.GroupName, req.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to filter group performances: %w", err)
	}
	if records == nil {
		records = []domain.GroupMonthlyPerformance{}
	}
	return records, nil
}

// FilterMonthlyPerformances retrieves monthly sheets matching the filter.
func (s *performanceService) FilterMonthlyPerformances(ctx context.Context, req dto.PerformanceFilterRequest) ([]domain.MonthlyPerformance, error) {
	if req.Month == "" && req.Year == 0 && req.GroupName == "" {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNoFilterParams)
	}

	sheets, err := s.monthlyRepo.FilterGroups(ctx, req.Month, req.GroupName, req.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to filter monthly performances: %w", err)
	}
	if sheets == nil {
		sheets = []domain.MonthlyPerformance{}
	}
	return sheets, nil
}

// ListGroupPerformances retrieves a group's live records with the group name.
func (s *performanceService) ListGroupPerformances(ctx context.Context, groupID int64) (*dto.GroupPerformancesResponse, error) {
	group, err := s.monthlyRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve group %d: %w", groupID, err)
	}

	performances, err := s.groupPerfRepo.ListPerformancesByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group performances: %w", err)
	}
	if len(performances) == 0 {
		return nil, fmt.Errorf("%w: no records found for group %d", apperrors.ErrNotFound, groupID)
	}

	return &dto.GroupPerformancesResponse{
		GroupName:    group.GroupName,
		Performances: performances,
	}, nil
}

// GetGroupPerformance retrieves one live record by ID.
func (s *performanceService) GetGroupPerformance(ctx context.Context, id int64) (*domain.GroupMonthlyPerformance, error) {
	record, err := s.groupPerfRepo.FindPerformanceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get group performance %d: %w", id, err)
	}
	return record, nil
}

// ListMonthlyPerformances retrieves all monthly sheets.
func (s *performanceService) ListMonthlyPerformances(ctx context.Context) ([]domain.MonthlyPerformance, error) {
	sheets, err := s.monthlyRepo.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly performances: %w", err)
	}
	if sheets == nil {
		sheets = []domain.MonthlyPerformance{}
	}
	return sheets, nil
}

// GetMemberSummary aggregates member details and totals for dashboards.
func (s *performanceService) GetMemberSummary(ctx context.Context, requestingUserID int64) (*dto.MemberSummaryResponse, error) {
	summary, err := s.groupPerfRepo.SummarizeMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize members: %w", err)
	}

	memberNames, err := s.groupPerfRepo.ListMemberNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list member names: %w", err)
	}
	if memberNames == nil {
		memberNames = []string{}
	}

	activeUsers, err := s.userRepo.CountActiveUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}

	firstName := "Unknown"
	user, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve requesting user: %w", err)
	}
	if user != nil {
		firstName = user.FirstName()
	}

	return &dto.MemberSummaryResponse{
		MemberNames:          memberNames,
		TotalMemberDetails:   summary.TotalMembers,
		TotalSavingsSharesBF: summary.TotalSavingsSharesBF,
		TotalLoanBalanceBF:   summary.TotalLoanBalanceBF,
		TotalActiveUsers:     activeUsers,
		CurrentFirstName:     firstName,
	}, nil
}
