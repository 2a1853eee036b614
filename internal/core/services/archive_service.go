package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkopo/chama_management_app/internal/apperrors"
	"github.com/mkopo/chama_management_app/internal/core/domain"
	portsrepo "github.com/mkopo/chama_management_app/internal/core/ports/repositories"
	portssvc "github.com/mkopo/chama_management_app/internal/core/ports/services"
	"github.com/mkopo/chama_management_app/internal/dto"
	"github.com/mkopo/chama_management_app/internal/middleware"
)

// unknownGroupName is recorded when a group's name cannot be resolved at
// archival time.
const unknownGroupName = "Unknown Group"

// archiveService implements the period rollover and the monthly advance
// export.
type archiveService struct {
	historyRepo    portsrepo.HistoryRepositoryFacade
	advanceArchive portsrepo.AdvanceArchiveRepositoryFacade
	perfRepo       portsrepo.GroupPerformanceRepositoryFacade
	monthlyRepo    portsrepo.MonthlyPerformanceRepositoryFacade
	advanceRepo    portsrepo.AdvanceRepositoryFacade
	advanceCredits portsrepo.AdvanceCreditRepositoryFacade
	userRepo       portsrepo.UserRepositoryFacade
}

// NewArchiveService creates a new archive service.
func NewArchiveService(
	historyRepo portsrepo.HistoryRepositoryFacade,
	advanceArchive portsrepo.AdvanceArchiveRepositoryFacade,
	perfRepo portsrepo.GroupPerformanceRepositoryFacade,
	monthlyRepo portsrepo.MonthlyPerformanceRepositoryFacade,
	advanceRepo portsrepo.AdvanceRepositoryFacade,
	advanceCredits portsrepo.AdvanceCreditRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
) portssvc.ArchiveSvcFacade {
	return &archiveService{
		historyRepo:    historyRepo,
		advanceArchive: advanceArchive,
		perfRepo:       perfRepo,
		monthlyRepo:    monthlyRepo,
		advanceRepo:    advanceRepo,
		advanceCredits: advanceCredits,
		userRepo:       userRepo,
	}
}

var _ portssvc.ArchiveSvcFacade = (*archiveService)(nil)

// GenerateForm closes a group's current period. It snapshots every live
// record into the archive with the closing CF values promoted to BF columns,
// then replaces the live rows with carry-forward resets. The entire rollover
// commits in one database transaction.
func (s *archiveService) GenerateForm(ctx context.Context, groupID int64, actingUserID int64) (*dto.GenerateFormResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByID(ctx, actingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve acting user %d: %w", actingUserID, err)
	}

	records, err := s.perfRepo.ListPerformancesByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list performances for group %d: %w", groupID, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records found for group %d", apperrors.ErrNotFound, groupID)
	}

	groupName := unknownGroupName
	group, err := s.monthlyRepo.FindGroupByID(ctx, groupID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve group %d: %w", groupID, err)
	}
	if group != nil {
		groupName = group.GroupName
	}

	now := time.Now().UTC()
	history := domain.History{
		GroupName: groupName,
		Date:      now,
		CreatedBy: user.Username,
		UpdatedAt: now,
	}

	snapshots := make([]domain.FormRecord, 0, len(records))
	resets := make([]domain.GroupMonthlyPerformance, 0, len(records))
	for _, rec := range records {
		snapshots = append(snapshots, domain.FormRecord{
			GroupID:         rec.GroupID,
			MemberDetails:   rec.MemberDetails,
			SavingsSharesBF: rec.SavingsSharesCF,
			LoanBalanceBF:   rec.LoanCF,
			TotalPaid:       rec.TotalPaid,
			Principal:       rec.Principal,
			LoanInterest:    rec.LoanInterest,
			ThisMonthShares: rec.ThisMonthShares,
			FineAndCharges:  rec.FineAndCharges,
			SavingsSharesCF: rec.SavingsSharesCF,
			LoanCF:          rec.LoanCF,
			Month:           rec.Month,
			Year:            rec.Year,
			CreatedAt:       now,
		})
		resets = append(resets, domain.GroupMonthlyPerformance{
			GroupID:         rec.GroupID,
			MemberDetails:   rec.MemberDetails,
			SavingsSharesBF: rec.SavingsSharesCF,
			LoanBalanceBF:   rec.LoanCF,
			TotalPaid:       decimal.Zero,
			Principal:       decimal.Zero,
			LoanInterest:    decimal.Zero,
			ThisMonthShares: decimal.Zero,
			FineAndCharges:  decimal.Zero,
			SavingsSharesCF: rec.SavingsSharesCF,
			LoanCF:          rec.LoanCF,
			Month:           rec.Month,
			Year:            rec.Year,
		})
	}

	historyID, err := s.historyRepo.ArchiveGroupPerformance(ctx, history, snapshots, resets, groupID)
	if err != nil {
		logger.Error("Failed to archive group performance", slog.Int64("group_id", groupID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to archive group %d: %w", groupID, err)
	}

	logger.Info("Group period archived", slog.Int64("history_id", historyID), slog.Int64("group_id", groupID), slog.Int("records", len(snapshots)))
	return &dto.GenerateFormResponse{
		HistoryID:            historyID,
		RecordsArchivedCount: len(snapshots),
	}, nil
}

// GenerateMonthlyAdvanceForm exports a group's advances as point-in-time
// copies and upserts the day's summary. Live advances keep accepting
// payments; nothing is reset.
func (s *archiveService) GenerateMonthlyAdvanceForm(ctx context.Context, groupID int64, actingUserID int64) (*domain.AdvanceSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.userRepo.FindUserByID(ctx, actingUserID); err != nil {
		return nil, fmt.Errorf("failed to resolve acting user %d: %w", actingUserID, err)
	}

	credit, err := s.advanceCredits.FindCreditByGroupID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve advance credit for group %d: %w", groupID, err)
	}

	advances, err := s.advanceRepo.ListAdvancesByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances for group %d: %w", groupID, err)
	}
	if len(advances) == 0 {
		return nil, fmt.Errorf("%w: no advances found for group %d", apperrors.ErrNotFound, groupID)
	}

	entries := make([]domain.AdvanceHistory, 0, len(advances))
	for _, adv := range advances {
		entries = append(entries, domain.AdvanceHistory{
			MemberName:     adv.MemberName,
			InitialAmount:  adv.InitialAmount,
			PaymentAmount:  adv.PaymentAmount,
			InterestRate:   adv.InterestRate,
			PaidAmount:     adv.PaidAmount,
			TotalAmountDue: adv.TotalAmountDue,
			IsPaid:         adv.IsPaid,
			Status:         adv.Status,
			GroupID:        adv.GroupID,
			UserID:         adv.UserID,
			CreatedAt:      adv.CreatedAt,
			UpdatedAt:      adv.UpdatedAt,
		})
	}

	now := time.Now().UTC()
	summary := domain.AdvanceSummary{
		GroupName:     credit.GroupName,
		Date:          time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		TotalAdvances: len(entries),
	}

	stored, err := s.advanceArchive.ArchiveAdvances(ctx, entries, summary)
	if err != nil {
		logger.Error("Failed to export advances", slog.Int64("group_id", groupID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to export advances for group %d: %w", groupID, err)
	}

	logger.Info("Advances exported", slog.Int64("group_id", groupID), slog.Int("count", stored.TotalAdvances), slog.String("group_name", stored.GroupName))
	return stored, nil
}

// ListHistories retrieves all archival headers.
func (s *archiveService) ListHistories(ctx context.Context) ([]domain.History, error) {
	histories, err := s.historyRepo.ListHistories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list histories: %w", err)
	}
	if histories == nil {
		histories = []domain.History{}
	}
	return histories, nil
}

// GetFormRecords retrieves the snapshots owned by a history entry.
func (s *archiveService) GetFormRecords(ctx context.Context, historyID int64) ([]domain.FormRecord, error) {
	records, err := s.historyRepo.FindFormRecordsByHistoryID(ctx, historyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get form records for history %d: %w", historyID, err)
	}
	return records, nil
}

// QueryAdvanceHistory retrieves archived advance copies for a group.
func (s *archiveService) QueryAdvanceHistory(ctx context.Context, groupID int64) ([]domain.AdvanceHistory, error) {
	entries, err := s.advanceArchive.ListAdvanceHistoryByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list advance history for group %d: %w", groupID, err)
	}
	if entries == nil {
		entries = []domain.AdvanceHistory{}
	}
	return entries, nil
}

// QueryAdvanceSummaries retrieves summaries filtered by optional group name
// and date.
func (s *archiveService) QueryAdvanceSummaries(ctx context.Context, groupName string, date *time.Time) ([]domain.AdvanceSummary, error) {
	summaries, err := s.advanceArchive.ListAdvanceSummaries(ctx, groupName, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list advance summaries: %w", err)
	}
	if summaries == nil {
		summaries = []domain.AdvanceSummary{}
	}
	return summaries, nil
}
