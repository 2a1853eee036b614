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

var (
	ErrAdvanceAlreadyPaid    = errors.New("advance is already fully paid")
	ErrNonPositivePayment    = errors.New("payment amount must be positive")
	ErrNonPositiveAdvance    = errors.New("initial amount must be positive")
	ErrGroupWithoutMembers   = errors.New("group has no performance records")
	ErrInvalidDateFormat     = errors.New("date must be in YYYY-MM-DD format")
	ErrNegativeCreditAmounts = errors.New("credit amounts cannot be negative")
	ErrNegativePaidAmount    = errors.New("paid amount cannot be negative")
)

// advanceService implements the cash advance lifecycle: issue at a fixed
// interest schedule, collect payments, and keep the manual credit ledger.
type advanceService struct {
	advanceRepo portsrepo.AdvanceRepositoryFacade
	creditRepo  portsrepo.AdvanceCreditRepositoryFacade
	perfRepo    portsrepo.GroupPerformanceRepositoryFacade
	monthlyRepo portsrepo.MonthlyPerformanceRepositoryFacade
}

// NewAdvanceService creates a new advance service.
func NewAdvanceService(advanceRepo portsrepo.AdvanceRepositoryFacade, creditRepo portsrepo.AdvanceCreditRepositoryFacade, perfRepo portsrepo.GroupPerformanceRepositoryFacade, monthlyRepo portsrepo.MonthlyPerformanceRepositoryFacade) portssvc.AdvanceSvcFacade {
	return &advanceService{
		advanceRepo: advanceRepo,
		creditRepo:  creditRepo,
		perfRepo:    perfRepo,
		monthlyRepo: monthlyRepo,
	}
}

var _ portssvc.AdvanceSvcFacade = (*advanceService)(nil)

// CreateAdvance issues a pending advance for a member of a group that has at
// least one live performance record. The payment schedule is fixed: interest
// is AdvanceInterestRate percent of the initial amount.
func (s *advanceService) CreateAdvance(ctx context.Context, req dto.CreateAdvanceRequest, creatorUserID int64) (*domain.Advance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.InitialAmount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNonPositiveAdvance)
	}

	hasMembers, err := s.perfRepo.HasPerformancesForGroup(ctx, req.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate group %d: %w", req.GroupID, err)
	}
	if !hasMembers {
		return nil, fmt.Errorf("%w: %s: group %d", apperrors.ErrValidation, ErrGroupWithoutMembers, req.GroupID)
	}

	rate := decimal.NewFromInt(domain.AdvanceInterestRate).Div(decimal.NewFromInt(100))
	paymentAmount := req.InitialAmount.Mul(rate)

	now := time.Now().UTC()
	advance := domain.Advance{
		MemberName:     req.MemberName,
		InitialAmount:  req.InitialAmount,
		PaymentAmount:  paymentAmount,
		InterestRate:   decimal.NewFromInt(domain.AdvanceInterestRate),
		PaidAmount:     decimal.Zero,
		TotalAmountDue: req.InitialAmount.Add(paymentAmount),
		IsPaid:         false,
		Status:         domain.AdvancePending,
		GroupID:        req.GroupID,
		UserID:         creatorUserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	id, err := s.advanceRepo.SaveAdvance(ctx, advance)
	if err != nil {
		logger.Error("Failed to create advance", slog.Int64("group_id", req.GroupID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create advance: %w", err)
	}
	advance.ID = id
	logger.Info("Advance created", slog.Int64("id", id), slog.String("member", advance.MemberName), slog.String("total_due", advance.TotalAmountDue.String()))
	return &advance, nil
}

// MakePayment applies a payment to a pending advance. A payment that would
// exceed the total due is clamped to the outstanding balance; when the total
// is reached the advance is completed. The audit transaction is written in
// the same database transaction as the advance row.
func (s *advanceService) MakePayment(ctx context.Context, advanceID int64, paymentAmount decimal.Decimal, payerUserID int64) (*domain.Advance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !paymentAmount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNonPositivePayment)
	}

	advance, err := s.advanceRepo.FindAdvanceByID(ctx, advanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find advance %d: %w", advanceID, err)
	}
	if advance.IsPaid {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAdvanceAlreadyPaid)
	}

	applied := paymentAmount
	newPaid := advance.PaidAmount.Add(paymentAmount)
	if newPaid.GreaterThan(advance.TotalAmountDue) {
		applied = advance.TotalAmountDue.Sub(advance.PaidAmount)
		newPaid = advance.TotalAmountDue
	}

	advance.PaidAmount = newPaid
	if newPaid.GreaterThanOrEqual(advance.TotalAmountDue) {
		advance.IsPaid = true
		advance.Status = domain.AdvanceCompleted
	}
	advance.UpdatedAt = time.Now().UTC()

	txn := domain.Transaction{
		Amount:         applied,
		Description:    fmt.Sprintf("Payment of %s towards advance %d", applied.String(), advance.ID),
		Timestamp:      advance.UpdatedAt,
		UserID:         payerUserID,
		AdvanceID:      &advance.ID,
		TransactionRef: domain.NewTransactionRef(),
	}

	if err := s.advanceRepo.ApplyPayment(ctx, *advance, txn); err != nil {
		logger.Error("Failed to apply advance payment", slog.Int64("advance_id", advanceID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to apply payment to advance %d: %w", advanceID, err)
	}
	logger.Info("Advance payment applied", slog.Int64("advance_id", advanceID), slog.String("amount", applied.String()), slog.String("status", string(advance.Status)))
	return advance, nil
}

// UpdateAdvance adds the given delta to the advance's paid amount. Negative
// deltas are rejected; reaching the total due completes the advance.
func (s *advanceService) UpdateAdvance(ctx context.Context, advanceID int64, req dto.UpdateAdvanceRequest) (*domain.Advance, error) {
	if req.PaidAmount.IsNegative() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNegativePaidAmount)
	}

	advance, err := s.advanceRepo.FindAdvanceByID(ctx, advanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find advance %d: %w", advanceID, err)
	}

	advance.PaidAmount = advance.PaidAmount.Add(req.PaidAmount)
	if advance.PaidAmount.GreaterThanOrEqual(advance.TotalAmountDue) {
		advance.IsPaid = true
		advance.Status = domain.AdvanceCompleted
	}
	advance.UpdatedAt = time.Now().UTC()

	if err := s.advanceRepo.UpdateAdvance(ctx, *advance); err != nil {
		return nil, fmt.Errorf("failed to update advance %d: %w", advanceID, err)
	}
	return advance, nil
}

// GetAdvance retrieves an advance by ID.
func (s *advanceService) GetAdvance(ctx context.Context, advanceID int64) (*domain.Advance, error) {
	advance, err := s.advanceRepo.FindAdvanceByID(ctx, advanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find advance %d: %w", advanceID, err)
	}
	return advance, nil
}

// RemainingBalance returns the outstanding amount of an advance.
func (s *advanceService) RemainingBalance(ctx context.Context, advanceID int64) (decimal.Decimal, error) {
	advance, err := s.advanceRepo.FindAdvanceByID(ctx, advanceID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to find advance %d: %w", advanceID, err)
	}
	return advance.RemainingBalance(), nil
}

// ListAdvancesByGroup retrieves a group's pending advances with the resolved
// group name.
func (s *advanceService) ListAdvancesByGroup(ctx context.Context, groupID int64) (*dto.GroupAdvancesResponse, error) {
	group, err := s.monthlyRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve group %d: %w", groupID, err)
	}

	advances, err := s.advanceRepo.ListPendingAdvancesByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances for group %d: %w", groupID, err)
	}
	if advances == nil {
		advances = []domain.Advance{}
	}

	return &dto.GroupAdvancesResponse{
		GroupName: group.GroupName,
		Advances:  advances,
	}, nil
}

// ListAdvancesForUser retrieves the advances recorded by a user.
func (s *advanceService) ListAdvancesForUser(ctx context.Context, userID int64) ([]domain.Advance, error) {
	advances, err := s.advanceRepo.ListAdvancesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances for user %d: %w", userID, err)
	}
	if advances == nil {
		advances = []domain.Advance{}
	}
	return advances, nil
}

// CreateAdvanceCredit records a manual monthly advance credit entry.
func (s *advanceService) CreateAdvanceCredit(ctx context.Context, req dto.CreateAdvanceCreditRequest) (*domain.MonthlyAdvanceCredit, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrInvalidDateFormat)
	}
	if req.TotalAdvanceAmount.IsNegative() || req.Deductions.IsNegative() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNegativeCreditAmounts)
	}

	credit := domain.MonthlyAdvanceCredit{
		GroupID:            req.GroupID,
		GroupName:          req.GroupName,
		Date:               date,
		TotalAdvanceAmount: req.TotalAdvanceAmount,
		Deductions:         req.Deductions,
	}

	id, err := s.creditRepo.SaveCredit(ctx, credit)
	if err != nil {
		logger.Error("Failed to create advance credit", slog.Int64("group_id", req.GroupID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create advance credit: %w", err)
	}
	credit.ID = id
	logger.Info("Advance credit created", slog.Int64("id", id), slog.String("group_name", credit.GroupName))
	return &credit, nil
}

// ListAdvanceCredits retrieves all manual credit entries.
func (s *advanceService) ListAdvanceCredits(ctx context.Context) ([]domain.MonthlyAdvanceCredit, error) {
	credits, err := s.creditRepo.ListCredits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list advance credits: %w", err)
	}
	if credits == nil {
		credits = []domain.MonthlyAdvanceCredit{}
	}
	return credits, nil
}
