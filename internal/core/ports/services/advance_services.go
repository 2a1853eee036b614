package services

import (
	"context"

	"github.com/mkopo/chama_management_app/internal/core/domain"
	"github.com/mkopo/chama_management_app/internal/dto"
	"github.com/shopspring/decimal"
)

// AdvanceReaderSvc defines read operations for advance data
type AdvanceReaderSvc interface {
	// GetAdvance retrieves an advance by ID.
	GetAdvance(ctx context.Context, advanceID int64) (*domain.Advance, error)

	// RemainingBalance returns the outstanding amount of an advance.
	RemainingBalance(ctx context.Context, advanceID int64) (decimal.Decimal, error)

	// ListAdvancesByGroup retrieves a group's pending advances with the group name.
	ListAdvancesByGroup(ctx context.Context, groupID int64) (*dto.GroupAdvancesResponse, error)

	// ListAdvancesForUser retrieves the advances recorded by a user.
	ListAdvancesForUser(ctx context.Context, userID int64) ([]domain.Advance, error)
}

// AdvanceWriterSvc defines write operations for advance data
type AdvanceWriterSvc interface {
	// CreateAdvance validates the group and creates a pending advance with
	// the fixed interest schedule.
	CreateAdvance(ctx context.Context, req dto.CreateAdvanceRequest, creatorUserID int64) (*domain.Advance, error)

	// MakePayment applies a payment to a pending advance and records the
	// audit transaction atomically.
	MakePayment(ctx context.Context, advanceID int64, paymentAmount decimal.Decimal, payerUserID int64) (*domain.Advance, error)

	// UpdateAdvance adds a delta to the advance's paid amount.
	UpdateAdvance(ctx context.Context, advanceID int64, req dto.UpdateAdvanceRequest) (*domain.Advance, error)

	// CreateAdvanceCredit records a manual monthly advance credit entry.
	CreateAdvanceCredit(ctx context.Context, req dto.CreateAdvanceCreditRequest) (*domain.MonthlyAdvanceCredit, error)

	// ListAdvanceCredits retrieves all manual credit entries.
	ListAdvanceCredits(ctx context.Context) ([]domain.MonthlyAdvanceCredit, error)
}

// AdvanceSvcFacade combines all advance-related service interfaces
type AdvanceSvcFacade interface {
	AdvanceReaderSvc
	AdvanceWriterSvc
}
