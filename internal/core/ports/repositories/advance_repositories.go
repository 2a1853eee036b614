package repositories

import (
	"context"

	"github.com/mkopo/chama_management_app/internal/core/domain"
)

// AdvanceReader defines read operations for advance data
type AdvanceReader interface {
	// FindAdvanceByID retrieves an advance by ID, or apperrors.ErrNotFound.
	FindAdvanceByID(ctx context.Context, advanceID int64) (*domain.Advance, error)

	// ListAdvancesByGroup retrieves every advance of a group regardless of status.
	ListAdvancesByGroup(ctx context.Context, groupID int64) ([]domain.Advance, error)

	// ListPendingAdvancesByGroup retrieves the group's advances still pending.
	ListPendingAdvancesByGroup(ctx context.Context, groupID int64) ([]domain.Advance, error)

	// ListAdvancesByUser retrieves all advances created by a user.
	ListAdvancesByUser(ctx context.Context, userID int64) ([]domain.Advance, error)
}

// AdvanceWriter defines write operations for advance data
type AdvanceWriter interface {
	// SaveAdvance inserts a new advance and returns its identifier.
	SaveAdvance(ctx context.Context, advance domain.Advance) (int64, error)

	// UpdateAdvance overwrites the mutable fields of an advance.
	UpdateAdvance(ctx context.Context, advance domain.Advance) error

	// ApplyPayment persists the updated advance and its audit transaction in
	// one database transaction. Neither is visible unless both commit.
	ApplyPayment(ctx context.Context, advance domain.Advance, txn domain.Transaction) error
}

// AdvanceRepositoryFacade combines all advance repository interfaces
type AdvanceRepositoryFacade interface {
	AdvanceReader
	AdvanceWriter
}

// AdvanceCreditRepositoryFacade manages the manual monthly advance credit ledger.
type AdvanceCreditRepositoryFacade interface {
	// FindCreditByGroupID retrieves any credit entry for the group, or
	// apperrors.ErrNotFound. Used as the group registry for advance exports.
	FindCreditByGroupID(ctx context.Context, groupID int64) (*domain.MonthlyAdvanceCredit, error)

	// SaveCredit inserts a new ledger entry and returns its identifier.
	SaveCredit(ctx context.Context, credit domain.MonthlyAdvanceCredit) (int64, error)

	// ListCredits retrieves all ledger entries.
	ListCredits(ctx context.Context) ([]domain.MonthlyAdvanceCredit, error)
}
