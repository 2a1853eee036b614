package repositories

import (
	"context"
	"time"

	"github.com/mkopo/chama_management_app/internal/core/domain"
)

// TransactionReader defines read operations for audit transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by ID, or apperrors.ErrNotFound.
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// ListTransactionsByUser retrieves up to limit transactions for a user,
	// newest first. A zero `before` returns the first page; otherwise only
	// rows strictly older than (before, beforeID) are returned.
	ListTransactionsByUser(ctx context.Context, userID int64, before time.Time, beforeID int64, limit int32) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for audit transaction data
type TransactionWriter interface {
	// SaveTransaction inserts a new transaction and returns its identifier.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error)

	// UpdateTransaction overwrites the mutable fields of a transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
