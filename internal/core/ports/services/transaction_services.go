package services

import (
	"context"

	"github.com/mkopo/chama_management_app/internal/core/domain"
	"github.com/mkopo/chama_management_app/internal/dto"
)

// TransactionSvcFacade defines audit transaction operations.
type TransactionSvcFacade interface {
	// CreateTransaction records a manual audit transaction for a user.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID int64) (*domain.Transaction, error)

	// GetTransaction retrieves a transaction by ID.
	GetTransaction(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// ListTransactions retrieves a page of a user's transactions, newest
	// first. An empty cursor starts from the most recent transaction.
	ListTransactions(ctx context.Context, userID int64, cursor string, limit int32) (*dto.ListTransactionsResponse, error)
}
