package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mkopo/chama_management_app/internal/apperrors"
	"github.com/mkopo/chama_management_app/internal/core/domain"
	portsrepo "github.com/mkopo/chama_management_app/internal/core/ports/repositories"
	portssvc "github.com/mkopo/chama_management_app/internal/core/ports/services"
	"github.com/mkopo/chama_management_app/internal/dto"
	"github.com/mkopo/chama_management_app/internal/utils/pagination"
)

const (
	defaultTransactionPageSize int32 = 50
	maxTransactionPageSize     int32 = 200
)

// transactionService implements manual audit transaction entry and lookup.
type transactionService struct {
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction records a manual audit transaction for a user.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID int64) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	txn := domain.Transaction{
		Amount:         req.Amount,
		Description:    req.Description,
		Timestamp:      time.Now().UTC(),
		UserID:         userID,
		TransactionRef: domain.NewTransactionRef(),
	}

	id, err := s.txnRepo.SaveTransaction(ctx, txn)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	txn.ID = id
	return &txn, nil
}

// GetTransaction retrieves a transaction by ID.
func (s *transactionService) GetTransaction(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %d: %w", transactionID, err)
	}
	return txn, nil
}

// ListTransactions retrieves a page of a user's transactions, newest first.
func (s *transactionService) ListTransactions(ctx context.Context, userID int64, cursor string, limit int32) (*dto.ListTransactionsResponse, error) {
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}
	if limit > maxTransactionPageSize {
		limit = maxTransactionPageSize
	}

	var before time.Time
	var beforeID int64
	if cursor != "" {
		var err error
		before, beforeID, err = pagination.DecodeCursor(cursor)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}

	// Fetch one extra row to know whether another page exists.
	txns, err := s.txnRepo.ListTransactionsByUser(ctx, userID, before, beforeID, limit+1)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %d: %w", userID, err)
	}

	resp := &dto.ListTransactionsResponse{Transactions: txns}
	if int32(len(txns)) > limit {
		resp.Transactions = txns[:limit]
		last := resp.Transactions[limit-1]
		resp.NextCursor = pagination.EncodeCursor(last.Timestamp, last.ID)
	}
	if resp.Transactions == nil {
		resp.Transactions = []domain.Transaction{}
	}
	return resp, nil
}
