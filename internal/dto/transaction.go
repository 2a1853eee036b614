package dto

import (
	"github.com/mkopo/chama_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest carries a manual audit transaction entry.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// ListTransactionsResponse is a page of a user's transactions. NextCursor is
// empty on the last page.
type ListTransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	NextCursor   string               `json:"next_cursor,omitempty"`
}
