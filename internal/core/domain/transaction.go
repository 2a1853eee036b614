package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is an audit record of money movement, created alongside advance
// payments and available for manual entry. AdvanceID is set when the
// transaction was produced by an advance payment.
type Transaction struct {
	ID             int64           `json:"id"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	Timestamp      time.Time       `json:"timestamp"`
	UserID         int64           `json:"userID"`
	AdvanceID      *int64          `json:"advanceID,omitempty"`
	IsFlagged      bool            `json:"isFlagged"`
	TransactionRef string          `json:"transactionRef"`
}

// NewTransactionRef generates a unique reference of the form "TX1234ABCD".
func NewTransactionRef() string {
	return "TX" + strings.ToUpper(uuid.NewString()[:8])
}
