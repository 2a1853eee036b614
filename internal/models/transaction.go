package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database row for an audit transaction.
type Transaction struct {
	ID             int64           `db:"id"`
	Amount         decimal.Decimal `db:"amount"`
	Description    string          `db:"description"`
	Timestamp      time.Time       `db:"timestamp"`
	UserID         int64           `db:"user_id"`
	AdvanceID      *int64          `db:"advance_id"`
	IsFlagged      bool            `db:"is_flagged"`
	TransactionRef string          `db:"transaction_ref"`
}

// Notification is the database row for an in-app notification.
type Notification struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Message   string    `db:"message"`
	Read      bool      `db:"read"`
	CreatedAt time.Time `db:"created_at"`
}
