package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Advance is the database row for a cash advance.
type Advance struct {
	ID             int64           `db:"id"`
	MemberName     string          `db:"member_name"`
	InitialAmount  decimal.Decimal `db:"initial_amount"`
	PaymentAmount  decimal.Decimal `db:"payment_amount"`
	InterestRate   decimal.Decimal `db:"interest_rate"`
	PaidAmount     decimal.Decimal `db:"paid_amount"`
	TotalAmountDue decimal.Decimal `db:"total_amount_due"`
	IsPaid         bool            `db:"is_paid"`
	Status         string          `db:"status"`
	GroupID        int64           `db:"group_id"`
	UserID         int64           `db:"user_id"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

// MonthlyAdvanceCredit is the database row for a manual credit ledger entry.
type MonthlyAdvanceCredit struct {
	ID                 int64           `db:"id"`
	GroupID            int64           `db:"group_id"`
	GroupName          string          `db:"group_name"`
	Date               time.Time       `db:"date"`
	TotalAdvanceAmount decimal.Decimal `db:"total_advance_amount"`
	Deductions         decimal.Decimal `db:"deductions"`
}
