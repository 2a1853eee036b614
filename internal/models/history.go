package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// History is the database row for an archival run header.
type History struct {
	ID        int64     `db:"id"`
	GroupName string    `db:"group_name"`
	Date      time.Time `db:"date"`
	CreatedBy string    `db:"created_by"`
	UpdatedAt time.Time `db:"updated_at"`
}

// FormRecord is the database row for an archived performance snapshot.
type FormRecord struct {
	ID              int64           `db:"id"`
	HistoryID       int64           `db:"history_id"`
	GroupID         int64           `db:"group_id"`
	MemberDetails   string          `db:"member_details"`
	SavingsSharesBF decimal.Decimal `db:"savings_shares_bf"`
	LoanBalanceBF   decimal.Decimal `db:"loan_balance_bf"`
	TotalPaid       decimal.Decimal `db:"total_paid"`
	Principal       decimal.Decimal `db:"principal"`
	LoanInterest    decimal.Decimal `db:"loan_interest"`
	ThisMonthShares decimal.Decimal `db:"this_month_shares"`
	FineAndCharges  decimal.Decimal `db:"fine_and_charges"`
	SavingsSharesCF decimal.Decimal `db:"savings_shares_cf"`
	LoanCF          decimal.Decimal `db:"loan_cf"`
	Month           string          `db:"month"`
	Year            int             `db:"year"`
	CreatedAt       time.Time       `db:"created_at"`
}

// AdvanceHistory is the database row for an archived advance copy.
type AdvanceHistory struct {
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

// AdvanceSummary is the database row for an export day summary.
type AdvanceSummary struct {
	ID            int64     `db:"id"`
	GroupName     string    `db:"group_name"`
	Date          time.Time `db:"date"`
	TotalAdvances int       `db:"total_advances"`
}
