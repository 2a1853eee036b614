package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdvanceStatus indicates the lifecycle state of a cash advance.
type AdvanceStatus string

const (
	AdvancePending   AdvanceStatus = "pending"
	AdvanceCompleted AdvanceStatus = "completed"
)

// AdvanceInterestRate is the fixed interest applied to every new advance,
// in percent.
const AdvanceInterestRate = 10

// Advance is a short-term interest-bearing cash advance extended to a group
// member. Once completed it is immutable except for audit fields.
type Advance struct {
	ID             int64           `json:"id"`
	MemberName     string          `json:"memberName"`
	InitialAmount  decimal.Decimal `json:"initialAmount"`
	PaymentAmount  decimal.Decimal `json:"paymentAmount"`
	InterestRate   decimal.Decimal `json:"interestRate"`
	PaidAmount     decimal.Decimal `json:"paidAmount"`
	TotalAmountDue decimal.Decimal `json:"totalAmountDue"`
	IsPaid         bool            `json:"isPaid"`
	Status         AdvanceStatus   `json:"status"`
	GroupID        int64           `json:"groupID"`
	UserID         int64           `json:"userID"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// RemainingBalance returns the outstanding amount against the advance's
// total due. A fully paid advance owes nothing regardless of bookkeeping.
func (a Advance) RemainingBalance() decimal.Decimal {
	if a.IsPaid {
		return decimal.Zero
	}
	return a.TotalAmountDue.Sub(a.PaidAmount)
}

// MonthlyAdvanceCredit is a manually recorded ledger entry of advance credit
// extended to a group for a given date. It has its own lifecycle and is never
// derived from Advance rows.
type MonthlyAdvanceCredit struct {
	ID                 int64           `json:"id"`
	GroupID            int64           `json:"groupID"`
	GroupName          string          `json:"groupName"`
	Date               time.Time       `json:"date"`
	TotalAdvanceAmount decimal.Decimal `json:"totalAdvanceAmount"`
	Deductions         decimal.Decimal `json:"deductions"`
}
