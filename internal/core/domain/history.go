package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// History is the header row of one group performance archival run. It owns
// the FormRecord snapshots created in the same operation; both are immutable
// after creation.
type History struct {
	ID        int64     `json:"id"`
	GroupName string    `json:"groupName"`
	Date      time.Time `json:"date"`
	CreatedBy string    `json:"createdBy"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FormRecord is an archived snapshot of a GroupMonthlyPerformance row at the
// moment its period was closed. The snapshot stores the closing CF values as
// its BF columns so the archive reads as the opening reference of the next
// period.
type FormRecord struct {
	ID              int64           `json:"id"`
	HistoryID       int64           `json:"historyID"`
	GroupID         int64           `json:"groupID"`
	MemberDetails   string          `json:"memberDetails"`
	SavingsSharesBF decimal.Decimal `json:"savingsSharesBF"`
	LoanBalanceBF   decimal.Decimal `json:"loanBalanceBF"`
	TotalPaid       decimal.Decimal `json:"totalPaid"`
	Principal       decimal.Decimal `json:"principal"`
	LoanInterest    decimal.Decimal `json:"loanInterest"`
	ThisMonthShares decimal.Decimal `json:"thisMonthShares"`
	FineAndCharges  decimal.Decimal `json:"fineAndCharges"`
	SavingsSharesCF decimal.Decimal `json:"savingsSharesCF"`
	LoanCF          decimal.Decimal `json:"loanCF"`
	Month           string          `json:"month"`
	Year            int             `json:"year"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// AdvanceHistory is a point-in-time copy of an Advance row taken by the
// monthly advance export. Live advances are not reset by the export; an
// advance can appear in several exports until it completes.
type AdvanceHistory struct {
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

// AdvanceSummary counts the advances exported for a group on a given date.
// One row exists per (group_name, date); re-running the export on the same
// day overwrites the count in place.
type AdvanceSummary struct {
	ID            int64     `json:"id"`
	GroupName     string    `json:"groupName"`
	Date          time.Time `json:"date"`
	TotalAdvances int       `json:"totalAdvances"`
}
