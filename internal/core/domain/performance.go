package domain

import "github.com/shopspring/decimal"

// GroupMonthlyPerformance is the live, mutable working record for one member
// of one group in the active period. Carried-forward values (CF) become the
// next period's brought-forward values (BF) when the period is archived.
type GroupMonthlyPerformance struct {
	ID              int64           `json:"id"`
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
}

// MonthlyPerformance is the per-group monthly sheet. Its row ID doubles as the
// group identifier referenced by GroupMonthlyPerformance.GroupID.
type MonthlyPerformance struct {
	ID             int64           `json:"id"`
	GroupName      string          `json:"groupName"`
	Banking        decimal.Decimal `json:"banking"`
	ServiceFee     decimal.Decimal `json:"serviceFee"`
	LoanForm       decimal.Decimal `json:"loanForm"`
	Passbook       decimal.Decimal `json:"passbook"`
	OfficeDebtPaid decimal.Decimal `json:"officeDebtPaid"`
	OfficeBanking  decimal.Decimal `json:"officeBanking"`
	Month          string          `json:"month"`
	Year           int             `json:"year"`
}

// MemberSummary aggregates the live performance table for dashboard views.
type MemberSummary struct {
	TotalMembers         int             `json:"totalMembers"`
	TotalSavingsSharesBF decimal.Decimal `json:"totalSavingsSharesBF"`
	TotalLoanBalanceBF   decimal.Decimal `json:"totalLoanBalanceBF"`
}
