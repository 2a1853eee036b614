package models

import "github.com/shopspring/decimal"

// GroupMonthlyPerformance is the database row for one member's live record.
type GroupMonthlyPerformance struct {
	ID              int64           `db:"id"`
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
}

// MonthlyPerformance is the database row for a group's monthly sheet.
type MonthlyPerformance struct {
	ID             int64           `db:"id"`
	GroupName      string          `db:"group_name"`
	Banking        decimal.Decimal `db:"banking"`
	ServiceFee     decimal.Decimal `db:"service_fee"`
	LoanForm       decimal.Decimal `db:"loan_form"`
	Passbook       decimal.Decimal `db:"passbook"`
	OfficeDebtPaid decimal.Decimal `db:"office_debt_paid"`
	OfficeBanking  decimal.Decimal `db:"office_banking"`
	Month          string          `db:"month"`
	Year           int             `db:"year"`
}
