package dto

import (
	"github.com/mkopo/chama_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGroupPerformanceRequest carries one member's payment entry for a
// period. Monetary fields accept JSON numbers or strings; omitted optional
// amounts default to zero.
type CreateGroupPerformanceRequest struct {
	GroupID         int64           `json:"group_id" binding:"required"`
	MemberDetails   string          `json:"member_details" binding:"required"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	ThisMonthShares decimal.Decimal `json:"this_month_shares"`
	FineAndCharges  decimal.Decimal `json:"fine_and_charges"`
	SavingsSharesBF decimal.Decimal `json:"savings_shares_bf"`
	LoanBalanceBF   decimal.Decimal `json:"loan_balance_bf"`
	Month           string          `json:"month" binding:"required,month"`
	Year            int             `json:"year" binding:"required"`
}

// GroupPerformanceResponse acknowledges a create-or-update of a member record.
type GroupPerformanceResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// UpsertMonthlyPerformanceRequest carries a group's monthly sheet values.
type UpsertMonthlyPerformanceRequest struct {
	GroupName      string          `json:"group_name" binding:"required"`
	Banking        decimal.Decimal `json:"banking"`
	ServiceFee     decimal.Decimal `json:"service_fee"`
	LoanForm       decimal.Decimal `json:"loan_form"`
	Passbook       decimal.Decimal `json:"passbook"`
	OfficeDebtPaid decimal.Decimal `json:"office_debt_paid"`
	OfficeBanking  decimal.Decimal `json:"office_banking"`
	Month          string          `json:"month" binding:"required,month"`
	Year           int             `json:"year" binding:"required"`
}

// PerformanceFilterRequest narrows performance listings. At least one field
// must be set; month and group_name match case-insensitive substrings.
type PerformanceFilterRequest struct {
	Month     string `json:"month"`
	Year      int    `json:"year"`
	GroupName string `json:"group_name"`
}

// UpdateGroupPerformanceRequest carries a partial admin edit of one live
// record. Only the provided fields change; no recalculation is applied.
type UpdateGroupPerformanceRequest struct {
	MemberDetails   *string          `json:"member_details"`
	SavingsSharesBF *decimal.Decimal `json:"savings_shares_bf"`
	LoanBalanceBF   *decimal.Decimal `json:"loan_balance_bf"`
	TotalPaid       *decimal.Decimal `json:"total_paid"`
	Principal       *decimal.Decimal `json:"principal"`
	LoanInterest    *decimal.Decimal `json:"loan_interest"`
	ThisMonthShares *decimal.Decimal `json:"this_month_shares"`
	FineAndCharges  *decimal.Decimal `json:"fine_and_charges"`
	SavingsSharesCF *decimal.Decimal `json:"savings_shares_cf"`
	LoanCF          *decimal.Decimal `json:"loan_cf"`
	Month           *string          `json:"month" binding:"omitempty,month"`
	Year            *int             `json:"year"`
}

// UpdateMonthlyPerformanceRequest carries a partial admin edit of one sheet.
type UpdateMonthlyPerformanceRequest struct {
	GroupName      *string          `json:"group_name"`
	Banking        *decimal.Decimal `json:"banking"`
	ServiceFee     *decimal.Decimal `json:"service_fee"`
	LoanForm       *decimal.Decimal `json:"loan_form"`
	Passbook       *decimal.Decimal `json:"passbook"`
	OfficeDebtPaid *decimal.Decimal `json:"office_debt_paid"`
	OfficeBanking  *decimal.Decimal `json:"office_banking"`
	Month          *string          `json:"month" binding:"omitempty,month"`
	Year           *int             `json:"year"`
}

// GroupPerformancesResponse lists a group's live records with the resolved name.
type GroupPerformancesResponse struct {
	GroupName    string                           `json:"group_name"`
	Performances []domain.GroupMonthlyPerformance `json:"performances"`
}

// MemberSummaryResponse aggregates the live performance table for dashboards.
type MemberSummaryResponse struct {
	MemberNames          []string        `json:"member_names"`
	TotalMemberDetails   int             `json:"total_member_details"`
	TotalSavingsSharesBF decimal.Decimal `json:"total_savings_shares_bf"`
	TotalLoanBalanceBF   decimal.Decimal `json:"total_loan_balance_bf"`
	TotalActiveUsers     int             `json:"total_active_users"`
	CurrentFirstName     string          `json:"current_first_name"`
}
