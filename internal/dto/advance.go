package dto

import (
	"github.com/mkopo/chama_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAdvanceRequest carries a new cash advance for a group member.
type CreateAdvanceRequest struct {
	MemberName    string          `json:"member_name" binding:"required"`
	InitialAmount decimal.Decimal `json:"initial_amount"`
	GroupID       int64           `json:"group_id" binding:"required"`
}

// MakePaymentRequest carries a payment towards an advance.
type MakePaymentRequest struct {
	PaymentAmount decimal.Decimal `json:"payment_amount"`
}

// UpdateAdvanceRequest adds a delta to an advance's paid amount.
type UpdateAdvanceRequest struct {
	PaidAmount decimal.Decimal `json:"paid_amount"`
}

// RemainingBalanceResponse reports the outstanding amount of an advance.
type RemainingBalanceResponse struct {
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// GroupAdvancesResponse lists a group's pending advances with the resolved name.
type GroupAdvancesResponse struct {
	GroupName string           `json:"group_name"`
	Advances  []domain.Advance `json:"advances"`
}

// CreateAdvanceCreditRequest carries a manual monthly advance credit entry.
type CreateAdvanceCreditRequest struct {
	GroupID            int64           `json:"group_id" binding:"required"`
	GroupName          string          `json:"group_name" binding:"required"`
	Date               string          `json:"date" binding:"required"`
	TotalAdvanceAmount decimal.Decimal `json:"total_advance_amount"`
	Deductions         decimal.Decimal `json:"deductions"`
}
