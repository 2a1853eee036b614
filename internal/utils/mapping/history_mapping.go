package mapping

import (
	"github.com/mkopo/chama_management_app/internal/core/domain"
	"github.com/mkopo/chama_management_app/internal/models"
)

// ToModelHistory converts a domain history header to its database model.
func ToModelHistory(h domain.History) models.History {
	return models.History{
		ID:        h.ID,
		GroupName: h.GroupName,
		Date:      h.Date,
		CreatedBy: h.CreatedBy,
		UpdatedAt: h.UpdatedAt,
	}
}

// ToDomainHistory converts a database model to its domain history header.
func ToDomainHistory(m models.History) domain.History {
	return domain.History{
		ID:        m.ID,
		GroupName: m.GroupName,
		Date:      m.Date,
		CreatedBy: m.CreatedBy,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToDomainHistorySlice converts a slice of database models.
func ToDomainHistorySlice(ms []models.History) []domain.History {
	ds := make([]domain.History, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainHistory(m)
	}
	return ds
}

// ToModelFormRecord converts a domain snapshot to its database model.
func ToModelFormRecord(r domain.FormRecord) models.FormRecord {
	return models.FormRecord{
		ID:              r.ID,
		HistoryID:       r.HistoryID,
		GroupID:         r.GroupID,
		MemberDetails:   r.MemberDetails,
		SavingsSharesBF: r.SavingsSharesBF,
		LoanBalanceBF:   r.LoanBalanceBF,
		TotalPaid:       r.TotalPaid,
		Principal:       r.Principal,
		LoanInterest:    r.LoanInterest,
		ThisMonthShares: r.ThisMonthShares,
		FineAndCharges:  r.FineAndCharges,
		SavingsSharesCF: r.SavingsSharesCF,
		LoanCF:          r.LoanCF,
		Month:           r.Month,
		Year:            r.Year,
		CreatedAt:       r.CreatedAt,
	}
}

// ToDomainFormRecord converts a database model to its domain snapshot.
func ToDomainFormRecord(m models.FormRecord) domain.FormRecord {
	return domain.FormRecord{
		ID:              m.ID,
		HistoryID:       m.HistoryID,
		GroupID:         m.GroupID,
		MemberDetails:   m.MemberDetails,
		SavingsSharesBF: m.SavingsSharesBF,
		LoanBalanceBF:   m.LoanBalanceBF,
		TotalPaid:       m.TotalPaid,
		Principal:       m.Principal,
		LoanInterest:    m.LoanInterest,
		ThisMonthShares: m.ThisMonthShares,
		FineAndCharges:  m.FineAndCharges,
		SavingsSharesCF: m.SavingsSharesCF,
		LoanCF:          m.LoanCF,
		Month:           m.Month,
		Year:            m.Year,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainFormRecordSlice converts a slice of database models.
func ToDomainFormRecordSlice(ms []models.FormRecord) []domain.FormRecord {
	ds := make([]domain.FormRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFormRecord(m)
	}
	return ds
}

// ToModelAdvanceHistory converts a domain advance copy to its database model.
func ToModelAdvanceHistory(h domain.AdvanceHistory) models.AdvanceHistory {
	return models.AdvanceHistory{
		ID:             h.ID,
		MemberName:     h.MemberName,
		InitialAmount:  h.InitialAmount,
		PaymentAmount:  h.PaymentAmount,
		InterestRate:   h.InterestRate,
		PaidAmount:     h.PaidAmount,
		TotalAmountDue: h.TotalAmountDue,
		IsPaid:         h.IsPaid,
		Status:         string(h.Status),
		GroupID:        h.GroupID,
		UserID:         h.UserID,
		CreatedAt:      h.CreatedAt,
		UpdatedAt:      h.UpdatedAt,
	}
}

// ToDomainAdvanceHistory converts a database model to its domain advance copy.
func ToDomainAdvanceHistory(m models.AdvanceHistory) domain.AdvanceHistory {
	return domain.AdvanceHistory{
		ID:             m.ID,
		MemberName:     m.MemberName,
		InitialAmount:  m.InitialAmount,
		PaymentAmount:  m.PaymentAmount,
		InterestRate:   m.InterestRate,
		PaidAmount:     m.PaidAmount,
		TotalAmountDue: m.TotalAmountDue,
		IsPaid:         m.IsPaid,
		Status:         domain.AdvanceStatus(m.Status),
		GroupID:        m.GroupID,
		UserID:         m.UserID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ToDomainAdvanceHistorySlice converts a slice of database models.
func ToDomainAdvanceHistorySlice(ms []models.AdvanceHistory) []domain.AdvanceHistory {
	ds := make([]domain.AdvanceHistory, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAdvanceHistory(m)
	}
	return ds
}

// ToDomainAdvanceSummary converts a database model to its domain summary.
func ToDomainAdvanceSummary(m models.AdvanceSummary) domain.AdvanceSummary {
	return domain.AdvanceSummary{
		ID:            m.ID,
		GroupName:     m.GroupName,
		Date:          m.Date,
		TotalAdvances: m.TotalAdvances,
	}
}

// ToDomainAdvanceSummarySlice converts a slice of database models.
func ToDomainAdvanceSummarySlice(ms []models.AdvanceSummary) []domain.AdvanceSummary {
	ds := make([]domain.AdvanceSummary, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAdvanceSummary(m)
	}
	return ds
}
