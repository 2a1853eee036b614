package mapping

import (
	"github.com/mkopo/chama_management_app/internal/core/domain"
	"github.com/mkopo/chama_management_app/internal/models"
)

// ToModelAdvance converts a domain advance to its database model.
func ToModelAdvance(a domain.Advance) models.Advance {
	return models.Advance{
		ID:             a.ID,
		MemberName:     a.MemberName,
		InitialAmount:  a.InitialAmount,
		PaymentAmount:  a.PaymentAmount,
		InterestRate:   a.InterestRate,
		PaidAmount:     a.PaidAmount,
		TotalAmountDue: a.TotalAmountDue,
		IsPaid:         a.IsPaid,
		Status:         string(a.Status),
		GroupID:        a.GroupID,
		UserID:         a.UserID,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// ToDomainAdvance converts a database model to its domain advance.
func ToDomainAdvance(m models.Advance) domain.Advance {
	return domain.Advance{
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

// ToDomainAdvanceSlice converts a slice of database models.
func ToDomainAdvanceSlice(ms []models.Advance) []domain.Advance {
	ds := make([]domain.Advance, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAdvance(m)
	}
	return ds
}

// ToModelAdvanceCredit converts a domain credit entry to its database model.
func ToModelAdvanceCredit(c domain.MonthlyAdvanceCredit) models.MonthlyAdvanceCredit {
	return models.MonthlyAdvanceCredit{
		ID:                 c.ID,
		GroupID:            c.GroupID,
		GroupName:          c.GroupName,
		Date:               c.Date,
		TotalAdvanceAmount: c.TotalAdvanceAmount,
		Deductions:         c.Deductions,
	}
}

// ToDomainAdvanceCredit converts a database model to its domain credit entry.
func ToDomainAdvanceCredit(m models.MonthlyAdvanceCredit) domain.MonthlyAdvanceCredit {
	return domain.MonthlyAdvanceCredit{
		ID:                 m.ID,
		GroupID:            m.GroupID,
		GroupName:          m.GroupName,
		Date:               m.Date,
		TotalAdvanceAmount: m.TotalAdvanceAmount,
		Deductions:         m.Deductions,
	}
}

// ToDomainAdvanceCreditSlice converts a slice of database models.
func ToDomainAdvanceCreditSlice(ms []models.MonthlyAdvanceCredit) []domain.MonthlyAdvanceCredit {
	ds := make([]domain.MonthlyAdvanceCredit, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAdvanceCredit(m)
	}
	return ds
}
