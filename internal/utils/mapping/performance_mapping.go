package mapping

import (
	"github.com/mkopo/chama_management_app/internal/core/domain"
	"github.com/mkopo/chama_management_app/internal/models"
)

// ToModelGroupPerformance converts a domain record to its database model.
func ToModelGroupPerformance(p domain.GroupMonthlyPerformance) models.GroupMonthlyPerformance {
	return models.GroupMonthlyPerformance{
		ID:              p.ID,
		GroupID:         p.GroupID,
		MemberDetails:   p.MemberDetails,
		SavingsSharesBF: p.SavingsSharesBF,
		LoanBalanceBF:   p.LoanBalanceBF,
		TotalPaid:       p.TotalPaid,
		Principal:       p.Principal,
		LoanInterest:    p.LoanInterest,
		ThisMonthShares: p.ThisMonthShares,
		FineAndCharges:  p.FineAndCharges,
		SavingsSharesCF: p.SavingsSharesCF,
		LoanCF:          p.LoanCF,
		Month:           p.Month,
		Year:            p.Year,
	}
}

// ToDomainGroupPerformance converts a database model to its domain record.
func ToDomainGroupPerformance(m models.GroupMonthlyPerformance) domain.GroupMonthlyPerformance {
	return domain.GroupMonthlyPerformance{
		ID:              m.ID,
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
	}
}

// ToDomainGroupPerformanceSlice converts a slice of database models.
func ToDomainGroupPerformanceSlice(ms []models.GroupMonthlyPerformance) []domain.GroupMonthlyPerformance {
	ds := make([]domain.GroupMonthlyPerformance, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGroupPerformance(m)
	}
	return ds
}

// ToModelMonthlyPerformance converts a domain sheet to its database model.
func ToModelMonthlyPerformance(p domain.MonthlyPerformance) models.MonthlyPerformance {
	return models.MonthlyPerformance{
		ID:             p.ID,
		GroupName:      p.GroupName,
		Banking:        p.Banking,
		ServiceFee:     p.ServiceFee,
		LoanForm:       p.LoanForm,
		Passbook:       p.Passbook,
		OfficeDebtPaid: p.OfficeDebtPaid,
		OfficeBanking:  p.OfficeBanking,
		Month:          p.Month,
		Year:           p.Year,
	}
}

// ToDomainMonthlyPerformance converts a database model to its domain sheet.
func ToDomainMonthlyPerformance(m models.MonthlyPerformance) domain.MonthlyPerformance {
	return domain.MonthlyPerformance{
		ID:             m.ID,
		GroupName:      m.GroupName,
		Banking:        m.Banking,
		ServiceFee:     m.ServiceFee,
		LoanForm:       m.LoanForm,
		Passbook:       m.Passbook,
		OfficeDebtPaid: m.OfficeDebtPaid,
		OfficeBanking:  m.OfficeBanking,
		Month:          m.Month,
		Year:           m.Year,
	}
}

// ToDomainMonthlyPerformanceSlice converts a slice of database models.
func ToDomainMonthlyPerformanceSlice(ms []models.MonthlyPerformance) []domain.MonthlyPerformance {
	ds := make([]domain.MonthlyPerformance, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMonthlyPerformance(m)
	}
	return ds
}
