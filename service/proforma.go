package service

import "rental-agent/domain"

// CalculateProForma derives the monthly and annual income, operating expense
// and NOI figures. Operating expenses exclude the mortgage payment.
func CalculateProForma(in domain.PropertyInputs) domain.ProForma {
	grossMonthlyRent := 0.0
	for _, unit := range in.Units {
		grossMonthlyRent += unit.Rent
	}

	monthlyVacancy := grossMonthlyRent * (in.VacancyPercent / 100)
	monthlyMaintenance := grossMonthlyRent * (in.MaintenancePercent / 100)
	monthlyMgmt := grossMonthlyRent * (in.PropertyMgmtPercent / 100)
	monthlyTaxes := in.PropertyTaxYear / monthsPerYear

	monthlyExpenses := monthlyTaxes + in.InsuranceMonth + monthlyVacancy + monthlyMaintenance +
		monthlyMgmt + in.HOAMonth + in.MonthlyUtilities()

	monthlyNOI := grossMonthlyRent - monthlyExpenses
	annualNOI := monthlyNOI * monthsPerYear

	capRate := 0.0
	if in.PurchasePrice > 0 {
		capRate = annualNOI / in.PurchasePrice * 100
	}

	return domain.ProForma{
		GrossMonthlyRent:         grossMonthlyRent,
		GrossAnnualRent:          grossMonthlyRent * monthsPerYear,
		MonthlyOperatingExpenses: monthlyExpenses,
		AnnualOperatingExpenses:  monthlyExpenses * monthsPerYear,
		MonthlyNOI:               monthlyNOI,
		AnnualNOI:                annualNOI,
		CapRate:                  capRate,
	}
}
