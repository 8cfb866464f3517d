package service

import (
	"math"

	"rental-agent/domain"
)

// projectionState is carried from one year to the next. Each expense line
// escalates at its own rate, so they are tracked separately.
type projectionState struct {
	propertyValue float64
	rentalIncome  float64
	loanBalance   float64
	propertyTax   float64
	insurance     float64
	hoa           float64
	utilities     float64
}

// ProjectionHorizon is the number of years projected: the loan term, but
// never fewer than MinProjectionYears nor more than MaxLoanTermYears.
// A NaN term projects nothing.
func ProjectionHorizon(loanTermYears float64) int {
	if math.IsNaN(loanTermYears) {
		return 0
	}
	return int(math.Floor(math.Min(math.Max(loanTermYears, MinProjectionYears), MaxLoanTermYears)))
}

// ProjectYears simulates the investment year by year over the full horizon.
func ProjectYears(in domain.PropertyInputs, proForma domain.ProForma, mortgage domain.Mortgage) []domain.YearlyProjection {
	horizon := ProjectionHorizon(in.LoanTermYears)
	projections := make([]domain.YearlyProjection, 0, horizon)

	state := projectionState{
		propertyValue: in.PurchasePrice,
		rentalIncome:  proForma.GrossAnnualRent,
		loanBalance:   mortgage.LoanAmount,
		propertyTax:   in.PropertyTaxYear,
		insurance:     in.InsuranceMonth * monthsPerYear,
		hoa:           in.HOAMonth * monthsPerYear,
		utilities:     in.MonthlyUtilities() * monthsPerYear,
	}

	// Depreciation basis is the full purchase price; land value is not split out.
	annualDepreciation := 0.0
	if in.DepreciationYears > 0 {
		annualDepreciation = in.PurchasePrice / in.DepreciationYears
	}

	for year := 1; year <= horizon; year++ {
		if year > 1 {
			state = escalate(state, in)
		}

		var p domain.YearlyProjection
		state, p = projectYear(state, year, annualDepreciation, in, mortgage)
		projections = append(projections, p)
	}

	return projections
}

// escalate applies one year of growth. Property tax follows the general
// expense rate; insurance and utilities have dedicated rates.
func escalate(s projectionState, in domain.PropertyInputs) projectionState {
	s.propertyValue *= 1 + in.AppreciationPercent/100
	s.rentalIncome *= 1 + in.RentIncreasePercent/100
	s.propertyTax *= 1 + in.ExpenseIncreasePercent/100
	s.insurance *= 1 + in.InsuranceIncreasePercent/100
	s.utilities *= 1 + in.UtilitiesIncreasePercent/100
	s.hoa *= 1 + in.ExpenseIncreasePercent/100
	return s
}

func projectYear(
	s projectionState,
	year int,
	annualDepreciation float64,
	in domain.PropertyInputs,
	mortgage domain.Mortgage,
) (projectionState, domain.YearlyProjection) {
	vacancy := s.rentalIncome * (in.VacancyPercent / 100)
	maintenance := s.rentalIncome * (in.MaintenancePercent / 100)
	mgmt := s.rentalIncome * (in.PropertyMgmtPercent / 100)
	operatingExpenses := s.propertyTax + s.insurance + s.utilities + s.hoa + vacancy + maintenance + mgmt

	var interestPaid, principalPaid float64
	if s.loanBalance > 0 && mortgage.MonthlyPI > 0 {
		s.loanBalance, interestPaid, principalPaid = amortizeYear(s.loanBalance, mortgage.MonthlyPI, in.InterestRatePercent)
	}
	if s.loanBalance < 0 {
		s.loanBalance = 0
	}

	noi := s.rentalIncome - operatingExpenses
	debtService := interestPaid + principalPaid
	preTaxCashFlow := noi - debtService

	depreciation := 0.0
	if float64(year) <= in.DepreciationYears {
		depreciation = annualDepreciation
	}

	// Pérdidas no se arrastran ni compensan otros ingresos.
	taxableIncome := noi - interestPaid - depreciation
	taxLiability := 0.0
	if taxableIncome > 0 {
		taxLiability = taxableIncome * (in.IncomeTaxRatePercent / 100)
	}
	postTaxCashFlow := preTaxCashFlow - taxLiability

	p := domain.YearlyProjection{
		Year:                 year,
		PropertyValue:        s.propertyValue,
		RentalIncome:         s.rentalIncome,
		OperatingExpenses:    operatingExpenses,
		NOI:                  noi,
		DebtService:          debtService,
		InterestPaid:         interestPaid,
		PrincipalPaid:        principalPaid,
		RemainingLoanBalance: s.loanBalance,
		PreTaxCashFlow:       preTaxCashFlow,
		Depreciation:         depreciation,
		TaxableIncome:        taxableIncome,
		TaxLiability:         taxLiability,
		PostTaxCashFlow:      postTaxCashFlow,
		TotalProfitOnSale:    saleProfit(s, year, annualDepreciation, in),
	}

	investment := mortgage.InitialInvestment
	if s.propertyValue > 0 {
		p.CapRateOnValue = noi / s.propertyValue * 100
	}
	if investment > 0 {
		p.CashOnCashPreTax = preTaxCashFlow / investment * 100
		p.ROIPreTax = (preTaxCashFlow + principalPaid) / investment * 100
		p.CashOnCashPostTax = postTaxCashFlow / investment * 100
		p.ROIPostTax = (postTaxCashFlow + principalPaid) / investment * 100
	}

	return s, p
}

// amortizeYear runs twelve monthly payments against balance. When the payment
// does not cover a month's interest the year is booked as payment*12 of
// interest with no principal and the balance is left unchanged; negative
// amortization is not modeled.
func amortizeYear(balance, payment, annualRatePercent float64) (remaining, interest, principal float64) {
	monthlyRate := annualRatePercent / 100 / monthsPerYear
	remaining = balance

	for month := 1; month <= monthsPerYear; month++ {
		monthInterest := remaining * monthlyRate
		if payment < monthInterest {
			return balance, payment * monthsPerYear, 0
		}

		monthPrincipal := payment - monthInterest
		interest += monthInterest
		principal += monthPrincipal
		remaining -= monthPrincipal
	}

	return remaining, interest, principal
}

// saleProfit is the net cash from a hypothetical sale at the end of year,
// after paying off the loan, selling costs and capital gains tax.
func saleProfit(s projectionState, year int, annualDepreciation float64, in domain.PropertyInputs) float64 {
	salesCost := s.propertyValue * (in.SalesCostPercent / 100)

	accumulatedDepreciation := annualDepreciation * math.Min(float64(year), in.DepreciationYears)
	if in.DepreciationYears <= 0 {
		accumulatedDepreciation = 0
	}
	adjustedBasis := in.PurchasePrice + in.InitialImprovements - accumulatedDepreciation

	capitalGain := s.propertyValue - adjustedBasis - salesCost
	capitalGainsTax := 0.0
	if capitalGain > 0 {
		capitalGainsTax = capitalGain * (in.CapitalGainsRatePercent / 100)
	}

	return s.propertyValue - s.loanBalance - salesCost - capitalGainsTax
}
