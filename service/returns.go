package service

import (
	"math"

	"rental-agent/domain"
)

// CalculateReturns combines the pro forma and mortgage blocks into cash flow
// and screening ratios. Each ratio guards its own denominator.
func CalculateReturns(proForma domain.ProForma, mortgage domain.Mortgage, in domain.PropertyInputs) domain.Returns {
	monthlyCashFlow := proForma.MonthlyNOI - mortgage.MonthlyPI
	annualCashFlow := monthlyCashFlow * monthsPerYear

	cashOnCash := 0.0
	if mortgage.InitialInvestment > 0 {
		cashOnCash = annualCashFlow / mortgage.InitialInvestment * 100
	}

	// Sin servicio de deuda el DSCR no tiene techo.
	dscr := math.Inf(1)
	if mortgage.AnnualDebtService > 0 {
		dscr = proForma.AnnualNOI / mortgage.AnnualDebtService
	}

	onePercent := 0.0
	if in.PurchasePrice > 0 {
		onePercent = proForma.GrossMonthlyRent / in.PurchasePrice * 100
	}

	fiftyPercent := 0.0
	if proForma.GrossAnnualRent > 0 {
		fiftyPercent = proForma.AnnualOperatingExpenses / proForma.GrossAnnualRent * 100
	}

	return domain.Returns{
		MonthlyCashFlow:  monthlyCashFlow,
		AnnualCashFlow:   annualCashFlow,
		CashOnCashROI:    cashOnCash,
		DSCR:             dscr,
		OnePercentRule:   onePercent,
		FiftyPercentRule: fiftyPercent,
		Rules: domain.RuleChecks{
			OnePercentPass:   onePercent >= 1,
			FiftyPercentPass: fiftyPercent <= 50,
			DSCRPass:         dscr >= DSCRThreshold,
		},
	}
}
