package service

import (
	"math"

	"rental-agent/domain"
)

// MonthlyPayment returns the fixed principal and interest payment for a
// fully amortizing loan. A non-positive rate amortizes straight-line, and a
// non-finite result (for example a zero term) resolves to 0.
func MonthlyPayment(principal, annualRatePercent, termYears float64) float64 {
	n := termYears * monthsPerYear

	if annualRatePercent <= 0 {
		if n > 0 {
			return principal / n
		}
		return 0
	}

	r := annualRatePercent / 100 / monthsPerYear
	growth := math.Pow(1+r, n)
	payment := principal * (r * growth) / (growth - 1)

	if math.IsNaN(payment) || math.IsInf(payment, 0) {
		return 0
	}
	return payment
}

// CalculateMortgage derives the financing figures for the purchase.
func CalculateMortgage(in domain.PropertyInputs) domain.Mortgage {
	downPayment := in.PurchasePrice * (in.DownPaymentPercent / 100)
	loanAmount := in.PurchasePrice - downPayment
	monthlyPI := MonthlyPayment(loanAmount, in.InterestRatePercent, in.LoanTermYears)

	return domain.Mortgage{
		DownPaymentAmount: downPayment,
		LoanAmount:        loanAmount,
		InitialInvestment: downPayment + in.ClosingCost + in.InitialImprovements,
		MonthlyPI:         monthlyPI,
		AnnualDebtService: monthlyPI * monthsPerYear,
	}
}
