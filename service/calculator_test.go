package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-agent/domain"
)

func TestCalculate_SeedScenario(t *testing.T) {
	t.Parallel()
	got := Calculate(domain.DefaultInputs())

	pf := got.ProForma
	assert.InDelta(t, 4000, pf.GrossMonthlyRent, 1e-9)
	assert.InDelta(t, 48000, pf.GrossAnnualRent, 1e-9)
	// 583.33 tax + 150 insurance + 200 vacancy + 400 maintenance + 50 HOA
	assert.InDelta(t, 1383.33, pf.MonthlyOperatingExpenses, 0.01)
	assert.InDelta(t, 2616.67, pf.MonthlyNOI, 0.01)
	assert.InDelta(t, 31400, pf.AnnualNOI, 0.01)
	assert.InDelta(t, 10.47, pf.CapRate, 0.01)

	m := got.Mortgage
	assert.InDelta(t, 60000, m.DownPaymentAmount, 1e-9)
	assert.InDelta(t, 240000, m.LoanAmount, 1e-9)
	assert.InDelta(t, 66000, m.InitialInvestment, 1e-9)
	assert.InDelta(t, 1556.64, m.MonthlyPI, 0.01)
	assert.InDelta(t, m.MonthlyPI*12, m.AnnualDebtService, 1e-9)

	r := got.Returns
	assert.InDelta(t, 1060.03, r.MonthlyCashFlow, 0.01)
	assert.InDelta(t, r.MonthlyCashFlow*12, r.AnnualCashFlow, 1e-9)
	assert.InDelta(t, 19.27, r.CashOnCashROI, 0.01)
	assert.InDelta(t, 1.68, r.DSCR, 0.01)
	assert.InDelta(t, 1.3333, r.OnePercentRule, 0.0001)
	assert.InDelta(t, 34.58, r.FiftyPercentRule, 0.01)
	assert.Equal(t, domain.RuleChecks{OnePercentPass: true, FiftyPercentPass: true, DSCRPass: true}, r.Rules)

	require.Len(t, got.YearlyProjections, 30)
}

func TestCalculate_Deterministic(t *testing.T) {
	t.Parallel()
	in := domain.DefaultInputs()

	first := Calculate(in)
	second := Calculate(in)

	assert.Equal(t, first, second)
}

func TestCalculate_ZeroRentUnitChangesNothing(t *testing.T) {
	t.Parallel()
	in := domain.DefaultInputs()
	base := Calculate(in)

	in.Units = append(in.Units, domain.Unit{ID: 2, Beds: 1, Baths: 1})
	withEmptyUnit := Calculate(in)

	assert.Equal(t, base, withEmptyUnit)
}

func TestCalculate_ZeroPurchasePrice(t *testing.T) {
	t.Parallel()
	in := domain.DefaultInputs()
	in.PurchasePrice = 0
	in.ClosingCost = 0
	in.InitialImprovements = 0

	got := Calculate(in)

	assert.Equal(t, 0.0, got.ProForma.CapRate)
	assert.Equal(t, 0.0, got.Returns.OnePercentRule)
	assert.Equal(t, 0.0, got.Mortgage.InitialInvestment)
	assert.Equal(t, 0.0, got.Returns.CashOnCashROI)
	assert.True(t, math.IsInf(got.Returns.DSCR, 1))

	for _, p := range got.YearlyProjections {
		assert.Equal(t, 0.0, p.CapRateOnValue)
		assert.Equal(t, 0.0, p.CashOnCashPreTax)
		assert.Equal(t, 0.0, p.ROIPostTax)
		assert.False(t, math.IsNaN(p.TotalProfitOnSale))
	}
}

func TestCalculate_AllCashPurchase(t *testing.T) {
	t.Parallel()
	in := domain.DefaultInputs()
	in.DownPaymentPercent = 100

	got := Calculate(in)

	assert.Equal(t, 0.0, got.Mortgage.LoanAmount)
	assert.Equal(t, 0.0, got.Mortgage.AnnualDebtService)
	assert.True(t, math.IsInf(got.Returns.DSCR, 1))
	assert.True(t, got.Returns.Rules.DSCRPass)

	for _, p := range got.YearlyProjections {
		assert.Equal(t, 0.0, p.DebtService)
		assert.Equal(t, 0.0, p.RemainingLoanBalance)
	}
}

func TestCalculate_NoRent(t *testing.T) {
	t.Parallel()
	in := domain.DefaultInputs()
	in.Units = nil

	got := Calculate(in)

	assert.Equal(t, 0.0, got.ProForma.GrossMonthlyRent)
	assert.Equal(t, 0.0, got.Returns.FiftyPercentRule)
	assert.False(t, got.Returns.Rules.OnePercentPass)
	assert.True(t, got.Returns.Rules.FiftyPercentPass)
}
