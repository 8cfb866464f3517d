package domain

import (
	"encoding/json"
	"math"
	"time"
)

type ProForma struct {
	GrossMonthlyRent         float64 `json:"grossMonthlyRent"`
	GrossAnnualRent          float64 `json:"grossAnnualRent"`
	MonthlyOperatingExpenses float64 `json:"monthlyOperatingExpenses"`
	AnnualOperatingExpenses  float64 `json:"annualOperatingExpenses"`
	MonthlyNOI               float64 `json:"monthlyNOI"`
	AnnualNOI                float64 `json:"annualNOI"`
	CapRate                  float64 `json:"capRate"`
}

type Mortgage struct {
	DownPaymentAmount float64 `json:"downPaymentAmount"`
	LoanAmount        float64 `json:"loanAmount"`
	InitialInvestment float64 `json:"initialInvestment"`
	MonthlyPI         float64 `json:"monthlyPI"`
	AnnualDebtService float64 `json:"annualDebtService"`
}

// RuleChecks holds the pass/fail outcome of the screening rules.
type RuleChecks struct {
	OnePercentPass   bool `json:"onePercentPass"`
	FiftyPercentPass bool `json:"fiftyPercentPass"`
	DSCRPass         bool `json:"dscrPass"`
}

// Returns holds cash flow and ratio metrics. DSCR is +Inf when there is no
// debt service; it is encoded as JSON null in that case.
type Returns struct {
	MonthlyCashFlow  float64    `json:"monthlyCashFlow"`
	AnnualCashFlow   float64    `json:"annualCashFlow"`
	CashOnCashROI    float64    `json:"cashOnCashROI"`
	DSCR             float64    `json:"dscr"`
	OnePercentRule   float64    `json:"onePercentRule"`
	FiftyPercentRule float64    `json:"fiftyPercentRule"`
	Rules            RuleChecks `json:"rules"`
}

func (r Returns) MarshalJSON() ([]byte, error) {
	type alias Returns
	aux := struct {
		alias
		DSCR *float64 `json:"dscr"`
	}{alias: alias(r)}
	if !math.IsInf(r.DSCR, 0) && !math.IsNaN(r.DSCR) {
		dscr := r.DSCR
		aux.DSCR = &dscr
	}
	return json.Marshal(aux)
}

func (r *Returns) UnmarshalJSON(b []byte) error {
	type alias Returns
	aux := struct {
		*alias
		DSCR *float64 `json:"dscr"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if aux.DSCR == nil {
		r.DSCR = math.Inf(1)
	} else {
		r.DSCR = *aux.DSCR
	}
	return nil
}

// YearlyProjection is one year of the multi-year simulation. Sale figures
// assume the property is sold at the end of that year.
type YearlyProjection struct {
	Year                 int     `json:"year" csv:"year"`
	PropertyValue        float64 `json:"propertyValue" csv:"property_value"`
	RentalIncome         float64 `json:"rentalIncome" csv:"rental_income"`
	OperatingExpenses    float64 `json:"operatingExpenses" csv:"operating_expenses"`
	NOI                  float64 `json:"noi" csv:"noi"`
	DebtService          float64 `json:"debtService" csv:"debt_service"`
	InterestPaid         float64 `json:"interestPaid" csv:"interest_paid"`
	PrincipalPaid        float64 `json:"principalPaid" csv:"principal_paid"`
	RemainingLoanBalance float64 `json:"remainingLoanBalance" csv:"remaining_loan_balance"`
	PreTaxCashFlow       float64 `json:"preTaxCashFlow" csv:"pre_tax_cash_flow"`
	Depreciation         float64 `json:"depreciation" csv:"depreciation"`
	TaxableIncome        float64 `json:"taxableIncome" csv:"taxable_income"`
	TaxLiability         float64 `json:"taxLiability" csv:"tax_liability"`
	PostTaxCashFlow      float64 `json:"postTaxCashFlow" csv:"post_tax_cash_flow"`
	TotalProfitOnSale    float64 `json:"totalProfitOnSale" csv:"total_profit_on_sale"`
	CapRateOnValue       float64 `json:"capRateOnValue" csv:"cap_rate_on_value"`
	CashOnCashPreTax     float64 `json:"cashOnCashPreTax" csv:"cash_on_cash_pre_tax"`
	ROIPreTax            float64 `json:"roiPreTax" csv:"roi_pre_tax"`
	CashOnCashPostTax    float64 `json:"cashOnCashPostTax" csv:"cash_on_cash_post_tax"`
	ROIPostTax           float64 `json:"roiPostTax" csv:"roi_post_tax"`
}

// Analysis is the derived snapshot for one PropertyInputs.
type Analysis struct {
	ProForma          ProForma           `json:"proForma"`
	Mortgage          Mortgage           `json:"mortgage"`
	Returns           Returns            `json:"returns"`
	YearlyProjections []YearlyProjection `json:"yearlyProjections"`
}

// AnalysisResult wraps an Analysis with bookkeeping added by the service layer.
type AnalysisResult struct {
	ID        string         `json:"id"`
	Inputs    PropertyInputs `json:"inputs"`
	Analysis  Analysis       `json:"analysis"`
	Cached    bool           `json:"cached"`
	CreatedAt time.Time      `json:"createdAt"`
}

// DisplayYears is the subset of years the projection tables show by default.
var DisplayYears = []int{1, 2, 3, 5, 10, 15, 20, 30}

// SelectYears returns the projections whose year is in years, in projection order.
func SelectYears(projections []YearlyProjection, years []int) []YearlyProjection {
	want := make(map[int]bool, len(years))
	for _, y := range years {
		want[y] = true
	}

	selected := make([]YearlyProjection, 0, len(years))
	for _, p := range projections {
		if want[p.Year] {
			selected = append(selected, p)
		}
	}
	return selected
}
