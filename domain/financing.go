package domain

type FinancingOption struct {
	Name                string  `json:"name"`
	DownPaymentPercent  float64 `json:"downPaymentPercent"`
	InterestRatePercent float64 `json:"interestRatePercent"`
	LoanTermYears       float64 `json:"loanTermYears"`
}

type FinancingComparisonInput struct {
	Property   PropertyInputs    `json:"property"`
	Options    []FinancingOption `json:"options"`
	MinDSCR    float64           `json:"minDSCR"`
	Preference string            `json:"preference"` // "maximize_cash_flow", "maximize_return", "balanced"
}

type FinancingRecommendation struct {
	Option            FinancingOption `json:"option"`
	MonthlyPI         float64         `json:"monthlyPI"`
	InitialInvestment float64         `json:"initialInvestment"`
	AnnualCashFlow    float64         `json:"annualCashFlow"`
	CashOnCashROI     float64         `json:"cashOnCashROI"`
	DSCR              *float64        `json:"dscr"` // nil when the option carries no debt
	Score             float64         `json:"score"`
	Reason            string          `json:"reason"`
}

type FinancingComparison struct {
	Recommended     FinancingOption           `json:"recommended"`
	Recommendations []FinancingRecommendation `json:"recommendations"`
}
