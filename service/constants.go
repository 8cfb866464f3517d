package service

const (
	// MinProjectionYears is the shortest horizon the yearly projection covers,
	// even for loans shorter than that.
	MinProjectionYears = 30
	monthsPerYear      = 12

	// DSCRThreshold is the coverage lenders usually require.
	DSCRThreshold = 1.25

	MaxPurchasePrice     = 1_000_000_000.0 // 1 billón
	MaxMoneyField        = 1_000_000_000.0
	MinRatePercent       = -100.0
	MaxRatePercent       = 1000.0 // 1000% anual
	MaxLoanTermYears     = 50
	MaxDepreciationYears = 100
	MaxUnits             = 500

	MaxFinancingOptions     = 20
	maxConcurrentScenarios  = 4
	maxReasonAlternatives   = 3
	financingScoreMaxPoints = 10.0
)
