package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"rental-agent/domain"
)

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

var financingPreferences = map[string]bool{
	"maximize_cash_flow": true,
	"maximize_return":    true,
	"balanced":           true,
}

type FinancingService struct{}

func NewFinancingService() *FinancingService {
	return &FinancingService{}
}

type scenario struct {
	option   domain.FinancingOption
	analysis domain.Analysis
}

// Compare runs the property through every financing option and ranks the
// options that satisfy the minimum DSCR according to the preference.
func (s *FinancingService) Compare(
	ctx context.Context,
	input domain.FinancingComparisonInput,
) (domain.FinancingComparison, error) {

	// Validaciones
	if len(input.Options) == 0 {
		return domain.FinancingComparison{}, eris.Wrap(ErrInvalidInput, "no financing options provided")
	}
	if len(input.Options) > MaxFinancingOptions {
		return domain.FinancingComparison{}, eris.Wrapf(ErrInvalidInput, "financing options exceed the maximum of %d", MaxFinancingOptions)
	}
	if !financingPreferences[input.Preference] {
		return domain.FinancingComparison{}, eris.Wrapf(ErrInvalidInput, "unknown preference %q", input.Preference)
	}
	if input.MinDSCR < 0 {
		return domain.FinancingComparison{}, eris.Wrap(ErrInvalidInput, "minimum DSCR must not be negative")
	}

	scenarios := make([]scenario, len(input.Options))
	for i, opt := range input.Options {
		in := withFinancing(input.Property, opt)
		if err := Validate(in); err != nil {
			return domain.FinancingComparison{}, eris.Wrapf(err, "option %d", i+1)
		}
		scenarios[i].option = opt
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentScenarios)
	for i := range scenarios {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scenarios[i].analysis = Calculate(withFinancing(input.Property, scenarios[i].option))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.FinancingComparison{}, eris.Wrap(err, "financing: compare")
	}

	// Filtrar por DSCR mínimo
	viable := make([]scenario, 0, len(scenarios))
	for _, sc := range scenarios {
		if input.MinDSCR > 0 && sc.analysis.Returns.DSCR < input.MinDSCR {
			zap.L().Debug("financing option below minimum DSCR",
				zap.String("option", sc.option.Name),
				zap.Float64("dscr", sc.analysis.Returns.DSCR),
			)
			continue
		}
		viable = append(viable, sc)
	}
	if len(viable) == 0 {
		return domain.FinancingComparison{}, eris.Wrapf(ErrNoViableFinancing, "minimum DSCR %.2f", input.MinDSCR)
	}

	scores := scoreScenarios(viable, input.Preference)
	recommendations := make([]domain.FinancingRecommendation, len(viable))
	for i, sc := range viable {
		recommendations[i] = domain.FinancingRecommendation{
			Option:            sc.option,
			MonthlyPI:         roundTo2Decimals(sc.analysis.Mortgage.MonthlyPI),
			InitialInvestment: roundTo2Decimals(sc.analysis.Mortgage.InitialInvestment),
			AnnualCashFlow:    roundTo2Decimals(sc.analysis.Returns.AnnualCashFlow),
			CashOnCashROI:     roundTo2Decimals(sc.analysis.Returns.CashOnCashROI),
			DSCR:              finiteOrNil(sc.analysis.Returns.DSCR),
			Score:             scores[i],
			Reason:            generateReason(input.Preference),
		}
	}

	// Ordenar por score descendente
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	recommendations[0].Reason = recommendationSummary(recommendations)

	return domain.FinancingComparison{
		Recommended:     recommendations[0].Option,
		Recommendations: recommendations,
	}, nil
}

func withFinancing(in domain.PropertyInputs, opt domain.FinancingOption) domain.PropertyInputs {
	in.DownPaymentPercent = opt.DownPaymentPercent
	in.InterestRatePercent = opt.InterestRatePercent
	in.LoanTermYears = opt.LoanTermYears
	return in
}

// scoreScenarios normalizes annual cash flow and cash-on-cash ROI across the
// candidates to 0-10 and weights them by preference.
func scoreScenarios(scenarios []scenario, preference string) []float64 {
	minCF, maxCF := math.Inf(1), math.Inf(-1)
	minCoC, maxCoC := math.Inf(1), math.Inf(-1)
	for _, sc := range scenarios {
		cf := sc.analysis.Returns.AnnualCashFlow
		coc := sc.analysis.Returns.CashOnCashROI
		minCF, maxCF = math.Min(minCF, cf), math.Max(maxCF, cf)
		minCoC, maxCoC = math.Min(minCoC, coc), math.Max(maxCoC, coc)
	}

	scores := make([]float64, len(scenarios))
	for i, sc := range scenarios {
		cashFlowScore := normalize(sc.analysis.Returns.AnnualCashFlow, minCF, maxCF)
		returnScore := normalize(sc.analysis.Returns.CashOnCashROI, minCoC, maxCoC)

		var score float64
		switch preference {
		case "maximize_cash_flow":
			score = 0.7*cashFlowScore + 0.3*returnScore
		case "maximize_return":
			score = 0.3*cashFlowScore + 0.7*returnScore
		case "balanced":
			score = 0.5*cashFlowScore + 0.5*returnScore
		}
		scores[i] = roundTo2Decimals(score)
	}
	return scores
}

// normalize maps v from [lo, hi] onto [0, 10]. A degenerate range scores full marks.
func normalize(v, lo, hi float64) float64 {
	if hi-lo <= 0 {
		return financingScoreMaxPoints
	}
	return financingScoreMaxPoints * (v - lo) / (hi - lo)
}

func finiteOrNil(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

func generateReason(preference string) string {
	switch preference {
	case "maximize_cash_flow":
		return "Financing optimized for annual cash flow"
	case "maximize_return":
		return "Financing optimized for cash-on-cash return"
	case "balanced":
		return "Balance between cash flow and return on invested cash"
	}
	return "Recommendation based on the provided parameters"
}

// recommendationSummary describes the top option against up to
// maxReasonAlternatives runners-up.
func recommendationSummary(ranked []domain.FinancingRecommendation) string {
	top := ranked[0]
	summary := fmt.Sprintf("%s: %.2f%% down at %.3f%% over %g years yields $%.2f/yr cash flow (%.2f%% cash-on-cash) on $%.2f invested.",
		optionLabel(top.Option), top.Option.DownPaymentPercent, top.Option.InterestRatePercent,
		top.Option.LoanTermYears, top.AnnualCashFlow, top.CashOnCashROI, top.InitialInvestment)

	for i := 1; i < len(ranked) && i <= maxReasonAlternatives; i++ {
		alt := ranked[i]
		summary += fmt.Sprintf(" %s: $%.2f/yr, %.2f%%.", optionLabel(alt.Option), alt.AnnualCashFlow, alt.CashOnCashROI)
	}
	return summary
}

func optionLabel(opt domain.FinancingOption) string {
	if opt.Name != "" {
		return opt.Name
	}
	return fmt.Sprintf("%g%% down / %g years", opt.DownPaymentPercent, opt.LoanTermYears)
}
