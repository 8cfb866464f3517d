package service

import "rental-agent/domain"

// Calculate runs the full analysis for one input snapshot. It is a pure
// function: it keeps no state between calls and never returns an error;
// every zero denominator resolves to a defined value instead.
func Calculate(in domain.PropertyInputs) domain.Analysis {
	proForma := CalculateProForma(in)
	mortgage := CalculateMortgage(in)
	returns := CalculateReturns(proForma, mortgage, in)
	projections := ProjectYears(in, proForma, mortgage)

	return domain.Analysis{
		ProForma:          proForma,
		Mortgage:          mortgage,
		Returns:           returns,
		YearlyProjections: projections,
	}
}
