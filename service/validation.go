package service

import (
	"math"
	"sort"

	"github.com/rotisserie/eris"

	"rental-agent/domain"
)

// Validate applies the checks a caller is expected to make before handing
// inputs to Calculate. Calculate itself accepts any values.
func Validate(in domain.PropertyInputs) error {
	if len(in.Units) == 0 {
		return eris.Wrap(ErrInvalidInput, "at least one unit is required")
	}
	if len(in.Units) > MaxUnits {
		return eris.Wrapf(ErrInvalidInput, "unit count exceeds the maximum of %d", MaxUnits)
	}
	for i, unit := range in.Units {
		if !finite(unit.Rent) || !finite(unit.Beds) || !finite(unit.Baths) {
			return eris.Wrapf(ErrInvalidInput, "unit %d has a non-numeric value", i+1)
		}
		if unit.Rent < 0 || unit.Beds < 0 || unit.Baths < 0 {
			return eris.Wrapf(ErrInvalidInput, "unit %d has a negative value", i+1)
		}
		if unit.Rent > MaxMoneyField {
			return eris.Wrapf(ErrInvalidInput, "unit %d rent exceeds the maximum of $%.2f", i+1, MaxMoneyField)
		}
	}

	numbers := map[string]float64{
		"purchasePrice":      in.PurchasePrice,
		"downPaymentPercent": in.DownPaymentPercent,
		"loanTermYears":      in.LoanTermYears,
		"depreciationYears":  in.DepreciationYears,
	}
	for _, name := range sortedKeys(numbers) {
		if !finite(numbers[name]) {
			return eris.Wrapf(ErrInvalidInput, "%s must be a finite number", name)
		}
	}

	if in.PurchasePrice < 0 {
		return eris.Wrap(ErrInvalidInput, "purchase price must not be negative")
	}
	if in.PurchasePrice > MaxPurchasePrice {
		return eris.Wrapf(ErrInvalidInput, "purchase price exceeds the maximum of $%.2f", MaxPurchasePrice)
	}

	money := map[string]float64{
		"closingCost":         in.ClosingCost,
		"initialImprovements": in.InitialImprovements,
		"propertyTaxYear":     in.PropertyTaxYear,
		"insuranceMonth":      in.InsuranceMonth,
		"hoaMonth":            in.HOAMonth,
		"sewerMonth":          in.SewerMonth,
		"garbageMonth":        in.GarbageMonth,
		"waterMonth":          in.WaterMonth,
		"gasMonth":            in.GasMonth,
		"electricMonth":       in.ElectricMonth,
	}
	for _, name := range sortedKeys(money) {
		v := money[name]
		if !finite(v) || v < 0 {
			return eris.Wrapf(ErrInvalidInput, "%s must not be negative", name)
		}
		if v > MaxMoneyField {
			return eris.Wrapf(ErrInvalidInput, "%s exceeds the maximum of $%.2f", name, MaxMoneyField)
		}
	}

	if in.DownPaymentPercent < 0 || in.DownPaymentPercent > 100 {
		return eris.Wrap(ErrInvalidInput, "down payment must be between 0% and 100%")
	}

	rates := map[string]float64{
		"interestRatePercent":      in.InterestRatePercent,
		"propertyMgmtPercent":      in.PropertyMgmtPercent,
		"vacancyPercent":           in.VacancyPercent,
		"maintenancePercent":       in.MaintenancePercent,
		"appreciationPercent":      in.AppreciationPercent,
		"rentIncreasePercent":      in.RentIncreasePercent,
		"expenseIncreasePercent":   in.ExpenseIncreasePercent,
		"insuranceIncreasePercent": in.InsuranceIncreasePercent,
		"utilitiesIncreasePercent": in.UtilitiesIncreasePercent,
		"salesCostPercent":         in.SalesCostPercent,
		"incomeTaxRatePercent":     in.IncomeTaxRatePercent,
		"capitalGainsRatePercent":  in.CapitalGainsRatePercent,
	}
	for _, name := range sortedKeys(rates) {
		v := rates[name]
		if !finite(v) || v < MinRatePercent || v > MaxRatePercent {
			return eris.Wrapf(ErrInvalidInput, "%s must be between %.0f%% and %.0f%%", name, MinRatePercent, MaxRatePercent)
		}
	}

	if in.LoanTermYears < 0 {
		return eris.Wrap(ErrInvalidInput, "loan term must not be negative")
	}
	if in.LoanTermYears > MaxLoanTermYears {
		return eris.Wrapf(ErrInvalidInput, "loan term exceeds the maximum of %d years", MaxLoanTermYears)
	}
	if in.DepreciationYears < 0 || in.DepreciationYears > MaxDepreciationYears {
		return eris.Wrapf(ErrInvalidInput, "depreciation years must be between 0 and %d", MaxDepreciationYears)
	}

	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
