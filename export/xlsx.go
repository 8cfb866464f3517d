package export

import (
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"rental-agent/domain"
)

const (
	summarySheet    = "Summary"
	projectionSheet = "Projections"
)

var projectionHeaders = []string{
	"Year", "Property Value", "Rental Income", "Operating Expenses", "NOI",
	"Debt Service", "Interest Paid", "Principal Paid", "Remaining Loan Balance",
	"Pre-Tax Cash Flow", "Depreciation", "Taxable Income", "Tax Liability",
	"Post-Tax Cash Flow", "Total Profit On Sale", "Cap Rate On Value",
	"Cash-on-Cash Pre-Tax", "ROI Pre-Tax", "Cash-on-Cash Post-Tax", "ROI Post-Tax",
}

// WriteXLSX writes a workbook with a summary sheet and the full projection table.
func WriteXLSX(w io.Writer, a domain.Analysis) error {
	f := xlsx.NewFile()

	summary, err := f.AddSheet(summarySheet)
	if err != nil {
		return eris.Wrap(err, "xlsx: add summary sheet")
	}
	for _, line := range summaryLines(a) {
		row := summary.AddRow()
		row.AddCell().SetString(line.label)
		if line.ok {
			row.AddCell().SetFloat(line.value)
		} else {
			row.AddCell().SetString("n/a")
		}
	}

	sheet, err := f.AddSheet(projectionSheet)
	if err != nil {
		return eris.Wrap(err, "xlsx: add projection sheet")
	}
	header := sheet.AddRow()
	for _, h := range projectionHeaders {
		header.AddCell().SetString(h)
	}
	for _, p := range a.YearlyProjections {
		row := sheet.AddRow()
		row.AddCell().SetInt(p.Year)
		for _, v := range projectionValues(p) {
			row.AddCell().SetFloat(v)
		}
	}

	if err := f.Write(w); err != nil {
		return eris.Wrap(err, "xlsx: write workbook")
	}
	return nil
}

func projectionValues(p domain.YearlyProjection) []float64 {
	return []float64{
		p.PropertyValue, p.RentalIncome, p.OperatingExpenses, p.NOI,
		p.DebtService, p.InterestPaid, p.PrincipalPaid, p.RemainingLoanBalance,
		p.PreTaxCashFlow, p.Depreciation, p.TaxableIncome, p.TaxLiability,
		p.PostTaxCashFlow, p.TotalProfitOnSale, p.CapRateOnValue,
		p.CashOnCashPreTax, p.ROIPreTax, p.CashOnCashPostTax, p.ROIPostTax,
	}
}
