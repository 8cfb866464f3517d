package export

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"

	"rental-agent/domain"
)

type summaryLine struct {
	label string
	value float64
	ok    bool // false when the value has no finite representation
}

func summaryLines(a domain.Analysis) []summaryLine {
	line := func(label string, v float64) summaryLine {
		return summaryLine{label: label, value: v, ok: !math.IsInf(v, 0) && !math.IsNaN(v)}
	}
	return []summaryLine{
		line("Gross Monthly Rent", a.ProForma.GrossMonthlyRent),
		line("Monthly Operating Expenses", a.ProForma.MonthlyOperatingExpenses),
		line("Monthly NOI", a.ProForma.MonthlyNOI),
		line("Annual NOI", a.ProForma.AnnualNOI),
		line("Cap Rate %", a.ProForma.CapRate),
		line("Down Payment", a.Mortgage.DownPaymentAmount),
		line("Loan Amount", a.Mortgage.LoanAmount),
		line("Initial Investment", a.Mortgage.InitialInvestment),
		line("Monthly P&I", a.Mortgage.MonthlyPI),
		line("Annual Debt Service", a.Mortgage.AnnualDebtService),
		line("Monthly Cash Flow", a.Returns.MonthlyCashFlow),
		line("Annual Cash Flow", a.Returns.AnnualCashFlow),
		line("Cash-on-Cash ROI %", a.Returns.CashOnCashROI),
		line("DSCR", a.Returns.DSCR),
		line("1% Rule %", a.Returns.OnePercentRule),
		line("50% Rule %", a.Returns.FiftyPercentRule),
	}
}

// WriteSummary renders the headline metrics and the projections for years
// as aligned plain text.
func WriteSummary(w io.Writer, a domain.Analysis, years []int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	for _, l := range summaryLines(a) {
		value := "n/a"
		if l.ok {
			value = fmt.Sprintf("%.2f", l.value)
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", l.label, value)
	}
	fmt.Fprintf(tw, "1%% Rule\t%s\t\n", passFail(a.Returns.Rules.OnePercentPass))
	fmt.Fprintf(tw, "50%% Rule\t%s\t\n", passFail(a.Returns.Rules.FiftyPercentPass))
	fmt.Fprintf(tw, "DSCR Rule\t%s\t\n", passFail(a.Returns.Rules.DSCRPass))
	fmt.Fprintln(tw, "\t\t")

	projections := a.YearlyProjections
	if len(years) > 0 {
		projections = domain.SelectYears(projections, years)
	}

	fmt.Fprintln(tw, strings.Join([]string{"Year", "Value", "Income", "NOI", "Debt Service", "Balance", "Post-Tax CF", "Sale Profit", "ROI Post-Tax %"}, "\t")+"\t")
	for _, p := range projections {
		fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
			p.Year, p.PropertyValue, p.RentalIncome, p.NOI, p.DebtService,
			p.RemainingLoanBalance, p.PostTaxCashFlow, p.TotalProfitOnSale, p.ROIPostTax)
	}

	if err := tw.Flush(); err != nil {
		return eris.Wrap(err, "summary: flush")
	}
	return nil
}

func passFail(pass bool) string {
	if pass {
		return "PASS"
	}
	return "FAIL"
}
