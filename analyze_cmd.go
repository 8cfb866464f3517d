package main

import (
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"rental-agent/domain"
	"rental-agent/export"
	"rental-agent/service"
)

var (
	analyzeInput    string
	analyzeCSV      string
	analyzeXLSX     string
	analyzeAllYears bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a property and print the summary",
	Long: `Runs the full analysis for one property and prints the pro forma,
mortgage, return metrics and projection table.

The input file is YAML or JSON using the same field names as the API.
Fields it leaves out keep their seed-scenario values.

Examples:
  rental-agent analyze
  rental-agent analyze --input duplex.yaml --all-years
  rental-agent analyze --input duplex.yaml --csv years.csv --xlsx report.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := loadInputs(analyzeInput)
		if err != nil {
			return err
		}

		return runAnalyze(cmd.OutOrStdout(), in, analyzeOptions{
			csvPath:  analyzeCSV,
			xlsxPath: analyzeXLSX,
			allYears: analyzeAllYears,
		})
	},
}

type analyzeOptions struct {
	csvPath  string
	xlsxPath string
	allYears bool
}

// loadInputs reads PropertyInputs from path on top of the seed scenario.
// An empty path returns the seed scenario unchanged.
func loadInputs(path string) (domain.PropertyInputs, error) {
	in := domain.DefaultInputs()
	if path == "" {
		return in, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.PropertyInputs{}, eris.Wrapf(err, "analyze: read %s", path)
	}
	if err := yaml.Unmarshal(data, &in); err != nil {
		return domain.PropertyInputs{}, eris.Wrapf(err, "analyze: parse %s", path)
	}
	return in, nil
}

func runAnalyze(w io.Writer, in domain.PropertyInputs, opts analyzeOptions) error {
	if err := service.Validate(in); err != nil {
		return err
	}

	analysis := service.Calculate(in)

	years := domain.DisplayYears
	if opts.allYears {
		years = nil
	}
	if err := export.WriteSummary(w, analysis, years); err != nil {
		return eris.Wrap(err, "analyze: write summary")
	}

	if opts.csvPath != "" {
		if err := writeFile(opts.csvPath, func(f io.Writer) error {
			return export.WriteCSV(f, analysis.YearlyProjections)
		}); err != nil {
			return err
		}
		zap.L().Info("wrote csv export", zap.String("path", opts.csvPath))
	}

	if opts.xlsxPath != "" {
		if err := writeFile(opts.xlsxPath, func(f io.Writer) error {
			return export.WriteXLSX(f, analysis)
		}); err != nil {
			return err
		}
		zap.L().Info("wrote xlsx export", zap.String("path", opts.xlsxPath))
	}

	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "analyze: create %s", path)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return eris.Wrapf(err, "analyze: write %s", path)
	}
	if err := f.Close(); err != nil {
		return eris.Wrapf(err, "analyze: close %s", path)
	}
	return nil
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeInput, "input", "", "YAML or JSON property inputs (default seed scenario)")
	analyzeCmd.Flags().StringVar(&analyzeCSV, "csv", "", "write every projection year to this CSV file")
	analyzeCmd.Flags().StringVar(&analyzeXLSX, "xlsx", "", "write an Excel workbook to this file")
	analyzeCmd.Flags().BoolVar(&analyzeAllYears, "all-years", false, "print every projection year instead of the display years")
	rootCmd.AddCommand(analyzeCmd)
}
