package export

import (
	"io"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"

	"rental-agent/domain"
)

// WriteCSV writes one header row and one row per projection year.
func WriteCSV(w io.Writer, projections []domain.YearlyProjection) error {
	b, err := csvutil.Marshal(projections)
	if err != nil {
		return eris.Wrap(err, "csv: marshal projections")
	}
	if _, err := w.Write(b); err != nil {
		return eris.Wrap(err, "csv: write")
	}
	return nil
}
