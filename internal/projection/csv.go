package projection

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Header is the CSV header for an exported projection series.
const Header = "month,necessities,lifestyle,debt_service,investing,cumulative_gain,cumulative_burn"

const numFields = 7

// WriteCSV writes the series (header included) with one row per month,
// combining the flow record and projection point for that month.
func WriteCSV(w io.Writer, s Series) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, flow := range s.Flows {
		point := s.Points[i]
		row := make([]string, numFields)
		row[0] = flow.Label
		row[1] = flow.Necessities.StringFixed(0)
		row[2] = flow.Lifestyle.StringFixed(0)
		row[3] = flow.DebtService.StringFixed(0)
		row[4] = flow.Investing.StringFixed(0)
		row[5] = point.CumulativeGain.StringFixed(0)
		row[6] = point.CumulativeBurn.StringFixed(0)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
