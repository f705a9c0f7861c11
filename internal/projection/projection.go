// Package projection expands a normalized profile into a bounded monthly
// cash-flow series and a cumulative gain/burn projection.
package projection

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsight-dev/finsight/internal/model"
)

const (
	// MinHorizonMonths and MaxHorizonMonths bound the projection horizon.
	MinHorizonMonths = 1
	MaxHorizonMonths = 36

	// DefaultHorizonMonths is used when the profile has no target date.
	DefaultHorizonMonths = 12
)

var (
	oneHundred = decimal.NewFromInt(100)
)

// Series is the full output of a projection run. MonthlySavings and
// TotalMonthlyBurn are kept at full precision; the per-month records and
// points carry the rounded display values.
type Series struct {
	Horizon          int // months, within [MinHorizonMonths, MaxHorizonMonths]
	Flows            []model.MonthlyFlowRecord
	Points           []model.ProjectionPoint
	MonthlySavings   decimal.Decimal
	TotalMonthlyBurn decimal.Decimal
	MonthlyIncome    decimal.Decimal
}

// Horizon computes the projection span in whole calendar months from now to
// target, clamped to [MinHorizonMonths, MaxHorizonMonths]. A zero target
// yields DefaultHorizonMonths. The difference is by calendar-month
// subtraction, not day count, so partial months truncate.
func Horizon(now, target time.Time) int {
	if target.IsZero() {
		return DefaultHorizonMonths
	}
	months := (target.Year()-now.Year())*12 + int(target.Month()) - int(now.Month())
	if months < MinHorizonMonths {
		return MinHorizonMonths
	}
	if months > MaxHorizonMonths {
		return MaxHorizonMonths
	}
	return months
}

// Project builds the monthly flow series and cumulative projection for a
// profile as of now. The series holds horizon+1 entries: the starting month
// plus every month up to and including the target. A past target date is not
// rejected here; it simply clamps the horizon to its minimum.
func Project(p model.Profile, now time.Time) Series {
	horizon := Horizon(now, p.TargetDate)
	labels := monthLabels(now, horizon+1)

	income := p.MonthlyIncome()
	necessities := pctOf(income, p.NecessityPercentage).Round(0)
	lifestyle := pctOf(income, p.SpendingRate).Round(0)
	debtService := pctOf(income, p.DebtLoad).Round(0)
	investing := pctOf(income, p.InvestingRate).Round(0)

	burn := pctOf(income, p.SpendingRate).
		Add(pctOf(income, p.DebtLoad)).
		Add(pctOf(income, p.InvestingRate))
	savings := pctOf(income, p.SavingsPercentage)

	s := Series{
		Horizon:          horizon,
		Flows:            make([]model.MonthlyFlowRecord, 0, len(labels)),
		Points:           make([]model.ProjectionPoint, 0, len(labels)),
		MonthlySavings:   savings,
		TotalMonthlyBurn: burn,
		MonthlyIncome:    income,
	}

	for i, label := range labels {
		s.Flows = append(s.Flows, model.MonthlyFlowRecord{
			Label:       label,
			Necessities: necessities,
			Lifestyle:   lifestyle,
			DebtService: debtService,
			Investing:   investing,
		})

		// Rounding is per point, not carried forward, so the series may
		// drift slightly from an unrounded running total.
		n := decimal.NewFromInt(int64(i + 1))
		s.Points = append(s.Points, model.ProjectionPoint{
			Label:          label,
			CumulativeGain: savings.Mul(n).Round(0),
			CumulativeBurn: burn.Mul(n).Round(0),
		})
	}
	return s
}

// BurnRatio is TotalMonthlyBurn over income net of savings, as a percentage.
// The denominator deliberately excludes savings, mirroring the backend's
// dashboard math, so the ratio can exceed 100 when burn outpaces net income.
// A zero income yields 0.
func (s Series) BurnRatio() float64 {
	if s.MonthlyIncome.IsZero() {
		return 0
	}
	net, _ := s.MonthlyIncome.Sub(s.MonthlySavings).Float64()
	burn, _ := s.TotalMonthlyBurn.Float64()
	return burn / net * 100
}

func pctOf(amount decimal.Decimal, pct float64) decimal.Decimal {
	return amount.Mul(decimal.NewFromFloat(pct)).Div(oneHundred)
}

// monthLabels returns n short month names starting at now's calendar month.
func monthLabels(now time.Time, n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = time.Date(now.Year(), now.Month()+time.Month(i), 1, 0, 0, 0, 0, time.UTC).Format("Jan")
	}
	return labels
}
