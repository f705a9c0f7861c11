package projection

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight-dev/finsight/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func baseProfile() model.Profile {
	return model.Profile{
		Salary:              dec("120000"),
		SavingsPercentage:   20,
		SpendingRate:        50,
		DebtLoad:            0,
		InvestingRate:       10,
		NecessityPercentage: 0,
	}
}

func TestHorizon(t *testing.T) {
	now := date(2026, 8, 31)

	assert.Equal(t, 12, Horizon(now, time.Time{}), "no target defaults to 12")
	assert.Equal(t, 6, Horizon(now, date(2027, 2, 1)))
	assert.Equal(t, 6, Horizon(now, date(2027, 2, 28)), "partial months truncate")
	assert.Equal(t, 1, Horizon(now, date(2026, 8, 15)), "same month clamps to minimum")
	assert.Equal(t, 1, Horizon(now, date(2020, 1, 1)), "past target clamps, not rejected")
	assert.Equal(t, 36, Horizon(now, date(2040, 1, 1)), "far target clamps to maximum")
}

func TestProject_ReferenceScenario(t *testing.T) {
	// salary 120000, savings 20%, lifestyle 50%, investing 10%: income 10000,
	// savings 2000/mo, burn 6000/mo.
	s := Project(baseProfile(), date(2026, 8, 31))

	assert.Equal(t, 12, s.Horizon)
	require.Len(t, s.Flows, 13, "horizon+1 records")
	require.Len(t, s.Points, 13)

	assert.True(t, s.MonthlyIncome.Equal(dec("10000")))
	assert.True(t, s.MonthlySavings.Equal(dec("2000")))
	assert.True(t, s.TotalMonthlyBurn.Equal(dec("6000")))

	first := s.Flows[0]
	assert.Equal(t, "Aug", first.Label)
	assert.True(t, first.Necessities.IsZero())
	assert.True(t, first.Lifestyle.Equal(dec("5000")))
	assert.True(t, first.DebtService.IsZero())
	assert.True(t, first.Investing.Equal(dec("1000")))

	assert.True(t, s.Points[0].CumulativeGain.Equal(dec("2000")))
	assert.True(t, s.Points[0].CumulativeBurn.Equal(dec("6000")))
	assert.True(t, s.Points[12].CumulativeGain.Equal(dec("26000")))
	assert.True(t, s.Points[12].CumulativeBurn.Equal(dec("78000")))

	assert.InDelta(t, 75, s.BurnRatio(), 0.0001, "6000/(10000-2000) is exactly 75%")
}

func TestProject_FlowsRepeatAcrossMonths(t *testing.T) {
	s := Project(baseProfile(), date(2026, 1, 15))
	for _, flow := range s.Flows[1:] {
		assert.True(t, flow.Lifestyle.Equal(s.Flows[0].Lifestyle))
		assert.True(t, flow.Investing.Equal(s.Flows[0].Investing))
	}
}

func TestProject_MonthLabelsWrapYear(t *testing.T) {
	p := baseProfile()
	p.TargetDate = date(2027, 2, 1)
	s := Project(p, date(2026, 11, 10))

	require.Equal(t, 3, s.Horizon)
	labels := []string{s.Flows[0].Label, s.Flows[1].Label, s.Flows[2].Label, s.Flows[3].Label}
	assert.Equal(t, []string{"Nov", "Dec", "Jan", "Feb"}, labels)
}

func TestProject_ZeroSalary(t *testing.T) {
	s := Project(model.Profile{SavingsPercentage: 20, SpendingRate: 50}, date(2026, 8, 31))

	assert.Equal(t, 12, s.Horizon)
	require.Len(t, s.Points, 13)
	for _, pt := range s.Points {
		assert.True(t, pt.CumulativeGain.IsZero())
		assert.True(t, pt.CumulativeBurn.IsZero())
	}
	assert.Zero(t, s.BurnRatio(), "zero income guards the ratio")
}

func TestProject_RoundingPerPoint(t *testing.T) {
	p := model.Profile{Salary: dec("100000"), SavingsPercentage: 33.33}
	s := Project(p, date(2026, 8, 31))

	// savings = 8333.3333.../12... per month; each point rounds on its own.
	for i, pt := range s.Points {
		exact := s.MonthlySavings.Mul(decimal.NewFromInt(int64(i + 1)))
		assert.True(t, pt.CumulativeGain.Equal(exact.Round(0)), "point %d", i)
	}
}

func TestProject_AmountsNonNegative(t *testing.T) {
	p := model.Profile{
		Salary:              dec("55000"),
		SavingsPercentage:   12,
		SpendingRate:        38,
		DebtLoad:            7,
		InvestingRate:       9,
		NecessityPercentage: 30,
	}
	s := Project(p, date(2026, 3, 1))
	for _, flow := range s.Flows {
		assert.False(t, flow.Necessities.IsNegative())
		assert.False(t, flow.Lifestyle.IsNegative())
		assert.False(t, flow.DebtService.IsNegative())
		assert.False(t, flow.Investing.IsNegative())
	}
}

func TestBurnRatio_ExceedsHundredWhenBurnOutpacesNetIncome(t *testing.T) {
	p := model.Profile{Salary: dec("120000"), SavingsPercentage: 20, SpendingRate: 90}
	s := Project(p, date(2026, 8, 31))

	// burn 9000 against 8000 net of savings: the denominator excludes
	// savings on purpose, so the ratio runs past 100.
	assert.InDelta(t, 112.5, s.BurnRatio(), 0.0001)
}

func TestBurnRatio_FullSavings(t *testing.T) {
	p := model.Profile{Salary: dec("120000"), SavingsPercentage: 100, SpendingRate: 10}
	s := Project(p, date(2026, 8, 31))
	assert.True(t, math.IsInf(s.BurnRatio(), 1), "net-of-savings denominator hits zero")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	s := Project(baseProfile(), date(2026, 8, 31))
	require.NoError(t, WriteCSV(&buf, s))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 14, "header + horizon+1 rows")
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "Aug,0,5000,0,1000,2000,6000", lines[1])
}
