package model

import "github.com/shopspring/decimal"

// MonthlyFlowRecord is one projected month of income distribution. Amounts
// are rounded to whole currency units and repeat unchanged across the series
// (the model does not grow income or expenses over time).
type MonthlyFlowRecord struct {
	Label       string // short month name, e.g. "Jan"
	Necessities decimal.Decimal
	Lifestyle   decimal.Decimal
	DebtService decimal.Decimal
	Investing   decimal.Decimal
}

// ProjectionPoint is the cumulative gain/burn position at one month index.
// Values are linear multiples of the monthly figures, rounded per point.
type ProjectionPoint struct {
	Label          string
	CumulativeGain decimal.Decimal
	CumulativeBurn decimal.Decimal
}
