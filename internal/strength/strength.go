// Package strength maintains the fixed multi-axis strength profile template
// and merges backend-supplied axis scores onto it.
package strength

import "github.com/finsight-dev/finsight/internal/model"

// Axis names, in display order. The order never changes; the radar summary
// relies on it matching the default template.
const (
	AxisSavings   = "Savings"
	AxisInvesting = "Investing"
	AxisSpending  = "Spending"
	AxisDebt      = "Debt"
	AxisStability = "Stability"
)

// Default returns the all-zero template in canonical axis order.
func Default() model.StrengthProfile {
	return model.StrengthProfile{
		{Subject: AxisSavings},
		{Subject: AxisInvesting},
		{Subject: AxisSpending},
		{Subject: AxisDebt},
		{Subject: AxisStability},
	}
}

// Merge maps incoming axis scores onto the canonical template. Axes the
// backend omits stay zero; axes it invents are dropped. The result always
// has the same length and order as Default.
func Merge(incoming model.StrengthProfile) model.StrengthProfile {
	byName := make(map[string]float64, len(incoming))
	for _, a := range incoming {
		byName[a.Subject] = a.Score
	}

	merged := Default()
	for i := range merged {
		merged[i].Score = byName[merged[i].Subject]
	}
	return merged
}
