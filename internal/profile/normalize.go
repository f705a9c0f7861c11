// Package profile converts raw backend profiles into the normalized numeric
// form the engines consume.
package profile

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsight-dev/finsight/internal/model"
)

// DateLayout is the wire format of target_date.
const DateLayout = "2006-01-02"

// Normalize coerces a raw profile into numeric form. Absent or non-numeric
// fields become 0 and an unparseable target date becomes the zero time; this
// is a forgiving parse, not a validating one. Percentages are not clamped to
// [0,100] here, downstream code must tolerate out-of-range values.
func Normalize(raw model.RawProfile) model.Profile {
	return model.Profile{
		Name:                raw.Name,
		Profession:          raw.Profession,
		Salary:              decimal.NewFromFloat(Number(raw.Salary)),
		SavingsPercentage:   Number(raw.SavingsPercentage),
		InvestingRate:       Number(raw.InvestingRate),
		NecessityPercentage: Number(raw.NecessityPercentage),
		SpendingRate:        Number(raw.SpendingRate),
		DebtLoad:            Number(raw.DebtLoad),
		TargetAmount:        decimal.NewFromFloat(Number(raw.TargetAmount)),
		TargetDate:          parseDate(raw.TargetDate),
		StabilityBuffer:     Number(raw.StabilityBuffer),
		Strength:            raw.SpiderData,
		AIScore:             Number(raw.AIScore),
		MLAccuracy:          Number(raw.MLAccuracy),
	}
}

// Number coerces a loosely typed JSON value to float64, defaulting to 0 for
// anything that is not a number or a numeric string.
func Number(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
