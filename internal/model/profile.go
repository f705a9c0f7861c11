package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawProfile is a user profile exactly as the backend returns it. Numeric
// fields may arrive as JSON numbers, numeric strings, or be missing entirely,
// so they are held loosely typed until the profile normalizer coerces them.
type RawProfile struct {
	Name                string         `json:"name,omitempty"`
	Profession          string         `json:"profession,omitempty"`
	Salary              any            `json:"salary,omitempty"`
	SavingsPercentage   any            `json:"savings_percentage,omitempty"`
	InvestingRate       any            `json:"investing_rate,omitempty"`
	NecessityPercentage any            `json:"necessity_percentage,omitempty"`
	SpendingRate        any            `json:"spending_rate,omitempty"`
	DebtLoad            any            `json:"debt_load,omitempty"`
	TargetAmount        any            `json:"target_amount,omitempty"`
	TargetDate          string         `json:"target_date,omitempty"` // "2006-01-02", empty if unset
	StabilityBuffer     any            `json:"stability_buffer,omitempty"`
	SpiderData          []StrengthAxis `json:"spider_data,omitempty"`
	AIScore             any            `json:"ai_score,omitempty"`
	MLAccuracy          any            `json:"ml_accuracy,omitempty"`
}

// Profile is the normalized numeric form consumed by the projection, insight
// and goal engines. Percentages are plain numbers in the 0-100 domain;
// currency amounts are decimals.
type Profile struct {
	Name                string
	Profession          string
	Salary              decimal.Decimal // annual
	SavingsPercentage   float64
	InvestingRate       float64
	NecessityPercentage float64
	SpendingRate        float64
	DebtLoad            float64
	TargetAmount        decimal.Decimal // annual, <= Salary when set through the goal engine
	TargetDate          time.Time       // zero if unset
	StabilityBuffer     float64         // months
	Strength            StrengthProfile
	AIScore             float64
	MLAccuracy          float64
}

// MonthlyIncome returns Salary / 12 at full precision.
func (p Profile) MonthlyIncome() decimal.Decimal {
	return p.Salary.Div(decimal.NewFromInt(12))
}
