package profile

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight-dev/finsight/internal/model"
)

func TestNormalize_NumericStrings(t *testing.T) {
	raw := model.RawProfile{
		Salary:            "120000",
		SavingsPercentage: "20",
		SpendingRate:      50.0,
		TargetAmount:      "24000.50",
	}

	p := Normalize(raw)

	assert.True(t, p.Salary.Equal(dec("120000")), "salary %s", p.Salary)
	assert.InDelta(t, 20, p.SavingsPercentage, 0.001)
	assert.InDelta(t, 50, p.SpendingRate, 0.001)
	assert.True(t, p.TargetAmount.Equal(dec("24000.5")), "target amount %s", p.TargetAmount)
}

func TestNormalize_MalformedFieldsDefaultToZero(t *testing.T) {
	raw := model.RawProfile{
		Salary:        "not-a-number",
		InvestingRate: map[string]any{"nested": true},
		DebtLoad:      nil,
	}

	p := Normalize(raw)

	assert.True(t, p.Salary.IsZero())
	assert.Zero(t, p.InvestingRate)
	assert.Zero(t, p.DebtLoad)
	assert.Zero(t, p.NecessityPercentage, "absent field defaults to zero")
}

func TestNormalize_TargetDate(t *testing.T) {
	p := Normalize(model.RawProfile{TargetDate: "2027-03-15"})
	assert.Equal(t, time.Date(2027, 3, 15, 0, 0, 0, 0, time.UTC), p.TargetDate)

	p = Normalize(model.RawProfile{TargetDate: "15/03/2027"})
	assert.True(t, p.TargetDate.IsZero(), "unparseable date becomes zero time")

	p = Normalize(model.RawProfile{})
	assert.True(t, p.TargetDate.IsZero())
}

func TestNormalize_OutOfRangePercentagesPassThrough(t *testing.T) {
	p := Normalize(model.RawProfile{SavingsPercentage: 250.0, DebtLoad: -10.0})
	assert.InDelta(t, 250, p.SavingsPercentage, 0.001)
	assert.InDelta(t, -10, p.DebtLoad, 0.001)
}

func TestNormalize_FromBackendJSON(t *testing.T) {
	payload := `{
		"name": "Ada",
		"salary": 96000,
		"savings_percentage": "15",
		"investing_rate": 10,
		"spending_rate": 40,
		"target_date": "2027-01-01",
		"spider_data": [{"subject": "Savings", "A": 15}],
		"ai_score": 62
	}`
	var raw model.RawProfile
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	p := Normalize(raw)

	assert.Equal(t, "Ada", p.Name)
	assert.True(t, p.Salary.Equal(dec("96000")))
	assert.InDelta(t, 15, p.SavingsPercentage, 0.001)
	assert.True(t, p.MonthlyIncome().Equal(dec("8000")), "monthly income %s", p.MonthlyIncome())
	assert.InDelta(t, 62, p.AIScore, 0.001)
	require.Len(t, p.Strength, 1)
	assert.Equal(t, "Savings", p.Strength[0].Subject)
}

func TestNumber(t *testing.T) {
	assert.InDelta(t, 1.5, Number(1.5), 0.0001)
	assert.InDelta(t, 7, Number("7"), 0.0001)
	assert.InDelta(t, 3, Number(json.Number("3")), 0.0001)
	assert.Zero(t, Number(""))
	assert.Zero(t, Number(true))
	assert.Zero(t, Number(nil))
}
