package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight-dev/finsight/internal/model"
)

func TestRank(t *testing.T) {
	metrics := []model.Metric{
		{Feature: "Spending Control", Impact: 12.4},
		{Feature: "Savings Rate", Impact: 31.9},
		{Feature: "Stability Buffer", Impact: 7.1},
		{Feature: "Debt Management", Impact: 22.0},
	}

	d, err := Rank(metrics)
	require.NoError(t, err)

	assert.Equal(t, "Savings Rate", d.Bottleneck)
	for i := 1; i < len(d.Metrics); i++ {
		assert.GreaterOrEqual(t, d.Metrics[i-1].Impact, d.Metrics[i].Impact)
	}
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	metrics := []model.Metric{
		{Feature: "Investment Velocity", Impact: 10},
		{Feature: "Savings Rate", Impact: 10},
		{Feature: "Debt Management", Impact: 10},
	}

	d, err := Rank(metrics)
	require.NoError(t, err)

	assert.Equal(t, "Investment Velocity", d.Bottleneck)
	assert.Equal(t, "Savings Rate", d.Metrics[1].Feature)
	assert.Equal(t, "Debt Management", d.Metrics[2].Feature)
}

func TestRank_Empty(t *testing.T) {
	_, err := Rank(nil)
	assert.ErrorIs(t, err, ErrNoMetrics)

	_, err = Rank([]model.Metric{})
	assert.ErrorIs(t, err, ErrNoMetrics)
}

func TestRank_InputUntouched(t *testing.T) {
	metrics := []model.Metric{
		{Feature: "A", Impact: 1},
		{Feature: "B", Impact: 9},
	}
	_, err := Rank(metrics)
	require.NoError(t, err)

	assert.Equal(t, "A", metrics[0].Feature, "caller's slice keeps its order")
}
