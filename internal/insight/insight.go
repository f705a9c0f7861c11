// Package insight applies threshold rules to derived cash-flow metrics to
// produce a qualitative verdict.
package insight

import (
	"fmt"
	"math"

	"github.com/finsight-dev/finsight/internal/model"
)

// Inputs are the metrics the classifier reads. Efficiency is the backend's
// score (or its proxy, see EffectiveScore); BurnRatio is the projection
// series' burn percentage.
type Inputs struct {
	Efficiency float64
	BurnRatio  float64
}

// rule is one band of the decision list.
type rule struct {
	match   func(in Inputs) bool
	verdict func(in Inputs) model.InsightVerdict
}

// rules are evaluated top-down; the first match wins. The bands overlap
// numerically (a high efficiency score wins even under a critical burn
// ratio), so order matters. New bands slot in without restructuring.
var rules = []rule{
	{
		match: func(in Inputs) bool { return in.Efficiency > 80 },
		verdict: func(Inputs) model.InsightVerdict {
			return model.InsightVerdict{
				Text:     "Optimal Efficiency: Your savings velocity is outpacing burn rate. Consider high-yield deployment.",
				Severity: model.SeverityPositive,
			}
		},
	},
	{
		match: func(in Inputs) bool { return in.BurnRatio > 75 },
		verdict: func(in Inputs) model.InsightVerdict {
			return model.InsightVerdict{
				Text:     fmt.Sprintf("Critical Alert: Lifestyle burn is consuming %d%%+ of revenue. Sustainability score decreasing.", int(math.Round(in.BurnRatio))),
				Severity: model.SeverityCritical,
			}
		},
	},
	{
		match: func(Inputs) bool { return true },
		verdict: func(Inputs) model.InsightVerdict {
			return model.InsightVerdict{
				Text:     "Steady Growth: Maintain current strategy to hit year-end projections.",
				Severity: model.SeverityNeutral,
			}
		},
	},
}

// Classify walks the decision list and returns the first matching verdict.
// Stateless: the same inputs always yield the same verdict.
func Classify(in Inputs) model.InsightVerdict {
	for _, r := range rules {
		if r.match(in) {
			return r.verdict(in)
		}
	}
	// Unreachable: the last rule is a catch-all.
	return model.InsightVerdict{Severity: model.SeverityNeutral}
}

// EffectiveScore resolves the efficiency input from a profile: the backend's
// ai_score when present (non-zero), else the savings percentage stands in.
func EffectiveScore(p model.Profile) float64 {
	if p.AIScore != 0 {
		return p.AIScore
	}
	return p.SavingsPercentage
}
