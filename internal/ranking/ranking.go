// Package ranking orders predictor metrics into a display-ready diagnosis.
package ranking

import (
	"errors"
	"sort"

	"github.com/finsight-dev/finsight/internal/model"
)

// ErrNoMetrics means the aggregator was given nothing to rank; there is no
// diagnosis available.
var ErrNoMetrics = errors.New("no metrics to rank")

// Diagnosis is a ranked metric list with the headline bottleneck pulled out.
type Diagnosis struct {
	Bottleneck string // feature of the highest-impact metric
	Metrics    []model.Metric
}

// Rank sorts metrics by descending impact (ties keep input order) and
// designates the top entry's feature as the bottleneck. Impacts are never
// recomputed; this is purely an ordering and selection step over a copy of
// the input.
func Rank(metrics []model.Metric) (Diagnosis, error) {
	if len(metrics) == 0 {
		return Diagnosis{}, ErrNoMetrics
	}

	ranked := make([]model.Metric, len(metrics))
	copy(ranked, metrics)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Impact > ranked[j].Impact
	})

	return Diagnosis{Bottleneck: ranked[0].Feature, Metrics: ranked}, nil
}
