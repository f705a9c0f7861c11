package model

import "time"

// Metric is a single named impact score from the predictor's report.
type Metric struct {
	Feature string  `json:"feature"`
	Impact  float64 `json:"impact"`
	Value   float64 `json:"value,omitempty"`
}

// Report is a diagnostic report from the predictor. ID and Timestamp are set
// only on reports persisted by the report store.
type Report struct {
	ID             string   `json:"_id,omitempty"`
	PrimaryIssue   string   `json:"primary_issue"`
	Recommendation string   `json:"recommendation"`
	Accuracy       float64  `json:"accuracy"`
	Metrics        []Metric `json:"all_metrics"`
	Timestamp      string   `json:"timestamp,omitempty"`
}

// Time parses the report timestamp. The backend emits ISO-8601 with or
// without a zone suffix, so both layouts are tried.
func (r Report) Time() (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, r.Timestamp); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", r.Timestamp)
}
