package model

// StrengthAxis is one axis of the multi-axis strength profile. The JSON field
// names mirror the backend's spider_data entries.
type StrengthAxis struct {
	Subject string  `json:"subject"`
	Score   float64 `json:"A"`
}

// StrengthProfile is the full ordered axis set. The axis order is fixed by
// the default template in the strength package.
type StrengthProfile []StrengthAxis
