package model

// Severity is the qualitative band of an insight verdict.
type Severity string

const (
	SeverityPositive Severity = "positive"
	SeverityNeutral  Severity = "neutral"
	SeverityCritical Severity = "critical"
)

// InsightVerdict is the output of the insight classifier.
type InsightVerdict struct {
	Text     string
	Severity Severity
}
