package api

import (
	"context"

	"github.com/finsight-dev/finsight/internal/model"
)

// ProfileStore is the capability contract for the backend user-profile store.
// The engines never talk to a transport directly; they consume and produce
// values and leave fetching/persisting to an implementation of this.
type ProfileStore interface {
	// CurrentProfile fetches the authenticated user's raw profile.
	CurrentProfile(ctx context.Context) (model.RawProfile, error)

	// UpdateProfile sends an edited subset of profile fields. The backend
	// recomputes ai_score, spider_data and ml_accuracy as a side effect.
	UpdateProfile(ctx context.Context, fields map[string]any) error
}

// ReportStore is the capability contract for the predictor/report service.
type ReportStore interface {
	// GenerateReport asks the predictor for a fresh diagnostic report.
	GenerateReport(ctx context.Context) (model.Report, error)

	// SaveReport persists a report and returns its new ID.
	SaveReport(ctx context.Context, r model.Report) (string, error)

	// ListReports returns saved report summaries, newest first.
	ListReports(ctx context.Context) ([]model.Report, error)

	// Report fetches one saved report by ID.
	Report(ctx context.Context, id string) (model.Report, error)

	// DeleteReport removes one saved report by ID.
	DeleteReport(ctx context.Context, id string) error
}
