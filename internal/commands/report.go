package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/finsight-dev/finsight/internal/actlog"
	"github.com/finsight-dev/finsight/internal/id"
	"github.com/finsight-dev/finsight/internal/model"
	"github.com/finsight-dev/finsight/internal/ranking"
)

func newReportCommand(log *logrus.Logger) *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Generate and manage diagnostic reports",
	}
	reportCmd.AddCommand(newReportGenerateCommand(log))
	reportCmd.AddCommand(newReportListCommand(log))
	reportCmd.AddCommand(newReportShowCommand(log))
	reportCmd.AddCommand(newReportDeleteCommand(log))
	return reportCmd
}

func newReportGenerateCommand(log *logrus.Logger) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Request a fresh report from the predictor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, err := setup(cmd, log)
			if err != nil {
				return err
			}

			log.Info("requesting analysis, this may take a moment")
			report, err := client.GenerateReport(cmd.Context())
			if err != nil {
				return fmt.Errorf("generating report: %w", err)
			}

			if err := renderReport(cmd.OutOrStdout(), report); err != nil {
				return err
			}

			if save {
				savedID, err := client.SaveReport(cmd.Context(), report)
				if err != nil {
					return fmt.Errorf("saving report: %w", err)
				}
				writeActlog(cfg, []actlog.Entry{{
					Timestamp: time.Now().UTC(),
					Action:    actlog.ActionReportSave,
					Details:   "primary_issue=" + report.PrimaryIssue,
					ReportID:  savedID,
				}})
				fmt.Fprintf(cmd.OutOrStdout(), "\nSaved as %s\n", savedID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "persist the generated report")

	return cmd
}

func newReportListCommand(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := setup(cmd, log)
			if err != nil {
				return err
			}

			reports, err := client.ListReports(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing reports: %w", err)
			}
			if len(reports) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved reports")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%-26s %-8s %-22s %s\n", "ID", "Short", "Primary issue", "Saved at")
			for _, r := range reports {
				saved := r.Timestamp
				if ts, err := r.Time(); err == nil {
					saved = ts.Format("2006-01-02 15:04")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-26s %-8s %-22s %s\n", r.ID, id.Short(r.ID), r.PrimaryIssue, saved)
			}
			return nil
		},
	}
}

func newReportShowCommand(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one saved report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportID, err := id.Parse(args[0])
			if err != nil {
				return err
			}

			_, client, err := setup(cmd, log)
			if err != nil {
				return err
			}

			report, err := client.Report(cmd.Context(), reportID)
			if err != nil {
				return fmt.Errorf("fetching report: %w", err)
			}
			return renderReport(cmd.OutOrStdout(), report)
		},
	}
}

func newReportDeleteCommand(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one saved report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportID, err := id.Parse(args[0])
			if err != nil {
				return err
			}

			cfg, client, err := setup(cmd, log)
			if err != nil {
				return err
			}

			if err := client.DeleteReport(cmd.Context(), reportID); err != nil {
				return fmt.Errorf("deleting report: %w", err)
			}
			writeActlog(cfg, []actlog.Entry{{
				Timestamp: time.Now().UTC(),
				Action:    actlog.ActionReportDelete,
				ReportID:  reportID,
			}})
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted report %s\n", reportID)
			return nil
		},
	}
}

// renderReport prints a report with its metrics re-ranked by impact. The
// backend already sorts, but the headline bottleneck is only meaningful if
// the order holds, so it is enforced here rather than trusted.
func renderReport(w io.Writer, report model.Report) error {
	diagnosis, err := ranking.Rank(report.Metrics)
	if err != nil {
		return fmt.Errorf("report has no metrics: %w", err)
	}

	fmt.Fprintf(w, "Primary bottleneck: %s\n", diagnosis.Bottleneck)
	fmt.Fprintf(w, "Predictor accuracy: %.1f%%\n\n", report.Accuracy)
	fmt.Fprintf(w, "%q\n\n", report.Recommendation)

	fmt.Fprintf(w, "%-22s %8s %8s\n", "Feature", "Impact", "Value")
	for _, m := range diagnosis.Metrics {
		fmt.Fprintf(w, "%-22s %8.2f %8.2f\n", m.Feature, m.Impact, m.Value)
	}
	return nil
}
