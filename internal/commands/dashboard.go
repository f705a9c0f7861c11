package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/finsight-dev/finsight/internal/insight"
	"github.com/finsight-dev/finsight/internal/model"
	"github.com/finsight-dev/finsight/internal/profile"
	"github.com/finsight-dev/finsight/internal/projection"
	"github.com/finsight-dev/finsight/internal/strength"
)

func newDashboardCommand(log *logrus.Logger) *cobra.Command {
	var exportPath string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show cash-flow projection, insight and strength profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := setup(cmd, log)
			if err != nil {
				return err
			}

			raw, err := client.CurrentProfile(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching profile: %w", err)
			}

			p := profile.Normalize(raw)
			s := projection.Project(p, time.Now())
			verdict := insight.Classify(insight.Inputs{
				Efficiency: insight.EffectiveScore(p),
				BurnRatio:  s.BurnRatio(),
			})

			renderDashboard(cmd.OutOrStdout(), p, s, verdict)

			if exportPath != "" {
				if err := exportSeries(exportPath, s); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nExported projection to %s\n", exportPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&exportPath, "export", "", "write the projection series to a CSV file")

	return cmd
}

// renderDashboard prints the dashboard view: verdict, monthly figures, the
// flow table, the cumulative projection and the strength radar values.
func renderDashboard(w io.Writer, p model.Profile, s projection.Series, verdict model.InsightVerdict) {
	fmt.Fprintf(w, "[%s] %s\n\n", strings.ToUpper(string(verdict.Severity)), verdict.Text)

	fmt.Fprintf(w, "Efficiency score: %.0f/100\n", insight.EffectiveScore(p))
	fmt.Fprintf(w, "Monthly income:   %s\n", s.MonthlyIncome.StringFixed(2))
	fmt.Fprintf(w, "Monthly savings:  %s\n", s.MonthlySavings.StringFixed(2))
	fmt.Fprintf(w, "Monthly burn:     %s\n\n", s.TotalMonthlyBurn.StringFixed(2))

	fmt.Fprintf(w, "%-5s %12s %12s %12s %12s %12s %12s\n",
		"Month", "Necessities", "Lifestyle", "Debt", "Investing", "Cum. gain", "Cum. burn")
	for i, flow := range s.Flows {
		pt := s.Points[i]
		fmt.Fprintf(w, "%-5s %12s %12s %12s %12s %12s %12s\n",
			flow.Label,
			flow.Necessities.StringFixed(0),
			flow.Lifestyle.StringFixed(0),
			flow.DebtService.StringFixed(0),
			flow.Investing.StringFixed(0),
			pt.CumulativeGain.StringFixed(0),
			pt.CumulativeBurn.StringFixed(0))
	}

	fmt.Fprintf(w, "\nStrength profile\n")
	for _, axis := range strength.Merge(p.Strength) {
		fmt.Fprintf(w, "  %-10s %6.2f\n", axis.Subject, axis.Score)
	}
}

func exportSeries(path string, s projection.Series) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := projection.WriteCSV(f, s); err != nil {
		return fmt.Errorf("exporting projection: %w", err)
	}
	return nil
}
