package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/finsight-dev/finsight/internal/actlog"
	"github.com/finsight-dev/finsight/internal/config"
	"github.com/finsight-dev/finsight/internal/goal"
	"github.com/finsight-dev/finsight/internal/profile"
)

func newGoalCommand(log *logrus.Logger) *cobra.Command {
	goalCmd := &cobra.Command{
		Use:   "goal",
		Short: "View and adjust the savings goal",
	}
	goalCmd.AddCommand(newGoalShowCommand(log))
	goalCmd.AddCommand(newGoalSetCommand(log))
	return goalCmd
}

func newGoalShowCommand(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current goal",
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

			fmt.Fprintf(cmd.OutOrStdout(), "Salary:             %s\n", p.Salary.StringFixed(2))
			fmt.Fprintf(cmd.OutOrStdout(), "Target amount:      %s\n", p.TargetAmount.StringFixed(2))
			fmt.Fprintf(cmd.OutOrStdout(), "Savings percentage: %.0f%%\n", p.SavingsPercentage)
			if p.TargetDate.IsZero() {
				fmt.Fprintln(cmd.OutOrStdout(), "Target date:        (not set)")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Target date:        %s\n", p.TargetDate.Format(profile.DateLayout))
			}
			return nil
		},
	}
}

func newGoalSetCommand(log *logrus.Logger) *cobra.Command {
	var amountStr string
	var percent float64
	var dateStr string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Adjust the goal and save it",
		Long: "Adjust the savings goal by absolute amount or by percentage, optionally move\n" +
			"the target date, and persist the result. Amount and percentage are two views\n" +
			"of one value: setting either recomputes the other against your salary.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if amountStr != "" && cmd.Flags().Changed("percent") {
				return fmt.Errorf("--amount and --percent are mutually exclusive")
			}
			if amountStr == "" && !cmd.Flags().Changed("percent") && dateStr == "" {
				return fmt.Errorf("nothing to set: pass --amount, --percent or --date")
			}

			cfg, client, err := setup(cmd, log)
			if err != nil {
				return err
			}

			raw, err := client.CurrentProfile(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching profile: %w", err)
			}
			p := profile.Normalize(raw)
			eng := goal.FromProfile(p)

			var logEntries []actlog.Entry

			if amountStr != "" {
				amount, err := decimal.NewFromString(amountStr)
				if err != nil {
					return fmt.Errorf("parsing --amount: %w", err)
				}
				switch eng.SetByAmount(amount) {
				case goal.SignalDisabled:
					return fmt.Errorf("goal editing is disabled: set your salary first")
				case goal.SignalCapped:
					fmt.Fprintf(cmd.OutOrStdout(), "Amount capped at your total salary (%s)\n", p.Salary.StringFixed(2))
				}
				logEntries = append(logEntries, goalEntry(actlog.ActionGoalAmount, eng))
			}

			if cmd.Flags().Changed("percent") {
				if eng.SetByPercentage(percent) == goal.SignalDisabled {
					return fmt.Errorf("goal editing is disabled: set your salary first")
				}
				logEntries = append(logEntries, goalEntry(actlog.ActionGoalPercent, eng))
			}

			if dateStr != "" {
				d, err := time.Parse(profile.DateLayout, dateStr)
				if err != nil {
					return fmt.Errorf("parsing --date: %w", err)
				}
				if err := eng.SetTargetDate(d); err != nil {
					return fmt.Errorf("target date %s: %w (allowed: today through %d months out)", dateStr, err, goal.HorizonMonths)
				}
				logEntries = append(logEntries, actlog.Entry{
					Timestamp: time.Now().UTC(),
					Action:    actlog.ActionGoalDate,
					Details:   "target_date=" + dateStr,
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Target amount:      %s\n", eng.TargetAmount().StringFixed(2))
			fmt.Fprintf(cmd.OutOrStdout(), "Savings percentage: %.0f%%\n", eng.SavingsPercentage())

			if dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), "Dry run: nothing saved")
				return nil
			}

			// The interactive check above can be sidestepped when the date came
			// from the stored profile, so validate the whole goal again before
			// persisting.
			if err := eng.Validate(); err != nil {
				return fmt.Errorf("save blocked: %w", err)
			}

			fields := map[string]any{
				"target_amount":      eng.TargetAmount().InexactFloat64(),
				"savings_percentage": eng.SavingsPercentage(),
				"target_date":        eng.TargetDate().Format(profile.DateLayout),
			}
			if err := client.UpdateProfile(cmd.Context(), fields); err != nil {
				return fmt.Errorf("saving goal: %w", err)
			}

			logEntries = append(logEntries, goalEntry(actlog.ActionGoalSave, eng))
			writeActlog(cfg, logEntries)

			fmt.Fprintln(cmd.OutOrStdout(), "Preferences saved")
			return nil
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "", "target amount per year")
	cmd.Flags().Float64Var(&percent, "percent", 0, "savings percentage of salary (0-100)")
	cmd.Flags().StringVar(&dateStr, "date", "", "target date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute without saving")

	return cmd
}

func goalEntry(action string, eng *goal.Engine) actlog.Entry {
	return actlog.Entry{
		Timestamp: time.Now().UTC(),
		Action:    action,
		Details: fmt.Sprintf("target_amount=%s savings_percentage=%.0f",
			eng.TargetAmount().StringFixed(2), eng.SavingsPercentage()),
	}
}

// writeActlog appends entries to the local activity log; failures are
// reported but never fail the command.
func writeActlog(cfg *config.Config, entries []actlog.Entry) {
	if len(entries) == 0 {
		return
	}
	if err := actlog.Append(cfg.State.Dir, entries); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write activity log: %v\n", err)
	}
}
