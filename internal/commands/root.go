// Package commands wires the finsight CLI.
package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/finsight-dev/finsight/internal/api"
	"github.com/finsight-dev/finsight/internal/buildinfo"
	"github.com/finsight-dev/finsight/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(log *logrus.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "finsight",
		Short:   "Personal finance projection and insight client",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "finsight.yaml", "path to finsight.yaml")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newDashboardCommand(log))
	rootCmd.AddCommand(newGoalCommand(log))
	rootCmd.AddCommand(newReportCommand(log))
	rootCmd.AddCommand(newHistoryCommand())

	return rootCmd
}

// setup loads the config and builds a backend client for a subcommand.
func setup(cmd *cobra.Command, log *logrus.Logger) (*config.Config, *api.Client, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	token, err := cfg.ResolveToken()
	if err != nil {
		return nil, nil, err
	}
	return cfg, api.NewClient(cfg.ResolveBaseURL(), token, log), nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.Load(cmd.Flag("config").Value.String())
}
