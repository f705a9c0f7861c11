package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/finsight-dev/finsight/internal/config"
)

func newInitCommand() *cobra.Command {
	var apiURL string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a finsight client setup",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, apiURL)
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", "", "backend base URL (default http://localhost:8000)")

	return cmd
}

func runInit(cmd *cobra.Command, dir, apiURL string) error {
	cfg := config.Default()
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}

	if err := os.MkdirAll(filepath.Join(dir, cfg.State.Dir), 0o755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}

	if err := config.Save(filepath.Join(dir, "finsight.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Keep the token and local state out of version control.
	gitignore := cfg.API.TokenFile + "\n" + cfg.State.Dir + "/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized finsight client at %s\n", dir)
	fmt.Fprintf(cmd.OutOrStdout(), "Put your bearer token in %s or export FINSIGHT_TOKEN\n", cfg.API.TokenFile)
	return nil
}
