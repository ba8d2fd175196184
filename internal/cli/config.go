package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/chalee-dev/chalee/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect chalee defaults",
	Long: `Inspect the defaults used by create.

Values come from ~/.chalee/config.yaml, overridden by CHALEE_* environment
variables, which may also be set in a .env file in the working directory.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path of the configuration file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), config.FilePath())
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configPathCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	cfg, err := deps.EnsureConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	out := cmd.OutOrStdout()
	source := cfg.Source
	if source == "" {
		source = "defaults (no config file)"
	}
	_, _ = fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
