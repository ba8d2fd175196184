package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chalee-dev/chalee/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "chalee",
	Short: "Scaffold a Vue or React project with Webpack and Tailwind CSS",
	Long: `chalee generates a ready-to-run front-end project: a Vue or React
application in JavaScript or TypeScript, bundled with Webpack 5 and
styled with Tailwind CSS.

Defaults are read from ~/.chalee/config.yaml and CHALEE_* environment
variables. Missing answers are asked interactively when a terminal is
attached.`,
	Version:       version.GetVersion(),
	SilenceErrors: true,
	SilenceUsage:  true,
}

// @MX:ANCHOR: [AUTO] Execute is the main entry point for the chalee CLI
// @MX:REASON: [AUTO] fan_in=2, called from cmd/chalee/main.go and root_test.go
// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	err := rootCmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), symError()+" "+err.Error())
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("chalee %s\n", version.GetVersion()))
}
