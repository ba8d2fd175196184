package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chalee-dev/chalee/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the chalee version",
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "chalee %s\n", version.GetFullVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
