// @MX:ANCHOR: [AUTO] main is the entry point of the chalee binary; it exits 1 on error.
// @MX:REASON: [AUTO] sole entry point of the executable, delegates to the CLI command tree
package main

import (
	"os"

	"github.com/chalee-dev/chalee/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
