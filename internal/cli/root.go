// Package cli wires the pgrep commands. It is also the presentation
// collaborator: it drains the result containers the engine returns and
// decides how they are printed.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command; running it without a subcommand performs a
// search.
var rootCmd = &cobra.Command{
	Use:   "pgrep [pattern]",
	Short: "Grep through source documents by token category",
	Long: `pgrep searches source files for pattern matches restricted to specific
lexical categories - string literals, heredocs, documentation blocks and
comments - instead of raw text lines.

That makes it possible to find "TODO" only inside comments, or suspicious
interpolation only inside quoted strings, without false positives from
other code regions.

Examples:
  # Search quotes and heredocs (the default categories) under the
  # current directory
  pgrep 'connection refused'

  # Search comments only, under a specific directory
  pgrep --dir ./lib --category comments TODO

  # List only the files that contain a match
  pgrep -l 'DROP TABLE'

  # Search explicit files
  pgrep --file script.pl --file lib/App.pm 'q\{'
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
