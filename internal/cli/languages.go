package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitpan/pgrep/internal/parser"
)

// languagesCmd lists the languages pgrep can parse.
var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the supported source languages",
	Run: func(cmd *cobra.Command, args []string) {
		for _, lang := range parser.SupportedLanguages() {
			fmt.Println(lang)
		}
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
