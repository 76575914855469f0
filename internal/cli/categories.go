package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitpan/pgrep/internal/category"
)

// categoriesCmd lists the searchable token categories.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the searchable token categories",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range category.Names() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
