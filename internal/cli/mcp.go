package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitpan/pgrep/internal/mcp"
)

// mcpCmd runs the MCP server exposing pgrep_search over stdio.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP server exposing token-classified search",
	Long: `Starts a Model Context Protocol server on stdio. Clients get a
pgrep_search tool that runs token-classified searches and returns the
matches as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		server := mcp.NewServer(root)
		return server.Serve(context.Background())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
