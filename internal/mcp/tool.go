package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gitpan/pgrep/internal/search"
)

// AddSearchTool registers the pgrep_search tool with an MCP server. The
// registration is composable with other tools on the same server.
func AddSearchTool(s *server.MCPServer, root string) {
	tool := mcp.NewTool(
		"pgrep_search",
		mcp.WithDescription("Search source files for regular expression matches restricted to lexical token categories: string literals (quote), heredocs, documentation blocks (pod), and comments. Returns matches grouped per file and per category in source order."),
		mcp.WithString("pattern",
			mcp.Description("Regular expression applied to the rendered token text. Empty matches every token in the selected categories.")),
		mcp.WithArray("categories",
			mcp.Description("Token categories to search: 'quote', 'heredoc', 'pod', 'comment' (plural aliases accepted). Default: quote and heredoc.")),
		mcp.WithString("root",
			mcp.Description("Directory to search recursively. Defaults to the server's working root.")),
		mcp.WithArray("files",
			mcp.Description("Explicit list of files to search instead of walking a directory.")),
		mcp.WithBoolean("filenames_only",
			mcp.Description("Report only which files match, without per-category match text.")),
	)

	s.AddTool(tool, createSearchHandler(root))
}

// createSearchHandler creates the handler function for pgrep_search.
// Argument errors come back as tool errors so the client can correct the
// call; engine failures surface as protocol errors.
func createSearchHandler(root string) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("invalid arguments format"), nil
		}

		args, err := parseSearchRequest(argsMap)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		opts := search.Options{
			Pattern:       args.Pattern,
			Categories:    args.Categories,
			Files:         args.Files,
			FilenamesOnly: args.FilenamesOnly,
		}
		if len(args.Files) == 0 {
			opts.Root = resolveRoot(root, args.Root)
		}

		req, err := search.NewRequest(opts)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		results, err := search.NewOrchestrator(req).Run(ctx)
		if err != nil {
			return nil, fmt.Errorf("search failed: %w", err)
		}

		response := buildResponse(results)
		jsonData, err := json.Marshal(response)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response: %w", err)
		}

		return mcp.NewToolResultText(string(jsonData)), nil
	}
}

// parseSearchRequest decodes the raw tool arguments, rejecting unknown
// keys so typos fail loudly instead of silently searching defaults.
func parseSearchRequest(argsMap map[string]interface{}) (SearchRequest, error) {
	opts, err := search.OptionsFromMap(argsMap)
	if err != nil {
		return SearchRequest{}, err
	}
	return SearchRequest{
		Pattern:       opts.Pattern,
		Categories:    opts.Categories,
		Root:          opts.Root,
		Files:         opts.Files,
		FilenamesOnly: opts.FilenamesOnly,
	}, nil
}

// resolveRoot resolves a caller-supplied root against the server's
// working root, defaulting to the working root itself.
func resolveRoot(serverRoot, requested string) string {
	if requested == "" {
		return serverRoot
	}
	if filepath.IsAbs(requested) {
		return requested
	}
	return filepath.Join(serverRoot, requested)
}

// buildResponse drains the result cursors into the JSON shape.
func buildResponse(results []*search.FileResults) *SearchResponse {
	response := &SearchResponse{
		Files: make([]FileMatches, 0, len(results)),
		Total: len(results),
	}
	for _, fr := range results {
		file := FileMatches{Path: fr.Path()}
		if !fr.FilenamesOnly() {
			for {
				group, ok := fr.Next()
				if !ok {
					break
				}
				gm := GroupMatches{Category: group.Category()}
				for {
					match, ok := group.Next()
					if !ok {
						break
					}
					gm.Matches = append(gm.Matches, match)
				}
				file.Groups = append(file.Groups, gm)
			}
		}
		response.Files = append(response.Files, file)
	}
	return response
}
