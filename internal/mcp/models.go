package mcp

// SearchRequest is the decoded argument set of the pgrep_search tool.
type SearchRequest struct {
	// Pattern is the regular expression applied to rendered tokens. Empty
	// matches everything.
	Pattern string `json:"pattern"`
	// Categories names the token categories to search. Empty means the
	// engine defaults.
	Categories []string `json:"categories,omitempty"`
	// Root is the directory to walk; relative paths resolve against the
	// server's working root.
	Root string `json:"root,omitempty"`
	// Files is an explicit ordered file list, mutually exclusive with
	// Root.
	Files []string `json:"files,omitempty"`
	// FilenamesOnly reports only which files match.
	FilenamesOnly bool `json:"filenames_only,omitempty"`
}

// GroupMatches holds the matches of one category within one file, in
// source order.
type GroupMatches struct {
	Category string   `json:"category"`
	Matches  []string `json:"matches"`
}

// FileMatches holds the per-category groups of one matching file. Groups
// is empty in filenames-only mode.
type FileMatches struct {
	Path   string         `json:"path"`
	Groups []GroupMatches `json:"groups,omitempty"`
}

// SearchResponse is the JSON payload returned by pgrep_search.
type SearchResponse struct {
	Files []FileMatches `json:"files"`
	Total int           `json:"total"`
}
