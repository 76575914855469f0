package search

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/gitpan/pgrep/internal/parser"
)

// compiledPattern holds both the pattern string and its compiled glob.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Discovery enumerates searchable files under a root directory, filtered
// by include and ignore glob patterns.
type Discovery struct {
	root          string
	includes      []compiledPattern
	ignores       []compiledPattern
	supportedOnly bool
}

// DefaultIgnorePatterns are skipped by every discovery unless overridden.
var DefaultIgnorePatterns = []string{
	".git/**",
	"node_modules/**",
	"vendor/**",
	"blib/**",
	"target/**",
	"__pycache__/**",
}

// NewDiscovery creates a discovery for root. With no include patterns,
// every file with a supported source extension is yielded.
func NewDiscovery(root string, includes, ignores []string) (*Discovery, error) {
	d := &Discovery{root: root, supportedOnly: len(includes) == 0}

	for _, pattern := range includes {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}
		d.includes = append(d.includes, compiledPattern{pattern: pattern, glob: g})
	}

	if ignores == nil {
		ignores = DefaultIgnorePatterns
	}
	for _, pattern := range ignores {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		d.ignores = append(d.ignores, compiledPattern{pattern: pattern, glob: g})
	}

	return d, nil
}

// Discover walks the root and returns the matching file paths in walk
// order. The order is stable for a stable filesystem snapshot; no further
// sorting is applied.
func (d *Discovery) Discover() ([]string, error) {
	var files []string

	err := filepath.Walk(d.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != d.root && d.shouldIgnore(d.relPath(path)) {
				return filepath.SkipDir
			}
			return nil
		}

		rel := d.relPath(path)
		if d.shouldIgnore(rel) {
			return nil
		}
		if d.matches(rel) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

// Matches reports whether a path (relative or absolute under the root)
// would be yielded by Discover. Used by the watcher to filter events.
func (d *Discovery) Matches(path string) bool {
	rel := d.relPath(path)
	return !d.shouldIgnore(rel) && d.matches(rel)
}

func (d *Discovery) matches(rel string) bool {
	if d.supportedOnly {
		ext := strings.ToLower(filepath.Ext(rel))
		for _, supported := range parser.SupportedExtensions() {
			if ext == supported {
				return true
			}
		}
		return false
	}
	return matchesAny(rel, d.includes)
}

func (d *Discovery) shouldIgnore(rel string) bool {
	if matchesAny(rel, d.ignores) {
		return true
	}
	// A directory matching pattern "x/**" should itself be skipped.
	return matchesAny(rel+"/**", d.ignores)
}

func (d *Discovery) relPath(path string) string {
	rel, err := filepath.Rel(d.root, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}

func matchesAny(path string, patterns []compiledPattern) bool {
	for _, cp := range patterns {
		if cp.glob.Match(path) {
			return true
		}
		// Make "**/*.pl" also match a root-level "script.pl".
		if !strings.Contains(path, "/") && strings.HasPrefix(cp.pattern, "**/") {
			if g, err := glob.Compile(strings.TrimPrefix(cp.pattern, "**/"), '/'); err == nil && g.Match(path) {
				return true
			}
		}
	}
	return false
}
