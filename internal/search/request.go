package search

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/gitpan/pgrep/internal/category"
)

var (
	// ErrConflictingInputSpec indicates both a root directory and an
	// explicit file list were supplied.
	ErrConflictingInputSpec = errors.New("root directory and explicit file list are mutually exclusive")

	// ErrInvalidDirectory indicates the root does not exist or is not a
	// directory.
	ErrInvalidDirectory = errors.New("invalid root directory")

	// ErrInvalidFile indicates an explicit file does not exist or cannot
	// be read.
	ErrInvalidFile = errors.New("invalid input file")

	// ErrInvalidPattern indicates the search pattern does not compile.
	ErrInvalidPattern = errors.New("invalid search pattern")

	// ErrInvalidConfiguration indicates unrecognized configuration keys.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNoInputSpecified indicates a request with neither a root nor
	// files; constructors default the root, so hitting this is a bug.
	ErrNoInputSpecified = errors.New("no input files or directory specified")
)

// DefaultCategories are searched when the caller does not name any.
var DefaultCategories = []string{"quote", "heredoc"}

// Options carries the raw configuration for one search invocation.
type Options struct {
	// Root is the directory to walk. Mutually exclusive with Files; when
	// both are empty the current directory is used.
	Root string
	// Files is an explicit ordered list of files to search.
	Files []string
	// Categories names the token categories to search; plural aliases are
	// accepted. Empty means DefaultCategories.
	Categories []string
	// Pattern is a regular expression; empty matches every rendered
	// token.
	Pattern string
	// FilenamesOnly reports only which files match, retaining no
	// per-category data.
	FilenamesOnly bool
	// Diagnostics enables per-file skip diagnostics.
	Diagnostics bool
}

// Request is a fully validated search configuration. It is constructed in
// one shot by NewRequest; the Set* mutators re-validate only the field
// they touch.
type Request struct {
	root          string
	files         []string
	categories    []string
	pattern       *regexp.Regexp
	patternSource string
	filenamesOnly bool
	diagnostics   bool
}

// NewRequest validates opts as a whole and returns an immutable-by-
// convention request. Partially valid requests never escape.
func NewRequest(opts Options) (*Request, error) {
	r := &Request{
		filenamesOnly: opts.FilenamesOnly,
		diagnostics:   opts.Diagnostics,
	}

	if opts.Root != "" && len(opts.Files) > 0 {
		return nil, fmt.Errorf("%w: root %q and %d file(s)", ErrConflictingInputSpec, opts.Root, len(opts.Files))
	}

	if len(opts.Files) > 0 {
		if err := r.SetFiles(opts.Files); err != nil {
			return nil, err
		}
	} else {
		root := opts.Root
		if root == "" {
			root = "."
		}
		if err := r.SetRoot(root); err != nil {
			return nil, err
		}
	}

	cats := opts.Categories
	if len(cats) == 0 {
		cats = DefaultCategories
	}
	if err := r.SetCategories(cats); err != nil {
		return nil, err
	}

	if err := r.SetPattern(opts.Pattern); err != nil {
		return nil, err
	}

	return r, nil
}

// SetRoot re-validates and replaces the root directory, clearing any
// explicit file list to keep the root/files exclusivity invariant.
func (r *Request) SetRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidDirectory, root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %q is not a directory", ErrInvalidDirectory, root)
	}
	r.root = root
	r.files = nil
	return nil
}

// SetFiles re-validates and replaces the explicit file list, clearing the
// root. Every file must exist and be readable.
func (r *Request) SetFiles(files []string) error {
	if len(files) == 0 {
		return ErrNoInputSpecified
	}
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidFile, path, err)
		}
		if info.IsDir() {
			return fmt.Errorf("%w: %q is a directory", ErrInvalidFile, path)
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidFile, path, err)
		}
		f.Close()
	}
	r.files = append([]string(nil), files...)
	r.root = ""
	return nil
}

// SetCategories re-validates and replaces the category list. Names are
// stored in canonical form, order preserved, duplicates collapsed.
func (r *Request) SetCategories(names []string) error {
	if len(names) == 0 {
		names = DefaultCategories
	}
	canonical := make([]string, 0, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		desc, err := category.Resolve(name)
		if err != nil {
			return err
		}
		if seen[desc.Name] {
			continue
		}
		seen[desc.Name] = true
		canonical = append(canonical, desc.Name)
	}
	r.categories = canonical
	return nil
}

// SetPattern re-compiles and replaces the search pattern. The empty
// pattern matches every rendered token.
func (r *Request) SetPattern(pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	r.pattern = re
	r.patternSource = pattern
	return nil
}

// SetFilenamesOnly toggles filenames-only mode.
func (r *Request) SetFilenamesOnly(v bool) { r.filenamesOnly = v }

// SetDiagnostics toggles per-file skip diagnostics.
func (r *Request) SetDiagnostics(v bool) { r.diagnostics = v }

// Root returns the root directory, empty when explicit files are set.
func (r *Request) Root() string { return r.root }

// Files returns the explicit file list, nil when a root is set.
func (r *Request) Files() []string { return r.files }

// Categories returns the canonical category names in processing order.
func (r *Request) Categories() []string { return r.categories }

// Pattern returns the compiled search pattern.
func (r *Request) Pattern() *regexp.Regexp { return r.pattern }

// PatternSource returns the pattern as supplied by the caller.
func (r *Request) PatternSource() string { return r.patternSource }

// FilenamesOnly reports whether only matching file names are wanted.
func (r *Request) FilenamesOnly() bool { return r.filenamesOnly }

// Diagnostics reports whether per-file skip diagnostics are enabled.
func (r *Request) Diagnostics() bool { return r.diagnostics }

// optionKeys are the configuration keys OptionsFromMap understands.
var optionKeys = map[string]bool{
	"root":           true,
	"files":          true,
	"categories":     true,
	"pattern":        true,
	"filenames_only": true,
	"diagnostics":    true,
}

// OptionsFromMap decodes a generic key/value configuration (as arriving
// from config files or tool calls) into Options. Unrecognized keys fail
// with ErrInvalidConfiguration, listed sorted for deterministic messages.
func OptionsFromMap(m map[string]any) (Options, error) {
	var unknown []string
	for key := range m {
		if !optionKeys[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Options{}, fmt.Errorf("%w: unrecognized keys: %s", ErrInvalidConfiguration, strings.Join(unknown, ", "))
	}

	var opts Options
	if v, ok := m["root"].(string); ok {
		opts.Root = v
	}
	opts.Files = toStringSlice(m["files"])
	opts.Categories = toStringSlice(m["categories"])
	if v, ok := m["pattern"].(string); ok {
		opts.Pattern = v
	}
	if v, ok := m["filenames_only"].(bool); ok {
		opts.FilenamesOnly = v
	}
	if v, ok := m["diagnostics"].(bool); ok {
		opts.Diagnostics = v
	}
	return opts, nil
}

// toStringSlice accepts either []string or the []any shape JSON decoding
// produces.
func toStringSlice(v any) []string {
	switch vv := v.(type) {
	case []string:
		return vv
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
