// Package category maps searchable category names to the token kind they
// select and the rendering that turns a selected token into a string the
// user pattern is matched against.
package category

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gitpan/pgrep/internal/token"
)

// ErrUnknownCategory indicates a category name that is not registered.
var ErrUnknownCategory = errors.New("unknown category")

// Descriptor describes one searchable category.
type Descriptor struct {
	// Name is the canonical category name.
	Name string
	// Kind is the token kind this category selects from a document.
	Kind token.Kind
	// Render turns a selected token into the string that is matched
	// against the user pattern.
	Render func(token.Token) string
}

// registry is the fixed category table. It is built once and never
// mutated; new categories are added here, not registered at runtime.
var registry = map[string]Descriptor{
	"quote": {
		Name:   "quote",
		Kind:   token.KindQuote,
		Render: func(t token.Token) string { return t.Value },
	},
	"heredoc": {
		Name: "heredoc",
		Kind: token.KindHeredoc,
		// Heredoc lines keep their trailing newlines, so the rendered
		// form is a plain concatenation.
		Render: func(t token.Token) string { return strings.Join(t.Lines, "") },
	},
	"pod": {
		Name:   "pod",
		Kind:   token.KindPod,
		Render: func(t token.Token) string { return strings.Join(t.Lines, "\n") },
	},
	"comment": {
		Name:   "comment",
		Kind:   token.KindComment,
		Render: func(t token.Token) string { return t.Raw },
	},
}

// Resolve returns the descriptor for name. The plural alias of a built-in
// resolves to the identical descriptor ("comments" == "comment"). Unknown
// names fail with ErrUnknownCategory; there is no silent default.
func Resolve(name string) (Descriptor, error) {
	d, ok := registry[normalize(name)]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return d, nil
}

// IsKnown reports whether name (or its plural alias) is registered.
func IsKnown(name string) bool {
	_, ok := registry[normalize(name)]
	return ok
}

// Names returns the canonical category names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// normalize lowercases the name and strips a plural "s" when the singular
// form is the registered one.
func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if _, ok := registry[name]; ok {
		return name
	}
	if singular, found := strings.CutSuffix(name, "s"); found {
		if _, ok := registry[singular]; ok {
			return singular
		}
	}
	return name
}
