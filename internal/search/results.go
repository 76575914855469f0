package search

import (
	"errors"
	"fmt"

	"github.com/gitpan/pgrep/internal/category"
)

var (
	// ErrFilenamesOnlyResults indicates an attempt to iterate the category
	// groups of a filenames-only result.
	ErrFilenamesOnlyResults = errors.New("filenames-only results carry no category groups")

	// ErrUnknownCategoryOnAdd indicates an attempt to attach a group for a
	// category that is not registered.
	ErrUnknownCategoryOnAdd = errors.New("cannot add results for unregistered category")
)

// CategoryResults holds the rendered matches for one category within one
// file, in document order. Iteration is single-pass: the cursor only
// moves forward and a drained result cannot be re-read.
type CategoryResults struct {
	name    string
	matches []string
	cursor  int
}

func newCategoryResults(name string, matches []string) *CategoryResults {
	return &CategoryResults{name: name, matches: matches}
}

// Category returns the canonical category name.
func (c *CategoryResults) Category() string {
	return c.name
}

// Len returns the number of matches in the group.
func (c *CategoryResults) Len() int {
	return len(c.matches)
}

// Next returns the next rendered match, or false once the group is
// drained.
func (c *CategoryResults) Next() (string, bool) {
	if c.cursor >= len(c.matches) {
		return "", false
	}
	m := c.matches[c.cursor]
	c.cursor++
	return m, true
}

// FileResults holds the category groups produced for one file, in the
// order the categories were processed. Like CategoryResults, iteration is
// single-pass.
//
// A filenames-only result records that the file matched but carries no
// group data; iterating or adding groups on it is a caller bug and
// panics.
type FileResults struct {
	path          string
	filenamesOnly bool
	groups        []*CategoryResults
	cursor        int
}

// NewFileResults creates an empty result container for one file.
func NewFileResults(path string, filenamesOnly bool) *FileResults {
	return &FileResults{path: path, filenamesOnly: filenamesOnly}
}

// Path returns the file path the results belong to.
func (f *FileResults) Path() string {
	return f.path
}

// FilenamesOnly reports whether the result carries no per-category data.
func (f *FileResults) FilenamesOnly() bool {
	return f.filenamesOnly
}

// Len returns the number of category groups.
func (f *FileResults) Len() int {
	return len(f.groups)
}

// AddGroup appends a category group. The category must resolve in the
// registry and the container must not be filenames-only; violations are
// contract bugs and panic.
func (f *FileResults) AddGroup(name string, matches []string) {
	if f.filenamesOnly {
		panic(fmt.Errorf("%w: %s", ErrFilenamesOnlyResults, f.path))
	}
	desc, err := category.Resolve(name)
	if err != nil {
		panic(fmt.Errorf("%w: %q", ErrUnknownCategoryOnAdd, name))
	}
	f.groups = append(f.groups, newCategoryResults(desc.Name, matches))
}

// Next returns the next category group, or false once all groups are
// drained. Calling Next on a filenames-only result panics with
// ErrFilenamesOnlyResults.
func (f *FileResults) Next() (*CategoryResults, bool) {
	if f.filenamesOnly {
		panic(fmt.Errorf("%w: %s", ErrFilenamesOnlyResults, f.path))
	}
	if f.cursor >= len(f.groups) {
		return nil, false
	}
	g := f.groups[f.cursor]
	f.cursor++
	return g, true
}
