package search

import (
	"errors"
	"fmt"

	"github.com/gitpan/pgrep/internal/category"
	"github.com/gitpan/pgrep/internal/parser"
)

// ErrParseFailed indicates the parser produced no token document for a
// file. It is a per-file skip, never fatal to a run.
var ErrParseFailed = errors.New("could not parse file")

// Scanner searches the classified tokens of single files.
type Scanner struct {
	parser parser.Parser
}

// NewScanner creates a scanner backed by the given parser.
func NewScanner(p parser.Parser) *Scanner {
	return &Scanner{parser: p}
}

// Scan parses one file and collects the request's pattern matches.
//
// The categories are processed in request order; within a category,
// matches appear in the parser's document order. A nil result with a nil
// error means the file parsed but matched nothing. A non-nil error wraps
// ErrParseFailed and means the file was skipped.
//
// In filenames-only mode the scan stops at the first matching token in
// category-processing order and returns a groupless result.
func (s *Scanner) Scan(path string, req *Request) (*FileResults, error) {
	doc, err := s.parser.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParseFailed, path, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: %s", ErrParseFailed, path)
	}

	var results *FileResults
	for _, name := range req.Categories() {
		desc, err := category.Resolve(name)
		if err != nil {
			// Categories were validated at request construction.
			panic(fmt.Errorf("%w: %q", ErrUnknownCategoryOnAdd, name))
		}

		var matches []string
		for _, tok := range doc.Tokens {
			if tok.Kind != desc.Kind {
				continue
			}
			rendered := desc.Render(tok)
			if !req.Pattern().MatchString(rendered) {
				continue
			}
			if req.FilenamesOnly() {
				return NewFileResults(path, true), nil
			}
			matches = append(matches, rendered)
		}
		if len(matches) > 0 {
			if results == nil {
				results = NewFileResults(path, false)
			}
			results.AddGroup(desc.Name, matches)
		}
	}

	return results, nil
}
