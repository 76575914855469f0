package parser

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	c "github.com/tree-sitter/tree-sitter-c/bindings/go"
)

// newCParser creates a parser for C and C++ files (the C grammar covers
// the lexical categories both share).
func newCParser() *treeSitterParser {
	return newTreeSitterParser(languageSpec{
		name:         "c",
		language:     sitter.NewLanguage(c.Language()),
		quoteKinds:   map[string]bool{"string_literal": true},
		commentKinds: map[string]bool{"comment": true},
		contentKinds: map[string]bool{"string_content": true},
		isDocComment: func(text string) bool {
			return strings.HasPrefix(text, "/**") || strings.HasPrefix(text, "/*!")
		},
	})
}
