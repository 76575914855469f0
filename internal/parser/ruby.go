package parser

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"
)

// newRubyParser creates a parser for Ruby files. Ruby is one of the two
// grammars with native heredoc nodes; =begin/=end blocks count as
// documentation.
func newRubyParser() *treeSitterParser {
	return newTreeSitterParser(languageSpec{
		name:         "ruby",
		language:     sitter.NewLanguage(ruby.Language()),
		quoteKinds:   map[string]bool{"string": true},
		commentKinds: map[string]bool{"comment": true},
		heredocKinds: map[string]bool{"heredoc_body": true},
		contentKinds: map[string]bool{"string_content": true},
		delimiterKinds: map[string]bool{
			"heredoc_beginning": true,
			"heredoc_end":       true,
		},
		isDocComment: func(text string) bool {
			return strings.HasPrefix(text, "=begin")
		},
	})
}
