package parser

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

// newJavaParser creates a parser for Java files. Javadoc blocks are
// documentation; text blocks count as quotes.
func newJavaParser() *treeSitterParser {
	return newTreeSitterParser(languageSpec{
		name:     "java",
		language: sitter.NewLanguage(java.Language()),
		quoteKinds: map[string]bool{
			"string_literal": true,
			"text_block":     true,
		},
		commentKinds: map[string]bool{
			"line_comment":  true,
			"block_comment": true,
		},
		contentKinds: map[string]bool{"string_fragment": true},
		isDocComment: func(text string) bool {
			return strings.HasPrefix(text, "/**")
		},
	})
}
