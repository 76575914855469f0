package parser

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
)

// newRustParser creates a parser for Rust files. Doc comments (///, //!
// and their block forms) are documentation.
func newRustParser() *treeSitterParser {
	return newTreeSitterParser(languageSpec{
		name:     "rust",
		language: sitter.NewLanguage(rust.Language()),
		quoteKinds: map[string]bool{
			"string_literal":     true,
			"raw_string_literal": true,
		},
		commentKinds: map[string]bool{
			"line_comment":  true,
			"block_comment": true,
		},
		contentKinds: map[string]bool{"string_content": true},
		isDocComment: func(text string) bool {
			return strings.HasPrefix(text, "///") ||
				strings.HasPrefix(text, "//!") ||
				strings.HasPrefix(text, "/**") ||
				strings.HasPrefix(text, "/*!")
		},
	})
}
