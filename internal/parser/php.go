package parser

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	php "github.com/tree-sitter/tree-sitter-php/bindings/go"
)

// newPhpParser creates a parser for PHP files. PHP has native heredoc and
// nowdoc nodes; "/**" blocks are documentation.
func newPhpParser() *treeSitterParser {
	return newTreeSitterParser(languageSpec{
		name:     "php",
		language: sitter.NewLanguage(php.LanguagePHP()),
		quoteKinds: map[string]bool{
			"string":          true,
			"encapsed_string": true,
		},
		commentKinds: map[string]bool{"comment": true},
		heredocKinds: map[string]bool{
			"heredoc": true,
			"nowdoc":  true,
		},
		contentKinds: map[string]bool{
			"string_content": true,
			"string_value":   true,
		},
		delimiterKinds: map[string]bool{
			"heredoc_start": true,
			"heredoc_end":   true,
			"<<<":           true,
		},
		isDocComment: func(text string) bool {
			return strings.HasPrefix(text, "/**")
		},
	})
}
