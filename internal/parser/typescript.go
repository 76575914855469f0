package parser

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// newTypeScriptParser creates a parser for TypeScript and JavaScript
// files (the TypeScript grammar is a superset). JSDoc blocks are
// documentation; template strings count as quotes.
func newTypeScriptParser() *treeSitterParser {
	return newTreeSitterParser(languageSpec{
		name:     "typescript",
		language: sitter.NewLanguage(typescript.LanguageTypescript()),
		quoteKinds: map[string]bool{
			"string":          true,
			"template_string": true,
		},
		commentKinds: map[string]bool{"comment": true},
		contentKinds: map[string]bool{"string_fragment": true},
		isDocComment: func(text string) bool {
			return strings.HasPrefix(text, "/**")
		},
	})
}
