package parser

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// newPythonParser creates a parser for Python files. Docstrings (a string
// expression opening a module, class or function body) are classified as
// documentation; all other strings are quotes.
func newPythonParser() *treeSitterParser {
	return newTreeSitterParser(languageSpec{
		name:         "python",
		language:     sitter.NewLanguage(python.Language()),
		quoteKinds:   map[string]bool{"string": true},
		commentKinds: map[string]bool{"comment": true},
		contentKinds: map[string]bool{"string_content": true},
		isDocString:  isPythonDocstring,
	})
}

// isPythonDocstring reports whether a string node is the first statement
// of a module, class or function body.
func isPythonDocstring(n *sitter.Node) bool {
	parent := n.Parent()
	if parent == nil || parent.Kind() != "expression_statement" {
		return false
	}
	grandparent := parent.Parent()
	if grandparent == nil {
		return false
	}
	switch grandparent.Kind() {
	case "module", "block":
	default:
		return false
	}
	return firstNamedChildIs(parent)
}
