// Package parser turns source files into classified token documents. Each
// supported language has its own parser; Perl is handled by a built-in
// lexer, Go by go/ast, and the remaining languages by tree-sitter.
package parser

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/gitpan/pgrep/internal/token"
)

// Parser produces a token document for one source file. A nil document
// with a nil error means the file is not a source document this parser
// can handle; callers treat that as a skip, never as a fatal failure.
type Parser interface {
	Parse(path string) (*token.Document, error)
}

// multiLanguage dispatches to a language parser based on file extension.
type multiLanguage struct {
	perl       Parser
	goParser   Parser
	python     Parser
	ruby       Parser
	php        Parser
	c          Parser
	java       Parser
	rust       Parser
	typescript Parser
}

// New returns a parser that supports all built-in languages.
func New() Parser {
	return &multiLanguage{
		perl:       newPerlParser(),
		goParser:   newGoParser(),
		python:     newPythonParser(),
		ruby:       newRubyParser(),
		php:        newPhpParser(),
		c:          newCParser(),
		java:       newJavaParser(),
		rust:       newRustParser(),
		typescript: newTypeScriptParser(),
	}
}

// Parse routes the file to the parser for its language.
func (p *multiLanguage) Parse(path string) (*token.Document, error) {
	switch detectLanguage(path) {
	case "perl":
		return p.perl.Parse(path)
	case "go":
		return p.goParser.Parse(path)
	case "python":
		return p.python.Parse(path)
	case "ruby":
		return p.ruby.Parse(path)
	case "php":
		return p.php.Parse(path)
	case "c", "cpp":
		return p.c.Parse(path)
	case "java":
		return p.java.Parse(path)
	case "rust":
		return p.rust.Parse(path)
	case "typescript", "javascript":
		return p.typescript.Parse(path)
	default:
		// Not a source document we understand.
		return nil, nil
	}
}

// extensions maps file extensions to language names.
var extensions = map[string]string{
	".pl":   "perl",
	".pm":   "perl",
	".t":    "perl",
	".go":   "go",
	".py":   "python",
	".rb":   "ruby",
	".php":  "php",
	".c":    "c",
	".h":    "c",
	".cpp":  "cpp",
	".cc":   "cpp",
	".hpp":  "cpp",
	".java": "java",
	".rs":   "rust",
	".ts":   "typescript",
	".tsx":  "typescript",
	".js":   "javascript",
	".jsx":  "javascript",
}

// detectLanguage detects the language based on file extension.
func detectLanguage(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := extensions[ext]; ok {
		return lang
	}
	return "unknown"
}

// SupportedExtensions returns the recognized file extensions, sorted, each
// with its leading dot.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(extensions))
	for ext := range extensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// SupportedLanguages returns the supported language names, sorted.
func SupportedLanguages() []string {
	seen := make(map[string]bool)
	for _, lang := range extensions {
		seen[lang] = true
	}
	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
