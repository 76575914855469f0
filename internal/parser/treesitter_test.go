package parser

// Smoke tests for the tree-sitter backed languages. These pin the category
// classification, not the grammars' node layouts, so assertions stay loose
// where the grammar owns the detail.

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitpan/pgrep/internal/token"
)

func parseWith(t *testing.T, p Parser, name, src string) *token.Document {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	doc, err := p.Parse(path)
	require.NoError(t, err)
	require.NotNil(t, doc)
	return doc
}

func TestPythonParser(t *testing.T) {
	t.Parallel()

	doc := parseWith(t, newPythonParser(), "sample.py", `"""Module documentation."""

# a comment
greeting = "hello world"


def f():
    """Function docs."""
    return "inner"
`)

	pods := tokensOfKind(doc, token.KindPod)
	require.Len(t, pods, 2)
	assert.Equal(t, []string{"Module documentation."}, pods[0].Lines)
	assert.Equal(t, []string{"Function docs."}, pods[1].Lines)

	comments := tokensOfKind(doc, token.KindComment)
	require.Len(t, comments, 1)
	assert.Equal(t, "# a comment", comments[0].Raw)

	quotes := tokensOfKind(doc, token.KindQuote)
	require.Len(t, quotes, 2)
	assert.Equal(t, "hello world", quotes[0].Value)
	assert.Equal(t, "inner", quotes[1].Value)
}

func TestRubyParser(t *testing.T) {
	t.Parallel()

	doc := parseWith(t, newRubyParser(), "sample.rb", `# plain comment
greeting = "hello"
text = <<~EOT
  heredoc body
EOT

=begin
Block documentation.
=end
`)

	comments := tokensOfKind(doc, token.KindComment)
	require.Len(t, comments, 1)
	assert.Equal(t, "# plain comment", comments[0].Raw)

	quotes := tokensOfKind(doc, token.KindQuote)
	require.Len(t, quotes, 1)
	assert.Equal(t, "hello", quotes[0].Value)

	heredocs := tokensOfKind(doc, token.KindHeredoc)
	require.Len(t, heredocs, 1)
	assert.Contains(t, strings.Join(heredocs[0].Lines, ""), "heredoc body")

	pods := tokensOfKind(doc, token.KindPod)
	require.Len(t, pods, 1)
	assert.Contains(t, strings.Join(pods[0].Lines, "\n"), "Block documentation.")
}

func TestPhpParser(t *testing.T) {
	t.Parallel()

	doc := parseWith(t, newPhpParser(), "sample.php", `<?php
/** Documented function. */
function greet() {
    // plain comment
    $s = "hello";
    $h = <<<EOT
heredoc body
EOT;
    return $s;
}
`)

	pods := tokensOfKind(doc, token.KindPod)
	require.Len(t, pods, 1)
	assert.Contains(t, strings.Join(pods[0].Lines, "\n"), "Documented function.")

	comments := tokensOfKind(doc, token.KindComment)
	require.Len(t, comments, 1)
	assert.Equal(t, "// plain comment", comments[0].Raw)

	quotes := tokensOfKind(doc, token.KindQuote)
	require.Len(t, quotes, 1)
	assert.Equal(t, "hello", quotes[0].Value)

	heredocs := tokensOfKind(doc, token.KindHeredoc)
	require.Len(t, heredocs, 1)
	assert.Contains(t, strings.Join(heredocs[0].Lines, ""), "heredoc body")
}

func TestRustParser(t *testing.T) {
	t.Parallel()

	doc := parseWith(t, newRustParser(), "sample.rs", `/// Documented item.
fn greet() -> &'static str {
    // plain comment
    "hello"
}
`)

	pods := tokensOfKind(doc, token.KindPod)
	require.Len(t, pods, 1)
	assert.Contains(t, strings.Join(pods[0].Lines, "\n"), "Documented item.")

	comments := tokensOfKind(doc, token.KindComment)
	require.Len(t, comments, 1)
	assert.Equal(t, "// plain comment", comments[0].Raw)

	quotes := tokensOfKind(doc, token.KindQuote)
	require.Len(t, quotes, 1)
	assert.Equal(t, "hello", quotes[0].Value)
}

func TestJavaParser(t *testing.T) {
	t.Parallel()

	doc := parseWith(t, newJavaParser(), "Sample.java", `/** Documented class. */
class Sample {
    // plain comment
    String s = "hello";
}
`)

	pods := tokensOfKind(doc, token.KindPod)
	require.Len(t, pods, 1)
	assert.Contains(t, strings.Join(pods[0].Lines, "\n"), "Documented class.")

	comments := tokensOfKind(doc, token.KindComment)
	require.Len(t, comments, 1)

	quotes := tokensOfKind(doc, token.KindQuote)
	require.Len(t, quotes, 1)
	assert.Equal(t, "hello", quotes[0].Value)
}

func TestTypeScriptParser(t *testing.T) {
	t.Parallel()

	doc := parseWith(t, newTypeScriptParser(), "sample.ts", `/** Documented function. */
function greet(): string {
    // plain comment
    return "hello";
}
`)

	pods := tokensOfKind(doc, token.KindPod)
	require.Len(t, pods, 1)

	comments := tokensOfKind(doc, token.KindComment)
	require.Len(t, comments, 1)

	quotes := tokensOfKind(doc, token.KindQuote)
	require.Len(t, quotes, 1)
	assert.Equal(t, "hello", quotes[0].Value)
}

func TestCParser(t *testing.T) {
	t.Parallel()

	doc := parseWith(t, newCParser(), "sample.c", `/* block comment */
const char *s = "hello";
`)

	comments := tokensOfKind(doc, token.KindComment)
	require.Len(t, comments, 1)
	assert.Equal(t, "/* block comment */", comments[0].Raw)

	quotes := tokensOfKind(doc, token.KindQuote)
	require.Len(t, quotes, 1)
	assert.Equal(t, "hello", quotes[0].Value)
}
