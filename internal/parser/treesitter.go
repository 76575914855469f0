package parser

import (
	"os"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/gitpan/pgrep/internal/token"
)

// languageSpec describes how one tree-sitter grammar maps onto the search
// categories: which node kinds carry strings, comments and heredocs, and
// how documentation is told apart from the rest.
type languageSpec struct {
	name     string
	language *sitter.Language

	quoteKinds   map[string]bool
	commentKinds map[string]bool
	heredocKinds map[string]bool

	// contentKinds are the child node kinds holding literal content inside
	// a quote node (string_content, string_fragment, ...).
	contentKinds map[string]bool
	// delimiterKinds are the child kinds dropped when extracting a heredoc
	// body (heredoc_start, heredoc_end, ...).
	delimiterKinds map[string]bool

	// isDocComment promotes a comment to the pod category based on its
	// raw text (e.g. "/**" blocks, rust "///" lines).
	isDocComment func(text string) bool
	// isDocString promotes a quote node to the pod category based on its
	// position (python docstrings).
	isDocString func(n *sitter.Node) bool
}

// treeSitterParser extracts classified tokens from any grammar described
// by a languageSpec.
type treeSitterParser struct {
	spec languageSpec
}

func newTreeSitterParser(spec languageSpec) *treeSitterParser {
	return &treeSitterParser{spec: spec}
}

// Parse parses a source file with tree-sitter and collects its classified
// tokens in depth-first document order.
func (p *treeSitterParser) Parse(path string) (*token.Document, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(p.spec.language)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, nil
	}
	defer tree.Close()

	doc := &token.Document{Path: path, Language: p.spec.name}
	p.walk(tree.RootNode(), source, doc)
	return doc, nil
}

// walk visits nodes depth-first and emits tokens for classified regions.
// Classified nodes are not descended into; their children only feed the
// rendering helpers.
func (p *treeSitterParser) walk(n *sitter.Node, source []byte, doc *token.Document) {
	if n == nil {
		return
	}

	kind := n.Kind()
	switch {
	case p.spec.quoteKinds[kind]:
		if p.spec.isDocString != nil && p.spec.isDocString(n) {
			text := p.literalText(n, source)
			doc.Tokens = append(doc.Tokens, token.Token{
				Kind:  token.KindPod,
				Lines: strings.Split(text, "\n"),
			})
			return
		}
		doc.Tokens = append(doc.Tokens, token.Token{
			Kind:  token.KindQuote,
			Value: p.literalText(n, source),
		})
		return

	case p.spec.heredocKinds[kind]:
		doc.Tokens = append(doc.Tokens, token.Token{
			Kind:  token.KindHeredoc,
			Lines: p.heredocLines(n, source),
		})
		return

	case p.spec.commentKinds[kind]:
		text := nodeText(n, source)
		if p.spec.isDocComment != nil && p.spec.isDocComment(text) {
			doc.Tokens = append(doc.Tokens, token.Token{
				Kind:  token.KindPod,
				Lines: strings.Split(text, "\n"),
			})
			return
		}
		doc.Tokens = append(doc.Tokens, token.Token{Kind: token.KindComment, Raw: text})
		return
	}

	for i := uint(0); i < uint(n.ChildCount()); i++ {
		p.walk(n.Child(i), source, doc)
	}
}

// literalText returns the content of a quote node: the concatenated text
// of its content children when the grammar exposes them, otherwise the raw
// text with the surrounding delimiters trimmed.
func (p *treeSitterParser) literalText(n *sitter.Node, source []byte) string {
	var sb strings.Builder
	found := false
	for i := uint(0); i < uint(n.ChildCount()); i++ {
		child := n.Child(i)
		kind := child.Kind()
		if p.spec.contentKinds[kind] || kind == "escape_sequence" {
			found = true
			sb.WriteString(nodeText(child, source))
		}
	}
	if found {
		return sb.String()
	}
	return trimQuoteDelimiters(nodeText(n, source))
}

// heredocLines returns the raw body lines of a heredoc node, keeping line
// terminators and dropping the delimiter children.
func (p *treeSitterParser) heredocLines(n *sitter.Node, source []byte) []string {
	var sb strings.Builder
	for i := uint(0); i < uint(n.ChildCount()); i++ {
		child := n.Child(i)
		if p.spec.delimiterKinds[child.Kind()] {
			continue
		}
		sb.WriteString(nodeText(child, source))
	}
	body := strings.TrimPrefix(sb.String(), "\n")
	if body == "" {
		return nil
	}
	return strings.SplitAfter(body, "\n")
}

// nodeText extracts the text content of a tree-sitter node.
func nodeText(n *sitter.Node, source []byte) string {
	if n == nil {
		return ""
	}
	return string(source[n.StartByte():n.EndByte()])
}

// trimQuoteDelimiters strips one layer of matching quote characters.
func trimQuoteDelimiters(s string) string {
	for _, q := range []string{`"""`, `'''`, "`", `"`, `'`} {
		if len(s) >= 2*len(q) && strings.HasPrefix(s, q) && strings.HasSuffix(s, q) {
			return s[len(q) : len(s)-len(q)]
		}
	}
	return s
}

// firstNamedChildIs reports whether n is the first named child of its
// parent, walking one level up. Used for docstring detection.
func firstNamedChildIs(n *sitter.Node) bool {
	parent := n.Parent()
	if parent == nil {
		return false
	}
	first := parent.NamedChild(0)
	return first != nil && first.StartByte() == n.StartByte() && first.EndByte() == n.EndByte()
}
