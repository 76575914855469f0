// Package token defines the classified lexical regions the search engine
// operates on. A parser turns one source file into a Document: an ordered
// sequence of tokens tagged with the category-relevant kind and carrying
// the raw content each category needs for rendering.
package token

// Kind classifies a lexical region of a parsed source document.
type Kind int

const (
	// KindQuote is a quoted string literal ('...', "...", q{}, qq{}, etc.).
	KindQuote Kind = iota
	// KindHeredoc is a here-document body.
	KindHeredoc
	// KindPod is a documentation block (POD, docstrings, doc comments).
	KindPod
	// KindComment is an ordinary comment.
	KindComment
)

// String returns the canonical category name for the kind.
func (k Kind) String() string {
	switch k {
	case KindQuote:
		return "quote"
	case KindHeredoc:
		return "heredoc"
	case KindPod:
		return "pod"
	case KindComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Token is one classified region of a source document. Only the fields
// relevant to the token's kind are populated:
//   - KindQuote: Value holds the string content between the delimiters.
//   - KindHeredoc: Lines holds the raw body lines, each keeping its
//     trailing newline; the terminator line is excluded.
//   - KindPod: Lines holds the documentation lines without terminators.
//   - KindComment: Raw holds the raw comment text including its marker.
type Token struct {
	Kind  Kind
	Value string
	Raw   string
	Lines []string
}

// Document is the parsed representation of one source file. Tokens appear
// in document order (the parser's top-to-bottom, depth-first traversal);
// the engine relies on this order and never re-sorts.
type Document struct {
	Path     string
	Language string
	Tokens   []Token
}
