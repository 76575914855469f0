package parser

import (
	"os"
	"strings"

	"github.com/gitpan/pgrep/internal/token"
)

// perlParser lexes Perl documents with a built-in scanner. It classifies
// the regions the search categories care about (quotes, heredocs, POD,
// comments) and skips over the other quote-like operators (m//, s///,
// tr///, qw//, qr//) so their bodies are never misread as comments or
// strings.
type perlParser struct{}

func newPerlParser() *perlParser {
	return &perlParser{}
}

// Parse lexes a Perl source file into a token document.
func (p *perlParser) Parse(path string) (*token.Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc := &token.Document{Path: path, Language: "perl"}
	lexPerl(string(src), doc)
	return doc, nil
}

// pendingHeredoc tracks a heredoc whose marker has been seen but whose
// body starts on the next physical line. The token is already appended at
// the marker position; its lines are filled in when the body is consumed.
type pendingHeredoc struct {
	tokenIndex int
	terminator string
	indented   bool
}

// lexPerl scans the whole source once, appending tokens in document order.
func lexPerl(src string, doc *token.Document) {
	var pending []pendingHeredoc
	i := 0
	for i < len(src) {
		c := src[i]
		atLineStart := i == 0 || src[i-1] == '\n'

		switch {
		case c == '\n':
			i++
			if len(pending) > 0 {
				i = drainHeredocs(src, i, doc, pending)
				pending = pending[:0]
			}

		case atLineStart && c == '=' && i+1 < len(src) && isAlpha(src[i+1]):
			i = lexPod(src, i, doc)

		case c == '#' && (i == 0 || src[i-1] != '$'):
			i = lexComment(src, i, doc)

		case c == '\'' || c == '"':
			if i > 0 && src[i-1] == '$' {
				// $' and $" are variables, not string openers.
				i++
				continue
			}
			inner, next := scanDelimited(src, i+1, c, c, false)
			doc.Tokens = append(doc.Tokens, token.Token{Kind: token.KindQuote, Value: inner})
			i = next

		case c == '<' && i+1 < len(src) && src[i+1] == '<':
			term, indented, next, ok := scanHeredocMarker(src, i)
			if !ok {
				// Left shift or numeric comparison, not a heredoc.
				i += 2
				continue
			}
			doc.Tokens = append(doc.Tokens, token.Token{Kind: token.KindHeredoc})
			pending = append(pending, pendingHeredoc{
				tokenIndex: len(doc.Tokens) - 1,
				terminator: term,
				indented:   indented,
			})
			i = next

		case isWordStart(c) && !precededByWordOrSigil(src, i):
			i = lexWord(src, i, doc)

		default:
			i++
		}
	}
}

// quoteLikeOps are the operators that introduce a delimited section. Only
// q and qq produce quote tokens; the rest are consumed so their bodies do
// not confuse the scanner.
var quoteLikeOps = map[string]bool{
	"q": true, "qq": true, "qw": true, "qr": true,
	"m": true, "s": true, "y": true, "tr": true,
}

// twoPartOps take a second delimited section (replacement text).
var twoPartOps = map[string]bool{"s": true, "y": true, "tr": true}

// lexWord consumes one bareword. If it is a quote-like operator followed
// immediately by a delimiter, the delimited section is consumed too, and
// q/qq emit a quote token.
func lexWord(src string, i int, doc *token.Document) int {
	j := i
	for j < len(src) && isWordChar(src[j]) {
		j++
	}
	word := src[i:j]
	if !quoteLikeOps[word] || j >= len(src) || !isQuoteDelimiter(src[j]) {
		return j
	}

	open := src[j]
	closer, nest := closingDelimiter(open)
	inner, next := scanDelimited(src, j+1, open, closer, nest)

	if word == "q" || word == "qq" {
		doc.Tokens = append(doc.Tokens, token.Token{Kind: token.KindQuote, Value: inner})
	}

	if twoPartOps[word] {
		if nest {
			// Bracket-paired delimiters: the replacement opens with a
			// fresh delimiter, possibly after whitespace.
			for next < len(src) && (src[next] == ' ' || src[next] == '\t' || src[next] == '\n') {
				next++
			}
			if next < len(src) && isQuoteDelimiter(src[next]) {
				open2 := src[next]
				closer2, nest2 := closingDelimiter(open2)
				_, next = scanDelimited(src, next+1, open2, closer2, nest2)
			}
		} else {
			_, next = scanDelimited(src, next, open, closer, false)
		}
	}

	if word != "q" && word != "qq" && word != "qw" {
		// Trailing pattern modifiers (e.g. s/a/b/gix).
		for next < len(src) && isAlpha(src[next]) {
			next++
		}
	}
	return next
}

// lexComment consumes a comment up to (not including) the line terminator.
func lexComment(src string, i int, doc *token.Document) int {
	end := strings.IndexByte(src[i:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += i
	}
	doc.Tokens = append(doc.Tokens, token.Token{Kind: token.KindComment, Raw: src[i:end]})
	return end
}

// lexPod consumes a POD block from its opening =word line through the
// =cut line (inclusive) or end of file. Lines are stored without their
// terminators.
func lexPod(src string, i int, doc *token.Document) int {
	var lines []string
	j := i
	for j < len(src) {
		line, next := readLine(src, j)
		j = next
		trimmed := strings.TrimSuffix(line, "\n")
		lines = append(lines, trimmed)
		if trimmed == "=cut" || strings.HasPrefix(trimmed, "=cut ") || strings.HasPrefix(trimmed, "=cut\t") {
			break
		}
	}
	doc.Tokens = append(doc.Tokens, token.Token{Kind: token.KindPod, Lines: lines})
	return j
}

// scanHeredocMarker reads a heredoc introduction at src[i:] ("<<TERM",
// <<"TERM", <<'TERM', optionally with ~ for indented heredocs). A bareword
// terminator must follow the marker immediately and start with a letter or
// underscore; anything else is the shift operator.
func scanHeredocMarker(src string, i int) (term string, indented bool, next int, ok bool) {
	j := i + 2
	if j < len(src) && src[j] == '~' {
		indented = true
		j++
	}
	if j < len(src) && (src[j] == '"' || src[j] == '\'') {
		q := src[j]
		k := j + 1
		for k < len(src) && src[k] != q && src[k] != '\n' {
			k++
		}
		if k >= len(src) || src[k] != q {
			return "", false, 0, false
		}
		return src[j+1 : k], indented, k + 1, true
	}
	if j < len(src) && isWordStart(src[j]) {
		k := j
		for k < len(src) && isWordChar(src[k]) {
			k++
		}
		return src[j:k], indented, k, true
	}
	return "", false, 0, false
}

// drainHeredocs consumes the bodies of all heredocs whose markers appeared
// on the line that just ended, in marker order. Body lines keep their
// trailing newlines; the terminator line is dropped.
func drainHeredocs(src string, i int, doc *token.Document, pending []pendingHeredoc) int {
	for _, h := range pending {
		var lines []string
		for i < len(src) {
			line, next := readLine(src, i)
			i = next
			cmp := strings.TrimSuffix(line, "\n")
			if h.indented {
				cmp = strings.TrimLeft(cmp, " \t")
			}
			if cmp == h.terminator {
				break
			}
			lines = append(lines, line)
		}
		doc.Tokens[h.tokenIndex].Lines = lines
	}
	return i
}

// scanDelimited scans from start (just past the opening delimiter) to the
// matching closer and returns the raw inner text plus the index past the
// closer. A backslash escapes the next character; bracket pairs nest. An
// unterminated section runs to end of file.
func scanDelimited(src string, start int, open, closer byte, nest bool) (string, int) {
	depth := 1
	i := start
	for i < len(src) {
		c := src[i]
		switch {
		case c == '\\' && i+1 < len(src):
			i += 2
		case nest && c == open:
			depth++
			i++
		case c == closer:
			depth--
			if depth == 0 {
				return src[start:i], i + 1
			}
			i++
		default:
			i++
		}
	}
	return src[start:], len(src)
}

// readLine returns the line starting at i including its newline (when
// present) and the index of the next line.
func readLine(src string, i int) (string, int) {
	end := strings.IndexByte(src[i:], '\n')
	if end < 0 {
		return src[i:], len(src)
	}
	return src[i : i+end+1], i + end + 1
}

// closingDelimiter maps an opening delimiter to its closer; the four
// bracket pairs nest.
func closingDelimiter(open byte) (closer byte, nest bool) {
	switch open {
	case '(':
		return ')', true
	case '{':
		return '}', true
	case '[':
		return ']', true
	case '<':
		return '>', true
	default:
		return open, false
	}
}

// isQuoteDelimiter reports whether c can open a quote-like section. The
// characters that commonly follow a bareword in other roles (fat comma,
// statement separators, comments) are excluded.
func isQuoteDelimiter(c byte) bool {
	if isWordChar(c) || c == ' ' || c == '\t' || c == '\n' || c == '\r' {
		return false
	}
	switch c {
	case '=', ',', ';', '#':
		return false
	}
	return c > ' ' && c < 0x7f
}

// precededByWordOrSigil reports whether the character before src[i] glues
// it to an identifier: a word character, or a sigil/arrow that makes the
// word a variable or method name rather than an operator.
func precededByWordOrSigil(src string, i int) bool {
	if i == 0 {
		return false
	}
	p := src[i-1]
	if isWordChar(p) {
		return true
	}
	switch p {
	case '$', '@', '%', '&', '>':
		return true
	}
	return false
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordStart(c byte) bool {
	return isAlpha(c) || c == '_'
}

func isWordChar(c byte) bool {
	return isWordStart(c) || (c >= '0' && c <= '9')
}
