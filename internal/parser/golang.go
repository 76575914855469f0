package parser

import (
	"go/ast"
	goparser "go/parser"
	gotoken "go/token"
	"sort"
	"strconv"
	"strings"

	"github.com/gitpan/pgrep/internal/token"
)

// goParser parses Go files with the standard library AST. Doc comments
// attached to declarations are classified as documentation blocks; free
// comments stay in the comment category; string literals become quotes.
type goParser struct{}

func newGoParser() *goParser {
	return &goParser{}
}

// Parse parses a Go source file into a token document.
func (p *goParser) Parse(path string) (*token.Document, error) {
	fset := gotoken.NewFileSet()
	file, err := goparser.ParseFile(fset, path, nil, goparser.ParseComments)
	if err != nil {
		return nil, err
	}

	type positioned struct {
		pos gotoken.Pos
		tok token.Token
	}
	var toks []positioned

	docGroups := collectDocGroups(file)

	for _, group := range file.Comments {
		if docGroups[group] {
			text := strings.TrimSuffix(group.Text(), "\n")
			toks = append(toks, positioned{
				pos: group.Pos(),
				tok: token.Token{Kind: token.KindPod, Lines: strings.Split(text, "\n")},
			})
			continue
		}
		for _, c := range group.List {
			toks = append(toks, positioned{
				pos: c.Pos(),
				tok: token.Token{Kind: token.KindComment, Raw: c.Text},
			})
		}
	}

	ast.Inspect(file, func(n ast.Node) bool {
		lit, ok := n.(*ast.BasicLit)
		if !ok || lit.Kind != gotoken.STRING {
			return true
		}
		value, err := strconv.Unquote(lit.Value)
		if err != nil {
			value = lit.Value
		}
		toks = append(toks, positioned{
			pos: lit.Pos(),
			tok: token.Token{Kind: token.KindQuote, Value: value},
		})
		return true
	})

	// Comments and literals come from separate traversals; restore
	// document order.
	sort.SliceStable(toks, func(i, j int) bool { return toks[i].pos < toks[j].pos })

	doc := &token.Document{Path: path, Language: "go"}
	for _, t := range toks {
		doc.Tokens = append(doc.Tokens, t.tok)
	}
	return doc, nil
}

// collectDocGroups gathers the comment groups that serve as documentation
// for a declaration, so they can be told apart from free comments.
func collectDocGroups(file *ast.File) map[*ast.CommentGroup]bool {
	docs := make(map[*ast.CommentGroup]bool)
	add := func(g *ast.CommentGroup) {
		if g != nil {
			docs[g] = true
		}
	}

	add(file.Doc)
	ast.Inspect(file, func(n ast.Node) bool {
		switch d := n.(type) {
		case *ast.GenDecl:
			add(d.Doc)
		case *ast.FuncDecl:
			add(d.Doc)
		case *ast.TypeSpec:
			add(d.Doc)
		case *ast.ValueSpec:
			add(d.Doc)
		case *ast.ImportSpec:
			add(d.Doc)
		case *ast.Field:
			add(d.Doc)
		}
		return true
	})
	return docs
}
