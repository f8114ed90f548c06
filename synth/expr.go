// Package synth implements the Expression Parser & Scope Injector (spec
// §4.1) and the Template Transformer (spec §4.2): it walks a template.Node
// tree and the raw expression substrings inside it, producing a synthetic
// Go source fragment (as a Piece) plus the source-map marks that let
// diagnostics reported against that fragment be traced back to template
// coordinates.
package synth

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"github.com/sfc-lang/tmpltc/scope"
	"github.com/sfc-lang/tmpltc/template"
)

// Notices accumulates internal invariant violations (spec §7): unexpected
// shapes the transform recovers from by substituting a neutral placeholder.
// Never surfaced to the user; a non-empty Notices slice indicates a bug in
// the transform or an unsupported directive variant, not a template error.
type Notices = []string

// Parser's only state is the notices slice it appends to; apart from those
// appends, every method is a pure function of its arguments, matching spec
// §9's "scope as value, not state". Because of the appends, a Parser is not
// safe for concurrent use.
type Parser struct {
	notices *[]string
}

// NewParser returns a Parser that appends internal notices to notices.
func NewParser(notices *[]string) *Parser {
	return &Parser{notices: notices}
}

func (p *Parser) note(format string, args ...any) {
	if p.notices == nil {
		return
	}
	*p.notices = append(*p.notices, fmt.Sprintf(format, args...))
}

// ParseExpr implements spec §4.1: it parses raw (wrapped in parens so a
// brace-initial input like a map literal is never mistaken for a statement
// block), rewrites free identifiers against sc, and stamps the resulting
// Piece with the original substring's range, unless the expression is an
// object (map) literal, which gets no range of its own.
//
// offset is the absolute byte offset of raw[0] in the template buffer.
func (p *Parser) ParseExpr(raw string, sc scope.Scope, offset int) Piece {
	tmplRange := template.Range{Start: offset, End: offset + len(raw)}

	if cond, a, b, ok := splitTernary(raw); ok {
		return p.rewriteTernary(raw, cond, a, b, sc, offset).Stamp(tmplRange)
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Lit(`""`).Stamp(tmplRange)
	}

	// Bare object/array literals (`{ foo: true }`, `[a, b]`) are how
	// directive values are actually authored — Go has no untyped
	// composite-literal syntax, so a type is synthesized in front of the
	// raw text before handing it to go/parser. Array literals use `[...]`
	// delimiters in the template but Go composite literals always use
	// `{...}`, so the two outermost bracket bytes are swapped for braces;
	// every other byte (and therefore every inner offset) is untouched.
	prefix, text := "", raw
	switch trimmed[0] {
	case '{':
		prefix = "map[string]any"
	case '[':
		prefix = "[]any"
		text = swapOuterBrackets(raw)
	}

	src := "(" + prefix + text + ")"
	fset := token.NewFileSet()
	fset.AddFile("", -1, len(src))
	expr, err := parser.ParseExprFrom(fset, "", src, 0)
	if err != nil {
		p.note("unexpected expression form %q: %v", raw, err)
		return Lit(`""`).Stamp(tmplRange)
	}
	paren, ok := expr.(*ast.ParenExpr)
	if !ok {
		p.note("expected parenthesized expression, got %T for %q", expr, raw)
		return Lit(`""`).Stamp(tmplRange)
	}

	// shift maps a byte offset within src to the corresponding offset in the
	// template buffer: src[0] is '(', which sits one byte before raw[0];
	// the synthesized prefix, if any, sits between them.
	shift := offset - 1 - len(prefix)
	piece := p.rewrite(paren.X, src, fset, shift, sc)
	if lit, ok := paren.X.(*ast.CompositeLit); ok && isMapType(lit.Type) {
		return piece
	}
	return piece.Stamp(tmplRange)
}

// swapOuterBrackets replaces raw's first '[' and last ']' with '{' and '}',
// leaving every other byte (including whitespace) untouched, so an
// array-literal directive value's inner offsets stay aligned with the
// template buffer after the delimiter swap.
func swapOuterBrackets(raw string) string {
	open := strings.IndexByte(raw, '[')
	closeIdx := strings.LastIndexByte(raw, ']')
	if open < 0 || closeIdx < 0 || closeIdx <= open {
		return raw
	}
	b := []byte(raw)
	b[open] = '{'
	b[closeIdx] = '}'
	return string(b)
}
