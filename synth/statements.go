package synth

import (
	"go/ast"
	"go/parser"
	"go/token"

	"github.com/sfc-lang/tmpltc/scope"
	"github.com/sfc-lang/tmpltc/template"
)

// ParseEventBody implements the "statement body" branch of §4.2's event
// handler rule: each statement substring is parsed independently (so that
// one malformed statement doesn't poison the others' ranges) and rewritten
// under sc extended with the event globals. Any statement that isn't an
// expression statement or an assignment is logged (§7) and replaced with a
// neutral placeholder — Go expresses JS's "assignment expression" as its own
// statement kind, so assignment is accepted here alongside plain expression
// statements, a deliberate broadening of spec §4.2's "must be an expression
// statement" documented in DESIGN.md.
func (p *Parser) ParseEventBody(body template.EventHandlerBody, sc scope.Scope) []Piece {
	sc = sc.WithEventGlobals()
	pieces := make([]Piece, 0, len(body.Statements))
	for _, stmt := range body.Statements {
		pieces = append(pieces, p.parseStatement(stmt.Raw, sc, stmt.Offset))
	}
	return pieces
}

const stmtPrefix = "package p\n\nfunc __f() {\n"

func (p *Parser) parseStatement(raw string, sc scope.Scope, offset int) Piece {
	tmplRange := template.Range{Start: offset, End: offset + len(raw)}

	src := stmtPrefix + raw + "\n}\n"
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "", src, 0)
	if err != nil || len(file.Decls) == 0 {
		p.note("unexpected statement form %q: %v", raw, err)
		return Lit(`_ = ""`).Stamp(tmplRange)
	}
	fn, ok := file.Decls[0].(*ast.FuncDecl)
	if !ok || fn.Body == nil || len(fn.Body.List) == 0 {
		p.note("unexpected statement form %q", raw)
		return Lit(`_ = ""`).Stamp(tmplRange)
	}
	shift := offset - len(stmtPrefix)

	parts := make([]Piece, 0, len(fn.Body.List))
	for i, stmt := range fn.Body.List {
		if i > 0 {
			parts = append(parts, Lit("\n"))
		}
		parts = append(parts, p.rewriteStmt(stmt, src, fset, shift, sc))
	}
	return Concat(parts...).Stamp(tmplRange)
}

// rewriteStmt rewrites a single Go statement node. Only expression
// statements and assignments are modeled per §4.2/§7; everything else
// becomes a neutral placeholder statement.
func (p *Parser) rewriteStmt(stmt ast.Stmt, src string, fset *token.FileSet, shift int, sc scope.Scope) Piece {
	selfRange := func(n ast.Node) template.Range {
		start := fset.Position(n.Pos()).Offset
		end := fset.Position(n.End()).Offset
		return template.Range{Start: shift + start, End: shift + end}
	}

	switch s := stmt.(type) {
	case *ast.ExprStmt:
		x := p.rewrite(s.X, src, fset, shift, sc)
		return x.Stamp(selfRange(s))

	case *ast.AssignStmt:
		if len(s.Lhs) != 1 || len(s.Rhs) != 1 {
			p.note("unsupported multi-assign statement")
			return Lit(`_ = ""`).Stamp(selfRange(s))
		}
		lhs := p.rewrite(s.Lhs[0], src, fset, shift, sc)
		rhs := p.rewrite(s.Rhs[0], src, fset, shift, sc)
		return Concat(lhs, Lit(" "+s.Tok.String()+" "), rhs).Stamp(selfRange(s))

	default:
		p.note("unsupported statement kind %T in event handler body", stmt)
		return Lit(`_ = ""`).Stamp(selfRange(stmt))
	}
}
