package synth

import (
	"go/ast"
	"go/token"

	"github.com/sfc-lang/tmpltc/scope"
	"github.com/sfc-lang/tmpltc/template"
)

// predeclared holds the identifier spellings go/parser represents as
// *ast.Ident but which are Go literals, not template-authored names, and so
// must never be rewritten to a member access.
var predeclared = map[string]bool{"true": true, "false": true, "nil": true, "iota": true}

// rewrite implements the §4.1 rewrite table over a real parsed go/ast.Expr.
// fset/shift let it recover each node's original byte range: shift is the
// offset such that shift+fset.Position(pos).Offset is the corresponding
// template-buffer offset.
func (p *Parser) rewrite(n ast.Expr, src string, fset *token.FileSet, shift int, sc scope.Scope) Piece {
	selfRange := func(n ast.Node) template.Range {
		start := fset.Position(n.Pos()).Offset
		end := fset.Position(n.End()).Offset
		return template.Range{Start: shift + start, End: shift + end}
	}
	verbatim := func(n ast.Node) Piece {
		start := fset.Position(n.Pos()).Offset
		end := fset.Position(n.End()).Offset
		return Lit(src[start:end]).Stamp(selfRange(n))
	}

	switch n := n.(type) {
	case *ast.Ident:
		if predeclared[n.Name] {
			return verbatim(n)
		}
		if sc.Contains(n.Name) {
			return Lit(n.Name).Stamp(selfRange(n))
		}
		return Lit("this." + n.Name).Stamp(selfRange(n))

	case *ast.SelectorExpr:
		x := p.rewrite(n.X, src, fset, shift, sc)
		sel := Lit(n.Sel.Name).Stamp(selfRange(n.Sel))
		return Concat(x, Lit("."), sel).Stamp(selfRange(n))

	case *ast.IndexExpr:
		x := p.rewrite(n.X, src, fset, shift, sc)
		idx := p.rewrite(n.Index, src, fset, shift, sc)
		return Concat(x, Lit("["), idx, Lit("]")).Stamp(selfRange(n))

	case *ast.UnaryExpr:
		x := p.rewrite(n.X, src, fset, shift, sc)
		return Concat(Lit(n.Op.String()), x).Stamp(selfRange(n))

	case *ast.StarExpr:
		x := p.rewrite(n.X, src, fset, shift, sc)
		return Concat(Lit("*"), x).Stamp(selfRange(n))

	case *ast.BinaryExpr:
		x := p.rewrite(n.X, src, fset, shift, sc)
		y := p.rewrite(n.Y, src, fset, shift, sc)
		return Concat(x, Lit(" "+n.Op.String()+" "), y).Stamp(selfRange(n))

	case *ast.ParenExpr:
		x := p.rewrite(n.X, src, fset, shift, sc)
		return Concat(Lit("("), x, Lit(")")).Stamp(selfRange(n))

	case *ast.CallExpr:
		fn := p.rewrite(n.Fun, src, fset, shift, sc)
		parts := []Piece{fn, Lit("(")}
		for i, a := range n.Args {
			if i > 0 {
				parts = append(parts, Lit(", "))
			}
			parts = append(parts, p.rewrite(a, src, fset, shift, sc))
		}
		if n.Ellipsis.IsValid() {
			parts = append(parts, Lit("..."))
		}
		parts = append(parts, Lit(")"))
		return Concat(parts...).Stamp(selfRange(n))

	case *ast.Ellipsis:
		// `...` outside of a call's argument list. n.Elt is nil for the
		// `[...]` array-length form, which is copied verbatim; otherwise the
		// element expression is rewritten. A `v-bind="obj"` no-argument
		// binding does not pass through here: buildObjectPiece emits it as
		// `_ = value`.
		if n.Elt == nil {
			return verbatim(n)
		}
		elt := p.rewrite(n.Elt, src, fset, shift, sc)
		return Concat(Lit("..."), elt).Stamp(selfRange(n))

	case *ast.CompositeLit:
		return p.rewriteCompositeLit(n, src, fset, shift, sc)

	case *ast.FuncLit:
		return p.rewriteFuncLit(n, src, fset, shift, sc)

	case *ast.KeyValueExpr:
		key := p.rewrite(n.Key, src, fset, shift, sc)
		val := p.rewrite(n.Value, src, fset, shift, sc)
		return Concat(key, Lit(": "), val).Stamp(selfRange(n))

	default:
		// literals, type expressions, and anything else the table doesn't
		// single out: copied verbatim. Per §9 "synthetic-vs-real position
		// hygiene" these still carry a template-range stamp since they
		// originate from user-authored text; only genuinely synthetic
		// nodes we construct ourselves (never parsed) get the sentinel.
		return verbatim(n)
	}
}

// isMapType reports whether t denotes a map type, so composite-literal
// elements can be told apart as object-literal-style (map) vs
// array-literal-style (slice/array).
func isMapType(t ast.Expr) bool {
	_, ok := t.(*ast.MapType)
	return ok
}

func (p *Parser) rewriteCompositeLit(n *ast.CompositeLit, src string, fset *token.FileSet, shift int, sc scope.Scope) Piece {
	typeText := ""
	if n.Type != nil {
		start := fset.Position(n.Type.Pos()).Offset
		end := fset.Position(n.Type.End()).Offset
		typeText = src[start:end]
	}
	isMap := isMapType(n.Type)

	parts := []Piece{Lit(typeText), Lit("{")}
	for i, elt := range n.Elts {
		if i > 0 {
			parts = append(parts, Lit(", "))
		}
		switch e := elt.(type) {
		case *ast.KeyValueExpr:
			val := p.rewrite(e.Value, src, fset, shift, sc)
			if keyIdent, ok := e.Key.(*ast.Ident); ok && isMap && !predeclared[keyIdent.Name] {
				// A bare identifier before `:` in an object literal is a
				// static property name (spec §4.2 "static argument ->
				// string-literal property key"), not a variable
				// reference — unlike the shorthand-property case below,
				// it is never type-checked.
				parts = append(parts, Lit(`"`+keyIdent.Name+`"`), Lit(": "), val)
			} else {
				key := p.rewrite(e.Key, src, fset, shift, sc)
				parts = append(parts, key, Lit(": "), val)
			}
		case *ast.Ident:
			if isMap && !predeclared[e.Name] {
				// shorthand `{x}` -> `"x": this.x` (or `"x": x` if bound),
				// the Go surface for spec §4.1's shorthand-property rule.
				valueRange := template.Range{
					Start: shift + fset.Position(e.Pos()).Offset,
					End:   shift + fset.Position(e.End()).Offset,
				}
				var value Piece
				if sc.Contains(e.Name) {
					value = Lit(e.Name).Stamp(valueRange)
				} else {
					value = Lit("this." + e.Name).Stamp(valueRange)
				}
				parts = append(parts, Lit(`"`+e.Name+`"`), Lit(": "), value)
			} else {
				parts = append(parts, p.rewrite(e, src, fset, shift, sc))
			}
		default:
			parts = append(parts, p.rewrite(elt, src, fset, shift, sc))
		}
	}
	parts = append(parts, Lit("}"))
	// rewriteCompositeLit adds no range stamp of its own; ParseExpr stamps a
	// top-level array literal but never an object literal (spec §4.1).
	return Concat(parts...)
}

// rewriteFuncLit handles a closure appearing directly in expression
// position (the Go surface for a "concise arrow" used as a plain handler
// reference, e.g. `@click="func(e Event) any { return onClick(e) }"`).
// Its parameters extend scope for the body; the parameter list itself is
// copied verbatim (parameters are not rewritten, spec §4.1).
func (p *Parser) rewriteFuncLit(n *ast.FuncLit, src string, fset *token.FileSet, shift int, sc scope.Scope) Piece {
	sigStart := fset.Position(n.Type.Pos()).Offset
	sigEndOffset := fset.Position(n.Type.End()).Offset
	signatureText := src[sigStart:sigEndOffset]

	sc2 := sc.Extend(funcLitParamNames(n.Type)...)

	bodyParts := []Piece{Lit(signatureText), Lit(" {")}
	for _, stmt := range n.Body.List {
		if ret, ok := stmt.(*ast.ReturnStmt); ok && len(ret.Results) == 1 {
			result := p.rewrite(ret.Results[0], src, fset, shift, sc2)
			bodyParts = append(bodyParts, Lit("\nreturn "), result)
			continue
		}
		bodyParts = append(bodyParts, Lit("\n"), p.rewriteStmt(stmt, src, fset, shift, sc2))
	}
	bodyParts = append(bodyParts, Lit("\n}"))
	return Concat(bodyParts...)
}

func funcLitParamNames(t *ast.FuncType) []string {
	var names []string
	if t.Params == nil {
		return names
	}
	for _, field := range t.Params.List {
		for _, id := range field.Names {
			names = append(names, id.Name)
		}
	}
	return names
}
