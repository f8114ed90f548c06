package synth

import (
	"fmt"

	"github.com/sfc-lang/tmpltc/scope"
	"github.com/sfc-lang/tmpltc/template"
)

// Helper identifiers reserved by the synthetic program (spec §6). Their
// declarations live in the ambient script-block type model, supplied at
// type-check time by the host (here: the stub package under
// testdata/stubmodule, which cmd/tmplcheck-demo also loads by default) — the
// transform only emits calls to them.
const (
	RenderHelper    = "__vlsRenderHelper"
	ComponentHelper = "__vlsComponentHelper"
	IterationHelper = "__vlsIterationHelper"
	ListenerHelper  = "__vlsListenerHelper"
)

// Transformer walks a template tree and emits the synthetic program body
// (spec §4.2). It holds no per-template state; a fresh Transformer is cheap
// to construct per validation request (spec §5).
type Transformer struct {
	parser *Parser
}

// NewTransformer returns a Transformer that records internal notices (§7)
// into notices.
func NewTransformer(notices *[]string) *Transformer {
	return &Transformer{parser: NewParser(notices)}
}

// TransformRoot walks every child of the template root in document order
// and returns one synthetic expression Piece per child (spec §4.2
// "Top-level").
func (t *Transformer) TransformRoot(children []template.Node, sc scope.Scope) []Piece {
	pieces := make([]Piece, 0, len(children))
	for _, c := range children {
		pieces = append(pieces, t.Transform(c, sc))
	}
	return pieces
}

// Transform dispatches on the template node variant (spec §4.2).
func (t *Transformer) Transform(n template.Node, sc scope.Scope) Piece {
	switch node := n.(type) {
	case *template.Element:
		return t.transformElement(node, sc)
	case *template.ExpressionContainer:
		if node.Expression == nil {
			return Lit(`""`)
		}
		return t.parser.ParseExpr(node.Expression.Raw, sc, node.Expression.Offset)
	case *template.Text:
		return Lit(goStringLiteral(node.Value))
	default:
		t.parser.note("unsupported template node kind %T", n)
		return Lit(`""`)
	}
}

func (t *Transformer) transformElement(el *template.Element, sc scope.Scope) Piece {
	inner := sc.Extend(el.LocalVariables...) // S' = S ∪ locals

	iterAttr := findIterationDirective(el.Attributes)

	// Iteration binders are in scope only inside the element (spec §4.2
	// step 5), so the scope used to build this element's own attribute
	// data and children is extended *before* either is built — not
	// wrapped after the fact, since `item` in `{{ item.notExists }}`
	// below a `v-for="item in items"` element is itself a child of that
	// element.
	elementScope := inner
	var source Piece
	var loopClause string
	if iterAttr != nil {
		iter := iterAttr.Value.Iteration
		// The source expression is resolved under the outer scope: the
		// binder it's about to introduce is not yet in scope for it.
		source = t.parser.ParseExpr(iter.Right.Raw, sc, iter.Right.Offset)
		clause, names := rangeClause(iter.Left)
		loopClause = clause
		elementScope = inner.ExtendPatterns(buildersOf(iter.Left)...).Extend(names...)
	}

	data := t.buildAttributeData(el.Attributes, elementScope)

	children := make([]Piece, 0, len(el.Children))
	for _, c := range el.Children {
		children = append(children, t.Transform(c, elementScope))
	}
	childrenLit := Concat(append([]Piece{Lit("[]any{")}, interleave(children, Lit(", "))...)...)
	childrenLit = Concat(childrenLit, Lit("}"))

	element := Concat(
		Lit(ComponentHelper+"("+goStringLiteral(el.Name)+", "), data, Lit(", "), childrenLit, Lit(")"),
	)

	if iterAttr == nil {
		return element
	}
	return Concat(
		Lit(IterationHelper+"(func() any {\nfor "+loopClause+" := range "), source,
		Lit(" {\nreturn "), element, Lit("\n}\nreturn nil\n})"),
	)
}

// findIterationDirective returns the `for` directive attribute carrying a
// non-empty IterationExpression, or nil if the element has none (spec
// §4.2 step 5: "if any attribute is an iteration directive...").
func findIterationDirective(attrs []template.Attribute) *template.Attribute {
	for i := range attrs {
		if template.Classify(attrs[i]) != template.DirectiveFor {
			continue
		}
		if attrs[i].Value != nil && attrs[i].Value.Kind == template.DirectiveValueIteration {
			return &attrs[i]
		}
	}
	return nil
}

// rangeClause renders the Go `for <vars> := range` variable list for an
// iteration directive's binder patterns, and returns the plain-identifier
// names it introduces. Spec's `Pattern[]` left side maps onto Go's range
// clause: a single binder becomes the range value (`for _, x := range`), two
// binders become value and key/index in Vue's (value, key) order, which Go's
// range clause expresses as (key, value) — hence the swap below. Nested
// object/array binder patterns still contribute their names to scope (via
// ExtendPatterns at the call site) for soundness, but destructuring them
// out of a non-ident range variable is not modeled; only the common
// single/double plain-identifier forms produce real range variables.
func rangeClause(left []template.Pattern) (clause string, names []string) {
	switch len(left) {
	case 0:
		return "_", nil
	case 1:
		if left[0].Kind == template.PatternIdent {
			return "_, " + left[0].Name, []string{left[0].Name}
		}
		return "_, _", nil
	default:
		value, key := left[0], left[1]
		valueOK := value.Kind == template.PatternIdent
		keyOK := key.Kind == template.PatternIdent
		switch {
		case valueOK && keyOK:
			return key.Name + ", " + value.Name, []string{value.Name, key.Name}
		case valueOK:
			return "_, " + value.Name, []string{value.Name}
		case keyOK:
			return key.Name + ", _", []string{key.Name}
		default:
			return "_, _", nil
		}
	}
}

func buildersOf(patterns []template.Pattern) []scope.Binder {
	binders := make([]scope.Binder, 0, len(patterns))
	for i := range patterns {
		binders = append(binders, scope.PatternBinder(&patterns[i]))
	}
	return binders
}

func interleave(pieces []Piece, sep Piece) []Piece {
	if len(pieces) == 0 {
		return nil
	}
	out := make([]Piece, 0, len(pieces)*2-1)
	for i, p := range pieces {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}

func goStringLiteral(s string) string {
	return fmt.Sprintf("%q", s)
}
