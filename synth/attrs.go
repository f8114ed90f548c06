package synth

import (
	"github.com/sfc-lang/tmpltc/scope"
	"github.com/sfc-lang/tmpltc/template"
)

// objEntry is one member of a props/on object under construction. A zero
// (empty, unmarked) Key denotes a missing-argument binding (`v-bind="obj"`): there is no target
// key, only an operand that still needs to be type-checked (spec §4.2
// argument-name rules, "missing argument produces a spread assignment").
type objEntry struct {
	Key   Piece
	Value Piece
}

// buildAttributeData assembles the three-property object literal described
// in spec §4.2 "Attribute data": `props`, `on`, `directives`, always in that
// order. sc is the scope the element's attributes are evaluated under (S',
// already extended with any iteration binders by the caller).
func (t *Transformer) buildAttributeData(attrs []template.Attribute, sc scope.Scope) Piece {
	var props, on []objEntry
	var directives []Piece

	for i := range attrs {
		attr := attrs[i]
		switch template.Classify(attr) {
		case template.DirectiveFor, template.DirectiveSlot, template.DirectiveSlotScope:
			// for is handled by the caller; slot/slot-scope are an open
			// question (§9) and contribute nothing to the emitted data.
			continue

		case template.DirectiveBind:
			if e := t.applyArgument(attr.Argument, t.bindingValue(attr, sc), sc); e != nil {
				props = append(props, *e)
			}

		case template.DirectiveOn:
			if e := t.applyArgument(attr.Argument, t.eventHandlerValue(attr, sc), sc); e != nil {
				on = append(on, *e)
			}

		default:
			if attr.IsDirective {
				if attr.Argument != nil && attr.Argument.Kind == template.ArgumentDynamic && attr.Argument.Expression != nil {
					expr := attr.Argument.Expression
					directives = append(directives, t.parser.ParseExpr(expr.Raw, sc, expr.Offset))
				}
				if attr.Value != nil && attr.Value.Kind == template.DirectiveValueExpression && attr.Value.Expression != nil {
					expr := attr.Value.Expression
					directives = append(directives, t.parser.ParseExpr(expr.Raw, sc, expr.Offset))
				}
				continue
			}
			if attr.Name == "class" || attr.Name == "style" {
				continue
			}
			props = append(props, plainAttributeEntry(attr))
		}
	}

	directivesLit := Concat(append([]Piece{Lit("[]any{")}, interleave(directives, Lit(", "))...)...)
	directivesLit = Concat(directivesLit, Lit("}"))

	return Concat(
		Lit("map[string]any{\"props\": "), buildObjectPiece(props),
		Lit(", \"on\": "), buildObjectPiece(on),
		Lit(", \"directives\": "), directivesLit,
		Lit("}"),
	)
}

// bindingValue computes a `bind` directive's value expression, or the
// literal `true` the spec prescribes when the value is omitted.
func (t *Transformer) bindingValue(attr template.Attribute, sc scope.Scope) Piece {
	if attr.Value == nil || attr.Value.Kind != template.DirectiveValueExpression || attr.Value.Expression == nil {
		return Lit("true")
	}
	expr := attr.Value.Expression
	return t.parser.ParseExpr(expr.Raw, sc, expr.Offset)
}

// eventHandlerValue computes an `on` directive's handler expression: a
// simple expression is emitted directly, a statement body is wrapped in
// listenerHelper per spec §4.2's "Event handler body".
func (t *Transformer) eventHandlerValue(attr template.Attribute, sc scope.Scope) Piece {
	if attr.Value == nil {
		return Lit("nil")
	}
	switch attr.Value.Kind {
	case template.DirectiveValueExpression:
		if attr.Value.Expression == nil {
			return Lit("nil")
		}
		expr := attr.Value.Expression
		return t.parser.ParseExpr(expr.Raw, sc, expr.Offset)

	case template.DirectiveValueEventBody:
		if attr.Value.EventBody == nil {
			return Lit("nil")
		}
		stmts := t.parser.ParseEventBody(*attr.Value.EventBody, sc)
		body := Concat(interleave(stmts, Lit("\n"))...)
		return Concat(
			Lit(ListenerHelper+"(this, func(vlsEvent Event) {\n"), body, Lit("\n})"),
		)

	default:
		return Lit("nil")
	}
}

// applyArgument implements spec §4.2's argument-name rules, turning a
// directive's argument plus its already-computed value into a (possibly
// key-less) object entry. Returns nil when there is genuinely nothing to
// emit (a dynamic argument with no key expression: "no-op spread").
func (t *Transformer) applyArgument(arg *template.Argument, value Piece, sc scope.Scope) *objEntry {
	if arg == nil {
		return &objEntry{Value: value}
	}
	switch arg.Kind {
	case template.ArgumentStatic:
		return &objEntry{Key: Lit(goStringLiteral(arg.Name)), Value: value}
	case template.ArgumentDynamic:
		if arg.Expression == nil {
			return nil
		}
		key := t.parser.ParseExpr(arg.Expression.Raw, sc, arg.Expression.Offset)
		return &objEntry{Key: key, Value: value}
	default:
		return &objEntry{Value: value}
	}
}

func plainAttributeEntry(attr template.Attribute) objEntry {
	value := "true"
	if attr.PlainValue != nil {
		value = goStringLiteral(*attr.PlainValue)
	}
	return objEntry{Key: Lit(goStringLiteral(attr.Name)), Value: Lit(value)}
}

// buildObjectPiece renders entries as an immediately invoked closure rather
// than a bare map composite literal: Go's map literal syntax has no spread
// form, so a keyless entry (missing-argument binding) is emitted as a
// standalone statement that still forces its operand through type-checking
// without requiring it to be map-shaped. Every value assigns into a
// map[string]any, so this never itself constrains a value's type — the
// entries exist only to carry user-authored expressions into checked
// positions (spec §4.2, §6 "need not preserve runtime semantics").
func buildObjectPiece(entries []objEntry) Piece {
	parts := []Piece{Lit("func() map[string]any {\nm := map[string]any{}\n")}
	for _, e := range entries {
		if e.Key.Text == "" && len(e.Key.Marks) == 0 {
			parts = append(parts, Lit("_ = "), e.Value, Lit("\n"))
			continue
		}
		parts = append(parts, Lit("m["), e.Key, Lit("] = "), e.Value, Lit("\n"))
	}
	parts = append(parts, Lit("return m\n}()"))
	return Concat(parts...)
}
