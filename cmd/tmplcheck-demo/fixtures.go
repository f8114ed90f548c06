package main

import "github.com/sfc-lang/tmpltc/template"

// fixtures hand-builds the template ASTs the SFC parser would otherwise
// hand the core (spec.md §6: the parser is an external collaborator, out
// of scope here). Each mirrors one of the §8 end-to-end
// scenarios, so running this demo against testdata/stubmodule reproduces
// the diagnostics those scenarios describe.
var fixtures = map[string]func() []template.Node{
	"missing-property": missingPropertyFixture,
	"iteration":        iterationFixture,
	"event-handlers":   eventHandlersFixture,
	"dynamic-argument": dynamicArgumentFixture,
	"no-spurious":      noSpuriousFixture,
}

// missingPropertyFixture: <p>{{ messaage }}</p>, a typo'd reference to the
// stub Component's Msg field.
func missingPropertyFixture() []template.Node {
	return []template.Node{
		&template.Element{
			Name: "p",
			Children: []template.Node{
				&template.ExpressionContainer{
					Expression: &template.ScriptExpression{Raw: "messaage", Offset: 8},
				},
			},
		},
	}
}

// iterationFixture: <ul><li v-for="item in items">{{ item.notExists }}</li></ul>.
func iterationFixture() []template.Node {
	return []template.Node{
		&template.Element{
			Name: "ul",
			Children: []template.Node{
				&template.Element{
					Name: "li",
					Attributes: []template.Attribute{
						{
							Name:        "for",
							IsDirective: true,
							Value: &template.DirectiveValue{
								Kind: template.DirectiveValueIteration,
								Iteration: &template.IterationExpression{
									Left:  []template.Pattern{{Kind: template.PatternIdent, Name: "item"}},
									Right: template.ScriptExpression{Raw: "items", Offset: 24},
								},
							},
						},
					},
					Children: []template.Node{
						&template.ExpressionContainer{
							Expression: &template.ScriptExpression{Raw: "item.notExists", Offset: 45},
						},
					},
				},
			},
		},
	}
}

// eventHandlersFixture: three event bindings, each exercising a different
// shape of handler operand (argument-type mismatch, assignment mismatch,
// missing method). The assignment is a statement body, so it is built as an
// EventHandlerBody rather than an expression value.
func eventHandlersFixture() []template.Node {
	mkOn := func(arg, raw string, offset int) template.Attribute {
		return template.Attribute{
			Name:        "on",
			IsDirective: true,
			Argument:    &template.Argument{Kind: template.ArgumentStatic, Name: arg},
			Value: &template.DirectiveValue{
				Kind:       template.DirectiveValueExpression,
				Expression: &template.ScriptExpression{Raw: raw, Offset: offset},
			},
		}
	}
	return []template.Node{
		&template.Element{Name: "button", Attributes: []template.Attribute{mkOn("click", "onClick(123)", 31)}},
		&template.Element{Name: "input", Attributes: []template.Attribute{{
			Name:        "on",
			IsDirective: true,
			Argument:    &template.Argument{Kind: template.ArgumentStatic, Name: "input"},
			Value: &template.DirectiveValue{
				Kind: template.DirectiveValueEventBody,
				EventBody: &template.EventHandlerBody{
					Statements: []template.ScriptExpression{{Raw: `num = "test"`, Offset: 76}},
				},
			},
		}}},
		&template.Element{Name: "a", Attributes: []template.Attribute{mkOn("focus", "notExist()", 120)}},
	}
}

// dynamicArgumentFixture: <div v-bind:[notExist]="notExist"><span>{{
// notExist }}</span></div> — three independent notExist occurrences
// (dynamic argument, bound value, and a nested one), each carrying its own
// range per §8 scenario 5.
func dynamicArgumentFixture() []template.Node {
	return []template.Node{
		&template.Element{
			Name: "div",
			Attributes: []template.Attribute{
				{
					Name:        "bind",
					IsDirective: true,
					Argument: &template.Argument{
						Kind:       template.ArgumentDynamic,
						Expression: &template.ScriptExpression{Raw: "notExist", Offset: 13},
					},
					Value: &template.DirectiveValue{
						Kind:       template.DirectiveValueExpression,
						Expression: &template.ScriptExpression{Raw: "notExist", Offset: 27},
					},
				},
			},
			Children: []template.Node{
				&template.Element{
					Name: "span",
					Children: []template.Node{
						&template.ExpressionContainer{
							Expression: &template.ScriptExpression{Raw: "notExist", Offset: 50},
						},
					},
				},
			},
		},
	}
}

// noSpuriousFixture: static class/style/hyphenated attributes only; the
// checker must report zero diagnostics for this template.
func noSpuriousFixture() []template.Node {
	strp := func(s string) *string { return &s }
	return []template.Node{
		&template.Element{
			Name: "div",
			Attributes: []template.Attribute{
				{Name: "class", PlainValue: strp("x")},
				{Name: "style", PlainValue: strp("color:red")},
				{Name: "data-foo", PlainValue: strp("bar")},
			},
		},
	}
}
