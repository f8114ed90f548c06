// Package template defines the input data model the transform operates on:
// a parsed single-file-component template tree plus the raw source buffer
// it was parsed from. The SFC parser itself is an external collaborator;
// this package only describes the shape it hands us.
package template

// Range is a half-open byte range [Start, End) into a source buffer.
type Range struct {
	Start int
	End   int
}

// Empty reports whether r is the zero Range. A zero-length range at a
// non-zero offset (e.g. {3, 3}) is not Empty.
func (r Range) Empty() bool { return r.Start == 0 && r.End == 0 }

// Node is the closed set of template-tree node variants. The variant set is
// fixed by construction (see NodeKind); callers type-switch on the concrete
// type rather than implementing a Node interface with behavior.
type Node interface {
	node()
	Range() Range
}

// Element is a tag with attributes and children, optionally introducing
// local variable bindings (e.g. a slot-scope-free local from a structural
// directive) visible to its own subtree.
type Element struct {
	Span           Range
	Name           string
	Attributes     []Attribute
	Children       []Node
	LocalVariables []string
}

func (*Element) node()         {}
func (e *Element) Range() Range { return e.Span }

// ExpressionContainer is a `{{ expr }}`-style interpolation. Expression is
// nil when the container was empty (e.g. `{{}}`, a malformed interpolation
// the parser recovered from).
type ExpressionContainer struct {
	Span       Range
	Expression *ScriptExpression
}

func (*ExpressionContainer) node()         {}
func (e *ExpressionContainer) Range() Range { return e.Span }

// Text is a literal run of template text.
type Text struct {
	Span  Range
	Value string
}

func (*Text) node()         {}
func (t *Text) Range() Range { return t.Span }

// ScriptExpression is a raw expression substring together with its absolute
// offset in the template buffer (the offset of Raw[0]).
type ScriptExpression struct {
	Raw    string
	Offset int
	Span   Range
}

// IterationExpression is the `left in right` / `left := range right` shape
// carried by a `for` directive's value.
type IterationExpression struct {
	Left  []Pattern
	Right ScriptExpression
}

// EventHandlerBody is a `{ stmt; stmt; ... }`-shaped directive value: a
// sequence of statement substrings, each individually offset-tracked.
type EventHandlerBody struct {
	Statements []ScriptExpression
}

// Pattern is an iteration/closure parameter binder pattern. Kind selects
// which of the fields is meaningful.
type PatternKind int

const (
	// PatternIdent: a bare name, e.g. `item`.
	PatternIdent PatternKind = iota
	// PatternObject: `{a, b: c, ...r}` — Elements hold the binder names,
	// Rest holds the rest-element name if present.
	PatternObject
	// PatternArray: `[a, , b]` — Elements holds present-element patterns in
	// order; absent elements are represented by a nil entry.
	PatternArray
)

type Pattern struct {
	Kind     PatternKind
	Name     string     // PatternIdent, and the bound name of an object entry
	Source   string     // PatternObject entry: source field name (before `:`)
	Elements []*Pattern // PatternObject, PatternArray
	Rest     string     // PatternObject rest-element name, if any
	HasRest  bool
}

// Attribute is either a plain attribute or a directive. IsDirective
// distinguishes the two; the irrelevant fields for the other kind are zero.
type Attribute struct {
	Name        string
	IsDirective bool

	// Plain attribute fields.
	PlainValue *string // nil means the attribute carries no value (boolean attribute)

	// Directive fields.
	Argument *Argument
	Value    *DirectiveValue
}

// ArgumentKind selects which Argument field is meaningful.
type ArgumentKind int

const (
	ArgumentStatic ArgumentKind = iota
	ArgumentDynamic
)

// Argument is a directive's `:name` / `:[expr]` argument.
type Argument struct {
	Kind       ArgumentKind
	Name       string            // ArgumentStatic
	Expression *ScriptExpression // ArgumentDynamic; nil means the computed key was itself absent
}

// DirectiveValueKind selects which DirectiveValue field is meaningful.
type DirectiveValueKind int

const (
	DirectiveValueExpression DirectiveValueKind = iota
	DirectiveValueIteration
	DirectiveValueEventBody
)

// DirectiveValue is the payload after `=` in a directive attribute.
type DirectiveValue struct {
	Kind       DirectiveValueKind
	Expression *ScriptExpression
	Iteration  *IterationExpression
	EventBody  *EventHandlerBody
}

// DirectiveKind classifies a directive by its name, per §4.2's
// classification predicates.
type DirectiveKind int

const (
	DirectiveOther DirectiveKind = iota
	DirectiveBind
	DirectiveOn
	DirectiveFor
	DirectiveSlot
	DirectiveSlotScope
)

// Classify derives a directive's kind from its attribute name.
func Classify(attr Attribute) DirectiveKind {
	if !attr.IsDirective {
		return DirectiveOther
	}
	switch attr.Name {
	case "bind":
		return DirectiveBind
	case "on":
		return DirectiveOn
	case "for":
		return DirectiveFor
	case "slot":
		return DirectiveSlot
	case "slot-scope":
		return DirectiveSlotScope
	default:
		return DirectiveOther
	}
}
