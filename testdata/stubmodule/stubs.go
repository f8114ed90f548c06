// Package shadow is the ambient script-block type model the transform's
// shadow document is checked against (spec §6's "part of the ambient
// script-block type model ... out of scope here"): a stand-in for the real
// per-component type a production language server would synthesize from
// the script block, narrow enough to exercise the end-to-end scenarios the
// checker tests and cmd/tmplcheck-demo fixtures use without pulling in an
// actual SFC compiler.
package shadow

// Event models the DOM event object bound to vlsEvent inside event handler
// bodies.
type Event struct {
	Target string
}

// Component is the fixture "this" receiver. Its declared members are
// deliberately narrow: msg, items, num, and onClick exist; names like bar,
// baz, and notExist are never declared here on purpose, so referencing them
// from a template produces a genuine "does not exist" diagnostic. The
// transform emits template identifiers verbatim as `this.<name>` (spec §3's
// "this.x where x is the original identifier"), so these members keep the
// exact lowercase spelling the templates use rather than Go's usual
// exported casing; an unexported field/method is just as checkable by
// go/types as long as the synthetic program lives in the same package,
// which it does (both declare `package shadow`).
type Component struct {
	msg   string
	items []string
	num   int
}

func (c *Component) onClick(s string) {}

// __vlsRenderHelper collects every root-level synthetic expression. Its
// declared shape only needs to accept anything and return something that
// can itself appear in a children slice — the transform never inspects its
// result.
func __vlsRenderHelper(children ...any) any { return nil }

// __vlsComponentHelper models element construction: a name, its attribute
// data object, and its already-transformed children.
func __vlsComponentHelper(name string, data map[string]any, children []any) any { return nil }

// __vlsIterationHelper models a v-for directive: fn performs the loop
// internally (via a native Go range clause) and returns one representative
// iteration's result so its body is still type-checked exactly once.
func __vlsIterationHelper(fn func() any) any { return fn() }

// __vlsListenerHelper models an event binding whose value is a statement
// body rather than a bare expression; receiver is the component instance
// (accepted as any), handler's Event parameter gives vlsEvent its type, and
// handler's body resolves `this` the same way any other template
// expression does.
func __vlsListenerHelper(receiver any, handler func(Event)) any { return nil }
