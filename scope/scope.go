// Package scope implements the immutable lexical scope the transform
// threads through template recursion (spec §3, §9 "Scope as value, not
// state"). A Scope is never mutated in place; Extend returns a new value,
// which keeps the transformer reentrant and avoids bindings leaking across
// sibling subtrees.
package scope

import "slices"

// builtins enumerates the fixed global names permitted inside templates
// without rewriting to a member access.
var builtins = []string{
	"Infinity", "undefined", "NaN", "isFinite", "isNaN",
	"parseFloat", "parseInt", "decodeURI", "decodeURIComponent",
	"encodeURI", "encodeURIComponent", "Math", "Number", "Date",
	"Array", "Object", "Boolean", "String", "RegExp", "Map", "Set",
	"JSON", "Intl", "require",
}

// eventGlobals extend scope inside event-handler bodies only. The source
// spec names these `$event`/`arguments`; `$event` is not a legal Go
// identifier (Go has no `$` in its identifier grammar), so this rendition
// binds the event object as `vlsEvent` instead — see SPEC_FULL.md §0.
var eventGlobals = []string{"vlsEvent", "arguments"}

// Scope is an immutable ordered set of identifier names currently bound in
// the lexical position being processed.
type Scope struct {
	names []string
}

// Root returns the scope containing only the built-in globals.
func Root() Scope {
	return Scope{names: builtins}
}

// WithEventGlobals returns a new scope extended with `vlsEvent` and
// `arguments`, for use inside an event-handler body.
func (s Scope) WithEventGlobals() Scope {
	return s.Extend(eventGlobals...)
}

// Extend returns a new scope with names appended. Duplicates are preserved
// as-is; Contains only cares about set membership, so this is harmless.
func (s Scope) Extend(names ...string) Scope {
	if len(names) == 0 {
		return s
	}
	next := make([]string, 0, len(s.names)+len(names))
	next = append(next, s.names...)
	next = append(next, names...)
	return Scope{names: next}
}

// ExtendPatterns extends the scope with every name bound by the given
// patterns (§4.1 pattern binders).
func (s Scope) ExtendPatterns(patterns ...Binder) Scope {
	var names []string
	for _, p := range patterns {
		names = append(names, p.Names()...)
	}
	return s.Extend(names...)
}

// Contains reports whether name is bound in s.
func (s Scope) Contains(name string) bool {
	return slices.Contains(s.names, name)
}

// Names returns the bound names in binding order. The returned slice must
// not be mutated by callers.
func (s Scope) Names() []string {
	return s.names
}
