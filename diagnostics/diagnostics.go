// Package diagnostics implements the Diagnostic Mapper (spec §4.4): it
// takes raw diagnostics reported against the synthetic program and turns
// them into diagnostics in template coordinates, dropping anything that
// isn't a genuine semantic error.
package diagnostics

import (
	"strings"

	"github.com/sfc-lang/tmpltc/sourcemap"
	"github.com/sfc-lang/tmpltc/template"
)

// Source is the fixed identifier attached to every mapped diagnostic so an
// editor can group them as template diagnostics (spec §4.4).
const Source = "tmpltc"

// Kind classifies a raw diagnostic the way packages.Error.Kind does:
// syntactic diagnostics are always dropped (the synthetic program is
// syntactically valid by construction), semantic ones are kept.
type Kind int

const (
	KindSemantic Kind = iota
	KindSyntactic
	KindOther
)

// RawSpan is a half-open byte range into the synthetic program buffer, as
// opposed to template.Range which always denotes template coordinates.
// Kept as a distinct type so a caller can never pass an already-mapped
// template range back into Map by mistake.
type RawSpan struct {
	Start, End int
}

// Raw is one diagnostic as reported by the downstream type checker, before
// remapping: a synthetic span, kind, message, and code.
type Raw struct {
	Span    RawSpan
	Kind    Kind
	Message string
	Code    string
}

// Diagnostic is a diagnostic in template coordinates, ready to surface to
// an editor.
type Diagnostic struct {
	Range    template.Range
	Severity string
	Message  string
	Code     string
	Source   string
}

// Map implements spec §4.4's Policy: request semantic diagnostics only
// (non-semantic kinds are dropped outright), map each remaining span back
// through sm, force severity to "error" unconditionally, flatten any
// newline-joined chained message, preserve the code, and stamp Source. A
// span with no containing entry is never dropped — it is anchored at the
// start of the template per the sentinel fallback.
func Map(raws []Raw, sm sourcemap.SourceMap) []Diagnostic {
	out := make([]Diagnostic, 0, len(raws))
	for _, r := range raws {
		if r.Kind != KindSemantic {
			continue
		}
		tmplRange := sm.MapBack(r.Span.Start)
		out = append(out, Diagnostic{
			Range:    tmplRange,
			Severity: "error",
			Message:  flatten(r.Message),
			Code:     r.Code,
			Source:   Source,
		})
	}
	return out
}

// flatten joins a chained diagnostic message (go/types often separates a
// root cause and its context with "\n\t" indentation) into a single
// newline-separated string with indentation stripped, per §4.4's "flattened
// across chained messages with a newline separator".
func flatten(msg string) string {
	lines := strings.Split(msg, "\n")
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		parts = append(parts, l)
	}
	return strings.Join(parts, "\n")
}
