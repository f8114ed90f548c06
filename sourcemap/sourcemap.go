// Package sourcemap implements the Source Map (spec §4.3): a side table
// recording, for every synthetic range stamped by synth.Piece, the template
// range it was rewritten from, and the MapBack lookup diagnostics use to
// translate synthetic-program coordinates back to template coordinates.
package sourcemap

import "github.com/sfc-lang/tmpltc/template"

// Entry is one recorded (synthetic range -> template range) mapping.
type Entry struct {
	Synth template.Range
	Tmpl  template.Range
}

// SourceMap is keyed by synthetic-program byte offset rather than node
// identity, the alternative spec §4.3 explicitly sanctions for an
// implementation that emits the synthetic program by concatenating token
// text and records offsets during emission — which is exactly what
// synth.Piece/Concat/Stamp does.
type SourceMap struct {
	entries []Entry
}

// Build assembles a SourceMap from every mark a synth.Piece accumulated
// during emission. offset is added to each mark's own offset so marks from
// a Piece embedded partway through a larger buffer (e.g. one root-level
// expression among several) land at their true position in that buffer.
func Build(marks []Mark, offset int) SourceMap {
	entries := make([]Entry, 0, len(marks))
	for _, m := range marks {
		entries = append(entries, Entry{
			Synth: template.Range{Start: offset + m.Offset, End: offset + m.Offset + m.Length},
			Tmpl:  m.Tmpl,
		})
	}
	return SourceMap{entries: entries}
}

// Mark mirrors synth.Piece's Mark shape without importing synth, so this
// package stays a leaf the checker and diagnostics packages can both depend
// on without a cycle through synth.
type Mark struct {
	Offset int
	Length int
	Tmpl   template.Range
}

// sentinel is the fallback template range spec §4.3 prescribes when no
// entry's synthetic range contains the query offset: offset 0, the start of
// the template, with an empty span.
var sentinel = template.Range{Start: 0, End: 0}

// MapBack finds the innermost stamped entry whose synthetic range contains
// synthOffset and maps to a non-empty template range, per spec §4.3's
// "Range lookup". Innermost means the entry with the smallest synthetic
// span among all containing candidates, since rewrite nests coarser marks
// (e.g. a BinaryExpr) around finer ones (its operands).
func (sm SourceMap) MapBack(synthOffset int) template.Range {
	best := sentinel
	bestLen := -1
	found := false
	for _, e := range sm.entries {
		if synthOffset < e.Synth.Start || synthOffset >= e.Synth.End {
			continue
		}
		if e.Tmpl.End <= e.Tmpl.Start {
			continue
		}
		length := e.Synth.End - e.Synth.Start
		if !found || length < bestLen {
			best = e.Tmpl
			bestLen = length
			found = true
		}
	}
	return best
}

// Merge combines this map with others, preserving entry order. Used to
// assemble a document-wide SourceMap from the per-root-child SourceMaps the
// transform produces (one per synth.Transformer.TransformRoot element).
func Merge(maps ...SourceMap) SourceMap {
	var out SourceMap
	for _, m := range maps {
		out.entries = append(out.entries, m.entries...)
	}
	return out
}
