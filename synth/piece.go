package synth

import (
	"strings"

	"github.com/sfc-lang/tmpltc/template"
)

// Mark is a pending source-map entry: a span within a Piece's Text that
// should be recorded against a template range once the Piece is placed in
// the final synthetic buffer (see Piece.SourceMap and Program).
type Mark struct {
	Offset int // byte offset into Piece.Text
	Length int
	Tmpl   template.Range
}

// Piece is an assembled fragment of synthetic source text plus the marks it
// carries. Concatenating pieces re-bases their marks automatically, which is
// what lets the recursive rewrite in rewrite.go build up ranges bottom-up
// without a shared mutable cursor (spec §9 "Scope as value, not state"
// applies equally to range bookkeeping).
type Piece struct {
	Text  string
	Marks []Mark
}

// Lit wraps a literal string with no marks.
func Lit(s string) Piece { return Piece{Text: s} }

// Concat joins pieces left to right, shifting each piece's marks by the
// cumulative text length written before it.
func Concat(pieces ...Piece) Piece {
	var sb strings.Builder
	var marks []Mark
	for _, p := range pieces {
		base := sb.Len()
		sb.WriteString(p.Text)
		for _, m := range p.Marks {
			marks = append(marks, Mark{Offset: base + m.Offset, Length: m.Length, Tmpl: m.Tmpl})
		}
	}
	return Piece{Text: sb.String(), Marks: marks}
}

// Stamp records tr as the range of p's entire text, in addition to any marks
// p already carries for its children. Spec §4.1: every non-object-literal
// expression gets its own range; object literals omit it (callers simply
// don't call Stamp for those).
func (p Piece) Stamp(tr template.Range) Piece {
	marks := make([]Mark, 0, len(p.Marks)+1)
	marks = append(marks, Mark{Offset: 0, Length: len(p.Text), Tmpl: tr})
	marks = append(marks, p.Marks...)
	return Piece{Text: p.Text, Marks: marks}
}
