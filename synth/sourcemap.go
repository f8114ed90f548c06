package synth

import "github.com/sfc-lang/tmpltc/sourcemap"

// SourceMap converts p's accumulated marks into a sourcemap.SourceMap, the
// form the checker/diagnostics packages consume. offset is p's own starting
// byte position within the larger synthetic buffer it was concatenated
// into (0 if p is itself the whole buffer).
func (p Piece) SourceMap(offset int) sourcemap.SourceMap {
	marks := make([]sourcemap.Mark, 0, len(p.Marks))
	for _, m := range p.Marks {
		marks = append(marks, sourcemap.Mark{Offset: m.Offset, Length: m.Length, Tmpl: m.Tmpl})
	}
	return sourcemap.Build(marks, offset)
}
