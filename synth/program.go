package synth

import "github.com/sfc-lang/tmpltc/sourcemap"

// ProgramPackage is the package name the synthetic shadow document
// declares; the stub module's own supporting sources (Component, Event,
// the helper declarations) must declare the same package name so they
// compile together (spec §5's shadow document).
const ProgramPackage = "shadow"

const renderFunc = "__vlsRender"

// Program assembles TransformRoot's per-child pieces into one compilable Go
// file: a single function taking the component instance as `this` and
// passing every root-level synthetic expression to renderHelper, so each
// one sits in a checked argument position without needing its own
// top-level declaration. Returns the finished source text and the
// SourceMap covering the whole file — built by reusing Concat/Stamp's own
// offset rebasing rather than tracking offsets by hand.
func Program(componentType string, pieces []Piece) (string, sourcemap.SourceMap) {
	preamble := Lit("package " + ProgramPackage + "\n\nfunc " + renderFunc +
		"(this *" + componentType + ") any {\n\treturn " + RenderHelper + "(\n\t\t")
	trailer := Lit("\n\t)\n}\n")
	if len(pieces) > 0 {
		trailer = Lit(",\n\t)\n}\n")
	}
	body := Concat(interleave(pieces, Lit(",\n\t\t"))...)
	whole := Concat(preamble, body, trailer)
	return whole.Text, whole.SourceMap(0)
}
