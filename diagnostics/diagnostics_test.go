package diagnostics

import (
	"testing"

	"github.com/sfc-lang/tmpltc/sourcemap"
	"github.com/sfc-lang/tmpltc/template"
)

func TestMapDropsNonSemanticDiagnostics(t *testing.T) {
	sm := sourcemap.Build([]sourcemap.Mark{
		{Offset: 0, Length: 5, Tmpl: template.Range{Start: 8, End: 16}},
	}, 0)

	raws := []Raw{
		{Span: RawSpan{Start: 0, End: 0}, Kind: KindSyntactic, Message: "unexpected token"},
		{Span: RawSpan{Start: 2, End: 2}, Kind: KindOther, Message: "could not import foo"},
		{Span: RawSpan{Start: 1, End: 1}, Kind: KindSemantic, Message: "undeclared name: messaage", Code: "type-error"},
	}

	got := Map(raws, sm)
	if len(got) != 1 {
		t.Fatalf("Map returned %d diagnostics, want 1 (only the semantic one): %+v", len(got), got)
	}
	d := got[0]
	if d.Severity != "error" {
		t.Errorf("Severity = %q, want %q", d.Severity, "error")
	}
	if d.Source != Source {
		t.Errorf("Source = %q, want %q", d.Source, Source)
	}
	if d.Code != "type-error" {
		t.Errorf("Code = %q, want %q", d.Code, "type-error")
	}
	if d.Range != (template.Range{Start: 8, End: 16}) {
		t.Errorf("Range = %+v, want {8 16}", d.Range)
	}
}

func TestMapNeverDropsASemanticDiagnosticOnSentinelFallback(t *testing.T) {
	sm := sourcemap.Build(nil, 0)
	raws := []Raw{{Span: RawSpan{Start: 99, End: 99}, Kind: KindSemantic, Message: "boom"}}
	got := Map(raws, sm)
	if len(got) != 1 {
		t.Fatalf("a semantic diagnostic must never be dropped, got %d", len(got))
	}
	if got[0].Range.Start != 0 || got[0].Range.End != 0 {
		t.Errorf("unmapped diagnostic should anchor at the template start, got %+v", got[0].Range)
	}
}

func TestFlattenChainedMessage(t *testing.T) {
	got := flatten("cannot use 123 (untyped int constant)\n\tas string value\n\tin argument to this.onClick")
	want := "cannot use 123 (untyped int constant)\nas string value\nin argument to this.onClick"
	if got != want {
		t.Errorf("flatten() = %q, want %q", got, want)
	}
}
