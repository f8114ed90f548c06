package checker_test

import (
	"context"
	"strings"
	"testing"

	"github.com/sfc-lang/tmpltc/checker"
	"github.com/sfc-lang/tmpltc/diagnostics"
	"github.com/sfc-lang/tmpltc/scope"
	"github.com/sfc-lang/tmpltc/synth"
	"github.com/sfc-lang/tmpltc/template"
)

// stubModuleDir is the ambient script-block type stand-in every test in
// this file checks the synthetic program against (spec §9's "Helper
// stubs"). Exercising the real go/packages load (rather than only the
// synth-level string assertions the synth package's own tests use) is what
// would have caught the Component field-casing regression a template's
// identifiers actually resolve against.
const stubModuleDir = "../testdata/stubmodule"

func transformOne(t *testing.T, node template.Node) ([]diagnostics.Raw, []string) {
	t.Helper()
	var notices []string
	tr := synth.NewTransformer(&notices)
	pieces := tr.TransformRoot([]template.Node{node}, scope.Root())
	src, _ := synth.Program("Component", pieces)

	sess := checker.NewSession()
	raws, checkerNotices, err := checker.Validate(context.Background(), sess, "fixture.tmpl", src, stubModuleDir)
	if err != nil {
		t.Fatalf("Validate: %v (synthetic source:\n%s)", err, src)
	}
	notices = append(notices, checkerNotices...)
	return raws, notices
}

// TestValidateMissingPropertyEndToEnd mirrors §8 scenario 1
// end to end through a real go/packages load against the stub module,
// rather than stopping at the synthetic program's text the way synth's own
// tests do.
func TestValidateMissingPropertyEndToEnd(t *testing.T) {
	node := &template.Element{
		Name: "p",
		Children: []template.Node{
			&template.ExpressionContainer{
				Expression: &template.ScriptExpression{Raw: "messaage", Offset: 8},
			},
		},
	}

	var notices []string
	tr := synth.NewTransformer(&notices)
	pieces := tr.TransformRoot([]template.Node{node}, scope.Root())
	src, sm := synth.Program("Component", pieces)

	sess := checker.NewSession()
	raws, checkerNotices, err := checker.Validate(context.Background(), sess, "fixture.tmpl", src, stubModuleDir)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(checkerNotices) != 0 {
		t.Errorf("unexpected checker notices: %v", checkerNotices)
	}

	diags := diagnostics.Map(raws, sm)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %+v (synthetic source:\n%s)", len(diags), diags, src)
	}
	d := diags[0]
	if !strings.Contains(d.Message, "messaage") {
		t.Errorf("message = %q, want it to mention the missing identifier %q", d.Message, "messaage")
	}
	if d.Range.Start != 8 || d.Range.End != 16 {
		t.Errorf("Range = %+v, want [8,16) per §8 scenario 1", d.Range)
	}
	if d.Severity != "error" {
		t.Errorf("Severity = %q, want %q", d.Severity, "error")
	}
	if d.Source != diagnostics.Source {
		t.Errorf("Source = %q, want %q", d.Source, diagnostics.Source)
	}
}

// TestValidateNoSpuriousDiagnostics mirrors §8 scenario 6: a template made
// only of static class/style/hyphenated attributes must produce zero
// diagnostics once actually type-checked, not merely "no literal rewrite
// issues" at the synth-string level.
func TestValidateNoSpuriousDiagnostics(t *testing.T) {
	strp := func(s string) *string { return &s }
	node := &template.Element{
		Name: "div",
		Attributes: []template.Attribute{
			{Name: "class", PlainValue: strp("x")},
			{Name: "style", PlainValue: strp("color:red")},
			{Name: "data-foo", PlainValue: strp("bar")},
		},
	}

	raws, notices := transformOne(t, node)
	if len(raws) != 0 {
		t.Errorf("got %d raw diagnostics, want 0: %+v", len(raws), raws)
	}
	if len(notices) != 0 {
		t.Errorf("unexpected internal notices: %v", notices)
	}
}

// TestValidateIterationShadowingEndToEnd mirrors §8's shadowing invariant
// and scenario 2: a v-for binder shadows any same-named component member,
// so the only diagnostic reported is the one for the genuinely missing
// property on the binder (none for `items` or bare `item`).
func TestValidateIterationShadowingEndToEnd(t *testing.T) {
	node := &template.Element{
		Name: "li",
		Attributes: []template.Attribute{
			{
				Name:        "for",
				IsDirective: true,
				Value: &template.DirectiveValue{
					Kind: template.DirectiveValueIteration,
					Iteration: &template.IterationExpression{
						Left:  []template.Pattern{{Kind: template.PatternIdent, Name: "item"}},
						Right: template.ScriptExpression{Raw: "items", Offset: 10},
					},
				},
			},
		},
		Children: []template.Node{
			&template.ExpressionContainer{
				Expression: &template.ScriptExpression{Raw: "item.notExists", Offset: 30},
			},
		},
	}

	raws, notices := transformOne(t, node)
	if len(notices) != 0 {
		t.Errorf("unexpected internal notices: %v", notices)
	}
	if len(raws) != 1 {
		t.Fatalf("got %d raw diagnostics, want 1 (only notExists, items must resolve cleanly): %+v", len(raws), raws)
	}
}

// TestValidateWorkspaceIsolatesDocuments exercises ValidateWorkspace's
// concurrent fan-out (§5) over two documents, one with a diagnostic and
// one without, verifying results are correctly correlated by Path rather
// than leaking between concurrent Validate calls.
func TestValidateWorkspaceIsolatesDocuments(t *testing.T) {
	bad := &template.ExpressionContainer{
		Expression: &template.ScriptExpression{Raw: "messaage", Offset: 0},
	}
	good := &template.ExpressionContainer{
		Expression: &template.ScriptExpression{Raw: "msg", Offset: 0},
	}

	mk := func(node template.Node) string {
		var notices []string
		tr := synth.NewTransformer(&notices)
		pieces := tr.TransformRoot([]template.Node{node}, scope.Root())
		src, _ := synth.Program("Component", pieces)
		return src
	}

	sess := checker.NewSession()
	docs := []checker.Document{
		{Path: "bad.tmpl", SynthSrc: mk(bad), StubModuleDir: stubModuleDir},
		{Path: "good.tmpl", SynthSrc: mk(good), StubModuleDir: stubModuleDir},
	}

	results := checker.ValidateWorkspace(context.Background(), sess, docs)
	byPath := map[string]checker.Result{}
	for _, r := range results {
		byPath[r.Path] = r
	}

	if r := byPath["bad.tmpl"]; r.Err != nil || len(r.Diags) != 1 {
		t.Errorf("bad.tmpl result = %+v, want exactly one diagnostic and no error", r)
	}
	if r := byPath["good.tmpl"]; r.Err != nil || len(r.Diags) != 0 {
		t.Errorf("good.tmpl result = %+v, want zero diagnostics and no error", r)
	}
}
