package synth

import (
	"strings"
	"testing"

	"github.com/sfc-lang/tmpltc/scope"
	"github.com/sfc-lang/tmpltc/template"
)

func TestParseEventBodyExpressionStatement(t *testing.T) {
	p := NewParser(nil)
	body := template.EventHandlerBody{
		Statements: []template.ScriptExpression{{Raw: "onClick(123)", Offset: 31}},
	}
	pieces := p.ParseEventBody(body, scope.Root())
	if len(pieces) != 1 {
		t.Fatalf("got %d pieces, want 1", len(pieces))
	}
	if pieces[0].Text != "this.onClick(123)" {
		t.Fatalf("got %q", pieces[0].Text)
	}
}

func TestParseEventBodyAssignment(t *testing.T) {
	p := NewParser(nil)
	body := template.EventHandlerBody{
		Statements: []template.ScriptExpression{{Raw: `num = "test"`, Offset: 20}},
	}
	pieces := p.ParseEventBody(body, scope.Root())
	if len(pieces) != 1 {
		t.Fatalf("got %d pieces, want 1", len(pieces))
	}
	if pieces[0].Text != `this.num = "test"` {
		t.Fatalf("got %q", pieces[0].Text)
	}
}

func TestParseEventBodyUsesEventGlobals(t *testing.T) {
	p := NewParser(nil)
	body := template.EventHandlerBody{
		Statements: []template.ScriptExpression{{Raw: "handle(vlsEvent)", Offset: 0}},
	}
	pieces := p.ParseEventBody(body, scope.Root())
	if !strings.Contains(pieces[0].Text, "this.handle(vlsEvent)") {
		t.Fatalf("vlsEvent should resolve as a bound global, got %q", pieces[0].Text)
	}
}

func TestParseEventBodyUnsupportedStatementKind(t *testing.T) {
	var notices []string
	p := NewParser(&notices)
	body := template.EventHandlerBody{
		Statements: []template.ScriptExpression{{Raw: "for {}", Offset: 0}},
	}
	pieces := p.ParseEventBody(body, scope.Root())
	if pieces[0].Text != `_ = ""` {
		t.Fatalf("unsupported statement should fall back to a neutral placeholder, got %q", pieces[0].Text)
	}
	if len(notices) == 0 {
		t.Fatalf("expected a notice for the unsupported statement")
	}
}
