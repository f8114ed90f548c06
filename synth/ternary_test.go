package synth

import (
	"strings"
	"testing"

	"github.com/sfc-lang/tmpltc/scope"
)

func TestSplitTernary(t *testing.T) {
	tests := []struct {
		raw           string
		wantCond      string
		wantA         string
		wantB         string
		wantOK        bool
	}{
		{"active ? 'on' : 'off'", "active ", " 'on' ", " 'off'", true},
		{"notExist", "", "", "", false},
		{"fn(a ? b : c)", "", "", "", false}, // nested inside parens, not top-level
	}
	for _, tt := range tests {
		cond, a, b, ok := splitTernary(tt.raw)
		if ok != tt.wantOK {
			t.Fatalf("splitTernary(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
		}
		if !ok {
			continue
		}
		if cond != tt.wantCond || a != tt.wantA || b != tt.wantB {
			t.Errorf("splitTernary(%q) = (%q,%q,%q), want (%q,%q,%q)",
				tt.raw, cond, a, b, tt.wantCond, tt.wantA, tt.wantB)
		}
	}
}

func TestParseExprTernary(t *testing.T) {
	p := NewParser(nil)
	piece := p.ParseExpr("active ? onLabel : offLabel", scope.Root(), 0)
	for _, want := range []string{"func() any { if ", "this.active", "return this.onLabel", "return this.offLabel"} {
		if !strings.Contains(piece.Text, want) {
			t.Errorf("ternary output %q missing %q", piece.Text, want)
		}
	}
}
