package template

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		attr Attribute
		want DirectiveKind
	}{
		{"plain attribute", Attribute{Name: "id", IsDirective: false}, DirectiveOther},
		{"bind", Attribute{Name: "bind", IsDirective: true}, DirectiveBind},
		{"on", Attribute{Name: "on", IsDirective: true}, DirectiveOn},
		{"for", Attribute{Name: "for", IsDirective: true}, DirectiveFor},
		{"slot", Attribute{Name: "slot", IsDirective: true}, DirectiveSlot},
		{"slot-scope", Attribute{Name: "slot-scope", IsDirective: true}, DirectiveSlotScope},
		{"unknown directive", Attribute{Name: "show", IsDirective: true}, DirectiveOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.attr); got != tt.want {
				t.Errorf("Classify(%+v) = %v, want %v", tt.attr, got, tt.want)
			}
		})
	}
}

func TestRangeEmpty(t *testing.T) {
	if !(Range{}).Empty() {
		t.Errorf("zero Range should be Empty")
	}
	if (Range{Start: 3, End: 3}).Empty() {
		t.Errorf("Range{3,3} is non-zero and should not report Empty")
	}
	if (Range{Start: 0, End: 5}).Empty() {
		t.Errorf("Range{0,5} should not report Empty")
	}
}
