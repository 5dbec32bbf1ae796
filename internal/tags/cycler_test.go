package tags

import "testing"

func TestCycler_DefaultSelection(t *testing.T) {
	c := NewCycler(KeepSelection)
	if c.Selected() != Default() {
		t.Errorf("Selected() = %q, want %q", c.Selected(), Default())
	}
}

func TestCycler_SelectUnknownFallsBack(t *testing.T) {
	c := NewCycler(KeepSelection)
	c.Select("IMPORTANT")
	c.Select("nope")

	if c.Selected() != Default() {
		t.Errorf("Selected() after unknown Select = %q, want %q", c.Selected(), Default())
	}
}

func TestCycler_CycleSelectedWraps(t *testing.T) {
	c := NewCycler(KeepSelection)
	for range Labels() {
		c.CycleSelected()
	}
	if c.Selected() != Default() {
		t.Errorf("Selected() after full cycle = %q, want %q", c.Selected(), Default())
	}
}

func TestCycler_AfterAddPolicy(t *testing.T) {
	tests := []struct {
		name   string
		policy SelectorPolicy
		want   string
	}{
		{"keep keeps the just-used tag", KeepSelection, "URGENT"},
		{"reset returns to default", ResetSelection, "NONE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCycler(tt.policy)
			c.Select("URGENT")
			c.AfterAdd()
			if c.Selected() != tt.want {
				t.Errorf("Selected() after AfterAdd = %q, want %q", c.Selected(), tt.want)
			}
		})
	}
}
