package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionLeft) {
		t.Error("empty frame should have no actions")
	}
	if _, ok := f.Pointer(); ok {
		t.Error("empty frame should have no pointer")
	}

	f.Set(ActionLeft)
	f.SetPointer(17)
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Has() mismatch after Set(ActionLeft)")
	}
	if x, ok := f.Pointer(); !ok || x != 17 {
		t.Errorf("Pointer() = %d, %v, expected 17, true", x, ok)
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear() should remove actions")
	}
	if _, ok := f.Pointer(); ok {
		t.Error("Clear() should drop the pointer")
	}
	if !clone.Has(ActionLeft) {
		t.Error("clone should be independent of the original")
	}
	if x, ok := clone.Pointer(); !ok || x != 17 {
		t.Errorf("clone Pointer() = %d, %v", x, ok)
	}
}

func TestZeroInputFrameSet(t *testing.T) {
	var f InputFrame
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set() on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionLeft:    "Left",
		ActionRight:   "Right",
		ActionConfirm: "Confirm",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}

func TestParseColor(t *testing.T) {
	for c, name := range colorNames {
		got, err := ParseColor(name)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", name, err)
			continue
		}
		if got != c {
			t.Errorf("ParseColor(%q) = %v, expected %v", name, got, c)
		}
	}
	if c, err := ParseColor("  Cyan "); err != nil || c != ColorCyan {
		t.Errorf("ParseColor should trim and fold case, got %v, %v", c, err)
	}
	if _, err := ParseColor("neon-plaid"); err == nil {
		t.Error("ParseColor should reject unknown names")
	}
}
