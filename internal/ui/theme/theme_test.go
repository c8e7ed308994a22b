package theme

import "testing"

func TestApply_SwapsPalette(t *testing.T) {
	defer Apply(Dark)

	Apply(Dark)
	dark := Text
	Apply(Light)

	if Current() != Light {
		t.Errorf("Current = %v, want light", Current())
	}
	if Text == dark {
		t.Error("expected text color to change with the mode")
	}
}

func TestMode(t *testing.T) {
	if ParseMode("light") != Light || ParseMode("dark") != Dark || ParseMode("") != Dark {
		t.Error("ParseMode mismatch")
	}
	if Dark.Toggle() != Light || Light.Toggle() != Dark {
		t.Error("Toggle mismatch")
	}
	if Light.String() != "light" || Dark.String() != "dark" {
		t.Error("String mismatch")
	}
}
