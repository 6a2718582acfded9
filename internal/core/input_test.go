package core

import "testing"

func TestInputConstructors(t *testing.T) {
	if in := Type('7'); in.Action != ActionRune || in.Rune != '7' {
		t.Errorf("Type('7') = %+v", in)
	}
	if in := Select(4); in.Action != ActionSelect || in.Cell != 4 {
		t.Errorf("Select(4) = %+v", in)
	}
	if !ActionLeft.IsDirection() || ActionConfirm.IsDirection() {
		t.Error("IsDirection() misclassified actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionSeen.String() != "Seen" {
		t.Errorf("ActionSeen.String() = %q", ActionSeen.String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}
