package reorder

import "testing"

func TestAnchorPicksNearestCenterBelowPointer(t *testing.T) {
	boxes := Stack([]string{"a", "b", "c"}, 0, 100) // centers 50, 150, 250
	cases := []struct {
		y    float64
		want string
	}{
		{0, "a"},
		{49, "a"},
		{50, "a"},
		{51, "b"},
		{149, "b"},
		{151, "c"},
		{250, "c"},
		{251, ""},
		{1000, ""},
	}
	for _, c := range cases {
		if got := AnchorID(boxes, c.y, ""); got != c.want {
			t.Errorf("y=%v: anchor = %q, want %q", c.y, got, c.want)
		}
	}
}

func TestAnchorEmptyListAppends(t *testing.T) {
	if got := Anchor(nil, 10, ""); got != -1 {
		t.Errorf("anchor = %d, want -1", got)
	}
}

func TestAnchorSkipsDraggedNote(t *testing.T) {
	boxes := Stack([]string{"a", "drag", "c"}, 0, 100)
	if got := AnchorID(boxes, 120, "drag"); got != "c" {
		t.Errorf("anchor = %q, want c", got)
	}
}

func TestAnchorIgnoresBoxOrder(t *testing.T) {
	boxes := []Box{
		{NoteID: "low", Top: 200, Height: 100},
		{NoteID: "high", Top: 0, Height: 100},
	}
	if got := AnchorID(boxes, 10, ""); got != "high" {
		t.Errorf("anchor = %q, want high", got)
	}
}
