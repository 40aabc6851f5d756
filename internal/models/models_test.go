package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewGroupDefaults(t *testing.T) {
	g := NewGroup("")
	if g.Name != DefaultGroupName {
		t.Errorf("name = %q, want %q", g.Name, DefaultGroupName)
	}
	if g.ColorIndex != 0 || len(g.Notes) != 0 || g.Notes == nil {
		t.Errorf("unexpected defaults: %+v", g)
	}
	if g.ID == "" {
		t.Error("expected generated id")
	}
}

func TestNewNoteDefaults(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	n := NewNote("hello", now)
	if n.Collapsed {
		t.Error("new note should not be collapsed")
	}
	if !n.Created.Equal(now) {
		t.Errorf("created = %v, want %v", n.Created.Time, now)
	}
}

func TestIDsAreUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestFirstLine(t *testing.T) {
	cases := map[string]string{
		"":               "",
		"single":         "single",
		"first\nsecond":  "first",
		"\nleading":      "",
		"a\nb\nc":        "a",
	}
	for in, want := range cases {
		if got := FirstLine(in); got != want {
			t.Errorf("FirstLine(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNoteDisplayCollapsed(t *testing.T) {
	n := &Note{Text: "title\nbody"}
	if n.Display() != "title\nbody" {
		t.Errorf("expanded display = %q", n.Display())
	}
	n.Collapsed = true
	if n.Display() != "title" {
		t.Errorf("collapsed display = %q", n.Display())
	}
}

func TestGroupColorWraps(t *testing.T) {
	g := &Group{ColorIndex: PaletteSize + 1}
	if g.Color() != Palette[1] {
		t.Errorf("color = %q, want %q", g.Color(), Palette[1])
	}
}

func TestTrackerSetClamps(t *testing.T) {
	var tr Tracker
	if !tr.Set(Adults, -3) {
		t.Fatal("Adults should be a known counter")
	}
	if tr.AdultsCount != 0 {
		t.Errorf("adults = %d, want 0", tr.AdultsCount)
	}
	if tr.Set(Counter("guests"), 1) {
		t.Error("unknown counter should be rejected")
	}
}

func TestMillisJSON(t *testing.T) {
	ts := time.UnixMilli(1714550400123)
	data, err := json.Marshal(Millis{ts})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "1714550400123" {
		t.Errorf("encoded = %s", data)
	}
	var back Millis
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(ts) {
		t.Errorf("decoded = %v, want %v", back.Time, ts)
	}
	if err := json.Unmarshal([]byte(`"2024-05-01T09:00:00Z"`), &back); err != nil {
		t.Fatalf("rfc3339: %v", err)
	}
}
