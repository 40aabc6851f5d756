package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/starford/scratchpad/internal/board"
	"github.com/starford/scratchpad/internal/models"
)

func testView() board.View {
	doc := models.NewDocument()
	g := models.NewGroup("Front desk")
	open := &models.Note{ID: "n1", Text: "Room 101 late checkout\nuntil 2pm"}
	closed := &models.Note{ID: "n2", Text: "VIP arrival\nsuite upgrade", Collapsed: true}
	g.Notes = append(g.Notes, open, closed)
	doc.Groups = append(doc.Groups, g, models.NewGroup("Empty"))
	doc.Tracker.Set(models.RoomsSold, 3)
	doc.Tracker.Set(models.Arrivals, 4)
	return board.View{
		Document: doc,
		Trash:    []*models.Note{{ID: "t1", Text: "gone"}},
		Dirty:    true,
	}
}

func TestBoardLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := Board(&buf, testView(), Options{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"File *",
		"RMS 3  A 0  C 0  RES 4",
		"Front desk (2)",
		"  • Room 101 late checkout\n    until 2pm\n",
		"  ▸ VIP arrival\n",
		"Empty (0)",
		"none",
		"Trash: 1 notes",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "suite upgrade") {
		t.Error("collapsed notes show only their first line")
	}
	if strings.Contains(out, "n1") {
		t.Error("ids are hidden by default")
	}
}

func TestBoardShowIDs(t *testing.T) {
	var buf bytes.Buffer
	if err := Board(&buf, testView(), Options{ShowIDs: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Room 101 late checkout n1") {
		t.Errorf("output:\n%s", buf.String())
	}
}

func TestBoardTruncatesLongLines(t *testing.T) {
	v := testView()
	v.Document.Groups[0].Notes[0].Text = strings.Repeat("x", 50)
	var buf bytes.Buffer
	if err := Board(&buf, v, Options{Width: 20}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "  • "+strings.Repeat("x", 15)+"…\n") {
		t.Errorf("output:\n%s", buf.String())
	}
}

func TestTruncateWideRunes(t *testing.T) {
	if got := Truncate("日本語テキスト", 7); got != "日本語…" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate = %q", got)
	}
}
