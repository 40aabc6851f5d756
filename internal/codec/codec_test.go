package codec

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/starford/scratchpad/internal/models"
)

func sampleDoc() *models.Document {
	doc := models.NewDocument()
	doc.Tracker = models.Tracker{RoomsSoldCount: 3, AdultsCount: 2, ChildrenCount: 1, ArrivalsCount: 4}
	g := models.NewGroup("Front desk")
	now := time.Now()
	g.Notes = append(g.Notes,
		models.NewNote("Room 101 late checkout", now),
		models.NewNote("VIP arrival 6pm", now),
	)
	doc.Groups = append(doc.Groups, g)
	return doc
}

func TestExportText(t *testing.T) {
	got := ExportText(sampleDoc())
	want := "3 ROOMS SOLD, 2 ADULTS, 1 CHILDREN, 4 ARRIVALS\n\nRoom 101 late checkout\n\nVIP arrival 6pm"
	if got != want {
		t.Errorf("export =\n%q\nwant\n%q", got, want)
	}
}

func TestExportOnlyFirstGroup(t *testing.T) {
	doc := sampleDoc()
	other := models.NewGroup("Other")
	other.Notes = append(other.Notes, models.NewNote("hidden", time.Now()))
	doc.Groups = append(doc.Groups, other)
	if strings.Contains(ExportText(doc), "hidden") {
		t.Error("second group should not be exported")
	}
}

func TestExportWithoutGroups(t *testing.T) {
	doc := models.NewDocument()
	if got := ExportText(doc); got != "0 ROOMS SOLD, 0 ADULTS, 0 CHILDREN, 0 ARRIVALS\n\n" {
		t.Errorf("export = %q", got)
	}
}

func TestParseTextWithTracker(t *testing.T) {
	parsed := ParseText("3 ROOMS SOLD, 2 ADULTS, 1 CHILDREN, 4 ARRIVALS\n\nRoom 101 late checkout\n\nVIP arrival 6pm")
	if !parsed.HasTracker {
		t.Fatal("expected tracker line")
	}
	if parsed.Tracker.Values() != [4]int{3, 2, 1, 4} {
		t.Errorf("tracker = %v", parsed.Tracker.Values())
	}
	want := []string{"Room 101 late checkout", "VIP arrival 6pm"}
	if !reflect.DeepEqual(parsed.Notes, want) {
		t.Errorf("notes = %q, want %q", parsed.Notes, want)
	}
}

func TestParseTextWithoutTracker(t *testing.T) {
	parsed := ParseText("first note\nstill first\n\nsecond, with a comma")
	if parsed.HasTracker {
		t.Fatal("line 1 has one field, tracker should be absent")
	}
	want := []string{"first note\nstill first", "second, with a comma"}
	if !reflect.DeepEqual(parsed.Notes, want) {
		t.Errorf("notes = %q, want %q", parsed.Notes, want)
	}
}

func TestParseTextDropsBlankChunks(t *testing.T) {
	parsed := ParseText("1, 2, 3, 4\n\n\n\n   \n\nonly\n\n")
	if len(parsed.Notes) != 1 || parsed.Notes[0] != "only" {
		t.Errorf("notes = %q", parsed.Notes)
	}
}

func TestParseTextMalformedCounters(t *testing.T) {
	parsed := ParseText("many ROOMS, -2 ADULTS, 7x CHILDREN, 5 ARRIVALS\n\nnote")
	if !parsed.HasTracker {
		t.Fatal("four fields should be read as tracker")
	}
	if parsed.Tracker.Values() != [4]int{0, 0, 7, 5} {
		t.Errorf("tracker = %v", parsed.Tracker.Values())
	}
}

func TestParseTextCRLF(t *testing.T) {
	parsed := ParseText("1 ROOMS SOLD, 0 ADULTS, 0 CHILDREN, 0 ARRIVALS\r\n\r\na\r\n\r\nb")
	if !reflect.DeepEqual(parsed.Notes, []string{"a", "b"}) {
		t.Errorf("notes = %q", parsed.Notes)
	}
}

func TestParseTextEmpty(t *testing.T) {
	parsed := ParseText("")
	if parsed.HasTracker || len(parsed.Notes) != 0 {
		t.Errorf("parsed = %+v", parsed)
	}
}

func TestExportImportExportRoundTrip(t *testing.T) {
	first := ExportText(sampleDoc())
	parsed := ParseText(first)

	doc := models.NewDocument()
	doc.Tracker = parsed.Tracker
	g := models.NewGroup("again")
	for _, text := range parsed.Notes {
		g.Notes = append(g.Notes, models.NewNote(text, time.Now()))
	}
	doc.Groups = append(doc.Groups, g)

	if second := ExportText(doc); second != first {
		t.Errorf("round trip changed output:\n%q\n%q", first, second)
	}
}

func TestBaseName(t *testing.T) {
	cases := map[string]string{
		"notes.txt":         "notes",
		"shift.2024.txt":    "shift.2024",
		"dir/handover.txt":  "handover",
		`C:\tmp\desk.txt`:   "desk",
		"plain":             "plain",
		"":                  "",
		".":                 "",
		"..":                "",
		"dir/":              "",
		"  ":                "",
	}
	for in, want := range cases {
		if got := BaseName(in); got != want {
			t.Errorf("BaseName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	doc := sampleDoc()
	doc.Trash = append(doc.Trash, &models.Group{ID: "t1", Name: "Old", Notes: []*models.Note{{ID: "n9", Text: "gone"}}})
	data, err := EncodeSnapshot(doc)
	if err != nil {
		t.Fatal(err)
	}
	back, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(back.Groups) != 1 || len(back.Groups[0].Notes) != 2 {
		t.Fatalf("groups = %+v", back.Groups)
	}
	if back.Groups[0].Notes[1].Text != "VIP arrival 6pm" {
		t.Errorf("note text = %q", back.Groups[0].Notes[1].Text)
	}
	if len(back.Trash) != 1 || back.Trash[0].Notes[0].ID != "n9" {
		t.Errorf("trash = %+v", back.Trash)
	}
	if back.Tracker != doc.Tracker {
		t.Errorf("tracker = %+v", back.Tracker)
	}
}

func TestDecodeSnapshotDefaultsMissingFields(t *testing.T) {
	doc, err := DecodeSnapshot([]byte(`{"currentFileName":"old"}`))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Groups == nil || doc.Trash == nil {
		t.Error("groups and trash should default to empty slices")
	}
	if doc.Tracker != (models.Tracker{}) {
		t.Errorf("tracker = %+v", doc.Tracker)
	}
	if doc.CurrentFileName != "old" {
		t.Errorf("file name = %q", doc.CurrentFileName)
	}
}

func TestDecodeSnapshotNullsAndDuplicates(t *testing.T) {
	raw := `{"groups":[{"id":"g1","name":"A","notes":null},null,{"id":"g2","name":"B","notes":[{"id":"x","text":"one"}]}],
		"trash":[{"id":"t","name":"B","notes":[{"id":"x","text":"copy"},{"id":"y","text":"two"}]}],
		"tracker":{"adultsCount":-4}}`
	doc, err := DecodeSnapshot([]byte(raw))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Groups) != 2 || doc.Groups[0].Notes == nil {
		t.Fatalf("groups = %+v", doc.Groups)
	}
	if len(doc.Trash[0].Notes) != 1 || doc.Trash[0].Notes[0].ID != "y" {
		t.Errorf("duplicate note should be dropped from trash: %+v", doc.Trash[0].Notes)
	}
	if doc.Tracker.AdultsCount != 0 {
		t.Errorf("adults = %d", doc.Tracker.AdultsCount)
	}
}

func TestDecodeSnapshotInvalid(t *testing.T) {
	if _, err := DecodeSnapshot([]byte("{not json")); err == nil {
		t.Error("expected error")
	}
}

func TestRevisionStable(t *testing.T) {
	if Revision([]byte("a")) != Revision([]byte("a")) {
		t.Error("revision should be deterministic")
	}
	if Revision([]byte("a")) == Revision([]byte("b")) {
		t.Error("revision should change with content")
	}
}
