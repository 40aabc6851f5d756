package codec

import (
	"fmt"
	"path"
	"strings"

	"github.com/starford/scratchpad/internal/models"
)

const (
	noteSeparator = "\n\n"
	trackerFields = 4
)

// Document is the content recovered from a flat-text file.
type Document struct {
	Tracker    models.Tracker
	HasTracker bool
	Notes      []string
}

// TrackerLine renders the tracker as the first line of a flat-text file.
func TrackerLine(t models.Tracker) string {
	return fmt.Sprintf("%d ROOMS SOLD, %d ADULTS, %d CHILDREN, %d ARRIVALS",
		t.RoomsSoldCount, t.AdultsCount, t.ChildrenCount, t.ArrivalsCount)
}

// ExportText renders doc as a flat-text file: the tracker line, a blank line,
// then the notes of the first group separated by blank lines. Other groups
// and the trash are not part of the format.
func ExportText(doc *models.Document) string {
	var texts []string
	if len(doc.Groups) > 0 {
		for _, n := range doc.Groups[0].Notes {
			texts = append(texts, n.Text)
		}
	}
	return TrackerLine(doc.Tracker) + noteSeparator + strings.Join(texts, noteSeparator)
}

// ParseText reads a flat-text file.
//
// The first line is the tracker line only when it splits into exactly four
// comma-separated fields; the line after it is then skipped as a separator.
// Otherwise every line is note content. Note content is split on blank lines
// and whitespace-only chunks are dropped.
func ParseText(content string) Document {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")

	var doc Document
	body := lines
	if fields := strings.Split(lines[0], ","); len(fields) == trackerFields {
		doc.HasTracker = true
		for i, c := range models.Counters {
			doc.Tracker.Set(c, leadingInt(fields[i]))
		}
		body = nil
		if len(lines) > 2 {
			body = lines[2:]
		}
	}

	for _, chunk := range strings.Split(strings.Join(body, "\n"), noteSeparator) {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		doc.Notes = append(doc.Notes, chunk)
	}
	return doc
}

// BaseName strips the directory and the last extension from a file name.
// A name with no base, such as "" or "dir/", yields "".
func BaseName(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, "\\", "/"))
	if name == "" || strings.HasSuffix(name, "/") {
		return ""
	}
	name = path.Base(name)
	if name == "." || name == ".." {
		return ""
	}
	if ext := path.Ext(name); ext != "" && ext != name {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

// leadingInt parses the integer at the start of the field's first word.
// A field without leading digits reads as zero.
func leadingInt(field string) int {
	word := strings.TrimSpace(field)
	if i := strings.IndexByte(word, ' '); i >= 0 {
		word = word[:i]
	}
	neg := false
	if word != "" && (word[0] == '-' || word[0] == '+') {
		neg = word[0] == '-'
		word = word[1:]
	}
	n := 0
	for _, r := range word {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	if neg {
		return -n
	}
	return n
}
