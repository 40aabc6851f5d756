// Package models defines the domain types for the scratchpad board.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Default names used by the factories and the file lifecycle.
const (
	DefaultGroupName  = "New Group"
	UntaggedGroupName = "Untagged"
	DefaultFileName   = "File"
	SuggestedFileName = "MyNotes"
	WelcomeNoteText   = "This is a new scratchpad. Ctrl/Cmd+N to add a new note."
	PaletteSize       = 7
)

// Palette is the fixed set of group background colors, indexed by Group.ColorIndex.
var Palette = [PaletteSize]string{
	"#2e2e2e",
	"#ff0000",
	"#00ff00",
	"#0000ff",
	"#ffff00",
	"#ff8c00",
	"#800080",
}

// Note is a single block of text on the board.
type Note struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Created   Millis `json:"created"`
	Collapsed bool   `json:"collapsed"`
}

// Group is a named, ordered, colored collection of notes.
// Trash entries reuse the same shape.
type Group struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Notes      []*Note `json:"notes"`
	ColorIndex int     `json:"colorIndex"`
}

// Document is the complete board state.
type Document struct {
	Groups          []*Group `json:"groups"`
	Trash           []*Group `json:"trash"`
	Tracker         Tracker  `json:"tracker"`
	CurrentFileName string   `json:"currentFileName"`
}

// NewID returns a fresh opaque identifier.
func NewID() string {
	return uuid.NewString()
}

// NewNote creates a note stamped with the given creation time.
func NewNote(text string, created time.Time) *Note {
	return &Note{
		ID:      NewID(),
		Text:    text,
		Created: Millis{created},
	}
}

// NewGroup creates an empty group. An empty name falls back to DefaultGroupName.
func NewGroup(name string) *Group {
	if name == "" {
		name = DefaultGroupName
	}
	return &Group{
		ID:    NewID(),
		Name:  name,
		Notes: []*Note{},
	}
}

// NewDocument returns an empty document with the default file name.
func NewDocument() *Document {
	return &Document{
		Groups:          []*Group{},
		Trash:           []*Group{},
		CurrentFileName: DefaultFileName,
	}
}

// Color returns the palette entry for the group, wrapping out-of-range indexes.
func (g *Group) Color() string {
	i := g.ColorIndex % PaletteSize
	if i < 0 {
		i += PaletteSize
	}
	return Palette[i]
}

// IndexOf returns the position of the note with id in g, or -1.
func (g *Group) IndexOf(id string) int {
	for i, n := range g.Notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// Display returns the text shown for the note: the first line when collapsed.
func (n *Note) Display() string {
	if n.Collapsed {
		return FirstLine(n.Text)
	}
	return n.Text
}

// FirstLine returns text up to, not including, the first newline.
func FirstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}

// FindGroup returns the group with id among groups, or nil.
func FindGroup(groups []*Group, id string) *Group {
	for _, g := range groups {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// FindGroupByName returns the first group whose name equals name, or nil.
func FindGroupByName(groups []*Group, name string) *Group {
	for _, g := range groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// FindNoteOwner returns the first group in groups holding the note id.
func FindNoteOwner(groups []*Group, noteID string) (*Group, *Note) {
	for _, g := range groups {
		if i := g.IndexOf(noteID); i >= 0 {
			return g, g.Notes[i]
		}
	}
	return nil, nil
}

// FlattenNotes returns the notes of groups in order.
func FlattenNotes(groups []*Group) []*Note {
	var out []*Note
	for _, g := range groups {
		out = append(out, g.Notes...)
	}
	return out
}
