package board

import (
	"github.com/starford/scratchpad/internal/models"
)

// AddNote appends a new note to a live group and returns a copy of it.
func (b *Board) AddNote(groupID, text string) (*models.Note, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	g := models.FindGroup(b.doc.Groups, groupID)
	if g == nil {
		return nil, false
	}
	n := models.NewNote(text, b.now())
	g.Notes = append(g.Notes, n)
	b.commit(KindNoteAdded)
	return cloneNote(n), true
}

// QuickNote puts an empty note at the top of the first live group,
// creating an Untagged group when the board has none.
func (b *Board) QuickNote() *models.Note {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.doc.Groups) == 0 {
		b.doc.Groups = append(b.doc.Groups, models.NewGroup(models.UntaggedGroupName))
	}
	g := b.doc.Groups[0]
	n := models.NewNote("", b.now())
	g.Notes = append([]*models.Note{n}, g.Notes...)
	b.commit(KindNoteAdded)
	return cloneNote(n)
}

// EditNoteText replaces the text of a note in a live group. Collapsed notes
// are read-only and notes in the trash cannot be edited.
func (b *Board) EditNoteText(noteID, text string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, n := models.FindNoteOwner(b.doc.Groups, noteID)
	if n == nil || n.Collapsed || n.Text == text {
		return false
	}
	n.Text = text
	b.commit(KindNoteEdited)
	return true
}

// ToggleCollapse flips the collapsed flag of a note in a live group and
// returns the new value.
func (b *Board) ToggleCollapse(noteID string) (collapsed, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, n := models.FindNoteOwner(b.doc.Groups, noteID)
	if n == nil {
		return false, false
	}
	n.Collapsed = !n.Collapsed
	b.commit(KindNoteCollapsed)
	return n.Collapsed, true
}

// DeleteNote removes a note from its live group and puts a copy of its text
// at the front of the trash, wrapped in a single-note entry named after the
// group it came from. The copy gets a fresh id and creation time.
func (b *Board) DeleteNote(noteID string, confirm Confirm) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	owner, n := models.FindNoteOwner(b.doc.Groups, noteID)
	if n == nil {
		return false
	}
	if !ask(confirm, "Delete this note?") {
		return false
	}
	owner.Notes = removeNote(owner.Notes, noteID)

	entry := models.NewGroup(owner.Name)
	entry.ColorIndex = owner.ColorIndex
	entry.Notes = append(entry.Notes, models.NewNote(n.Text, b.now()))
	b.doc.Trash = append([]*models.Group{entry}, b.doc.Trash...)
	b.commit(KindNoteDeleted)
	return true
}

func removeNote(notes []*models.Note, id string) []*models.Note {
	out := notes[:0]
	for _, n := range notes {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}
