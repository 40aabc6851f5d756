package board

import (
	"github.com/starford/scratchpad/internal/models"
)

// TrashNotes returns copies of every trashed note, newest entry first.
func (b *Board) TrashNotes() []*models.Note {
	b.mu.Lock()
	defer b.mu.Unlock()
	notes := models.FlattenNotes(b.doc.Trash)
	out := make([]*models.Note, len(notes))
	for i, n := range notes {
		out[i] = cloneNote(n)
	}
	return out
}

// RestoreNote moves a note out of the trash. It joins the first live group
// whose name equals the trash entry's name, or a new group carrying that
// name and color. Trash entries left empty are removed.
func (b *Board) RestoreNote(noteID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	entry, n := models.FindNoteOwner(b.doc.Trash, noteID)
	if n == nil {
		return false
	}
	entry.Notes = removeNote(entry.Notes, noteID)

	if target := models.FindGroupByName(b.doc.Groups, entry.Name); target != nil {
		target.Notes = append(target.Notes, n)
	} else {
		g := models.NewGroup(entry.Name)
		g.ColorIndex = entry.ColorIndex
		g.Notes = append(g.Notes, n)
		b.doc.Groups = append(b.doc.Groups, g)
	}

	kept := b.doc.Trash[:0]
	for _, t := range b.doc.Trash {
		if len(t.Notes) > 0 {
			kept = append(kept, t)
		}
	}
	b.doc.Trash = kept
	b.commit(KindNoteRestored)
	return true
}

// EmptyTrash permanently discards every trash entry.
func (b *Board) EmptyTrash(confirm Confirm) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.doc.Trash) == 0 {
		return false
	}
	if !ask(confirm, "Permanently delete all notes in the trash?") {
		return false
	}
	b.doc.Trash = []*models.Group{}
	b.commit(KindTrashEmptied)
	return true
}
