package board

import (
	"github.com/starford/scratchpad/internal/models"
	"github.com/starford/scratchpad/internal/reorder"
)

// Transfer applies a drop: the note leaves its live group and is inserted
// into the target group before the anchor computed from the target's
// displayed boxes and the pointer position, or at the end when there is no
// anchor. Dropping into the note's own group reorders it.
func (b *Board) Transfer(noteID, targetGroupID string, boxes []reorder.Box, pointerY float64) bool {
	return b.MoveNote(noteID, targetGroupID, reorder.AnchorID(boxes, pointerY, noteID))
}

// MoveNote moves a note into a live group before the note beforeID, or at
// the end when beforeID is empty or not in the target group.
func (b *Board) MoveNote(noteID, targetGroupID, beforeID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	source, n := models.FindNoteOwner(b.doc.Groups, noteID)
	if n == nil {
		return false
	}
	target := models.FindGroup(b.doc.Groups, targetGroupID)
	if target == nil {
		return false
	}
	from := source.IndexOf(noteID)
	source.Notes = append(source.Notes[:from], source.Notes[from+1:]...)

	at := len(target.Notes)
	if beforeID != "" && beforeID != noteID {
		if i := target.IndexOf(beforeID); i >= 0 {
			at = i
		}
	}
	target.Notes = insertNote(target.Notes, at, n)

	b.commit(KindNoteMoved)
	return true
}

func insertNote(notes []*models.Note, at int, n *models.Note) []*models.Note {
	notes = append(notes, nil)
	copy(notes[at+1:], notes[at:])
	notes[at] = n
	return notes
}
