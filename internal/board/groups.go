package board

import (
	"fmt"

	"github.com/starford/scratchpad/internal/models"
)

// AddGroup appends a new group and returns a copy of it.
func (b *Board) AddGroup(name string) *models.Group {
	b.mu.Lock()
	defer b.mu.Unlock()
	g := models.NewGroup(name)
	b.doc.Groups = append(b.doc.Groups, g)
	b.commit(KindGroupAdded)
	return cloneGroup(g)
}

// RenameGroup sets the name of a live group.
func (b *Board) RenameGroup(groupID, name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	g := models.FindGroup(b.doc.Groups, groupID)
	if g == nil || g.Name == name {
		return false
	}
	g.Name = name
	b.commit(KindGroupRenamed)
	return true
}

// RecolorGroup advances the group to the next palette color, wrapping to
// the first after the last.
func (b *Board) RecolorGroup(groupID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	g := models.FindGroup(b.doc.Groups, groupID)
	if g == nil {
		return false
	}
	g.ColorIndex = (g.ColorIndex + 1) % models.PaletteSize
	if g.ColorIndex < 0 {
		g.ColorIndex += models.PaletteSize
	}
	b.commit(KindGroupRecolored)
	return true
}

// DeleteGroup moves a live group, notes included, to the front of the trash.
func (b *Board) DeleteGroup(groupID string, confirm Confirm) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := groupIndex(b.doc.Groups, groupID)
	if i < 0 {
		return false
	}
	g := b.doc.Groups[i]
	if !ask(confirm, fmt.Sprintf("Delete group %q and its %d notes?", g.Name, len(g.Notes))) {
		return false
	}
	b.doc.Groups = append(b.doc.Groups[:i], b.doc.Groups[i+1:]...)
	b.doc.Trash = append([]*models.Group{g}, b.doc.Trash...)
	b.commit(KindGroupDeleted)
	return true
}

func groupIndex(groups []*models.Group, id string) int {
	for i, g := range groups {
		if g.ID == id {
			return i
		}
	}
	return -1
}

func ask(confirm Confirm, prompt string) bool {
	return confirm != nil && confirm(prompt)
}
