// Package reorder computes drop positions for drag-and-drop note moves.
package reorder

import "math"

// Box is the on-screen geometry of one displayed note.
type Box struct {
	NoteID string  `json:"noteId"`
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Center returns the vertical midpoint of the box.
func (b Box) Center() float64 {
	return b.Top + b.Height/2
}

// Anchor returns the index into boxes of the element the dragged note should
// be inserted before, or -1 when it belongs at the end.
//
// The anchor is the box whose center lies at or below pointerY and is closest
// to it: the box maximizing pointerY-center over values <= 0. Ties keep the
// earlier box. Boxes whose NoteID equals skip (the dragged note) are ignored.
func Anchor(boxes []Box, pointerY float64, skip string) int {
	best := -1
	bestOffset := math.Inf(-1)
	for i, b := range boxes {
		if skip != "" && b.NoteID == skip {
			continue
		}
		offset := pointerY - b.Center()
		if offset > 0 {
			continue
		}
		if offset > bestOffset {
			bestOffset = offset
			best = i
		}
	}
	return best
}

// AnchorID is Anchor returning the anchor's NoteID, or "" for the end.
func AnchorID(boxes []Box, pointerY float64, skip string) string {
	if i := Anchor(boxes, pointerY, skip); i >= 0 {
		return boxes[i].NoteID
	}
	return ""
}

// Stack lays out ids top to bottom with uniform height starting at top.
// It is used when a caller has ordering but no measured geometry.
func Stack(ids []string, top, height float64) []Box {
	out := make([]Box, len(ids))
	for i, id := range ids {
		out[i] = Box{NoteID: id, Top: top + float64(i)*height, Height: height}
	}
	return out
}
