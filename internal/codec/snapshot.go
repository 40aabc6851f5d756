// Package codec implements the two board serializations: the full-state
// snapshot used for auto-save and the lossy flat-text document used for
// file export and import.
package codec

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/starford/scratchpad/internal/models"
)

// EncodeSnapshot serializes the complete document as JSON.
func EncodeSnapshot(doc *models.Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("codec: encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot restores a document from a snapshot.
//
// Missing or null groups, trash and notes decode as empty, a missing tracker
// decodes as all zeros and negative counters are clamped. Nil entries are
// dropped, and a note id seen a second time (live groups first, then trash)
// is dropped so the result never holds the same note twice.
func DecodeSnapshot(data []byte) (*models.Document, error) {
	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("codec: decode snapshot: %w", err)
	}
	seen := make(map[string]struct{})
	doc.Groups = normalizeGroups(doc.Groups, seen)
	doc.Trash = normalizeGroups(doc.Trash, seen)
	for _, c := range models.Counters {
		doc.Tracker.Set(c, doc.Tracker.Get(c))
	}
	return &doc, nil
}

// Revision returns a content hash of an encoded snapshot.
func Revision(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

func normalizeGroups(groups []*models.Group, seen map[string]struct{}) []*models.Group {
	out := make([]*models.Group, 0, len(groups))
	for _, g := range groups {
		if g == nil {
			continue
		}
		if g.ID == "" {
			g.ID = models.NewID()
		}
		notes := make([]*models.Note, 0, len(g.Notes))
		for _, n := range g.Notes {
			if n == nil {
				continue
			}
			if n.ID == "" {
				n.ID = models.NewID()
			}
			if _, dup := seen[n.ID]; dup {
				continue
			}
			seen[n.ID] = struct{}{}
			notes = append(notes, n)
		}
		g.Notes = notes
		out = append(out, g)
	}
	return out
}
