package board

import (
	"fmt"
	"strings"

	"github.com/starford/scratchpad/internal/apperr"
	"github.com/starford/scratchpad/internal/codec"
	"github.com/starford/scratchpad/internal/models"
	"github.com/starford/scratchpad/internal/storage"
)

// SaveRequest asks for the document to be written as a flat-text file.
type SaveRequest struct {
	// SaveAs forces a new name even when one is already set.
	SaveAs bool `json:"saveAs"`
	// Name is the user-supplied file name, used when one is needed.
	Name string `json:"name"`
}

// Export is a rendered flat-text document.
type Export struct {
	Name     string `json:"name"`
	FileName string `json:"fileName"`
	Content  string `json:"content"`
}

// NewFile replaces the document with a fresh one holding a single Untagged
// group. Unsaved changes are only discarded when confirm agrees.
func (b *Board) NewFile(confirm Confirm) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.dirty && !ask(confirm, "You have unsaved changes. Do you want to discard them and create a new file?") {
		return false
	}
	doc := models.NewDocument()
	doc.Groups = append(doc.Groups, models.NewGroup(models.UntaggedGroupName))
	b.replace(doc, KindFileNew)
	return true
}

// Open replaces the document with the contents of a flat-text file. The
// file name without its extension becomes the current file name and names
// the single group holding the imported notes. Without a usable file name
// the current file name is kept.
func (b *Board) Open(fileName, content string) *models.Document {
	b.mu.Lock()
	defer b.mu.Unlock()
	parsed := codec.ParseText(content)

	doc := models.NewDocument()
	if name := codec.BaseName(fileName); name != "" {
		doc.CurrentFileName = name
	} else if b.doc.CurrentFileName != "" {
		doc.CurrentFileName = b.doc.CurrentFileName
	}
	doc.Tracker = parsed.Tracker
	g := models.NewGroup(doc.CurrentFileName)
	for _, text := range parsed.Notes {
		g.Notes = append(g.Notes, models.NewNote(text, b.now()))
	}
	doc.Groups = append(doc.Groups, g)
	b.replace(doc, KindFileOpened)
	return cloneDocument(doc)
}

// OpenSaved opens a document from the export directory by name.
func (b *Board) OpenSaved(name string) (*models.Document, error) {
	if b.exports == nil {
		return nil, fmt.Errorf("board: open %s: no export directory: %w", name, apperr.ErrNotFound)
	}
	data, err := b.exports.Read(name)
	if err != nil {
		return nil, err
	}
	return b.Open(name, string(data)), nil
}

// SuggestedName is the default offered when asking for a file name.
func (b *Board) SuggestedName() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.doc.CurrentFileName != "" {
		return b.doc.CurrentFileName
	}
	return models.SuggestedFileName
}

// Save renders the document as flat text and, when an export directory is
// configured, writes it there as <name>.txt. A plain save of a clean
// document does nothing and returns nil. A name is required when none is
// set or when SaveAs is requested.
func (b *Board) Save(req SaveRequest) (*Export, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.dirty && !req.SaveAs {
		return nil, nil
	}
	name := b.doc.CurrentFileName
	if name == "" || req.SaveAs {
		name = strings.TrimSuffix(strings.TrimSpace(req.Name), storage.Extension)
		if name == "" {
			return nil, fmt.Errorf("board: save: %w", apperr.ErrFileNameRequired)
		}
	}

	content := codec.ExportText(b.doc)
	if b.exports != nil {
		if err := b.exports.Write(name, []byte(content)); err != nil {
			return nil, fmt.Errorf("board: save %s: %w", name, err)
		}
	}

	b.doc.CurrentFileName = name
	b.dirty = false
	b.persist()
	b.publish(KindFileSaved)
	return &Export{Name: name, FileName: name + storage.Extension, Content: content}, nil
}

// replace swaps in doc as a clean document. Callers hold b.mu.
func (b *Board) replace(doc *models.Document, kind string) {
	b.doc = doc
	b.dirty = false
	b.persist()
	b.publish(kind)
}
