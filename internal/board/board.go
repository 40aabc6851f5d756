// Package board is the mutation engine of the scratchpad. A Board owns one
// Document; every operation runs under the board's lock, leaves the
// document's invariants intact, marks it dirty, writes a snapshot and
// notifies the render layer before returning.
package board

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/starford/scratchpad/internal/apperr"
	"github.com/starford/scratchpad/internal/codec"
	"github.com/starford/scratchpad/internal/models"
	"github.com/starford/scratchpad/internal/storage"
	"github.com/starford/scratchpad/internal/store"
)

// DefaultSnapshotKey is the record key the board snapshot is stored under.
const DefaultSnapshotKey = "scratchpad-state"

// Confirm asks the user a yes/no question. Destructive operations are
// complete no-ops when it returns false.
type Confirm func(prompt string) bool

// Always is a Confirm that answers yes.
func Always(string) bool { return true }

// Never is a Confirm that answers no.
func Never(string) bool { return false }

// Change is published to the render layer after every mutation.
type Change struct {
	Kind     string `json:"kind"`
	Dirty    bool   `json:"dirty"`
	Revision string `json:"revision"`
}

// Notifier receives a Change after each mutation. It is called with the
// board lock held, so it must not call back into the Board; everything a
// subscriber needs is carried in the Change.
type Notifier func(Change)

// View is a detached copy of the board for rendering.
type View struct {
	Document *models.Document `json:"document"`
	Trash    []*models.Note   `json:"trashNotes"`
	Dirty    bool             `json:"dirty"`
	Revision string           `json:"revision"`
}

// Board owns a Document and applies mutations to it.
type Board struct {
	mu       sync.Mutex
	doc      *models.Document
	dirty    bool
	revision string

	snaps   store.Snapshots
	key     string
	exports storage.Provider
	logger  *slog.Logger
	notify  Notifier
	now     func() time.Time
}

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger used for swallowed persistence failures.
func WithLogger(l *slog.Logger) Option {
	return func(b *Board) { b.logger = l }
}

// WithNotifier sets the render-layer callback.
func WithNotifier(n Notifier) Option {
	return func(b *Board) { b.notify = n }
}

// WithClock overrides the time source for note creation stamps.
func WithClock(now func() time.Time) Option {
	return func(b *Board) { b.now = now }
}

// WithExports sets where saved flat-text documents are written.
func WithExports(p storage.Provider) Option {
	return func(b *Board) { b.exports = p }
}

// WithSnapshotKey overrides the snapshot record key.
func WithSnapshotKey(key string) Option {
	return func(b *Board) {
		if key != "" {
			b.key = key
		}
	}
}

// New returns a board holding an empty document. snaps may be nil, in which
// case nothing is persisted.
func New(snaps store.Snapshots, opts ...Option) *Board {
	b := &Board{
		doc:    models.NewDocument(),
		snaps:  snaps,
		key:    DefaultSnapshotKey,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Load returns a board restored from the stored snapshot. A missing or
// unreadable snapshot is logged and yields a fresh document. A document
// without live groups is seeded with an Untagged group and a welcome note.
func Load(snaps store.Snapshots, opts ...Option) *Board {
	b := New(snaps, opts...)
	if snaps != nil {
		data, err := snaps.Load(b.key)
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			b.logger.Info("no snapshot found, starting fresh", slog.String("key", b.key))
		case err != nil:
			b.logger.Error("snapshot load failed", slog.String("key", b.key), slog.String("error", err.Error()))
		default:
			doc, decErr := codec.DecodeSnapshot(data)
			if decErr != nil {
				b.logger.Error("snapshot decode failed", slog.String("key", b.key), slog.String("error", decErr.Error()))
			} else {
				b.doc = doc
				b.revision = codec.Revision(data)
			}
		}
	}
	if len(b.doc.Groups) == 0 {
		g := models.NewGroup(models.UntaggedGroupName)
		g.Notes = append(g.Notes, models.NewNote(models.WelcomeNoteText, b.now()))
		b.doc.Groups = append(b.doc.Groups, g)
	}
	return b
}

// View returns a copy of the current state.
func (b *Board) View() View {
	b.mu.Lock()
	defer b.mu.Unlock()
	doc := cloneDocument(b.doc)
	return View{
		Document: doc,
		Trash:    nonNil(models.FlattenNotes(doc.Trash)),
		Dirty:    b.dirty,
		Revision: b.revision,
	}
}

// Document returns a copy of the current document.
func (b *Board) Document() *models.Document {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cloneDocument(b.doc)
}

// Dirty reports whether the document has changes not yet saved to a file.
func (b *Board) Dirty() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dirty
}

// NoteText returns the full text of a note in a live group or in the trash.
func (b *Board) NoteText(noteID string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, n := models.FindNoteOwner(b.doc.Groups, noteID); n != nil {
		return n.Text, true
	}
	if _, n := models.FindNoteOwner(b.doc.Trash, noteID); n != nil {
		return n.Text, true
	}
	return "", false
}

// commit finishes a mutation: the document becomes dirty, is snapshotted
// and the render layer is told. Callers hold b.mu.
func (b *Board) commit(kind string) {
	b.dirty = true
	b.persist()
	b.publish(kind)
}

// persist writes the snapshot. Failures are logged and swallowed: the
// in-memory document stays authoritative.
func (b *Board) persist() {
	data, err := codec.EncodeSnapshot(b.doc)
	if err != nil {
		b.logger.Error("snapshot encode failed", slog.String("error", err.Error()))
		return
	}
	b.revision = codec.Revision(data)
	if b.snaps == nil {
		return
	}
	if err := b.snaps.Save(b.key, data); err != nil {
		b.logger.Error("snapshot save failed", slog.String("key", b.key), slog.String("error", err.Error()))
	}
}

func (b *Board) publish(kind string) {
	if b.notify == nil {
		return
	}
	b.notify(Change{Kind: kind, Dirty: b.dirty, Revision: b.revision})
}

func cloneDocument(doc *models.Document) *models.Document {
	return &models.Document{
		Groups:          cloneGroups(doc.Groups),
		Trash:           cloneGroups(doc.Trash),
		Tracker:         doc.Tracker,
		CurrentFileName: doc.CurrentFileName,
	}
}

func cloneGroups(groups []*models.Group) []*models.Group {
	out := make([]*models.Group, len(groups))
	for i, g := range groups {
		out[i] = cloneGroup(g)
	}
	return out
}

func cloneGroup(g *models.Group) *models.Group {
	c := *g
	c.Notes = make([]*models.Note, len(g.Notes))
	for i, n := range g.Notes {
		c.Notes[i] = cloneNote(n)
	}
	return &c
}

func cloneNote(n *models.Note) *models.Note {
	c := *n
	return &c
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
