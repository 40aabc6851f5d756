// Package testutil provides shared test helpers for setting up boards and export directories.
package testutil

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/starford/scratchpad/internal/board"
	"github.com/starford/scratchpad/internal/storage"
	"github.com/starford/scratchpad/internal/store"
)

// TestSnapshots opens a temporary SQLite snapshot store that is closed on cleanup.
func TestSnapshots(t *testing.T) store.Snapshots {
	t.Helper()
	snaps, err := store.Open(store.DriverSQLite, filepath.Join(t.TempDir(), "scratchpad.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { snaps.Close() })
	return snaps
}

// TestExports creates a temporary export directory with a storage.Provider.
func TestExports(t *testing.T) (string, storage.Provider) {
	t.Helper()
	dir := t.TempDir()
	exports, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, exports
}

// TestBoard loads a board backed by temporary snapshot and export stores.
// The board starts seeded with the Untagged group and the welcome note.
func TestBoard(t *testing.T, opts ...board.Option) (*board.Board, storage.Provider) {
	t.Helper()
	_, exports := TestExports(t)
	opts = append([]board.Option{
		board.WithExports(exports),
		board.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}, opts...)
	return board.Load(TestSnapshots(t), opts...), exports
}
