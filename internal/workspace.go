package internal

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/starford/scratchpad/internal/board"
	"github.com/starford/scratchpad/internal/storage"
	"github.com/starford/scratchpad/internal/store"
)

// Workspace is a board restored from its snapshot store, together with the
// export directory it saves to.
type Workspace struct {
	Board   *board.Board
	Exports *storage.FS

	snaps store.Snapshots
}

// OpenWorkspace opens the configured snapshot store and export directory and
// loads the board. Extra board options are applied after the defaults.
func OpenWorkspace(cfg *Config, logger *slog.Logger, opts ...board.Option) (*Workspace, error) {
	if cfg.Snapshot.Driver == store.DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.Snapshot.Path), 0o755); err != nil {
			return nil, fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	snaps, err := store.Open(cfg.Snapshot.Driver, cfg.Snapshot.Path)
	if err != nil {
		return nil, fmt.Errorf("init snapshot store: %w", err)
	}

	exports, err := storage.NewFS(cfg.Exports.Path)
	if err != nil {
		snaps.Close()
		return nil, fmt.Errorf("init exports: %w", err)
	}

	opts = append([]board.Option{
		board.WithLogger(logger),
		board.WithExports(exports),
		board.WithSnapshotKey(cfg.Snapshot.Key),
	}, opts...)

	return &Workspace{
		Board:   board.Load(snaps, opts...),
		Exports: exports,
		snaps:   snaps,
	}, nil
}

// Close releases the snapshot store.
func (w *Workspace) Close() error {
	if w.snaps == nil {
		return nil
	}
	err := w.snaps.Close()
	w.snaps = nil
	if err != nil {
		return errors.Join(errors.New("close snapshot store"), err)
	}
	return nil
}

// ImportFile replaces the board with the flat-text document at path.
func (w *Workspace) ImportFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}
	w.Board.Open(filepath.Base(path), string(data))
	return nil
}
