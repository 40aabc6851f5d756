// Package store keeps keyed snapshot records: the board's auto-save channel.
package store

import (
	"fmt"

	"github.com/starford/scratchpad/internal/apperr"
)

// Snapshot drivers.
const (
	DriverSQLite = "sqlite"
	DriverDiskv  = "diskv"
)

// Snapshots is a keyed record store for encoded board snapshots.
type Snapshots interface {
	// Load returns the record stored under key, or apperr.ErrNotFound.
	Load(key string) ([]byte, error)
	// Save replaces the record stored under key.
	Save(key string, data []byte) error
	// Close releases the underlying resources.
	Close() error
}

// Open opens the snapshot store for the given driver rooted at path.
func Open(driver, path string) (Snapshots, error) {
	switch driver {
	case DriverSQLite, "":
		return OpenSQLite(path)
	case DriverDiskv:
		return OpenDiskv(path)
	}
	return nil, fmt.Errorf("store: unknown driver %q: %w", driver, apperr.ErrUnknownDriver)
}
