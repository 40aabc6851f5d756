package store

import (
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"github.com/starford/scratchpad/internal/apperr"
)

// Diskv stores each snapshot record as one file under a base directory.
type Diskv struct {
	d *diskv.Diskv
}

var _ Snapshots = (*Diskv)(nil)

// OpenDiskv creates a flat diskv store rooted at dir.
func OpenDiskv(dir string) (*Diskv, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: mkdir %s: %w", dir, err)
	}
	return &Diskv{d: diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024,
	})}, nil
}

// Load returns the record for key.
func (s *Diskv) Load(key string) ([]byte, error) {
	if !s.d.Has(key) {
		return nil, apperr.ErrNotFound
	}
	data, err := s.d.Read(key)
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", key, err)
	}
	return data, nil
}

// Save replaces the record for key.
func (s *Diskv) Save(key string, data []byte) error {
	if err := s.d.Write(key, data); err != nil {
		return fmt.Errorf("store: save %s: %w", key, err)
	}
	return nil
}

// Close is a no-op; diskv holds no open handles.
func (s *Diskv) Close() error {
	return nil
}
