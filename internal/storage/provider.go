// Package storage defines the export directory holding saved flat-text documents.
package storage

import "github.com/starford/scratchpad/internal/models"

// Extension is appended to every saved document name.
const Extension = ".txt"

// Provider is the interface for saved document operations.
// Names are plain document names without directory or extension.
type Provider interface {
	// List returns metadata for every saved document, sorted by name.
	List() ([]models.FileMeta, error)
	// Read returns the raw bytes of the named document.
	Read(name string) ([]byte, error)
	// Write atomically writes the named document.
	Write(name string, content []byte) error
	// Delete removes the named document.
	Delete(name string) error
}
