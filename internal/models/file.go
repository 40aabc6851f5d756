package models

import "time"

// FileMeta describes one saved flat-text document.
type FileMeta struct {
	Name      string    `json:"name"`
	FileName  string    `json:"fileName"`
	Size      int64     `json:"size"`
	UpdatedAt time.Time `json:"updatedAt"`
}
