// Package clip copies note text to the clipboard. The system clipboard is
// tried first; terminals without one fall back to an OSC52 escape sequence.
package clip

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"

	"github.com/starford/scratchpad/internal/apperr"
)

// Method reports which backend took the text.
type Method uint8

const (
	MethodSystem Method = iota
	MethodOSC52
)

func (m Method) String() string {
	if m == MethodOSC52 {
		return "osc52"
	}
	return "system"
}

// Source looks up the raw text of a note.
type Source interface {
	NoteText(noteID string) (string, bool)
}

var (
	writeAll   = clipboard.WriteAll
	writeOSC52 = writeOSC52Terminal
)

// Copy puts text on the clipboard.
func Copy(text string) (Method, error) {
	sysErr := writeAll(text)
	if sysErr == nil {
		return MethodSystem, nil
	}
	oscErr := writeOSC52(text)
	if oscErr == nil {
		return MethodOSC52, nil
	}
	return MethodSystem, fmt.Errorf("clip: system clipboard: %v; osc52: %w", sysErr, oscErr)
}

// CopyNote copies the text of a live or trashed note.
func CopyNote(src Source, noteID string) (Method, error) {
	text, ok := src.NoteText(noteID)
	if !ok {
		return MethodSystem, fmt.Errorf("clip: note %s: %w", noteID, apperr.ErrNotFound)
	}
	return Copy(text)
}

func writeOSC52Terminal(text string) error {
	if !osc52Usable() {
		return errors.New("OSC52 unavailable for this terminal")
	}
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open /dev/tty: %w", err)
	}
	defer tty.Close()
	return writeSequence(tty, text, os.Getenv("TERM"), os.Getenv("TMUX") != "")
}

func writeSequence(w io.Writer, text, term string, tmux bool) error {
	seq := osc52.New(text)
	switch {
	case tmux:
		seq = seq.Tmux()
	case strings.HasPrefix(strings.ToLower(term), "screen"):
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(w)
	return err
}

func osc52Usable() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("SCRATCHPAD_DISABLE_OSC52"))) {
	case "1", "true", "yes", "on":
		return false
	}
	term := strings.TrimSpace(os.Getenv("TERM"))
	return term != "" && !strings.EqualFold(term, "dumb")
}
