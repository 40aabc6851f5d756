package clip

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/starford/scratchpad/internal/apperr"
)

type notes map[string]string

func (n notes) NoteText(id string) (string, bool) {
	text, ok := n[id]
	return text, ok
}

func stubBackends(t *testing.T, sys, osc func(string) error) {
	t.Helper()
	origSys, origOSC := writeAll, writeOSC52
	t.Cleanup(func() {
		writeAll = origSys
		writeOSC52 = origOSC
	})
	writeAll = sys
	writeOSC52 = osc
}

func TestCopyUsesSystemClipboard(t *testing.T) {
	var got string
	fallback := false
	stubBackends(t,
		func(s string) error { got = s; return nil },
		func(string) error { fallback = true; return nil },
	)
	m, err := Copy("Room 101")
	if err != nil || m != MethodSystem {
		t.Fatalf("Copy = %v, %v", m, err)
	}
	if got != "Room 101" || fallback {
		t.Errorf("got %q, fallback %v", got, fallback)
	}
}

func TestCopyFallsBackToOSC52(t *testing.T) {
	stubBackends(t,
		func(string) error { return errors.New("exit status 1") },
		func(string) error { return nil },
	)
	m, err := Copy("x")
	if err != nil || m != MethodOSC52 {
		t.Fatalf("Copy = %v, %v", m, err)
	}
}

func TestCopyReportsBothFailures(t *testing.T) {
	stubBackends(t,
		func(string) error { return errors.New("no xclip") },
		func(string) error { return errors.New("no tty") },
	)
	_, err := Copy("x")
	if err == nil || !strings.Contains(err.Error(), "no xclip") || !strings.Contains(err.Error(), "no tty") {
		t.Errorf("err = %v", err)
	}
}

func TestCopyNote(t *testing.T) {
	var got string
	stubBackends(t, func(s string) error { got = s; return nil }, nil)
	src := notes{"n1": "Late checkout\n12:00"}

	if _, err := CopyNote(src, "n1"); err != nil {
		t.Fatalf("CopyNote: %v", err)
	}
	if got != "Late checkout\n12:00" {
		t.Errorf("copied %q", got)
	}
	if _, err := CopyNote(src, "missing"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("missing note err = %v", err)
	}
}

func TestWriteSequenceWrapsForMultiplexers(t *testing.T) {
	var plain, tmux, screen bytes.Buffer
	if err := writeSequence(&plain, "hi", "xterm-256color", false); err != nil {
		t.Fatal(err)
	}
	if err := writeSequence(&tmux, "hi", "xterm-256color", true); err != nil {
		t.Fatal(err)
	}
	if err := writeSequence(&screen, "hi", "screen", false); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(plain.String(), "\x1b]52;c;") {
		t.Errorf("plain = %q", plain.String())
	}
	if !strings.HasPrefix(tmux.String(), "\x1bPtmux;") {
		t.Errorf("tmux = %q", tmux.String())
	}
	if !strings.HasPrefix(screen.String(), "\x1bP") || plain.String() == screen.String() {
		t.Errorf("screen = %q", screen.String())
	}
}
