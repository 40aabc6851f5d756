package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/starford/scratchpad/internal/apperr"
)

func openAll(t *testing.T) map[string]Snapshots {
	t.Helper()
	dir := t.TempDir()
	out := make(map[string]Snapshots)
	for driver, path := range map[string]string{
		DriverSQLite: filepath.Join(dir, "state.db"),
		DriverDiskv:  filepath.Join(dir, "records"),
	} {
		s, err := Open(driver, path)
		if err != nil {
			t.Fatalf("Open(%s): %v", driver, err)
		}
		t.Cleanup(func() { s.Close() })
		out[driver] = s
	}
	return out
}

func TestLoadMissingKey(t *testing.T) {
	for driver, s := range openAll(t) {
		if _, err := s.Load("scratchpad-state"); !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("%s: err = %v, want ErrNotFound", driver, err)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	for driver, s := range openAll(t) {
		if err := s.Save("k", []byte(`{"groups":[]}`)); err != nil {
			t.Fatalf("%s: Save: %v", driver, err)
		}
		if err := s.Save("k", []byte(`{"groups":[{}]}`)); err != nil {
			t.Fatalf("%s: second Save: %v", driver, err)
		}
		got, err := s.Load("k")
		if err != nil {
			t.Fatalf("%s: Load: %v", driver, err)
		}
		if string(got) != `{"groups":[{}]}` {
			t.Errorf("%s: got %q", driver, got)
		}
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("redis", t.TempDir())
	if !errors.Is(err, apperr.ErrUnknownDriver) {
		t.Fatalf("err = %v", err)
	}
	if errors.Is(err, apperr.ErrNotFound) {
		t.Error("an unknown driver must not read as a missing record")
	}
}
