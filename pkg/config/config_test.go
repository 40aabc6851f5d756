package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	Name string `yaml:"name" toml:"name"`
	Port int    `yaml:"port" toml:"port"`
}

func (s *sample) Validate() error {
	if s.Port <= 0 {
		return errors.New("port must be positive")
	}
	return nil
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	return writeNamed(t, "config.yaml", content)
}

func writeNamed(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg := sample{Name: "default", Port: 8080}
	if err := Load(writeFile(t, "port: 9090\n"), &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "default" || cfg.Port != 9090 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("SCRATCHPAD_TEST_NAME", "from-env")
	cfg := sample{Port: 1}
	if err := Load(writeFile(t, "name: ${SCRATCHPAD_TEST_NAME}\n"), &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "from-env" {
		t.Errorf("name = %q", cfg.Name)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	cfg := sample{Port: 1}
	err := Load(writeFile(t, "colour: blue\n"), &cfg)
	if err == nil || !strings.Contains(err.Error(), "colour") {
		t.Errorf("err = %v", err)
	}
}

func TestLoadValidates(t *testing.T) {
	cfg := sample{}
	err := Load(writeFile(t, "name: x\n"), &cfg)
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("err = %v", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	cfg := sample{Port: 3}
	if err := Load(writeFile(t, ""), &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg := sample{Port: 8080}
	if err := LoadOptional(filepath.Join(t.TempDir(), "absent.yaml"), &cfg); err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	bad := sample{}
	if err := LoadOptional(filepath.Join(t.TempDir(), "absent.yaml"), &bad); err == nil {
		t.Error("defaults should still be validated")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg := sample{Port: 1}
	if err := Load(filepath.Join(t.TempDir(), "absent.yaml"), &cfg); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadTOML(t *testing.T) {
	t.Setenv("SCRATCHPAD_TEST_PORT", "7070")
	cfg := sample{Name: "default"}
	if err := Load(writeNamed(t, "config.toml", "port = ${SCRATCHPAD_TEST_PORT}\n"), &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "default" || cfg.Port != 7070 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadTOMLRejectsUnknownKeys(t *testing.T) {
	cfg := sample{Port: 1}
	if err := Load(writeNamed(t, "config.toml", "colour = \"blue\"\n"), &cfg); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestFormatOf(t *testing.T) {
	cases := map[string]Format{
		"config.yaml": YAML,
		"config.yml":  YAML,
		"config.TOML": TOML,
		"settings":    YAML,
	}
	for name, want := range cases {
		if got := FormatOf(name); got != want {
			t.Errorf("FormatOf(%q) = %v, want %v", name, got, want)
		}
	}
}
