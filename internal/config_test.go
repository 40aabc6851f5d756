package internal

import (
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
)

func TestAuthConfig_DisabledMode(t *testing.T) {
	cfg := AuthConfig{Mode: "disabled", Token: ""}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled mode should pass: %v", err)
	}
	if cfg.AuthEnabled() {
		t.Error("disabled mode should not be enabled")
	}
}

func TestAuthConfig_EmptyModeDefaultsDisabled(t *testing.T) {
	cfg := AuthConfig{Mode: "", Token: ""}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty mode should default to disabled: %v", err)
	}
	if cfg.Mode != AuthModeDisabled {
		t.Errorf("mode = %q, want %q", cfg.Mode, AuthModeDisabled)
	}
}

func TestAuthConfig_TokenModeValid(t *testing.T) {
	cfg := AuthConfig{Mode: "token", Token: "mysecret"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("token mode with token should pass: %v", err)
	}
	if !cfg.AuthEnabled() {
		t.Error("token mode should be enabled")
	}
}

func TestAuthConfig_TokenModeEmptyToken(t *testing.T) {
	cfg := AuthConfig{Mode: "token", Token: ""}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("token mode with empty token should fail")
	}
	if !strings.Contains(err.Error(), "token is empty") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAuthConfig_InvalidMode(t *testing.T) {
	cfg := AuthConfig{Mode: "magic", Token: "x"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("invalid mode should fail validation")
	}
}

func TestFullConfig_AuthValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Auth.Mode = "token"
	cfg.Auth.Token = ""
	err := cfg.Validate()
	if err == nil {
		t.Fatal("full config validate should catch auth error")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Snapshot.Key != "scratchpad-state" {
		t.Errorf("key = %q", cfg.Snapshot.Key)
	}
}

func TestSnapshotConfig_Driver(t *testing.T) {
	for _, driver := range []string{"sqlite", "diskv"} {
		cfg := SnapshotConfig{Driver: driver, Path: "x", Key: "k"}
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: %v", driver, err)
		}
	}
	cfg := SnapshotConfig{Driver: "redis", Path: "x", Key: "k"}
	if err := cfg.Validate(); err == nil {
		t.Error("unknown driver should fail validation")
	}
}

func TestSnapshotConfig_KeyMustBeFileName(t *testing.T) {
	cfg := SnapshotConfig{Driver: "diskv", Path: "x", Key: "../state"}
	if err := cfg.Validate(); err == nil {
		t.Error("key with path separators should fail validation")
	}
}

func TestExportsConfig_PathRequired(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Exports.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty exports path should fail validation")
	}
}

func TestSnapshotConfig_ExpandsHome(t *testing.T) {
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	t.Setenv("HOME", "/home/frontdesk")
	cfg := NewDefaultConfig()
	cfg.Snapshot.Path = "~/scratchpad/state.db"
	cfg.Exports.Path = "~/scratchpad/exports"
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Snapshot.Path != "/home/frontdesk/scratchpad/state.db" {
		t.Errorf("snapshot path = %q", cfg.Snapshot.Path)
	}
	if cfg.Exports.Path != "/home/frontdesk/scratchpad/exports" {
		t.Errorf("exports path = %q", cfg.Exports.Path)
	}
}
