package internal

import (
	"fmt"
	"log/slog"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mitchellh/go-homedir"

	"github.com/starford/scratchpad/internal/board"
	"github.com/starford/scratchpad/internal/store"
)

// keyPattern limits snapshot keys to names usable as a diskv file name.
var keyPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

func expandHome(path *string) error {
	expanded, err := homedir.Expand(*path)
	if err != nil {
		return fmt.Errorf("expand %s: %w", *path, err)
	}
	*path = expanded
	return nil
}

// Auth modes.
const (
	AuthModeDisabled = "disabled"
	AuthModeToken    = "token"
)

// Config represents the application configuration.
type Config struct {
	App      ApplicationConfig `yaml:"app" toml:"app"`
	Snapshot SnapshotConfig    `yaml:"snapshot" toml:"snapshot"`
	Exports  ExportsConfig     `yaml:"exports" toml:"exports"`
	Auth     AuthConfig        `yaml:"auth" toml:"auth"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Snapshot.Validate(); err != nil {
		return err
	}
	if err := c.Exports.Validate(); err != nil {
		return err
	}
	return c.Auth.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level" toml:"log_level"`
	HTTP     HTTPConfig `yaml:"http" toml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port" toml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// SnapshotConfig selects where the board snapshot is kept between runs.
// Driver "sqlite" stores it in a database file at Path; "diskv" stores it
// as a file under the directory at Path.
type SnapshotConfig struct {
	Driver string `yaml:"driver" toml:"driver"`
	Path   string `yaml:"path" toml:"path"`
	Key    string `yaml:"key" toml:"key"`
}

// Validate expands a leading ~ in Path and validates the snapshot configuration.
func (c *SnapshotConfig) Validate() error {
	if err := expandHome(&c.Path); err != nil {
		return err
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Driver, validation.Required, validation.In(store.DriverSQLite, store.DriverDiskv)),
		validation.Field(&c.Path, validation.Required),
		validation.Field(&c.Key, validation.Required, validation.Match(keyPattern)),
	)
}

// ExportsConfig holds the directory saved flat-text documents go to.
type ExportsConfig struct {
	Path string `yaml:"path" toml:"path"`
}

// Validate expands a leading ~ in Path and validates the exports configuration.
func (c *ExportsConfig) Validate() error {
	if err := expandHome(&c.Path); err != nil {
		return err
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// AuthConfig holds authentication configuration.
//
// Mode controls how authentication is enforced:
//   - "disabled" (default): no authentication required, suitable for local dev.
//   - "token": Bearer token authentication; Token must be non-empty.
type AuthConfig struct {
	Mode  string `yaml:"mode" toml:"mode"`
	Token string `yaml:"token" toml:"token"`
}

// Validate validates the auth configuration.
func (c *AuthConfig) Validate() error {
	// Normalise empty mode to "disabled" for backward compatibility.
	if c.Mode == "" {
		c.Mode = AuthModeDisabled
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(AuthModeDisabled, AuthModeToken)),
	); err != nil {
		return err
	}
	if c.Mode == AuthModeToken && c.Token == "" {
		return fmt.Errorf("auth: mode is %q but token is empty", AuthModeToken)
	}
	return nil
}

// AuthEnabled returns true when authentication is active.
func (c *AuthConfig) AuthEnabled() bool {
	return c.Mode == AuthModeToken
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Snapshot: SnapshotConfig{
			Driver: store.DriverSQLite,
			Path:   "./scratchpad.db",
			Key:    board.DefaultSnapshotKey,
		},
		Exports: ExportsConfig{
			Path: "./exports",
		},
		Auth: AuthConfig{
			Mode: AuthModeDisabled,
		},
	}
}
