// Package config loads cellfit settings from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/kk-code-lab/cellfit/internal/palette"
	"github.com/kk-code-lab/cellfit/internal/textutil"
)

// EnvConfigPath names the variable that points at a config file.
const EnvConfigPath = "CELLFIT_CONFIG"

// maxTabWidth bounds tab_width; wider stops are almost certainly a typo.
const maxTabWidth = 16

// Config holds all settings.
type Config struct {
	Render RenderConfig `toml:"render"`
	Log    LogConfig    `toml:"log"`
}

// RenderConfig controls layout and color.
type RenderConfig struct {
	Color    bool `toml:"color"`
	MaxPairs int  `toml:"max_pairs"`
	TabWidth int  `toml:"tab_width"`
	Wrap     bool `toml:"wrap"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Render: RenderConfig{
			Color:    true,
			MaxPairs: palette.DefaultMaxPairs,
			TabWidth: textutil.DefaultTabWidth,
			Wrap:     true,
		},
		Log: LogConfig{Level: "info"},
	}
}

// ResolvePath picks the config file: an explicit path wins, then
// $CELLFIT_CONFIG, then the user config directory. It returns "" when no
// location can be determined.
func ResolvePath(explicit string, getenv func(string) string) string {
	if explicit != "" {
		return explicit
	}
	if p := getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "cellfit", "config.toml")
}

// Load reads settings from path over the defaults. A missing file is not an
// error, unless the path was required.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes TOML data over the defaults and validates the result.
// Unknown keys are rejected so typos do not pass silently.
func Parse(source string, data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return Default(), perr
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Render.MaxPairs <= palette.SlotBase {
		return fmt.Errorf("%w: render.max_pairs must be greater than %d, got %d",
			ErrValidationFailed, palette.SlotBase, c.Render.MaxPairs)
	}
	if c.Render.TabWidth < 1 || c.Render.TabWidth > maxTabWidth {
		return fmt.Errorf("%w: render.tab_width must be between 1 and %d, got %d",
			ErrValidationFailed, maxTabWidth, c.Render.TabWidth)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log.level %q is not one of debug, info, warn, error",
			ErrValidationFailed, c.Log.Level)
	}
	return nil
}

// ApplyEnv applies environment overrides. A non-empty NO_COLOR turns color
// off regardless of the file.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv("NO_COLOR") != "" {
		c.Render.Color = false
	}
}
