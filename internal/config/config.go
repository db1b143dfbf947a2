// Package config loads quill's TOML settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	defaultQuitTimes      = 3
	defaultMessageSeconds = 5
)

// Config is the decoded settings file.
type Config struct {
	// Theme names a chroma style. Empty uses the built-in palette.
	Theme string `toml:"theme"`

	// QuitTimes is how many extra quit presses a modified document needs.
	// 0 disables the confirmation.
	QuitTimes int `toml:"quit_times"`

	// MessageSeconds is how long a status message stays visible.
	MessageSeconds int `toml:"message_seconds"`

	// LogFile receives debug logs when set.
	LogFile string `toml:"log_file"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		QuitTimes:      defaultQuitTimes,
		MessageSeconds: defaultMessageSeconds,
	}
}

// MessageTTL returns MessageSeconds as a duration.
func (c Config) MessageTTL() time.Duration {
	return time.Duration(c.MessageSeconds) * time.Second
}

// DefaultPath returns the per-user settings file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: locate config dir: %w", err)
	}
	return filepath.Join(dir, "quill", "config.toml"), nil
}

// Load reads path over the defaults. A missing file yields the defaults.
// Keys the file sets but Config does not know are returned as undecoded so
// the caller can warn about them.
func Load(path string) (cfg Config, undecoded []string, err error) {
	cfg = Default()
	if path == "" {
		return cfg, nil, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil, nil
	}
	if err != nil {
		return Default(), nil, fmt.Errorf("config: load %s: %w", path, err)
	}

	for _, k := range md.Undecoded() {
		undecoded = append(undecoded, k.String())
	}
	if err := cfg.validate(); err != nil {
		return Default(), undecoded, fmt.Errorf("config: load %s: %w", path, err)
	}
	return cfg, undecoded, nil
}

func (c Config) validate() error {
	if c.QuitTimes < 0 {
		return fmt.Errorf("quit_times must not be negative, got %d", c.QuitTimes)
	}
	if c.MessageSeconds <= 0 {
		return fmt.Errorf("message_seconds must be positive, got %d", c.MessageSeconds)
	}
	return nil
}
