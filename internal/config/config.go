// Package config provides configuration for the notetidy binary.
// Loads from: CLI flags > env vars > .notetidy.toml > built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// NoteOverride is set by the global --note flag and wins over every other
// source when resolving the target note path.
var NoteOverride string

// ConfigFileName is looked up in the working directory first, then under the
// user config dir.
const ConfigFileName = ".notetidy.toml"

// Config holds all notetidy configuration, loaded from TOML + env + flags.
type Config struct {
	Note    NoteConfig    `toml:"note"`
	Journal JournalConfig `toml:"journal"`
	Watch   WatchConfig   `toml:"watch"`
	Display DisplayConfig `toml:"display"`
}

// NoteConfig holds target-file settings.
type NoteConfig struct {
	Path         string `toml:"path"`          // default note file to tidy
	OutputSuffix string `toml:"output_suffix"` // appended to the stem for derived-name output
}

// JournalConfig controls the sqlite run journal.
type JournalConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"` // db file ("" = default location)
}

// WatchConfig holds watch-mode tuning.
type WatchConfig struct {
	DebounceMs int `toml:"debounce_ms"`
}

// DisplayConfig controls visual output settings.
type DisplayConfig struct {
	Mode string `toml:"mode"` // "full" (default), "compact", "quiet"
}

// DefaultConfig returns a Config with all built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Note: NoteConfig{
			OutputSuffix: "_sorted",
		},
		Journal: JournalConfig{
			Enabled: true,
		},
		Watch: WatchConfig{
			DebounceMs: 2000,
		},
		Display: DisplayConfig{
			Mode: "full",
		},
	}
}

// LoadConfig merges all configuration sources: defaults < TOML file < env
// vars. The --note flag is applied by NotePath.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	configPath := FindConfigFile()
	if configPath != "" {
		meta, err := toml.DecodeFile(configPath, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config %s: %w", configPath, err)
		}
		warnUnknownKeys(meta, configPath)
	}

	if v := os.Getenv("NOTETIDY_NOTE"); v != "" {
		cfg.Note.Path = v
	}
	if v, ok := os.LookupEnv("NOTETIDY_SUFFIX"); ok {
		cfg.Note.OutputSuffix = v
	}
	if v := os.Getenv("NOTETIDY_JOURNAL"); v != "" {
		cfg.Journal.Enabled = v != "0" && !strings.EqualFold(v, "false")
	}
	if v := os.Getenv("NOTETIDY_DB_PATH"); v != "" {
		cfg.Journal.Path = v
	}
	if v := os.Getenv("NOTETIDY_DEBOUNCE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.Watch.DebounceMs = ms
		} else {
			fmt.Fprintf(os.Stderr, "[WARN] ignoring invalid NOTETIDY_DEBOUNCE_MS=%q\n", v)
		}
	}
	if v := os.Getenv("NOTETIDY_DISPLAY"); v != "" {
		cfg.Display.Mode = v
	}

	return cfg, nil
}

// NotePath resolves the target note file: --note flag > env/TOML path.
// Returns an error when nothing is configured and no argument was given.
func (c *Config) NotePath() (string, error) {
	if NoteOverride != "" {
		return NoteOverride, nil
	}
	if c.Note.Path != "" {
		return c.Note.Path, nil
	}
	return "", fmt.Errorf("no note file configured: pass a path, use --note, or set note.path in %s", ConfigFileName)
}

// OutputPath derives the output file name for a tidied note. An empty suffix
// means writing in place.
func (c *Config) OutputPath(notePath string) string {
	if c.Note.OutputSuffix == "" {
		return notePath
	}
	ext := filepath.Ext(notePath)
	stem := strings.TrimSuffix(notePath, ext)
	return stem + c.Note.OutputSuffix + ext
}

// DBPath returns the journal database location, defaulting to the user
// config dir.
func (c *Config) DBPath() string {
	if c.Journal.Path != "" {
		return c.Journal.Path
	}
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return filepath.Join(".", ".notetidy", "journal.db")
	}
	return filepath.Join(base, "notetidy", "journal.db")
}

// Debounce returns the watch-mode debounce window.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Watch.DebounceMs) * time.Millisecond
}

// FindConfigFile returns the path of the first config file found, or "".
func FindConfigFile() string {
	if p := os.Getenv("NOTETIDY_CONFIG"); p != "" {
		return p
	}
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName
	}
	if base, err := os.UserConfigDir(); err == nil && base != "" {
		p := filepath.Join(base, "notetidy", "config.toml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func warnUnknownKeys(meta toml.MetaData, configPath string) {
	for _, key := range meta.Undecoded() {
		fmt.Fprintf(os.Stderr, "[WARN] unknown config key %q in %s\n", key, configPath)
	}
}
