// Package config manages the rubiks settings file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultShuffleLength is used when the settings file does not set one.
const DefaultShuffleLength = 25

// Settings represents the persistent CLI settings.
type Settings struct {
	DBPath        string  `json:"db_path,omitempty"`
	ShuffleLength int     `json:"shuffle_length,omitempty"`
	NoColor       bool    `json:"no_color,omitempty"`
	LastSeed      *uint64 `json:"last_seed,omitempty"`
	LastCount     int     `json:"last_count,omitempty"`
}

// File manages the settings file.
type File struct {
	path     string
	settings Settings
}

// Dir returns ~/.rubiks. The directory is created by whoever first writes
// into it.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".rubiks"), nil
}

// DefaultPath returns the default settings file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Open loads the settings file at path. A missing file yields default
// settings and is created on the first Save.
func Open(path string) (*File, error) {
	f := &File{path: path}

	if err := f.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return f, nil
}

// OpenDefault opens the settings file at the default path.
func OpenDefault() (*File, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Load loads the settings from disk.
func (f *File) Load() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return err
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to parse %s: %w", f.path, err)
	}
	f.settings = s
	return nil
}

// Save writes the settings to disk.
func (f *File) Save() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(f.settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// Path returns the settings file path.
func (f *File) Path() string {
	return f.path
}

// Settings returns the current settings.
func (f *File) Settings() Settings {
	return f.settings
}

// DBPath returns the configured database path, or "" for the default.
func (f *File) DBPath() string {
	return f.settings.DBPath
}

// ShuffleLength returns the configured shuffle length.
func (f *File) ShuffleLength() int {
	if f.settings.ShuffleLength <= 0 {
		return DefaultShuffleLength
	}
	return f.settings.ShuffleLength
}

// NoColor reports whether coloured output is disabled.
func (f *File) NoColor() bool {
	return f.settings.NoColor
}

// LastShuffle returns the seed and move count of the most recent shuffle.
func (f *File) LastShuffle() (seed uint64, count int, ok bool) {
	if f.settings.LastSeed == nil {
		return 0, 0, false
	}
	return *f.settings.LastSeed, f.settings.LastCount, true
}

// SetLastShuffle records the seed and move count of the most recent shuffle.
func (f *File) SetLastShuffle(seed uint64, count int) error {
	f.settings.LastSeed = &seed
	f.settings.LastCount = count
	return f.Save()
}
