package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"ado/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	// configFileName is the name of the configuration file.
	configFileName = "config.yaml"
	// userConfigDir is the subdirectory under home for ado configuration.
	userConfigDir = ".config/ado"
)

// Store provides thread-safe access to the configuration file.
// It handles loading, saving, and merging of the config.yaml document.
type Store struct {
	mu         sync.RWMutex
	configPath string
}

// NewStore creates a new Store instance using the default config path.
// The default path is ~/.config/ado/config.yaml.
func NewStore() (*Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine home directory: %w", err)
	}

	return &Store{
		configPath: filepath.Join(homeDir, userConfigDir),
	}, nil
}

// NewStoreWithPath creates a new Store instance with a custom config
// directory. This is useful for testing or when using a non-default
// configuration directory.
func NewStoreWithPath(configPath string) *Store {
	return &Store{
		configPath: configPath,
	}
}

// FilePath returns the full path to the config.yaml file.
func (s *Store) FilePath() string {
	return filepath.Join(s.configPath, configFileName)
}

// Exists reports whether the configuration file is present on disk.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.FilePath())
	return err == nil
}

// Read reads and parses the configuration file.
// A missing file is not an error; it reads as an empty document.
func (s *Store) Read() (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.readLocked()
}

func (s *Store) readLocked() (Document, error) {
	data, err := os.ReadFile(s.FilePath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Document{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", s.FilePath(), err)
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

// Write serializes the full document to the configuration file,
// creating the configuration directory if it doesn't exist.
// The document is always written whole, never field by field, so an
// interrupted command leaves the previously committed file intact.
func (s *Store) Write(doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeLocked(doc)
}

func (s *Store) writeLocked(doc Document) error {
	if err := os.MkdirAll(s.configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(s.FilePath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	logging.Debug("ConfigStore", "Wrote configuration to %s", s.FilePath())
	return nil
}

// Update deep-merges partial into the persisted document and writes the
// result back. Keys not mentioned in partial are preserved verbatim.
func (s *Store) Update(partial Document) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.readLocked()
	if err != nil {
		return nil, err
	}

	merged := Merge(existing, partial)
	if err := s.writeLocked(merged); err != nil {
		return nil, err
	}
	return merged, nil
}
