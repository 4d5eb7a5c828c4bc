package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Store reads and writes the assignment document at a fixed path. It keeps
// no cache: every Load goes back to disk so edits take effect on the next
// reconciliation pass without a daemon restart.
type Store struct {
	path string
}

// NewStore creates a store for the document at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the document location.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether a document has been persisted yet.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load returns the persisted configuration. It never fails: a missing file,
// an unreadable file or a parse error all yield the documented default plus
// a warning log. Settings are clamped into range before returning.
func (s *Store) Load() Config {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", s.path).Msg("Config file unreadable, using defaults")
		} else {
			log.Warn().Str("path", s.path).Msg("Config file not found, using defaults")
		}
		return Default()
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("Config file is not valid JSON, using defaults")
		return Default()
	}

	return cfg.normalize()
}

// Save persists the configuration with owner-only permissions, creating the
// parent directory when needed. Settings are clamped before writing.
func (s *Store) Save(cfg Config) error {
	cfg = cfg.normalize()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", filepath.Dir(s.path), err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", s.path, err)
	}

	// WriteFile applies the mode only on create; an existing document left
	// wider by an external writer must still end up owner-only.
	if err := os.Chmod(s.path, 0600); err != nil {
		return fmt.Errorf("failed to set permissions on config file %s: %w", s.path, err)
	}

	log.Debug().Str("path", s.path).Int("containers", len(cfg.Containers)).Msg("Config saved")
	return nil
}

// SaveAssignment upserts one container's assignment. The container and
// network names are sanitized first; a container name that sanitizes to
// empty is rejected.
func (s *Store) SaveAssignment(name string, a Assignment) error {
	clean := SanitizeName(name)
	if clean == "" {
		return fmt.Errorf("container name %q is empty after sanitization", name)
	}

	cfg := s.Load()
	cfg.Containers[clean] = sanitizeAssignment(a)
	return s.Save(cfg)
}

// RemoveAssignment deletes a container's entry. Removing an absent entry is
// a no-op.
func (s *Store) RemoveAssignment(name string) error {
	cfg := s.Load()
	if _, ok := cfg.Containers[name]; !ok {
		return nil
	}
	delete(cfg.Containers, name)
	return s.Save(cfg)
}

// SetEnabled toggles a container's enabled flag without touching its
// network list.
func (s *Store) SetEnabled(name string, enabled bool) error {
	cfg := s.Load()
	a, ok := cfg.Containers[name]
	if !ok {
		return fmt.Errorf("no assignment for container %q", name)
	}
	a.Enabled = enabled
	cfg.Containers[name] = a
	return s.Save(cfg)
}

// SaveSettings replaces the global settings, clamped into range.
func (s *Store) SaveSettings(settings Settings) error {
	cfg := s.Load()
	cfg.Settings = settings.Clamped()
	return s.Save(cfg)
}

// Import validates and sanitizes a raw document and persists it when it has
// no fatal findings. Container names that sanitize to empty are dropped
// silently together with their assignment. The returned report carries the
// validation outcome either way.
func (s *Store) Import(raw []byte, runningContainers, networks []string) (ValidationReport, error) {
	report := Validate(raw, runningContainers, networks)
	if !report.Valid() {
		return report, fmt.Errorf("import rejected: %d fatal finding(s)", len(report.Fatal))
	}

	var incoming Config
	if err := json.Unmarshal(raw, &incoming); err != nil {
		// Validate accepted the document, so structural decode cannot fail here
		return report, fmt.Errorf("failed to decode config: %w", err)
	}

	clean := Config{
		Version:    incoming.Version,
		Containers: make(map[string]Assignment, len(incoming.Containers)),
		Settings:   incoming.Settings,
	}
	if clean.Version == "" {
		clean.Version = SchemaVersion
	}
	for name, a := range incoming.Containers {
		cleanName := SanitizeName(name)
		if cleanName == "" {
			continue
		}
		clean.Containers[cleanName] = sanitizeAssignment(a)
	}

	if err := s.Save(clean); err != nil {
		return report, err
	}
	return report, nil
}

// Export returns the persisted document verbatim. When nothing has been
// persisted yet it returns the canonical form of the default document.
func (s *Store) Export() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return json.MarshalIndent(Default(), "", "  ")
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", s.path, err)
	}
	return data, nil
}
