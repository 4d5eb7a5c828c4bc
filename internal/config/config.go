// Package config owns the persisted container-to-networks assignment
// document and the ambient process settings around it.
package config

import (
	"regexp"
	"time"
)

// SchemaVersion tags documents written by this build. Informational only.
const SchemaVersion = "1.0"

// Settings bounds. Persisted values outside these ranges are clamped on
// every load and save, regardless of what is on disk.
const (
	MinRetryAttempts     = 1
	MaxRetryAttempts     = 10
	MinRetryDelaySeconds = 1
	MaxRetryDelaySeconds = 30

	DefaultLogLevel          = "info"
	DefaultRetryAttempts     = 3
	DefaultRetryDelaySeconds = 5
)

// Config is the persisted document: which containers get which additional
// networks, plus the global daemon settings.
type Config struct {
	Version    string                `json:"version"`
	Containers map[string]Assignment `json:"containers"`
	Settings   Settings              `json:"settings"`
}

// Assignment is one container's desired additional networks.
type Assignment struct {
	Networks []string `json:"networks"`
	Enabled  bool     `json:"enabled"`
}

// Settings are the global knobs consumed by the reconciler and logger.
type Settings struct {
	LogLevel          string `json:"log_level"`
	RetryAttempts     int    `json:"retry_attempts"`
	RetryDelaySeconds int    `json:"retry_delay_seconds"`
}

// Default returns the documented fallback document: no assignments, info
// logging, three connect attempts five seconds apart.
func Default() Config {
	return Config{
		Version:    SchemaVersion,
		Containers: map[string]Assignment{},
		Settings: Settings{
			LogLevel:          DefaultLogLevel,
			RetryAttempts:     DefaultRetryAttempts,
			RetryDelaySeconds: DefaultRetryDelaySeconds,
		},
	}
}

// Assignment looks up a container's entry. Absence is equivalent to a
// disabled entry with no networks.
func (c Config) Assignment(name string) (Assignment, bool) {
	a, ok := c.Containers[name]
	return a, ok
}

// RetryDelay returns the configured pause between connect attempts.
func (s Settings) RetryDelay() time.Duration {
	return time.Duration(s.RetryDelaySeconds) * time.Second
}

// Clamped forces every setting into its documented range. Unknown log
// levels fall back to info.
func (s Settings) Clamped() Settings {
	out := s
	out.RetryAttempts = clampInt(out.RetryAttempts, MinRetryAttempts, MaxRetryAttempts)
	out.RetryDelaySeconds = clampInt(out.RetryDelaySeconds, MinRetryDelaySeconds, MaxRetryDelaySeconds)
	switch out.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		out.LogLevel = DefaultLogLevel
	}
	return out
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

var nameSanitizer = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeName strips every character outside [A-Za-z0-9_.-]. Callers drop
// names that sanitize to the empty string.
func SanitizeName(name string) string {
	return nameSanitizer.ReplaceAllString(name, "")
}

// sanitizeAssignment cleans the network list of one assignment, dropping
// names that sanitize away entirely.
func sanitizeAssignment(a Assignment) Assignment {
	networks := make([]string, 0, len(a.Networks))
	for _, n := range a.Networks {
		if clean := SanitizeName(n); clean != "" {
			networks = append(networks, clean)
		}
	}
	a.Networks = networks
	return a
}

// normalize repairs a freshly parsed document so downstream code never sees
// a nil container map or out-of-range settings.
func (c Config) normalize() Config {
	if c.Containers == nil {
		c.Containers = map[string]Assignment{}
	}
	c.Settings = c.Settings.Clamped()
	return c
}
