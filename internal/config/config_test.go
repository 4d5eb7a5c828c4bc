package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain name unchanged", "web", "web"},
		{"allowed punctuation kept", "my_app-1.2", "my_app-1.2"},
		{"spaces stripped", "my app", "myapp"},
		{"shell metacharacters stripped", "web;rm -rf /", "webrm-rf"},
		{"slashes stripped", "a/b/c", "abc"},
		{"unicode stripped", "wéb→lan", "wblan"},
		{"everything stripped", "!@#$%", ""},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeName(tt.input))
		})
	}
}

func TestSettings_Clamped(t *testing.T) {
	tests := []struct {
		name string
		in   Settings
		want Settings
	}{
		{
			name: "in-range values untouched",
			in:   Settings{LogLevel: "debug", RetryAttempts: 3, RetryDelaySeconds: 5},
			want: Settings{LogLevel: "debug", RetryAttempts: 3, RetryDelaySeconds: 5},
		},
		{
			name: "attempts clamped down",
			in:   Settings{LogLevel: "info", RetryAttempts: 15, RetryDelaySeconds: 5},
			want: Settings{LogLevel: "info", RetryAttempts: 10, RetryDelaySeconds: 5},
		},
		{
			name: "attempts clamped up",
			in:   Settings{LogLevel: "info", RetryAttempts: 0, RetryDelaySeconds: 5},
			want: Settings{LogLevel: "info", RetryAttempts: 1, RetryDelaySeconds: 5},
		},
		{
			name: "delay clamped up",
			in:   Settings{LogLevel: "info", RetryAttempts: 3, RetryDelaySeconds: 0},
			want: Settings{LogLevel: "info", RetryAttempts: 3, RetryDelaySeconds: 1},
		},
		{
			name: "delay clamped down",
			in:   Settings{LogLevel: "info", RetryAttempts: 3, RetryDelaySeconds: 120},
			want: Settings{LogLevel: "info", RetryAttempts: 3, RetryDelaySeconds: 30},
		},
		{
			name: "unknown level falls back to info",
			in:   Settings{LogLevel: "verbose", RetryAttempts: 3, RetryDelaySeconds: 5},
			want: Settings{LogLevel: "info", RetryAttempts: 3, RetryDelaySeconds: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Clamped())
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, SchemaVersion, cfg.Version)
	assert.NotNil(t, cfg.Containers)
	assert.Empty(t, cfg.Containers)
	assert.Equal(t, "info", cfg.Settings.LogLevel)
	assert.Equal(t, 3, cfg.Settings.RetryAttempts)
	assert.Equal(t, 5, cfg.Settings.RetryDelaySeconds)
}

func TestConfig_Assignment_AbsentMeansDisabled(t *testing.T) {
	cfg := Default()

	a, ok := cfg.Assignment("ghost")
	assert.False(t, ok)
	assert.False(t, a.Enabled)
	assert.Empty(t, a.Networks)
}

func TestSettings_RetryDelay(t *testing.T) {
	s := Settings{RetryDelaySeconds: 5}
	assert.Equal(t, 5*time.Second, s.RetryDelay())
}
