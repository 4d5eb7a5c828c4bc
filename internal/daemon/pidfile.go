// Package daemon owns the long-lived reconcile loop and the PID-file based
// single-instance contract around it.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog/log"
)

const pidFileName = "docknet.pid"

// pidLocations returns candidate PID file paths in preference order. An
// explicit override wins outright; otherwise the standard system location
// is tried first, then per-user fallbacks for unprivileged runs.
func pidLocations(override string) []string {
	if override != "" {
		return []string{override}
	}

	locations := []string{filepath.Join("/var/run", pidFileName)}

	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		locations = append(locations, filepath.Join(runtimeDir, pidFileName))
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".docknet", pidFileName))
	}

	return append(locations, filepath.Join(os.TempDir(), pidFileName))
}

// WritePidFile records the current process ID in the first writable
// candidate location and returns the path used.
func WritePidFile(override string) (string, error) {
	pid := os.Getpid()

	for _, location := range pidLocations(override) {
		if err := os.MkdirAll(filepath.Dir(location), 0700); err != nil {
			continue
		}
		if err := os.WriteFile(location, []byte(fmt.Sprintf("%d", pid)), 0600); err == nil {
			log.Debug().Str("pid_file", location).Int("pid", pid).Msg("Created PID file")
			return location, nil
		}
	}

	return "", fmt.Errorf("failed to create PID file in any location")
}

// FindPidFile returns the path of an existing PID file, or "" when no
// candidate location has one.
func FindPidFile(override string) string {
	for _, location := range pidLocations(override) {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// ReadPid parses the process ID recorded at path.
func ReadPid(path string) (int, error) {
	pidBytes, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read PID file: %w", err)
	}

	var pid int
	if _, err := fmt.Sscanf(string(pidBytes), "%d", &pid); err != nil {
		return 0, fmt.Errorf("failed to parse PID: %w", err)
	}

	return pid, nil
}

// RemovePidFile removes the PID file, logging rather than failing.
func RemovePidFile(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil {
		log.Warn().Err(err).Str("pid_file", path).Msg("Failed to remove PID file")
	} else {
		log.Debug().Str("pid_file", path).Msg("Removed PID file")
	}
}

// ProcessAlive reports whether pid names a live process. Signal 0 performs
// the liveness check without delivering anything.
func ProcessAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	return process.Signal(syscall.Signal(0)) == nil
}

// RunningPid returns the recorded daemon PID when it names a live process.
// A PID file left behind by a dead process is stale: it is removed here and
// reported as not running.
func RunningPid(override string) (int, bool) {
	pidFile := FindPidFile(override)
	if pidFile == "" {
		return 0, false
	}

	pid, err := ReadPid(pidFile)
	if err != nil {
		log.Warn().Err(err).Str("pid_file", pidFile).Msg("Unreadable PID file - removing")
		RemovePidFile(pidFile)
		return 0, false
	}

	if !ProcessAlive(pid) {
		log.Warn().Int("pid", pid).Str("pid_file", pidFile).Msg("Stale PID file - removing")
		RemovePidFile(pidFile)
		return 0, false
	}

	return pid, true
}
