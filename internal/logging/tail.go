package logging

import (
	"fmt"
	"os"
	"strings"
)

// Tail returns the last n lines of the log file. A missing file is an empty
// result, not an error. Rotation caps the active file at MaxSizeMB, so
// reading it whole is fine.
func Tail(logFile string, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read log file %s: %w", logFile, err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

// SizeBytes reports the active log file's size. present is false when the
// file does not exist yet.
func SizeBytes(logFile string) (size int64, present bool) {
	info, err := os.Stat(logFile)
	if err != nil {
		return 0, false
	}
	return info.Size(), true
}

// Clear truncates the active log file. Clearing an absent file is a no-op.
func Clear(logFile string) error {
	err := os.Truncate(logFile, 0)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear log file %s: %w", logFile, err)
	}
	return nil
}
