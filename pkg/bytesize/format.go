// Package bytesize provides human-friendly byte size formatting.
package bytesize

import "fmt"

// Binary prefixes (1024-based), largest first so Format picks the widest
// unit that keeps the value at or above 1.
var units = []struct {
	suffix string
	size   int64
}{
	{"TB", 1 << 40},
	{"GB", 1 << 30},
	{"MB", 1 << 20},
	{"KB", 1 << 10},
}

// Format renders n as a human-friendly size string.
//
// Examples:
//
//	Format(512)        // "512B"
//	Format(102400)     // "100.0KB"
//	Format(1610612736) // "1.5GB"
func Format(n int64) string {
	for _, u := range units {
		if n >= u.size {
			return fmt.Sprintf("%.1f%s", float64(n)/float64(u.size), u.suffix)
		}
	}

	return fmt.Sprintf("%dB", n)
}
