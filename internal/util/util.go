package util

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// MegabytesToBytes converts a size configured in MB.
func MegabytesToBytes(mb int) int64 {
	return int64(mb) * 1024 * 1024
}

// FileExtension returns the lower-cased extension of name including the dot, e.g. ".png".
func FileExtension(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// HasAllowedExtension reports whether name ends in one of allowed. Comparison ignores case.
func HasAllowedExtension(name string, allowed []string) bool {
	ext := FileExtension(name)
	if ext == "" {
		return false
	}

	return slices.ContainsFunc(allowed, func(candidate string) bool {
		return strings.EqualFold(candidate, ext)
	})
}
