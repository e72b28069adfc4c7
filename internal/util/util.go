package util

import (
	"fmt"
	"strings"
	"unicode"
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

// NormalizeDigits strips everything but ASCII digits from s and truncates
// the result to maxLen runes. Used to sanitize one-time codes as typed.
func NormalizeDigits(s string, maxLen int) string {
	var digits strings.Builder
	digits.Grow(maxLen)

	for _, r := range s {
		if !unicode.IsDigit(r) || r > '9' {
			continue
		}
		if digits.Len() >= maxLen {
			break
		}
		digits.WriteRune(r)
	}

	return digits.String()
}
