package format

import (
	"fmt"
	"strings"
	"time"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FileSize renders a byte count as a human readable string. Sizes below
// 1 KB keep the exact byte count; everything else gets two decimals in the
// largest unit that keeps the value under 1024, capped at TB.
func FileSize(bytes uint64) string {
	size := float64(bytes)
	unit := 0

	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}

	if unit == 0 {
		return fmt.Sprintf("%d %s", bytes, sizeUnits[unit])
	}
	return fmt.Sprintf("%.2f %s", size, sizeUnits[unit])
}

// IsValidURL reports whether s looks like a web URL. Only the scheme
// prefix is checked.
func IsValidURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Timestamp returns the current UTC time as "YYYY-MM-DD HH:MM:SS UTC".
func Timestamp() string {
	return time.Now().UTC().Format("2006-01-02 15:04:05") + " UTC"
}
