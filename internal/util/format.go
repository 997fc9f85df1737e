package util

import "fmt"

// FormatSize returns a human-readable size string: the largest unit under
// which the value stays below 1024, one decimal place, except exact byte
// counts which render as integers.
func FormatSize(bytes int64) string {
	if bytes < 0 {
		return "0 B"
	}

	const (
		_          = iota
		kB float64 = 1 << (10 * iota)
		mB
		gB
		tB
		pB
	)

	b := float64(bytes)
	switch {
	case b >= pB:
		return fmt.Sprintf("%.1f PB", b/pB)
	case b >= tB:
		return fmt.Sprintf("%.1f TB", b/tB)
	case b >= gB:
		return fmt.Sprintf("%.1f GB", b/gB)
	case b >= mB:
		return fmt.Sprintf("%.1f MB", b/mB)
	case b >= kB:
		return fmt.Sprintf("%.1f KB", b/kB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
