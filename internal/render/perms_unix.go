//go:build !windows

package render

import (
	"fmt"
	"io/fs"
)

// formatPermissions renders the bracketed 10-character permission string.
func formatPermissions(mode fs.FileMode, isDir bool) (string, bool) {
	kind := byte('-')
	if isDir {
		kind = 'd'
	}
	return fmt.Sprintf("[%c%s%s%s]",
		kind,
		modeTriplet(mode>>6),
		modeTriplet(mode>>3),
		modeTriplet(mode)), true
}
