//go:build windows

package render

import "io/fs"

// Permission strings have no meaning on Windows; the renderer simply omits
// the column.
func formatPermissions(_ fs.FileMode, _ bool) (string, bool) {
	return "", false
}
