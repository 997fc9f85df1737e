package listing

import (
	"strings"

	"github.com/sadopc/gtree/internal/model"
)

// parseSimpleLine treats the whole line as a path; a trailing slash marks
// a directory. This is the fallback grammar when nothing else matches.
func parseSimpleLine(line string) (*model.VirtualEntry, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, false
	}

	isDir := strings.HasSuffix(trimmed, "/")
	entry := &model.VirtualEntry{
		FullPath: strings.TrimSuffix(trimmed, "/"),
		Dir:      isDir,
	}
	return entry, entry.FullPath != ""
}
