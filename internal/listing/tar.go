package listing

import (
	"strconv"
	"strings"

	"github.com/sadopc/gtree/internal/model"
)

var tarPermPrefixes = []string{"drwx", "-rw", "lrwx", "-rwx"}

// tarSignature matches tar -tvf rows: a Unix permission string followed by
// at least five more whitespace-separated fields.
func tarSignature(line string) bool {
	if len(strings.Fields(line)) < 6 {
		return false
	}
	for _, p := range tarPermPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// parseTarLine handles both tar -tvf rows (permission string, owner, size,
// date, time, path) and tar -tf rows (bare path, trailing slash on dirs).
func parseTarLine(line string) (*model.VirtualEntry, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, false
	}

	switch trimmed[0] {
	case 'd', '-', 'l':
		return parseTarVerboseLine(trimmed)
	default:
		return parseSimpleLine(trimmed)
	}
}

func parseTarVerboseLine(line string) (*model.VirtualEntry, bool) {
	fields := strings.Fields(line)
	if len(fields) < 6 {
		return nil, false
	}

	perms := fields[0]
	isDir := strings.HasPrefix(perms, "d")

	entry := &model.VirtualEntry{Dir: isDir}
	if size, err := strconv.ParseInt(fields[2], 10, 64); err == nil && !isDir {
		entry.ByteSize = size
		entry.HasSize = true
	}

	// The path is the text after the last space.
	idx := strings.LastIndex(line, " ")
	if idx < 0 || idx+1 >= len(line) {
		return nil, false
	}
	entry.FullPath = strings.TrimSuffix(line[idx+1:], "/")
	return entry, entry.FullPath != ""
}
