package listing

import (
	"strconv"
	"strings"

	"github.com/sadopc/gtree/internal/model"
)

// zipSignature matches unzip -l / -v output: the archive header, a table
// rule, or a wide space-and-colon delimited data row. Rows opening with a
// Unix permission string are left for the tar grammar.
func zipSignature(line string) bool {
	if strings.HasPrefix(line, "Archive:") {
		return true
	}
	if separatorRow(line) {
		return true
	}
	for _, p := range tarPermPrefixes {
		if strings.HasPrefix(line, p) {
			return false
		}
	}
	return len(line) >= 40 && len(strings.Fields(line)) >= 4 && strings.Contains(line, ":")
}

// parseZipLine handles both the short unzip -l table (length, date, time,
// name) and the verbose unzip -v one (length, method, size, cmpr, date,
// time, crc, name). Directories carry a trailing slash on the path.
func parseZipLine(line string) (*model.VirtualEntry, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "Archive:") || separatorRow(trimmed) {
		return nil, false
	}

	fields := strings.Fields(trimmed)
	if len(fields) < 4 {
		return nil, false
	}

	size, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		// Header row ("Length Date Time Name") or the totals footer.
		return nil, false
	}

	var path string
	if len(fields) >= 8 {
		// Verbose table: the name is the last column.
		path = fields[len(fields)-1]
	} else {
		// Short table: the name starts at the fourth column and may
		// contain spaces.
		path = strings.Join(fields[3:], " ")
	}

	isDir := strings.HasSuffix(path, "/")
	entry := &model.VirtualEntry{FullPath: strings.TrimSuffix(path, "/"), Dir: isDir}
	if !isDir {
		entry.ByteSize = size
		entry.HasSize = true
	}
	return entry, entry.FullPath != ""
}
