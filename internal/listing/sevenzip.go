package listing

import (
	"strconv"
	"strings"

	"github.com/sadopc/gtree/internal/model"
)

// sevenZipSignature matches 7z l output: the tool banner, archive headers,
// or rows carrying the five-character attribute column.
func sevenZipSignature(line string) bool {
	for _, prefix := range []string{"7-Zip", "Listing archive:", "Path =", "Type ="} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return strings.Contains(line, " D....") || strings.Contains(line, "....A")
}

// sevenZipAttr reports a 7z attribute column like "D...." or "....A".
func sevenZipAttr(s string) bool {
	if len(s) != 5 {
		return false
	}
	for _, c := range s {
		switch c {
		case 'D', 'R', 'H', 'S', 'A', '.':
		default:
			return false
		}
	}
	return true
}

// parseSevenZipLine handles 7z l data rows: date, time, attributes, size,
// optional compressed size, then the name (which may contain spaces).
func parseSevenZipLine(line string) (*model.VirtualEntry, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || separatorRow(trimmed) {
		return nil, false
	}

	fields := strings.Fields(trimmed)
	if len(fields) < 5 || !sevenZipAttr(fields[2]) {
		return nil, false
	}

	isDir := fields[2][0] == 'D'
	entry := &model.VirtualEntry{Dir: isDir}
	if size, err := strconv.ParseInt(fields[3], 10, 64); err == nil && !isDir {
		entry.ByteSize = size
		entry.HasSize = true
	}

	// The compressed-size column is optional; when the fifth field is
	// numeric the name starts at the sixth.
	nameStart := 4
	if len(fields) >= 6 {
		if _, err := strconv.ParseInt(fields[4], 10, 64); err == nil {
			nameStart = 5
		}
	}
	entry.FullPath = strings.Join(fields[nameStart:], " ")
	return entry, entry.FullPath != ""
}
