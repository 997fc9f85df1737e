package listing

import (
	"strconv"
	"strings"

	"github.com/sadopc/gtree/internal/model"
)

// rarSignature matches rar/unrar l output: the tool banner, archive
// headers, or the attribute column heading.
func rarSignature(line string) bool {
	for _, prefix := range []string{"RAR ", "UNRAR ", "Details: RAR"} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	if strings.Contains(line, "Attributes") {
		return true
	}
	// unzip also prints an "Archive:" header, so the rar variant is only
	// claimed when the archive name says so.
	if strings.HasPrefix(line, "Archive") && strings.HasSuffix(strings.TrimSpace(line), ".rar") {
		return true
	}
	return false
}

// rarAttr reports a rar attribute column, either the Unix style
// ("drwxr-xr-x", "-rw-r--r--") or the DOS style ("..A....", ".D.....").
func rarAttr(s string) bool {
	if len(s) < 5 {
		return false
	}
	for _, c := range s {
		switch c {
		case 'd', 'r', 'w', 'x', 'l', '-', '.', 'D', 'A', 'R', 'H', 'S', 'I':
		default:
			return false
		}
	}
	return true
}

// parseRarLine handles rar l data rows. The short table is attributes,
// size, date, time, name; the verbose one inserts packed, ratio and
// checksum columns so the name starts at the eighth field.
func parseRarLine(line string) (*model.VirtualEntry, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || separatorRow(trimmed) {
		return nil, false
	}

	fields := strings.Fields(trimmed)
	if len(fields) < 5 || !rarAttr(fields[0]) {
		return nil, false
	}
	if _, err := strconv.ParseInt(fields[1], 10, 64); err != nil {
		return nil, false
	}

	isDir := strings.HasPrefix(fields[0], "d") || strings.ContainsRune(fields[0], 'D')
	entry := &model.VirtualEntry{Dir: isDir}
	if size, err := strconv.ParseInt(fields[1], 10, 64); err == nil && !isDir {
		entry.ByteSize = size
		entry.HasSize = true
	}

	nameStart := 4
	if len(fields) >= 8 {
		nameStart = 7
	}
	entry.FullPath = strings.Join(fields[nameStart:], " ")
	return entry, entry.FullPath != ""
}
