// Package listing turns the textual output of archive listing tools
// (tar, zip, 7-zip, rar) or a plain newline list of paths into a virtual
// tree that the traversal engine can walk like a real directory.
package listing

import (
	"bufio"
	"io"
	"strings"

	"github.com/sadopc/gtree/internal/model"
)

// detectWindow is how many non-empty lines the format sniffer inspects.
const detectWindow = 10

// Format identifies one supported listing dialect.
type Format int

const (
	FormatSimple Format = iota
	FormatTar
	FormatZip
	FormatSevenZip
	FormatRar
)

func (f Format) String() string {
	switch f {
	case FormatTar:
		return "tar"
	case FormatZip:
		return "zip"
	case FormatSevenZip:
		return "7z"
	case FormatRar:
		return "rar"
	default:
		return "simple"
	}
}

// grammar couples one format's detection signature with its line parser.
// Detection runs over the first detectWindow non-empty lines; the first
// grammar in table order with at least one signature hit wins.
type grammar struct {
	format    Format
	signature func(line string) bool
	parseLine func(line string) (*model.VirtualEntry, bool)
}

// Ordered by specificity: rar and 7-zip banners are unmistakable, zip
// headers are next, the tar permission-string heuristic is the loosest.
var grammars = []grammar{
	{FormatRar, rarSignature, parseRarLine},
	{FormatSevenZip, sevenZipSignature, parseSevenZipLine},
	{FormatZip, zipSignature, parseZipLine},
	{FormatTar, tarSignature, parseTarLine},
}

// ReadLines collects trimmed, non-empty lines from r.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimRight(sc.Text(), "\r\n"); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}

// Detect sniffs the listing format from the first few non-empty lines.
func Detect(lines []string) Format {
	window := lines
	if len(window) > detectWindow {
		window = window[:detectWindow]
	}
	for _, g := range grammars {
		for _, line := range window {
			if g.signature(strings.TrimSpace(line)) {
				return g.format
			}
		}
	}
	return FormatSimple
}

// Parse converts raw listing lines into a virtual tree. Lines that do not
// match the detected grammar are dropped; worst case the tree is empty.
func Parse(lines []string) *model.VirtualTree {
	return ParseAs(lines, Detect(lines))
}

// ParseAs parses the lines with a fixed grammar, bypassing detection.
func ParseAs(lines []string, f Format) *model.VirtualTree {
	parseLine := parseSimpleLine
	for _, g := range grammars {
		if g.format == f {
			parseLine = g.parseLine
			break
		}
	}

	tree := model.NewVirtualTree()
	for _, line := range lines {
		entry, ok := parseLine(line)
		if !ok {
			continue
		}
		entry.FullPath = model.NormalizePath(entry.FullPath)
		if entry.FullPath == "" {
			continue
		}
		tree.Insert(entry)
	}
	return tree
}

// separatorRow reports a table rule like "----- ------ ----".
func separatorRow(line string) bool {
	if line == "" {
		return false
	}
	for _, c := range line {
		if c != '-' && c != ' ' {
			return false
		}
	}
	return strings.Contains(line, "-")
}
