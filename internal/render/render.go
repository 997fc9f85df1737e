// Package render turns entries into output lines: box-drawing indentation,
// connector glyphs, names and the optional per-entry decorations.
package render

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/sadopc/gtree/internal/model"
	"github.com/sadopc/gtree/internal/options"
	"github.com/sadopc/gtree/internal/util"
)

// Glyph sets for the indentation columns and connectors.
const (
	unicodeVertical = "│   "
	asciiVertical   = "|   "
	indentBlank     = "    "

	unicodeLast = "└── "
	unicodeMid  = "├── "
	asciiLast   = "+---"
	asciiMid    = "\\---"
)

const modDateLayout = "2006-01-02 15:04:05"

// Line formats one entry. indent holds the "was last sibling" flag for each
// ancestor level, root-most first; isLast marks the entry's own position in
// its sibling group.
func Line(e model.Entry, opts *options.Options, indent []bool, isLast bool, color *Palette) string {
	var b strings.Builder

	if opts.Permissions {
		if perms, ok := permissionString(e); ok {
			b.WriteString(perms)
			b.WriteByte(' ')
		}
	}

	if !opts.NoIndent {
		for _, ancestorLast := range indent {
			if ancestorLast {
				b.WriteString(indentBlank)
			} else if opts.ASCII {
				b.WriteString(asciiVertical)
			} else {
				b.WriteString(unicodeVertical)
			}
		}
		switch {
		case isLast && opts.ASCII:
			b.WriteString(asciiLast)
		case isLast:
			b.WriteString(unicodeLast)
		case opts.ASCII:
			b.WriteString(asciiMid)
		default:
			b.WriteString(unicodeMid)
		}
	}

	name := e.Name()
	if opts.FullPath {
		name = e.Path()
	}
	if color != nil {
		name = color.Colorize(e, name)
	}
	b.WriteString(name)

	if opts.Classify {
		b.WriteString(classifySuffix(e))
	}

	if !e.IsDir() && (opts.PrintSize || opts.HumanReadable) {
		if size, ok := e.Size(); ok {
			if opts.HumanReadable {
				fmt.Fprintf(&b, " (%s)", util.FormatSize(size))
			} else {
				fmt.Fprintf(&b, " (%5dB)", size)
			}
		}
	}

	if opts.PrintModDate {
		if mtime, ok := e.ModTime(); ok {
			fmt.Fprintf(&b, " [%s]", mtime.Format(modDateLayout))
		}
	}

	return b.String()
}

// Summary renders the trailing report line.
func Summary(dirs, files int) string {
	return fmt.Sprintf("%d directories, %d files", dirs, files)
}

// classifySuffix returns the indicator appended under -F: "/" for
// directories, "@" for symlinks, "*" for executable regular files.
func classifySuffix(e model.Entry) string {
	switch {
	case e.IsDir():
		return "/"
	case e.IsSymlink():
		return "@"
	}
	if mode, ok := e.Mode(); ok && mode.IsRegular() && mode&0o111 != 0 {
		return "*"
	}
	return ""
}

func permissionString(e model.Entry) (string, bool) {
	mode, ok := e.Mode()
	if !ok {
		return "", false
	}
	return formatPermissions(mode, e.IsDir())
}

// modeTriplet renders one rwx group from the low three bits.
func modeTriplet(bits fs.FileMode) string {
	var s [3]byte
	s[0], s[1], s[2] = '-', '-', '-'
	if bits&0o4 != 0 {
		s[0] = 'r'
	}
	if bits&0o2 != 0 {
		s[1] = 'w'
	}
	if bits&0o1 != 0 {
		s[2] = 'x'
	}
	return string(s[:])
}
