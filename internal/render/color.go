package render

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/sadopc/gtree/internal/model"
	"github.com/sadopc/gtree/internal/options"
)

// Palette holds the per-entry-kind styles.
type Palette struct {
	Dir        lipgloss.Style
	Symlink    lipgloss.Style
	Executable lipgloss.Style
	Archive    lipgloss.Style
	Image      lipgloss.Style
}

// DefaultPalette mirrors classic tree coloring: bold blue directories,
// cyan symlinks, green executables, red archives, yellow images.
func DefaultPalette() *Palette {
	return &Palette{
		Dir:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
		Symlink:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Executable: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Archive:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Image:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

var archiveExts = map[string]bool{
	".tar": true, ".gz": true, ".xz": true, ".bz2": true, ".zip": true, ".7z": true,
}

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".bmp": true, ".gif": true, ".png": true,
}

// Colorize styles the display name according to the entry's kind. Entries
// with no recognizable kind come back unchanged.
func (p *Palette) Colorize(e model.Entry, text string) string {
	switch {
	case e.IsDir():
		return p.Dir.Render(text)
	case e.IsSymlink():
		return p.Symlink.Render(text)
	}
	if mode, ok := e.Mode(); ok && mode.IsRegular() && mode&0o111 != 0 {
		return p.Executable.Render(text)
	}
	switch ext := strings.ToLower(filepath.Ext(e.Name())); {
	case archiveExts[ext]:
		return p.Archive.Render(text)
	case imageExts[ext]:
		return p.Image.Render(text)
	}
	return text
}

// ColorEnabled resolves whether output is colorized: --no-color always
// wins, --color forces it on, otherwise color is used only when writing
// straight to a terminal.
func ColorEnabled(opts *options.Options, toStdout bool) bool {
	switch {
	case opts.NoColor:
		return false
	case opts.Color:
		return true
	default:
		return toStdout && term.IsTerminal(int(os.Stdout.Fd()))
	}
}
