// Package options holds the per-invocation configuration resolved from the
// command line before traversal starts. An Options value is never mutated
// once the walk begins.
package options

import (
	"fmt"
	"path"
	"strings"
)

// Options configures a single tree run.
type Options struct {
	AllFiles      bool // include hidden entries
	Level         uint // max depth; 0 = unlimited
	LevelSet      bool
	DirOnly       bool
	NoIndent      bool
	PrintSize     bool
	HumanReadable bool
	FullPath      bool
	Color         bool // force colorization on
	NoColor       bool // force colorization off (wins over Color)
	ASCII         bool
	SortByTime    bool
	Natural       bool // natural (version-style) name comparison
	Reverse       bool
	PrintModDate  bool
	OutputFile    string
	FileLimit     uint64 // do not descend dirs with more raw entries; 0 = unlimited
	FileLimitSet  bool
	DirsFirst     bool
	Classify      bool
	NoReport      bool
	Permissions   bool
	FromFile      bool
	JSON          bool

	Pattern *Glob // include pattern, files only
	Exclude *Glob // exclude pattern, checked before include

	// Remote SFTP connection settings, used when the path argument is a
	// user@host:path target.
	SSHPort  int
	SSHBatch bool
}

// Glob is a validated wild-card pattern. The pattern may carry several
// '|'-separated alternatives; a name matches if any alternative does.
type Glob struct {
	raw  string
	alts []string
}

// CompileGlob validates pattern and returns the compiled form. An invalid
// pattern is a fatal configuration error and must be rejected before any
// traversal output is produced.
func CompileGlob(pattern string) (*Glob, error) {
	alts := strings.Split(pattern, "|")
	for i, alt := range alts {
		alt = normalizeSlashes(alt)
		if _, err := path.Match(alt, ""); err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", alt, err)
		}
		alts[i] = alt
	}
	return &Glob{raw: pattern, alts: alts}, nil
}

// Match reports whether name matches any alternative of the pattern.
func (g *Glob) Match(name string) bool {
	if g == nil {
		return false
	}
	name = normalizeSlashes(name)
	for _, alt := range g.alts {
		if ok, _ := path.Match(alt, name); ok {
			return true
		}
	}
	return false
}

// String returns the pattern as supplied by the user.
func (g *Glob) String() string {
	if g == nil {
		return ""
	}
	return g.raw
}

func normalizeSlashes(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `\`, "/"))
}

// MaxDepth returns the depth bound and whether one is set.
func (o *Options) MaxDepth() (uint, bool) {
	return o.Level, o.LevelSet
}
