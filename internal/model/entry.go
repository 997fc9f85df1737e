// Package model defines the tree entries the traversal engine walks over:
// real filesystem entries with lazily fetched metadata, and virtual entries
// synthesized from archive listings.
package model

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Entry is one filesystem object or its listing equivalent. Metadata
// accessors return ok=false when the value is unknown (virtual entries)
// or could not be fetched.
type Entry interface {
	Name() string
	// Path returns the entry's path from the traversal root, including
	// the root itself.
	Path() string
	IsDir() bool
	IsSymlink() bool
	Size() (int64, bool)
	ModTime() (time.Time, bool)
	Mode() (fs.FileMode, bool)
}

// FSEntry is a real directory entry. Stat metadata is fetched on first use
// and cached, so trees listed without -s/-t/-D/-p never stat their files.
type FSEntry struct {
	dir       string
	de        os.DirEntry
	info      os.FileInfo
	statTried bool
}

// NewFSEntry wraps one os.DirEntry found in dir.
func NewFSEntry(dir string, de os.DirEntry) *FSEntry {
	return &FSEntry{dir: dir, de: de}
}

func (e *FSEntry) Name() string { return e.de.Name() }

func (e *FSEntry) Path() string { return filepath.Join(e.dir, e.de.Name()) }

// IsDir reports whether the entry itself is a directory. Symlinks are never
// treated as directories, so a link to an ancestor cannot recurse.
func (e *FSEntry) IsDir() bool { return e.de.IsDir() }

func (e *FSEntry) IsSymlink() bool { return e.de.Type()&fs.ModeSymlink != 0 }

func (e *FSEntry) stat() os.FileInfo {
	if !e.statTried {
		e.statTried = true
		e.info, _ = e.de.Info()
	}
	return e.info
}

func (e *FSEntry) Size() (int64, bool) {
	info := e.stat()
	if info == nil {
		return 0, false
	}
	return info.Size(), true
}

func (e *FSEntry) ModTime() (time.Time, bool) {
	info := e.stat()
	if info == nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func (e *FSEntry) Mode() (fs.FileMode, bool) {
	info := e.stat()
	if info == nil {
		return 0, false
	}
	return info.Mode(), true
}

// InfoEntry adapts a plain os.FileInfo (as returned by SFTP ReadDir) to
// Entry. All metadata is already present, nothing is fetched lazily.
type InfoEntry struct {
	dir  string
	info os.FileInfo
}

// NewInfoEntry wraps info found in dir.
func NewInfoEntry(dir string, info os.FileInfo) *InfoEntry {
	return &InfoEntry{dir: dir, info: info}
}

func (e *InfoEntry) Name() string { return e.info.Name() }

func (e *InfoEntry) Path() string {
	// Remote paths always use forward slashes.
	if e.dir == "" || e.dir == "/" {
		return e.dir + e.info.Name()
	}
	return e.dir + "/" + e.info.Name()
}

func (e *InfoEntry) IsDir() bool { return e.info.IsDir() }

func (e *InfoEntry) IsSymlink() bool { return e.info.Mode()&fs.ModeSymlink != 0 }

func (e *InfoEntry) Size() (int64, bool) { return e.info.Size(), true }

func (e *InfoEntry) ModTime() (time.Time, bool) { return e.info.ModTime(), true }

func (e *InfoEntry) Mode() (fs.FileMode, bool) { return e.info.Mode(), true }

// VirtualEntry is an entry parsed or synthesized from a textual listing.
// It carries no mtime and no permission bits.
type VirtualEntry struct {
	// FullPath is the normalized slash-separated path.
	FullPath string
	Dir      bool
	// ByteSize is valid only when HasSize is true.
	ByteSize int64
	HasSize  bool
	// Synthesized marks ancestor directories that were not explicitly
	// listed. A later explicit line replaces a synthesized entry.
	Synthesized bool
}

func (e *VirtualEntry) Name() string {
	if i := lastSlash(e.FullPath); i >= 0 {
		return e.FullPath[i+1:]
	}
	return e.FullPath
}

func (e *VirtualEntry) Path() string { return e.FullPath }

func (e *VirtualEntry) IsDir() bool { return e.Dir }

func (e *VirtualEntry) IsSymlink() bool { return false }

func (e *VirtualEntry) Size() (int64, bool) { return e.ByteSize, e.HasSize }

func (e *VirtualEntry) ModTime() (time.Time, bool) { return time.Time{}, false }

func (e *VirtualEntry) Mode() (fs.FileMode, bool) { return 0, false }

func lastSlash(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '/' {
			return i
		}
	}
	return -1
}
