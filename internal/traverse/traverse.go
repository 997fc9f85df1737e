// Package traverse implements the walk over a real or virtual directory
// tree: filtering, sorting, depth and fan-out limiting, and the running
// directory/file statistics.
package traverse

import (
	"fmt"
	"io"

	"github.com/sadopc/gtree/internal/filter"
	"github.com/sadopc/gtree/internal/model"
	"github.com/sadopc/gtree/internal/options"
)

// DirReader lists the raw (unfiltered) children of one directory. The key
// is whatever Entry.Path returned for that directory, or the root key for
// the top level.
type DirReader interface {
	ReadDir(path string) ([]model.Entry, error)
}

// Visitor receives the walk in emission order. Descend and Ascend bracket
// the children of a directory entry that was just visited.
type Visitor interface {
	Begin(rootName string)
	Entry(e model.Entry, indent []bool, isLast bool)
	Descend(e model.Entry)
	Ascend()
	End(dirs, files int)
}

// Stats is the run accumulator: one increment per emitted entry.
type Stats struct {
	Dirs  int
	Files int
}

// Walker drives one traversal.
type Walker struct {
	reader  DirReader
	opts    *options.Options
	sortCfg model.SortConfig
	diag    io.Writer
}

// NewWalker builds a walker over reader. Non-fatal problems (unreadable
// subtrees) are reported to diag and the walk continues with siblings.
func NewWalker(reader DirReader, opts *options.Options, diag io.Writer) *Walker {
	return &Walker{
		reader: reader,
		opts:   opts,
		sortCfg: model.SortConfig{
			ByTime:    opts.SortByTime,
			Natural:   opts.Natural,
			DirsFirst: opts.DirsFirst,
			Reverse:   opts.Reverse,
		},
		diag: diag,
	}
}

// frame is the per-directory state: the filtered, sorted children still to
// emit and the ancestor last-sibling flags for their indentation.
type frame struct {
	entries []model.Entry
	next    int
	indent  []bool
}

// Walk traverses the tree rooted at rootKey and reports it to v as
// rootName. The walk is iterative over an explicit frame stack, so
// pathological nesting cannot exhaust the call stack. The returned stats
// count exactly the entries emitted.
func (w *Walker) Walk(rootKey, rootName string, v Visitor) Stats {
	var stats Stats
	v.Begin(rootName)

	stack := make([]*frame, 0, 16)
	if children, ok := w.readChildren(rootKey); ok {
		stack = append(stack, &frame{entries: children})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		if f.next >= len(f.entries) {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				v.Ascend()
			}
			continue
		}

		e := f.entries[f.next]
		f.next++
		isLast := f.next == len(f.entries)

		v.Entry(e, f.indent, isLast)
		if e.IsDir() {
			stats.Dirs++
		} else {
			stats.Files++
		}

		if !e.IsDir() {
			continue
		}
		if maxDepth, ok := w.opts.MaxDepth(); ok && uint(len(f.indent))+1 >= maxDepth {
			continue
		}

		// The raw child count is checked against --filelimit before
		// any filtering, bounding the cost of huge directories.
		children, ok := w.readChildren(e.Path())
		if !ok {
			continue
		}

		childIndent := make([]bool, len(f.indent), len(f.indent)+1)
		copy(childIndent, f.indent)
		v.Descend(e)
		stack = append(stack, &frame{
			entries: children,
			indent:  append(childIndent, isLast),
		})
	}

	v.End(stats.Dirs, stats.Files)
	return stats
}

// readChildren reads, limit-checks, filters and sorts one directory's
// children. ok=false means the subtree is abandoned (already reported).
func (w *Walker) readChildren(path string) ([]model.Entry, bool) {
	raw, err := w.reader.ReadDir(path)
	if err != nil {
		fmt.Fprintf(w.diag, "gtree: cannot read directory %s: %v\n", path, err)
		return nil, false
	}

	if w.opts.FileLimitSet && uint64(len(raw)) > w.opts.FileLimit {
		return nil, false
	}

	kept := raw[:0]
	for _, e := range raw {
		if !filter.ShouldSkip(e, w.opts) {
			kept = append(kept, e)
		}
	}
	model.SortSiblings(kept, w.sortCfg)
	return kept, true
}
