package model

import (
	"sort"
	"strings"
)

// VirtualTree is the hierarchy synthesized from a textual archive listing.
// Each normalized path maps to exactly one entry; ancestor directories are
// synthesized for every proper path prefix that was never explicitly listed.
type VirtualTree struct {
	entries  map[string]*VirtualEntry
	children map[string][]*VirtualEntry
	indexed  bool
}

// NewVirtualTree returns an empty tree.
func NewVirtualTree() *VirtualTree {
	return &VirtualTree{entries: make(map[string]*VirtualEntry)}
}

// Insert records an explicitly listed entry. The last explicit entry for a
// path wins, and an explicit entry always replaces a synthesized one.
// Ancestor directories are synthesized for every proper prefix of path.
func (t *VirtualTree) Insert(e *VirtualEntry) {
	if e == nil || e.FullPath == "" {
		return
	}
	t.indexed = false
	if prev, ok := t.entries[e.FullPath]; ok && !prev.Synthesized && e.Synthesized {
		return
	}
	t.entries[e.FullPath] = e

	parts := strings.Split(e.FullPath, "/")
	for i := 1; i < len(parts); i++ {
		prefix := strings.Join(parts[:i], "/")
		if prefix == "" {
			continue
		}
		if _, ok := t.entries[prefix]; !ok {
			t.entries[prefix] = &VirtualEntry{FullPath: prefix, Dir: true, Synthesized: true}
		}
	}
}

// Len returns the number of entries, synthesized ancestors included.
func (t *VirtualTree) Len() int { return len(t.entries) }

// Lookup returns the entry at the normalized path.
func (t *VirtualTree) Lookup(path string) (*VirtualEntry, bool) {
	e, ok := t.entries[path]
	return e, ok
}

// Children returns the direct children of the directory at path. The empty
// path addresses the virtual root. The returned slice is in stable (name)
// order; callers re-sort it per their sort policy.
func (t *VirtualTree) Children(path string) []*VirtualEntry {
	t.buildIndex()
	return t.children[path]
}

func (t *VirtualTree) buildIndex() {
	if t.indexed {
		return
	}
	t.children = make(map[string][]*VirtualEntry, len(t.entries))
	for _, e := range t.entries {
		parent := ""
		if i := lastSlash(e.FullPath); i >= 0 {
			parent = e.FullPath[:i]
		}
		t.children[parent] = append(t.children[parent], e)
	}
	// Map iteration order is random; fix a base order so traversal is
	// deterministic before any sort policy is applied.
	for _, siblings := range t.children {
		sort.Slice(siblings, func(i, j int) bool {
			return siblings[i].FullPath < siblings[j].FullPath
		})
	}
	t.indexed = true
}

// NormalizePath rewrites a listed path to the tree's canonical form:
// backslashes become forward slashes, a leading "./" is stripped, and a
// two-character drive prefix like "C:" is folded into a plain segment.
func NormalizePath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	p = strings.TrimPrefix(p, "./")
	if len(p) >= 2 && p[1] == ':' && isASCIILetter(p[0]) {
		p = p[:1] + p[2:]
	}
	p = strings.TrimSuffix(p, "/")
	return p
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
