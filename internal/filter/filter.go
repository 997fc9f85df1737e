// Package filter decides which entries a traversal keeps. The rules are
// order-sensitive: hidden suppression first, then exclusion, then inclusion,
// then the directories-only cut. First match wins.
package filter

import (
	"strings"

	"github.com/sadopc/gtree/internal/model"
	"github.com/sadopc/gtree/internal/options"
)

// ShouldSkip reports whether the entry is dropped from the listing.
func ShouldSkip(e model.Entry, opts *options.Options) bool {
	name := e.Name()

	if !opts.AllFiles && strings.HasPrefix(name, ".") {
		return true
	}

	// Exclusion wins over inclusion.
	if opts.Exclude != nil && opts.Exclude.Match(name) {
		return true
	}

	// The include pattern never filters directories, so matching
	// descendants stay reachable.
	if opts.Pattern != nil && !e.IsDir() && !opts.Pattern.Match(name) {
		return true
	}

	if opts.DirOnly && !e.IsDir() {
		return true
	}

	return false
}
