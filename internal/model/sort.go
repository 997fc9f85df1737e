package model

import (
	"sort"

	"github.com/maruel/natural"
)

// SortConfig holds the sibling ordering policy.
type SortConfig struct {
	// ByTime sorts by modification time, oldest first; entries without a
	// time sort as the oldest possible. Ties fall back to the name key.
	ByTime bool
	// Natural compares names natural-order (a2 before a10) instead of
	// byte-wise.
	Natural bool
	// DirsFirst partitions directories before files at each level.
	DirsFirst bool
	// Reverse inverts the final order, after the dirs-first partition.
	Reverse bool
}

// SortSiblings orders one sibling group in place. The ordering is total:
// for a fixed input set the result is identical across runs.
func SortSiblings(entries []Entry, cfg SortConfig) {
	nameLess := func(a, b string) bool { return a < b }
	if cfg.Natural {
		nameLess = natural.Less
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		if cfg.DirsFirst {
			aDir, bDir := a.IsDir(), b.IsDir()
			if aDir != bDir {
				return aDir
			}
		}

		if cfg.ByTime {
			at, _ := a.ModTime()
			bt, _ := b.ModTime()
			if !at.Equal(bt) {
				return at.Before(bt)
			}
		}

		return nameLess(a.Name(), b.Name())
	})

	if cfg.Reverse {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}
}
