package traverse

import (
	"os"

	"github.com/sadopc/gtree/internal/model"
)

// OSReader reads the live filesystem.
type OSReader struct{}

func (OSReader) ReadDir(path string) ([]model.Entry, error) {
	des, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	entries := make([]model.Entry, len(des))
	for i, de := range des {
		entries[i] = model.NewFSEntry(path, de)
	}
	return entries, nil
}

// VirtualReader reads a parsed listing tree. The root directory is keyed
// by the empty path.
type VirtualReader struct {
	Tree *model.VirtualTree
}

func (r VirtualReader) ReadDir(path string) ([]model.Entry, error) {
	children := r.Tree.Children(path)
	entries := make([]model.Entry, len(children))
	for i, c := range children {
		entries[i] = c
	}
	return entries, nil
}
