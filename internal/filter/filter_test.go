package filter

import (
	"testing"

	"github.com/sadopc/gtree/internal/model"
	"github.com/sadopc/gtree/internal/options"
)

func file(name string) model.Entry { return &model.VirtualEntry{FullPath: name} }
func dir(name string) model.Entry  { return &model.VirtualEntry{FullPath: name, Dir: true} }

func mustGlob(t *testing.T, pattern string) *options.Glob {
	t.Helper()
	g, err := options.CompileGlob(pattern)
	if err != nil {
		t.Fatalf("CompileGlob(%q) error = %v", pattern, err)
	}
	return g
}

func TestShouldSkip_Hidden(t *testing.T) {
	opts := &options.Options{}
	if !ShouldSkip(file(".gitignore"), opts) {
		t.Error("hidden file kept without --all")
	}

	opts.AllFiles = true
	if ShouldSkip(file(".gitignore"), opts) {
		t.Error("hidden file skipped with --all")
	}
}

func TestShouldSkip_ExcludeWinsOverInclude(t *testing.T) {
	opts := &options.Options{
		Pattern: mustGlob(t, "*.go"),
		Exclude: mustGlob(t, "main*"),
	}
	if !ShouldSkip(file("main.go"), opts) {
		t.Error("excluded file kept despite include match")
	}
	if ShouldSkip(file("util.go"), opts) {
		t.Error("included file skipped")
	}
}

func TestShouldSkip_IncludeNeverFiltersDirectories(t *testing.T) {
	opts := &options.Options{Pattern: mustGlob(t, "*.go")}
	if ShouldSkip(dir("docs"), opts) {
		t.Error("directory filtered by include pattern")
	}
	if !ShouldSkip(file("README.md"), opts) {
		t.Error("non-matching file kept")
	}
}

func TestShouldSkip_ExcludeAppliesToDirectories(t *testing.T) {
	opts := &options.Options{Exclude: mustGlob(t, "target")}
	if !ShouldSkip(dir("target"), opts) {
		t.Error("excluded directory kept")
	}
}

func TestShouldSkip_DirOnly(t *testing.T) {
	opts := &options.Options{DirOnly: true}
	if !ShouldSkip(file("a.txt"), opts) {
		t.Error("file kept under --directories")
	}
	if ShouldSkip(dir("sub"), opts) {
		t.Error("directory skipped under --directories")
	}
}
