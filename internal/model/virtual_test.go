package model

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`src\main.rs`, "src/main.rs"},
		{"./src/main.rs", "src/main.rs"},
		{`C:\Users\test\file.txt`, "C/Users/test/file.txt"},
		{"D:/project/lib.rs", "D/project/lib.rs"},
		{"plain/path", "plain/path"},
		{"trailing/", "trailing"},
	}
	for _, tt := range tests {
		if got := NormalizePath(tt.in); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVirtualTree_SynthesizesAncestors(t *testing.T) {
	tree := NewVirtualTree()
	tree.Insert(&VirtualEntry{FullPath: "a/b/c.txt"})

	if tree.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tree.Len())
	}
	for _, p := range []string{"a", "a/b"} {
		e, ok := tree.Lookup(p)
		if !ok {
			t.Fatalf("Lookup(%q) missing", p)
		}
		if !e.Dir || !e.Synthesized {
			t.Errorf("Lookup(%q) = dir=%v synth=%v, want dir synth", p, e.Dir, e.Synthesized)
		}
	}
}

func TestVirtualTree_ExplicitEntryNotOverwrittenBySynthesis(t *testing.T) {
	tree := NewVirtualTree()
	tree.Insert(&VirtualEntry{FullPath: "a", Dir: true, ByteSize: 0})
	tree.Insert(&VirtualEntry{FullPath: "a/b.txt", ByteSize: 7, HasSize: true})

	e, ok := tree.Lookup("a")
	if !ok {
		t.Fatal("Lookup(a) missing")
	}
	if e.Synthesized {
		t.Error("explicit entry replaced by synthesized ancestor")
	}
}

func TestVirtualTree_LastExplicitWins(t *testing.T) {
	tree := NewVirtualTree()
	tree.Insert(&VirtualEntry{FullPath: "f.txt", ByteSize: 1, HasSize: true})
	tree.Insert(&VirtualEntry{FullPath: "f.txt", ByteSize: 2, HasSize: true})

	e, _ := tree.Lookup("f.txt")
	if e.ByteSize != 2 {
		t.Errorf("ByteSize = %d, want 2 (last explicit parse wins)", e.ByteSize)
	}
}

func TestVirtualTree_RoundTrip(t *testing.T) {
	paths := []string{"src/main.go", "src/util/io.go", "docs/readme.md", "top.txt"}
	tree := NewVirtualTree()
	for _, p := range paths {
		tree.Insert(&VirtualEntry{FullPath: p})
	}

	// One entry per explicit path plus exactly one per distinct proper
	// prefix: src, src/util, docs.
	if tree.Len() != len(paths)+3 {
		t.Errorf("Len() = %d, want %d", tree.Len(), len(paths)+3)
	}

	rootChildren := tree.Children("")
	if len(rootChildren) != 3 {
		t.Errorf("root children = %d, want 3", len(rootChildren))
	}
}

func TestVirtualTree_ChildrenDeterministic(t *testing.T) {
	tree := NewVirtualTree()
	for _, p := range []string{"b", "a", "c"} {
		tree.Insert(&VirtualEntry{FullPath: p})
	}

	first := tree.Children("")
	for i := 0; i < 5; i++ {
		again := tree.Children("")
		for j := range first {
			if first[j].FullPath != again[j].FullPath {
				t.Fatalf("children order unstable at %d", j)
			}
		}
	}
}
