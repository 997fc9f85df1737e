package listing

import (
	"strings"
	"testing"

	"github.com/sadopc/gtree/internal/model"
)

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func lookup(t *testing.T, tree *model.VirtualTree, path string) *model.VirtualEntry {
	t.Helper()
	e, ok := tree.Lookup(path)
	if !ok {
		t.Fatalf("entry %q missing from parsed tree", path)
	}
	return e
}

const tarVerbose = `drwxr-xr-x user/group 0 2023-01-01 12:00 src
-rw-r--r-- user/group 123 2023-01-01 12:00 src/main.rs
-rw-r--r-- user/group 456 2023-01-01 12:00 README.md`

const sevenZip = `7-Zip [64] 16.02 : Copyright (c) 1999-2016 Igor Pavlov : 2016-05-21
Listing archive: test.7z

   Date      Time    Attr         Size   Compressed  Name
------------------- ----- ------------ ------------  ------------------------
2023-01-01 12:00:00 D....            0            0  src
2023-01-01 12:00:00 ....A          123           65  src\main.rs
2023-01-01 12:00:00 ....A         4567         2345  README.md
------------------- ----- ------------ ------------  ------------------------
                                 5580         2866  3 files, 1 folders`

const rar = `RAR 5.40   Copyright (c) 1993-2016 Alexander Roshal   11 Aug 2016
Archive test.rar

 Attributes      Size     Date   Time   Name
----------- --------- -------- ------ ----
 drwxr-xr-x         0 01-01-23 12:00  src
 -rw-r--r--       123 01-01-23 12:00  src\main.rs
 -rw-r--r--      4567 01-01-23 12:00  README.md
----------- --------- -------- ------ ----
              5580                    3`

const zip = `Archive:  test.zip
  Length      Date    Time    Name
---------  ---------- -----   ----
        0  2023-01-01 12:00   src/
      123  2023-01-01 12:00   src/main.rs
     4567  2023-01-01 12:00   README.md
---------                     -------
     4690                     3 files`

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Format
	}{
		{"tar verbose", tarVerbose, FormatTar},
		{"7zip", sevenZip, FormatSevenZip},
		{"rar", rar, FormatRar},
		{"zip", zip, FormatZip},
		{"simple", "src/main.go\ndocs/", FormatSimple},
	}
	for _, tt := range tests {
		if got := Detect(splitLines(tt.input)); got != tt.want {
			t.Errorf("Detect(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParse_TarVerbose(t *testing.T) {
	tree := Parse(splitLines(tarVerbose))

	src := lookup(t, tree, "src")
	if !src.Dir {
		t.Error("src parsed as file, want directory")
	}

	main := lookup(t, tree, "src/main.rs")
	if main.Dir {
		t.Error("src/main.rs parsed as directory")
	}
	if size, ok := main.Size(); !ok || size != 123 {
		t.Errorf("src/main.rs size = %d (ok=%v), want 123", size, ok)
	}
}

func TestParse_TarSimple(t *testing.T) {
	tree := Parse(splitLines("src/\nsrc/main.rs\nREADME.md"))

	if e := lookup(t, tree, "src"); !e.Dir {
		t.Error("src/ not parsed as directory")
	}
	if e := lookup(t, tree, "README.md"); e.Dir {
		t.Error("README.md parsed as directory")
	}
}

func TestParse_SevenZip_NormalizesBackslashes(t *testing.T) {
	tree := Parse(splitLines(sevenZip))

	main := lookup(t, tree, "src/main.rs")
	if size, ok := main.Size(); !ok || size != 123 {
		t.Errorf("src/main.rs size = %d (ok=%v), want 123", size, ok)
	}
	if e := lookup(t, tree, "src"); !e.Dir {
		t.Error("src attribute D.... not parsed as directory")
	}
	// The banner and table rules must not become entries.
	if _, ok := tree.Lookup("test.7z"); ok {
		t.Error("archive banner leaked into the tree")
	}
}

func TestParse_Rar(t *testing.T) {
	tree := Parse(splitLines(rar))

	if e := lookup(t, tree, "src"); !e.Dir {
		t.Error("src not parsed as directory")
	}
	main := lookup(t, tree, "src/main.rs")
	if size, ok := main.Size(); !ok || size != 123 {
		t.Errorf("src/main.rs size = %d (ok=%v), want 123", size, ok)
	}
}

func TestParse_Zip(t *testing.T) {
	tree := Parse(splitLines(zip))

	if e := lookup(t, tree, "src"); !e.Dir {
		t.Error("src/ not parsed as directory")
	}
	readme := lookup(t, tree, "README.md")
	if size, ok := readme.Size(); !ok || size != 4567 {
		t.Errorf("README.md size = %d (ok=%v), want 4567", size, ok)
	}
}

func TestParse_SimpleFallback(t *testing.T) {
	tree := Parse(splitLines("src/main.rs\nsrc/lib.rs\ntests/test.rs\nREADME.md"))

	if e := lookup(t, tree, "src"); !e.Dir || !e.Synthesized {
		t.Error("src not synthesized as directory")
	}
	if e := lookup(t, tree, "tests"); !e.Dir {
		t.Error("tests not synthesized as directory")
	}
}

func TestParse_MalformedLinesDropped(t *testing.T) {
	lines := []string{
		"drwxr-xr-x user/group 0 2023-01-01 12:00 src",
		"drwx",                  // too short for the tar grammar
		"drwxr-xr-x user/group", // missing fields
		"-rw-r--r-- user/group 5 2023-01-01 12:00 src/ok.txt",
	}
	tree := Parse(lines)

	if _, ok := tree.Lookup("src/ok.txt"); !ok {
		t.Error("valid line dropped alongside malformed ones")
	}
	if _, ok := tree.Lookup("drwx"); ok {
		t.Error("malformed line parsed as entry")
	}
}

func TestParse_EmptyInput(t *testing.T) {
	if tree := Parse(nil); tree.Len() != 0 {
		t.Errorf("Parse(nil).Len() = %d, want 0", tree.Len())
	}
}

func TestReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("a\n\n  \nb/c\n"))
	if err != nil {
		t.Fatalf("ReadLines error = %v", err)
	}
	if len(lines) != 2 || lines[0] != "a" || lines[1] != "b/c" {
		t.Errorf("ReadLines = %v, want [a b/c]", lines)
	}
}
