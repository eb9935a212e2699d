package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadLinesOnMissingFileIsNotAnError(t *testing.T) {
	lines, err := ReadLines(filepath.Join(t.TempDir(), "missing.txt"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lines != nil {
		t.Errorf("lines = %v, want nil", lines)
	}
}

func TestWriteLinesAppendLineRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")

	if err := WriteLines(path, []string{"a|1", "b|2"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := AppendLine(path, "c|3"); err != nil {
		t.Fatalf("append: %v", err)
	}

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := []string{"a|1", "b|2", "c|3"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestIsMissingOrEmpty(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "missing.txt")
	if !IsMissingOrEmpty(missing) {
		t.Errorf("missing file should read as empty")
	}

	empty := filepath.Join(dir, "empty.txt")
	if err := EnsureFile(empty); err != nil {
		t.Fatal(err)
	}
	if !IsMissingOrEmpty(empty) {
		t.Errorf("zero-byte file should read as empty")
	}

	full := filepath.Join(dir, "full.txt")
	if err := os.WriteFile(full, []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if IsMissingOrEmpty(full) {
		t.Errorf("non-empty file should not read as empty")
	}
}

func TestEnsureFileDoesNotTouchExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte("keep me\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := EnsureFile(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "keep me\n" {
		t.Errorf("content = %q, want untouched", string(data))
	}
}

func TestTruncateEmptiesButKeepsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte("old content\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Truncate(path); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("file vanished: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("size = %d, want 0", info.Size())
	}
}
