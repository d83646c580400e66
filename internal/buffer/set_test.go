package buffer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewSetStartsWithOneEmptyBuffer(t *testing.T) {
	s := NewSet()
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	if s.Active().Len() != 0 {
		t.Errorf("initial buffer should be empty")
	}
}

func TestSetAddAndNavigate(t *testing.T) {
	s := NewSet()
	b2 := New()
	b2.InsertBytes([]byte("second"))
	idx := s.Add(b2)
	if idx != 1 || s.ActiveIndex() != 1 {
		t.Fatalf("Add should make the new buffer active at index 1, got %d", idx)
	}
	s.Prev()
	if s.ActiveIndex() != 0 {
		t.Errorf("Prev should move back to 0")
	}
	s.Prev()
	if s.ActiveIndex() != 1 {
		t.Errorf("Prev should wrap around to the last buffer")
	}
	s.Next()
	if s.ActiveIndex() != 0 {
		t.Errorf("Next should wrap back to 0")
	}
}

func TestOpenExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "existing.txt")
	if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}
	b := Open(path)
	if got := string(b.Bytes()); got != "content" {
		t.Fatalf("got %q, want content", got)
	}
	if b.Modified {
		t.Errorf("freshly opened buffer should not be marked modified")
	}
	if b.Point() != 0 {
		t.Errorf("freshly opened buffer should start at offset 0")
	}
}

func TestNewSetFromPathsNoGhostBuffer(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.txt")
	p2 := filepath.Join(dir, "b.txt")
	os.WriteFile(p1, []byte("aaa"), 0644)
	os.WriteFile(p2, []byte("bbb"), 0644)

	s := NewSetFromPaths([]string{p1, p2})
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if s.ActiveIndex() != 0 {
		t.Fatalf("first path should be active, got index %d", s.ActiveIndex())
	}
	if string(s.Active().Bytes()) != "aaa" {
		t.Errorf("active buffer content = %q, want aaa", s.Active().Bytes())
	}
}

func TestNewSetFromPathsEmptyBehavesLikeNewSet(t *testing.T) {
	s := NewSetFromPaths(nil)
	if s.Len() != 1 || s.Active().Len() != 0 {
		t.Fatalf("expected a single empty buffer")
	}
}

func TestOpenNonExistentFileCreatesEmptyNamedBuffer(t *testing.T) {
	b := Open("/tmp/definitely-does-not-exist-spot-test.txt")
	if b.Len() != 0 {
		t.Errorf("nonexistent path should yield an empty buffer")
	}
	if !b.HasFilename || b.Filename != "/tmp/definitely-does-not-exist-spot-test.txt" {
		t.Errorf("buffer should still carry the requested filename")
	}
}
