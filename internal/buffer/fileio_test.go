package buffer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteBufferThenReadBackRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	b := New()
	b.InsertBytes([]byte("hello\nworld\n"))
	b.Filename = path
	b.HasFilename = true
	if err := b.WriteBuffer(path, false); err != nil {
		t.Fatal(err)
	}
	if b.Modified {
		t.Errorf("write_buffer to own filename should clear Modified")
	}

	b2 := New()
	if err := b2.InsertFile(path); err != nil {
		t.Fatal(err)
	}
	if got := string(b2.Bytes()); got != "hello\nworld\n" {
		t.Fatalf("round trip mismatch: %q", got)
	}
}

func TestWriteBufferWithBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(path, []byte("old content"), 0644); err != nil {
		t.Fatal(err)
	}

	b := New()
	b.InsertBytes([]byte("new content"))
	b.Filename = path
	b.HasFilename = true
	if err := b.WriteBuffer(path, true); err != nil {
		t.Fatal(err)
	}

	backup, err := os.ReadFile(path + "~")
	if err != nil {
		t.Fatalf("backup file missing: %v", err)
	}
	if string(backup) != "old content" {
		t.Fatalf("backup = %q, want old content", backup)
	}
	target, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(target) != "new content" {
		t.Fatalf("target = %q, want new content", target)
	}
}

func TestInsertFileNonExistentFails(t *testing.T) {
	b := New()
	if err := b.InsertFile("/nonexistent/path/does-not-exist"); err == nil {
		t.Fatal("expected failure inserting a nonexistent file")
	}
}

func TestInsertFileDoesNotMoveCursor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snippet.txt")
	if err := os.WriteFile(path, []byte("XYZ"), 0644); err != nil {
		t.Fatal(err)
	}
	b := New()
	b.InsertBytes([]byte("ab"))
	b.StartOfBuffer()
	if err := b.InsertFile(path); err != nil {
		t.Fatal(err)
	}
	if b.Point() != 0 {
		t.Errorf("insert_file should not move the cursor, point = %d", b.Point())
	}
	if got := string(b.Bytes()); got != "XYZab" {
		t.Fatalf("got %q, want XYZab", got)
	}
}

func TestWriteRegion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "region.txt")

	b := New()
	b.InsertBytes([]byte("foo bar baz"))
	b.StartOfBuffer()
	b.SetMark()
	if err := b.MoveRight(3); err != nil {
		t.Fatal(err)
	}
	if err := b.WriteRegion(path); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "foo" {
		t.Fatalf("got %q, want foo", got)
	}
}

func TestReplaceRegionFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "replacement.txt")
	if err := os.WriteFile(path, []byte("NEW"), 0644); err != nil {
		t.Fatal(err)
	}

	b := New()
	b.InsertBytes([]byte("foo bar baz"))
	b.StartOfBuffer()
	b.SetMark()
	if err := b.MoveRight(3); err != nil {
		t.Fatal(err)
	}
	if err := b.ReplaceRegionFromFile(path); err != nil {
		t.Fatal(err)
	}
	if got := string(b.Bytes()); got != "NEW bar baz" {
		t.Fatalf("got %q", got)
	}
	idx, set := b.Mark()
	if !set || idx != 0 {
		t.Errorf("replaced span should become the new region")
	}
}
