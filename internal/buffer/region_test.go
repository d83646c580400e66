package buffer

import "testing"

func TestCutRegion(t *testing.T) {
	b := New()
	b.InsertBytes([]byte("foo bar baz"))
	b.StartOfBuffer()
	b.SetMark()
	if err := b.MoveRight(4); err != nil {
		t.Fatal(err)
	}
	cut, err := b.CutRegion()
	if err != nil {
		t.Fatal(err)
	}
	if string(cut) != "foo " {
		t.Fatalf("cut = %q, want %q", cut, "foo ")
	}
	if got := string(b.Bytes()); got != "bar baz" {
		t.Fatalf("remaining = %q", got)
	}
	if b.Point() != 0 {
		t.Errorf("cursor should land at region start, got %d", b.Point())
	}
}

func TestCopyRegionDoesNotMutate(t *testing.T) {
	b := New()
	b.InsertBytes([]byte("hello"))
	b.StartOfBuffer()
	b.SetMark()
	if err := b.MoveRight(3); err != nil {
		t.Fatal(err)
	}
	region, err := b.CopyRegion()
	if err != nil {
		t.Fatal(err)
	}
	if string(region) != "hel" {
		t.Fatalf("region = %q", region)
	}
	if got := string(b.Bytes()); got != "hello" {
		t.Fatalf("copy_region must not mutate buffer, got %q", got)
	}
}

func TestRegionNoMarkFails(t *testing.T) {
	b := New()
	b.InsertBytes([]byte("hello"))
	if _, err := b.CopyRegion(); err == nil {
		t.Fatal("expected NoRegion failure without a mark")
	}
}

func TestRegionMarkAfterCursor(t *testing.T) {
	b := New()
	b.InsertBytes([]byte("hello world"))
	b.StartOfBuffer()
	if err := b.MoveRight(6); err != nil {
		t.Fatal(err)
	}
	b.SetMark()
	b.StartOfBuffer()
	region, err := b.CopyRegion()
	if err != nil {
		t.Fatal(err)
	}
	if string(region) != "hello " {
		t.Fatalf("region = %q, want %q", region, "hello ")
	}
}

func TestCutToEndOfLine(t *testing.T) {
	b := New()
	b.InsertBytes([]byte("hello\nworld"))
	b.StartOfBuffer()
	if err := b.MoveRight(2); err != nil {
		t.Fatal(err)
	}
	cut, err := b.CutToEndOfLine()
	if err != nil {
		t.Fatal(err)
	}
	if string(cut) != "llo" {
		t.Fatalf("cut = %q, want llo", cut)
	}
	if got := string(b.Bytes()); got != "he\nworld" {
		t.Fatalf("remaining = %q", got)
	}
}

func TestCutToStartOfLine(t *testing.T) {
	b := New()
	b.InsertBytes([]byte("hello\nworld"))
	b.StartOfBuffer()
	if err := b.MoveRight(8); err != nil { // cursor after "wo"
		t.Fatal(err)
	}
	cut, err := b.CutToStartOfLine()
	if err != nil {
		t.Fatal(err)
	}
	if string(cut) != "wo" {
		t.Fatalf("cut = %q, want wo", cut)
	}
	if got := string(b.Bytes()); got != "hello\nrld" {
		t.Fatalf("remaining = %q", got)
	}
}

func TestReplaceRegionBasic(t *testing.T) {
	b := New()
	b.InsertBytes([]byte("foo foo foo"))
	b.StartOfBuffer()
	b.SetMark()
	b.EndOfBuffer()
	count, err := b.ReplaceRegion([]byte("/foo/bar/"))
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
	if got := string(b.Bytes()); got != "bar bar bar" {
		t.Fatalf("got %q", got)
	}
}

func TestReplaceRegionEmptyRegionIsNoop(t *testing.T) {
	b := New()
	b.InsertBytes([]byte("foo"))
	b.SetMark() // mark == cursor, empty region
	count, err := b.ReplaceRegion([]byte("/foo/bar/"))
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Fatalf("count = %d, want 0", count)
	}
	if got := string(b.Bytes()); got != "foo" {
		t.Fatalf("empty region replace must not mutate, got %q", got)
	}
}

func TestReplaceRegionMalformedRequest(t *testing.T) {
	b := New()
	b.InsertBytes([]byte("foo"))
	b.StartOfBuffer()
	b.SetMark()
	b.EndOfBuffer()
	if _, err := b.ReplaceRegion([]byte("")); err == nil {
		t.Fatal("expected Malformed for empty request")
	}
	if _, err := b.ReplaceRegion([]byte("/foo")); err == nil {
		t.Fatal("expected Malformed for missing second separator")
	}
	if _, err := b.ReplaceRegion([]byte("//bar")); err == nil {
		t.Fatal("expected Malformed for empty find")
	}
}

func TestReplaceRegionGrowsText(t *testing.T) {
	b := New()
	b.InsertBytes([]byte("a a a"))
	b.StartOfBuffer()
	b.SetMark()
	b.EndOfBuffer()
	count, err := b.ReplaceRegion([]byte("/a/longer/"))
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
	if got := string(b.Bytes()); got != "longer longer longer" {
		t.Fatalf("got %q", got)
	}
}

func TestPasteMultiplier(t *testing.T) {
	b := New()
	if err := b.Paste([]byte("ab"), 3); err != nil {
		t.Fatal(err)
	}
	if got := string(b.Bytes()); got != "ababab" {
		t.Fatalf("got %q", got)
	}
}
