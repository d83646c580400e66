package screen

import "testing"

func TestGridSetGet(t *testing.T) {
	g := NewGrid(10, 5)
	if len(g.Cells) != 50 {
		t.Fatalf("expected 50 cells, got %d", len(g.Cells))
	}
	g.Set(2, 1, 'x')
	if g.At(2, 1) != 'x' {
		t.Errorf("Set/At mismatch")
	}
	if g.At(-1, 0) != ' ' || g.At(100, 0) != ' ' {
		t.Errorf("out-of-bounds At should return space")
	}
}

func TestGridClear(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, 'x')
	g.Clear()
	for _, c := range g.Cells {
		if c != ' ' {
			t.Fatalf("Clear left a non-space cell")
		}
	}
}

func TestGridResizePreservesOverlap(t *testing.T) {
	g := NewGrid(10, 10)
	g.Set(0, 0, 'x')
	g.Resize(5, 5)
	if g.Width != 5 || g.Height != 5 {
		t.Fatalf("resize did not update dimensions")
	}
	if g.At(0, 0) != 'x' {
		t.Errorf("resize should preserve overlapping content")
	}
}

func TestPairResizeClearsCurrent(t *testing.T) {
	p := NewPair(5, 5)
	p.Current.Set(0, 0, 'x')
	p.Resize(8, 8)
	if p.Current.At(0, 0) != ' ' {
		t.Errorf("resize should force a full repaint by blanking current")
	}
}
