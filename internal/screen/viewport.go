package screen

import "spot/internal/buffer"

// ResolveViewport is the reverse-scan viewport algorithm: given the active
// buffer, the text area's height and width, and whether a re-centre was
// requested, it returns the logical offset the text area should start
// painting from.
//
// It walks backward from the cursor counting row boundaries (a '\n', or the
// running column reaching w), preferring a draw_start that is either 0 or
// immediately after a '\n'; if neither is reachable within the walked span
// it falls back to the cursor itself, which is always on-screen.
func ResolveViewport(b *buffer.Buffer, th, w int, centre bool) int {
	if th <= 0 || w <= 0 {
		return b.DrawStart
	}
	ci := b.Point()
	ta := th * w

	if ci == 0 {
		return 0
	}
	if !centre && b.DrawStart <= ci && ci-b.DrawStart < ta {
		return b.DrawStart
	}
	if ci < b.DrawStart || ci-b.DrawStart >= ta {
		centre = true
	}

	hth := th / 2
	if hth < 1 {
		hth = 1
	}
	targetRow := th
	floor := b.DrawStart
	if centre {
		targetRow = hth
		floor = 0
	}

	row := 0
	col := 0
	lastNewlineAfter := -1
	reachedTarget := false
	i := ci - 1
	for ; i >= floor; i-- {
		ch := b.ByteAt(i)
		if ch == '\n' {
			row++
			lastNewlineAfter = i + 1
			col = 0
		} else {
			col++
			if col == w {
				row++
				col = 0
			}
		}
		if row == targetRow {
			reachedTarget = true
			break
		}
	}

	if lastNewlineAfter >= 0 {
		return lastNewlineAfter
	}
	if i < floor {
		if centre {
			return 0
		}
		return floor
	}
	if reachedTarget {
		return ci
	}
	return floor
}
