package console

import "github.com/kiidax/mvt/surface"

// SetSelection sets the selection to the span between (x1,y1) and
// (x2,y2), both in virtual coordinates. align1/align2 are boundary
// hints (-1 = prefer the left edge, +1 = prefer the right edge) used
// when an endpoint lands on a double-width glyph's trailing half. If the
// normalized range is empty or reversed, the selection is cleared
// instead.
func (c *Console) SetSelection(x1, y1, align1, x2, y2, align2 int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rx1, ry1 := c.adjustPointToChar(false, x1, y1, align1)
	rx2, ry2 := c.adjustPointToChar(true, x2, y2, align2)

	if ry1 > ry2 || (ry1 == ry2 && rx1 >= rx2) {
		c.selX1, c.selY1, c.selX2, c.selY2 = -1, -1, -1, -1
		if c.surf != nil {
			c.surf.MoveCursor(surface.SelectionStart, -1, -1)
			c.surf.MoveCursor(surface.SelectionEnd, -1, -1)
		}
		return
	}

	c.selX1, c.selY1, c.selX2, c.selY2 = rx1, ry1, rx2, ry2
	if c.surf != nil {
		c.surf.MoveCursor(surface.SelectionStart, rx1, ry1-c.top)
		c.surf.MoveCursor(surface.SelectionEnd, rx2, ry2-c.top)
	}
}

// GetSelection reports the current selection bounds in virtual
// coordinates, or ok=false if there is none.
func (c *Console) GetSelection() (x1, y1, x2, y2 int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selY1 == -1 {
		return 0, 0, 0, 0, false
	}
	return c.selX1, c.selY1, c.selX2, c.selY2, true
}

// adjustToChar snaps (x,y) to the start column of the glyph it lands on
// and reports that glyph's display width (1 or 2).
func (c *Console) adjustToChar(x, y int) (startX, charWidth int) {
	vh := c.virtualHeight()
	if y < 0 {
		y = 0
	}
	if y >= vh {
		y = vh - 1
	}
	if x >= c.width {
		x = c.width - 1
	}
	if x > 0 && c.cellAt(x, y).Attr.NoChar() {
		x--
	}
	if c.cellAt(x, y).Attr.Wide() {
		return x, 2
	}
	return x, 1
}

// adjustPointToChar snaps a selection endpoint to a glyph boundary. end
// distinguishes the selection's end point (exclusive: x at or past width
// moves to column 0 of the next row, or stays at width on the last
// virtual row, and x==0 with a negative align steps back to x==width on
// the previous row) from its start point (inclusive: x at or past width
// is clamped to width-1).
func (c *Console) adjustPointToChar(end bool, x, y, align int) (rx, ry int) {
	vh := c.virtualHeight()
	if y < 0 {
		y = 0
	} else if y >= vh {
		y = vh - 1
	}
	if x < 0 {
		x = 0
	}

	if x >= c.width {
		if end {
			x, y = 0, y+1
			if y >= vh {
				y = vh - 1
				x = c.width
			}
		} else {
			x = c.width - 1
		}
	}

	if x < c.width && c.cellAt(x, y).Attr.NoChar() {
		if align >= 0 && x+1 < c.width {
			x++
		} else if x > 0 {
			x--
		}
	}

	if end && x == 0 && align < 0 && y > c.top {
		y--
		x = c.width
	}
	if !end && x >= c.width {
		x, y = 0, y+1
		if y >= vh {
			y, x = vh-1, c.width-1
		}
	}

	return x, y
}

// CopySelection renders the current selection as plain text: it walks
// the selected span linearly, skips no_char trailing halves, replaces
// control characters (code point < 0x20) with a space, and inserts a
// newline between source rows. When crlf is true the inserted newline is
// CR+LF; otherwise just LF. Returns nil if there is no selection.
func (c *Console) CopySelection(crlf bool) []rune {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selY1 == -1 {
		return nil
	}

	var out []rune
	for y := c.selY1; y <= c.selY2; y++ {
		x1, x2 := 0, c.width-1
		if y == c.selY1 {
			x1 = c.selX1
		}
		if y == c.selY2 {
			x2 = c.selX2 - 1
		}
		for x := x1; x <= x2; x++ {
			cell := c.cellAt(x, y)
			if cell.Attr.NoChar() {
				continue
			}
			ch := cell.Char
			if ch < 0x20 {
				ch = ' '
			}
			out = append(out, ch)
		}
		if y < c.selY2 {
			if crlf {
				out = append(out, '\r')
			}
			out = append(out, '\n')
		}
	}
	return out
}
