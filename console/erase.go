package console

// EraseLine clears part of the cursor's row. mode 0 = cursor to end of
// line, 1 = start of line to cursor (inclusive), 2 = entire line.
func (c *Console) EraseLine(mode int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	x1, x2 := c.eraseLineSpan(mode)
	c.clearSpanLocked(x1, x2, c.cursorY)
}

func (c *Console) eraseLineSpan(mode int) (x1, x2 int) {
	switch mode {
	case 1:
		return 0, c.adjustToCharStart(c.cursorX, c.cursorY)
	case 2:
		return 0, c.width - 1
	default:
		return c.adjustToCharStart(c.cursorX, c.cursorY), c.width - 1
	}
}

// EraseDisplay clears part of the viewport. mode 0 = cursor to end of
// screen, 1 = start of screen to cursor, 2 = entire viewport.
func (c *Console) EraseDisplay(mode int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch mode {
	case 1:
		for y := c.top; y < c.cursorY; y++ {
			c.clearSpanLocked(0, c.width-1, y)
		}
		c.clearSpanLocked(0, c.adjustToCharStart(c.cursorX, c.cursorY), c.cursorY)
	case 2:
		for y := c.top; y < c.top+c.height; y++ {
			c.clearSpanLocked(0, c.width-1, y)
		}
	default:
		c.clearSpanLocked(c.adjustToCharStart(c.cursorX, c.cursorY), c.width-1, c.cursorY)
		for y := c.cursorY + 1; y < c.top+c.height; y++ {
			c.clearSpanLocked(0, c.width-1, y)
		}
	}
}

// EraseChars clears n cells starting at the cursor, clamped to the row.
func (c *Console) EraseChars(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	x1 := c.adjustToCharStart(c.cursorX, c.cursorY)
	x2 := x1 + n - 1
	if x2 > c.width-1 {
		x2 = c.width - 1
	}
	if x2 < x1 {
		return
	}
	c.clearSpanLocked(x1, x2, c.cursorY)
}

func (c *Console) clearSpanLocked(x1, x2, y int) {
	if x1 > x2 {
		return
	}
	blank := Blank(c.attr)
	rs := c.rowStart(y)
	for x := x1; x <= x2; x++ {
		c.cells[rs+x] = blank
	}
	c.clearSelectionIfIntersectsLocked(y)
	c.clearRectLocked(x1, y, x2, y)
}

// adjustToCharStart snaps x to the start column of the glyph occupying
// (x, y): if x lands on a no_char cell, step back to the preceding wide
// cell.
func (c *Console) adjustToCharStart(x, y int) int {
	if x >= c.width {
		x = c.width - 1
	}
	if x > 0 && c.cellAt(x, y).Attr.NoChar() {
		return x - 1
	}
	return x
}

// InsertChars inserts count blank cells at the cursor, shifting the rest
// of the row right; cells pushed past the end of the row are dropped.
func (c *Console) InsertChars(count int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.moveCharsLocked(c.cursorX, c.width-1, c.cursorY, count)
}

// DeleteChars deletes count cells at the cursor, shifting the rest of the
// row left and clearing the vacated cells at the end.
func (c *Console) DeleteChars(count int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.moveCharsLocked(c.cursorX, c.width-1, c.cursorY, -count)
}

// moveCharsLocked shifts cells in [x1,x2] on row y by count, clearing
// vacated cells with the current background attribute. Positive count
// inserts at x1 (content moves right); negative deletes at x1 (content
// moves left).
func (c *Console) moveCharsLocked(x1, x2, y, count int) {
	if count == 0 {
		return
	}
	blank := Blank(c.attr)
	rs := c.rowStart(y)
	if count > 0 {
		if count > x2-x1+1 {
			count = x2 - x1 + 1
		}
		for x := x2; x >= x1+count; x-- {
			c.cells[rs+x] = c.cells[rs+x-count]
		}
		for x := x1; x < x1+count; x++ {
			c.cells[rs+x] = blank
		}
	} else {
		n := -count
		if n > x2-x1+1 {
			n = x2 - x1 + 1
		}
		for x := x1; x <= x2-n; x++ {
			c.cells[rs+x] = c.cells[rs+x+n]
		}
		for x := x2 - n + 1; x <= x2; x++ {
			c.cells[rs+x] = blank
		}
	}
	c.clearSelectionIfIntersectsLocked(y)
	c.paintLocked(x1, x2, y)
}
