package console

// Scroll copies the preserved rows of the virtual span [y1,y2] toward the
// appropriate end of that span within the ring, then clears the
// newly-exposed |count| rows using the current background attribute and
// notifies the surface. count > 0 scrolls down (content moves down,
// cleared rows appear at the top of the span); count < 0 scrolls up. A
// -1 value for y1 or y2 means "the top of the viewport" / "the bottom of
// the viewport" respectively. A span covering exactly the viewport is
// reported to the surface as Scroll(-1, -1, count).
func (c *Console) Scroll(y1, y2, count int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scrollLocked(y1, y2, count)
}

func (c *Console) scrollLocked(y1, y2, count int) {
	if y1 == -1 {
		y1 = c.top
	}
	if y2 == -1 {
		y2 = c.top + c.height - 1
	}
	if count == 0 || y1 > y2 {
		return
	}
	span := y2 - y1 + 1
	abs := count
	if abs < 0 {
		abs = -abs
	}
	if abs > span {
		abs = span
	}
	keep := span - abs

	if count < 0 {
		// Scroll up: rows [y1+abs, y2] move to [y1, y2-abs]; the
		// bottom abs rows are cleared.
		for i := 0; i < keep; i++ {
			c.copyRow(y1+abs+i, y1+i)
		}
		for i := 0; i < abs; i++ {
			c.clearRow(y2-abs+1+i)
		}
	} else {
		// Scroll down: rows [y1, y2-abs] move to [y1+abs, y2]; the top
		// abs rows are cleared. Copy from the bottom up to avoid
		// clobbering source rows before they're read.
		for i := keep - 1; i >= 0; i-- {
			c.copyRow(y1+i, y1+abs+i)
		}
		for i := 0; i < abs; i++ {
			c.clearRow(y1 + i)
		}
	}

	if y1 == c.top && y2 == c.top+c.height-1 {
		if c.surf != nil {
			c.surf.Scroll(-1, -1, count)
		}
	} else if c.surf != nil {
		c.surf.Scroll(y1-c.top, y2-c.top, count)
	}
}

func (c *Console) copyRow(srcY, dstY int) {
	src := c.rowStart(srcY)
	dst := c.rowStart(dstY)
	copy(c.cells[dst:dst+c.width], c.cells[src:src+c.width])
}

func (c *Console) clearRow(y int) {
	blank := Blank(c.attr)
	rs := c.rowStart(y)
	for x := 0; x < c.width; x++ {
		c.cells[rs+x] = blank
	}
}

// InsertLines inserts count blank lines at the cursor's row, shifting
// existing lines (down to the bottom of the active region) downward.
func (c *Console) InsertLines(count int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	end := c.virtualHeight() - 1
	if c.scrollY2 != -1 {
		end = c.scrollY2
	}
	c.scrollLocked(c.cursorY, end, count)
}

// DeleteLines deletes count lines starting at the cursor's row (or the
// top of the active region, whichever is lower), shifting lines below
// upward.
func (c *Console) DeleteLines(count int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	start := c.cursorY
	if c.scrollY1 != -1 && c.scrollY1 > start {
		start = c.scrollY1
	}
	end := c.virtualHeight() - 1
	if c.scrollY2 != -1 {
		end = c.scrollY2
	}
	c.scrollLocked(start, end, -count)
}
