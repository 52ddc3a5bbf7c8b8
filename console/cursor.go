package console

// MoveCursor moves the cursor to an absolute position. A -1 coordinate
// means "leave that axis unchanged". Both axes are clamped into the
// viewport: [0,width) x [top, top+height).
func (c *Console) MoveCursor(x, y int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if x >= 0 {
		c.cursorX = clamp(x, 0, c.width-1)
	}
	if y >= 0 {
		c.cursorY = clamp(c.top+y, c.top, c.top+c.height-1)
	}
	c.repaintCursorLocked()
}

// MoveCursorRelative applies (dx, dy) to the current position, then
// clamps.
func (c *Console) MoveCursorRelative(dx, dy int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cursorX = clamp(c.cursorX+dx, 0, c.width-1)
	c.cursorY = clamp(c.cursorY+dy, c.top, c.top+c.height-1)
	c.repaintCursorLocked()
}

// SaveCursor records the cursor position in physical (viewport-relative)
// coordinates, per DECSC.
func (c *Console) SaveCursor() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.saveCursorX = c.cursorX
	c.saveCursorY = c.cursorY - c.top
}

// RestoreCursor writes back the saved cursor position, per DECRC.
func (c *Console) RestoreCursor() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cursorX = clamp(c.saveCursorX, 0, c.width-1)
	c.cursorY = clamp(c.top+c.saveCursorY, c.top, c.top+c.height-1)
	c.repaintCursorLocked()
}

// ForwardTabstops advances the cursor by n tab stops of width 8, always
// rounding down to the next lower multiple of 8 and clamping to
// width-1.
func (c *Console) ForwardTabstops(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	x := (c.cursorX + 8*n) &^ 7
	c.cursorX = clamp(x, 0, c.width-1)
	c.repaintCursorLocked()
}

// SetScrollRegion sets the DEC scroll region in virtual coordinates
// relative to the viewport (0-based rows within [0,height)), or clears it
// when y1 >= y2 or out of range. Setting the same region twice is a
// no-op, matching the idempotence property.
func (c *Console) SetScrollRegion(y1, y2 int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if y1 < 0 || y2 < 0 || y1 >= y2 || y2 >= c.height {
		c.scrollY1, c.scrollY2 = -1, -1
		return
	}
	c.scrollY1 = c.top + y1
	c.scrollY2 = c.top + y2
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
