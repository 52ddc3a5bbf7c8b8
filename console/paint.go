package console

import "github.com/kiidax/mvt/surface"

// Begin opens a paint batch on the attached surface and repaints the
// cursor cell so the caret is visually current at the start of a batch
// of mutations. If no surface is attached it does nothing, and every
// draw call inside the batch is a no-op.
func (c *Console) Begin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.surf == nil {
		return
	}
	c.paintH = c.surf.Begin()
	c.repaintCursorLocked()
}

// End repaints the cursor cell once more and releases the paint handle.
func (c *Console) End() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.surf == nil {
		return
	}
	c.repaintCursorLocked()
	c.surf.End(c.paintH)
	c.paintH = nil
}

func (c *Console) repaintCursorLocked() {
	if c.surf == nil {
		return
	}
	c.surf.MoveCursor(surface.Current, c.cursorX, c.cursorY-c.top)
}

// paintLocked issues a draw_text call for the row span [x1,x2] at row y,
// only when inside a paint batch. Mutations outside a batch only touch
// buffers; the surface catches up on the next explicit repaint.
func (c *Console) paintLocked(x1, x2, y int) {
	if c.surf == nil || c.paintH == nil {
		return
	}
	if y < c.top || y >= c.top+c.height {
		return
	}
	n := x2 - x1 + 1
	if n <= 0 {
		return
	}
	codepoints := make([]rune, n)
	attrs := make([]surface.Attribute, n)
	for i := 0; i < n; i++ {
		cell := c.cellAt(x1+i, y)
		codepoints[i] = cell.Char
		attrs[i] = toSurfaceAttribute(cell.Attr)
	}
	c.surf.DrawText(c.paintH, x1, y-c.top, codepoints, attrs)
}

func (c *Console) clearRectLocked(x1, y1, x2, y2 int) {
	if c.surf == nil || c.paintH == nil {
		return
	}
	c.surf.ClearRect(c.paintH, x1, y1-c.top, x2, y2-c.top, c.attr.Bg())
}

func toSurfaceAttribute(a Attribute) surface.Attribute {
	return surface.Attribute{
		Fg:         a.Fg(),
		Bg:         a.Bg(),
		Bright:     a.Bright(),
		Dim:        a.Dim(),
		Underscore: a.Underscore(),
		Blink:      a.Blink(),
		Reverse:    a.Reverse(),
		Hidden:     a.Hidden(),
	}
}

// Repaint forces a full redraw of the viewport, used when the surface is
// reattached after having been detached.
func (c *Console) Repaint() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.surf == nil {
		return
	}
	h := c.surf.Begin()
	c.paintH = h
	for y := c.top; y < c.top+c.height; y++ {
		c.paintLocked(0, c.width-1, y)
	}
	c.repaintCursorLocked()
	c.surf.End(h)
	c.paintH = nil
}
