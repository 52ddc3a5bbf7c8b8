package console

import "github.com/kiidax/mvt/width"

// Write consumes chars in passes: each pass writes as many glyphs as fit
// on the current row starting at cursorX. A glyph of display width 2
// occupies two cells: the first gets the code point and wide=1, the
// second gets code point 0 and no_char=1. When the next glyph would
// exceed width, the pass ends; if input remains, the cursor performs a
// carriage-return then a line-feed and the next pass begins.
func (c *Console) Write(chars []rune) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := 0
	for i < len(chars) {
		rowStart := i
		for i < len(chars) {
			w := width.RuneWidth(chars[i])
			if c.cursorX+w > c.width {
				break
			}
			c.clearSelectionIfIntersectsLocked(c.cursorY)
			if w == 2 {
				c.setCellAt(c.cursorX, c.cursorY, Cell{Char: chars[i], Attr: c.attr.WithWide(true).WithNoChar(false)})
				c.setCellAt(c.cursorX+1, c.cursorY, Cell{Char: 0, Attr: c.attr.WithWide(false).WithNoChar(true)})
			} else {
				c.setCellAt(c.cursorX, c.cursorY, Cell{Char: chars[i], Attr: c.attr.WithWide(false).WithNoChar(false)})
			}
			c.cursorX += w
			i++
		}
		if i > rowStart {
			c.paintLocked(0, c.width-1, c.cursorY)
		}
		if i == rowStart {
			// The single next glyph is wider than the whole row; drop
			// it to guarantee forward progress.
			i++
			continue
		}
		if i < len(chars) {
			c.carriageReturnLocked()
			c.lineFeedLocked()
		}
	}
	c.repaintCursorLocked()
}

// CarriageReturn moves the cursor to column 0.
func (c *Console) CarriageReturn() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.carriageReturnLocked()
	c.repaintCursorLocked()
}

func (c *Console) carriageReturnLocked() {
	c.cursorX = 0
}

// LineFeed advances the cursor by one row, scrolling or rotating the
// ring as needed. This is the five-case algorithm:
//  1. cursor on the last row of an active scroll region: scroll the
//     region up by one, cursor stays put.
//  2. cursor strictly above the bottom of the viewport: just move down.
//  3. a scroll region is set but the cursor is below it: pinned, no-op.
//  4. scrollback has room: grow the viewport by one row.
//  5. otherwise: rotate the ring by one row, dropping the oldest row
//     (the top scrollback row, or the top viewport row when there is
//     no scrollback).
func (c *Console) LineFeed() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lineFeedLocked()
	c.repaintCursorLocked()
}

func (c *Console) lineFeedLocked() {
	switch {
	case c.scrollY2 != -1 && c.cursorY == c.scrollY2:
		c.scrollLocked(c.scrollY1, c.scrollY2, -1)
	case c.cursorY < c.top+c.height-1:
		c.cursorY++
	case c.scrollY1 != -1:
		// pinned below the region
	case c.top+c.height < c.virtualHeight():
		c.top++
		c.cursorY++
		if c.surf != nil {
			c.surf.SetScrollInfo(c.top, c.top+c.height)
		}
	default:
		vh := c.virtualHeight()
		c.offset = (c.offset + 1) % vh
		blank := Blank(c.attr)
		row := c.top + c.height - 1
		rs := c.rowStart(row)
		for x := 0; x < c.width; x++ {
			c.cells[rs+x] = blank
		}
		if c.selY1 != -1 {
			if c.selY1 == 0 {
				c.selX1, c.selY1, c.selX2, c.selY2 = -1, -1, -1, -1
			} else {
				c.selY1--
				c.selY2--
			}
		}
		if c.surf != nil {
			c.surf.Scroll(-1, -1, -1)
		}
	}
}

// ReverseIndex moves the cursor up by one row when a scroll region is set
// and the cursor is below its top row. Otherwise it scrolls down by one:
// the scroll region if one is set, else the whole viewport.
func (c *Console) ReverseIndex() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.scrollY1 != -1 && c.cursorY > c.scrollY1 {
		c.cursorY--
	} else {
		c.scrollLocked(c.scrollY1, c.scrollY2, 1)
	}
	c.repaintCursorLocked()
}

func (c *Console) clearSelectionIfIntersectsLocked(row int) {
	if c.selY1 == -1 {
		return
	}
	if row >= c.selY1 && row <= c.selY2 {
		c.selX1, c.selY1, c.selX2, c.selY2 = -1, -1, -1, -1
	}
}
