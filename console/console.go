// Package console implements the terminal's grid store: a ring-buffered
// two-dimensional array of character cells with attributes, a cursor, a
// scroll region, a selection, and a type-ahead input queue, with
// paint-coalescing hooks to a rendering surface.
package console

import (
	"fmt"
	"sync"

	"github.com/kiidax/mvt/surface"
)

// Console is the grid store. All mutation happens on a single logical
// thread (the embedder's main thread); the mutex here guards against
// accidental concurrent access rather than serializing a genuinely
// concurrent writer population — per spec, the Worker's background tasks
// never touch the Console directly.
type Console struct {
	mu sync.Mutex

	width, height int
	saveHeight    int

	cells []Cell // width * virtualHeight, ring-addressed

	offset int // ring rotation, 0 <= offset < virtualHeight
	top    int // scrollback rows above the viewport

	cursorX, cursorY         int
	saveCursorX, saveCursorY int // physical (viewport-relative)

	attr Attribute

	scrollY1, scrollY2 int // -1,-1 = no region set

	selX1, selY1, selX2, selY2 int // -1s = no selection

	title []rune

	input []rune // FIFO type-ahead queue

	showCursor bool

	surf   surface.Surface
	paintH surface.Handle // non-nil while inside Begin/End
}

// New creates a console with the given viewport size and scrollback
// depth.
func New(width, height, saveHeight int) *Console {
	c := &Console{}
	c.resize0(width, height, saveHeight)
	c.showCursor = true
	c.scrollY1, c.scrollY2 = -1, -1
	c.selX1, c.selY1, c.selX2, c.selY2 = -1, -1, -1, -1
	return c
}

func (c *Console) virtualHeight() int { return c.height + c.saveHeight }

// physicalRow maps a virtual row index to its physical offset into cells.
func (c *Console) physicalRow(virtualY int) int {
	vh := c.virtualHeight()
	return ((virtualY+c.offset)%vh + vh) % vh
}

func (c *Console) rowStart(virtualY int) int {
	return c.physicalRow(virtualY) * c.width
}

func (c *Console) cellAt(x, y int) Cell {
	return c.cells[c.rowStart(y)+x]
}

func (c *Console) setCellAt(x, y int, cell Cell) {
	c.cells[c.rowStart(y)+x] = cell
}

// Attach connects (or, with nil, detaches) a rendering surface. On
// attach, the console queries the surface's true geometry and resizes
// itself to match.
func (c *Console) Attach(s surface.Surface) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.surf = s
	if s == nil {
		return
	}
	w, h := s.GetSize()
	if w > 0 && h > 0 && (w != c.width || h != c.height) {
		c.resizeLocked(w, h, c.saveHeight)
	}
}

// GetSize returns the current viewport dimensions.
func (c *Console) GetSize() (width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width, c.height
}

// Resize reallocates the ring buffer for a new viewport/scrollback size.
// A non-positive width or height, or a negative saveHeight, is reported
// as an error and leaves the existing state unchanged; per spec this is
// the only fallible Console operation.
func (c *Console) Resize(width, height, saveHeight int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resizeLocked(width, height, saveHeight)
}

func (c *Console) resizeLocked(width, height, saveHeight int) error {
	if width <= 0 || height <= 0 || saveHeight < 0 {
		return fmt.Errorf("console: invalid size %dx%d save=%d", width, height, saveHeight)
	}
	c.resize0(width, height, saveHeight)
	return nil
}

// resize0 performs the buffer-reallocation algorithm: allocate new
// buffers, prefill with blanks carrying the current attribute, copy as
// many existing rows as fit while keeping the cursor visible, then
// install the new buffers. The scroll region is reset on every resize
// (xterm parity: Emacs depends on this) and the ring rotation resets to
// 0.
func (c *Console) resize0(width, height, saveHeight int) {
	newVH := height + saveHeight
	blank := Blank(c.attr)
	newCells := make([]Cell, width*newVH)
	for i := range newCells {
		newCells[i] = blank
	}

	if c.width > 0 && c.height > 0 && len(c.cells) > 0 {
		oldVH := c.virtualHeight()
		// Bias the copy so the cursor's row ends up inside the new
		// viewport: keep as many rows ending at the old cursor row as
		// will fit in newVH, newest rows last.
		copyHeight := oldVH
		if copyHeight > newVH {
			copyHeight = newVH
		}
		copyWidth := width
		if c.width < copyWidth {
			copyWidth = c.width
		}
		// Rows we keep are the copyHeight virtual rows ending at the
		// greater of (old cursorY) and (copyHeight-1), biased toward
		// keeping the cursor's row and everything below it.
		lastKept := c.cursorY
		if lastKept < copyHeight-1 {
			lastKept = copyHeight - 1
		}
		if lastKept > oldVH-1 {
			lastKept = oldVH - 1
		}
		firstKept := lastKept - copyHeight + 1
		if firstKept < 0 {
			firstKept = 0
		}

		destRow := newVH - (lastKept - firstKept + 1)
		if destRow < 0 {
			destRow = 0
		}
		for y := firstKept; y <= lastKept; y++ {
			srcStart := c.rowStart(y)
			dstStart := destRow * width
			n := copyWidth
			copy(newCells[dstStart:dstStart+n], c.cells[srcStart:srcStart+n])
			destRow++
		}

		newCursorY := destRow - 1 - (lastKept - c.cursorY)
		if newCursorY < 0 {
			newCursorY = 0
		}
		if newCursorY > newVH-1 {
			newCursorY = newVH - 1
		}
		c.cursorY = newCursorY
		if c.cursorX >= width {
			c.cursorX = width - 1
		}
	} else {
		c.cursorX, c.cursorY = 0, 0
	}

	c.width = width
	c.height = height
	c.saveHeight = saveHeight
	c.cells = newCells
	c.offset = 0

	// top and cursorY are recomputed so the cursor stays in view.
	if c.cursorY < height-1 {
		c.top = 0
	} else {
		c.top = c.cursorY - (height - 1)
		if c.top > saveHeight {
			c.top = saveHeight
		}
	}
	if c.cursorY < c.top {
		c.cursorY = c.top
	}
	if c.cursorY > c.top+height-1 {
		c.cursorY = c.top + height - 1
	}
	if c.cursorX < 0 {
		c.cursorX = 0
	}

	// xterm parity: resize resets the scroll region.
	c.scrollY1, c.scrollY2 = -1, -1
	c.selX1, c.selY1, c.selX2, c.selY2 = -1, -1, -1, -1
}

// SetTitle sets the window title.
func (c *Console) SetTitle(title []rune) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.title = append([]rune(nil), title...)
	if c.surf != nil {
		c.surf.SetTitle(c.title)
	}
}

// Title returns the current window title.
func (c *Console) Title() []rune {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]rune(nil), c.title...)
}

// Beep requests a bell from the attached surface.
func (c *Console) Beep() {
	c.mu.Lock()
	s := c.surf
	c.mu.Unlock()
	if s != nil {
		s.Beep()
	}
}

// SetShowCursor records the caret visibility flag (DECTCEM). The flag is
// not consulted when painting and is not passed on to the surface.
func (c *Console) SetShowCursor(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showCursor = v
}

// CursorPosition returns the cursor's virtual-coordinate position.
func (c *Console) CursorPosition() (x, y int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursorX, c.cursorY
}

// SetAttribute sets the attribute mirror used for subsequent writes and
// clears (the Terminal interpreter calls this after processing SGR).
func (c *Console) SetAttribute(a Attribute) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.attr = a
}

// Attribute returns the current write/clear attribute.
func (c *Console) Attribute() Attribute {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attr
}
