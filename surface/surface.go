// Package surface defines the capability interface the Console core
// drives to paint itself. Concrete drivers (pixel, GPU, curses-like)
// live outside this package; see glsurface for a reference OpenGL one.
package surface

// CursorKind distinguishes which on-screen caret a MoveCursor call moves.
type CursorKind int

const (
	Current CursorKind = iota
	SelectionStart
	SelectionEnd
)

// Handle is an opaque paint-batch token returned by Begin and passed back
// to every draw call made within the batch, and finally to End. A nil
// Handle means no surface is attached; callers must treat every draw
// primitive as a no-op in that case.
type Handle interface{}

// Attribute is the minimal per-cell styling information a surface needs
// to paint a run of text: foreground/background color indices (256 =
// default) and display flags. It intentionally mirrors console.Attribute
// without importing it, keeping this package free of a dependency on the
// grid implementation.
type Attribute struct {
	Fg, Bg uint16
	Bright, Dim, Underscore, Blink, Reverse, Hidden bool
}

// Surface is the set of operations the Console core invokes on a
// rendering surface. Implementations must tolerate being detached (see
// Console.Attach(nil)): once detached, the core stops calling into it
// until reattached, per spec's "surface detached during paint" error
// policy.
type Surface interface {
	// Begin opens a paint batch and returns a handle, or nil if no
	// surface is usable right now.
	Begin() Handle
	// End closes the paint batch opened by Begin.
	End(h Handle)

	// DrawText paints n code points starting at grid column x, row y,
	// one Attribute per code point.
	DrawText(h Handle, x, y int, codepoints []rune, attrs []Attribute)
	// ClearRect clears the inclusive rectangle [x1,x2]x[y1,y2] with bg.
	ClearRect(h Handle, x1, y1, x2, y2 int, bg uint16)
	// Scroll shifts the viewport rows [y1,y2] by count rows (positive
	// scrolls content down, negative scrolls up). y1==-1 && y2==-1
	// means "the whole viewport".
	Scroll(y1, y2, count int)
	// MoveCursor repositions one of the three on-screen carets.
	MoveCursor(kind CursorKind, x, y int)
	// Beep requests an audible or visual bell.
	Beep()
	// GetSize reports the surface's current geometry in cells.
	GetSize() (width, height int)
	// Resize requests the surface resize itself to width x height cells.
	Resize(width, height int)
	// SetTitle sets the window/tab title.
	SetTitle(title []rune)
	// SetScrollInfo reports the current scrollback viewport bounds.
	SetScrollInfo(top, bottom int)
	// SetMode reports a DEC/ANSI mode change for surfaces that reflect
	// mode state visually (e.g. a cursor-shape or mouse-reporting
	// indicator).
	SetMode(modeID int, value bool)
}
