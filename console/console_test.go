package console

import (
	"testing"

	"github.com/kiidax/mvt/color"
)

func TestWrapAcrossRows(t *testing.T) {
	c := New(4, 2, 0)
	c.Write([]rune("ABCDE"))

	want := "ABCD"
	for i, r := range want {
		if got := c.GetCell(i, 0).Char; got != r {
			t.Errorf("row0[%d] = %q, want %q", i, got, r)
		}
	}
	if got := c.GetCell(0, 1).Char; got != 'E' {
		t.Errorf("row1[0] = %q, want 'E'", got)
	}
	for i := 1; i < 4; i++ {
		if got := c.GetCell(i, 1).Char; got != ' ' {
			t.Errorf("row1[%d] = %q, want blank", i, got)
		}
	}
	x, y := c.CursorPosition()
	if x != 1 || y != 1 {
		t.Errorf("cursor = (%d,%d), want (1,1)", x, y)
	}
}

func TestAttributeAppliesToWrittenCells(t *testing.T) {
	c := New(4, 2, 0)
	c.SetAttribute(DefaultAttribute().WithFg(1).WithBg(4))
	c.Write([]rune("X"))
	c.SetAttribute(DefaultAttribute())
	c.Write([]rune("Y"))

	cellX := c.GetCell(0, 0)
	if cellX.Char != 'X' || cellX.Attr.Fg() != 1 || cellX.Attr.Bg() != 4 {
		t.Errorf("cell(0,0) = %+v, want X fg=1 bg=4", cellX)
	}
	cellY := c.GetCell(1, 0)
	if cellY.Char != 'Y' || cellY.Attr.Fg() != color.Default || cellY.Attr.Bg() != color.Default {
		t.Errorf("cell(1,0) = %+v, want Y fg=default bg=default", cellY)
	}
}

func TestEraseLineFromCursor(t *testing.T) {
	c := New(4, 1, 0)
	c.Write([]rune("ABCD"))
	c.MoveCursor(2, 0)
	c.EraseLine(0)

	want := "AB  "
	for i, r := range want {
		if got := c.GetCell(i, 0).Char; got != r {
			t.Errorf("row0[%d] = %q, want %q", i, got, r)
		}
	}
	x, y := c.CursorPosition()
	if x != 2 || y != 0 {
		t.Errorf("cursor = (%d,%d), want (2,0)", x, y)
	}
}

func TestScrollRegionPinsOutsideRows(t *testing.T) {
	c := New(4, 4, 0)
	c.Write([]rune("0000"))
	c.CarriageReturn()
	c.LineFeed()
	c.Write([]rune("1111"))
	c.CarriageReturn()
	c.LineFeed()
	c.Write([]rune("2222"))
	c.CarriageReturn()
	c.LineFeed()
	c.Write([]rune("3333"))

	c.SetScrollRegion(1, 2)
	c.MoveCursor(0, 2)
	c.LineFeed()
	c.LineFeed()
	c.LineFeed()

	if got := c.GetCell(0, 0).Char; got != '0' {
		t.Errorf("row0 changed: got %q, want '0'", got)
	}
	if got := c.GetCell(0, 3).Char; got != '3' {
		t.Errorf("row3 changed: got %q, want '3'", got)
	}
	_, y := c.CursorPosition()
	if y != 2 {
		t.Errorf("cursor row = %d, want pinned at 2", y)
	}
}

func TestDoubleWidthGlyphPairing(t *testing.T) {
	c := New(4, 1, 0)
	c.Write([]rune{0x3042})

	first := c.GetCell(0, 0)
	second := c.GetCell(1, 0)
	if first.Char != 0x3042 || !first.Attr.Wide() {
		t.Errorf("cell(0,0) = %+v, want HIRAGANA A wide=true", first)
	}
	if second.Char != 0 || !second.Attr.NoChar() {
		t.Errorf("cell(1,0) = %+v, want char=0 no_char=true", second)
	}
	x, y := c.CursorPosition()
	if x != 2 || y != 0 {
		t.Errorf("cursor = (%d,%d), want (2,0)", x, y)
	}
}

func TestScrollbackRetainsRows(t *testing.T) {
	c := New(1, 1, 2)
	c.Write([]rune("A"))
	c.CarriageReturn()
	c.LineFeed()
	c.Write([]rune("B"))
	c.CarriageReturn()
	c.LineFeed()
	c.Write([]rune("C"))

	if got := c.GetCell(0, c.Top()).Char; got != 'C' {
		t.Errorf("viewport = %q, want 'C'", got)
	}

	want := []rune{'A', 'B', 'C'}
	for i, r := range want {
		if got := c.GetCell(0, i).Char; got != r {
			t.Errorf("virtual row %d = %q, want %q", i, got, r)
		}
	}
}

func TestSaveRestoreCursor(t *testing.T) {
	c := New(10, 5, 0)
	c.MoveCursor(3, 2)
	c.SaveCursor()
	c.MoveCursor(9, 4)
	c.RestoreCursor()

	x, y := c.CursorPosition()
	if x != 3 || y != 2 {
		t.Errorf("cursor = (%d,%d), want (3,2)", x, y)
	}
}

func TestEraseDisplayTwiceIsIdempotent(t *testing.T) {
	c := New(4, 4, 0)
	c.Write([]rune("ABCDEFGHIJ"))
	c.EraseDisplay(2)
	first := snapshot(c)
	c.EraseDisplay(2)
	second := snapshot(c)
	if first != second {
		t.Errorf("erase_display(2) not idempotent: %q vs %q", first, second)
	}
}

func TestSetScrollRegionTwiceEquivalentToOnce(t *testing.T) {
	a := New(4, 4, 0)
	a.SetScrollRegion(1, 2)

	b := New(4, 4, 0)
	b.SetScrollRegion(1, 2)
	b.SetScrollRegion(1, 2)

	if a.scrollY1 != b.scrollY1 || a.scrollY2 != b.scrollY2 {
		t.Errorf("scroll region differs: (%d,%d) vs (%d,%d)", a.scrollY1, a.scrollY2, b.scrollY1, b.scrollY2)
	}
}

func TestNoCharNeverAtColumnZero(t *testing.T) {
	c := New(4, 2, 0)
	c.Write([]rune{0x3042, 0x3042})
	for y := 0; y < 2; y++ {
		if c.GetCell(0, y).Attr.NoChar() {
			t.Errorf("row %d: no_char at column 0", y)
		}
	}
}

func TestCursorStaysWithinViewport(t *testing.T) {
	c := New(4, 2, 3)
	for i := 0; i < 20; i++ {
		c.LineFeed()
	}
	_, y := c.CursorPosition()
	if y < c.Top() || y >= c.Top()+2 {
		t.Errorf("cursor row %d out of viewport [%d,%d)", y, c.Top(), c.Top()+2)
	}
}

func snapshot(c *Console) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]rune, len(c.cells))
	for i, cell := range c.cells {
		out[i] = cell.Char
	}
	return string(out)
}
