package terminal

import (
	"testing"

	"github.com/kiidax/mvt/color"
	"github.com/kiidax/mvt/console"
)

func TestSGRSetsColorAndResets(t *testing.T) {
	c := console.New(4, 1, 0)
	term := New(c)
	term.Write([]rune("\x1b[31;44mX\x1b[0mY"))

	cellX := c.GetCell(0, 0)
	if cellX.Char != 'X' || cellX.Attr.Fg() != 1 || cellX.Attr.Bg() != 4 {
		t.Errorf("cell(0,0) = %+v, want X fg=1 bg=4", cellX)
	}
	cellY := c.GetCell(1, 0)
	if cellY.Char != 'Y' || cellY.Attr.Fg() != color.Default || cellY.Attr.Bg() != color.Default {
		t.Errorf("cell(1,0) = %+v, want Y fg=default bg=default", cellY)
	}
}

func TestExtended256ColorSGR(t *testing.T) {
	c := console.New(2, 1, 0)
	term := New(c)
	term.Write([]rune("\x1b[38;5;201mX"))

	cell := c.GetCell(0, 0)
	if cell.Attr.Fg() != 201 {
		t.Errorf("fg = %d, want 201", cell.Attr.Fg())
	}
}

func TestCursorPositioningThenErase(t *testing.T) {
	c := console.New(4, 1, 0)
	term := New(c)
	term.Write([]rune("ABCD"))
	term.Write([]rune("\x1b[1;3H"))
	term.Write([]rune("\x1b[K"))

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

func TestScrollRegionViaCSI(t *testing.T) {
	c := console.New(4, 4, 0)
	term := New(c)
	term.Write([]rune("0000\r\n1111\r\n2222\r\n3333"))
	term.Write([]rune("\x1b[2;3r"))
	c.MoveCursor(0, 2)
	term.Write([]rune("\n\n\n"))

	if got := c.GetCell(0, 0).Char; got != '0' {
		t.Errorf("row0 changed: %q", got)
	}
	if got := c.GetCell(0, 3).Char; got != '3' {
		t.Errorf("row3 changed: %q", got)
	}
}

func TestMalformedSequenceReturnsToNormal(t *testing.T) {
	c := console.New(4, 1, 0)
	term := New(c)
	term.Write([]rune("\x1b[999zX"))

	if got := c.GetCell(0, 0).Char; got != 'X' {
		t.Errorf("after junk CSI, got %q, want 'X' written in NORMAL state", got)
	}
}

func TestOSCSetsTitleOnlyForRecognizedSelectors(t *testing.T) {
	c := console.New(4, 1, 0)
	term := New(c)
	term.Write([]rune("\x1b]0;hello\x07"))

	if got := string(c.Title()); got != "hello" {
		t.Errorf("title = %q, want %q", got, "hello")
	}
}

func TestOSCUnrecognizedSelectorStillTerminates(t *testing.T) {
	c := console.New(4, 1, 0)
	term := New(c)
	term.Write([]rune("\x1b]9;ignored\x07X"))

	if got := string(c.Title()); got != "" {
		t.Errorf("title = %q, want empty (selector 9 not recognized)", got)
	}
	if got := c.GetCell(0, 0).Char; got != 'X' {
		t.Errorf("parser did not return to NORMAL after OSC terminator")
	}
}

func TestParserNeverLeavesDefinedStates(t *testing.T) {
	c := console.New(4, 1, 0)
	term := New(c)
	junk := []rune("\x1b[1;junk\x1b]garbage\x07\x1bZ\x1bOP")
	term.Write(junk)
	switch term.state {
	case Normal, Escape, CSI, OSC, OSCText:
	default:
		t.Errorf("parser in undefined state %v", term.state)
	}
}
