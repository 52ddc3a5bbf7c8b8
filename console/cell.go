package console

import "github.com/kiidax/mvt/color"

// Attribute is the compact bit-packed per-cell style record: a 9-bit
// foreground index, a 9-bit background index (each in [0,256], 256 means
// "default"), and eight single-bit display flags.
type Attribute uint32

const (
	fgShift = 0
	bgShift = 9
	colorMask Attribute = 0x1ff

	wideBit       Attribute = 1 << 18
	noCharBit     Attribute = 1 << 19
	brightBit     Attribute = 1 << 20
	dimBit        Attribute = 1 << 21
	underscoreBit Attribute = 1 << 22
	blinkBit      Attribute = 1 << 23
	reverseBit    Attribute = 1 << 24
	hiddenBit     Attribute = 1 << 25
)

// DefaultAttribute is the attribute new cells and erase operations use
// before any SGR sequence has been seen: default foreground, default
// background, no flags set.
func DefaultAttribute() Attribute {
	var a Attribute
	a = a.WithFg(color.Default).WithBg(color.Default)
	return a
}

func (a Attribute) Fg() uint16 { return uint16((a >> fgShift) & colorMask) }
func (a Attribute) Bg() uint16 { return uint16((a >> bgShift) & colorMask) }

func (a Attribute) WithFg(v uint16) Attribute {
	return (a &^ (colorMask << fgShift)) | (Attribute(v) << fgShift)
}

func (a Attribute) WithBg(v uint16) Attribute {
	return (a &^ (colorMask << bgShift)) | (Attribute(v) << bgShift)
}

func (a Attribute) Wide() bool       { return a&wideBit != 0 }
func (a Attribute) NoChar() bool     { return a&noCharBit != 0 }
func (a Attribute) Bright() bool     { return a&brightBit != 0 }
func (a Attribute) Dim() bool        { return a&dimBit != 0 }
func (a Attribute) Underscore() bool { return a&underscoreBit != 0 }
func (a Attribute) Blink() bool      { return a&blinkBit != 0 }
func (a Attribute) Reverse() bool    { return a&reverseBit != 0 }
func (a Attribute) Hidden() bool     { return a&hiddenBit != 0 }

func (a Attribute) withFlag(bit Attribute, v bool) Attribute {
	if v {
		return a | bit
	}
	return a &^ bit
}

func (a Attribute) WithWide(v bool) Attribute       { return a.withFlag(wideBit, v) }
func (a Attribute) WithNoChar(v bool) Attribute     { return a.withFlag(noCharBit, v) }
func (a Attribute) WithBright(v bool) Attribute     { return a.withFlag(brightBit, v) }
func (a Attribute) WithDim(v bool) Attribute        { return a.withFlag(dimBit, v) }
func (a Attribute) WithUnderscore(v bool) Attribute { return a.withFlag(underscoreBit, v) }
func (a Attribute) WithBlink(v bool) Attribute      { return a.withFlag(blinkBit, v) }
func (a Attribute) WithReverse(v bool) Attribute    { return a.withFlag(reverseBit, v) }
func (a Attribute) WithHidden(v bool) Attribute     { return a.withFlag(hiddenBit, v) }

// Cell is one grid position: a code point plus its attribute record. A
// wide cell at column x is always immediately followed by a no_char cell
// at column x+1 whose Char is 0; clearing/copying routines must preserve
// both halves together.
type Cell struct {
	Char rune
	Attr Attribute
}

// Blank returns a cell holding a space painted with attr (background and
// flags preserved, foreground irrelevant since the cell is empty).
func Blank(attr Attribute) Cell {
	return Cell{Char: ' ', Attr: attr.WithWide(false).WithNoChar(false)}
}
