package terminal

import "github.com/kiidax/mvt/console"

// writeSGR processes every parameter of a CSI ... m (Select Graphic
// Rendition) sequence against the console's current attribute mirror.
// Extends the reference implementation with explicit 38;5;n / 48;5;n
// 256-color support, mandated by spec even though the C original's SGR
// parser only reaches indexed colors implicitly through its 9-bit color
// field.
func (t *Terminal) writeSGR() {
	attr := t.console.Attribute()
	i := 0
	for i < t.numParams {
		code := t.params[i]
		switch {
		case code == 0:
			attr = console.DefaultAttribute()
		case code == 1:
			attr = attr.WithBright(true).WithDim(false)
		case code == 2:
			attr = attr.WithBright(false).WithDim(true)
		case code == 4:
			attr = attr.WithUnderscore(true)
		case code == 5:
			attr = attr.WithBlink(true)
		case code == 7:
			attr = attr.WithReverse(true)
		case code == 8:
			attr = attr.WithHidden(true)
		case code == 22:
			attr = attr.WithBright(false).WithDim(false)
		case code == 24:
			attr = attr.WithUnderscore(false)
		case code == 25:
			attr = attr.WithBlink(false)
		case code == 27:
			attr = attr.WithReverse(false)
		case code == 28:
			attr = attr.WithHidden(false)
		case code >= 30 && code <= 37:
			attr = attr.WithFg(uint16(code - 30))
		case code == 38:
			if i+2 < t.numParams && t.params[i+1] == 5 {
				attr = attr.WithFg(uint16(t.params[i+2]))
				i += 2
			} else {
				t.logf("terminal: unsupported extended foreground SGR sequence")
			}
		case code == 39:
			attr = attr.WithFg(defaultColorIndex)
		case code >= 40 && code <= 47:
			attr = attr.WithBg(uint16(code - 40))
		case code == 48:
			if i+2 < t.numParams && t.params[i+1] == 5 {
				attr = attr.WithBg(uint16(t.params[i+2]))
				i += 2
			} else {
				t.logf("terminal: unsupported extended background SGR sequence")
			}
		case code == 49:
			attr = attr.WithBg(defaultColorIndex)
		default:
			t.logf("terminal: unsupported SGR code %d", code)
		}
		i++
	}
	t.console.SetAttribute(attr)
}

const defaultColorIndex = 256
