package terminal

import "github.com/kiidax/mvt/console"

// writeEsc handles the ESC state's single-character final bytes. Every
// path except '[' and ']' returns to NORMAL.
func (t *Terminal) writeEsc(ch rune) {
	switch ch {
	case '7':
		t.console.SaveCursor()
		t.state = Normal
	case '8':
		t.console.RestoreCursor()
		t.state = Normal
	case '=':
		t.appNumpad = true
		t.state = Normal
	case '>':
		t.appNumpad = false
		t.state = Normal
	case '[':
		t.resetParams()
		t.state = CSI
	case ']':
		t.resetParams()
		t.oscSelector = 0
		t.titleBuf = t.titleBuf[:0]
		t.state = OSC
	case 'D':
		t.console.LineFeed()
		t.state = Normal
	case 'E':
		t.console.CarriageReturn()
		t.console.LineFeed()
		t.state = Normal
	case 'M':
		t.console.ReverseIndex()
		t.state = Normal
	case 'c':
		t.fullReset()
		t.state = Normal
	default:
		t.logf("terminal: ignoring ESC final %q", ch)
		t.state = Normal
	}
}

func (t *Terminal) resetParams() {
	t.private = false
	t.numParams = 0
	for i := range t.params {
		t.params[i] = 0
	}
}

// fullReset implements ESC c (RIS): attributes, modes, and scroll region
// return to their power-on defaults and the display is cleared.
func (t *Terminal) fullReset() {
	t.echo = false
	t.metaAsESC = true
	t.appNumpad = false
	t.normalCursorKeys = false
	t.insertMode = false
	t.vt200Mouse = false
	t.showCursor = true
	t.console.SetAttribute(console.DefaultAttribute())
	t.console.SetShowCursor(true)
	t.console.SetScrollRegion(-1, -1)
	t.console.EraseDisplay(2)
	t.console.MoveCursor(0, 0)
}
