package terminal

// writeCSI handles the CSI state: parameter accumulation and final-byte
// dispatch.
func (t *Terminal) writeCSI(ch rune) {
	switch {
	case ch == '?' && t.numParams == 0 && t.params[0] == 0:
		t.private = true
	case ch >= '0' && ch <= '9':
		if t.numParams < maxParams {
			t.params[t.numParams] = t.params[t.numParams]*10 + int(ch-'0')
		}
	case ch == ';':
		if t.numParams < maxParams-1 {
			t.numParams++
		}
	case ch == 0x1B:
		t.state = Escape
	case (ch >= '@' && ch <= 'Z') || (ch >= 'a' && ch <= 'z'):
		t.numParams++
		if t.private {
			t.writeCSI1(ch)
		} else {
			t.writeCSI0(ch)
		}
		t.state = Normal
	default:
		t.logf("terminal: aborting CSI on %q", ch)
		t.state = Normal
	}
}

// param returns the index'th parameter, substituting def when it was
// omitted (encoded as 0, per ECMA-48 convention).
func (t *Terminal) param(index, def int) int {
	if index >= t.numParams || t.params[index] == 0 {
		return def
	}
	return t.params[index]
}

// writeCSI0 dispatches public CSI final bytes.
func (t *Terminal) writeCSI0(final rune) {
	switch final {
	case '@':
		t.console.InsertChars(t.param(0, 1))
	case 'A':
		t.console.MoveCursorRelative(0, -t.param(0, 1))
	case 'B':
		t.console.MoveCursorRelative(0, t.param(0, 1))
	case 'C':
		t.console.MoveCursorRelative(t.param(0, 1), 0)
	case 'D':
		t.console.MoveCursorRelative(-t.param(0, 1), 0)
	case 'G':
		t.console.MoveCursor(t.param(0, 1)-1, -1)
	case 'H':
		t.console.MoveCursor(t.param(1, 1)-1, t.param(0, 1)-1)
	case 'J':
		t.console.EraseDisplay(t.param(0, 0))
	case 'K':
		t.console.EraseLine(t.param(0, 0))
	case 'L':
		t.console.InsertLines(t.param(0, 1))
	case 'M':
		t.console.DeleteLines(t.param(0, 1))
	case 'P':
		t.console.DeleteChars(t.param(0, 1))
	case 'X':
		t.console.EraseChars(t.param(0, 1))
	case 'd':
		t.console.MoveCursor(-1, t.param(0, 1)-1)
	case 'h', 'l':
		t.writeSM(final == 'h')
	case 'm':
		t.writeSGR()
	case 'r':
		t.console.SetScrollRegion(t.param(0, 1)-1, t.param(1, t.viewportHeight())-1)
	default:
		t.logf("terminal: unsupported CSI final %q", final)
	}
}

func (t *Terminal) viewportHeight() int {
	_, h := t.console.GetSize()
	return h
}

// writeSM handles ANSI set-mode/reset-mode. Only IRM (insert mode) is
// implemented; other mode numbers are logged and ignored.
func (t *Terminal) writeSM(set bool) {
	for i := 0; i < t.numParams; i++ {
		switch t.params[i] {
		case 4: // IRM
			t.insertMode = set
		default:
			t.logf("terminal: unsupported ANSI mode %d", t.params[i])
		}
	}
}

// writeCSI1 dispatches private (DEC `?`) CSI final bytes.
func (t *Terminal) writeCSI1(final rune) {
	switch final {
	case 'h', 'l':
		t.writeDECSet(final == 'h')
	default:
		t.logf("terminal: unsupported private CSI final %q", final)
	}
}

// writeDECSet handles DEC private set-mode/reset-mode.
func (t *Terminal) writeDECSet(set bool) {
	for i := 0; i < t.numParams; i++ {
		switch t.params[i] {
		case 0:
			// ignored
		case 1: // DECCKM
			t.normalCursorKeys = set
		case 25: // DECTCEM
			t.showCursor = set
			t.console.SetShowCursor(set)
		case 1000: // VT200MOUSE
			t.vt200Mouse = set
		default:
			t.logf("terminal: unsupported DEC mode %d", t.params[i])
		}
	}
}
