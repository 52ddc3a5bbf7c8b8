package terminal

// MouseButton reports a button press (down=true) or release (down=false)
// at grid position (x,y). With VT200 mouse mode enabled the event is
// encoded as an escape sequence and queued as input; otherwise a press
// starts (and a release ends) a selection drag.
func (t *Terminal) MouseButton(down bool, button, x, y, align int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.vt200Mouse {
		if button == 0 {
			return
		}
		bx := 3 + 32
		if down {
			bx = (button - 1) + 32
		}
		seq := []rune{0x1B, '[', 'M', rune(bx), rune(x + 1 + 32), rune(y + 1 + 32)}
		t.console.AppendInput(seq)
		return
	}

	if down {
		t.mouseCapture = true
		t.mouseAnchorX, t.mouseAnchorY, t.mouseAnchorAlign = x, y, align
	} else {
		t.mouseCapture = false
	}
}

// MouseMove updates the in-progress selection drag started by
// MouseButton(true, ...). It is a no-op when VT200 mouse mode is active
// or no drag is in progress.
func (t *Terminal) MouseMove(x, y, align int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.vt200Mouse || !t.mouseCapture {
		return
	}

	x1, y1, align1 := t.mouseAnchorX, t.mouseAnchorY, t.mouseAnchorAlign
	x2, y2, align2 := x, y, align

	after := y1 > y2 || (y1 == y2 && (x1 > x2 || (x1 == x2 && align1 > align2)))
	if after {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
		align1, align2 = align2, align1
	}
	if align2 == 0 {
		x2++
	}
	t.console.SetSelection(x1, y1, align1, x2, y2, align2)
}
