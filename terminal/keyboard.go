package terminal

import "github.com/kiidax/mvt/keys"

// KeyDown encodes a keypress and appends it to the console's type-ahead
// input queue, echoing it back through the console when echo mode is on.
//
// For a keypad/function key, the plain-character table is tried first
// unless application-numpad mode is active, falling back to an SS3/CSI
// application sequence. For an ordinary printable code point, the meta
// modifier either prefixes ESC (when meta-as-ESC is set) or sets the
// high bit.
func (t *Terminal) KeyDown(meta bool, code keys.Code) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []rune
	if code >= keys.Space {
		if !t.appNumpad {
			if ch := keys.ToChar(code); ch != 0 {
				out = []rune{rune(ch)}
			}
		}
		if out == nil {
			if seq := keys.ToAppSequence(code, t.normalCursorKeys); seq != nil {
				out = bytesToRunes(seq)
			}
		}
	} else {
		c := rune(code)
		if meta {
			if t.metaAsESC {
				out = []rune{0x1B, c}
			} else {
				out = []rune{c | 0x80}
			}
		} else {
			out = []rune{c}
		}
	}

	if len(out) == 0 {
		return
	}
	t.console.AppendInput(out)
	if t.echo {
		t.writeLocked(out)
	}
}

// KeyRune encodes an ordinary printable rune typed with the given meta
// modifier. It is the counterpart to KeyDown for runes outside the
// closed keys.Code enumeration.
func (t *Terminal) KeyRune(meta bool, r rune) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []rune
	if meta {
		if t.metaAsESC {
			out = []rune{0x1B, r}
		} else {
			out = []rune{r | 0x80}
		}
	} else {
		out = []rune{r}
	}
	t.console.AppendInput(out)
	if t.echo {
		t.writeLocked(out)
	}
}

func bytesToRunes(b []byte) []rune {
	out := make([]rune, len(b))
	for i, c := range b {
		out[i] = rune(c)
	}
	return out
}

// SetEcho toggles local echo of outbound key sequences back into the
// console.
func (t *Terminal) SetEcho(v bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.echo = v
}
