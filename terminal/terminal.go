// Package terminal implements a streaming parser/executor for
// ECMA-48/xterm escape sequences that drives a Console and generates
// outbound key/mouse sequences.
package terminal

import (
	"log"
	"sync"

	"github.com/kiidax/mvt/console"
)

// State is one of the parser's five defined states. Every code point
// consumed advances the state machine deterministically.
type State int

const (
	Normal State = iota
	Escape
	CSI
	OSC
	OSCText
)

const maxParams = 8
const maxTitleLength = 1024

// Terminal is the escape-sequence interpreter. It owns a Console and the
// mode flags that shape how control sequences and key/mouse events are
// encoded.
type Terminal struct {
	mu sync.Mutex

	console *console.Console

	state       State
	private     bool
	numParams   int
	params      [maxParams]int
	oscSelector int
	titleBuf    []rune

	// mode flags
	echo             bool
	metaAsESC        bool
	appNumpad        bool
	normalCursorKeys bool
	insertMode       bool
	vt200Mouse       bool
	showCursor       bool

	mouseCapture             bool
	mouseAnchorX, mouseAnchorY int
	mouseAnchorAlign          int

	// Logger receives traces for swallowed malformed sequences and
	// unsupported SGR codes. It is nil by default, which drops the
	// traces; set it to observe parser diagnostics.
	Logger *log.Logger
}

// New creates a terminal interpreter driving the given console. By
// default meta-as-ESC is set and echo is off, matching the reference
// implementation's initial mode flags.
func New(c *console.Console) *Terminal {
	t := &Terminal{
		console:    c,
		metaAsESC:  true,
		showCursor: true,
	}
	return t
}

func (t *Terminal) logf(format string, args ...interface{}) {
	if t.Logger != nil {
		t.Logger.Printf(format, args...)
	}
}

// Write processes a run of already-decoded code points, driving the
// Console as a side effect. The Worker's input task is responsible for
// UTF-8 decoding before calling Write.
func (t *Terminal) Write(chars []rune) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.writeLocked(chars)
}

func (t *Terminal) writeLocked(chars []rune) {
	t.console.Begin()
	defer t.console.End()

	i := 0
	for i < len(chars) {
		switch t.state {
		case Normal:
			i = t.writeNormal(chars, i)
		case Escape:
			t.writeEsc(chars[i])
			i++
		case CSI:
			t.writeCSI(chars[i])
			i++
		case OSC:
			t.writeOSC(chars[i])
			i++
		case OSCText:
			t.writeOSCText(chars[i])
			i++
		}
	}
}

// writeNormal handles the NORMAL state. It dispatches a single C0
// control, or forwards a maximal run of printable code points to the
// console.
func (t *Terminal) writeNormal(chars []rune, i int) int {
	ch := chars[i]
	if ch < 0x20 {
		t.writeControl(ch)
		return i + 1
	}
	start := i
	for i < len(chars) && chars[i] >= 0x20 {
		i++
	}
	run := chars[start:i]
	if t.insertMode {
		t.console.InsertChars(len(run))
	}
	t.console.Write(run)
	return i
}

func (t *Terminal) writeControl(ch rune) {
	switch ch {
	case 0x00:
		// ignore
	case 0x07:
		t.console.Beep()
	case 0x08:
		t.console.MoveCursorRelative(-1, 0)
	case 0x09:
		t.console.ForwardTabstops(1)
	case 0x0A, 0x0B, 0x0C:
		t.console.LineFeed()
	case 0x0D:
		t.console.CarriageReturn()
	case 0x1B:
		t.state = Escape
	default:
		t.logf("terminal: ignoring C0 control 0x%02x", ch)
	}
}
