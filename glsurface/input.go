package glsurface

import (
	"github.com/atotto/clipboard"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/kiidax/mvt/keys"
)

// glfwKeyCodes maps the GLFW keys that have a keys.Code counterpart;
// ordinary printable keys arrive through the char callback instead.
var glfwKeyCodes = map[glfw.Key]keys.Code{
	glfw.KeyTab:      keys.Tab,
	glfw.KeyEnter:    keys.Enter,
	glfw.KeyKPEnter:  keys.Enter,
	glfw.KeyHome:     keys.Home,
	glfw.KeyLeft:     keys.Left,
	glfw.KeyUp:       keys.Up,
	glfw.KeyRight:    keys.Right,
	glfw.KeyDown:     keys.Down,
	glfw.KeyPageUp:   keys.PageUp,
	glfw.KeyPageDown: keys.PageDown,
	glfw.KeyEnd:      keys.End,
	glfw.KeyInsert:   keys.Insert,
	glfw.KeyF1:       keys.F1,
	glfw.KeyF2:       keys.F2,
	glfw.KeyF3:       keys.F3,
	glfw.KeyF4:       keys.F4,
	glfw.KeyF5:       keys.F5,
	glfw.KeyF6:       keys.F6,
	glfw.KeyF7:       keys.F7,
	glfw.KeyF8:       keys.F8,
	glfw.KeyF9:       keys.F9,
	glfw.KeyF10:      keys.F10,
	glfw.KeyF11:      keys.F11,
	glfw.KeyF12:      keys.F12,
	glfw.KeyKP0:      keys.Digit0,
	glfw.KeyKP1:      keys.Digit1,
	glfw.KeyKP2:      keys.Digit2,
	glfw.KeyKP3:      keys.Digit3,
	glfw.KeyKP4:      keys.Digit4,
	glfw.KeyKP5:      keys.Digit5,
	glfw.KeyKP6:      keys.Digit6,
	glfw.KeyKP7:      keys.Digit7,
	glfw.KeyKP8:      keys.Digit8,
	glfw.KeyKP9:      keys.Digit9,
	glfw.KeyKPAdd:      keys.Add,
	glfw.KeyKPSubtract: keys.Subtract,
	glfw.KeyKPMultiply: keys.Multiply,
	glfw.KeyKPDivide:   keys.Divide,
	glfw.KeyKPDecimal:  keys.Decimal,
}

// installCallbacks wires GLFW input/window events to the terminal
// interpreter and worker. New installs them before Attach; each callback
// returns early until Attach has supplied its terminal or worker.
func (s *Surface) installCallbacks() {
	s.win.SetKeyCallback(s.onKey)
	s.win.SetCharCallback(s.onChar)
	s.win.SetMouseButtonCallback(s.onMouseButton)
	s.win.SetCursorPosCallback(s.onCursorPos)
	s.win.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {})
	s.win.SetSizeCallback(s.onWindowResize)
	s.win.SetCloseCallback(func(w *glfw.Window) {})
}

func (s *Surface) onWindowResize(w *glfw.Window, width, height int) {
	if s.cellWidth <= 0 || s.cellHeight <= 0 || s.work == nil {
		return
	}
	cols := int(float32(width) / s.cellWidth)
	rows := int(float32(height) / s.cellHeight)
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	s.work.DispatchResize(cols, rows)
}

func (s *Surface) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	if s.term == nil {
		return
	}
	ctrl := mods&glfw.ModControl != 0
	shift := mods&glfw.ModShift != 0
	meta := mods&glfw.ModAlt != 0

	if ctrl && shift && key == glfw.KeyC {
		s.copySelection()
		return
	}
	if ctrl && shift && key == glfw.KeyV {
		s.pasteClipboard()
		return
	}
	if key == glfw.KeyBackspace {
		s.term.KeyRune(meta, 0x7F)
		return
	}
	if key == glfw.KeyEscape {
		s.term.KeyRune(meta, 0x1B)
		return
	}
	if ctrl {
		if r := ctrlRune(key); r != 0 {
			s.term.KeyRune(meta, r)
			return
		}
	}
	if code, ok := glfwKeyCodes[key]; ok {
		s.term.KeyDown(meta, code)
		s.work.NotifyInputReady()
		return
	}
	if meta {
		// Alt with a printable key is left to the char callback,
		// which sends the character without the meta modifier.
	}
}

// ctrlRune maps a Ctrl+letter combination to its C0 control code.
func ctrlRune(key glfw.Key) rune {
	if key >= glfw.KeyA && key <= glfw.KeyZ {
		return rune(key-glfw.KeyA) + 1
	}
	return 0
}

func (s *Surface) onChar(w *glfw.Window, char rune) {
	if s.term == nil {
		return
	}
	s.term.KeyRune(false, char)
	s.work.NotifyInputReady()
}

func (s *Surface) onMouseButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if s.term == nil {
		return
	}
	x, y := w.GetCursorPos()
	cx, cy := s.pixelToCell(x, y)
	btn := 0
	if button == glfw.MouseButtonLeft {
		btn = 1
	}
	s.term.MouseButton(action == glfw.Press, btn, cx, cy, 0)
}

func (s *Surface) onCursorPos(w *glfw.Window, x, y float64) {
	if s.term == nil {
		return
	}
	cx, cy := s.pixelToCell(x, y)
	s.term.MouseMove(cx, cy, 0)
}

func (s *Surface) pixelToCell(x, y float64) (int, int) {
	s.mu.Lock()
	cw, ch := s.cellWidth, s.cellHeight
	s.mu.Unlock()
	if cw <= 0 || ch <= 0 {
		return 0, 0
	}
	return int(float32(x) / cw), int(float32(y) / ch)
}

func (s *Surface) copySelection() {
	if s.cons == nil {
		return
	}
	text := s.cons.CopySelection(false)
	if len(text) == 0 {
		return
	}
	clipboard.WriteAll(string(text))
}

func (s *Surface) pasteClipboard() {
	if s.term == nil {
		return
	}
	text, err := clipboard.ReadAll()
	if err != nil || text == "" {
		return
	}
	for _, r := range text {
		s.term.KeyRune(false, r)
	}
	s.work.NotifyInputReady()
}
