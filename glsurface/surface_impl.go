package glsurface

import "github.com/kiidax/mvt/surface"

// paintHandle is the Handle glsurface hands back from Begin; it carries
// no state since every draw call mutates the shared cell cache directly
// under s.mu.
type paintHandle struct{}

func (s *Surface) Begin() surface.Handle { return paintHandle{} }

func (s *Surface) End(h surface.Handle) {}

func (s *Surface) DrawText(h surface.Handle, x, y int, codepoints []rune, attrs []surface.Attribute) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if y < 0 || y >= s.height {
		return
	}
	for i, r := range codepoints {
		cx := x + i
		if cx < 0 || cx >= s.width {
			continue
		}
		attr := surface.Attribute{}
		if i < len(attrs) {
			attr = attrs[i]
		}
		s.cells[y][cx] = cellEntry{r: r, attr: attr}
	}
}

func (s *Surface) ClearRect(h surface.Handle, x1, y1, x2, y2 int, bg uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for y := y1; y <= y2 && y < s.height; y++ {
		if y < 0 {
			continue
		}
		for x := x1; x <= x2 && x < s.width; x++ {
			if x < 0 {
				continue
			}
			s.cells[y][x] = cellEntry{r: ' ', attr: surface.Attribute{Fg: bg, Bg: bg}}
		}
	}
}

func (s *Surface) Scroll(y1, y2, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if y1 == -1 && y2 == -1 {
		y1, y2 = 0, s.height-1
	}
	if count == 0 || y1 < 0 || y2 >= s.height || y1 > y2 {
		return
	}
	blank := func() []cellEntry {
		row := make([]cellEntry, s.width)
		for i := range row {
			row[i] = cellEntry{r: ' '}
		}
		return row
	}
	if count > 0 {
		for y := y2; y >= y1+count; y-- {
			s.cells[y] = s.cells[y-count]
		}
		for y := y1; y < y1+count && y <= y2; y++ {
			s.cells[y] = blank()
		}
	} else {
		n := -count
		for y := y1; y <= y2-n; y++ {
			s.cells[y] = s.cells[y+n]
		}
		for y := y2 - n + 1; y <= y2; y++ {
			if y >= y1 {
				s.cells[y] = blank()
			}
		}
	}
}

func (s *Surface) MoveCursor(kind surface.CursorKind, x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch kind {
	case surface.Current:
		s.cursorX, s.cursorY = x, y
	case surface.SelectionStart:
		s.selStartX, s.selStartY = x, y
	case surface.SelectionEnd:
		s.selEndX, s.selEndY = x, y
	}
}

func (s *Surface) Beep() {
	s.win.RequestAttention()
}

func (s *Surface) GetSize() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

func (s *Surface) Resize(width, height int) {
	s.mu.Lock()
	s.width, s.height = width, height
	s.cells = newCellGrid(width, height)
	s.mu.Unlock()
	s.win.SetSize(int(s.cellWidth*float32(width)), int(s.cellHeight*float32(height)))
}

func (s *Surface) SetTitle(title []rune) {
	s.win.SetTitle(string(title))
}

func (s *Surface) SetScrollInfo(top, bottom int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scrollTop, s.scrollBottom = top, bottom
}

func (s *Surface) SetMode(modeID int, value bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modes[modeID] = value
}
