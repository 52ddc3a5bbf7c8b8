package glsurface

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	mvtcolor "github.com/kiidax/mvt/color"
	"github.com/kiidax/mvt/surface"
)

// Render redraws the whole cell cache and swaps the window's buffers.
// The host calls this once per frame after PollEvents.
func (s *Surface) Render() {
	s.mu.Lock()
	defer s.mu.Unlock()

	fbw, fbh := s.win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.ClearColor(s.theme.Background[0], s.theme.Background[1], s.theme.Background[2], s.theme.Background[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	proj := orthoMatrix(0, float32(fbw), float32(fbh), 0, -1, 1)

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			cell := s.cells[y][x]
			fg, bg := s.resolveColors(cell.attr)
			if bg != s.theme.Background {
				s.drawRect(float32(x)*s.cellWidth, float32(y)*s.cellHeight, s.cellWidth, s.cellHeight, bg, proj)
			}
			if cell.r != ' ' && cell.r != 0 {
				s.drawGlyph(float32(x)*s.cellWidth, float32(y+1)*s.cellHeight, cell.r, fg, proj)
			}
		}
	}

	s.drawSelection(proj)
	if s.showCursor {
		s.drawRect(float32(s.cursorX)*s.cellWidth, float32(s.cursorY)*s.cellHeight, s.cellWidth, s.cellHeight, s.theme.Cursor, proj)
	}

	s.win.SwapBuffers()
}

func (s *Surface) drawSelection(proj [16]float32) {
	if s.selStartY < 0 || s.selEndY < 0 {
		return
	}
	y1, y2 := s.selStartY, s.selEndY
	for y := y1; y <= y2; y++ {
		x1, x2 := 0, s.width
		if y == y1 {
			x1 = s.selStartX
		}
		if y == y2 {
			x2 = s.selEndX
		}
		if x2 <= x1 {
			continue
		}
		s.drawRect(float32(x1)*s.cellWidth, float32(y)*s.cellHeight, float32(x2-x1)*s.cellWidth, s.cellHeight, s.theme.Selection, proj)
	}
}

func (s *Surface) resolveColors(attr surface.Attribute) (fg, bg [4]float32) {
	fg = s.theme.Foreground
	bg = s.theme.Background
	if attr.Fg != mvtcolor.Default {
		c := mvtcolor.Value(attr.Fg)
		fg = [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, 1}
	}
	if attr.Bg != mvtcolor.Default {
		c := mvtcolor.Value(attr.Bg)
		bg = [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, 1}
	}
	if attr.Reverse {
		fg, bg = bg, fg
	}
	if attr.Dim {
		fg[0] *= 0.6
		fg[1] *= 0.6
		fg[2] *= 0.6
	}
	if attr.Hidden {
		fg = bg
	}
	return fg, bg
}

func (s *Surface) drawRect(x, y, w, h float32, clr [4]float32, proj [16]float32) {
	vertices := []float32{
		x, y,
		x + w, y,
		x + w, y + h,
		x, y,
		x + w, y + h,
		x, y + h,
	}
	gl.UseProgram(s.program)
	gl.UniformMatrix4fv(s.projLoc, 1, false, &proj[0])
	gl.Uniform4fv(s.colorLoc, 1, &clr[0])
	gl.BindVertexArray(s.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.quadVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

func (s *Surface) drawGlyph(x, y float32, r rune, clr [4]float32, proj [16]float32) {
	g, ok := s.glyphs[r]
	if !ok {
		g, ok = s.glyphs['?']
		if !ok {
			return
		}
	}
	w := float32(g.pixelWidth)
	h := float32(g.pixelHeight)
	tx, ty, tw, th := g.x, g.y, g.width, g.height

	vertices := []float32{
		x, y - h, tx, ty,
		x + w, y - h, tx + tw, ty,
		x + w, y, tx + tw, ty + th,
		x, y - h, tx, ty,
		x + w, y, tx + tw, ty + th,
		x, y, tx, ty + th,
	}
	gl.UseProgram(s.fontProgram)
	gl.UniformMatrix4fv(s.texProjLoc, 1, false, &proj[0])
	gl.Uniform4fv(s.texColorLoc, 1, &clr[0])
	gl.Uniform1i(s.texLoc, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, s.fontAtlas)
	gl.BindVertexArray(s.fontVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.fontVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}
