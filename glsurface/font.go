package glsurface

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const atlasSize = 2048

// fontSearchPaths are tried in order when a configured font name cannot
// be resolved to a path directly; these are the common install
// locations for a monospace TTF on Linux desktops.
var fontSearchPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationMono-Regular.ttf",
	"/usr/share/fonts/TTF/DejaVuSansMono.ttf",
}

// ResolveFontPath turns a configured font name into a loadable file
// path: a direct path that exists, or the first well-known monospace
// font found on the system.
func ResolveFontPath(name string) (string, error) {
	if name != "" {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}
	for _, p := range fontSearchPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("glsurface: no usable monospace font found (tried %q and system defaults)", name)
}

// glyph is the font atlas entry for one rendered code point, normalized
// atlas coordinates plus pixel dimensions for vertex layout.
type glyph struct {
	x, y          float32
	width, height float32
	pixelWidth    int
	pixelHeight   int
}

// charRanges mirrors the Nerd-Font-aware coverage the teacher's atlas
// builder renders: printable ASCII/Latin-1 plus the box-drawing and
// symbol blocks xterm-class terminals actually emit.
var charRanges = []struct{ start, end rune }{
	{32, 126},
	{160, 255},
	{0x2500, 0x257F}, // box drawing
	{0x2580, 0x259F}, // block elements
	{0x25A0, 0x25FF}, // geometric shapes
}

func loadFontFile(path string) ([]byte, error) {
	resolved, err := ResolveFontPath(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(resolved)
}

func (s *Surface) loadFont(data []byte, sizePt float64) error {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("glsurface: parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    sizePt,
		DPI:     96,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("glsurface: create face: %w", err)
	}
	defer face.Close()

	metrics := face.Metrics()
	s.cellHeight = float32((metrics.Ascent + metrics.Descent).Ceil())
	advance, _ := face.GlyphAdvance('M')
	s.cellWidth = float32(advance.Ceil())

	atlas := image.NewRGBA(image.Rect(0, 0, atlasSize, atlasSize))
	draw.Draw(atlas, atlas.Bounds(), image.Transparent, image.Point{}, draw.Src)
	drawer := &font.Drawer{Dst: atlas, Src: image.White, Face: face}

	charW, charH := int(s.cellWidth), int(s.cellHeight)
	x, y := 0, metrics.Ascent.Ceil()
	glyphs := make(map[rune]glyph)

	for _, cr := range charRanges {
		for c := cr.start; c <= cr.end; c++ {
			if x+charW > atlasSize {
				x = 0
				y += charH
			}
			if y+charH > atlasSize {
				break
			}
			if _, ok := face.GlyphAdvance(c); !ok {
				continue
			}
			drawer.Dot = fixed.P(x, y)
			drawer.DrawString(string(c))
			glyphs[c] = glyph{
				x:           float32(x) / atlasSize,
				y:           float32(y-metrics.Ascent.Ceil()) / atlasSize,
				width:       float32(charW) / atlasSize,
				height:      float32(charH) / atlasSize,
				pixelWidth:  charW,
				pixelHeight: charH,
			}
			x += charW
		}
	}

	alpha := make([]byte, atlasSize*atlasSize)
	for i := range alpha {
		alpha[i] = atlas.Pix[i*4+3]
	}

	if s.fontAtlas != 0 {
		gl.DeleteTextures(1, &s.fontAtlas)
	}
	gl.GenTextures(1, &s.fontAtlas)
	gl.BindTexture(gl.TEXTURE_2D, s.fontAtlas)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, atlasSize, atlasSize, 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(alpha))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	s.glyphs = glyphs
	return nil
}
