// Package color implements the terminal's 8-color and 256-color palette.
package color

import "image/color"

// Default is the sentinel index meaning "no color set, use the surface's
// default foreground/background".
const Default uint16 = 256

// baseTable holds the 16 named ANSI colors, 0-7 normal and 8-15 bright.
var baseTable = [16]uint32{
	0x000000, 0xcd0000, 0x00cd00, 0xcdcd00,
	0x0000ee, 0xcd00cd, 0x00cdcd, 0xe5e5e5,
	0x7f7f7f, 0xff0000, 0x00ff00, 0xffff00,
	0x5c5cff, 0xff00ff, 0x00ffff, 0xffffff,
}

// sixStep holds the six channel levels used by the 216-color cube.
var sixStep = [6]uint8{0, 95, 135, 175, 215, 255}

// Palette256 is the full 256-entry indexed palette: 16 base colors, a
// 6x6x6 RGB cube at indices 16-231, and 24 greys at indices 232-255.
var Palette256 [256]color.RGBA

func init() {
	for i := 0; i < 16; i++ {
		Palette256[i] = rgbFromPacked(baseTable[i])
	}
	for c := 0; c < 216; c++ {
		r := sixStep[c/36]
		g := sixStep[(c/6)%6]
		b := sixStep[c%6]
		Palette256[16+c] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	for i := 0; i < 24; i++ {
		v := uint8(8 + i*10)
		Palette256[232+i] = color.RGBA{R: v, G: v, B: v, A: 0xff}
	}
}

func rgbFromPacked(v uint32) color.RGBA {
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
}

// Value resolves a color index in [0,256) to its RGBA value. Index 256
// (Default) is not resolvable here; callers substitute a surface-provided
// default color before calling Value.
func Value(index uint16) color.RGBA {
	if index >= 256 {
		return color.RGBA{A: 0xff}
	}
	return Palette256[index]
}

// IsDefault reports whether index is the "use surface default" sentinel.
func IsDefault(index uint16) bool {
	return index == Default
}

// Cube returns the palette index for the 216-color cube entry with the
// given channel levels, each in [0,5]. It implements the documented
// formula 16 + 36r + 6g + b.
func Cube(r, g, b int) uint16 {
	return uint16(16 + 36*r + 6*g + b)
}

// Grey returns the palette index for the nth (0-23) greyscale entry.
func Grey(n int) uint16 {
	return uint16(232 + n)
}
