// Package width computes the display width (1 or 2 columns) of a code
// point using a fixed East-Asian-width range table.
package width

// wideRange is one half-open width-2 span [lo, hi).
type wideRange struct {
	lo, hi rune
}

// wideRanges lists every code point span whose glyphs occupy two grid
// columns. Boundaries are exact, not approximated: every other code point
// is width 1.
var wideRanges = []wideRange{
	{0x1100, 0x1160},
	{0x2329, 0x232b},
	{0x2e80, 0x2e9a},
	{0x2e9b, 0x2ef4},
	{0x2f00, 0x2fd6},
	{0x2ff0, 0x2ffc},
	{0x3000, 0x303f},
	{0x3041, 0x3097},
	{0x3099, 0x3100},
	{0x3105, 0x312e},
	{0x3131, 0x318f},
	{0x3190, 0x31bb},
	{0x31c0, 0x31e4},
	{0x31f0, 0x321f},
	{0x3220, 0x3248},
	{0x3250, 0x32ff},
	{0x3300, 0x4dc0},
	{0x4e00, 0xa48d},
	{0xa490, 0xa4c7},
	{0xa960, 0xa97d},
	{0xf900, 0xfb00},
	{0xfe10, 0xfe1a},
	{0xfe30, 0xfe53},
	{0xfe54, 0xfe67},
	{0xfe68, 0xfe6c},
	{0xff01, 0xff61},
	{0xffe0, 0xffe7},
}

// RuneWidth returns the display width of r: 1 for ordinary glyphs, 2 for
// wide East-Asian glyphs.
func RuneWidth(r rune) int {
	lo, hi := 0, len(wideRanges)
	for lo < hi {
		mid := (lo + hi) / 2
		rg := wideRanges[mid]
		if r < rg.lo {
			hi = mid
		} else if r >= rg.hi {
			lo = mid + 1
		} else {
			return 2
		}
	}
	return 1
}

// StringWidth returns the sum of RuneWidth over every rune in s.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}
