package glsurface

// Theme is the small palette glsurface needs beyond the 256-color
// table: the two colors a cell falls back to when its attribute says
// "default", the caret color, and the selection tint.
type Theme struct {
	Background [4]float32
	Foreground [4]float32
	Cursor     [4]float32
	Selection  [4]float32
}

// DefaultTheme matches the teacher's "raven-blue" palette.
func DefaultTheme() Theme {
	return Theme{
		Background: [4]float32{0.051, 0.063, 0.102, 1.0},
		Foreground: [4]float32{0.910, 0.929, 0.969, 1.0},
		Cursor:     [4]float32{0.635, 0.878, 0.780, 1.0},
		Selection:  [4]float32{0.455, 0.714, 1.0, 0.35},
	}
}
