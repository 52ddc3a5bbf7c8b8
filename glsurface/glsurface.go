// Package glsurface is a reference implementation of surface.Surface
// backed by an OpenGL 4.1 core-profile GLFW window. It mirrors every
// cell the Console pushes to it in a small CPU-side cache and redraws
// the cache as textured quads once per host frame.
package glsurface

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/kiidax/mvt/console"
	"github.com/kiidax/mvt/surface"
	"github.com/kiidax/mvt/terminal"
	"github.com/kiidax/mvt/worker"
)

func init() {
	// GLFW requires its event loop to run on the thread that created
	// the window.
	runtime.LockOSThread()
}

// Config is the window/font configuration used to open a Surface.
type Config struct {
	Width, Height int // initial size in cells
	Title         string
	FontPath      string
	FontSize      float64
	Theme         Theme
}

// DefaultConfig returns an 80x24 window with the default theme and a
// 13pt rendering size.
func DefaultConfig() Config {
	return Config{Width: 80, Height: 24, Title: "mvt", FontSize: 13, Theme: DefaultTheme()}
}

type cellEntry struct {
	r    rune
	attr surface.Attribute
}

// Surface is the OpenGL Surface driver. It is not safe for concurrent
// use from goroutines other than the one that called New: GLFW
// and OpenGL calls must stay on the thread that owns the context.
type Surface struct {
	win *glfw.Window

	mu            sync.Mutex
	width, height int // cells
	cellWidth     float32
	cellHeight    float32
	cells         [][]cellEntry

	cursorX, cursorY         int
	selStartX, selStartY     int
	selEndX, selEndY         int
	showCursor               bool
	scrollTop, scrollBottom  int
	modes                    map[int]bool

	theme Theme

	glyphs      map[rune]glyph
	fontAtlas   uint32
	program     uint32
	fontProgram uint32
	colorLoc    int32
	projLoc     int32
	texColorLoc int32
	texProjLoc  int32
	texLoc      int32
	quadVAO     uint32
	quadVBO     uint32
	fontVAO     uint32
	fontVBO     uint32

	// term/work wire keyboard/mouse/resize callbacks to the interpreter
	// and its background I/O; set by Attach.
	term *terminal.Terminal
	work *worker.Worker
	cons *console.Console
}

// New creates the window, initializes OpenGL, and loads the font. The
// caller drives the event/render loop with PollEvents and Render.
func New(cfg Config) (*Surface, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glsurface: init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)

	s := &Surface{
		width:  cfg.Width,
		height: cfg.Height,
		theme:  cfg.Theme,
		modes:  make(map[int]bool),
	}
	if s.width <= 0 {
		s.width = 80
	}
	if s.height <= 0 {
		s.height = 24
	}

	win, err := glfw.CreateWindow(800, 600, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glsurface: create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("glsurface: init gl: %w", err)
	}
	glfw.SwapInterval(1)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	s.win = win
	if icons := windowIcons(); len(icons) > 0 {
		win.SetIcon(icons)
	}

	if err := s.initGL(); err != nil {
		s.Destroy()
		return nil, err
	}

	fontSize := cfg.FontSize
	if fontSize <= 0 {
		fontSize = 13
	}
	fontData, err := loadFontFile(cfg.FontPath)
	if err != nil {
		s.Destroy()
		return nil, err
	}
	if err := s.loadFont(fontData, fontSize); err != nil {
		s.Destroy()
		return nil, err
	}

	s.cells = newCellGrid(s.width, s.height)
	win.SetSize(int(s.cellWidth*float32(s.width)), int(s.cellHeight*float32(s.height)))

	s.installCallbacks()
	return s, nil
}

func newCellGrid(width, height int) [][]cellEntry {
	cells := make([][]cellEntry, height)
	for y := range cells {
		cells[y] = make([]cellEntry, width)
		for x := range cells[y] {
			cells[y][x] = cellEntry{r: ' '}
		}
	}
	return cells
}

func (s *Surface) initGL() error {
	vert := `
		#version 410 core
		layout (location = 0) in vec2 aPos;
		uniform mat4 projection;
		void main() { gl_Position = projection * vec4(aPos, 0.0, 1.0); }
	` + "\x00"
	frag := `
		#version 410 core
		out vec4 FragColor;
		uniform vec4 color;
		void main() { FragColor = color; }
	` + "\x00"
	var err error
	s.program, err = createProgram(vert, frag)
	if err != nil {
		return err
	}
	s.colorLoc = gl.GetUniformLocation(s.program, gl.Str("color\x00"))
	s.projLoc = gl.GetUniformLocation(s.program, gl.Str("projection\x00"))

	textVert := `
		#version 410 core
		layout (location = 0) in vec4 vertex;
		out vec2 TexCoords;
		uniform mat4 projection;
		void main() {
			gl_Position = projection * vec4(vertex.xy, 0.0, 1.0);
			TexCoords = vertex.zw;
		}
	` + "\x00"
	textFrag := `
		#version 410 core
		in vec2 TexCoords;
		out vec4 FragColor;
		uniform sampler2D text;
		uniform vec4 textColor;
		void main() {
			float alpha = texture(text, TexCoords).r;
			FragColor = vec4(textColor.rgb, textColor.a * alpha);
		}
	` + "\x00"
	s.fontProgram, err = createProgram(textVert, textFrag)
	if err != nil {
		return err
	}
	s.texColorLoc = gl.GetUniformLocation(s.fontProgram, gl.Str("textColor\x00"))
	s.texProjLoc = gl.GetUniformLocation(s.fontProgram, gl.Str("projection\x00"))
	s.texLoc = gl.GetUniformLocation(s.fontProgram, gl.Str("text\x00"))

	gl.GenVertexArrays(1, &s.quadVAO)
	gl.GenBuffers(1, &s.quadVBO)
	gl.BindVertexArray(s.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, 6*2*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	gl.GenVertexArrays(1, &s.fontVAO)
	gl.GenBuffers(1, &s.fontVBO)
	gl.BindVertexArray(s.fontVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.fontVBO)
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 4*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return nil
}

// Attach wires this surface to the terminal/console/worker triple it
// will drive keyboard, mouse, and resize events for. Call this before
// entering the event loop.
func (s *Surface) Attach(term *terminal.Terminal, cons *console.Console, w *worker.Worker) {
	s.term = term
	s.cons = cons
	s.work = w
	cons.Attach(s)
}

// ShouldClose reports whether the window's close box requested
// termination.
func (s *Surface) ShouldClose() bool { return s.win.ShouldClose() }

// PollEvents processes pending GLFW events, invoking any installed
// callbacks. It must run on the same OS thread as New.
func PollEvents() { glfw.PollEvents() }

// Destroy releases the window and terminates GLFW.
func (s *Surface) Destroy() {
	if s.win != nil {
		s.win.Destroy()
	}
	glfw.Terminate()
}
