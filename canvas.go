package sketchbook

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// DefaultCanvasSize is the side of the canvas a sketch gets when it does
// not declare a size.
const DefaultCanvasSize = 100

var (
	// ErrTainted is returned by pixel reads on a canvas holding
	// cross-origin content.
	ErrTainted = errors.New("sketchbook: canvas is tainted by cross-origin data")

	// ErrNoContext is returned by pixel reads on a detached canvas.
	ErrNoContext = errors.New("sketchbook: canvas has no drawing context")
)

// Canvas is a raster DrawingContext. It keeps the same observable state a
// browser canvas does: last stroke and fill styles, a CSS size that may
// differ from the backing pixel size, and a taint flag.
//
// The Canvas is not safe for concurrent use.
type Canvas struct {
	pix     *Pixmap
	width   int
	height  int
	density float64

	cssBackground string
	tainted       bool
	removed       bool

	ras   *vector.Rasterizer
	state canvasState
	stack []canvasState
	shape []vec2
}

// canvasState is the part of the canvas saved by Push and restored by Pop.
type canvasState struct {
	stroke   color.NRGBA
	fill     color.NRGBA
	doStroke bool
	doFill   bool
	weight   float64
	mode     ColorMode
	tx, ty   float64

	strokeStyle string
	fillStyle   string
}

// NewCanvas creates a canvas of w×h CSS pixels, cleared to transparent,
// with a black 1px stroke and a white fill.
func NewCanvas(w, h int, opts ...CanvasOption) *Canvas {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		density:       o.density,
		cssBackground: o.cssBackground,
		tainted:       o.tainted,
		ras:           vector.NewRasterizer(0, 0),
		state: canvasState{
			stroke:      color.NRGBA{A: 255},
			fill:        color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			doStroke:    true,
			doFill:      true,
			weight:      1,
			strokeStyle: "#000000",
			fillStyle:   "#ffffff",
		},
	}
	c.resize(w, h)
	return c
}

func (c *Canvas) resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.width, c.height = w, h
	c.pix = NewPixmap(int(math.Ceil(float64(w)*c.density)), int(math.Ceil(float64(h)*c.density)))
}

// Pixmap returns the backing pixel buffer.
func (c *Canvas) Pixmap() *Pixmap { return c.pix }

// Density returns the backing pixels per CSS pixel.
func (c *Canvas) Density() float64 { return c.density }

// Width returns the CSS width.
func (c *Canvas) Width() int { return c.width }

// Height returns the CSS height.
func (c *Canvas) Height() int { return c.height }

// CSSSize returns the size the canvas occupies on the page.
func (c *Canvas) CSSSize() (w, h int) { return c.width, c.height }

// CSSBackground returns the background color declared on the canvas
// element, or "".
func (c *Canvas) CSSBackground() string { return c.cssBackground }

// HasContext reports whether the canvas still has a drawing context.
// It turns false after NoCanvas.
func (c *Canvas) HasContext() bool { return !c.removed }

// Tainted reports whether pixel reads are blocked.
func (c *Canvas) Tainted() bool { return c.tainted }

// SetTainted marks or clears cross-origin content on the canvas.
func (c *Canvas) SetTainted(t bool) { c.tainted = t }

// StrokeStyle returns the last stroke style set on the canvas as a
// lowercase hex token.
func (c *Canvas) StrokeStyle() string { return c.state.strokeStyle }

// FillStyle returns the last fill style set on the canvas.
func (c *Canvas) FillStyle() string { return c.state.fillStyle }

// CurrentColorMode returns the active color mode.
func (c *Canvas) CurrentColorMode() ColorMode { return c.state.mode }

// ReadPixel returns the color at CSS position (x, y).
func (c *Canvas) ReadPixel(x, y int) (color.NRGBA, error) {
	if c.removed {
		return color.NRGBA{}, ErrNoContext
	}
	if c.tainted {
		return color.NRGBA{}, ErrTainted
	}
	px, py := int(float64(x)*c.density), int(float64(y)*c.density)
	if px < 0 || py < 0 || px >= c.pix.Width() || py >= c.pix.Height() {
		return color.NRGBA{}, fmt.Errorf("sketchbook: pixel (%d, %d) outside %dx%d canvas", x, y, c.width, c.height)
	}
	return c.pix.GetPixel(px, py), nil
}

// Snapshot returns a copy of the current pixels.
func (c *Canvas) Snapshot() (*Pixmap, error) {
	if c.removed {
		return nil, ErrNoContext
	}
	if c.tainted {
		return nil, ErrTainted
	}
	return c.pix.Clone(), nil
}

// CreateCanvas replaces the surface with a fresh w×h one and reattaches
// a detached canvas.
func (c *Canvas) CreateCanvas(w, h int) {
	c.removed = false
	c.resize(w, h)
}

// ResizeCanvas changes the surface size. Pixels are discarded.
func (c *Canvas) ResizeCanvas(w, h int) {
	c.resize(w, h)
}

// NoCanvas detaches the surface. Drawing calls become no-ops.
func (c *Canvas) NoCanvas() {
	c.removed = true
}

// Background clears the whole surface to col, ignoring translation.
func (c *Canvas) Background(col Color) {
	if c.removed {
		return
	}
	if rgba, ok := c.resolve(col); ok {
		c.pix.Clear(rgba)
	}
}

// Stroke sets the stroke color and enables stroking.
func (c *Canvas) Stroke(col Color) {
	rgba, ok := c.resolve(col)
	if !ok {
		return
	}
	c.state.stroke = rgba
	c.state.doStroke = true
	c.state.strokeStyle = styleString(rgba)
}

// NoStroke disables stroking. The stroke style is left as it was.
func (c *Canvas) NoStroke() { c.state.doStroke = false }

// Fill sets the fill color and enables filling.
func (c *Canvas) Fill(col Color) {
	rgba, ok := c.resolve(col)
	if !ok {
		return
	}
	c.state.fill = rgba
	c.state.doFill = true
	c.state.fillStyle = styleString(rgba)
}

// NoFill disables filling.
func (c *Canvas) NoFill() { c.state.doFill = false }

// StrokeWeight sets the stroke width in CSS pixels.
func (c *Canvas) StrokeWeight(w float64) {
	if w >= 0 && !math.IsNaN(w) {
		c.state.weight = w
	}
}

// ColorMode sets how Triple colors are read.
func (c *Canvas) ColorMode(m ColorMode) { c.state.mode = m }

// Translate shifts the origin.
func (c *Canvas) Translate(dx, dy float64) {
	c.state.tx += dx
	c.state.ty += dy
}

// ResetMatrix moves the origin back to the top-left corner.
func (c *Canvas) ResetMatrix() {
	c.state.tx, c.state.ty = 0, 0
}

// Push saves styles, color mode and translation.
func (c *Canvas) Push() {
	c.stack = append(c.stack, c.state)
}

// Pop restores the state saved by the matching Push.
// Without a matching Push it is a no-op.
func (c *Canvas) Pop() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Line strokes a segment.
func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	if c.removed || !c.state.doStroke {
		return
	}
	c.strokePath([]vec2{c.device(x1, y1), c.device(x2, y2)}, false)
}

// Arc draws an ellipse segment. With fill enabled the pie slice is
// filled; the stroke follows the curve only.
func (c *Canvas) Arc(x, y, w, h, start, stop float64) {
	if c.removed {
		return
	}
	start, stop, ok := arcSpan(start, stop)
	if !ok {
		return
	}
	pts := c.ellipsePoints(x, y, w/2, h/2, start, stop)
	if c.state.doFill {
		c.fillPath(append([]vec2{c.device(x, y)}, pts...))
	}
	if c.state.doStroke {
		c.strokePath(pts, false)
	}
}

// Circle draws a circle of diameter d.
func (c *Canvas) Circle(x, y, d float64) {
	if c.removed {
		return
	}
	pts := c.ellipsePoints(x, y, d/2, d/2, 0, 2*math.Pi)
	pts = pts[:len(pts)-1]
	if c.state.doFill {
		c.fillPath(pts)
	}
	if c.state.doStroke {
		c.strokePath(pts, true)
	}
}

// BeginShape starts collecting vertices.
func (c *Canvas) BeginShape() {
	c.shape = c.shape[:0]
}

// Vertex adds a vertex to the current shape.
func (c *Canvas) Vertex(x, y float64) {
	c.shape = append(c.shape, c.device(x, y))
}

// EndShape draws the collected vertices.
func (c *Canvas) EndShape(mode ShapeMode) {
	pts := c.shape
	c.shape = nil
	if c.removed || len(pts) == 0 {
		return
	}
	if c.state.doFill && len(pts) > 2 {
		c.fillPath(pts)
	}
	if c.state.doStroke {
		c.strokePath(pts, mode == Close)
	}
}

func (c *Canvas) resolve(col Color) (color.NRGBA, bool) {
	return ParseColor(NormalizeColor(col, c.state.mode == HSBMode))
}

func (c *Canvas) device(x, y float64) vec2 {
	return vec2{(x + c.state.tx) * c.density, (y + c.state.ty) * c.density}
}

// arcSpan reduces an arc to a start angle in [0, 2π) and a forward span
// of at most one full turn. Spans of 2π or more draw the full ellipse. It
// reports false for non-finite angles.
func arcSpan(start, stop float64) (float64, float64, bool) {
	const turn = 2 * math.Pi
	span := stop - start
	if math.IsNaN(span) || math.IsInf(span, 0) {
		return 0, 0, false
	}
	if span < turn {
		span = math.Mod(span, turn)
		if span < 0 {
			span += turn
		}
	} else {
		span = turn
	}
	start = math.Mod(start, turn)
	return start, start + span, true
}

// maxArcSegments caps the tessellation of one ellipse segment.
const maxArcSegments = 256

func (c *Canvas) ellipsePoints(x, y, rx, ry, start, stop float64) []vec2 {
	n := int(math.Ceil(math.Min(math.Abs(stop-start)/(math.Pi/32), maxArcSegments)))
	if n < 2 {
		n = 2
	}
	pts := make([]vec2, 0, n+1)
	for i := 0; i <= n; i++ {
		a := start + (stop-start)*float64(i)/float64(n)
		pts = append(pts, c.device(x+rx*math.Cos(a), y+ry*math.Sin(a)))
	}
	return pts
}

func styleString(c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatAlpha(float64(c.A)/255))
}

func formatAlpha(a float64) string {
	return fmt.Sprintf("%.3g", a)
}
