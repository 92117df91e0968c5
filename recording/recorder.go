package recording

import (
	"fmt"

	"github.com/penplot/sketchbook"
	"github.com/penplot/sketchbook/svgdoc"
)

// Recorder is a sketchbook.DrawingContext that turns drawing calls into
// SVG shape elements instead of pixels.
//
// Lines become line elements, arcs become path elements and vertex shapes
// become polylines, polygons or, with exactly two vertices, lines. Each
// shape carries the stroke color, stroke weight and translation active
// when it was emitted. Calls that destroy or recreate the canvas are
// accepted and ignored, as are fills, backgrounds and circles.
//
// Example:
//
//	doc := svgdoc.New(800, 800, "#ffffff")
//	rec := recording.NewRecorder(doc, "#000000")
//	rec.Stroke(sketchbook.RGB{R: 255})
//	rec.Line(0, 0, 100, 100)
//	// doc now holds one <line stroke="rgb(255,0,0)">
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	target *svgdoc.Document
	doc    *svgdoc.Document

	stroke string
	weight float64
	dx, dy float64
	hsb    bool

	// Open shape
	vertices [][2]float64
	colors   []string

	// State stack
	stateStack []recorderState

	ignored int
}

// recorderState stores the recording state for Push/Pop.
type recorderState struct {
	stroke string
	weight float64
	dx, dy float64
	hsb    bool
}

// NewRecorder creates a Recorder appending to doc. Shapes start with
// defaultStroke and a 1px weight, in RGB color mode.
func NewRecorder(doc *svgdoc.Document, defaultStroke string) *Recorder {
	return &Recorder{
		target:     doc,
		doc:        doc,
		stroke:     defaultStroke,
		weight:     1,
		stateStack: make([]recorderState, 0, 8),
	}
}

// Document returns the active document: the one given to NewRecorder, or
// the last one started with NewDocument.
func (r *Recorder) Document() *svgdoc.Document { return r.doc }

// Target returns the document given to NewRecorder.
func (r *Recorder) Target() *svgdoc.Document { return r.target }

// StrokeColor returns the current stroke color string.
func (r *Recorder) StrokeColor() string { return r.stroke }

// HSB reports whether untagged colors are read as HSB.
func (r *Recorder) HSB() bool { return r.hsb }

// Ignored returns how many calls were accepted without producing output.
func (r *Recorder) Ignored() int { return r.ignored }

// result picks the document worth exporting: a document the sketch started
// itself wins when it has shapes.
func (r *Recorder) result() *svgdoc.Document {
	if r.doc != r.target && r.doc.HasShapes() {
		return r.doc
	}
	if r.target.HasShapes() {
		return r.target
	}
	return nil
}

// --------------------------------------------------------------------------
// Canvas guards
// --------------------------------------------------------------------------

// Width returns the active document width.
func (r *Recorder) Width() int {
	w, _ := r.doc.Size()
	return w
}

// Height returns the active document height.
func (r *Recorder) Height() int {
	_, h := r.doc.Size()
	return h
}

// CreateCanvas is ignored so the live canvas is never replaced.
func (r *Recorder) CreateCanvas(int, int) { r.ignore("createCanvas") }

// ResizeCanvas is ignored.
func (r *Recorder) ResizeCanvas(int, int) { r.ignore("resizeCanvas") }

// NoCanvas is ignored so the live canvas is never detached.
func (r *Recorder) NoCanvas() { r.ignore("noCanvas") }

// NewDocument starts a fresh w×h document and makes it active. It keeps
// the background of the target document.
func (r *Recorder) NewDocument(w, h int) {
	bg := ""
	if rect := r.target.Background(); rect != nil {
		bg = rect.Get("fill")
	}
	r.doc = svgdoc.New(w, h, bg)
	sketchbook.Logger().Debug("recording: sketch started its own document", "width", w, "height", h)
}

// --------------------------------------------------------------------------
// Color/Style
// --------------------------------------------------------------------------

// Stroke normalizes c and makes it the current stroke color.
func (r *Recorder) Stroke(c sketchbook.Color) {
	s := sketchbook.NormalizeColor(c, r.hsb)
	if s == "" && c != nil {
		s = rawColor(c)
	}
	r.stroke = s
}

// StrokeWeight sets the stroke width of subsequent shapes.
func (r *Recorder) StrokeWeight(w float64) { r.weight = w }

// ColorMode switches how untagged colors are read. It only affects the
// recording.
func (r *Recorder) ColorMode(m sketchbook.ColorMode) { r.hsb = m == sketchbook.HSBMode }

// NoStroke is ignored.
func (r *Recorder) NoStroke() { r.ignore("noStroke") }

// Fill is ignored.
func (r *Recorder) Fill(sketchbook.Color) { r.ignore("fill") }

// NoFill is ignored.
func (r *Recorder) NoFill() { r.ignore("noFill") }

// Background is ignored; the document background comes from the exporter.
func (r *Recorder) Background(sketchbook.Color) { r.ignore("background") }

// --------------------------------------------------------------------------
// Transform and state
// --------------------------------------------------------------------------

// Translate shifts subsequent shapes.
func (r *Recorder) Translate(dx, dy float64) {
	r.dx += dx
	r.dy += dy
}

// ResetMatrix clears the accumulated translation.
func (r *Recorder) ResetMatrix() {
	r.dx, r.dy = 0, 0
}

// Push saves stroke color, weight, translation and color mode.
func (r *Recorder) Push() {
	r.stateStack = append(r.stateStack, recorderState{
		stroke: r.stroke,
		weight: r.weight,
		dx:     r.dx,
		dy:     r.dy,
		hsb:    r.hsb,
	})
}

// Pop restores the state saved by the matching Push.
// If the state stack is empty, this is a no-op.
func (r *Recorder) Pop() {
	if len(r.stateStack) == 0 {
		return
	}
	state := r.stateStack[len(r.stateStack)-1]
	r.stateStack = r.stateStack[:len(r.stateStack)-1]

	r.stroke = state.stroke
	r.weight = state.weight
	r.dx = state.dx
	r.dy = state.dy
	r.hsb = state.hsb
}

// --------------------------------------------------------------------------
// Primitives
// --------------------------------------------------------------------------

// Line records a line element.
func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.doc.Append(svgdoc.NewLine(x1, y1, x2, y2, r.style(r.stroke)))
}

// Arc records a path element tracing the arc clockwise from start to stop.
func (r *Recorder) Arc(x, y, w, h, start, stop float64) {
	r.doc.Append(svgdoc.NewArcPath(x, y, w/2, h/2, start, stop, r.style(r.stroke)))
}

// Circle is ignored.
func (r *Recorder) Circle(float64, float64, float64) { r.ignore("circle") }

// BeginShape clears the vertex buffer.
func (r *Recorder) BeginShape() {
	r.vertices = r.vertices[:0]
	r.colors = r.colors[:0]
}

// Vertex appends a point tagged with the current stroke color.
func (r *Recorder) Vertex(x, y float64) {
	r.vertices = append(r.vertices, [2]float64{x, y})
	r.colors = append(r.colors, r.stroke)
}

// EndShape flushes the vertex buffer. Two vertices make a line in the color
// of the second vertex, so a shape can change color per segment. More
// vertices make a polyline, or a polygon for sketchbook.Close, in the
// current color. Fewer vertices produce nothing.
func (r *Recorder) EndShape(mode sketchbook.ShapeMode) {
	switch n := len(r.vertices); {
	case n == 2:
		a, b := r.vertices[0], r.vertices[1]
		stroke := r.colors[1]
		if stroke == "" {
			stroke = r.stroke
		}
		r.doc.Append(svgdoc.NewLine(a[0], a[1], b[0], b[1], r.style(stroke)))
	case n > 2:
		pts := make([][2]float64, n)
		copy(pts, r.vertices)
		r.doc.Append(svgdoc.NewPolyline(pts, mode == sketchbook.Close, r.style(r.stroke)))
	}
	r.vertices = r.vertices[:0]
	r.colors = r.colors[:0]
}

func (r *Recorder) style(stroke string) svgdoc.Style {
	return svgdoc.Style{Stroke: stroke, Width: r.weight, DX: r.dx, DY: r.dy}
}

func (r *Recorder) ignore(call string) {
	r.ignored++
	sketchbook.Logger().Debug("recording: call ignored", "call", call)
}

func rawColor(c sketchbook.Color) string {
	if s, ok := c.(sketchbook.CSS); ok {
		return string(s)
	}
	return fmt.Sprint(c)
}
