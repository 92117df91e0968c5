package sketchbook

// ColorMode selects how untagged Triple colors are read.
type ColorMode int

const (
	// RGBMode reads triples as red, green, blue in [0, 255].
	RGBMode ColorMode = iota
	// HSBMode reads triples as hue, saturation, brightness.
	HSBMode
)

// String returns the mode name.
func (m ColorMode) String() string {
	if m == HSBMode {
		return "HSB"
	}
	return "RGB"
}

// ShapeMode tells EndShape whether to close the outline.
type ShapeMode int

const (
	// Open leaves the last vertex unconnected to the first.
	Open ShapeMode = iota
	// Close connects the last vertex back to the first.
	Close
)

// DrawingContext is the capability surface a sketch draws through.
//
// Canvas rasterizes the calls; recording.Recorder turns them into vector
// shapes. Sketches never need to know which one they got.
type DrawingContext interface {
	Width() int
	Height() int

	// CreateCanvas and ResizeCanvas set the drawing surface size.
	// NoCanvas detaches the surface.
	CreateCanvas(w, h int)
	ResizeCanvas(w, h int)
	NoCanvas()

	Background(c Color)
	Stroke(c Color)
	NoStroke()
	Fill(c Color)
	NoFill()
	StrokeWeight(w float64)
	ColorMode(m ColorMode)

	Line(x1, y1, x2, y2 float64)
	// Arc draws the outline of an ellipse segment centered on (x, y) with
	// diameters w and h, from start to stop in radians.
	Arc(x, y, w, h, start, stop float64)
	Circle(x, y, d float64)

	BeginShape()
	Vertex(x, y float64)
	EndShape(mode ShapeMode)

	Translate(dx, dy float64)
	// ResetMatrix clears the translation. Run calls it before every frame.
	ResetMatrix()
	Push()
	Pop()
}

// VectorTarget is implemented by contexts that produce vector documents.
// A sketch that wants a fresh document of its own calls NewDocument; the
// new document replaces the context's active one.
type VectorTarget interface {
	NewDocument(w, h int)
}

// HookFunc is a sketch entry point.
type HookFunc func(dc DrawingContext) error

// Hooks are the optional entry points of a sketch.
//
// Trace is a dedicated recording routine. Draw runs once per frame and
// Setup once before the first frame. Exporters try them in that order.
type Hooks struct {
	Trace HookFunc
	Draw  HookFunc
	Setup HookFunc
}

// Empty reports whether no entry point is set.
func (h Hooks) Empty() bool {
	return h.Trace == nil && h.Draw == nil && h.Setup == nil
}

// Sketch describes a drawing routine and the ambient constants it is
// authored against.
type Sketch struct {
	// Name is the registry key, e.g. "rainbow".
	Name string
	// Title is a human readable label. Empty means derive from Name.
	Title string

	// Width and Height are the initial canvas size. Setup may resize it.
	Width, Height int

	// NP is the reference pixel size the sketch is authored against.
	// DXF and PDF exports map NP pixels to 210 mm.
	NP int

	// Background and StrokeColor are the sketch's declared defaults,
	// used by exporters when the canvas offers nothing better.
	Background  Color
	StrokeColor Color

	// NoLoop limits Run to a single Draw call.
	NoLoop bool

	Hooks Hooks
}
