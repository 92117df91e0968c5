package sketchbook

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// Plain 800x800 canvas
//	c := sketchbook.NewCanvas(800, 800)
//
//	// Retina-style backing store with a CSS background
//	c := sketchbook.NewCanvas(800, 800,
//	    sketchbook.WithPixelDensity(2),
//	    sketchbook.WithCSSBackground("#fafafa"))
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	density       float64
	cssBackground string
	tainted       bool
}

func defaultCanvasOptions() canvasOptions {
	return canvasOptions{density: 1}
}

// WithPixelDensity sets the ratio between backing pixels and CSS pixels.
// Values below or equal to zero are ignored.
func WithPixelDensity(d float64) CanvasOption {
	return func(o *canvasOptions) {
		if d > 0 {
			o.density = d
		}
	}
}

// WithCSSBackground sets the background color declared on the canvas
// element itself. Inspectors fall back to it when pixels are unreadable.
func WithCSSBackground(c string) CanvasOption {
	return func(o *canvasOptions) {
		o.cssBackground = c
	}
}

// WithTainted marks the canvas as holding cross-origin content, so pixel
// reads fail with ErrTainted.
func WithTainted() CanvasOption {
	return func(o *canvasOptions) {
		o.tainted = true
	}
}
