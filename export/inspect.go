package export

import (
	"errors"

	"github.com/penplot/sketchbook"
)

// CanvasColors is what an export can learn about colors from a canvas.
// Empty strings mean unknown.
type CanvasColors struct {
	StrokeStyle string
	FillStyle   string
	Background  string
}

// Inspect samples the canvas's current stroke and fill styles and the
// color of its top-left pixel.
//
// When the pixel cannot be read because the canvas is tainted, the CSS
// background declared on the canvas is used instead. A nil or detached
// canvas yields zero CanvasColors.
func Inspect(c *sketchbook.Canvas) CanvasColors {
	var out CanvasColors
	if c == nil || !c.HasContext() {
		return out
	}
	out.StrokeStyle = c.StrokeStyle()
	out.FillStyle = c.FillStyle()

	px, err := c.ReadPixel(0, 0)
	switch {
	case err == nil:
		out.Background = sketchbook.RGBString(px)
	case errors.Is(err, sketchbook.ErrTainted):
		out.Background = c.CSSBackground()
	default:
		sketchbook.Logger().Debug("export: background pixel unreadable", "err", err)
	}
	return out
}
