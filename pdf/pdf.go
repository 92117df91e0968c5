// Package pdf writes styled point sequences as vector strokes on a single
// PDF page, using the same pixel to millimetre mapping as the DXF encoder.
package pdf

import (
	"errors"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/penplot/sketchbook"
	"github.com/penplot/sketchbook/dxf"
	"github.com/penplot/sketchbook/geometry"
)

// ErrBadReference is returned for a non-positive reference size.
var ErrBadReference = errors.New("pdf: reference size must be positive")

// Page describes the sheet the paths are drawn on.
type Page struct {
	// NP is the reference size in pixels mapped to 210 mm.
	NP float64
	// Width and Height are the canvas size in pixels. When either is zero
	// the page is A4 portrait.
	Width, Height int
	// Title is stored in the document metadata.
	Title string
	// Compress enables stream compression.
	Compress bool
}

// Encode draws every path of at least two points with its own stroke
// color and scaled stroke width. Polygons are closed. Unlike DXF, the PDF
// page origin is the top-left corner, so Y is not flipped.
func Encode(w io.Writer, paths []geometry.Path, page Page) error {
	if !(page.NP > 0) {
		return ErrBadReference
	}
	scale := dxf.Scale(page.NP)

	init := &gofpdf.InitType{OrientationStr: "P", UnitStr: "mm", SizeStr: "A4"}
	if page.Width > 0 && page.Height > 0 {
		init.SizeStr = ""
		init.Size = gofpdf.SizeType{Wd: float64(page.Width) * scale, Ht: float64(page.Height) * scale}
	}
	p := gofpdf.NewCustom(init)
	p.SetCompression(page.Compress)
	p.SetCreator("sketchbook", true)
	if page.Title != "" {
		p.SetTitle(page.Title, true)
	}
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	for _, path := range paths {
		if len(path.Points) < 2 {
			continue
		}
		c, ok := sketchbook.ParseColor(path.Stroke)
		if !ok {
			c.R, c.G, c.B = 0, 0, 0
		}
		p.SetDrawColor(int(c.R), int(c.G), int(c.B))
		p.SetLineWidth(path.Width * scale)

		p.MoveTo(path.Points[0].X*scale, path.Points[0].Y*scale)
		for _, pt := range path.Points[1:] {
			p.LineTo(pt.X*scale, pt.Y*scale)
		}
		if path.Closed {
			p.ClosePath()
		}
		p.DrawPath("D")
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	return nil
}
