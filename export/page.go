package export

import (
	"github.com/penplot/sketchbook"
	"github.com/penplot/sketchbook/svgdoc"
)

// DefaultReference is the reference size used when neither the canvas nor
// the sketch declares one.
const DefaultReference = 800

// OverlayID is the id given to the document shown in place of the canvas
// after a vector SVG export.
const OverlayID = "export-svg-overlay"

// Page is everything an export can see: the live canvas, an optional
// vector document the sketch attached itself, and the sketch's ambient
// constants.
//
// A Page is not safe for concurrent use; Exporter serializes access.
type Page struct {
	// Sketch supplies hooks and defaults. It may be nil.
	Sketch *sketchbook.Sketch

	// Document is an author-attached vector document. When it holds shapes
	// it is exported as is, without replaying the sketch.
	Document *svgdoc.Document

	// SaveFallback is the drawing library's own save routine, used for PNG
	// when the canvas cannot be exported.
	SaveFallback func(name string) error

	canvas  *sketchbook.Canvas
	overlay *svgdoc.Document
}

// NewPage returns a page showing canvas c for sketch s.
func NewPage(s *sketchbook.Sketch, c *sketchbook.Canvas) *Page {
	return &Page{Sketch: s, canvas: c}
}

// Canvas returns the canvas in the page, or nil once it has been replaced
// by an overlay or when there never was one.
func (p *Page) Canvas() *sketchbook.Canvas {
	if p.overlay != nil {
		return nil
	}
	return p.canvas
}

// Overlay returns the document that replaced the canvas, if any.
func (p *Page) Overlay() *svgdoc.Document { return p.overlay }

// ReplaceCanvas puts overlay in the canvas slot. It is a no-op when no
// canvas is in the page.
func (p *Page) ReplaceCanvas(overlay *svgdoc.Document) {
	if p.Canvas() == nil {
		return
	}
	p.overlay = overlay
}

// NP returns the sketch's reference size, or DefaultReference.
func (p *Page) NP() int {
	if p.Sketch != nil && p.Sketch.NP > 0 {
		return p.Sketch.NP
	}
	return DefaultReference
}

// Size returns the canvas CSS size, falling back to NP for missing
// dimensions.
func (p *Page) Size() (w, h int) {
	np := p.NP()
	w, h = np, np
	if c := p.Canvas(); c != nil {
		cw, ch := c.CSSSize()
		if cw > 0 {
			w = cw
		}
		if ch > 0 {
			h = ch
		}
	}
	return w, h
}

// hooks returns the sketch's entry points.
func (p *Page) hooks() sketchbook.Hooks {
	if p.Sketch == nil {
		return sketchbook.Hooks{}
	}
	return p.Sketch.Hooks
}

// sketchColor normalizes one of the sketch's declared colors.
func (p *Page) sketchColor(pick func(*sketchbook.Sketch) sketchbook.Color) string {
	if p.Sketch == nil {
		return ""
	}
	c := pick(p.Sketch)
	if c == nil {
		return ""
	}
	return sketchbook.NormalizeColor(c, false)
}
