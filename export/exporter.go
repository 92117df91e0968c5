package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/penplot/sketchbook"
	"github.com/penplot/sketchbook/dxf"
	"github.com/penplot/sketchbook/geometry"
	"github.com/penplot/sketchbook/pdf"
	"github.com/penplot/sketchbook/recording"
	"github.com/penplot/sketchbook/svgdoc"
)

// Exporter turns what a page shows into PNG, SVG, DXF and PDF files.
//
// Vector formats go through up to three tiers:
//
//  1. the page's own vector document, when it holds shapes
//  2. a replay of the sketch's hooks into a fresh document
//  3. for SVG only, the canvas pixels embedded as an image
//
// DXF and PDF produce nothing when the first two tiers fail. Export
// failures are logged rather than returned; only delivery errors reach
// the caller.
//
// Calls are serialized, so an Exporter may be shared between goroutines.
type Exporter struct {
	mu   sync.Mutex
	page *Page
	out  Deliverer
	opts options
}

// New creates an Exporter for page delivering through out.
func New(page *Page, out Deliverer, opts ...Option) *Exporter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Exporter{page: page, out: out, opts: o}
}

// Page returns the exported page.
func (e *Exporter) Page() *Page { return e.page }

// Save exports in the named format.
func (e *Exporter) Save(format, name string) error {
	save, err := lookupFormat(format)
	if err != nil {
		return err
	}
	return save(e, name)
}

// DefaultName returns the file name used for format when none is given.
func (e *Exporter) DefaultName(format string) string {
	if n, ok := e.opts.names[format]; ok {
		return n
	}
	return "sketch." + format
}

// session holds the values resolved once per export call.
type session struct {
	log    *slog.Logger
	colors CanvasColors
	bg     string
	stroke string
	np     int
	w, h   int
	mode   sketchbook.ColorMode
}

func (e *Exporter) begin(format string) *session {
	p := e.page
	s := &session{
		log: sketchbook.Logger().With("export", uuid.NewString(), "format", format),
		np:  p.NP(),
	}
	c := p.Canvas()
	s.colors = Inspect(c)
	s.w, s.h = p.Size()
	if c != nil {
		s.mode = c.CurrentColorMode()
	}

	s.bg = firstNonEmpty(
		s.colors.Background,
		p.sketchColor(func(sk *sketchbook.Sketch) sketchbook.Color { return sk.Background }),
		svgdoc.DefaultBackground,
	)
	raw := firstNonEmpty(
		s.colors.StrokeStyle,
		p.sketchColor(func(sk *sketchbook.Sketch) sketchbook.Color { return sk.StrokeColor }),
		"#000000",
	)
	s.stroke = firstNonEmpty(sketchbook.NormalizeColor(raw, false), raw)

	s.log.Debug("export: started", "width", s.w, "height", s.h, "np", s.np, "background", s.bg)
	return s
}

// replay runs the sketch into an np×np document.
func (e *Exporter) replay(s *session) (*svgdoc.Document, error) {
	return recording.Replay(e.page.hooks(), recording.ReplayOptions{
		Width:         s.np,
		Height:        s.np,
		Background:    s.bg,
		DefaultStroke: s.stroke,
		ColorMode:     s.mode,
	})
}

func (e *Exporter) deliver(s *session, name string, content []byte, mimeType string) error {
	if err := e.out.Deliver(name, content, mimeType); err != nil {
		s.log.Error("export: delivery failed", "name", name, "err", err)
		return fmt.Errorf("export: deliver %s: %w", name, err)
	}
	s.log.Info("export: delivered", "name", name, "bytes", len(content))
	return nil
}

// SavePNG exports the canvas pixels. The pixels are captured before
// SavePNG returns; encoding and delivery happen on a goroutine, and the
// returned channel yields the delivery result once. When the canvas is
// missing or unreadable the page's SaveFallback is used, and without one
// the call does nothing.
func (e *Exporter) SavePNG(name string) <-chan error {
	e.mu.Lock()
	defer e.mu.Unlock()

	done := make(chan error, 1)
	if name == "" {
		name = e.DefaultName("png")
	}
	s := e.begin("png")
	fallback := e.page.SaveFallback

	if c := e.page.Canvas(); c != nil {
		pm, err := c.Snapshot()
		if err == nil {
			go func() {
				defer close(done)
				data, err := pm.PNG()
				if err != nil {
					s.log.Warn("export: png encoding failed", "err", err)
					if fallback != nil {
						done <- fallback(name)
					}
					return
				}
				done <- e.deliver(s, name, data, MIMEPNG)
			}()
			return done
		}
		s.log.Warn("export: canvas not exportable", "err", err)
	}

	if fallback != nil {
		s.log.Debug("export: using save fallback", "name", name)
		done <- fallback(name)
	} else {
		s.log.Info("export: nothing to save")
	}
	close(done)
	return done
}

// SaveSVG exports a vector SVG, falling back to an SVG embedding the
// canvas pixels. After a vector export the page shows a copy of the
// exported document in place of its canvas.
func (e *Exporter) SaveSVG(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if name == "" {
		name = e.DefaultName("svg")
	}
	s := e.begin("svg")

	doc, tier := e.vectorDocument(s)
	if doc == nil {
		return e.deliver(s, name, svgdoc.Marshal(e.rasterDocument(s)), MIMESVG)
	}

	if tier == 2 {
		if bg := doc.Background(); bg != nil {
			bg.Set("width", strconv.Itoa(s.w))
			bg.Set("height", strconv.Itoa(s.h))
		}
	}
	svgdoc.Finalize(doc, svgdoc.FinalizeOptions{
		Width:         s.w,
		Height:        s.h,
		Background:    s.bg,
		DefaultStroke: s.stroke,
	})

	overlay := doc.Clone()
	overlay.Root.Set("id", OverlayID)
	overlay.Root.Set("style", "display:block")
	e.page.ReplaceCanvas(overlay)

	s.log.Debug("export: vector svg", "tier", tier, "shapes", len(doc.Shapes()))
	return e.deliver(s, name, svgdoc.Marshal(doc), MIMESVG)
}

// vectorDocument returns a private copy of the page document when it has
// shapes (tier 1), or the replayed document (tier 2). It returns nil when
// neither holds shapes.
func (e *Exporter) vectorDocument(s *session) (*svgdoc.Document, int) {
	if d := e.page.Document; d.HasShapes() {
		return d.Clone(), 1
	}
	doc, err := e.replay(s)
	if err != nil {
		s.log.Warn("export: replay failed", "err", err)
		return nil, 0
	}
	return doc, 2
}

// rasterDocument builds the tier 3 SVG: a background rect and, when the
// canvas is readable, its pixels as an embedded PNG.
func (e *Exporter) rasterDocument(s *session) *svgdoc.Document {
	doc := svgdoc.New(s.np, s.np, s.bg)
	doc.Root.Set("xmlns:xlink", svgdoc.XLinkNamespace)
	if bg := doc.Background(); bg != nil {
		bg.Set("width", strconv.Itoa(s.w))
		bg.Set("height", strconv.Itoa(s.h))
	}

	if c := e.page.Canvas(); c != nil {
		href, err := canvasDataURL(c)
		if err != nil {
			s.log.Warn("export: cannot embed canvas", "err", err)
		} else {
			doc.Append(svgdoc.NewImage(href, s.w, s.h))
		}
	}
	doc.SetSize(s.w, s.h)
	s.log.Debug("export: raster svg")
	return doc
}

func canvasDataURL(c *sketchbook.Canvas) (string, error) {
	pm, err := c.Snapshot()
	if err != nil {
		return "", err
	}
	return pm.DataURL()
}

// SaveDXF exports the page's vector geometry as a DXF entity stream
// scaled so NP pixels span 210 mm. Without vector geometry no file is
// produced.
func (e *Exporter) SaveDXF(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if name == "" {
		name = e.DefaultName("dxf")
	}
	s := e.begin("dxf")

	seqs := geometry.Extract(e.page.Document)
	if len(seqs) == 0 {
		doc, err := e.replay(s)
		if err != nil {
			s.log.Warn("export: replay failed", "err", err)
		}
		seqs = geometry.Extract(doc)
	}
	if len(seqs) == 0 {
		s.log.Info("export: no geometry, dxf skipped")
		return nil
	}

	var buf bytes.Buffer
	if err := dxf.Encode(&buf, seqs, float64(s.np)); err != nil {
		s.log.Error("export: dxf encoding failed", "err", err)
		return nil
	}
	return e.deliver(s, name, buf.Bytes(), MIMEDXF)
}

// SavePDF exports the same geometry as SaveDXF as colored strokes on a
// PDF page sized to the canvas.
func (e *Exporter) SavePDF(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if name == "" {
		name = e.DefaultName("pdf")
	}
	s := e.begin("pdf")

	finalize := svgdoc.FinalizeOptions{Background: s.bg, DefaultStroke: s.stroke}
	var paths []geometry.Path
	if d := e.page.Document; d.HasShapes() {
		doc := d.Clone()
		svgdoc.Finalize(doc, finalize)
		paths = geometry.ExtractPaths(doc)
	}
	if len(paths) == 0 {
		doc, err := e.replay(s)
		if err != nil {
			s.log.Warn("export: replay failed", "err", err)
		}
		if doc != nil {
			svgdoc.Finalize(doc, finalize)
		}
		paths = geometry.ExtractPaths(doc)
	}
	if len(paths) == 0 {
		s.log.Info("export: no geometry, pdf skipped")
		return nil
	}

	title := ""
	if e.page.Sketch != nil {
		title = e.page.Sketch.DisplayTitle()
	}
	var buf bytes.Buffer
	err := pdf.Encode(&buf, paths, pdf.Page{
		NP:       float64(s.np),
		Width:    s.w,
		Height:   s.h,
		Title:    title,
		Compress: e.opts.compressPDF,
	})
	if err != nil {
		s.log.Error("export: pdf encoding failed", "err", err)
		return nil
	}
	return e.deliver(s, name, buf.Bytes(), MIMEPDF)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
