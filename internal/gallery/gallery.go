// Package gallery renders a contact sheet of sketches as one SVG file.
package gallery

import (
	"bytes"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/penplot/sketchbook"
	"github.com/penplot/sketchbook/internal/parallel"
	"github.com/penplot/sketchbook/sketches"
)

const (
	defaultColumns = 3
	defaultThumb   = 240
	margin         = 16
	captionHeight  = 28
)

// Option configures Render.
type Option func(*options)

type options struct {
	columns int
	thumb   int
	frames  int
	workers int
}

// WithColumns sets the number of thumbnails per row.
func WithColumns(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.columns = n
		}
	}
}

// WithThumbSize sets the thumbnail width in pixels.
func WithThumbSize(px int) Option {
	return func(o *options) {
		if px > 0 {
			o.thumb = px
		}
	}
}

// WithFrames sets how many frames each sketch runs before its snapshot.
func WithFrames(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.frames = n
		}
	}
}

// WithWorkers sets the number of sketches rendered at once.
// Zero means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// Tile is one rendered cell of the sheet.
type Tile struct {
	Name    string
	Title   string
	DataURL string
	Width   int
	Height  int
	Err     error
}

// Tiles runs every named sketch and returns its thumbnail. Tiles keep the
// order of names; a sketch that fails has Err set.
func Tiles(names []string, opts ...Option) []Tile {
	o := buildOptions(opts)
	tiles := make([]Tile, len(names))

	pool := parallel.NewWorkerPool(o.workers)
	defer pool.Close()
	pool.Map(len(names), func(i int) {
		tiles[i] = renderTile(names[i], o)
	})
	return tiles
}

func renderTile(name string, o options) Tile {
	t := Tile{Name: name, Title: name, Width: o.thumb, Height: o.thumb}
	s, err := sketches.New(name)
	if err != nil {
		t.Err = err
		return t
	}
	t.Title = s.DisplayTitle()

	canvas, err := sketchbook.Run(s, o.frames)
	if err != nil {
		t.Err = err
		return t
	}
	pix, err := canvas.Snapshot()
	if err != nil {
		t.Err = err
		return t
	}
	if pix.Width() > 0 {
		t.Height = max(1, o.thumb*pix.Height()/pix.Width())
	}
	t.DataURL, t.Err = pix.Resize(t.Width, t.Height).DataURL()
	return t
}

// Render writes a contact sheet of the named sketches to w. Sketches that
// fail to render get a labelled placeholder and are logged; only write
// errors are returned.
func Render(w io.Writer, names []string, opts ...Option) error {
	o := buildOptions(opts)
	tiles := Tiles(names, opts...)

	rows := (len(tiles) + o.columns - 1) / o.columns
	rowHeights := make([]int, rows)
	for i, t := range tiles {
		rowHeights[i/o.columns] = max(rowHeights[i/o.columns], t.Height)
	}
	width := margin + o.columns*(o.thumb+margin)
	height := margin
	for _, h := range rowHeights {
		height += h + captionHeight + margin
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)
	canvas.Title("Sketchbook")
	canvas.Rect(0, 0, width, height, "fill:rgb(250,250,250)")

	y := margin
	for r := range rows {
		for c := range o.columns {
			i := r*o.columns + c
			if i >= len(tiles) {
				break
			}
			x := margin + c*(o.thumb+margin)
			drawTile(canvas, tiles[i], x, y)
		}
		y += rowHeights[r] + captionHeight + margin
	}
	canvas.End()

	_, err := w.Write(buf.Bytes())
	return err
}

func drawTile(canvas *svg.SVG, t Tile, x, y int) {
	canvas.Gid("sketch-" + t.Name)
	if t.Err != nil || t.DataURL == "" {
		sketchbook.Logger().Warn("gallery: sketch skipped", "sketch", t.Name, "err", t.Err)
		canvas.Rect(x, y, t.Width, t.Height, "fill:none;stroke:rgb(200,0,0)")
		canvas.Text(x+t.Width/2, y+t.Height/2, "unavailable", "text-anchor:middle;fill:rgb(200,0,0)")
	} else {
		canvas.Image(x, y, t.Width, t.Height, t.DataURL)
		canvas.Rect(x, y, t.Width, t.Height, "fill:none;stroke:rgb(200,200,200)")
	}
	canvas.Text(x, y+t.Height+captionHeight-8, fmt.Sprintf("%s (%s)", t.Title, t.Name),
		"font-family:sans-serif;font-size:13px;fill:rgb(40,40,40)")
	canvas.Gend()
}

func buildOptions(opts []Option) options {
	o := options{columns: defaultColumns, thumb: defaultThumb, frames: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
