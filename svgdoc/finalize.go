package svgdoc

import "strconv"

// FinalizeOptions carries the resolved values Finalize stamps onto a
// document.
type FinalizeOptions struct {
	// Width and Height are the target size. Non-positive values leave the
	// corresponding root attributes alone.
	Width, Height int
	// Background fills the background rect ("" means DefaultBackground).
	Background string
	// DefaultStroke is given to shapes without a usable stroke.
	DefaultStroke string
}

// Finalize makes d self-contained and ready for encoding:
//
//   - every shape gets DefaultStroke when its stroke is missing or the
//     literal "null" or "undefined"; recorded strokes are never replaced
//   - every shape without a fill gets fill="none"
//   - the first rect becomes the background, inserted first when missing
//   - the root gets explicit width, height and viewBox, and loses any
//     inline style
//
// Finalize is idempotent.
func Finalize(d *Document, opts FinalizeOptions) {
	for _, n := range d.Shapes() {
		if s, ok := n.Attr("stroke"); (!ok || s == "" || s == "null" || s == "undefined") && opts.DefaultStroke != "" {
			n.Set("stroke", opts.DefaultStroke)
		}
		if n.Get("fill") == "" {
			n.Set("fill", "none")
		}
	}

	bg := d.Background()
	if bg == nil {
		bg = NewElement("rect",
			Attr{Name: "width", Value: strconv.Itoa(opts.Width)},
			Attr{Name: "height", Value: strconv.Itoa(opts.Height)},
		)
		d.Root.Prepend(bg)
	}
	fill := opts.Background
	if fill == "" {
		fill = DefaultBackground
	}
	bg.Set("fill", fill)

	if opts.Width > 0 {
		d.Root.Set("width", strconv.Itoa(opts.Width))
	}
	if opts.Height > 0 {
		d.Root.Set("height", strconv.Itoa(opts.Height))
	}
	if opts.Width > 0 && opts.Height > 0 {
		d.Root.Set("viewBox", "0 0 "+strconv.Itoa(opts.Width)+" "+strconv.Itoa(opts.Height))
	}
	d.Root.Remove("style")
}
