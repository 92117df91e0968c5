package svgdoc

import (
	"strconv"
	"strings"
)

const (
	// Namespace is the SVG XML namespace.
	Namespace = "http://www.w3.org/2000/svg"
	// XLinkNamespace is the namespace of xlink:href.
	XLinkNamespace = "http://www.w3.org/1999/xlink"

	// DefaultBackground fills the background rect when none is given.
	DefaultBackground = "#ffffff"
)

// ShapeNames lists the elements counted as drawn shapes.
var ShapeNames = []string{"polyline", "polygon", "line", "path"}

// Document is an SVG tree with an svg root element.
type Document struct {
	Root *Element
}

// New creates a w×h document holding only a background rect filled with
// background ("" means DefaultBackground).
func New(w, h int, background string) *Document {
	if background == "" {
		background = DefaultBackground
	}
	d := &Document{Root: NewElement("svg", Attr{Name: "xmlns", Value: Namespace})}
	d.SetSize(w, h)
	d.Root.Append(NewElement("rect",
		Attr{Name: "width", Value: strconv.Itoa(w)},
		Attr{Name: "height", Value: strconv.Itoa(h)},
		Attr{Name: "fill", Value: background},
	))
	return d
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	return &Document{Root: d.Root.Clone()}
}

// Append adds shape elements at the end of the root.
func (d *Document) Append(els ...*Element) {
	d.Root.Append(els...)
}

// Shapes returns every line, polyline, polygon and path in document order.
func (d *Document) Shapes() []*Element {
	if d == nil || d.Root == nil {
		return nil
	}
	return d.Root.FindAll(ShapeNames...)
}

// HasShapes reports whether d contains at least one shape.
func (d *Document) HasShapes() bool {
	if d == nil || d.Root == nil {
		return false
	}
	found := false
	d.Root.Walk(func(el *Element) bool {
		for _, n := range ShapeNames {
			if el.Name == n {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

// Background returns the first rect of the document, or nil.
func (d *Document) Background() *Element {
	return d.Root.Find("rect")
}

// SetSize sets width, height and a matching viewBox on the root.
func (d *Document) SetSize(w, h int) {
	d.Root.Set("width", strconv.Itoa(w))
	d.Root.Set("height", strconv.Itoa(h))
	d.Root.Set("viewBox", "0 0 "+strconv.Itoa(w)+" "+strconv.Itoa(h))
}

// Size returns the root's width and height. When they are missing or not
// integral, the viewBox is consulted. Unknown dimensions are 0.
func (d *Document) Size() (w, h int) {
	w, wok := atoi(d.Root.Get("width"))
	h, hok := atoi(d.Root.Get("height"))
	if wok && hok {
		return w, h
	}
	vb := strings.Fields(strings.ReplaceAll(d.Root.Get("viewBox"), ",", " "))
	if len(vb) == 4 {
		if !wok {
			w, _ = atoi(vb[2])
		}
		if !hok {
			h, _ = atoi(vb[3])
		}
	}
	return w, h
}

func atoi(s string) (int, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(f + 0.5), true
}
