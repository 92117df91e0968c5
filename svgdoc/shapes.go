package svgdoc

import (
	"math"
	"strconv"
	"strings"
)

// Style is the stroke state stamped onto every shape element.
type Style struct {
	Stroke string
	Width  float64
	// DX and DY are the active translation. A zero offset adds no
	// transform attribute.
	DX, DY float64
}

// Num formats v the shortest way that reads back exactly, with no
// exponent and no negative zero.
func Num(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Translate formats a translate transform, e.g. "translate(400 300)".
func Translate(dx, dy float64) string {
	return "translate(" + Num(dx) + " " + Num(dy) + ")"
}

func (st Style) apply(e *Element) *Element {
	e.Set("stroke", st.Stroke)
	e.Set("stroke-width", Num(st.Width))
	e.Set("fill", "none")
	if st.DX != 0 || st.DY != 0 {
		e.Set("transform", Translate(st.DX, st.DY))
	}
	return e
}

// NewLine creates a line element.
func NewLine(x1, y1, x2, y2 float64, st Style) *Element {
	e := NewElement("line",
		Attr{Name: "x1", Value: Num(x1)},
		Attr{Name: "y1", Value: Num(y1)},
		Attr{Name: "x2", Value: Num(x2)},
		Attr{Name: "y2", Value: Num(y2)},
	)
	return st.apply(e)
}

// NewPolyline creates a polyline, or a polygon when closed is set.
// Points are written as "x,y" pairs separated by single spaces.
func NewPolyline(points [][2]float64, closed bool, st Style) *Element {
	name := "polyline"
	if closed {
		name = "polygon"
	}
	var sb strings.Builder
	for i, p := range points {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(Num(p[0]))
		sb.WriteByte(',')
		sb.WriteString(Num(p[1]))
	}
	e := NewElement(name)
	st.apply(e)
	e.Set("points", sb.String())
	return e
}

// NewArcPath creates a path tracing the clockwise elliptical arc centered on
// (cx, cy) with radii rx and ry from start to stop radians. The large-arc
// flag is set when the span exceeds π.
func NewArcPath(cx, cy, rx, ry, start, stop float64, st Style) *Element {
	sx, sy := cx+rx*math.Cos(start), cy+ry*math.Sin(start)
	ex, ey := cx+rx*math.Cos(stop), cy+ry*math.Sin(stop)
	large := "0"
	if stop-start > math.Pi {
		large = "1"
	}
	d := "M " + Num(sx) + " " + Num(sy) +
		" A " + Num(rx) + " " + Num(ry) + " 0 " + large + " 1 " + Num(ex) + " " + Num(ey)
	e := NewElement("path", Attr{Name: "d", Value: d})
	return st.apply(e)
}

// NewImage creates an image element embedding href, typically a data URL.
func NewImage(href string, w, h int) *Element {
	return NewElement("image",
		Attr{Name: "xlink:href", Value: href},
		Attr{Name: "width", Value: strconv.Itoa(w)},
		Attr{Name: "height", Value: strconv.Itoa(h)},
	)
}
