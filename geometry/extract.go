// Package geometry turns the shapes of a vector document back into point
// sequences for plotter formats.
package geometry

import (
	"math"
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"

	"github.com/penplot/sketchbook/svgdoc"
)

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}

// Polyline is an ordered point sequence.
type Polyline []Point

// Path is a Polyline together with the style of the shape it came from.
type Path struct {
	Points Polyline
	Stroke string
	Width  float64
	Closed bool
}

var (
	anchorPattern    = regexp.MustCompile(`[ML]\s*([0-9.-]+)\s+([0-9.-]+)`)
	translatePattern = regexp.MustCompile(`translate\(\s*([^\s,)]+)(?:[\s,]+([^\s,)]+))?\s*\)`)
)

// Extract returns one point sequence per recognized shape of d: first every
// polyline and polygon, then every line, then every path, each group in
// document order. Shapes that yield no point are skipped.
func Extract(d *svgdoc.Document) []Polyline {
	paths := ExtractPaths(d)
	if len(paths) == 0 {
		return nil
	}
	out := make([]Polyline, len(paths))
	for i, p := range paths {
		out[i] = p.Points
	}
	return out
}

// ExtractPaths is Extract keeping each shape's stroke, stroke width and
// closed flag.
//
// Polyline points are "x,y" tokens split on whitespace; malformed tokens
// are dropped. A line needs all four coordinates. Paths contribute only
// their M and L anchors, so arcs are reduced to their start point.
// A translate transform on the shape is applied to its points.
func ExtractPaths(d *svgdoc.Document) []Path {
	if d == nil || d.Root == nil {
		return nil
	}
	var out []Path

	for _, n := range d.Root.FindAll("polyline", "polygon") {
		if pts := parsePoints(n.Get("points")); len(pts) > 0 {
			out = append(out, newPath(n, pts, n.Name == "polygon"))
		}
	}

	for _, n := range d.Root.FindAll("line") {
		x1, ok1 := parseNum(n.Get("x1"))
		y1, ok2 := parseNum(n.Get("y1"))
		x2, ok3 := parseNum(n.Get("x2"))
		y2, ok4 := parseNum(n.Get("y2"))
		if ok1 && ok2 && ok3 && ok4 {
			out = append(out, newPath(n, Polyline{{x1, y1}, {x2, y2}}, false))
		}
	}

	for _, n := range d.Root.FindAll("path") {
		var pts Polyline
		for _, m := range anchorPattern.FindAllStringSubmatch(n.Get("d"), -1) {
			x, okx := parseNum(m[1])
			y, oky := parseNum(m[2])
			if okx && oky {
				pts = append(pts, Point{x, y})
			}
		}
		if len(pts) > 0 {
			out = append(out, newPath(n, pts, false))
		}
	}
	return out
}

func newPath(n *svgdoc.Element, pts Polyline, closed bool) Path {
	if dx, dy := parseTranslate(n.Get("transform")); dx != 0 || dy != 0 {
		for i := range pts {
			pts[i].X += dx
			pts[i].Y += dy
		}
	}
	w, ok := parseNum(n.Get("stroke-width"))
	if !ok {
		w = 1
	}
	return Path{Points: pts, Stroke: n.Get("stroke"), Width: w, Closed: closed}
}

func parsePoints(s string) Polyline {
	var pts Polyline
	for _, tok := range strings.Fields(s) {
		xs, ys, ok := strings.Cut(tok, ",")
		if !ok || xs == "" || ys == "" {
			continue
		}
		x, okx := parseNum(xs)
		y, oky := parseNum(ys)
		if okx && oky {
			pts = append(pts, Point{x, y})
		}
	}
	return pts
}

// parseTranslate reads the first translate() of a transform list.
// A missing y offset is 0.
func parseTranslate(s string) (dx, dy float64) {
	m := translatePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0
	}
	dx, _ = parseNum(m[1])
	if m[2] != "" {
		dy, _ = parseNum(m[2])
	}
	return dx, dy
}

// parseNum parses the leading number of s, ignoring leading whitespace and
// any trailing garbage. It fails when no number is found or the result is
// not finite.
func parseNum(s string) (float64, bool) {
	b := []byte(strings.TrimSpace(s))
	if len(b) == 0 {
		return 0, false
	}
	f, n := strconv.ParseFloat(b)
	if n == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
