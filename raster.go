package sketchbook

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// vec2 is a point in backing-pixel space.
type vec2 struct{ x, y float64 }

// maxCoord bounds coordinates handed to the rasterizer.
const maxCoord = 1 << 20

func (c *Canvas) fillPath(pts []vec2) {
	c.rasterize([][]vec2{pts}, c.state.fill)
}

// strokePath outlines pts with round joins and caps. Every segment becomes
// a quad and every vertex a disc; all are wound the same way so overlaps
// saturate instead of cancelling.
func (c *Canvas) strokePath(pts []vec2, closed bool) {
	hw := c.state.weight * c.density / 2
	if hw <= 0 {
		return
	}
	if hw < 0.35 {
		hw = 0.35
	}

	polys := make([][]vec2, 0, 2*len(pts))
	n := len(pts)
	segs := n - 1
	if closed && n > 2 {
		segs = n
	}
	for i := 0; i < segs; i++ {
		a, b := pts[i], pts[(i+1)%n]
		dx, dy := b.x-a.x, b.y-a.y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*hw, dx/l*hw
		polys = append(polys, []vec2{
			{a.x + nx, a.y + ny},
			{b.x + nx, b.y + ny},
			{b.x - nx, b.y - ny},
			{a.x - nx, a.y - ny},
		})
	}
	if hw >= 1 || len(polys) == 0 {
		for _, p := range pts {
			polys = append(polys, disc(p, hw))
		}
	}
	c.rasterize(polys, c.state.stroke)
}

// disc approximates a circle, traversed with decreasing angle.
func disc(center vec2, r float64) []vec2 {
	n := int(2*r) + 8
	if n > 64 {
		n = 64
	}
	pts := make([]vec2, n)
	for i := range pts {
		a := -2 * math.Pi * float64(i) / float64(n)
		pts[i] = vec2{center.x + r*math.Cos(a), center.y + r*math.Sin(a)}
	}
	return pts
}

// rasterize composites the union of polys onto the pixmap. The rasterizer
// is sized to the clipped bounding box of the polygons.
func (c *Canvas) rasterize(polys [][]vec2, col color.NRGBA) {
	if col.A == 0 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	kept := polys[:0:0]
	for _, poly := range polys {
		if len(poly) < 3 || !finitePoly(poly) {
			continue
		}
		for _, p := range poly {
			minX, maxX = math.Min(minX, p.x), math.Max(maxX, p.x)
			minY, maxY = math.Min(minY, p.y), math.Max(maxY, p.y)
		}
		kept = append(kept, poly)
	}
	if len(kept) == 0 {
		return
	}

	dst := c.pix.Image()
	r := image.Rect(
		int(math.Floor(clampRange(minX, -maxCoord, maxCoord))),
		int(math.Floor(clampRange(minY, -maxCoord, maxCoord))),
		int(math.Ceil(clampRange(maxX, -maxCoord, maxCoord))),
		int(math.Ceil(clampRange(maxY, -maxCoord, maxCoord))),
	).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}

	c.ras.Reset(r.Dx(), r.Dy())
	c.ras.DrawOp = draw.Over
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	for _, poly := range kept {
		c.ras.MoveTo(rasterCoord(poly[0].x-ox), rasterCoord(poly[0].y-oy))
		for _, p := range poly[1:] {
			c.ras.LineTo(rasterCoord(p.x-ox), rasterCoord(p.y-oy))
		}
		c.ras.ClosePath()
	}
	c.ras.Draw(dst, r, image.NewUniform(col), image.Point{})
}

func rasterCoord(v float64) float32 {
	return float32(clampRange(v, -maxCoord, maxCoord))
}

func finitePoly(poly []vec2) bool {
	for _, p := range poly {
		if math.IsNaN(p.x) || math.IsNaN(p.y) || math.IsInf(p.x, 0) || math.IsInf(p.y, 0) {
			return false
		}
	}
	return true
}
