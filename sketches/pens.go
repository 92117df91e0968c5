package sketches

import (
	"math"

	"github.com/penplot/sketchbook"
)

func init() {
	Register("pens", Pens)
	Register("penswirl", PenSwirl)
}

// penCurve parameterizes the two-circle curve shared by pens and penswirl.
type penCurve struct {
	n      int
	t1, t2 float64
	k1, k2 float64
}

const (
	pensNP     = 480
	pensHeight = 720
)

var (
	pensEven = sketchbook.Triple{220, 20, 60}
	pensOdd  = sketchbook.Triple{30, 144, 255}
)

// Pens draws a 3000-point epicycle as alternating crimson and blue
// segments.
func Pens() *sketchbook.Sketch {
	return newPens("pens", "Pens", penCurve{n: 3000, t1: 1, t2: 150, k1: 1, k2: 1})
}

// PenSwirl is Pens with detuned carrier frequencies, which twists the
// curve into a swirl.
func PenSwirl() *sketchbook.Sketch {
	return newPens("penswirl", "Pen Swirl", penCurve{n: 3000, t1: 1.5, t2: 150, k1: -1.05, k2: 1.5})
}

func newPens(name, title string, c penCurve) *sketchbook.Sketch {
	return &sketchbook.Sketch{
		Name:        name,
		Title:       title,
		Width:       pensNP,
		Height:      pensHeight,
		NP:          pensNP,
		Background:  sketchbook.Gray(255),
		StrokeColor: pensEven,
		Hooks: sketchbook.Hooks{
			Setup: func(dc sketchbook.DrawingContext) error {
				dc.CreateCanvas(pensNP, pensHeight)
				dc.Background(sketchbook.Gray(255))
				dc.NoFill()
				drawPenCurve(dc, c)
				return nil
			},
		},
	}
}

// penPoints returns the curve vertices truncated to whole pixels. Y is
// stretched by 1.3 to fill the taller canvas.
func penPoints(c penCurve) [][2]float64 {
	np := float64(pensNP)
	r1 := np * 0.25
	pts := make([][2]float64, c.n)
	for i := range pts {
		fi, fn := float64(i), float64(c.n)
		r2 := np * 0.25 * (0.5 + 0.5*math.Cos(fi*math.Pi/fn))
		a1 := twoPi * fi / fn * c.t1
		a2 := twoPi * fi / fn * c.t2
		x := math.Trunc(np*0.5 + r1*math.Cos(c.k1*a1) + r2*math.Cos(a2))
		y := math.Trunc(1.3 * (np*0.5 + r1*math.Sin(c.k2*a1) + r2*math.Sin(a2)))
		pts[i] = [2]float64{x, y}
	}
	return pts
}

func drawPenCurve(dc sketchbook.DrawingContext, c penCurve) {
	pts := penPoints(c)
	dc.StrokeWeight(1)
	dc.BeginShape()
	for i := range pts {
		if i%2 == 0 {
			dc.Stroke(pensEven)
		} else {
			dc.Stroke(pensOdd)
		}
		if i > 0 {
			dc.Vertex(pts[i-1][0], pts[i-1][1])
			dc.Vertex(pts[i][0], pts[i][1])
			dc.EndShape(sketchbook.Open)
			dc.BeginShape()
		}
	}
	dc.EndShape(sketchbook.Open)
}
