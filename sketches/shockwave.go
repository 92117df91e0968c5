package sketches

import (
	"math"

	"github.com/penplot/sketchbook"
)

func init() {
	Register("shockwave", Shockwave)
}

const (
	shockNP   = 600
	shockGrid = 80
)

// Shockwave animates a damped radial wave as a mesh of rows colored by
// height and pale columns. Every frame advances the wave phase and
// breathes the amplitude between 0.7 and 1.3.
func Shockwave() *sketchbook.Sketch {
	w := &shockwave{}
	return &sketchbook.Sketch{
		Name:       "shockwave",
		Width:      shockNP,
		Height:     shockNP,
		NP:         shockNP,
		Background: sketchbook.Gray(255),
		Hooks: sketchbook.Hooks{
			Setup: w.setup,
			Draw:  w.draw,
		},
	}
}

type shockwave struct {
	phase float64
	theta float64
}

func (w *shockwave) setup(dc sketchbook.DrawingContext) error {
	dc.CreateCanvas(shockNP, shockNP)
	dc.ColorMode(sketchbook.HSBMode)
	dc.StrokeWeight(1)
	dc.NoFill()
	return nil
}

// height returns the surface height at normalized grid position (x, y).
func (w *shockwave) height(x, y, amp float64) float64 {
	di := 16 * ((x-0.5)*(x-0.5) + (y-0.5)*(y-0.5))
	return shockNP * 5.0 / 12 * math.Cos(4*di+w.phase) * math.Exp(-di) * amp
}

func (w *shockwave) draw(dc sketchbook.DrawingContext) error {
	dc.Background(sketchbook.Triple{255, 255, 255})
	w.phase += 0.03
	w.theta += 0.02
	amp := 1 + 0.3*math.Sin(w.theta)

	width, height := float64(dc.Width()), float64(dc.Height())

	for i := 0; i <= shockGrid; i++ {
		dc.BeginShape()
		for j := 0; j <= shockGrid; j++ {
			x, y := float64(j)/shockGrid, float64(i)/shockGrid
			z := w.height(x, y, amp)
			hue := remap(z, -shockNP/2, shockNP/2, 200, 360)
			dc.Stroke(sketchbook.Triple{hue, 80, 95})
			dc.Vertex(x*width, y*height-z)
		}
		dc.EndShape(sketchbook.Open)
	}

	dc.Stroke(sketchbook.Triple{210, 20, 90})
	for j := 0; j <= shockGrid; j++ {
		dc.BeginShape()
		for i := 0; i <= shockGrid; i++ {
			x, y := float64(j)/shockGrid, float64(i)/shockGrid
			dc.Vertex(x*width, y*height-w.height(x, y, amp))
		}
		dc.EndShape(sketchbook.Open)
	}

	dc.Push()
	dc.NoStroke()
	dc.Fill(sketchbook.Triple{0, 0, 95})
	dc.Circle(width/2, height/2, 4)
	dc.Pop()
	return nil
}
