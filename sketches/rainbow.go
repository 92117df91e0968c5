package sketches

import (
	"math"

	"github.com/penplot/sketchbook"
)

func init() {
	Register("rainbow", Rainbow)
	Register("rainbowhelix", RainbowHelix)
}

const rainbowNP = 480

// Rainbow traces a spiky epicycle whose hue runs once around the color
// wheel, inside a ring of short colored arcs.
func Rainbow() *sketchbook.Sketch {
	return &sketchbook.Sketch{
		Name:       "rainbow",
		Width:      rainbowNP,
		Height:     rainbowNP,
		NP:         rainbowNP,
		Background: sketchbook.Gray(255),
		NoLoop:     true,
		Hooks:      sketchbook.Hooks{Setup: drawRainbow},
	}
}

func drawRainbow(dc sketchbook.DrawingContext) error {
	const (
		np = float64(rainbowNP)
		n  = 1400
		t1 = 1.0
		t2 = 799.0
		k1 = 1.0
		k2 = 1.0
	)
	r1 := np * 0.25

	dc.CreateCanvas(rainbowNP, rainbowNP)
	dc.ColorMode(sketchbook.HSBMode)
	dc.Background(sketchbook.Triple{255, 255, 255})
	dc.Translate(float64(dc.Width())/2, float64(dc.Height())/2)
	dc.StrokeWeight(1)

	var px, py float64
	for i := 0; i < n; i++ {
		fi := float64(i)
		r2 := 0.25 * np * (0.5 + 0.5*math.Cos(14*math.Pi*fi/n))
		a1 := twoPi * fi / n * t1
		a2 := twoPi * fi / n * t2
		x := r1*math.Cos(k1*a1) + r2*math.Cos(a2)
		y := r1*math.Sin(k2*a1) + r2*math.Sin(a2)
		if i > 0 {
			hue := fi / n * 360
			brightness := 80 + 20*(r2/(0.5*np))
			dc.Stroke(sketchbook.Triple{math.Mod(hue, 360), 85, constrain(brightness, 50, 100)})
			dc.Line(px, py, x, y)
		}
		px, py = x, y
	}

	drawRing(dc, r1*2+160)
	return nil
}

// drawRing strokes a full circle of diameter d in 3 degree arcs, each in
// its own hue. The context must be in HSB mode.
func drawRing(dc sketchbook.DrawingContext, d float64) {
	dc.NoFill()
	dc.StrokeWeight(3)
	for i := 0; i < 360; i += 3 {
		dc.Stroke(sketchbook.Triple{float64(i % 360), 80, 95})
		dc.Arc(0, 0, d, d, radians(float64(i)), radians(float64(i+3)))
	}
}

// RainbowHelix winds twelve hue-shifted helices around a torus, joined by
// bridges in complementary colors.
func RainbowHelix() *sketchbook.Sketch {
	return &sketchbook.Sketch{
		Name:       "rainbowhelix",
		Title:      "Rainbow Helix",
		Width:      800,
		Height:     800,
		Background: sketchbook.HSB{H: 0, S: 0, B: 98},
		NoLoop:     true,
		Hooks: sketchbook.Hooks{
			Setup: func(dc sketchbook.DrawingContext) error {
				dc.CreateCanvas(800, 800)
				dc.ColorMode(sketchbook.HSBMode)
				return nil
			},
			Draw: drawRainbowHelix,
		},
	}
}

func drawRainbowHelix(dc sketchbook.DrawingContext) error {
	const (
		helixes     = 12
		points      = 400
		majorRadius = 280.0
		minorRadius = 60.0
		rotations   = 12.0

		bridgeMinor = 150.0
		bridgeMajor = 200.0
	)

	dc.Background(sketchbook.Triple{0, 0, 98})
	dc.Translate(float64(dc.Width())/2, float64(dc.Height())/2)

	for h := 0; h < helixes; h++ {
		offset := float64(h) / helixes * twoPi
		dc.StrokeWeight(2.5)

		for i := 0; i < points; i++ {
			t := float64(i) / points * twoPi * rotations
			nextT := float64(i+1) / points * twoPi * rotations
			angle := float64(i) / points * twoPi
			nextAngle := float64(i+1) / points * twoPi

			r := minorRadius * (1 + 0.3*math.Sin(t*3))
			x1 := (majorRadius + r*math.Cos(t+offset)) * math.Cos(angle)
			y1 := (majorRadius + r*math.Cos(t+offset)) * math.Sin(angle)
			z1 := r * math.Sin(t+offset)

			nextR := minorRadius * (1 + 0.3*math.Sin(nextT*3))
			x2 := (majorRadius + nextR*math.Cos(nextT+offset)) * math.Cos(nextAngle)
			y2 := (majorRadius + nextR*math.Cos(nextT+offset)) * math.Sin(nextAngle)

			brightness := remap(z1, -minorRadius*1.3, minorRadius*1.3, 70, 100)
			hue := math.Mod(float64(h)*30+float64(i)*0.9, 360)
			dc.Stroke(sketchbook.Triple{hue, 85, brightness})
			dc.Line(x1, y1, x2, y2)
		}
	}

	dc.StrokeWeight(1.5)
	for i := 0; i < points; i += 3 {
		angle := float64(i) / points * twoPi
		t := float64(i) / points * twoPi * rotations
		r := bridgeMinor * (1 + 0.3*math.Sin(t*3))

		for h := 0; h < helixes; h += 2 {
			offset1 := float64(h) / helixes * twoPi
			offset2 := float64(h+1) / helixes * twoPi

			x1 := (bridgeMajor + r*math.Cos(t+offset1)) * math.Cos(angle)
			y1 := (bridgeMajor + r*math.Cos(t+offset1)) * math.Sin(angle)
			x2 := (bridgeMajor + r*math.Cos(t+offset2)) * math.Cos(angle)
			y2 := (bridgeMajor + r*math.Cos(t+offset2)) * math.Sin(angle)

			hue := math.Mod(float64(h)*30+float64(i)*0.9+180, 360)
			dc.Stroke(sketchbook.Triple{hue, 70, 90})
			dc.Line(x1, y1, x2, y2)
		}
	}

	drawRing(dc, majorRadius*2+160)
	return nil
}
