package sketches

import (
	"math"

	"github.com/penplot/sketchbook"
)

func init() {
	Register("tesseract", func() *sketchbook.Sketch { return NewTesseract().Sketch() })
}

const tesseractNP = 800

type vec4 [4]float64
type vec3 [3]float64

// Tesseract is a rotating 4D hypercube projected to the plane and drawn
// in three nested layers. Its camera can be orbited and zoomed between
// frames.
type Tesseract struct {
	vertices []vec4
	edges    [][2]int

	angle     float64
	rotX      float64
	rotY      float64
	hyperDist float64
	camDist   float64
	fovScale  float64
	speed     float64
}

// NewTesseract returns a tesseract with the camera at rest.
func NewTesseract() *Tesseract {
	t := &Tesseract{speed: 0.008}
	t.Reset()
	for x := -1.0; x <= 1; x += 2 {
		for y := -1.0; y <= 1; y += 2 {
			for z := -1.0; z <= 1; z += 2 {
				for w := -1.0; w <= 1; w += 2 {
					t.vertices = append(t.vertices, vec4{x, y, z, w})
				}
			}
		}
	}
	for i := range t.vertices {
		for j := i + 1; j < len(t.vertices); j++ {
			diff := 0
			for k := 0; k < 4; k++ {
				if t.vertices[i][k] != t.vertices[j][k] {
					diff++
				}
			}
			if diff == 1 {
				t.edges = append(t.edges, [2]int{i, j})
			}
		}
	}
	return t
}

// Sketch wraps t for running and exporting.
func (t *Tesseract) Sketch() *sketchbook.Sketch {
	return &sketchbook.Sketch{
		Name:       "tesseract",
		Width:      tesseractNP,
		Height:     tesseractNP,
		NP:         tesseractNP,
		Background: sketchbook.HSB{H: 0, S: 0, B: 6},
		Hooks: sketchbook.Hooks{
			Setup: func(dc sketchbook.DrawingContext) error {
				dc.CreateCanvas(tesseractNP, tesseractNP)
				dc.ColorMode(sketchbook.HSBMode)
				return nil
			},
			Draw: t.Draw,
		},
	}
}

// Edges returns the number of hypercube edges.
func (t *Tesseract) Edges() int { return len(t.edges) }

// Orbit turns the 3D view by a mouse drag of (dx, dy) pixels.
func (t *Tesseract) Orbit(dx, dy float64) {
	t.rotY += dx * 0.006
	t.rotX += dy * 0.006
}

// Zoom moves both cameras by a wheel delta; positive zooms out.
func (t *Tesseract) Zoom(delta float64) {
	t.camDist = constrain(t.camDist+delta*2, 200, 2500)
	t.hyperDist = constrain(t.hyperDist+delta*0.004, 1.2, 8)
}

// Reset puts the camera back at rest. The rotation angle is kept.
func (t *Tesseract) Reset() {
	t.rotX, t.rotY = 0, 0
	t.camDist = 600
	t.hyperDist = 3
	t.fovScale = 1
}

// Draw advances the rotation and draws one frame.
func (t *Tesseract) Draw(dc sketchbook.DrawingContext) error {
	dc.Background(sketchbook.Triple{0, 0, 6})
	dc.Translate(float64(dc.Width())/2, float64(dc.Height())/2)
	t.angle += t.speed

	pts := make([]vec3, len(t.vertices))
	a := t.angle
	for i, v := range t.vertices {
		r := rotate4D(v, a*1.4, a*0.9, a*0.6, a*0.3)
		f := t.hyperDist / (t.hyperDist - r[3])
		pts[i] = rotate3D(vec3{r[0] * f, r[1] * f, r[2] * f}, t.rotX, t.rotY)
	}

	t.drawLayer(dc, pts, 1, 0)
	t.drawLayer(dc, pts, 0.7, 40)
	t.drawLayer(dc, pts, 0.45, 120)
	return nil
}

func (t *Tesseract) drawLayer(dc sketchbook.DrawingContext, pts []vec3, scale, hueOffset float64) {
	base := 160 * scale * t.fovScale
	proj := make([]vec3, len(pts))
	for i, p := range pts {
		z := p[2] * 120
		persp := t.camDist / (t.camDist - z*t.fovScale)
		proj[i] = vec3{p[0] * base * persp, p[1] * base * persp, z}
	}

	for _, e := range t.edges {
		a, b := proj[e[0]], proj[e[1]]
		avgZ := (a[2] + b[2]) / 2
		hue := math.Mod(remap(avgZ, -300, 300, 0, 360)+hueOffset+t.angle*80, 360)
		w := remap(avgZ, -300, 300, 3.5, 0.6) * scale

		dc.Stroke(sketchbook.HSB{H: hue, S: 90, B: 95})
		dc.StrokeWeight(math.Max(0.6, w))
		dc.Line(a[0], a[1], b[0], b[1])
	}
}

// rotate4D rotates v in the XY, YZ, ZW and XW planes, in that order.
func rotate4D(v vec4, aXY, aYZ, aZW, aXW float64) vec4 {
	x, y, z, w := v[0], v[1], v[2], v[3]

	c, s := math.Cos(aXY), math.Sin(aXY)
	x1 := x*c - y*s
	y1 := x*s + y*c

	c, s = math.Cos(aYZ), math.Sin(aYZ)
	y2 := y1*c - z*s
	z1 := y1*s + z*c

	c, s = math.Cos(aZW), math.Sin(aZW)
	z2 := z1*c - w*s
	w1 := z1*s + w*c

	c, s = math.Cos(aXW), math.Sin(aXW)
	x2 := x1*c - w1*s
	w2 := x1*s + w1*c

	return vec4{x2, y2, z2, w2}
}

// rotate3D rotates p around the X axis by rx, then around Y by ry.
func rotate3D(p vec3, rx, ry float64) vec3 {
	x, y, z := p[0], p[1], p[2]

	c, s := math.Cos(rx), math.Sin(rx)
	y1 := y*c - z*s
	z1 := y*s + z*c

	c, s = math.Cos(ry), math.Sin(ry)
	x2 := x*c + z1*s
	z2 := -x*s + z1*c

	return vec3{x2, y1, z2}
}
