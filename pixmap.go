package sketchbook

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// Pixmap represents a rectangular pixel buffer backed by an *image.RGBA.
type Pixmap struct {
	img *image.RGBA
}

// NewPixmap creates a new, fully transparent pixmap.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// FromImage creates a pixmap holding a copy of img.
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	pm := NewPixmap(b.Dx(), b.Dy())
	draw.Draw(pm.img, pm.img.Bounds(), img, b.Min, draw.Src)
	return pm
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// Image returns the backing image. Writes to it are visible in p.
func (p *Pixmap) Image() *image.RGBA {
	return p.img
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c color.Color) {
	p.img.Set(x, y, c)
}

// GetPixel returns the color of a single pixel.
// Out of range coordinates return transparent.
func (p *Pixmap) GetPixel(x, y int) color.NRGBA {
	if !(image.Point{X: x, Y: y}.In(p.img.Rect)) {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(p.img.RGBAAt(x, y)).(color.NRGBA)
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c color.Color) {
	draw.Draw(p.img, p.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Clone returns an independent copy of p.
func (p *Pixmap) Clone() *Pixmap {
	img := image.NewRGBA(p.img.Rect)
	copy(img.Pix, p.img.Pix)
	return &Pixmap{img: img}
}

// Resize returns a copy of p scaled to w×h.
func (p *Pixmap) Resize(w, h int) *Pixmap {
	dst := NewPixmap(w, h)
	draw.CatmullRom.Scale(dst.img, dst.img.Bounds(), p.img, p.img.Bounds(), draw.Src, nil)
	return dst
}

// EncodePNG writes p to w as PNG.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.img)
}

// PNG returns the PNG encoding of p.
func (p *Pixmap) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DataURL returns p as a base64 "data:image/png" URL.
func (p *Pixmap) DataURL() (string, error) {
	b, err := p.PNG()
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(b), nil
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return p.EncodePNG(f)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Rect
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
