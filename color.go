package sketchbook

import (
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is a value accepted by Stroke, Fill and Background.
//
// RGB, HSB, Gray and CSS are explicitly tagged and always mean what they say.
// Triple is the untagged three-component form: it is read as HSB or RGB
// depending on the active color mode, see NormalizeColor.
type Color interface {
	isColor()
}

// RGB is a color with channels in [0, 255]. Out of range channels are clamped.
type RGB struct {
	R, G, B float64
}

// HSB is a color with hue in degrees [0, 360) and saturation and
// brightness in [0, 100].
type HSB struct {
	H, S, B float64
}

// Gray is a gray level in [0, 255].
type Gray float64

// CSS is a color token such as "#ff0000", "rgb(1,2,3)" or "crimson".
type CSS string

// Triple is an untagged three-component color.
type Triple [3]float64

func (RGB) isColor()    {}
func (HSB) isColor()    {}
func (Gray) isColor()   {}
func (CSS) isColor()    {}
func (Triple) isColor() {}

var (
	bareCSV = regexp.MustCompile(`^\s*\d+\s*,\s*\d+\s*,\s*\d+\s*$`)
	cssFunc = regexp.MustCompile(`(?i)^rgba?\(([^)]+)\)`)
	hexForm = regexp.MustCompile(`(?i)^#([0-9a-f]{3}|[0-9a-f]{6})$`)
)

// NormalizeColor converts a color value into a canonical stroke string:
// "rgb(r,g,b)" or a lowercase hex token. It returns "" when v is nil.
//
// Accepted inputs are the Color variants plus loosely typed values:
// []float64, [3]float64, []int, string and plain numbers. Untagged arrays
// are read as HSB only when hsb is set and neither the second nor the third
// component exceeds 100; otherwise they are RGB.
//
// Strings follow these rules: bare "r,g,b" becomes rgb(r,g,b); rgb() and
// rgba() lose their alpha channel; 3 or 6 digit hex is lowercased; any
// other string is returned unchanged. Numbers are gray levels.
func NormalizeColor(v any, hsb bool) string {
	switch c := v.(type) {
	case nil:
		return ""
	case RGB:
		return rgbString(channel(c.R), channel(c.G), channel(c.B))
	case HSB:
		r, g, b := HSBToRGB(c.H, clampRange(c.S, 0, 100), clampRange(c.B, 0, 100))
		return rgbString(int(r), int(g), int(b))
	case Gray:
		return grayString(float64(c))
	case CSS:
		return normalizeString(string(c))
	case Triple:
		return normalizeArray(c[:], hsb)
	case [3]float64:
		return normalizeArray(c[:], hsb)
	case []float64:
		return normalizeArray(c, hsb)
	case []int:
		f := make([]float64, len(c))
		for i, x := range c {
			f[i] = float64(x)
		}
		return normalizeArray(f, hsb)
	case string:
		return normalizeString(c)
	case float64:
		return grayString(c)
	case float32:
		return grayString(float64(c))
	case int:
		return grayString(float64(c))
	case int64:
		return grayString(float64(c))
	case uint8:
		return grayString(float64(c))
	}
	return ""
}

func normalizeArray(c []float64, hsb bool) string {
	var v [3]float64
	copy(v[:], c)
	looksLikeRGB := v[1] > 100 || v[2] > 100
	if hsb && !looksLikeRGB {
		r, g, b := HSBToRGB(v[0], v[1], v[2])
		return rgbString(int(r), int(g), int(b))
	}
	return rgbString(channel(v[0]), channel(v[1]), channel(v[2]))
}

func normalizeString(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if bareCSV.MatchString(s) {
		parts := strings.Split(s, ",")
		n := make([]int, 3)
		for i := range n {
			n[i], _ = strconv.Atoi(strings.TrimSpace(parts[i]))
		}
		return rgbString(n[0], n[1], n[2])
	}
	if m := cssFunc.FindStringSubmatch(s); m != nil {
		parts := strings.Split(m[1], ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		for len(parts) < 3 {
			parts = append(parts, "0")
		}
		for i := 1; i < 3; i++ {
			if parts[i] == "" {
				parts[i] = "0"
			}
		}
		return "rgb(" + parts[0] + "," + parts[1] + "," + parts[2] + ")"
	}
	if hexForm.MatchString(s) {
		return strings.ToLower(s)
	}
	return s
}

// HSBToRGB converts hue (degrees), saturation and brightness (0-100) into
// 8-bit RGB channels. The hue is wrapped into [0, 360).
func HSBToRGB(h, s, b float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if math.IsNaN(h) {
		h = 0
	}
	s, b = finite(s)/100, finite(b)/100
	f := func(n float64) float64 {
		k := math.Mod(n+h/60, 6)
		return b * (1 - float64(s*math.Max(0, math.Min(math.Min(k, 4-k), 1))))
	}
	return round255(f(5)), round255(f(3)), round255(f(1))
}

// ParseColor turns a color token back into RGBA. It understands the
// canonical rgb()/rgba() form, hex with 3, 4, 6 or 8 digits and SVG color
// keywords. It reports false for anything else, including "none".
func ParseColor(s string) (color.NRGBA, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.NRGBA{}, false
	}
	if m := cssFunc.FindStringSubmatch(s); m != nil {
		parts := strings.Split(m[1], ",")
		var ch [3]float64
		for i := 0; i < 3 && i < len(parts); i++ {
			ch[i], _ = strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		}
		a := 1.0
		if len(parts) > 3 {
			if v, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64); err == nil {
				a = clampRange(v, 0, 1)
			}
		}
		return color.NRGBA{
			R: uint8(channel(ch[0])),
			G: uint8(channel(ch[1])),
			B: uint8(channel(ch[2])),
			A: uint8(math.Round(a * 255)),
		}, true
	}
	if s[0] == '#' {
		return parseHexColor(s[1:])
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, true
	}
	return color.NRGBA{}, false
}

// RGBString formats c as "rgb(r,g,b)", dropping alpha.
func RGBString(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rgbString(int(n.R), int(n.G), int(n.B))
}

// parseHexColor accepts "RGB", "RGBA", "RRGGBB" and "RRGGBBAA".
func parseHexColor(hex string) (color.NRGBA, bool) {
	var r, g, b uint32
	a := uint32(255)
	ok := true

	switch len(hex) {
	case 3, 6:
		if !isHexDigits(hex) {
			return color.NRGBA{}, false
		}
		c, err := colorful.Hex("#" + hex)
		if err != nil {
			return color.NRGBA{}, false
		}
		r8, g8, b8 := c.RGB255()
		return color.NRGBA{R: r8, G: g8, B: b8, A: 255}, true
	case 4:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 8:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		return color.NRGBA{}, false
	}
	if !ok {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, true
}

func isHexDigits(s string) bool {
	var v uint32
	for i := range len(s) {
		if !parseHex(s[i:i+1], &v) {
			return false
		}
	}
	return true
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

func rgbString(r, g, b int) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}

func grayString(v float64) string {
	g := channel(v)
	return rgbString(g, g, g)
}

// channel truncates v toward zero and clamps it to [0, 255].
// NaN and infinities read as 0.
func channel(v float64) int {
	v = math.Trunc(finite(v))
	return int(clampRange(v, 0, 255))
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func round255(x float64) uint8 {
	return uint8(clampRange(math.Round(255*x), 0, 255))
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
