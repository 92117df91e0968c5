package sketchbook

import (
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		name string
		in   any
		hsb  bool
		want string
	}{
		{"nil", nil, false, ""},
		{"zero is gray not null", 0, false, "rgb(0,0,0)"},
		{"rgb triple", Triple{10, 20, 30}, false, "rgb(10,20,30)"},
		{"rgb clamped", Triple{300, -5, 90}, false, "rgb(255,0,90)"},
		{"float slice truncates", []float64{10.9, 20.2, 30.7}, false, "rgb(10,20,30)"},
		{"int slice", []int{1, 2, 3}, false, "rgb(1,2,3)"},
		{"short slice pads", []float64{7}, false, "rgb(7,0,0)"},
		{"hsb triple", Triple{0, 100, 100}, true, "rgb(255,0,0)"},
		{"hsb green", [3]float64{120, 100, 100}, true, "rgb(0,255,0)"},
		{"hsb half brightness", Triple{240, 100, 50}, true, "rgb(0,0,128)"},
		{"hsb flag but rgb range", Triple{200, 150, 50}, true, "rgb(200,150,50)"},
		{"hsb flag third over 100", Triple{20, 50, 101}, true, "rgb(20,50,101)"},
		{"typed rgb ignores flag", RGB{R: 50, G: 60, B: 70}, true, "rgb(50,60,70)"},
		{"typed hsb ignores flag", HSB{H: 0, S: 100, B: 100}, false, "rgb(255,0,0)"},
		{"typed hsb clamps", HSB{H: 0, S: 250, B: 250}, false, "rgb(255,0,0)"},
		{"gray", Gray(128), false, "rgb(128,128,128)"},
		{"gray clamps", Gray(400), false, "rgb(255,255,255)"},
		{"number", 12.9, false, "rgb(12,12,12)"},
		{"negative number", -3, false, "rgb(0,0,0)"},
		{"NaN component", Triple{math.NaN(), 5, 5}, false, "rgb(0,5,5)"},
		{"bare csv", "10, 20,30", false, "rgb(10,20,30)"},
		{"rgba drops alpha", "rgba(1, 2, 3, 0.5)", false, "rgb(1,2,3)"},
		{"rgb upper case", "RGB(4,5,6)", false, "rgb(4,5,6)"},
		{"rgb missing channels", CSS("rgb(1,2)"), false, "rgb(1,2,0)"},
		{"short hex lowered", "#ABC", false, "#abc"},
		{"long hex lowered", CSS("#ABCDEF"), false, "#abcdef"},
		{"four digit hex verbatim", "#ABCD", false, "#ABCD"},
		{"keyword verbatim", "crimson", false, "crimson"},
		{"empty string", "", false, ""},
		{"unsupported type", struct{}{}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeColor(tt.in, tt.hsb))
		})
	}
}

func TestNormalizeColorRGBRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 51 {
				want := fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
				got := NormalizeColor([]int{r, g, b}, false)
				if got != want {
					t.Fatalf("NormalizeColor([%d %d %d]) = %q, want %q", r, g, b, got, want)
				}
			}
		}
	}
}

var rgbPattern = regexp.MustCompile(`^rgb\((\d+),(\d+),(\d+)\)$`)

func TestNormalizeColorHSBValid(t *testing.T) {
	for h := -360.0; h <= 720; h += 37 {
		for s := 0.0; s <= 100; s += 12.5 {
			for b := 0.0; b <= 100; b += 20 {
				got := NormalizeColor(Triple{h, s, b}, true)
				m := rgbPattern.FindStringSubmatch(got)
				require.NotNil(t, m, "hsb(%v,%v,%v) = %q", h, s, b, got)
				for _, ch := range m[1:] {
					v, err := strconv.Atoi(ch)
					require.NoError(t, err)
					assert.True(t, v >= 0 && v <= 255, "channel %d out of range in %q", v, got)
				}
			}
		}
	}
}

func TestHSBToRGB(t *testing.T) {
	tests := []struct {
		h, s, b  float64
		r, g, bl uint8
	}{
		{0, 100, 100, 255, 0, 0},
		{360, 100, 100, 255, 0, 0},
		{-60, 100, 100, 255, 0, 255},
		{60, 100, 100, 255, 255, 0},
		{180, 50, 100, 128, 255, 255},
		{0, 0, 0, 0, 0, 0},
		{42, 0, 100, 255, 255, 255},
		// Channels landing on .5 round up.
		{0, 35, 90, 230, 149, 149},
		{0, 75, 40, 102, 26, 26},
		{120, 50, 90, 115, 230, 115},
	}
	for _, tt := range tests {
		r, g, b := HSBToRGB(tt.h, tt.s, tt.b)
		if r != tt.r || g != tt.g || b != tt.bl {
			t.Errorf("HSBToRGB(%v, %v, %v) = (%d, %d, %d), want (%d, %d, %d)",
				tt.h, tt.s, tt.b, r, g, b, tt.r, tt.g, tt.bl)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{"rgb(1,2,3)", color.NRGBA{1, 2, 3, 255}, true},
		{"rgba(10, 20, 30, 0.5)", color.NRGBA{10, 20, 30, 128}, true},
		{"#f00", color.NRGBA{255, 0, 0, 255}, true},
		{"#F008", color.NRGBA{255, 0, 0, 136}, true},
		{"#1e90ff", color.NRGBA{30, 144, 255, 255}, true},
		{"#ff000080", color.NRGBA{255, 0, 0, 128}, true},
		{"Crimson", color.NRGBA{220, 20, 60, 255}, true},
		{"none", color.NRGBA{}, false},
		{"#12", color.NRGBA{}, false},
		{"#zzz", color.NRGBA{}, false},
		{"", color.NRGBA{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseColor(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRGBString(t *testing.T) {
	assert.Equal(t, "rgb(30,144,255)", RGBString(color.NRGBA{30, 144, 255, 255}))
	assert.Equal(t, "rgb(0,0,0)", RGBString(color.Black))
}
