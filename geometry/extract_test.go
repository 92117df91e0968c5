package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penplot/sketchbook/svgdoc"
)

func doc(shapes ...*svgdoc.Element) *svgdoc.Document {
	d := svgdoc.New(100, 100, "")
	d.Append(shapes...)
	return d
}

func el(name string, kv ...string) *svgdoc.Element {
	e := svgdoc.NewElement(name)
	for i := 0; i+1 < len(kv); i += 2 {
		e.Set(kv[i], kv[i+1])
	}
	return e
}

func TestExtractLine(t *testing.T) {
	d := doc(svgdoc.NewLine(0, 0, 10, 10, svgdoc.Style{Stroke: "#000", Width: 1}))

	assert.Equal(t, []Polyline{{{0, 0}, {10, 10}}}, Extract(d))
}

func TestExtractOrder(t *testing.T) {
	d := doc(
		el("path", "d", "M 1 1 L 2 2"),
		el("line", "x1", "3", "y1", "3", "x2", "4", "y2", "4"),
		el("polygon", "points", "5,5 6,6 7,7"),
		el("polyline", "points", "8,8 9,9"),
	)

	got := Extract(d)
	require.Len(t, got, 4)
	assert.Equal(t, Polyline{{5, 5}, {6, 6}, {7, 7}}, got[0], "polygons and polylines first")
	assert.Equal(t, Polyline{{8, 8}, {9, 9}}, got[1])
	assert.Equal(t, Polyline{{3, 3}, {4, 4}}, got[2], "then lines")
	assert.Equal(t, Polyline{{1, 1}, {2, 2}}, got[3], "then paths")
}

func TestExtractPoints(t *testing.T) {
	tests := []struct {
		name   string
		points string
		want   []Polyline
	}{
		{"plain", "1,2 3,4", []Polyline{{{1, 2}, {3, 4}}}},
		{"extra whitespace", "  1,2\n\t3.5,-4  ", []Polyline{{{1, 2}, {3.5, -4}}}},
		{"malformed tokens dropped", "1,2 x,y 5 ,6 7,8", []Polyline{{{1, 2}, {7, 8}}}},
		{"trailing garbage tolerated", "1px,2 3,4,5", []Polyline{{{1, 2}, {3, 4}}}},
		{"nothing usable", "a,b c", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(doc(el("polyline", "points", tt.points))))
		})
	}
}

func TestExtractLineNeedsAllCoordinates(t *testing.T) {
	d := doc(
		el("line", "x1", "0", "y1", "0", "x2", "10"),
		el("line", "x1", "0", "y1", "abc", "x2", "1", "y2", "1"),
		el("line", "x1", "Infinity", "y1", "0", "x2", "1", "y2", "1"),
	)
	assert.Empty(t, Extract(d))
}

func TestExtractArcPath(t *testing.T) {
	arc := svgdoc.NewArcPath(50, 50, 10, 10, 0, 1, svgdoc.Style{Stroke: "red", Width: 3})
	got := ExtractPaths(doc(arc))

	require.Len(t, got, 1)
	assert.Equal(t, Polyline{{60, 50}}, got[0].Points, "arcs keep only the start anchor")
	assert.Equal(t, "red", got[0].Stroke)
	assert.Equal(t, 3.0, got[0].Width)
}

func TestExtractTranslate(t *testing.T) {
	d := doc(
		svgdoc.NewLine(0, 0, 10, 10, svgdoc.Style{Stroke: "#000", Width: 1, DX: 400, DY: 300}),
		el("polygon", "points", "0,0 1,0 1,1", "transform", "translate(5,6)"),
		el("polyline", "points", "0,0 1,1", "transform", "translate(7)"),
	)

	got := ExtractPaths(d)
	require.Len(t, got, 3)
	assert.Equal(t, Polyline{{5, 6}, {6, 6}, {6, 7}}, got[0].Points)
	assert.True(t, got[0].Closed)
	assert.Equal(t, Polyline{{7, 0}, {8, 1}}, got[1].Points)
	assert.False(t, got[1].Closed)
	assert.Equal(t, Polyline{{400, 300}, {410, 310}}, got[2].Points)
}

func TestExtractPathDefaults(t *testing.T) {
	got := ExtractPaths(doc(el("polyline", "points", "0,0 1,1", "stroke-width", "bogus")))
	require.Len(t, got, 1)
	assert.Equal(t, 1.0, got[0].Width)
	assert.Equal(t, "", got[0].Stroke)
}

func TestExtractNil(t *testing.T) {
	assert.Empty(t, Extract(nil))
	assert.Empty(t, Extract(svgdoc.New(10, 10, "")))
}

func TestParseNum(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"10", 10, true},
		{" -2.5", -2.5, true},
		{"1e2", 100, true},
		{"3px", 3, true},
		{"", 0, false},
		{"-", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseNum(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseNum(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
