package dxf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penplot/sketchbook/geometry"
)

func TestEncodeCoordinateTransform(t *testing.T) {
	out, err := Marshal([]geometry.Polyline{{{X: 400, Y: 200}}}, 800)
	require.NoError(t, err)

	assert.Contains(t, string(out), "0\nVERTEX\n10\n105.0000\n20\n157.5000\n")
}

func TestEncodeLine(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, []geometry.Polyline{{{X: 0, Y: 0}, {X: 10, Y: 10}}}, 800)
	require.NoError(t, err)

	want := "0\nSECTION\n2\nENTITIES\n" +
		"0\nPOLYLINE\n" +
		"0\nVERTEX\n10\n0.0000\n20\n210.0000\n" +
		"0\nVERTEX\n10\n2.6250\n20\n207.3750\n" +
		"0\nSEQEND\n" +
		"0\nENDSEC\n0\nEOF\n"
	assert.Equal(t, want, buf.String())
}

func TestEncodeEmpty(t *testing.T) {
	out, err := Marshal(nil, 480)
	require.NoError(t, err)
	assert.Equal(t, "0\nSECTION\n2\nENTITIES\n0\nENDSEC\n0\nEOF\n", string(out))
}

func TestEncodeMultiple(t *testing.T) {
	seqs := []geometry.Polyline{
		{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}},
		{{X: 5, Y: 5}, {X: 6, Y: 6}},
	}
	out, err := Marshal(seqs, 210)
	require.NoError(t, err)

	s := string(out)
	assert.Equal(t, 2, strings.Count(s, "POLYLINE"))
	assert.Equal(t, 5, strings.Count(s, "VERTEX"))
	assert.Equal(t, 2, strings.Count(s, "SEQEND"))
	assert.Contains(t, s, "10\n5.0000\n20\n205.0000\n", "scale is 1 when NP is 210")
}

func TestEncodeNegativeZero(t *testing.T) {
	out, err := Marshal([]geometry.Polyline{{{X: -0.0, Y: 800}}}, 800)
	require.NoError(t, err)
	assert.Contains(t, string(out), "10\n0.0000\n20\n0.0000\n")
}

func TestEncodeBadReference(t *testing.T) {
	for _, np := range []float64{0, -1} {
		_, err := Marshal(nil, np)
		assert.ErrorIs(t, err, ErrBadReference, "np=%v", np)
	}
}

func TestScale(t *testing.T) {
	if got := Scale(800); got != 0.2625 {
		t.Errorf("Scale(800) = %v, want 0.2625", got)
	}
}
