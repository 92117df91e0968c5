// Package dxf writes point sequences as a minimal DXF entity stream:
// one POLYLINE per sequence inside a single ENTITIES section, with no
// header, layers or units.
package dxf

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strconv"

	"github.com/penplot/sketchbook/geometry"
)

// PageWidthMM is the width in millimetres that NP pixels map to.
const PageWidthMM = 210.0

// ErrBadReference is returned for a non-positive reference size.
var ErrBadReference = errors.New("dxf: reference size must be positive")

// Scale returns the pixel to millimetre factor for reference size np.
func Scale(np float64) float64 {
	return PageWidthMM / np
}

// Encode writes seqs to w. Every point (x, y) becomes a VERTEX at
// (x·s, (np−y)·s) with s = 210/np, flipping Y up. Coordinates have four
// decimals.
func Encode(w io.Writer, seqs []geometry.Polyline, np float64) error {
	if !(np > 0) {
		return ErrBadReference
	}
	scale := Scale(np)

	bw := bufio.NewWriter(w)
	bw.WriteString("0\nSECTION\n2\nENTITIES\n")
	for _, seq := range seqs {
		bw.WriteString("0\nPOLYLINE\n")
		for _, p := range seq {
			bw.WriteString("0\nVERTEX\n10\n")
			bw.WriteString(fixed4(p.X * scale))
			bw.WriteString("\n20\n")
			bw.WriteString(fixed4((np - p.Y) * scale))
			bw.WriteByte('\n')
		}
		bw.WriteString("0\nSEQEND\n")
	}
	bw.WriteString("0\nENDSEC\n0\nEOF\n")
	return bw.Flush()
}

// Marshal returns the encoding of seqs.
func Marshal(seqs []geometry.Polyline, np float64) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, seqs, np); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fixed4(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of negative zero
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}
