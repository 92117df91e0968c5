// Package sketches is the catalogue of generative drawings.
//
// Every sketch registers itself under a name in init:
//
//	s, err := sketches.New("rainbow")
//	canvas, err := sketchbook.Run(s, 1)
//
// Sketches hold animation state, so New returns a fresh instance each
// time.
package sketches
