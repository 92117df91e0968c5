// Package sketchbook is a headless creative-coding toolkit for plotter
// sketches.
//
// # Overview
//
// A sketch is a set of Hooks (Trace, Draw, Setup) that issue primitive
// drawing calls against a DrawingContext. The same hooks run against two
// very different contexts:
//
//   - Canvas rasterizes every call into a Pixmap, the way a live browser
//     canvas would.
//   - recording.Recorder turns every call into SVG shape elements so the
//     drawing can be exported as vectors (see package export).
//
// # Quick Start
//
//	sk := &sketchbook.Sketch{
//	    Name: "cross", Width: 200, Height: 200,
//	    Hooks: sketchbook.Hooks{Draw: func(dc sketchbook.DrawingContext) error {
//	        dc.Background(sketchbook.Gray(255))
//	        dc.Stroke(sketchbook.RGB{R: 220, G: 20, B: 60})
//	        dc.Line(0, 0, 200, 200)
//	        dc.Line(200, 0, 0, 200)
//	        return nil
//	    }},
//	}
//	canvas, err := sketchbook.Run(sk, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = canvas.Pixmap().SavePNG("cross.png")
//
// # Colors
//
// Colors are a small tagged union (RGB, HSB, Gray, CSS) plus the untagged
// Triple whose meaning depends on the active ColorMode. NormalizeColor
// turns any of them into the canonical "rgb(r,g,b)" stroke string used in
// exported documents.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing clockwise on screen
package sketchbook
