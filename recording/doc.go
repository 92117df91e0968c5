// Package recording turns a sketch's drawing calls into an SVG document.
//
// A Recorder implements sketchbook.DrawingContext. Instead of painting it
// appends line, polyline, polygon and path elements to an svgdoc.Document,
// stamping each with the stroke color, stroke weight and translation in
// effect. Calls that would touch the live canvas are swallowed.
//
// # Replay
//
// Replay drives a sketch's hooks against a fresh Recorder:
//
//	doc, err := recording.Replay(sketch.Hooks, recording.ReplayOptions{
//		Width:         480,
//		Height:        480,
//		Background:    "#ffffff",
//		DefaultStroke: "#000000",
//	})
//	if errors.Is(err, recording.ErrNoShapes) {
//		// fall back to a raster export
//	}
//
// Panicking or failing hooks are reported as *HookError values wrapped in
// the returned error. The live canvas is never touched, so a failed
// replay leaves nothing to restore.
package recording
