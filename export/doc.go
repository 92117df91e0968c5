// Package export saves what a sketch drew as PNG, SVG, DXF or PDF files.
//
// A Page bundles the live canvas, an optional vector document attached by
// the sketch and the sketch itself. An Exporter reads the page and hands
// files to a Deliverer:
//
//	page := export.NewPage(sketch, canvas)
//	ex := export.New(page, export.DirDeliverer{Dir: "out"})
//	if err := ex.SaveSVG(""); err != nil {
//		log.Fatal(err)
//	}
//
// When the page has no vector document the sketch is replayed through a
// recording.Recorder to recover one. Formats are also reachable by name
// through Exporter.Save, see RegisterFormat.
package export
