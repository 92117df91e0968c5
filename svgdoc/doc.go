// Package svgdoc is a small SVG element tree: the vector documents that
// recordings are written into, finalized and serialized.
//
// The tree is attribute based rather than typed. Shapes are built with
// NewLine, NewPolyline and NewArcPath, made self-contained by Finalize and
// written out by Encode. Parse reads author-supplied SVG files back into
// the same tree.
package svgdoc
