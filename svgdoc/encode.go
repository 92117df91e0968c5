package svgdoc

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// Header is the XML declaration written before every document.
const Header = `<?xml version="1.0" standalone="no"?>` + "\n"

var (
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"\t", "&#9;",
		"\n", "&#10;",
		"\r", "&#13;",
	)
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
)

// Encode writes the XML declaration followed by the serialized tree.
// Childless elements are written self-closed.
func Encode(w io.Writer, d *Document) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header); err != nil {
		return err
	}
	writeElement(bw, d.Root)
	return bw.Flush()
}

// Marshal returns the encoded document.
func Marshal(d *Document) []byte {
	var buf bytes.Buffer
	_ = Encode(&buf, d)
	return buf.Bytes()
}

func writeElement(w *bufio.Writer, e *Element) {
	w.WriteByte('<')
	w.WriteString(e.Name)
	for _, a := range e.Attrs {
		w.WriteByte(' ')
		w.WriteString(a.Name)
		w.WriteString(`="`)
		w.WriteString(attrEscaper.Replace(a.Value))
		w.WriteByte('"')
	}
	if len(e.Children) == 0 && e.Text == "" {
		w.WriteString("/>")
		return
	}
	w.WriteByte('>')
	w.WriteString(textEscaper.Replace(e.Text))
	for _, ch := range e.Children {
		writeElement(w, ch)
	}
	w.WriteString("</")
	w.WriteString(e.Name)
	w.WriteByte('>')
}
