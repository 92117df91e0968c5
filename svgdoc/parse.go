package svgdoc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

var (
	// ErrNoRoot is returned by Parse when the input has no svg root element.
	ErrNoRoot = errors.New("svgdoc: no svg root element")
)

var entityDecoder = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&#9;", "\t",
	"&#10;", "\n",
	"&#13;", "\r",
	"&amp;", "&",
)

// Parse reads an SVG document. Comments, processing instructions and
// doctype declarations are skipped; element names keep their prefix.
func Parse(r io.Reader) (*Document, error) {
	l := xml.NewLexer(parse.NewInput(r))

	var (
		root  *Element
		stack []*Element
		cur   *Element
		inPI  bool
	)
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if err := l.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("svgdoc: parse: %w", err)
			}
			if root == nil || root.Name != "svg" {
				return nil, ErrNoRoot
			}
			if len(stack) > 0 {
				return nil, fmt.Errorf("svgdoc: parse: unclosed <%s>", stack[len(stack)-1].Name)
			}
			return &Document{Root: root}, nil
		case xml.StartTagPIToken:
			inPI = true
		case xml.StartTagClosePIToken:
			inPI = false
		case xml.StartTagToken:
			cur = NewElement(string(l.Text()))
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("svgdoc: parse: second root element <%s>", cur.Name)
				}
				root = cur
			} else {
				stack[len(stack)-1].Append(cur)
			}
			stack = append(stack, cur)
		case xml.AttributeToken:
			if inPI || cur == nil {
				continue
			}
			cur.Attrs = append(cur.Attrs, Attr{
				Name:  string(l.Text()),
				Value: entityDecoder.Replace(unquote(l.AttrVal())),
			})
		case xml.StartTagCloseToken:
			cur = nil
		case xml.StartTagCloseVoidToken:
			cur = nil
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.EndTagToken:
			name := string(l.Text())
			if len(stack) == 0 || stack[len(stack)-1].Name != name {
				return nil, fmt.Errorf("svgdoc: parse: unexpected </%s>", name)
			}
			stack = stack[:len(stack)-1]
		case xml.TextToken, xml.CDATAToken:
			if len(stack) > 0 {
				text := string(data)
				if tt == xml.TextToken {
					text = entityDecoder.Replace(text)
				} else {
					text = strings.TrimSuffix(strings.TrimPrefix(text, "<![CDATA["), "]]>")
				}
				if strings.TrimSpace(text) != "" {
					stack[len(stack)-1].Text += text
				}
			}
		}
	}
}

func unquote(b []byte) string {
	if len(b) >= 2 && (b[0] == '"' || b[0] == '\'') && b[len(b)-1] == b[0] {
		return string(b[1 : len(b)-1])
	}
	return string(b)
}
