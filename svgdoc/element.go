package svgdoc

// Attr is a single XML attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is a node of an SVG tree. Attributes keep insertion order so
// that serialization is deterministic.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	// Text is character data directly inside the element, e.g. a title.
	Text string
}

// NewElement creates an element with the given attributes.
func NewElement(name string, attrs ...Attr) *Element {
	return &Element{Name: name, Attrs: attrs}
}

// Attr returns the value of the named attribute and whether it is set.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Get returns the value of the named attribute, or "".
func (e *Element) Get(name string) string {
	v, _ := e.Attr(name)
	return v
}

// Set assigns an attribute, replacing an existing value in place.
func (e *Element) Set(name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// Remove deletes an attribute. Missing attributes are ignored.
func (e *Element) Remove(name string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs = append(e.Attrs[:i], e.Attrs[i+1:]...)
			return
		}
	}
}

// Append adds children at the end.
func (e *Element) Append(children ...*Element) {
	e.Children = append(e.Children, children...)
}

// Prepend inserts child before all other children.
func (e *Element) Prepend(child *Element) {
	e.Children = append([]*Element{child}, e.Children...)
}

// Clone returns a deep copy of e.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	c := &Element{Name: e.Name, Text: e.Text}
	if e.Attrs != nil {
		c.Attrs = make([]Attr, len(e.Attrs))
		copy(c.Attrs, e.Attrs)
	}
	if e.Children != nil {
		c.Children = make([]*Element, len(e.Children))
		for i, ch := range e.Children {
			c.Children[i] = ch.Clone()
		}
	}
	return c
}

// Walk visits the descendants of e in document order. Returning false
// from fn stops the walk.
func (e *Element) Walk(fn func(*Element) bool) bool {
	for _, ch := range e.Children {
		if !fn(ch) || !ch.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first descendant with the given name, or nil.
func (e *Element) Find(name string) *Element {
	var found *Element
	e.Walk(func(el *Element) bool {
		if el.Name == name {
			found = el
			return false
		}
		return true
	})
	return found
}

// FindAll returns every descendant whose name is one of names, in
// document order.
func (e *Element) FindAll(names ...string) []*Element {
	var out []*Element
	e.Walk(func(el *Element) bool {
		for _, n := range names {
			if el.Name == n {
				out = append(out, el)
				break
			}
		}
		return true
	})
	return out
}
