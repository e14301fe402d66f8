package xmltree

import (
	"encoding/xml"
	"errors"
	"io"
)

// xmlNamespace is the namespace the "xml" prefix is implicitly bound
// to in every document.
const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// Parse reads an XML document from r and returns its element tree.
//
// Namespace declarations become [Scope] chains with links shared
// between parent and child elements; element and attribute prefixes
// are reconstructed from the bindings in scope. Character data,
// comments and processing instructions inside the root element are
// kept as [Raw] nodes; content before and after the root element is
// discarded. Parse builds trees, it does not validate them.
func Parse(r io.Reader) (*Element, error) {
	d := xml.NewDecoder(r)
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil, errors.New("document has no root element")
		}
		if err != nil {
			return nil, err
		}
		if st, ok := tok.(xml.StartElement); ok {
			return parseElement(d, st, nil)
		}
	}
}

func parseElement(d *xml.Decoder, st xml.StartElement, scope *Scope) (*Element, error) {
	// Declarations extend the inherited chain; the parent's links
	// are shared, never copied.
	for _, a := range st.Attr {
		switch {
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			scope = scope.Bind("", a.Value)
		case a.Name.Space == "xmlns":
			scope = scope.Bind(a.Name.Local, a.Value)
		}
	}

	e := &Element{
		Prefix: prefixFor(scope, st.Name.Space, true),
		Name:   st.Name.Local,
		Scope:  scope,
	}
	for _, a := range st.Attr {
		if a.Name.Space == "xmlns" || a.Name.Space == "" && a.Name.Local == "xmlns" {
			continue
		}
		e.Attrs = append(e.Attrs, Attr{
			Name:  Name{Prefix: prefixFor(scope, a.Name.Space, false), Local: a.Name.Local},
			Value: a.Value,
		})
	}

	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			child, err := parseElement(d, tok, scope)
			if err != nil {
				return nil, err
			}
			e.Children = append(e.Children, child)
		case xml.EndElement:
			return e, nil
		case xml.CharData:
			e.Children = append(e.Children, Text(string(tok)))
		case xml.Comment:
			e.Children = append(e.Children, Comment(string(tok)))
		case xml.ProcInst:
			e.Children = append(e.Children, ProcInst(tok.Target, string(tok.Inst)))
		case xml.Directive:
			e.Children = append(e.Children, Raw("<!"+string(tok)+">"))
		}
	}
}

// prefixFor picks the prefix that makes uri the effective namespace
// of a name, given the bindings in scope. Element names may fall back
// on the default namespace; attribute names need a real prefix.
// Returns "" when uri is empty or nothing usable in scope maps to it.
func prefixFor(scope *Scope, uri string, element bool) string {
	if uri == "" {
		return ""
	}
	if uri == xmlNamespace {
		return "xml"
	}
	for l := scope; l != nil; l = l.parent {
		b := l.Binding()
		if b.URI != uri {
			continue
		}
		if b.Prefix == "" && !element {
			continue
		}
		if scope.FindByPrefix(b.Prefix) != l {
			// A nearer binding shadows this one.
			continue
		}
		return b.Prefix
	}
	return ""
}
