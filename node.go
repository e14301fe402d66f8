package xmltree

import "github.com/hexwood/xmltree/markup"

// A Node is one node of an XML tree, either an [*Element] or a [Raw]
// fragment of already-final text.
type Node interface {
	node()
}

// Raw is a non-element node: character data, a comment, CDATA, a
// processing instruction. It holds the node's literal textual form,
// which the serializer copies to the output verbatim. Use [Text],
// [Comment] and [CDATA] to construct well-formed values.
type Raw string

func (Raw) node() {}

// Text returns a character data node with markup delimiters escaped.
func Text(s string) Raw {
	var e markup.Encoder
	e.Text(s)
	return Raw(e.Out)
}

// Comment returns a comment node. The text must not contain "--".
func Comment(s string) Raw {
	var e markup.Encoder
	e.Comment(s)
	return Raw(e.Out)
}

// CDATA returns a CDATA section holding s verbatim. An embedded "]]>"
// is split across two adjacent sections.
func CDATA(s string) Raw {
	var e markup.Encoder
	e.CDATA(s)
	return Raw(e.Out)
}

// ProcInst returns a processing instruction node with the given
// target and instruction text.
func ProcInst(target, inst string) Raw {
	var e markup.Encoder
	e.ProcInst(target, inst)
	return Raw(e.Out)
}

// A Name is an attribute name with an optional namespace prefix.
type Name struct {
	Prefix string // "" for an unprefixed name
	Local  string
}

// String returns the qualified form of the name.
func (n Name) String() string {
	if n.Prefix == "" {
		return n.Local
	}
	return n.Prefix + ":" + n.Local
}

// An Attr is a single attribute. Attribute order on an element is
// significant and is reproduced in the output.
type Attr struct {
	Name  Name
	Value string
}

// An Element is one element of an XML tree.
//
// The serializer only reads Elements, never mutates them. Scope must
// list every binding visible at the element, inherited ones included;
// child scopes share their parent's chain links (see [Scope]).
type Element struct {
	// Prefix is the namespace prefix used in the element's own
	// tag, "" for an unprefixed tag.
	Prefix string
	// Name is the local name.
	Name string
	// Attrs are the ordinary attributes, in document order.
	// Namespace declarations do not appear here; they are derived
	// from Scope.
	Attrs []Attr
	// Scope is the chain of namespace bindings visible at this
	// element. A nil Scope means no bindings at all.
	Scope *Scope
	// Children are the child nodes, in document order. An element
	// with no children serializes in self-closing form.
	Children []Node
}

func (*Element) node() {}

// String returns the element rendered as an XML fragment.
func (e *Element) String() string {
	var enc markup.Encoder
	s := serializer{enc: &enc}
	s.element(e)
	return string(enc.Out)
}
