package xmltree

import (
	"io"

	"github.com/creachadair/mds/mapset"
	"github.com/creachadair/mds/value"
	"github.com/hexwood/xmltree/markup"
)

// Serialize writes the textual form of root and its descendants to w,
// with no XML declaration.
//
// Serialize traverses the tree recursively, tracking which namespace
// bindings ancestors have already declared. An element's tag declares
// only the bindings of its scope that are not in force at that point:
// a (prefix, uri) pair declared by any ancestor is never re-emitted,
// and a default-namespace attribute appears only when the element's
// effective default differs from the inherited one (xmlns="" when an
// inherited default must be undone). Prefixes rebound to a different
// URI are always re-declared.
//
// Attributes are written in their order in [Element.Attrs], with
// values escaped. Elements without children are written in
// self-closing form. [Raw] nodes are copied verbatim.
//
// Serialize never mutates the tree and fails only when writing to w
// fails; that error is returned unchanged. Output is assembled in
// memory and handed to w in a single Write.
func Serialize(root *Element, w io.Writer) error {
	var enc markup.Encoder
	s := serializer{enc: &enc}
	s.element(root)
	_, err := w.Write(enc.Out)
	return err
}

// A frame records what one open element changed about the namespace
// environment: the prefixed bindings its tag declared, and the new
// effective default namespace if its tag changed it.
type frame struct {
	declared  mapset.Set[Binding]
	defaultNS value.Maybe[string]
}

type serializer struct {
	enc *markup.Encoder
	// frames has one entry per open element, pushed on entry and
	// popped on exit, so sibling subtrees never see each other's
	// declarations.
	frames []frame
}

func (s *serializer) node(n Node) {
	switch n := n.(type) {
	case *Element:
		s.element(n)
	case Raw:
		s.enc.Raw(string(n))
	}
}

func (s *serializer) element(e *Element) {
	// The nearest binding for the element's own prefix decides the
	// tag name. A prefix with no binding degrades to an unprefixed
	// tag rather than failing.
	qname := e.Name
	var emitDefault, pushDefault value.Maybe[string]
	switch own := e.Scope.FindByPrefix(e.Prefix); {
	case own == nil:
		if s.currentDefault() != "" {
			// An ancestor default is in force but this element is
			// in no namespace: undo it explicitly.
			emitDefault = value.Just("")
			pushDefault = value.Just("")
		}
	case own.binding.Prefix == "":
		if uri := own.binding.URI; uri != s.currentDefault() {
			emitDefault = value.Just(uri)
			pushDefault = value.Just(uri)
		}
	default:
		qname = own.binding.Prefix + ":" + e.Name
	}

	// Collect the prefixed bindings this tag must declare: every
	// chain link whose (prefix, uri) pair no open element has
	// declared yet. Nearer links shadow farther ones with the same
	// prefix, matching lookup order.
	declared := mapset.New[Binding]()
	var decls []Binding
	shadowed := mapset.New[string]()
	for l := e.Scope; l != nil; l = l.parent {
		b := l.binding
		if b.Prefix == "" || shadowed.Has(b.Prefix) {
			continue
		}
		shadowed.Add(b.Prefix)
		if s.declaredByAncestor(b) {
			continue
		}
		declared.Add(b)
		decls = append(decls, b)
	}

	s.frames = append(s.frames, frame{declared: declared, defaultNS: pushDefault})

	s.enc.Raw("<")
	s.enc.Raw(qname)
	if uri, ok := emitDefault.GetOK(); ok {
		s.enc.Raw(" ")
		s.enc.Attr("xmlns", uri)
	}
	for _, b := range decls {
		s.enc.Raw(" ")
		s.enc.Attr("xmlns:"+b.Prefix, b.URI)
	}
	for _, a := range e.Attrs {
		s.enc.Raw(" ")
		s.enc.Attr(a.Name.String(), a.Value)
	}
	if len(e.Children) == 0 {
		s.enc.Raw("/>")
	} else {
		s.enc.Raw(">")
		for _, c := range e.Children {
			s.node(c)
		}
		s.enc.Raw("</")
		s.enc.Raw(qname)
		s.enc.Raw(">")
	}

	s.frames = s.frames[:len(s.frames)-1]
}

// currentDefault returns the default namespace in force at the
// current depth: the URI recorded by the nearest open element that
// changed it, "" if none did.
func (s *serializer) currentDefault() string {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if uri, ok := s.frames[i].defaultNS.GetOK(); ok {
			return uri
		}
	}
	return ""
}

// declaredByAncestor reports whether any open element's tag already
// declared b. The whole stack is searched, not just the immediate
// parent, so a binding declared several levels up still suppresses a
// repeat declaration.
func (s *serializer) declaredByAncestor(b Binding) bool {
	for i := range s.frames {
		if s.frames[i].declared.Has(b) {
			return true
		}
	}
	return false
}
