package xmltree

// A Binding associates a namespace prefix with a URI. The empty
// prefix stands for the default (unprefixed) namespace.
type Binding struct {
	Prefix string
	URI    string
}

// A Scope is one link in an element's namespace scope chain: the
// binding declared nearest to the element, plus the rest of the chain
// outward to the root. Chains are immutable and share their tails, so
// extending a parent scope with [Scope.Bind] never copies the
// ancestors' links. A nil *Scope is the empty chain.
type Scope struct {
	binding Binding
	parent  *Scope
}

// Bind returns a new scope that binds prefix to uri in front of s.
// The empty prefix binds the default namespace; binding it to "" undoes
// an inherited default. s is unchanged and becomes the new scope's tail.
func (s *Scope) Bind(prefix, uri string) *Scope {
	return &Scope{binding: Binding{prefix, uri}, parent: s}
}

// Binding returns the binding declared by this link.
func (s *Scope) Binding() Binding { return s.binding }

// Parent returns the rest of the chain, nil at the end.
func (s *Scope) Parent() *Scope { return s.parent }

// FindByPrefix returns the nearest link of s that binds prefix, or
// nil if the chain has no binding for it. The empty prefix looks up
// the default namespace.
func (s *Scope) FindByPrefix(prefix string) *Scope {
	for l := s; l != nil; l = l.parent {
		if l.binding.Prefix == prefix {
			return l
		}
	}
	return nil
}

// uriForPrefix resolves prefix against the chain, "" if unbound.
func (s *Scope) uriForPrefix(prefix string) string {
	if l := s.FindByPrefix(prefix); l != nil {
		return l.binding.URI
	}
	return ""
}
