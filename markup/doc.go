// Package markup provides low-level helpers to write XML text
// fragments to a byte slice.
//
// The provided encoder is very low level, and does not enforce any
// XML grammar. It is the caller's responsibility to produce
// well-formed documents with these tools; the xmltree serializer is
// the intended caller, and uses the encoder for attribute escaping
// and for the literal form of non-element nodes.
package markup
