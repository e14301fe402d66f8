package markup

import "strings"

// An Encoder provides utilities to write XML text fragments to a byte
// slice.
//
// Methods escape markup delimiters as appropriate for the fragment
// kind they produce, except for [Encoder.Raw] which outputs its
// argument verbatim.
type Encoder struct {
	// Out is the encoded output.
	Out []byte
}

// Raw writes s as-is to the output. It is the caller's responsibility
// to ensure s is well-formed in its destination context.
func (e *Encoder) Raw(s string) {
	e.Out = append(e.Out, s...)
}

// Attr writes an attribute as name="value". The value is escaped; '&',
// '<' and '"' never appear literally in the output. The name is
// written verbatim.
func (e *Encoder) Attr(name, value string) {
	e.Out = append(e.Out, name...)
	e.Out = append(e.Out, '=', '"')
	e.Out = appendEscaped(e.Out, value, true)
	e.Out = append(e.Out, '"')
}

// Text writes character data, escaping '&', '<' and '>'.
func (e *Encoder) Text(s string) {
	e.Out = appendEscaped(e.Out, s, false)
}

// Comment writes s as a comment. s must not contain "--", which XML
// forbids inside comments; the encoder does not check.
func (e *Encoder) Comment(s string) {
	e.Out = append(e.Out, "<!--"...)
	e.Out = append(e.Out, s...)
	e.Out = append(e.Out, "-->"...)
}

// CDATA writes s as one or more CDATA sections. An embedded "]]>" is
// split across two sections so the output remains well-formed.
func (e *Encoder) CDATA(s string) {
	for {
		i := strings.Index(s, "]]>")
		if i < 0 {
			break
		}
		e.Out = append(e.Out, "<![CDATA["...)
		e.Out = append(e.Out, s[:i+2]...)
		e.Out = append(e.Out, "]]>"...)
		s = s[i+2:]
	}
	e.Out = append(e.Out, "<![CDATA["...)
	e.Out = append(e.Out, s...)
	e.Out = append(e.Out, "]]>"...)
}

// ProcInst writes a processing instruction. The instruction text is
// omitted when empty.
func (e *Encoder) ProcInst(target, inst string) {
	e.Out = append(e.Out, "<?"...)
	e.Out = append(e.Out, target...)
	if inst != "" {
		e.Out = append(e.Out, ' ')
		e.Out = append(e.Out, inst...)
	}
	e.Out = append(e.Out, "?>"...)
}

// appendEscaped appends s to dst with markup delimiters replaced by
// entity references. Attribute values escape the double quote and may
// contain '>'; character data escapes '>' (for "]]>") and may contain
// quotes.
func appendEscaped(dst []byte, s string, attr bool) []byte {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '&':
			dst = append(dst, "&amp;"...)
		case c == '<':
			dst = append(dst, "&lt;"...)
		case c == '"' && attr:
			dst = append(dst, "&quot;"...)
		case c == '>' && !attr:
			dst = append(dst, "&gt;"...)
		default:
			dst = append(dst, c)
		}
	}
	return dst
}
