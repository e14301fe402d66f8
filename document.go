package xmltree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/hexwood/xmltree/markup"
)

// DocumentOptions configure the document-level entry points.
type DocumentOptions struct {
	// Encoding is the IANA name of the output charset. Empty means
	// UTF-8. [DocumentString] only reproduces the name in the
	// declaration; the byte-oriented destinations also encode the
	// output with it.
	Encoding string
	// Declaration, if true, writes an XML declaration before the
	// root element.
	Declaration bool
}

func (o DocumentOptions) encoding() string {
	if o.Encoding == "" {
		return "UTF-8"
	}
	return o.Encoding
}

func isUTF8(name string) bool {
	return strings.EqualFold(name, "UTF-8") || strings.EqualFold(name, "UTF8")
}

// documentText renders the declaration, if requested, and the element
// tree as UTF-8 text.
func documentText(root *Element, opts DocumentOptions) []byte {
	var enc markup.Encoder
	if opts.Declaration {
		enc.ProcInst("xml", `version="1.0" encoding="`+opts.encoding()+`" standalone="yes"`)
	}
	s := serializer{enc: &enc}
	s.element(root)
	return enc.Out
}

// WriteDocument writes root as a complete document to the byte stream
// w, encoded with the configured charset. A charset the encoding
// index does not know yields an [EncodingError] before anything is
// written; errors from w propagate unchanged.
func WriteDocument(root *Element, w io.Writer, opts DocumentOptions) error {
	out := documentText(root, opts)
	if name := opts.encoding(); !isUTF8(name) {
		enc, err := ianaindex.IANA.Encoding(name)
		if err != nil {
			return EncodingError{Name: name, Reason: err}
		}
		if enc == nil {
			// The index knows the name but has no codec for it.
			return EncodingError{Name: name}
		}
		out, _, err = transform.Bytes(enc.NewEncoder(), out)
		if err != nil {
			return EncodingError{Name: name, Reason: err}
		}
	}
	_, err := w.Write(out)
	return err
}

// DocumentString renders root as a complete document in memory. The
// configured encoding appears in the declaration but the returned
// string is always UTF-8 text.
func DocumentString(root *Element, opts DocumentOptions) string {
	return string(documentText(root, opts))
}

// WriteDocumentFile writes root as a complete document to a new file
// at path, replacing an existing file. The file is closed on every
// return path; when serialization itself succeeded, a close error is
// reported.
func WriteDocumentFile(root *Element, path string, opts DocumentOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	err = WriteDocument(root, f, opts)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
