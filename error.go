package xmltree

import "fmt"

// EncodingError is the error returned when a document is written with
// a charset the encoding index does not know or cannot encode to.
type EncodingError struct {
	// Name is the charset name that was requested.
	Name string
	// Reason is an explanation of why the charset is unusable.
	Reason error
}

func (e EncodingError) Error() string {
	if e.Reason == nil {
		return fmt.Sprintf("unsupported document encoding %q", e.Name)
	}
	return fmt.Sprintf("unsupported document encoding %q: %s", e.Name, e.Reason)
}

func (e EncodingError) Unwrap() error {
	return e.Reason
}
