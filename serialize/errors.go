package serialize

import "errors"

// ErrTruncated is returned when the input stream ends before a complete
// record has been read.
var ErrTruncated = errors.New("serialize: truncated input")
