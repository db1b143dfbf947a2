package buffer

import "errors"

// ErrNoFileName is returned by Save when the document has no name yet.
// Callers are expected to ask for one and use SaveAs.
var ErrNoFileName = errors.New("buffer: no file name")
