package hunspell

import "errors"

// ErrUnavailable is returned by New when the build has no libhunspell
// support.
var ErrUnavailable = errors.New("hunspell: not available on this platform")
