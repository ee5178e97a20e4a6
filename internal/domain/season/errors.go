package season

import "errors"

// ErrMalformedSource marks a season file that could not be decoded.
var ErrMalformedSource = errors.New("malformed season source")
