package identity

import "errors"

var ErrInvalidIndex = errors.New("invalid identity index")
