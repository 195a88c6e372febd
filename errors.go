package printsymbol

import "errors"

// ErrUnsupported is returned when no writer is registered for a symbology or
// a symbology or error level name is not recognised.
var ErrUnsupported = errors.New("unsupported symbology")
