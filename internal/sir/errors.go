package sir

import "errors"

// ErrInvalidParameters indicates a parameter set that cannot produce a
// meaningful run. Validation failures wrap it, so callers can test with
// errors.Is regardless of which field was rejected.
var ErrInvalidParameters = errors.New("sir: invalid parameters")
