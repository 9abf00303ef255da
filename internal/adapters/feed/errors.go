package feed

import "errors"

// Sentinel kinds for feed errors. These never escape Load; they exist for
// log diagnostics and tests.
var (
	ErrUnavailable      = errors.New("feed unavailable")
	ErrMalformedPayload = errors.New("malformed payload")
)
