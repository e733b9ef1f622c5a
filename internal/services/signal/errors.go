package signal

import "errors"

// ErrInvalidInput marks caller contract violations: unequal axis lengths,
// empty batches, non-positive sampling rates. Degenerate-but-well-formed data
// (zero or single-sample series) is not an error and degrades to documented
// fallback values instead.
var ErrInvalidInput = errors.New("invalid input")
