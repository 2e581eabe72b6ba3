package sub

import "sample"

// IOError re-exports the parent package's type for convenience.
type IOError = sample.IOError

// TimeoutError is an IO failure that gave up waiting.
type TimeoutError struct {
	sample.IOError
	Seconds int
}
