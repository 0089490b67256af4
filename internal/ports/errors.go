package ports

import "errors"

var (
	// The snapshot could not be opened for reading.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// The snapshot could not be written.
	ErrStorageWrite = errors.New("storage write failure")
	// A stored record is not exactly ten integers.
	ErrMalformedRecord = errors.New("malformed record")
)
