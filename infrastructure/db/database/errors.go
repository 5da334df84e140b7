package database

import (
	"github.com/pkg/errors"
)

// ErrNotFound denotes that the requested item was not
// found in the database. It is an expected, recoverable
// outcome rather than a system fault.
var ErrNotFound = errors.New("not found")

// IsNotFoundError checks whether an error is an ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// ErrMalformedData denotes an encode/decode mismatch: either data corruption
// on disk or a record-layout defect. It is deliberately distinct from the
// wrapped engine errors, so that callers can separate "bad disk" from
// "bad data".
var ErrMalformedData = errors.New("malformed data")

// IsMalformedDataError checks whether an error is an ErrMalformedData.
func IsMalformedDataError(err error) bool {
	return errors.Is(err, ErrMalformedData)
}
