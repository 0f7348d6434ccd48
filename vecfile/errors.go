// SPDX-License-Identifier: MIT
// Package vecfile: sentinel error set.
// Every failure returned by this package matches exactly one sentinel via
// errors.Is; the OS or codec cause stays reachable through the same chain.

package vecfile

import (
	"errors"
	"fmt"
)

var (
	// ErrIO indicates the backing file could not be opened (missing, permission
	// denied, parent directory absent, ...). No handle was acquired.
	ErrIO = errors.New("vecfile: file could not be opened")

	// ErrRead indicates the stream failed mid-read. Reported only in strict mode;
	// lenient mode treats it as end of input.
	ErrRead = errors.New("vecfile: read failed")

	// ErrMalformed indicates a token that does not parse as a float64.
	// Reported only in strict mode; lenient mode stops at it.
	ErrMalformed = errors.New("vecfile: malformed numeric token")

	// ErrWrite indicates a write, flush or close failure while storing.
	// Reported only in strict mode; lenient mode logs and returns nil.
	ErrWrite = errors.New("vecfile: write failed")

	// ErrInvalidCapacity indicates a negative load capacity.
	ErrInvalidCapacity = errors.New("vecfile: capacity must be >= 0")

	// ErrInvalidCount indicates a negative number of values to generate.
	ErrInvalidCount = errors.New("vecfile: count must be >= 0")

	// ErrInvalidRange indicates a generator range that is not finite with lo < hi.
	ErrInvalidRange = errors.New("vecfile: range must be finite with lo < hi")
)

// vecfileErrorf tags sentinel with the operation and path, keeping cause (if any)
// in the chain next to the sentinel.
func vecfileErrorf(op, path string, sentinel, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s %s: %w", op, path, sentinel)
	}

	return fmt.Errorf("%s %s: %w: %w", op, path, sentinel, cause)
}
