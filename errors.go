package qrencode

import "errors"

// The five error kinds spec.md §7 names. All are returned, never panicked
// through a normal-input path; wrap with fmt.Errorf("%w: ...", ...) and
// unwrap with errors.Is.
var (
	// ErrCapacityExceeded: payload does not fit at version 40 for the
	// chosen ECC, or does not fit at a caller-forced version.
	ErrCapacityExceeded = errors.New("qrencode: payload exceeds capacity")

	// ErrInvalidInput: caller-forced mode rejects the payload's characters.
	ErrInvalidInput = errors.New("qrencode: invalid input for requested mode")

	// ErrUnsupportedEci: the requested ECI designator cannot be located
	// or transcoded.
	ErrUnsupportedEci = errors.New("qrencode: unsupported eci designator")

	// ErrCorruptSerialization: deserialization found a bad signature,
	// implausible side length, truncated stream, or oversized payload.
	ErrCorruptSerialization = errors.New("qrencode: corrupt serialization")

	// ErrInternalInvariantViolated: a post-condition failed inside the
	// encoder itself. This indicates a bug in this module, not bad input.
	ErrInternalInvariantViolated = errors.New("qrencode: internal invariant violated")
)
