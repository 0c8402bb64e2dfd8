package domain

import "errors"

var (
	// ErrDuplicate reports a uniqueness violation on insert, e.g. the same
	// attendee signing up twice in one year.
	ErrDuplicate = errors.New("duplicate record")
)
