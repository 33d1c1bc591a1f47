package state

import "errors"

var (
	// ErrListingExists indicates a listing record is already stored for the id.
	ErrListingExists = errors.New("state: listing already exists")

	// ErrListingNotFound indicates no listing record is stored for the id.
	ErrListingNotFound = errors.New("state: listing not found")

	// ErrCorruptRecord indicates a stored record cannot be decoded.
	ErrCorruptRecord = errors.New("state: corrupt record")

	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("state: required parameter is nil")
)
