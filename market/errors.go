package market

import "errors"

var (
	// ErrZeroPrice indicates a listing was submitted with a zero price.
	ErrZeroPrice = errors.New("market: price must be greater than zero")

	// ErrListingNotActive indicates the listing is inactive or was never
	// created; the two are indistinguishable to buyers.
	ErrListingNotActive = errors.New("market: listing is not active")

	// ErrNotCreator indicates the caller does not own the listing.
	ErrNotCreator = errors.New("market: only the creator can delist")

	// ErrAlreadyInactive indicates the listing was already delisted.
	ErrAlreadyInactive = errors.New("market: listing is already inactive")

	// ErrTransferFailed indicates the token contract did not complete the
	// payment transfer.
	ErrTransferFailed = errors.New("market: token transfer failed")

	// ErrUnknownMethod indicates the selector matches no known operation.
	ErrUnknownMethod = errors.New("market: unrecognized method selector")

	// ErrBadCalldata indicates the argument blob does not match the
	// operation's declared layout.
	ErrBadCalldata = errors.New("market: malformed calldata")

	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("market: required parameter is nil")
)
