package token

import "errors"

var (
	// ErrTransferRejected indicates the token contract returned false from
	// transferFrom, typically because the payer's allowance is insufficient.
	ErrTransferRejected = errors.New("token: transferFrom rejected")

	// ErrBadResponse indicates the token contract's response could not be
	// decoded as a boolean.
	ErrBadResponse = errors.New("token: malformed transferFrom response")

	// ErrCallFailed indicates the cross-contract call itself failed.
	ErrCallFailed = errors.New("token: cross-contract call failed")

	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("token: required parameter is nil")
)
