package locator

import "errors"

var (
	// ErrInvalidCID indicates the content locator is not a well-formed CID.
	ErrInvalidCID = errors.New("locator: invalid content identifier")

	// ErrNotFound indicates no gateway could serve the content.
	ErrNotFound = errors.New("locator: content not found")

	// ErrDNSLookupFailed indicates the dnslink DNS query failed.
	ErrDNSLookupFailed = errors.New("locator: DNS lookup failed")

	// ErrNoDNSLink indicates the domain publishes no dnslink TXT record.
	ErrNoDNSLink = errors.New("locator: no dnslink record")

	// ErrDNSSECValidationFailed indicates the resolver could not authenticate
	// the DNS response.
	ErrDNSSECValidationFailed = errors.New("locator: DNSSEC validation failed")

	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("locator: required parameter is nil")
)
