// Package locator handles the content side of a listing: validating the
// content-addressed locator stored on-chain, fetching the encrypted payload
// from HTTP gateways, and resolving a market domain's dnslink TXT record to
// a locator. The payload stays opaque here; decryption belongs to whoever
// holds the listing's secret.
package locator

import "fmt"

// cidV0Len is the length of a base58btc-encoded CIDv0 ("Qm" + 44 chars).
const cidV0Len = 46

// base58Alphabet is the bitcoin base58 alphabet used by CIDv0.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var base58Set = func() [256]bool {
	var set [256]bool
	for i := 0; i < len(base58Alphabet); i++ {
		set[base58Alphabet[i]] = true
	}
	return set
}()

// ValidateCID checks that s is syntactically a CIDv0: 46 characters, "Qm"
// prefix, base58btc alphabet. It does not verify the multihash digest.
func ValidateCID(s string) error {
	if len(s) != cidV0Len {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidCID, len(s), cidV0Len)
	}
	if s[0] != 'Q' || s[1] != 'm' {
		return fmt.Errorf("%w: missing Qm prefix", ErrInvalidCID)
	}
	for i := 0; i < len(s); i++ {
		if !base58Set[s[i]] {
			return fmt.Errorf("%w: invalid character %q at %d", ErrInvalidCID, s[i], i)
		}
	}
	return nil
}
