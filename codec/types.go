// Package codec implements the fixed binary call/response layout used by the
// skill-market contract: big-endian 256-bit integers, 32-byte identifiers,
// single-byte booleans, and 16-bit length-prefixed text. Decoding is
// bounds-checked and fails closed on truncated input.
package codec

import (
	"encoding/hex"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	bsvhash "github.com/bsv-blockchain/go-sdk/primitives/hash"
	"golang.org/x/crypto/sha3"
)

const (
	// SelectorLen is the width of a method selector.
	SelectorLen = 4

	// U256Len is the width of a 256-bit unsigned integer.
	U256Len = 32

	// AddressLen is the width of an account or contract identifier.
	AddressLen = 32

	// MaxStringLen is the largest text value a 16-bit length prefix can carry.
	MaxStringLen = 0xFFFF
)

// U256 is a 256-bit unsigned integer in big-endian byte order.
type U256 [U256Len]byte

// U256FromUint64 returns v widened to 256 bits.
func U256FromUint64(v uint64) U256 {
	var u U256
	u[24] = byte(v >> 56)
	u[25] = byte(v >> 48)
	u[26] = byte(v >> 40)
	u[27] = byte(v >> 32)
	u[28] = byte(v >> 24)
	u[29] = byte(v >> 16)
	u[30] = byte(v >> 8)
	u[31] = byte(v)
	return u
}

// U256FromBytes converts a 32-byte big-endian slice to a U256.
func U256FromBytes(b []byte) (U256, error) {
	var u U256
	if len(b) != U256Len {
		return u, ErrBadLength
	}
	copy(u[:], b)
	return u, nil
}

// IsZero returns true if the value is zero.
func (u U256) IsZero() bool {
	return u == U256{}
}

// Inc returns u + 1 with wraparound at 2^256. The listing counter relies on
// this never wrapping in practice; no upper bound is checked.
func (u U256) Inc() U256 {
	out := u
	for i := U256Len - 1; i >= 0; i-- {
		out[i]++
		if out[i] != 0 {
			break
		}
	}
	return out
}

// Uint64 returns the low 64 bits and whether the value fits in a uint64.
func (u U256) Uint64() (uint64, bool) {
	for i := 0; i < 24; i++ {
		if u[i] != 0 {
			return 0, false
		}
	}
	var v uint64
	for i := 24; i < U256Len; i++ {
		v = v<<8 | uint64(u[i])
	}
	return v, true
}

// Bytes returns the big-endian byte representation.
func (u U256) Bytes() []byte {
	out := make([]byte, U256Len)
	copy(out, u[:])
	return out
}

// String returns the value as 0x-prefixed hex.
func (u U256) String() string {
	return "0x" + hex.EncodeToString(u[:])
}

// Address is a 32-byte account or contract identifier.
type Address [AddressLen]byte

// AddressFromBytes converts a 32-byte slice to an Address.
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLen {
		return a, ErrBadLength
	}
	copy(a[:], b)
	return a, nil
}

// AddressFromPublicKey derives an address as SHA256 of the compressed
// secp256k1 public key.
func AddressFromPublicKey(pub *ec.PublicKey) (Address, error) {
	if pub == nil {
		return Address{}, ErrNilParam
	}
	var a Address
	copy(a[:], bsvhash.Sha256(pub.Compressed()))
	return a, nil
}

// Bytes returns the address as a byte slice.
func (a Address) Bytes() []byte {
	out := make([]byte, AddressLen)
	copy(out, a[:])
	return out
}

// IsZero returns true if the address is all zero bytes.
func (a Address) IsZero() bool {
	return a == Address{}
}

// String returns the address as 0x-prefixed hex.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Selector is a 4-byte method identifier.
type Selector [SelectorLen]byte

// EncodeSelector computes the selector for a canonical method signature:
// the leading 4 bytes of the legacy Keccak-256 digest of the signature text.
func EncodeSelector(signature string) Selector {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(signature))
	var s Selector
	copy(s[:], h.Sum(nil))
	return s
}

// String returns the selector as 0x-prefixed hex.
func (s Selector) String() string {
	return "0x" + hex.EncodeToString(s[:])
}
