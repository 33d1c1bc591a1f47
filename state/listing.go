// Package state persists the skill-market ledger: listing records, the
// monotonic listing counter, and the append-only event log. All storage is
// backed by a single bbolt database; one Update call is the atomicity
// boundary for an invocation — every write inside it commits or rolls back
// as a unit.
package state

import "github.com/skillmarket/libskillmarket-go/codec"

// Listing is the stored record for one marketplace entry. All fields except
// Active are immutable after creation; Active latches from true to false
// exactly once.
type Listing struct {
	Creator        codec.Address // account that created the listing
	Price          codec.U256    // token units per purchase, > 0
	PaymentToken   codec.Address // token contract accepted for payment
	ContentLocator string        // content-addressed pointer to the encrypted payload
	Secret         string        // decryption key, revealed only via purchase events
	Active         bool
}

// EventRecord is one entry in the append-only event log.
type EventRecord struct {
	Seq     uint64 // 1-based sequence assigned at append time
	Kind    string // event name, e.g. "SkillListed"
	Payload []byte // fixed binary layout, see the market package
}
