package market

import (
	"fmt"

	"github.com/skillmarket/libskillmarket-go/codec"
)

// Event kinds as they appear in the event log.
const (
	KindSkillListed    = "SkillListed"
	KindSkillPurchased = "SkillPurchased"
)

// eventPayloadLen is the encoded size of both event types:
// three 32-byte fields.
const eventPayloadLen = 96

// Event is an append-only record attached to a successful invocation.
type Event interface {
	// Kind returns the event name.
	Kind() string

	// Encode returns the fixed binary payload.
	Encode() []byte
}

// SkillListedEvent is emitted when a new listing is created.
// Layout: uint256 id | id32 creator | uint256 price.
type SkillListedEvent struct {
	ListingID codec.U256
	Creator   codec.Address
	Price     codec.U256
}

// Kind returns "SkillListed".
func (e *SkillListedEvent) Kind() string { return KindSkillListed }

// Encode returns the 96-byte event payload.
func (e *SkillListedEvent) Encode() []byte {
	w := codec.NewWriter(eventPayloadLen)
	w.WriteU256(e.ListingID)
	w.WriteAddress(e.Creator)
	w.WriteU256(e.Price)
	return w.Bytes()
}

// DecodeSkillListed decodes a SkillListed payload.
func DecodeSkillListed(payload []byte) (*SkillListedEvent, error) {
	if len(payload) != eventPayloadLen {
		return nil, fmt.Errorf("%w: SkillListed payload is %d bytes", ErrBadCalldata, len(payload))
	}
	r := codec.NewReader(payload)
	var e SkillListedEvent
	var err error
	if e.ListingID, err = r.ReadU256(); err != nil {
		return nil, err
	}
	if e.Creator, err = r.ReadAddress(); err != nil {
		return nil, err
	}
	if e.Price, err = r.ReadU256(); err != nil {
		return nil, err
	}
	return &e, nil
}

// SkillPurchasedEvent is emitted on every successful purchase. Observers
// holding the buyer's viewpoint use it to learn the listing's secret from
// purchase history.
// Layout: uint256 id | id32 buyer | id32 creator.
type SkillPurchasedEvent struct {
	ListingID codec.U256
	Buyer     codec.Address
	Creator   codec.Address
}

// Kind returns "SkillPurchased".
func (e *SkillPurchasedEvent) Kind() string { return KindSkillPurchased }

// Encode returns the 96-byte event payload.
func (e *SkillPurchasedEvent) Encode() []byte {
	w := codec.NewWriter(eventPayloadLen)
	w.WriteU256(e.ListingID)
	w.WriteAddress(e.Buyer)
	w.WriteAddress(e.Creator)
	return w.Bytes()
}

// DecodeSkillPurchased decodes a SkillPurchased payload.
func DecodeSkillPurchased(payload []byte) (*SkillPurchasedEvent, error) {
	if len(payload) != eventPayloadLen {
		return nil, fmt.Errorf("%w: SkillPurchased payload is %d bytes", ErrBadCalldata, len(payload))
	}
	r := codec.NewReader(payload)
	var e SkillPurchasedEvent
	var err error
	if e.ListingID, err = r.ReadU256(); err != nil {
		return nil, err
	}
	if e.Buyer, err = r.ReadAddress(); err != nil {
		return nil, err
	}
	if e.Creator, err = r.ReadAddress(); err != nil {
		return nil, err
	}
	return &e, nil
}
