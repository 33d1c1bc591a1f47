// Package market implements the skill-market contract: method dispatch over
// 4-byte selectors, the listing lifecycle (list, buy, read, delist), and the
// events each operation emits.
//
// Every invocation runs inside one ledger transaction. A handler error
// aborts the invocation and discards all of its writes and events; there is
// no partial effect and no emit-then-fail.
package market

import (
	"context"
	"fmt"

	"github.com/skillmarket/libskillmarket-go/codec"
	"github.com/skillmarket/libskillmarket-go/state"
	"github.com/skillmarket/libskillmarket-go/token"
)

// Canonical method signatures. Selectors are derived from these texts; the
// external frontend depends on them verbatim.
const (
	SigListSkill   = "listSkill()"
	SigBuySkill    = "buySkill()"
	SigGetListing  = "getListing()"
	SigDelistSkill = "delistSkill()"
)

// Receipt is the outcome of a successful invocation.
type Receipt struct {
	Return []byte               // response bytes in the operation's declared layout
	Events []*state.EventRecord // events appended by this invocation, in order
}

// invocation carries per-call context through a handler.
type invocation struct {
	ctx    context.Context
	caller codec.Address
	reg    *state.Registry
	events []*state.EventRecord
}

// emit encodes the event, appends it to the ledger's event log, and records
// it for the receipt. Discarded with the transaction if the handler fails.
func (in *invocation) emit(ev Event) error {
	rec, err := in.reg.AppendEvent(ev.Kind(), ev.Encode())
	if err != nil {
		return err
	}
	in.events = append(in.events, rec)
	return nil
}

type handlerFunc func(in *invocation, args *codec.Reader) ([]byte, error)

// Contract routes incoming calls to listing operations and owns no state of
// its own; everything durable lives in the injected ledger.
type Contract struct {
	ledger   *state.Ledger
	mover    token.Mover
	handlers map[codec.Selector]handlerFunc
}

// NewContract creates a Contract over the given ledger and token mover.
func NewContract(ledger *state.Ledger, mover token.Mover) (*Contract, error) {
	if ledger == nil {
		return nil, fmt.Errorf("%w: ledger", ErrNilParam)
	}
	if mover == nil {
		return nil, fmt.Errorf("%w: mover", ErrNilParam)
	}
	c := &Contract{ledger: ledger, mover: mover}
	c.handlers = map[codec.Selector]handlerFunc{
		codec.EncodeSelector(SigListSkill):   c.listSkill,
		codec.EncodeSelector(SigBuySkill):    c.buySkill,
		codec.EncodeSelector(SigGetListing):  c.getListing,
		codec.EncodeSelector(SigDelistSkill): c.delistSkill,
	}
	return c, nil
}

// Invoke executes one call: selector(4) + argument blob. On success it
// returns the response bytes and the events the call emitted; on failure the
// ledger is untouched and no events exist.
func (c *Contract) Invoke(ctx context.Context, caller codec.Address, calldata []byte) (*Receipt, error) {
	r := codec.NewReader(calldata)
	sel, err := r.ReadSelector()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadCalldata, err)
	}

	handler, ok := c.handlers[sel]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, sel)
	}

	var receipt *Receipt
	err = c.ledger.Update(func(reg *state.Registry) error {
		in := &invocation{ctx: ctx, caller: caller, reg: reg}
		ret, err := handler(in, r)
		if err != nil {
			return err
		}
		receipt = &Receipt{Return: ret, Events: in.events}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// EventsAfter returns all logged events with a sequence number greater than
// seq, oldest first. Observers poll this to follow purchase history.
func (c *Contract) EventsAfter(seq uint64) ([]*state.EventRecord, error) {
	var out []*state.EventRecord
	err := c.ledger.View(func(reg *state.Registry) error {
		var err error
		out, err = reg.EventsAfter(seq)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
