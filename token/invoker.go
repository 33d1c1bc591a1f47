// Package token invokes an external fungible-token contract's "transfer with
// prior authorization" operation on behalf of the marketplace. The call is
// synchronous: the current invocation blocks until the token contract
// returns, and its state changes share the invocation's atomicity.
package token

import (
	"context"
	"fmt"

	"github.com/skillmarket/libskillmarket-go/codec"
)

// transferFromSig is the canonical signature the token contract dispatches on.
const transferFromSig = "transferFrom()"

// Caller is the host capability for synchronous cross-contract calls.
// Implementations execute the target contract's logic to completion and
// return its response bytes.
type Caller interface {
	Call(ctx context.Context, contract codec.Address, payload []byte) ([]byte, error)
}

// Mover moves token funds between accounts. The purchase handler depends on
// this interface so tests can substitute a fake without a real token contract.
type Mover interface {
	TransferFrom(ctx context.Context, tokenContract, from, to codec.Address, amount codec.U256) error
}

// Invoker implements Mover by issuing a transferFrom call through a Caller.
type Invoker struct {
	caller Caller
}

// NewInvoker creates an Invoker over the given host caller.
func NewInvoker(caller Caller) (*Invoker, error) {
	if caller == nil {
		return nil, ErrNilParam
	}
	return &Invoker{caller: caller}, nil
}

// TransferFrom moves amount units of the token from `from` to `to`.
// The payload is selector(4) + from(32) + to(32) + amount(32) = 100 bytes;
// the response is a single boolean. Any outcome other than true is an error.
func (inv *Invoker) TransferFrom(ctx context.Context, tokenContract, from, to codec.Address, amount codec.U256) error {
	w := codec.NewWriter(codec.SelectorLen + 2*codec.AddressLen + codec.U256Len)
	w.WriteSelector(codec.EncodeSelector(transferFromSig))
	w.WriteAddress(from)
	w.WriteAddress(to)
	w.WriteU256(amount)

	resp, err := inv.caller.Call(ctx, tokenContract, w.Bytes())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCallFailed, err)
	}

	ok, err := codec.NewReader(resp).ReadBool()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadResponse, err)
	}
	if !ok {
		return ErrTransferRejected
	}
	return nil
}
