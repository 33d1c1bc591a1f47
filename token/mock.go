package token

import (
	"context"

	"github.com/skillmarket/libskillmarket-go/codec"
)

// MockCaller is a test double for Caller.
// CallFn must be set before Call is invoked.
type MockCaller struct {
	CallFn func(ctx context.Context, contract codec.Address, payload []byte) ([]byte, error)
}

func (m *MockCaller) Call(ctx context.Context, contract codec.Address, payload []byte) ([]byte, error) {
	return m.CallFn(ctx, contract, payload)
}

// MockMover is a test double for Mover.
// TransferFromFn must be set before TransferFrom is invoked.
type MockMover struct {
	TransferFromFn func(ctx context.Context, tokenContract, from, to codec.Address, amount codec.U256) error
}

func (m *MockMover) TransferFrom(ctx context.Context, tokenContract, from, to codec.Address, amount codec.U256) error {
	return m.TransferFromFn(ctx, tokenContract, from, to, amount)
}
