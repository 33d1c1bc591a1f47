package token

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillmarket/libskillmarket-go/codec"
)

func makeAddr(seed byte) codec.Address {
	var a codec.Address
	for i := range a {
		a[i] = seed
	}
	return a
}

func TestNewInvoker_NilCaller(t *testing.T) {
	_, err := NewInvoker(nil)
	assert.ErrorIs(t, err, ErrNilParam)
}

func TestInvoker_TransferFrom_PayloadLayout(t *testing.T) {
	tokenContract := makeAddr(0x10)
	from := makeAddr(0x20)
	to := makeAddr(0x30)
	amount := codec.U256FromUint64(100)

	var gotContract codec.Address
	var gotPayload []byte
	caller := &MockCaller{
		CallFn: func(_ context.Context, contract codec.Address, payload []byte) ([]byte, error) {
			gotContract = contract
			gotPayload = payload
			return []byte{1}, nil
		},
	}
	inv, err := NewInvoker(caller)
	require.NoError(t, err)

	require.NoError(t, inv.TransferFrom(context.Background(), tokenContract, from, to, amount))
	assert.Equal(t, tokenContract, gotContract)

	// selector(4) + from(32) + to(32) + amount(32)
	require.Len(t, gotPayload, 100)
	r := codec.NewReader(gotPayload)
	sel, err := r.ReadSelector()
	require.NoError(t, err)
	assert.Equal(t, codec.EncodeSelector("transferFrom()"), sel)

	gotFrom, err := r.ReadAddress()
	require.NoError(t, err)
	assert.Equal(t, from, gotFrom)

	gotTo, err := r.ReadAddress()
	require.NoError(t, err)
	assert.Equal(t, to, gotTo)

	gotAmount, err := r.ReadU256()
	require.NoError(t, err)
	assert.Equal(t, amount, gotAmount)
}

func TestInvoker_TransferFrom_Rejected(t *testing.T) {
	caller := &MockCaller{
		CallFn: func(context.Context, codec.Address, []byte) ([]byte, error) {
			return []byte{0}, nil
		},
	}
	inv, err := NewInvoker(caller)
	require.NoError(t, err)

	err = inv.TransferFrom(context.Background(), makeAddr(1), makeAddr(2), makeAddr(3), codec.U256FromUint64(1))
	assert.ErrorIs(t, err, ErrTransferRejected)
}

func TestInvoker_TransferFrom_CallError(t *testing.T) {
	dialErr := errors.New("contract unreachable")
	caller := &MockCaller{
		CallFn: func(context.Context, codec.Address, []byte) ([]byte, error) {
			return nil, dialErr
		},
	}
	inv, err := NewInvoker(caller)
	require.NoError(t, err)

	err = inv.TransferFrom(context.Background(), makeAddr(1), makeAddr(2), makeAddr(3), codec.U256FromUint64(1))
	assert.ErrorIs(t, err, ErrCallFailed)
	assert.ErrorIs(t, err, dialErr)
}

func TestInvoker_TransferFrom_EmptyResponse(t *testing.T) {
	caller := &MockCaller{
		CallFn: func(context.Context, codec.Address, []byte) ([]byte, error) {
			return nil, nil
		},
	}
	inv, err := NewInvoker(caller)
	require.NoError(t, err)

	err = inv.TransferFrom(context.Background(), makeAddr(1), makeAddr(2), makeAddr(3), codec.U256FromUint64(1))
	assert.ErrorIs(t, err, ErrBadResponse)
}
