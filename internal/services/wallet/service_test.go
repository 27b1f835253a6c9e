package wallet

import (
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAddress = "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgHkv"

type MockRPC struct {
	mock.Mock
}

func (m *MockRPC) GetBalance(ctx context.Context, account solana.PublicKey, commitment rpc.CommitmentType) (*rpc.GetBalanceResult, error) {
	args := m.Called(ctx, account, commitment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rpc.GetBalanceResult), args.Error(1)
}

func TestBalance(t *testing.T) {
	t.Run("converts lamports to SOL", func(t *testing.T) {
		mockRPC := new(MockRPC)
		mockRPC.On("GetBalance", mock.Anything, solana.MustPublicKeyFromBase58(testAddress), rpc.CommitmentConfirmed).
			Return(&rpc.GetBalanceResult{Value: 2_500_000_000}, nil)

		svc := NewService(mockRPC)
		balance, err := svc.Balance(context.Background(), testAddress)
		require.NoError(t, err)
		assert.True(t, balance.Equal(decimal.RequireFromString("2.5")), "got %s", balance)
		mockRPC.AssertExpectations(t)
	})

	t.Run("sub-lamport precision preserved", func(t *testing.T) {
		mockRPC := new(MockRPC)
		mockRPC.On("GetBalance", mock.Anything, mock.Anything, mock.Anything).
			Return(&rpc.GetBalanceResult{Value: 1}, nil)

		svc := NewService(mockRPC)
		balance, err := svc.Balance(context.Background(), testAddress)
		require.NoError(t, err)
		assert.True(t, balance.Equal(decimal.RequireFromString("0.000000001")))
	})

	t.Run("invalid address rejected before RPC", func(t *testing.T) {
		mockRPC := new(MockRPC)
		svc := NewService(mockRPC)

		_, err := svc.Balance(context.Background(), "not-a-valid-address")
		assert.Error(t, err)
		mockRPC.AssertNotCalled(t, "GetBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rpc failure surfaced", func(t *testing.T) {
		mockRPC := new(MockRPC)
		mockRPC.On("GetBalance", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, assert.AnError)

		svc := NewService(mockRPC)
		_, err := svc.Balance(context.Background(), testAddress)
		assert.ErrorIs(t, err, ErrBalanceUnavailable)
	})
}
