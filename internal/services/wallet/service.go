// Package wallet answers balance queries over the Solana RPC endpoint.
// The chain is read-only from here; signing and settlement belong to the
// payer's wallet and the on-chain program.
package wallet

import (
	"context"
	"errors"

	"hawamoni/internal/validation"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/shopspring/decimal"
)

// Service errors
var (
	ErrBalanceUnavailable = errors.New("balance unavailable")
)

// lamportScale converts lamports to SOL (1 SOL = 1e9 lamports).
const lamportScale = -9

// BalanceFetcher is the slice of the RPC client this service needs.
type BalanceFetcher interface {
	GetBalance(ctx context.Context, account solana.PublicKey, commitment rpc.CommitmentType) (*rpc.GetBalanceResult, error)
}

type Service interface {
	// Balance returns the SOL balance for a wallet address.
	Balance(ctx context.Context, address string) (decimal.Decimal, error)
}

type service struct {
	rpc BalanceFetcher
}

func NewService(client BalanceFetcher) Service {
	return &service{rpc: client}
}

func (s *service) Balance(ctx context.Context, address string) (decimal.Decimal, error) {
	pk, err := validation.Recipient(address)
	if err != nil {
		return decimal.Decimal{}, err
	}

	res, err := s.rpc.GetBalance(ctx, pk, rpc.CommitmentConfirmed)
	if err != nil {
		return decimal.Decimal{}, errors.Join(ErrBalanceUnavailable, err)
	}
	return decimal.NewFromUint64(res.Value).Shift(lamportScale), nil
}
