package types

import (
	context "context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the underlying asset ledger the engine moves value through.
//
// SendCoins is used both to pull deposits from the caller into the vault address
// and to push withdrawals from the vault address to the receiver. Either call may
// execute arbitrary third-party code (send restrictions, hooks) before returning,
// so the engine treats every call as a potential reentry point.
//
// GetBalance exists for callers that want to inspect the live bank balance. The
// engine itself never derives a vault's accounted assets from it; donations sent
// straight to the vault address must not move the exchange rate.
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr sdk.AccAddress, toAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}
