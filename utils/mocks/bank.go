package mocks

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Bank is a minimal store-backed bank standing in for the underlying asset
// ledger in keeper tests. Its balances live in the same multistore as the
// keeper under test, so a discarded branch context rolls bank transfers back
// exactly like the keeper's own state.
type Bank struct {
	balances collections.Map[collections.Pair[sdk.AccAddress, string], sdkmath.Int]

	// SendHook, when set, runs before a transfer is applied. Tests use it to
	// fail the transfer or to call back into the keeper mid-operation.
	SendHook func(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
}

// NewBank creates a Bank over the given store service.
func NewBank(storeService store.KVStoreService) *Bank {
	builder := collections.NewSchemaBuilder(storeService)
	bank := &Bank{
		balances: collections.NewMap(builder, collections.NewPrefix(0), "balances",
			collections.PairKeyCodec(sdk.AccAddressKey, collections.StringKey), sdk.IntValue),
	}
	if _, err := builder.Build(); err != nil {
		panic(err)
	}
	return bank
}

// SendCoins moves amt from fromAddr to toAddr, running SendHook first.
func (b *Bank) SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	if b.SendHook != nil {
		if err := b.SendHook(ctx, fromAddr, toAddr, amt); err != nil {
			return err
		}
	}

	for _, coin := range amt {
		fromBalance, err := b.balance(ctx, fromAddr, coin.Denom)
		if err != nil {
			return err
		}
		if fromBalance.LT(coin.Amount) {
			return fmt.Errorf("insufficient funds: %s holds %s%s, needs %s", fromAddr, fromBalance, coin.Denom, coin)
		}
		if err := b.setBalance(ctx, fromAddr, coin.Denom, fromBalance.Sub(coin.Amount)); err != nil {
			return err
		}
		toBalance, err := b.balance(ctx, toAddr, coin.Denom)
		if err != nil {
			return err
		}
		if err := b.setBalance(ctx, toAddr, coin.Denom, toBalance.Add(coin.Amount)); err != nil {
			return err
		}
	}
	return nil
}

// GetBalance returns addr's balance of denom.
func (b *Bank) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	balance, err := b.balance(ctx, addr, denom)
	if err != nil {
		panic(err)
	}
	return sdk.NewCoin(denom, balance)
}

// FundAccount credits amt to addr out of thin air.
func (b *Bank) FundAccount(ctx context.Context, addr sdk.AccAddress, amt sdk.Coins) error {
	for _, coin := range amt {
		balance, err := b.balance(ctx, addr, coin.Denom)
		if err != nil {
			return err
		}
		if err := b.setBalance(ctx, addr, coin.Denom, balance.Add(coin.Amount)); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bank) balance(ctx context.Context, addr sdk.AccAddress, denom string) (sdkmath.Int, error) {
	balance, err := b.balances.Get(ctx, collections.Join(addr, denom))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return sdkmath.ZeroInt(), nil
		}
		return sdkmath.Int{}, err
	}
	return balance, nil
}

func (b *Bank) setBalance(ctx context.Context, addr sdk.AccAddress, denom string, amount sdkmath.Int) error {
	key := collections.Join(addr, denom)
	if amount.IsZero() {
		err := b.balances.Remove(ctx, key)
		if err != nil && !errors.Is(err, collections.ErrNotFound) {
			return err
		}
		return nil
	}
	return b.balances.Set(ctx, key, amount)
}
