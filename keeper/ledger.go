package keeper

import (
	"errors"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/sharevault/types"
)

// GetShareBalance returns the holder's share balance in a vault. A holder with
// no stored balance has zero shares.
func (k Keeper) GetShareBalance(ctx sdk.Context, vaultID uint64, holder sdk.AccAddress) (sdkmath.Int, error) {
	balance, err := k.ShareBalances.Get(ctx, collections.Join(vaultID, holder))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return sdkmath.ZeroInt(), nil
		}
		return sdkmath.Int{}, err
	}
	return balance, nil
}

// mintShares credits shares to the receiver and grows the vault's total supply,
// persisting both so the per-holder sum always equals TotalShares.
func (k *Keeper) mintShares(ctx sdk.Context, vault *types.Vault, receiver sdk.AccAddress, shares sdkmath.Int) error {
	balance, err := k.GetShareBalance(ctx, vault.Id, receiver)
	if err != nil {
		return err
	}
	if err := k.ShareBalances.Set(ctx, collections.Join(vault.Id, receiver), balance.Add(shares)); err != nil {
		return err
	}
	vault.TotalShares = vault.TotalShares.Add(shares)
	return k.setVault(ctx, *vault)
}

// burnShares debits shares from the owner and shrinks the vault's total supply.
// Zeroed balances are removed from state. Returns ErrInsufficientShares when the
// owner's balance does not cover the burn.
func (k *Keeper) burnShares(ctx sdk.Context, vault *types.Vault, owner sdk.AccAddress, shares sdkmath.Int) error {
	balance, err := k.GetShareBalance(ctx, vault.Id, owner)
	if err != nil {
		return err
	}
	if balance.LT(shares) {
		return types.ErrInsufficientShares.Wrapf("owner %s holds %s shares, burn requires %s", owner, balance, shares)
	}

	remaining := balance.Sub(shares)
	key := collections.Join(vault.Id, owner)
	if remaining.IsZero() {
		if err := k.ShareBalances.Remove(ctx, key); err != nil {
			return err
		}
	} else {
		if err := k.ShareBalances.Set(ctx, key, remaining); err != nil {
			return err
		}
	}

	vault.TotalShares = vault.TotalShares.Sub(shares)
	return k.setVault(ctx, *vault)
}

// ApproveWithdraw sets the number of the owner's shares a spender may burn via
// Withdraw or Redeem on the owner's behalf. A zero amount clears the allowance.
func (k *Keeper) ApproveWithdraw(ctx sdk.Context, vaultID uint64, owner, spender sdk.AccAddress, shares sdkmath.Int) error {
	if shares.IsNil() || shares.IsNegative() {
		return types.ErrInvalidRequest.Wrap("allowance must be a non-negative integer")
	}
	if owner.Equals(spender) {
		return types.ErrInvalidRequest.Wrap("cannot set an allowance for the owner itself")
	}
	if _, err := k.GetVault(ctx, vaultID); err != nil {
		return err
	}

	key := collections.Join3(vaultID, owner, spender)
	if shares.IsZero() {
		err := k.Allowances.Remove(ctx, key)
		if err != nil && !errors.Is(err, collections.ErrNotFound) {
			return err
		}
	} else {
		if err := k.Allowances.Set(ctx, key, shares); err != nil {
			return err
		}
	}

	k.emitEvent(ctx, types.EventTypeApproveWithdraw, types.NewApproveWithdrawAttrs(vaultID, owner.String(), spender.String(), shares)...)
	return nil
}

// WithdrawAllowance returns the shares a spender may currently burn on the
// owner's behalf.
func (k Keeper) WithdrawAllowance(ctx sdk.Context, vaultID uint64, owner, spender sdk.AccAddress) (sdkmath.Int, error) {
	allowance, err := k.Allowances.Get(ctx, collections.Join3(vaultID, owner, spender))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return sdkmath.ZeroInt(), nil
		}
		return sdkmath.Int{}, err
	}
	return allowance, nil
}

// spendAllowance decrements the spender's allowance by the shares being burned,
// removing it when fully spent.
func (k *Keeper) spendAllowance(ctx sdk.Context, vaultID uint64, owner, spender sdk.AccAddress, shares sdkmath.Int) error {
	allowance, err := k.WithdrawAllowance(ctx, vaultID, owner, spender)
	if err != nil {
		return err
	}
	if allowance.LT(shares) {
		return types.ErrInsufficientAllowance.Wrapf("spender %s has allowance %s, needs %s", spender, allowance, shares)
	}

	remaining := allowance.Sub(shares)
	key := collections.Join3(vaultID, owner, spender)
	if remaining.IsZero() {
		return k.Allowances.Remove(ctx, key)
	}
	return k.Allowances.Set(ctx, key, remaining)
}
