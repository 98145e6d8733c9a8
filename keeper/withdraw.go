package keeper

import (
	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/sharevault/types"
	"github.com/provlabs/sharevault/utils"
)

// Withdraw burns the owner's shares covering exactly the requested assets,
// rounding the burned shares up, and pushes the assets to the receiver. When
// the caller is not the owner the caller's withdrawal allowance is spent by the
// burned shares. Returns the shares burned.
//
// Shares are burned and the vault's accounted assets debited before the asset
// push, so code reached through the push never observes a ledger more favorable
// than the post-operation state. A failed push discards the branched context,
// undoing the burn.
func (k *Keeper) Withdraw(ctx sdk.Context, vaultID uint64, caller sdk.AccAddress, assets sdkmath.Int, receiver, owner sdk.AccAddress) (sdkmath.Int, error) {
	defer telemetry.MeasureSince(telemetry.Now(), types.ModuleName, "withdraw")

	if err := k.enterVault(vaultID); err != nil {
		return sdkmath.Int{}, err
	}
	defer k.exitVault(vaultID)

	cacheCtx, commit := ctx.CacheContext()
	shares, err := k.withdraw(cacheCtx, vaultID, caller, assets, receiver, owner)
	if err != nil {
		return sdkmath.Int{}, err
	}
	commit()
	return shares, nil
}

// WithdrawWithSlippage runs Withdraw and rejects the whole operation, including
// the completed asset push, if more than maxShares were burned.
func (k *Keeper) WithdrawWithSlippage(ctx sdk.Context, vaultID uint64, caller sdk.AccAddress, assets, maxShares sdkmath.Int, receiver, owner sdk.AccAddress) (sdkmath.Int, error) {
	defer telemetry.MeasureSince(telemetry.Now(), types.ModuleName, "withdraw_with_slippage")

	if err := k.enterVault(vaultID); err != nil {
		return sdkmath.Int{}, err
	}
	defer k.exitVault(vaultID)

	cacheCtx, commit := ctx.CacheContext()
	shares, err := k.withdraw(cacheCtx, vaultID, caller, assets, receiver, owner)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if shares.GT(maxShares) {
		return sdkmath.Int{}, types.ErrSlippageExceeded.Wrapf("burned %s shares, maximum is %s", shares, maxShares)
	}
	commit()
	return shares, nil
}

// Redeem is the withdrawal operation with the roles of requested and computed
// quantities swapped: the caller fixes the exact shares to burn and receives
// the corresponding assets, rounded down. Returns the assets paid out.
func (k *Keeper) Redeem(ctx sdk.Context, vaultID uint64, caller sdk.AccAddress, shares sdkmath.Int, receiver, owner sdk.AccAddress) (sdkmath.Int, error) {
	defer telemetry.MeasureSince(telemetry.Now(), types.ModuleName, "redeem")

	if err := k.enterVault(vaultID); err != nil {
		return sdkmath.Int{}, err
	}
	defer k.exitVault(vaultID)

	cacheCtx, commit := ctx.CacheContext()
	assets, err := k.redeem(cacheCtx, vaultID, caller, shares, receiver, owner)
	if err != nil {
		return sdkmath.Int{}, err
	}
	commit()
	return assets, nil
}

// RedeemWithSlippage runs Redeem and rejects the whole operation if fewer than
// minAssets would be paid out.
func (k *Keeper) RedeemWithSlippage(ctx sdk.Context, vaultID uint64, caller sdk.AccAddress, shares, minAssets sdkmath.Int, receiver, owner sdk.AccAddress) (sdkmath.Int, error) {
	defer telemetry.MeasureSince(telemetry.Now(), types.ModuleName, "redeem_with_slippage")

	if err := k.enterVault(vaultID); err != nil {
		return sdkmath.Int{}, err
	}
	defer k.exitVault(vaultID)

	cacheCtx, commit := ctx.CacheContext()
	assets, err := k.redeem(cacheCtx, vaultID, caller, shares, receiver, owner)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if assets.LT(minAssets) {
		return sdkmath.Int{}, types.ErrSlippageExceeded.Wrapf("paid out %s assets, minimum is %s", assets, minAssets)
	}
	commit()
	return assets, nil
}

func (k *Keeper) withdraw(ctx sdk.Context, vaultID uint64, caller sdk.AccAddress, assets sdkmath.Int, receiver, owner sdk.AccAddress) (sdkmath.Int, error) {
	vault, err := k.requireWithdrawable(ctx, vaultID)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if assets.IsNil() || !assets.IsPositive() {
		return sdkmath.Int{}, types.ErrZeroAmount.Wrap("withdraw assets")
	}
	if vault.TotalAssets.LT(assets) {
		return sdkmath.Int{}, types.ErrInsufficientAssets.Wrapf("vault %d holds %s, withdrawal requires %s", vaultID, vault.TotalAssets, assets)
	}

	shares, err := utils.CalculateSharesFromAssets(assets, vault.TotalAssets, vault.TotalShares, utils.RoundUp)
	if err != nil {
		return sdkmath.Int{}, err
	}

	if err := k.settle(ctx, &vault, caller, shares, assets, receiver, owner); err != nil {
		return sdkmath.Int{}, err
	}

	k.emitEvent(ctx, types.EventTypeWithdraw, types.NewWithdrawAttrs(vaultID, caller.String(), owner.String(), receiver.String(), assets, shares)...)
	k.getLogger(ctx).Debug("withdraw", "vault", vaultID, "owner", owner.String(), "assets", assets.String(), "shares", shares.String())
	return shares, nil
}

func (k *Keeper) redeem(ctx sdk.Context, vaultID uint64, caller sdk.AccAddress, shares sdkmath.Int, receiver, owner sdk.AccAddress) (sdkmath.Int, error) {
	vault, err := k.requireWithdrawable(ctx, vaultID)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if shares.IsNil() || !shares.IsPositive() {
		return sdkmath.Int{}, types.ErrZeroAmount.Wrap("redeem shares")
	}

	assets, err := utils.CalculateAssetsFromShares(shares, vault.TotalShares, vault.TotalAssets, utils.RoundDown)
	if err != nil {
		return sdkmath.Int{}, err
	}
	// A share amount too small to be worth a single asset unit is refused
	// rather than burned for nothing.
	if assets.IsZero() {
		return sdkmath.Int{}, types.ErrZeroAssets.Wrapf("redeeming %s shares", shares)
	}

	if err := k.settle(ctx, &vault, caller, shares, assets, receiver, owner); err != nil {
		return sdkmath.Int{}, err
	}

	k.emitEvent(ctx, types.EventTypeWithdraw, types.NewWithdrawAttrs(vaultID, caller.String(), owner.String(), receiver.String(), assets, shares)...)
	k.getLogger(ctx).Debug("redeem", "vault", vaultID, "owner", owner.String(), "assets", assets.String(), "shares", shares.String())
	return assets, nil
}

// settle performs the shared tail of withdraw and redeem: spend the caller's
// allowance when acting for another owner, burn the shares and debit the
// accounted assets, then push the assets out. State mutation strictly precedes
// the external push.
func (k *Keeper) settle(ctx sdk.Context, vault *types.Vault, caller sdk.AccAddress, shares, assets sdkmath.Int, receiver, owner sdk.AccAddress) error {
	if !caller.Equals(owner) {
		if err := k.spendAllowance(ctx, vault.Id, owner, caller, shares); err != nil {
			return err
		}
	}

	if err := k.burnShares(ctx, vault, owner, shares); err != nil {
		return err
	}
	vault.TotalAssets = vault.TotalAssets.Sub(assets)
	if err := k.setVault(ctx, *vault); err != nil {
		return err
	}

	coins := sdk.NewCoins(sdk.NewCoin(vault.UnderlyingAsset, assets))
	if err := k.BankKeeper.SendCoins(ctx, vault.GetAddress(), receiver, coins); err != nil {
		return types.ErrTransferFailed.Wrapf("pushing %s to %s: %v", coins, receiver, err)
	}
	return nil
}

// requireWithdrawable loads a vault and checks it is open for withdrawals.
func (k Keeper) requireWithdrawable(ctx sdk.Context, vaultID uint64) (types.Vault, error) {
	vault, err := k.requireOpen(ctx, vaultID)
	if err != nil {
		return types.Vault{}, err
	}
	if !vault.WithdrawalsEnabled {
		return types.Vault{}, types.ErrWithdrawalsDisabled.Wrapf("vault %d", vaultID)
	}
	return vault, nil
}
