package keeper

import (
	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/sharevault/types"
	"github.com/provlabs/sharevault/utils"
)

// Deposit pulls assets of the vault's underlying denom from the caller and
// mints the corresponding shares to the receiver, rounding the minted shares
// down. Returns the shares minted.
//
// The operation body runs against a branched context committed only on success,
// so a failed asset transfer leaves the ledger untouched. The vault's busy flag
// is held for the whole call; the asset pull is an external call that may
// reenter, and a reentrant operation fails with ErrReentrantCall.
func (k *Keeper) Deposit(ctx sdk.Context, vaultID uint64, caller sdk.AccAddress, assets sdkmath.Int, receiver sdk.AccAddress) (sdkmath.Int, error) {
	defer telemetry.MeasureSince(telemetry.Now(), types.ModuleName, "deposit")

	if err := k.enterVault(vaultID); err != nil {
		return sdkmath.Int{}, err
	}
	defer k.exitVault(vaultID)

	cacheCtx, commit := ctx.CacheContext()
	shares, err := k.deposit(cacheCtx, vaultID, caller, assets, receiver)
	if err != nil {
		return sdkmath.Int{}, err
	}
	commit()
	return shares, nil
}

// DepositWithSlippage runs Deposit and rejects the whole operation, including
// the completed asset pull, if fewer than minShares were minted. The exchange
// rate can move between the caller signing and the operation executing; the
// bound caps the caller's exposure to that race.
func (k *Keeper) DepositWithSlippage(ctx sdk.Context, vaultID uint64, caller sdk.AccAddress, assets, minShares sdkmath.Int, receiver sdk.AccAddress) (sdkmath.Int, error) {
	defer telemetry.MeasureSince(telemetry.Now(), types.ModuleName, "deposit_with_slippage")

	if err := k.enterVault(vaultID); err != nil {
		return sdkmath.Int{}, err
	}
	defer k.exitVault(vaultID)

	cacheCtx, commit := ctx.CacheContext()
	shares, err := k.deposit(cacheCtx, vaultID, caller, assets, receiver)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if shares.LT(minShares) {
		return sdkmath.Int{}, types.ErrSlippageExceeded.Wrapf("minted %s shares, minimum is %s", shares, minShares)
	}
	commit()
	return shares, nil
}

// Mint is the deposit operation with the roles of requested and computed
// quantities swapped: the caller fixes the exact shares desired and pays the
// corresponding assets, rounded up. Returns the assets charged.
func (k *Keeper) Mint(ctx sdk.Context, vaultID uint64, caller sdk.AccAddress, shares sdkmath.Int, receiver sdk.AccAddress) (sdkmath.Int, error) {
	defer telemetry.MeasureSince(telemetry.Now(), types.ModuleName, "mint")

	if err := k.enterVault(vaultID); err != nil {
		return sdkmath.Int{}, err
	}
	defer k.exitVault(vaultID)

	cacheCtx, commit := ctx.CacheContext()
	assets, err := k.mint(cacheCtx, vaultID, caller, shares, receiver)
	if err != nil {
		return sdkmath.Int{}, err
	}
	commit()
	return assets, nil
}

// MintWithSlippage runs Mint and rejects the whole operation if more than
// maxAssets would be charged.
func (k *Keeper) MintWithSlippage(ctx sdk.Context, vaultID uint64, caller sdk.AccAddress, shares, maxAssets sdkmath.Int, receiver sdk.AccAddress) (sdkmath.Int, error) {
	defer telemetry.MeasureSince(telemetry.Now(), types.ModuleName, "mint_with_slippage")

	if err := k.enterVault(vaultID); err != nil {
		return sdkmath.Int{}, err
	}
	defer k.exitVault(vaultID)

	cacheCtx, commit := ctx.CacheContext()
	assets, err := k.mint(cacheCtx, vaultID, caller, shares, receiver)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if assets.GT(maxAssets) {
		return sdkmath.Int{}, types.ErrSlippageExceeded.Wrapf("charged %s assets, maximum is %s", assets, maxAssets)
	}
	commit()
	return assets, nil
}

func (k *Keeper) deposit(ctx sdk.Context, vaultID uint64, caller sdk.AccAddress, assets sdkmath.Int, receiver sdk.AccAddress) (sdkmath.Int, error) {
	vault, err := k.requireOpen(ctx, vaultID)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if !vault.DepositsEnabled {
		return sdkmath.Int{}, types.ErrDepositsDisabled.Wrapf("vault %d", vaultID)
	}
	if assets.IsNil() || !assets.IsPositive() {
		return sdkmath.Int{}, types.ErrZeroAmount.Wrap("deposit assets")
	}
	if err := k.checkInitialDeposit(ctx, vault, assets); err != nil {
		return sdkmath.Int{}, err
	}

	shares, err := utils.CalculateSharesFromAssets(assets, vault.TotalAssets, vault.TotalShares, utils.RoundDown)
	if err != nil {
		return sdkmath.Int{}, err
	}
	// A deposit small enough to round to nothing is refused rather than
	// silently donated to the existing holders.
	if shares.IsZero() {
		return sdkmath.Int{}, types.ErrZeroShares.Wrapf("depositing %s %s", assets, vault.UnderlyingAsset)
	}

	if err := k.pullAssets(ctx, vault, caller, assets); err != nil {
		return sdkmath.Int{}, err
	}

	vault.TotalAssets = vault.TotalAssets.Add(assets)
	if err := k.mintShares(ctx, &vault, receiver, shares); err != nil {
		return sdkmath.Int{}, err
	}

	k.emitEvent(ctx, types.EventTypeDeposit, types.NewDepositAttrs(vaultID, caller.String(), receiver.String(), assets, shares)...)
	k.getLogger(ctx).Debug("deposit", "vault", vaultID, "caller", caller.String(), "assets", assets.String(), "shares", shares.String())
	return shares, nil
}

func (k *Keeper) mint(ctx sdk.Context, vaultID uint64, caller sdk.AccAddress, shares sdkmath.Int, receiver sdk.AccAddress) (sdkmath.Int, error) {
	vault, err := k.requireOpen(ctx, vaultID)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if !vault.DepositsEnabled {
		return sdkmath.Int{}, types.ErrDepositsDisabled.Wrapf("vault %d", vaultID)
	}
	if shares.IsNil() || !shares.IsPositive() {
		return sdkmath.Int{}, types.ErrZeroAmount.Wrap("mint shares")
	}

	assets, err := utils.CalculateAssetsFromShares(shares, vault.TotalShares, vault.TotalAssets, utils.RoundUp)
	if err != nil {
		return sdkmath.Int{}, err
	}
	// Shares may never be minted for free.
	if assets.IsZero() {
		return sdkmath.Int{}, types.ErrZeroAssets.Wrapf("minting %s shares", shares)
	}
	if err := k.checkInitialDeposit(ctx, vault, assets); err != nil {
		return sdkmath.Int{}, err
	}

	if err := k.pullAssets(ctx, vault, caller, assets); err != nil {
		return sdkmath.Int{}, err
	}

	vault.TotalAssets = vault.TotalAssets.Add(assets)
	if err := k.mintShares(ctx, &vault, receiver, shares); err != nil {
		return sdkmath.Int{}, err
	}

	k.emitEvent(ctx, types.EventTypeDeposit, types.NewDepositAttrs(vaultID, caller.String(), receiver.String(), assets, shares)...)
	k.getLogger(ctx).Debug("mint", "vault", vaultID, "caller", caller.String(), "assets", assets.String(), "shares", shares.String())
	return assets, nil
}

// checkInitialDeposit enforces the configured minimum on the deposit that
// bootstraps a vault's 1:1 rate. Skewing the rate while supply is zero is the
// cheap step of an inflation attack; the minimum raises its cost.
func (k Keeper) checkInitialDeposit(ctx sdk.Context, vault types.Vault, assets sdkmath.Int) error {
	if !vault.TotalShares.IsZero() {
		return nil
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if assets.LT(params.MinInitialDeposit) {
		return types.ErrBelowMinInitialDeposit.Wrapf("deposit of %s is below the minimum initial deposit %s", assets, params.MinInitialDeposit)
	}
	return nil
}

// pullAssets moves the underlying asset from the caller to the vault address.
func (k Keeper) pullAssets(ctx sdk.Context, vault types.Vault, from sdk.AccAddress, assets sdkmath.Int) error {
	coins := sdk.NewCoins(sdk.NewCoin(vault.UnderlyingAsset, assets))
	if err := k.BankKeeper.SendCoins(ctx, from, vault.GetAddress(), coins); err != nil {
		return types.ErrTransferFailed.Wrapf("pulling %s from %s: %v", coins, from, err)
	}
	return nil
}
