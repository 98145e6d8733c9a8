package keeper

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/sharevault/utils"
)

// The preview functions return exactly the quantity the corresponding mutating
// operation would produce against the current state, without mutating anything.
// They apply the operation's rounding direction but none of its admission
// checks, so a previewed zero can correspond to an operation that would be
// refused.

// PreviewDeposit returns the shares Deposit would mint for the given assets.
func (k Keeper) PreviewDeposit(ctx sdk.Context, vaultID uint64, assets sdkmath.Int) (sdkmath.Int, error) {
	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return utils.CalculateSharesFromAssets(assets, vault.TotalAssets, vault.TotalShares, utils.RoundDown)
}

// PreviewMint returns the assets Mint would charge for the given shares.
func (k Keeper) PreviewMint(ctx sdk.Context, vaultID uint64, shares sdkmath.Int) (sdkmath.Int, error) {
	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return utils.CalculateAssetsFromShares(shares, vault.TotalShares, vault.TotalAssets, utils.RoundUp)
}

// PreviewWithdraw returns the shares Withdraw would burn for the given assets.
func (k Keeper) PreviewWithdraw(ctx sdk.Context, vaultID uint64, assets sdkmath.Int) (sdkmath.Int, error) {
	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return utils.CalculateSharesFromAssets(assets, vault.TotalAssets, vault.TotalShares, utils.RoundUp)
}

// PreviewRedeem returns the assets Redeem would pay out for the given shares.
func (k Keeper) PreviewRedeem(ctx sdk.Context, vaultID uint64, shares sdkmath.Int) (sdkmath.Int, error) {
	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return utils.CalculateAssetsFromShares(shares, vault.TotalShares, vault.TotalAssets, utils.RoundDown)
}

// ConvertToShares returns the shares corresponding to the given assets at the
// current rate, rounded down.
func (k Keeper) ConvertToShares(ctx sdk.Context, vaultID uint64, assets sdkmath.Int) (sdkmath.Int, error) {
	return k.PreviewDeposit(ctx, vaultID, assets)
}

// ConvertToAssets returns the assets corresponding to the given shares at the
// current rate, rounded down.
func (k Keeper) ConvertToAssets(ctx sdk.Context, vaultID uint64, shares sdkmath.Int) (sdkmath.Int, error) {
	return k.PreviewRedeem(ctx, vaultID, shares)
}

// TotalAssets returns the vault's accounted holding of the underlying asset.
// This is the internal counter the exchange rate is derived from, not the
// vault's live bank balance: value sent straight to the vault address does not
// appear here.
func (k Keeper) TotalAssets(ctx sdk.Context, vaultID uint64) (sdkmath.Int, error) {
	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return vault.TotalAssets, nil
}

// TotalShares returns the vault's outstanding share supply.
func (k Keeper) TotalShares(ctx sdk.Context, vaultID uint64) (sdkmath.Int, error) {
	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return vault.TotalShares, nil
}
