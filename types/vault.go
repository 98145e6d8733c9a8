package types

import (
	fmt "fmt"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Vault is the per-vault ledger record. TotalShares and TotalAssets are the only
// source of truth for the exchange rate: TotalAssets is the vault's internal
// belief about how much of the underlying it holds, moved exclusively by the
// deposit/mint/withdraw/redeem operations and never read back from the bank.
type Vault struct {
	// Id is the vault's unique identifier, allocated at creation.
	Id uint64 `json:"id"`
	// Address is the bech32 module address holding the vault's underlying assets.
	Address string `json:"address"`
	// Admin may pause the vault and toggle deposits/withdrawals.
	Admin string `json:"admin"`
	// UnderlyingAsset is the bank denom the vault accepts and pays out.
	UnderlyingAsset string `json:"underlying_asset"`
	// Paused blocks every operation when set.
	Paused bool `json:"paused"`
	// DepositsEnabled gates Deposit and Mint.
	DepositsEnabled bool `json:"deposits_enabled"`
	// WithdrawalsEnabled gates Withdraw and Redeem.
	WithdrawalsEnabled bool `json:"withdrawals_enabled"`
	// TotalShares is the sum of all outstanding share balances.
	TotalShares sdkmath.Int `json:"total_shares"`
	// TotalAssets is the vault's accounted holding of the underlying asset.
	TotalAssets sdkmath.Int `json:"total_assets"`
}

// NewVault creates a new vault record with zero totals and its address derived
// from the id.
func NewVault(id uint64, admin, underlyingAsset string) Vault {
	return Vault{
		Id:                 id,
		Address:            GetVaultAddress(id).String(),
		Admin:              admin,
		UnderlyingAsset:    underlyingAsset,
		DepositsEnabled:    true,
		WithdrawalsEnabled: true,
		TotalShares:        sdkmath.ZeroInt(),
		TotalAssets:        sdkmath.ZeroInt(),
	}
}

// GetAddress returns the vault's account address.
func (v Vault) GetAddress() sdk.AccAddress {
	return GetVaultAddress(v.Id)
}

// Validate performs basic validation on the vault fields.
func (v Vault) Validate() error {
	if _, err := sdk.AccAddressFromBech32(v.Admin); err != nil {
		return fmt.Errorf("invalid admin address: %w", err)
	}
	if v.Address != GetVaultAddress(v.Id).String() {
		return fmt.Errorf("vault address %q does not match address derived from id %d", v.Address, v.Id)
	}
	if err := sdk.ValidateDenom(v.UnderlyingAsset); err != nil {
		return fmt.Errorf("invalid underlying asset: %w", err)
	}
	if v.TotalShares.IsNil() || v.TotalShares.IsNegative() {
		return fmt.Errorf("total shares must be a non-negative integer")
	}
	if v.TotalAssets.IsNil() || v.TotalAssets.IsNegative() {
		return fmt.Errorf("total assets must be a non-negative integer")
	}
	return nil
}

// ValidateAcceptedCoin checks that a coin matches the vault's underlying asset.
func (v Vault) ValidateAcceptedCoin(coin sdk.Coin) error {
	if coin.Denom != v.UnderlyingAsset {
		return fmt.Errorf("denom %q does not match vault underlying asset %q", coin.Denom, v.UnderlyingAsset)
	}
	return nil
}
