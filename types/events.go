package types

import (
	"strconv"

	"cosmossdk.io/core/event"
	sdkmath "cosmossdk.io/math"
)

const (
	EventTypeVaultCreated      = "sharevault.vault_created"
	EventTypeDeposit           = "sharevault.deposit"
	EventTypeWithdraw          = "sharevault.withdraw"
	EventTypeApproveWithdraw   = "sharevault.approve_withdraw"
	EventTypeTogglePaused      = "sharevault.toggle_paused"
	EventTypeToggleDeposits    = "sharevault.toggle_deposits"
	EventTypeToggleWithdrawals = "sharevault.toggle_withdrawals"
	EventTypeParamsUpdated     = "sharevault.params_updated"

	AttributeKeyVaultID         = "vault_id"
	AttributeKeyVaultAddress    = "vault_address"
	AttributeKeyAdmin           = "admin"
	AttributeKeyUnderlyingAsset = "underlying_asset"
	AttributeKeyCaller          = "caller"
	AttributeKeyOwner           = "owner"
	AttributeKeyReceiver        = "receiver"
	AttributeKeySpender         = "spender"
	AttributeKeyAssets          = "assets"
	AttributeKeyShares          = "shares"
	AttributeKeyEnabled         = "enabled"
)

// NewVaultCreatedAttrs builds the attributes for an EventTypeVaultCreated event.
func NewVaultCreatedAttrs(vault Vault) []event.Attribute {
	return []event.Attribute{
		event.Attribute{Key: AttributeKeyVaultID, Value: strconv.FormatUint(vault.Id, 10)},
		event.Attribute{Key: AttributeKeyVaultAddress, Value: vault.Address},
		event.Attribute{Key: AttributeKeyAdmin, Value: vault.Admin},
		event.Attribute{Key: AttributeKeyUnderlyingAsset, Value: vault.UnderlyingAsset},
	}
}

// NewDepositAttrs builds the attributes for an EventTypeDeposit event. It is
// used by both Deposit and Mint since they differ only in which quantity the
// caller fixed.
func NewDepositAttrs(vaultID uint64, caller, receiver string, assets, shares sdkmath.Int) []event.Attribute {
	return []event.Attribute{
		event.Attribute{Key: AttributeKeyVaultID, Value: strconv.FormatUint(vaultID, 10)},
		event.Attribute{Key: AttributeKeyCaller, Value: caller},
		event.Attribute{Key: AttributeKeyReceiver, Value: receiver},
		event.Attribute{Key: AttributeKeyAssets, Value: assets.String()},
		event.Attribute{Key: AttributeKeyShares, Value: shares.String()},
	}
}

// NewWithdrawAttrs builds the attributes for an EventTypeWithdraw event, shared
// by Withdraw and Redeem.
func NewWithdrawAttrs(vaultID uint64, caller, owner, receiver string, assets, shares sdkmath.Int) []event.Attribute {
	return []event.Attribute{
		event.Attribute{Key: AttributeKeyVaultID, Value: strconv.FormatUint(vaultID, 10)},
		event.Attribute{Key: AttributeKeyCaller, Value: caller},
		event.Attribute{Key: AttributeKeyOwner, Value: owner},
		event.Attribute{Key: AttributeKeyReceiver, Value: receiver},
		event.Attribute{Key: AttributeKeyAssets, Value: assets.String()},
		event.Attribute{Key: AttributeKeyShares, Value: shares.String()},
	}
}

// NewApproveWithdrawAttrs builds the attributes for an EventTypeApproveWithdraw event.
func NewApproveWithdrawAttrs(vaultID uint64, owner, spender string, shares sdkmath.Int) []event.Attribute {
	return []event.Attribute{
		event.Attribute{Key: AttributeKeyVaultID, Value: strconv.FormatUint(vaultID, 10)},
		event.Attribute{Key: AttributeKeyOwner, Value: owner},
		event.Attribute{Key: AttributeKeySpender, Value: spender},
		event.Attribute{Key: AttributeKeyShares, Value: shares.String()},
	}
}

// NewToggleAttrs builds the attributes for the pause/deposit/withdrawal toggle events.
func NewToggleAttrs(vaultID uint64, admin string, enabled bool) []event.Attribute {
	return []event.Attribute{
		event.Attribute{Key: AttributeKeyVaultID, Value: strconv.FormatUint(vaultID, 10)},
		event.Attribute{Key: AttributeKeyAdmin, Value: admin},
		event.Attribute{Key: AttributeKeyEnabled, Value: strconv.FormatBool(enabled)},
	}
}
