package types

import (
	fmt "fmt"

	"cosmossdk.io/collections"
	"github.com/cometbft/cometbft/crypto"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "sharevault"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// GovModuleName duplicates the gov module's name to avoid a dependency with x/gov.
	// It should be synced with the gov module's name if it is ever changed.
	GovModuleName = "gov"
)

var (
	// ParamsKeyPrefix is the prefix for the module Params item.
	ParamsKeyPrefix = collections.NewPrefix(0)
	// ParamsName is a human-readable name for the params collection.
	ParamsName = "params"
	// VaultsKeyPrefix is the prefix to retrieve all Vaults.
	VaultsKeyPrefix = collections.NewPrefix(1)
	// VaultsName is a human-readable name for the vaults collection.
	VaultsName = "vaults"
	// VaultSeqKeyPrefix is the prefix for the vault id sequence.
	VaultSeqKeyPrefix = collections.NewPrefix(2)
	// VaultSeqName is a human-readable name for the vault id sequence.
	VaultSeqName = "vault_seq"
	// ShareBalancesKeyPrefix is the prefix for per-holder share balances.
	ShareBalancesKeyPrefix = collections.NewPrefix(3)
	// ShareBalancesName is a human-readable name for the share balances collection.
	ShareBalancesName = "share_balances"
	// AllowancesKeyPrefix is the prefix for withdrawal allowances.
	AllowancesKeyPrefix = collections.NewPrefix(4)
	// AllowancesName is a human-readable name for the allowances collection.
	AllowancesName = "allowances"
)

// GetVaultAddress returns the module account address for the given vaultID.
func GetVaultAddress(vaultID uint64) sdk.AccAddress {
	return sdk.AccAddress(crypto.AddressHash([]byte(fmt.Sprintf("%s/%d", ModuleName, vaultID))))
}
