package keeper

import (
	"fmt"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/sharevault/types"
)

// InitGenesis initializes the module state from genesis.
func (k *Keeper) InitGenesis(ctx sdk.Context, genState *types.GenesisState) {
	if genState == nil {
		return
	}

	if err := genState.Validate(); err != nil {
		panic(fmt.Errorf("invalid %s genesis state: %w", types.ModuleName, err))
	}

	if err := k.Params.Set(ctx, genState.Params); err != nil {
		panic(err)
	}

	maxID := uint64(0)
	for i := range genState.Vaults {
		v := genState.Vaults[i]
		if err := k.Vaults.Set(ctx, v.Id, v); err != nil {
			panic(fmt.Errorf("failed to store vault %d: %w", v.Id, err))
		}
		if v.Id+1 > maxID {
			maxID = v.Id + 1
		}
	}
	if err := k.VaultSeq.Set(ctx, maxID); err != nil {
		panic(fmt.Errorf("failed to set vault sequence: %w", err))
	}

	for _, b := range genState.Balances {
		holder := sdk.MustAccAddressFromBech32(b.Holder)
		if err := k.ShareBalances.Set(ctx, collections.Join(b.VaultId, holder), b.Shares); err != nil {
			panic(fmt.Errorf("failed to store share balance for %s: %w", b.Holder, err))
		}
	}

	for _, a := range genState.Allowances {
		owner := sdk.MustAccAddressFromBech32(a.Owner)
		spender := sdk.MustAccAddressFromBech32(a.Spender)
		if err := k.Allowances.Set(ctx, collections.Join3(a.VaultId, owner, spender), a.Shares); err != nil {
			panic(fmt.Errorf("failed to store allowance for %s/%s: %w", a.Owner, a.Spender, err))
		}
	}
}

// ExportGenesis exports the current module state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to get %s params: %w", types.ModuleName, err))
	}

	var vaults []types.Vault
	err = k.Vaults.Walk(ctx, nil, func(_ uint64, vault types.Vault) (bool, error) {
		vaults = append(vaults, vault)
		return false, nil
	})
	if err != nil {
		panic(fmt.Errorf("failed to export vaults: %w", err))
	}

	var balances []types.ShareBalance
	err = k.ShareBalances.Walk(ctx, nil, func(key collections.Pair[uint64, sdk.AccAddress], shares sdkmath.Int) (bool, error) {
		balances = append(balances, types.ShareBalance{
			VaultId: key.K1(),
			Holder:  key.K2().String(),
			Shares:  shares,
		})
		return false, nil
	})
	if err != nil {
		panic(fmt.Errorf("failed to export share balances: %w", err))
	}

	var allowances []types.WithdrawAllowance
	err = k.Allowances.Walk(ctx, nil, func(key collections.Triple[uint64, sdk.AccAddress, sdk.AccAddress], shares sdkmath.Int) (bool, error) {
		allowances = append(allowances, types.WithdrawAllowance{
			VaultId: key.K1(),
			Owner:   key.K2().String(),
			Spender: key.K3().String(),
			Shares:  shares,
		})
		return false, nil
	})
	if err != nil {
		panic(fmt.Errorf("failed to export allowances: %w", err))
	}

	return &types.GenesisState{
		Params:     params,
		Vaults:     vaults,
		Balances:   balances,
		Allowances: allowances,
	}
}
