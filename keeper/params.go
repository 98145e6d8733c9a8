package keeper

import (
	"errors"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/sharevault/types"
)

// GetParams returns the module parameters, falling back to the defaults when
// none have been stored.
func (k Keeper) GetParams(ctx sdk.Context) (types.Params, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DefaultParams(), nil
		}
		return types.Params{}, err
	}
	return params, nil
}

// SetParams updates the module parameters. Only the module authority may call it.
func (k *Keeper) SetParams(ctx sdk.Context, authority sdk.AccAddress, params types.Params) error {
	if !authority.Equals(sdk.AccAddress(k.authority)) {
		return types.ErrUnauthorized.Wrapf("%s is not the module authority", authority)
	}
	if err := params.Validate(); err != nil {
		return types.ErrInvalidRequest.Wrap(err.Error())
	}
	if err := k.Params.Set(ctx, params); err != nil {
		return err
	}
	k.emitEvent(ctx, types.EventTypeParamsUpdated)
	return nil
}
