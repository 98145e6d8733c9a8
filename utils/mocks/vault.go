package mocks

import (
	"testing"

	storetypes "cosmossdk.io/store/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/sharevault/keeper"
	"github.com/provlabs/sharevault/types"
)

// NewVaultKeeper returns a Keeper wired to an in-memory multistore, along with
// the context and the mock bank it transfers through. The bank's store lives in
// the same multistore so context branching covers it.
func NewVaultKeeper(t testing.TB) (sdk.Context, *keeper.Keeper, *Bank) {
	t.Helper()

	key := storetypes.NewKVStoreKey(types.StoreKey)
	bankKey := storetypes.NewKVStoreKey("mockbank")
	tkey := storetypes.NewTransientStoreKey("transient_test")

	ctx := testutil.DefaultContextWithKeys(
		map[string]*storetypes.KVStoreKey{types.StoreKey: key, "mockbank": bankKey},
		map[string]*storetypes.TransientStoreKey{"transient_test": tkey},
		nil,
	)

	bank := NewBank(runtime.NewKVStoreService(bankKey))

	k := keeper.NewKeeper(
		runtime.NewKVStoreService(key),
		runtime.ProvideEventService(),
		addresscodec.NewBech32Codec("cosmos"),
		authtypes.NewModuleAddress(types.GovModuleName),
		bank,
	)

	return ctx, k, bank
}
