package keeper

import (
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/event"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/sharevault/types"
)

type Keeper struct {
	schema       collections.Schema
	eventService event.Service
	addressCodec address.Codec
	authority    []byte

	BankKeeper types.BankKeeper

	Params        collections.Item[types.Params]
	Vaults        collections.Map[uint64, types.Vault]
	VaultSeq      collections.Sequence
	ShareBalances collections.Map[collections.Pair[uint64, sdk.AccAddress], sdkmath.Int]
	Allowances    collections.Map[collections.Triple[uint64, sdk.AccAddress, sdk.AccAddress], sdkmath.Int]

	// busy marks vaults with an operation in flight. The external asset transfer
	// inside an operation can run arbitrary code that calls back into this
	// keeper; a set flag makes the reentrant call fail instead of observing
	// half-applied state. Keyed per vault so independent vaults never share a
	// lock. The execution model is single-threaded, so no mutex is needed.
	busy map[uint64]bool
}

func NewKeeper(
	storeService store.KVStoreService,
	eventService event.Service,
	addressCodec address.Codec,
	authority []byte,
	bankKeeper types.BankKeeper,
) *Keeper {
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %s: %s", authority, err))
	}

	builder := collections.NewSchemaBuilder(storeService)

	keeper := &Keeper{
		eventService: eventService,
		addressCodec: addressCodec,
		authority:    authority,
		BankKeeper:   bankKeeper,
		Params:       collections.NewItem(builder, types.ParamsKeyPrefix, types.ParamsName, types.NewJSONValueCodec[types.Params]("Params")),
		Vaults:       collections.NewMap(builder, types.VaultsKeyPrefix, types.VaultsName, collections.Uint64Key, types.NewJSONValueCodec[types.Vault]("Vault")),
		VaultSeq:     collections.NewSequence(builder, types.VaultSeqKeyPrefix, types.VaultSeqName),
		ShareBalances: collections.NewMap(builder, types.ShareBalancesKeyPrefix, types.ShareBalancesName,
			collections.PairKeyCodec(collections.Uint64Key, sdk.AccAddressKey), sdk.IntValue),
		Allowances: collections.NewMap(builder, types.AllowancesKeyPrefix, types.AllowancesName,
			collections.TripleKeyCodec(collections.Uint64Key, sdk.AccAddressKey, sdk.AccAddressKey), sdk.IntValue),
		busy: make(map[uint64]bool),
	}

	schema, err := builder.Build()
	if err != nil {
		panic(err)
	}

	keeper.schema = schema
	return keeper
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() []byte {
	return k.authority
}

// getLogger returns a logger with vault module context.
func (k Keeper) getLogger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// emitEvent emits a module event, logging instead of failing the operation if
// the event service rejects it.
func (k Keeper) emitEvent(ctx sdk.Context, eventType string, attrs ...event.Attribute) {
	if err := k.eventService.EventManager(ctx).EmitKV(ctx, eventType, attrs...); err != nil {
		k.getLogger(ctx).Error("failed to emit event", "type", eventType, "error", err)
	}
}
