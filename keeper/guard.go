package keeper

import (
	"github.com/provlabs/sharevault/types"
)

// enterVault acquires the vault's busy flag. Every mutating operation calls it
// on entry and must release via exitVault on all paths. A call that arrives
// while the flag is held is a reentrant call made from inside the external
// asset transfer and is rejected before touching any state.
func (k *Keeper) enterVault(vaultID uint64) error {
	if k.busy[vaultID] {
		return types.ErrReentrantCall.Wrapf("vault %d has an operation in flight", vaultID)
	}
	k.busy[vaultID] = true
	return nil
}

// exitVault releases the vault's busy flag.
func (k *Keeper) exitVault(vaultID uint64) {
	delete(k.busy, vaultID)
}
