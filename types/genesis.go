package types

import (
	fmt "fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ShareBalance is a single holder's share position in a vault.
type ShareBalance struct {
	VaultId uint64      `json:"vault_id"`
	Holder  string      `json:"holder"`
	Shares  sdkmath.Int `json:"shares"`
}

// WithdrawAllowance lets a spender burn up to Shares of the owner's shares via
// Withdraw or Redeem.
type WithdrawAllowance struct {
	VaultId uint64      `json:"vault_id"`
	Owner   string      `json:"owner"`
	Spender string      `json:"spender"`
	Shares  sdkmath.Int `json:"shares"`
}

// GenesisState is the module's genesis state.
type GenesisState struct {
	Params     Params              `json:"params"`
	Vaults     []Vault             `json:"vaults"`
	Balances   []ShareBalance      `json:"balances"`
	Allowances []WithdrawAllowance `json:"allowances"`
}

// DefaultGenesisState returns the default genesis state.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure. In particular it enforces the ledger invariant: for every vault, the
// sum of holder balances must equal the vault's TotalShares.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	vaults := make(map[uint64]Vault, len(gs.Vaults))
	for i, v := range gs.Vaults {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("invalid vault at index %d: %w", i, err)
		}
		if _, exists := vaults[v.Id]; exists {
			return fmt.Errorf("duplicate vault id %d", v.Id)
		}
		vaults[v.Id] = v
	}

	sums := make(map[uint64]sdkmath.Int, len(vaults))
	seenBalances := make(map[string]bool, len(gs.Balances))
	for i, b := range gs.Balances {
		if _, exists := vaults[b.VaultId]; !exists {
			return fmt.Errorf("balance at index %d references unknown vault %d", i, b.VaultId)
		}
		if _, err := sdk.AccAddressFromBech32(b.Holder); err != nil {
			return fmt.Errorf("invalid holder address at index %d: %w", i, err)
		}
		if b.Shares.IsNil() || !b.Shares.IsPositive() {
			return fmt.Errorf("balance at index %d must be a positive integer", i)
		}
		key := fmt.Sprintf("%d/%s", b.VaultId, b.Holder)
		if seenBalances[key] {
			return fmt.Errorf("duplicate balance for holder %s in vault %d", b.Holder, b.VaultId)
		}
		seenBalances[key] = true

		sum, ok := sums[b.VaultId]
		if !ok {
			sum = sdkmath.ZeroInt()
		}
		sums[b.VaultId] = sum.Add(b.Shares)
	}

	for id, v := range vaults {
		sum, ok := sums[id]
		if !ok {
			sum = sdkmath.ZeroInt()
		}
		if !sum.Equal(v.TotalShares) {
			return fmt.Errorf("vault %d share balances sum to %s but total shares is %s", id, sum, v.TotalShares)
		}
	}

	seenAllowances := make(map[string]bool, len(gs.Allowances))
	for i, a := range gs.Allowances {
		if _, exists := vaults[a.VaultId]; !exists {
			return fmt.Errorf("allowance at index %d references unknown vault %d", i, a.VaultId)
		}
		if _, err := sdk.AccAddressFromBech32(a.Owner); err != nil {
			return fmt.Errorf("invalid allowance owner at index %d: %w", i, err)
		}
		if _, err := sdk.AccAddressFromBech32(a.Spender); err != nil {
			return fmt.Errorf("invalid allowance spender at index %d: %w", i, err)
		}
		if a.Owner == a.Spender {
			return fmt.Errorf("allowance at index %d has matching owner and spender", i)
		}
		if a.Shares.IsNil() || !a.Shares.IsPositive() {
			return fmt.Errorf("allowance at index %d must be a positive integer", i)
		}
		key := fmt.Sprintf("%d/%s/%s", a.VaultId, a.Owner, a.Spender)
		if seenAllowances[key] {
			return fmt.Errorf("duplicate allowance for owner %s spender %s in vault %d", a.Owner, a.Spender, a.VaultId)
		}
		seenAllowances[key] = true
	}

	return nil
}
