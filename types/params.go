package types

import (
	fmt "fmt"

	sdkmath "cosmossdk.io/math"
)

// Params holds the module-wide configuration.
type Params struct {
	// MinInitialDeposit is the smallest deposit accepted while a vault has zero
	// outstanding shares. Raising it increases the cost of skewing the 1:1
	// bootstrap rate before other depositors arrive. The default of 1 imposes no
	// restriction beyond rejecting zero deposits.
	MinInitialDeposit sdkmath.Int `json:"min_initial_deposit"`
}

// DefaultParams returns the default module parameters.
func DefaultParams() Params {
	return Params{
		MinInitialDeposit: sdkmath.OneInt(),
	}
}

// Validate performs basic validation of the params.
func (p Params) Validate() error {
	if p.MinInitialDeposit.IsNil() || !p.MinInitialDeposit.IsPositive() {
		return fmt.Errorf("min initial deposit must be a positive integer")
	}
	return nil
}
