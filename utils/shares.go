package utils

import (
	"fmt"

	"cosmossdk.io/math"
)

// Rounding directions for the share conversion helpers. Every operation picks
// the direction that favors the vault: shares minted for a deposit round down,
// shares burned for a withdrawal round up, assets charged for a mint round up,
// assets paid for a redemption round down. Over any sequence of operations the
// value backing the remaining holders can therefore only grow or stay flat
// relative to the exact rate.
const (
	RoundDown = false
	RoundUp   = true
)

// CalculateSharesFromAssets returns the number of shares that correspond to a
// given amount of the underlying asset at the vault's current rate.
//
// Formula (integer):
//
//	if totalShares == 0:
//	    shares = assets                      (1:1 bootstrap)
//	else:
//	    shares = assets * totalShares / totalAssets
//
// with an extra share added when roundUp is set and the division has a nonzero
// remainder. The very first deposit establishes the rate at exactly one share
// per asset unit.
//
// Error if any input is negative, or if totalAssets is zero while shares are
// outstanding (the rate is undefined; the vault needs repair before conversions
// can resume).
func CalculateSharesFromAssets(assets, totalAssets, totalShares math.Int, roundUp bool) (math.Int, error) {
	if assets.IsNegative() || totalAssets.IsNegative() || totalShares.IsNegative() {
		return math.Int{}, fmt.Errorf("invalid input: negative values not allowed")
	}
	if assets.IsZero() {
		return math.ZeroInt(), nil
	}
	if totalShares.IsZero() {
		return assets, nil
	}
	if totalAssets.IsZero() {
		return math.Int{}, fmt.Errorf("vault has outstanding shares but no accounted assets")
	}

	return MulDiv(assets, totalShares, totalAssets, roundUp)
}

// CalculateAssetsFromShares returns the amount of the underlying asset that
// corresponds to a given number of shares at the vault's current rate.
//
// Formula (integer):
//
//	if totalShares == 0:
//	    assets = shares
//	else:
//	    assets = shares * totalAssets / totalShares
//
// with the same rounding rule as CalculateSharesFromAssets. Error if any input
// is negative.
func CalculateAssetsFromShares(shares, totalShares, totalAssets math.Int, roundUp bool) (math.Int, error) {
	if shares.IsNegative() || totalShares.IsNegative() || totalAssets.IsNegative() {
		return math.Int{}, fmt.Errorf("invalid input: negative values not allowed")
	}
	if shares.IsZero() {
		return math.ZeroInt(), nil
	}
	if totalShares.IsZero() {
		return shares, nil
	}

	return MulDiv(shares, totalAssets, totalShares, roundUp)
}
