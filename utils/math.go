package utils

import (
	"fmt"

	"cosmossdk.io/math"
)

// MulDiv computes x * y / z with full intermediate precision, using integer
// division. When roundUp is set and the division leaves a nonzero remainder the
// result is bumped by one. Fully deterministic, safe for on-chain use.
//
// Inputs are expected to be non-negative; a zero divisor is an error rather
// than a panic because it can legitimately arise from accounting state (all
// assets drained while rounding dust shares remain outstanding).
func MulDiv(x, y, z math.Int, roundUp bool) (math.Int, error) {
	if z.IsZero() {
		return math.Int{}, fmt.Errorf("division by zero")
	}

	product := x.Mul(y)
	quotient := product.Quo(z)
	if roundUp && !product.Mod(z).IsZero() {
		quotient = quotient.Add(math.OneInt())
	}
	return quotient, nil
}
