package kernel

import (
	"fmt"

	"eats/internal/pkg/errs"
)

// Money represents a monetary amount in minor currency units (cents).
// Totals are computed in integers to avoid float drift; persistence adapters
// convert to and from their column types at the boundary.
type Money int64

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// MulCount scales an amount by an item count.
func (m Money) MulCount(count int) Money {
	return m * Money(count)
}

// Validate rejects negative amounts. Catalog prices and extras are never
// negative, so a negative value always signals a mapping bug.
func (m Money) Validate() error {
	if m < 0 {
		return errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%d is negative", int64(m)))
	}
	return nil
}
