// Package pricing - Shift surcharge
package pricing

import (
	"marketplace-pricing/core/types"
	"marketplace-pricing/internal/errors"
)

// ApplyShiftSurcharge scales every rental line item's unit price by the
// configured multiplier for the shift count. A shift count of 1 is the
// identity. The input items are never mutated; surcharged copies are
// returned.
func (p *RentalMultiStepShiftPolicy) ApplyShiftSurcharge(shiftCount int, items []types.LineItem) ([]types.LineItem, error) {
	if shiftCount < 1 || shiftCount > 3 {
		return nil, errors.InvalidShiftCount(shiftCount)
	}

	if shiftCount == 1 {
		return items, nil
	}

	multiplier := p.TwoShift
	name := "two_shift"
	if shiftCount == 3 {
		multiplier = p.ThreeShift
		name = "three_shift"
	}
	if !multiplier.Valid {
		return nil, errors.MissingRate(name)
	}

	out := make([]types.LineItem, len(items))
	for i, item := range items {
		item.UnitPrice = item.UnitPrice.Mul(multiplier.Decimal)
		out[i] = item
	}
	return out, nil
}
