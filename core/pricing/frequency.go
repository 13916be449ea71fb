// Package pricing - Service frequency pricing
package pricing

import (
	"github.com/shopspring/decimal"

	"marketplace-pricing/core/types"
	"marketplace-pricing/internal/errors"
)

var frequencyHalf = decimal.NewFromFloat(0.5)

// Price looks up the fixed monthly rate for a service frequency. Only
// 0.5 (every other week) and 1 through 5 times per week are supported.
func (p *ServiceFrequencyPolicy) Price(timesPerWeek decimal.Decimal) (types.LineItem, error) {
	var rate decimal.NullDecimal
	var description string

	switch {
	case timesPerWeek.Equal(frequencyHalf):
		rate, description = p.EveryOtherWeek, "Every Other Week"
	case timesPerWeek.Equal(decimal.NewFromInt(1)):
		rate, description = p.OneTimePerWeek, "One Time Per Week"
	case timesPerWeek.Equal(decimal.NewFromInt(2)):
		rate, description = p.TwoTimesPerWeek, "Two Times Per Week"
	case timesPerWeek.Equal(decimal.NewFromInt(3)):
		rate, description = p.ThreeTimesPerWeek, "Three Times Per Week"
	case timesPerWeek.Equal(decimal.NewFromInt(4)):
		rate, description = p.FourTimesPerWeek, "Four Times Per Week"
	case timesPerWeek.Equal(decimal.NewFromInt(5)):
		rate, description = p.FiveTimesPerWeek, "Five Times Per Week"
	default:
		return types.LineItem{}, errors.InvalidFrequency(timesPerWeek.String())
	}

	if !rate.Valid {
		return types.LineItem{}, errors.MissingRate(description)
	}

	return types.LineItem{
		Description: description,
		Quantity:    1,
		UnitPrice:   rate.Decimal,
		Units:       "month",
	}, nil
}
