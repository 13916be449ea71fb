// Package pricing - Rental pricing policies
package pricing

import (
	"time"

	"marketplace-pricing/core/types"
	"marketplace-pricing/internal/errors"
)

const hoursPerDayInt = 24

// Price runs the tier optimizer over the rental duration and returns the
// resulting line items, one per selected interval size.
func (p *RentalMultiStepPolicy) Price(duration time.Duration) ([]types.LineItem, error) {
	if duration < 0 {
		return nil, errors.NegativeDuration("rental duration must not be negative")
	}
	if !p.Configured() {
		return nil, errors.UnresolvableTier("no rental tiers configured")
	}

	hours := int64(duration / time.Hour)
	sel, err := p.optimalSelection(hours)
	if err != nil {
		return nil, err
	}
	return p.lineItems(countPieces(sel))
}

// Price bills one flat-rate line item per started 28-day period. A
// zero-length rental is still billed one period.
func (p *RentalOneStepPolicy) Price(duration time.Duration) (types.LineItem, error) {
	if duration < 0 {
		return types.LineItem{}, errors.NegativeDuration("rental duration must not be negative")
	}
	if !p.Rate.Valid {
		return types.LineItem{}, errors.MissingRate("rental one-step rate")
	}

	days := int64(duration / (hoursPerDayInt * time.Hour))
	periods := (days + 27) / 28
	if periods < 1 {
		periods = 1
	}

	return types.LineItem{
		Description: "Rental",
		Quantity:    periods,
		UnitPrice:   p.Rate.Decimal,
		Units:       "month",
	}, nil
}

// Price always bills the included-day block, plus an overage line item
// when the rental outlasts it.
func (p *RentalTwoStepPolicy) Price(duration time.Duration) ([]types.LineItem, error) {
	if duration < 0 {
		return nil, errors.NegativeDuration("rental duration must not be negative")
	}
	if !p.PricePerDayIncluded.Valid {
		return nil, errors.MissingRate("price_per_day_included")
	}

	items := []types.LineItem{{
		Description: "Included",
		Quantity:    p.IncludedDays,
		UnitPrice:   p.PricePerDayIncluded.Decimal,
		Units:       "Days",
	}}

	days := int64(duration / (hoursPerDayInt * time.Hour))
	if days > p.IncludedDays {
		if !p.PricePerDayAdditional.Valid {
			return nil, errors.MissingRate("price_per_day_additional")
		}
		items = append(items, types.LineItem{
			Description: "Additional",
			Quantity:    days - p.IncludedDays,
			UnitPrice:   p.PricePerDayAdditional.Decimal,
			Units:       "Days",
		})
	}

	return items, nil
}
