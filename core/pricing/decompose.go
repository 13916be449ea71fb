// Package pricing - Duration decomposition
package pricing

import (
	"github.com/shopspring/decimal"

	"marketplace-pricing/core/types"
	"marketplace-pricing/internal/errors"
)

// PieceCounts holds the interval counts of an optimizer selection.
// Hours is reserved for a future hourly tier and is always zero today.
type PieceCounts struct {
	Months   int64 `json:"months"`
	TwoWeeks int64 `json:"two_weeks"`
	Weeks    int64 `json:"weeks"`
	Days     int64 `json:"days"`
	Hours    int64 `json:"hours"`
}

// countPieces tallies a selection into typed interval counts.
func countPieces(sel selection) PieceCounts {
	var counts PieceCounts
	for _, r := range sel {
		switch r.tier {
		case TierMonth:
			counts.Months++
		case TierTwoWeeks:
			counts.TwoWeeks++
		case TierWeek:
			counts.Weeks++
		case TierDay:
			counts.Days++
		case TierHour:
			counts.Hours++
		}
	}
	return counts
}

// lineItems builds one line item per non-zero interval count, in fixed
// order months, two-weeks, weeks, days. Zero counts are omitted.
func (p *RentalMultiStepPolicy) lineItems(counts PieceCounts) ([]types.LineItem, error) {
	ordered := []struct {
		tier  Tier
		count int64
	}{
		{TierMonth, counts.Months},
		{TierTwoWeeks, counts.TwoWeeks},
		{TierWeek, counts.Weeks},
		{TierDay, counts.Days},
	}

	var items []types.LineItem
	for _, piece := range ordered {
		if piece.count == 0 {
			continue
		}
		rate, err := p.EffectiveRate(piece.tier)
		if err != nil {
			return nil, err
		}
		items = append(items, types.LineItem{
			Quantity:  piece.count,
			UnitPrice: rate,
			Units:     piece.tier.Plural(),
		})
	}
	return items, nil
}

// PriceFor prices a duration directly against one tier without the
// optimizer: any positive duration is billed for at least one full
// interval, and the remainder falls through to the next-smaller tier's
// calculator. Used by fee calculations that quote a single tier.
func (p *RentalMultiStepPolicy) PriceFor(hours int64, tier Tier) (decimal.Decimal, error) {
	if hours < 0 {
		return decimal.Zero, errors.NegativeDuration("duration must not be negative")
	}

	if tier == TierHour {
		if !p.Hour.Valid {
			return decimal.Zero, errors.MissingRate("hour")
		}
		return p.Hour.Decimal.Mul(decimal.NewFromInt(hours)), nil
	}

	rate, err := p.EffectiveRate(tier)
	if err != nil {
		return decimal.Zero, err
	}

	intervals := hours / tier.Hours()
	if intervals < 1 {
		intervals = 1
	}
	remaining := hours - intervals*tier.Hours()
	price := rate.Mul(decimal.NewFromInt(intervals))

	if remaining > 0 {
		var remainder decimal.Decimal
		switch tier {
		case TierMonth, TierWeek:
			remainder, err = p.PriceFor(remaining, TierDay)
		case TierTwoWeeks:
			remainder, err = p.PriceFor(remaining, TierWeek)
		case TierDay:
			// Hourly remainder is only billable when an hourly
			// rate exists.
			if p.Hour.Valid {
				remainder, err = p.PriceFor(remaining, TierHour)
			}
		}
		if err != nil {
			return decimal.Zero, err
		}
		price = price.Add(remainder)
	}

	return price, nil
}
