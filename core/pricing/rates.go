// Package pricing - Effective rate resolution
package pricing

import (
	"github.com/shopspring/decimal"

	"marketplace-pricing/internal/errors"
)

var (
	hoursPerDay     = decimal.NewFromInt(24)
	daysPerWeek     = decimal.NewFromInt(7)
	daysPerTwoWeeks = decimal.NewFromInt(14)
	daysPerMonth    = decimal.NewFromInt(28)
)

// EffectiveDayRate returns the authoritative daily rate: the cheaper of
// the day rate and 24x the hourly rate, whichever are set.
func (p *RentalMultiStepPolicy) EffectiveDayRate() (decimal.Decimal, error) {
	switch {
	case p.Day.Valid && p.Hour.Valid:
		return decimal.Min(p.Day.Decimal, p.Hour.Decimal.Mul(hoursPerDay)), nil
	case p.Day.Valid:
		return p.Day.Decimal, nil
	case p.Hour.Valid:
		return p.Hour.Decimal.Mul(hoursPerDay), nil
	default:
		return decimal.Zero, errors.MissingRate("hour or day")
	}
}

// EffectiveWeekRate returns the cheaper of the week rate and seven
// effective days.
func (p *RentalMultiStepPolicy) EffectiveWeekRate() (decimal.Decimal, error) {
	dayRate, dayErr := p.EffectiveDayRate()
	switch {
	case p.Week.Valid && dayErr == nil:
		return decimal.Min(p.Week.Decimal, dayRate.Mul(daysPerWeek)), nil
	case p.Week.Valid:
		return p.Week.Decimal, nil
	case dayErr == nil:
		return dayRate.Mul(daysPerWeek), nil
	default:
		return decimal.Zero, errors.MissingRate("day or week")
	}
}

// EffectiveTwoWeekRate returns the cheaper of the two-week rate and
// fourteen effective days.
func (p *RentalMultiStepPolicy) EffectiveTwoWeekRate() (decimal.Decimal, error) {
	dayRate, dayErr := p.EffectiveDayRate()
	switch {
	case p.TwoWeeks.Valid && dayErr == nil:
		return decimal.Min(p.TwoWeeks.Decimal, dayRate.Mul(daysPerTwoWeeks)), nil
	case p.TwoWeeks.Valid:
		return p.TwoWeeks.Decimal, nil
	case dayErr == nil:
		return dayRate.Mul(daysPerTwoWeeks), nil
	default:
		return decimal.Zero, errors.MissingRate("day or two_weeks")
	}
}

// EffectiveMonthRate returns the cheaper of the month rate and
// twenty-eight effective days.
func (p *RentalMultiStepPolicy) EffectiveMonthRate() (decimal.Decimal, error) {
	dayRate, dayErr := p.EffectiveDayRate()
	switch {
	case p.Month.Valid && dayErr == nil:
		return decimal.Min(p.Month.Decimal, dayRate.Mul(daysPerMonth)), nil
	case p.Month.Valid:
		return p.Month.Decimal, nil
	case dayErr == nil:
		return dayRate.Mul(daysPerMonth), nil
	default:
		return decimal.Zero, errors.MissingRate("day or month")
	}
}

// EffectiveRate resolves the effective rate for any billable tier.
func (p *RentalMultiStepPolicy) EffectiveRate(tier Tier) (decimal.Decimal, error) {
	switch tier {
	case TierHour:
		if !p.Hour.Valid {
			return decimal.Zero, errors.MissingRate("hour")
		}
		return p.Hour.Decimal, nil
	case TierDay:
		return p.EffectiveDayRate()
	case TierWeek:
		return p.EffectiveWeekRate()
	case TierTwoWeeks:
		return p.EffectiveTwoWeekRate()
	case TierMonth:
		return p.EffectiveMonthRate()
	default:
		return decimal.Zero, errors.MissingRate(tier.String())
	}
}
