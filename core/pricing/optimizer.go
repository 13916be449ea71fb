// Package pricing - Tiered rate optimizer
//
// Selects, among overlapping billing tiers, the multiset whose summed
// duration covers a rental at minimal summed price. The procedure is a
// greedy recursion with a single-candidate lookahead comparison, not a
// provably optimal dynamic program. Downstream invoicing depends on
// bit-for-bit parity with its historical output, so the decision rule
// (including the tie-break that keeps the already-committed selection)
// must not be replaced with a cheaper-in-theory algorithm.
package pricing

import (
	"github.com/shopspring/decimal"

	"marketplace-pricing/internal/errors"
)

// ratedTier couples a billable tier with its resolved effective rate.
type ratedTier struct {
	tier Tier
	rate decimal.Decimal
}

// perHour returns the tier's price per covered hour.
func (r ratedTier) perHour() decimal.Decimal {
	return r.rate.Div(decimal.NewFromInt(r.tier.Hours()))
}

// selection is an accumulated multiset of chosen tiers.
type selection []ratedTier

// price returns the summed price of the selection.
func (s selection) price() decimal.Decimal {
	total := decimal.Zero
	for _, r := range s {
		total = total.Add(r.rate)
	}
	return total
}

// coveredHours returns the summed duration of the selection.
func (s selection) coveredHours() int64 {
	var hours int64
	for _, r := range s {
		hours += r.tier.Hours()
	}
	return hours
}

// availableTiers returns the optimizer's candidate tiers, largest first.
// A tier participates only when its raw rate is set; the day tier also
// participates when only the hourly rate is set. Each candidate carries
// its effective rate.
func (p *RentalMultiStepPolicy) availableTiers() (selection, error) {
	var tiers selection

	add := func(tier Tier) error {
		rate, err := p.EffectiveRate(tier)
		if err != nil {
			return err
		}
		tiers = append(tiers, ratedTier{tier: tier, rate: rate})
		return nil
	}

	if p.Month.Valid {
		if err := add(TierMonth); err != nil {
			return nil, err
		}
	}
	if p.TwoWeeks.Valid {
		if err := add(TierTwoWeeks); err != nil {
			return nil, err
		}
	}
	if p.Week.Valid {
		if err := add(TierWeek); err != nil {
			return nil, err
		}
	}
	if p.Day.Valid || p.Hour.Valid {
		if err := add(TierDay); err != nil {
			return nil, err
		}
	}

	return tiers, nil
}

// optimize recursively selects tiers covering duration at minimal cost.
// acc is the partial selection committed so far; prior is the best
// complete candidate carried from the parent call. Both are threaded by
// value so no call mutates its caller's state.
func optimize(tiers selection, duration int64, acc, prior selection) (selection, error) {
	if len(tiers) == 0 {
		return nil, errors.UnresolvableTier("no rental tiers configured")
	}
	if duration <= 0 {
		return acc, nil
	}

	// Partition into the cheapest tier long enough to cover the whole
	// remaining duration (ctl) and the shorter tiers (st).
	var ctl *ratedTier
	var shorter selection
	for i := range tiers {
		t := tiers[i]
		if t.tier.Hours() >= duration {
			if ctl == nil || t.rate.LessThan(ctl.rate) {
				c := t
				ctl = &c
			}
		} else {
			shorter = append(shorter, t)
		}
	}

	// Among the shorter tiers, find the cheapest per hour (cpd).
	var cpd *ratedTier
	for i := range shorter {
		t := shorter[i]
		if cpd == nil || t.perHour().LessThan(cpd.perHour()) {
			c := t
			cpd = &c
		}
	}

	// Candidate A: the accumulated selection closed out with ctl.
	var best selection
	if ctl != nil {
		best = append(append(selection{}, acc...), *ctl)
	}
	if prior != nil {
		if best == nil || prior.price().LessThan(best.price()) {
			best = prior
		}
	}

	if cpd == nil {
		// Nothing shorter than the remaining duration; best must exist
		// because the tier list is non-empty.
		return best, nil
	}

	numTimes := duration / cpd.tier.Hours()
	remaining := duration - numTimes*cpd.tier.Hours()

	// Accept the current best when it is no more expensive than
	// committing cpd for the whole remaining duration. The <= keeps the
	// closed-out candidate on ties.
	if best != nil {
		cpdPath := cpd.rate.Mul(decimal.NewFromInt(numTimes)).Add(acc.price())
		if best.price().LessThanOrEqual(cpdPath) {
			return best, nil
		}
	}

	next := append(selection{}, acc...)
	for i := int64(0); i < numTimes; i++ {
		next = append(next, *cpd)
	}
	return optimize(tiers, remaining, next, best)
}

// optimalSelection runs the optimizer over the policy's configured tiers
// for a duration in whole hours.
func (p *RentalMultiStepPolicy) optimalSelection(hours int64) (selection, error) {
	tiers, err := p.availableTiers()
	if err != nil {
		return nil, err
	}
	return optimize(tiers, hours, nil, nil)
}
