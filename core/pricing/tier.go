// Package pricing implements the deterministic marketplace pricing engine.
// Given a service offering's pricing policies and a requested usage it
// produces an itemized, minimal-cost breakdown. It performs no I/O and
// holds no state across calls.
package pricing

// Tier is a rental billing interval with an independently priced rate.
type Tier int

const (
	TierHour Tier = iota
	TierDay
	TierWeek
	TierTwoWeeks
	TierMonth
)

// Hours returns the interval length in whole hours.
func (t Tier) Hours() int64 {
	switch t {
	case TierHour:
		return 1
	case TierDay:
		return 24
	case TierWeek:
		return 168
	case TierTwoWeeks:
		return 336
	case TierMonth:
		return 672
	default:
		return 0
	}
}

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierHour:
		return "hour"
	case TierDay:
		return "day"
	case TierWeek:
		return "week"
	case TierTwoWeeks:
		return "two weeks"
	case TierMonth:
		return "month"
	default:
		return "unknown"
	}
}

// Plural returns the line-item unit label for the tier.
func (t Tier) Plural() string {
	switch t {
	case TierHour:
		return "hours"
	case TierDay:
		return "days"
	case TierWeek:
		return "weeks"
	case TierTwoWeeks:
		return "two weeks"
	case TierMonth:
		return "months"
	default:
		return "unknown"
	}
}
