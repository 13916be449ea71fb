// Package pricing - Offering pricing policies
package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// RentalMultiStepPolicy holds up to five independent tier rates. Each rate
// is optional, but at least one must be set for the policy to be usable.
// Read-only during pricing.
type RentalMultiStepPolicy struct {
	Hour     decimal.NullDecimal `json:"hour,omitempty"`
	Day      decimal.NullDecimal `json:"day,omitempty"`
	Week     decimal.NullDecimal `json:"week,omitempty"`
	TwoWeeks decimal.NullDecimal `json:"two_weeks,omitempty"`
	Month    decimal.NullDecimal `json:"month,omitempty"`
}

// Configured reports whether any tier rate is set.
func (p *RentalMultiStepPolicy) Configured() bool {
	return p.Hour.Valid || p.Day.Valid || p.Week.Valid || p.TwoWeeks.Valid || p.Month.Valid
}

// RentalMultiStepShiftPolicy holds the surcharge multipliers applied to
// rental line items when a usage runs two or three crew shifts per day.
type RentalMultiStepShiftPolicy struct {
	TwoShift   decimal.NullDecimal `json:"two_shift,omitempty"`
	ThreeShift decimal.NullDecimal `json:"three_shift,omitempty"`
}

// RentalOneStepPolicy prices rentals at a flat rate per 28-day period.
// A rental extending past a 28-day boundary is charged another full period.
type RentalOneStepPolicy struct {
	Rate decimal.NullDecimal `json:"rate,omitempty"`
}

// RentalTwoStepPolicy prices a fixed included-day block plus a per-day
// overage rate.
type RentalTwoStepPolicy struct {
	IncludedDays          int64               `json:"included_days"`
	PricePerDayIncluded   decimal.NullDecimal `json:"price_per_day_included,omitempty"`
	PricePerDayAdditional decimal.NullDecimal `json:"price_per_day_additional,omitempty"`
}

// ServicePolicy prices a haul per mile and/or as a flat rate. Both may
// apply at once, producing two line items.
type ServicePolicy struct {
	PricePerMile  decimal.NullDecimal `json:"price_per_mile,omitempty"`
	FlatRatePrice decimal.NullDecimal `json:"flat_rate_price,omitempty"`
}

// Configured reports whether any service rate is set.
func (p *ServicePolicy) Configured() bool {
	return p.PricePerMile.Valid || p.FlatRatePrice.Valid
}

// ServiceFrequencyPolicy holds fixed monthly rates keyed by service
// frequency. EveryOtherWeek corresponds to 0.5 times per week.
type ServiceFrequencyPolicy struct {
	EveryOtherWeek    decimal.NullDecimal `json:"every_other_week,omitempty"`
	OneTimePerWeek    decimal.NullDecimal `json:"one_time_per_week,omitempty"`
	TwoTimesPerWeek   decimal.NullDecimal `json:"two_times_per_week,omitempty"`
	ThreeTimesPerWeek decimal.NullDecimal `json:"three_times_per_week,omitempty"`
	FourTimesPerWeek  decimal.NullDecimal `json:"four_times_per_week,omitempty"`
	FiveTimesPerWeek  decimal.NullDecimal `json:"five_times_per_week,omitempty"`
}

// MaterialWasteType is one waste-type price entry of a material policy.
type MaterialWasteType struct {
	WasteType   string          `json:"waste_type"`
	PricePerTon decimal.Decimal `json:"price_per_ton"`
}

// MaterialPolicy prices disposal by waste type. Lookup is first-match in
// entry order, not lowest-price.
type MaterialPolicy struct {
	WasteTypes []MaterialWasteType `json:"waste_types"`
}

// Offering bundles the pricing policies configured for one service
// offering. Every policy is optional; the engine prices whichever are
// present and applicable to the requested usage.
type Offering struct {
	// ID identifies the offering in the catalog
	ID string `json:"id"`

	// Name is the customer-facing offering name
	Name string `json:"name,omitempty"`

	Service          *ServicePolicy          `json:"service,omitempty"`
	ServiceFrequency *ServiceFrequencyPolicy `json:"service_frequency,omitempty"`

	RentalOneStep        *RentalOneStepPolicy        `json:"rental_one_step,omitempty"`
	RentalTwoStep        *RentalTwoStepPolicy        `json:"rental_two_step,omitempty"`
	RentalMultiStep      *RentalMultiStepPolicy      `json:"rental_multi_step,omitempty"`
	RentalMultiStepShift *RentalMultiStepShiftPolicy `json:"rental_multi_step_shift,omitempty"`

	Material *MaterialPolicy `json:"material,omitempty"`
	Delivery *ServicePolicy  `json:"delivery,omitempty"`
	Removal  *ServicePolicy  `json:"removal,omitempty"`

	// FuelEnvironmentalMarkup, when set, adds a fee of markup x subtotal
	FuelEnvironmentalMarkup decimal.NullDecimal `json:"fuel_environmental_markup,omitempty"`

	// TakeRate is the marketplace margin applied to every unit price
	TakeRate decimal.NullDecimal `json:"take_rate,omitempty"`

	// MaxDiscount caps the discount a caller may request
	MaxDiscount decimal.NullDecimal `json:"max_discount,omitempty"`
}

// Usage describes the requested usage being priced. Fields not relevant
// to the offering's policies are ignored.
type Usage struct {
	// Duration is the rental time span
	Duration time.Duration `json:"duration"`

	// ShiftCount is the crew shifts per day (defaults to 1)
	ShiftCount int `json:"shift_count,omitempty"`

	// Miles is the haul distance for per-mile service pricing
	Miles decimal.NullDecimal `json:"miles,omitempty"`

	// TimesPerWeek selects a service frequency rate (0.5, 1, 2, 3, 4, 5)
	TimesPerWeek decimal.NullDecimal `json:"times_per_week,omitempty"`

	// WasteType selects a material price entry
	WasteType string `json:"waste_type,omitempty"`

	// Tons is the billed material tonnage
	Tons int64 `json:"tons,omitempty"`

	// Discount reduces every unit price after the take rate is applied
	Discount decimal.NullDecimal `json:"discount,omitempty"`
}
