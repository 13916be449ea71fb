package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"marketplace-pricing/internal/errors"
)

func TestOneStepZeroDurationBillsOnePeriod(t *testing.T) {
	policy := RentalOneStepPolicy{Rate: nd(500)}

	item, err := policy.Price(0)
	if err != nil {
		t.Fatalf("Price: %v", err)
	}
	if item.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", item.Quantity)
	}
	if !item.Total().Equal(d(500)) {
		t.Errorf("total = %s, want 500", item.Total())
	}
}

func TestOneStepPeriodsRoundUp(t *testing.T) {
	policy := RentalOneStepPolicy{Rate: nd(500)}
	tests := []struct {
		days    int64
		periods int64
	}{
		{1, 1},
		{28, 1},
		{29, 2},
		{56, 2},
		{57, 3},
	}

	for _, tt := range tests {
		item, err := policy.Price(time.Duration(tt.days) * 24 * time.Hour)
		if err != nil {
			t.Fatalf("Price(%d days): %v", tt.days, err)
		}
		if item.Quantity != tt.periods {
			t.Errorf("Price(%d days) quantity = %d, want %d", tt.days, item.Quantity, tt.periods)
		}
	}
}

func TestOneStepErrors(t *testing.T) {
	missing := RentalOneStepPolicy{}
	if _, err := missing.Price(time.Hour); !errors.IsType(err, errors.TypeMissingRate) {
		t.Errorf("expected MISSING_RATE, got %v", err)
	}

	configured := RentalOneStepPolicy{Rate: nd(500)}
	if _, err := configured.Price(-time.Hour); !errors.IsType(err, errors.TypeNegativeDuration) {
		t.Errorf("expected NEGATIVE_DURATION, got %v", err)
	}
}

func TestTwoStepIncludedAndAdditional(t *testing.T) {
	policy := RentalTwoStepPolicy{
		IncludedDays:          5,
		PricePerDayIncluded:   nd(50),
		PricePerDayAdditional: nd(20),
	}

	items, err := policy.Price(8 * 24 * time.Hour)
	if err != nil {
		t.Fatalf("Price: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Description != "Included" || items[0].Quantity != 5 || !items[0].Total().Equal(d(250)) {
		t.Errorf("included item = %+v", items[0])
	}
	if items[1].Description != "Additional" || items[1].Quantity != 3 || !items[1].Total().Equal(d(60)) {
		t.Errorf("additional item = %+v", items[1])
	}
}

func TestTwoStepIncludedAlwaysBilled(t *testing.T) {
	policy := RentalTwoStepPolicy{
		IncludedDays:        5,
		PricePerDayIncluded: nd(50),
	}

	// Shorter than the included block: only the included line, and the
	// additional rate is never needed.
	items, err := policy.Price(2 * 24 * time.Hour)
	if err != nil {
		t.Fatalf("Price: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Errorf("included quantity = %d, want 5", items[0].Quantity)
	}
}

func TestServicePerMileAndFlatRate(t *testing.T) {
	policy := ServicePolicy{PricePerMile: nd(2.00), FlatRatePrice: nd(50)}

	items, err := policy.Price(decimal.NewFromFloat(10.4))
	if err != nil {
		t.Fatalf("Price: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	// Partial miles round up: 10.4 miles bills 11.
	if items[0].Quantity != 11 || !items[0].Total().Equal(d(22)) {
		t.Errorf("miles item = %+v, total %s", items[0], items[0].Total())
	}
	if items[1].Description != "Flat Rate" || !items[1].Total().Equal(d(50)) {
		t.Errorf("flat rate item = %+v", items[1])
	}
}

func TestServiceSingleRate(t *testing.T) {
	perMileOnly := ServicePolicy{PricePerMile: nd(2.00)}
	items, err := perMileOnly.Price(d(3))
	if err != nil {
		t.Fatalf("Price: %v", err)
	}
	if len(items) != 1 || items[0].Units != "Miles" {
		t.Errorf("per-mile only items = %+v", items)
	}

	flatOnly := ServicePolicy{FlatRatePrice: nd(75)}
	items, err = flatOnly.Price(decimal.Zero)
	if err != nil {
		t.Fatalf("Price: %v", err)
	}
	if len(items) != 1 || !items[0].Total().Equal(d(75)) {
		t.Errorf("flat only items = %+v", items)
	}
}

func TestFrequencyLookup(t *testing.T) {
	policy := ServiceFrequencyPolicy{
		EveryOtherWeek:  nd(90),
		OneTimePerWeek:  nd(120),
		TwoTimesPerWeek: nd(200),
	}

	item, err := policy.Price(d(1))
	if err != nil {
		t.Fatalf("Price: %v", err)
	}
	if !item.Total().Equal(d(120)) {
		t.Errorf("one time per week total = %s, want 120", item.Total())
	}

	item, err = policy.Price(decimal.NewFromFloat(0.5))
	if err != nil {
		t.Fatalf("Price: %v", err)
	}
	if !item.Total().Equal(d(90)) {
		t.Errorf("every other week total = %s, want 90", item.Total())
	}
}

func TestFrequencyInvalid(t *testing.T) {
	policy := ServiceFrequencyPolicy{OneTimePerWeek: nd(120)}
	for _, freq := range []float64{0, 0.25, 6, -1} {
		if _, err := policy.Price(decimal.NewFromFloat(freq)); !errors.IsType(err, errors.TypeInvalidFrequency) {
			t.Errorf("frequency %v: expected INVALID_FREQUENCY, got %v", freq, err)
		}
	}
}

func TestFrequencyUnconfiguredRate(t *testing.T) {
	policy := ServiceFrequencyPolicy{OneTimePerWeek: nd(120)}
	if _, err := policy.Price(d(3)); !errors.IsType(err, errors.TypeMissingRate) {
		t.Fatalf("expected MISSING_RATE, got %v", err)
	}
}

func TestMaterialFirstMatch(t *testing.T) {
	policy := MaterialPolicy{WasteTypes: []MaterialWasteType{
		{WasteType: "concrete", PricePerTon: d(30)},
		{WasteType: "concrete", PricePerTon: d(10)},
		{WasteType: "mixed", PricePerTon: d(45)},
	}}

	item := policy.Price("concrete", 2)
	if item == nil {
		t.Fatal("expected a line item")
	}
	// First match wins, not lowest price.
	if !item.UnitPrice.Equal(d(30)) {
		t.Errorf("unit price = %s, want 30", item.UnitPrice)
	}
	if !item.Total().Equal(d(60)) {
		t.Errorf("total = %s, want 60", item.Total())
	}
}

func TestMaterialUnknownWasteType(t *testing.T) {
	policy := MaterialPolicy{WasteTypes: []MaterialWasteType{
		{WasteType: "concrete", PricePerTon: d(30)},
	}}
	if item := policy.Price("asbestos", 1); item != nil {
		t.Errorf("expected nil for unknown waste type, got %+v", item)
	}
}
