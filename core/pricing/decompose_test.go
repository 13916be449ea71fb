package pricing

import (
	"testing"

	"marketplace-pricing/internal/errors"
)

func TestPriceForMinimumOneInterval(t *testing.T) {
	// Any positive duration bills at least one full interval of the
	// resolved tier, never a fraction.
	policy := RentalMultiStepPolicy{Day: nd(100)}

	price, err := policy.PriceFor(1, TierDay)
	if err != nil {
		t.Fatalf("PriceFor: %v", err)
	}
	if !price.Equal(d(100)) {
		t.Errorf("PriceFor(1h, day) = %s, want 100 (one full day)", price)
	}
}

func TestPriceForDayRemainderUsesHourlyRate(t *testing.T) {
	policy := RentalMultiStepPolicy{Day: nd(100), Hour: nd(10)}

	// 26 hours: one day plus two hourly units.
	price, err := policy.PriceFor(26, TierDay)
	if err != nil {
		t.Fatalf("PriceFor: %v", err)
	}
	if !price.Equal(d(120)) {
		t.Errorf("PriceFor(26h, day) = %s, want 120", price)
	}
}

func TestPriceForDayRemainderDroppedWithoutHourlyRate(t *testing.T) {
	policy := RentalMultiStepPolicy{Day: nd(100)}

	price, err := policy.PriceFor(26, TierDay)
	if err != nil {
		t.Fatalf("PriceFor: %v", err)
	}
	if !price.Equal(d(100)) {
		t.Errorf("PriceFor(26h, day) = %s, want 100", price)
	}
}

func TestPriceForWeekRemainderFallsToDays(t *testing.T) {
	policy := RentalMultiStepPolicy{Day: nd(100), Week: nd(600)}

	// 10 days: one week plus a 72h remainder billed as 3 days.
	price, err := policy.PriceFor(240, TierWeek)
	if err != nil {
		t.Fatalf("PriceFor: %v", err)
	}
	if !price.Equal(d(900)) {
		t.Errorf("PriceFor(240h, week) = %s, want 900", price)
	}
}

func TestPriceForMonthRemainderFallsToDays(t *testing.T) {
	policy := RentalMultiStepPolicy{Day: nd(100), Month: nd(2000)}

	// 30 days: one month plus a 48h remainder billed as 2 days.
	price, err := policy.PriceFor(720, TierMonth)
	if err != nil {
		t.Fatalf("PriceFor: %v", err)
	}
	if !price.Equal(d(2200)) {
		t.Errorf("PriceFor(720h, month) = %s, want 2200", price)
	}
}

func TestPriceForNegativeDuration(t *testing.T) {
	policy := RentalMultiStepPolicy{Day: nd(100)}
	if _, err := policy.PriceFor(-1, TierDay); !errors.IsType(err, errors.TypeNegativeDuration) {
		t.Fatalf("expected NEGATIVE_DURATION, got %v", err)
	}
}

func TestCountPiecesOrderIndependent(t *testing.T) {
	sel := selection{
		{tier: TierDay, rate: d(100)},
		{tier: TierMonth, rate: d(2000)},
		{tier: TierDay, rate: d(100)},
		{tier: TierWeek, rate: d(600)},
	}
	counts := countPieces(sel)
	if counts.Months != 1 || counts.Weeks != 1 || counts.Days != 2 || counts.TwoWeeks != 0 || counts.Hours != 0 {
		t.Errorf("countPieces = %+v", counts)
	}
}

func TestLineItemsOmitZeroCounts(t *testing.T) {
	policy := RentalMultiStepPolicy{Day: nd(100), Week: nd(600), Month: nd(2000)}

	items, err := policy.lineItems(PieceCounts{Months: 2, Days: 1})
	if err != nil {
		t.Fatalf("lineItems: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Units != "months" || items[1].Units != "days" {
		t.Errorf("expected months then days, got %s then %s", items[0].Units, items[1].Units)
	}
}
