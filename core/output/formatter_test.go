package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"marketplace-pricing/core/types"
)

func sampleQuote() *types.Quote {
	quote := &types.Quote{
		ID:     "test-quote",
		Groups: map[types.Category]*types.Group{},
		Total:  decimal.NewFromInt(900),
		Tax:    decimal.Zero,
	}
	for _, category := range types.AllCategories() {
		quote.Groups[category] = nil
	}
	quote.Groups[types.CategoryRental] = &types.Group{
		Title:    "Rental",
		Category: types.CategoryRental,
		Items: []types.LineItem{
			{Quantity: 1, UnitPrice: decimal.NewFromInt(600), Units: "weeks"},
			{Quantity: 3, UnitPrice: decimal.NewFromInt(100), Units: "days"},
		},
	}
	return quote
}

func TestCLIFormatterRender(t *testing.T) {
	var buf bytes.Buffer
	f := &CLIFormatter{ShowDetails: true}
	if err := f.Render(&buf, sampleQuote()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Rental", "$600.00", "3 days", "Total", "$900.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestJSONFormatterRender(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{}
	if err := f.Render(&buf, sampleQuote()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	groups, ok := decoded["groups"].(map[string]interface{})
	if !ok {
		t.Fatal("groups key missing")
	}
	// Absent categories serialize as explicit nulls, never missing keys.
	for _, category := range types.AllCategories() {
		if _, ok := groups[string(category)]; !ok {
			t.Errorf("category %s missing from JSON groups", category)
		}
	}
}

func TestNewUnknownFormat(t *testing.T) {
	if _, err := New("yaml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
