// Package types - Pricing output value types
package types

import "github.com/shopspring/decimal"

// Category identifies a pricing group in the quote response
type Category string

const (
	CategoryService              Category = "service"
	CategoryRental               Category = "rental"
	CategoryMaterial             Category = "material"
	CategoryDelivery             Category = "delivery"
	CategoryRemoval              Category = "removal"
	CategoryFuelAndEnvironmental Category = "fuel_and_environmental"
)

// String returns the string representation
func (c Category) String() string {
	return string(c)
}

// AllCategories returns every category in response sort order.
// A quote always carries every key, nil-valued when the offering
// has no pricing for it.
func AllCategories() []Category {
	return []Category{
		CategoryService,
		CategoryRental,
		CategoryMaterial,
		CategoryDelivery,
		CategoryRemoval,
		CategoryFuelAndEnvironmental,
	}
}

// LineItem represents a single billable line in a quote
type LineItem struct {
	// Description is an optional human-readable label
	Description string `json:"description,omitempty"`

	// Quantity is the billed unit count (at least 1)
	Quantity int64 `json:"quantity"`

	// UnitPrice is the price per unit
	UnitPrice decimal.Decimal `json:"unit_price"`

	// Units is an optional unit label (e.g. "days")
	Units string `json:"units,omitempty"`

	// Tax is attached post-hoc by an external tax lookup
	Tax decimal.NullDecimal `json:"tax,omitempty"`
}

// Total returns Quantity x UnitPrice
func (i LineItem) Total() decimal.Decimal {
	return decimal.NewFromInt(i.Quantity).Mul(i.UnitPrice)
}

// Group is an ordered collection of line items under one category
type Group struct {
	// Title is the customer-facing group heading
	Title string `json:"title"`

	// Category tags the group for aggregation
	Category Category `json:"category"`

	// Items are the group's line items, in presentation order
	Items []LineItem `json:"items"`
}

// Total returns the sum of all item totals
func (g *Group) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range g.Items {
		total = total.Add(item.Total())
	}
	return total
}

// TaxTotal returns the sum of all item taxes, treating missing tax as 0
func (g *Group) TaxTotal() decimal.Decimal {
	tax := decimal.Zero
	for _, item := range g.Items {
		if item.Tax.Valid {
			tax = tax.Add(item.Tax.Decimal)
		}
	}
	return tax
}

// Quote is the aggregated pricing response
type Quote struct {
	// ID uniquely identifies this quote
	ID string `json:"id"`

	// Groups maps every category to its group, nil when absent
	Groups map[Category]*Group `json:"groups"`

	// Total is the grand total across all groups
	Total decimal.Decimal `json:"total"`

	// Tax is the grand tax across all groups, 0 when none present
	Tax decimal.Decimal `json:"tax"`
}

// OrderedGroups returns the non-nil groups in category sort order
func (q *Quote) OrderedGroups() []*Group {
	var groups []*Group
	for _, category := range AllCategories() {
		if g := q.Groups[category]; g != nil {
			groups = append(groups, g)
		}
	}
	return groups
}
