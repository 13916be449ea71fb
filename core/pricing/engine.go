// Package pricing - Quote orchestration
package pricing

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"marketplace-pricing/core/types"
	"marketplace-pricing/internal/errors"
	"marketplace-pricing/internal/logging"
)

// TaxCalculator supplies the tax for a finished line item. Implemented
// by an external tax-table lookup; the engine never computes tax itself.
type TaxCalculator interface {
	TaxFor(item types.LineItem, category types.Category) decimal.NullDecimal
}

// Engine prices an offering against a requested usage. It is a pure
// computation and is safe for concurrent use.
type Engine struct {
	taxer TaxCalculator
}

// NewEngine creates an engine. taxer may be nil when no tax lookup is
// wired in.
func NewEngine(taxer TaxCalculator) *Engine {
	return &Engine{taxer: taxer}
}

// Quote prices every applicable policy of the offering, applies the
// marketplace take rate and any requested discount, and aggregates the
// result into a categorized quote.
func (e *Engine) Quote(offering *Offering, usage Usage) (*types.Quote, error) {
	if offering == nil {
		return nil, errors.Input("offering is required")
	}

	if usage.Discount.Valid && offering.MaxDiscount.Valid &&
		usage.Discount.Decimal.GreaterThan(offering.MaxDiscount.Decimal) {
		return nil, errors.Newf(errors.TypeInput,
			"discount cannot be greater than %s for this offering",
			offering.MaxDiscount.Decimal.String())
	}

	var groups []*types.Group

	service, err := e.serviceGroup(offering, usage)
	if err != nil {
		return nil, err
	}
	if service != nil {
		groups = append(groups, service)
	}

	rental, err := e.rentalGroup(offering, usage)
	if err != nil {
		return nil, err
	}
	if rental != nil {
		groups = append(groups, rental)
	}

	if offering.Material != nil && usage.WasteType != "" {
		if item := offering.Material.Price(usage.WasteType, usage.Tons); item != nil {
			groups = append(groups, &types.Group{
				Title:    "Material",
				Category: types.CategoryMaterial,
				Items:    []types.LineItem{*item},
			})
		}
	}

	for _, haul := range []struct {
		policy   *ServicePolicy
		title    string
		category types.Category
	}{
		{offering.Delivery, "Delivery", types.CategoryDelivery},
		{offering.Removal, "Removal", types.CategoryRemoval},
	} {
		if haul.policy == nil || !haul.policy.Configured() {
			continue
		}
		items, err := haul.policy.Price(milesOrZero(usage))
		if err != nil {
			return nil, err
		}
		if len(items) > 0 {
			groups = append(groups, &types.Group{
				Title:    haul.title,
				Category: haul.category,
				Items:    items,
			})
		}
	}

	// Fuel and environmental fees ride on the subtotal of everything
	// priced so far.
	if offering.FuelEnvironmentalMarkup.Valid && offering.FuelEnvironmentalMarkup.Decimal.IsPositive() {
		subtotal := decimal.Zero
		for _, g := range groups {
			subtotal = subtotal.Add(g.Total())
		}
		groups = append(groups, &types.Group{
			Title:    "Fuel and Environmental",
			Category: types.CategoryFuelAndEnvironmental,
			Items: []types.LineItem{{
				Quantity:  1,
				UnitPrice: offering.FuelEnvironmentalMarkup.Decimal.Mul(subtotal),
			}},
		})
	}

	applyMargins(groups, offering.TakeRate, usage.Discount)

	quote := Aggregate(groups, e.taxer)
	logging.Debug("quote computed",
		zap.String("offering", offering.ID),
		zap.String("quote", quote.ID),
		zap.String("total", quote.Total.String()))
	return quote, nil
}

// serviceGroup prices the per-haul service policy and the recurring
// frequency policy into one service group.
func (e *Engine) serviceGroup(offering *Offering, usage Usage) (*types.Group, error) {
	var items []types.LineItem

	if offering.Service != nil && offering.Service.Configured() && usage.Miles.Valid {
		serviceItems, err := offering.Service.Price(usage.Miles.Decimal)
		if err != nil {
			return nil, err
		}
		items = append(items, serviceItems...)
	}

	if offering.ServiceFrequency != nil && usage.TimesPerWeek.Valid {
		item, err := offering.ServiceFrequency.Price(usage.TimesPerWeek.Decimal)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, nil
	}
	return &types.Group{
		Title:    "Service",
		Category: types.CategoryService,
		Items:    items,
	}, nil
}

// rentalGroup dispatches to whichever rental policy the offering
// carries. One-step wins over two-step, which wins over multi-step.
func (e *Engine) rentalGroup(offering *Offering, usage Usage) (*types.Group, error) {
	var items []types.LineItem

	switch {
	case offering.RentalOneStep != nil:
		item, err := offering.RentalOneStep.Price(usage.Duration)
		if err != nil {
			return nil, err
		}
		items = []types.LineItem{item}

	case offering.RentalTwoStep != nil:
		twoStep, err := offering.RentalTwoStep.Price(usage.Duration)
		if err != nil {
			return nil, err
		}
		items = twoStep

	case offering.RentalMultiStep != nil:
		multiStep, err := offering.RentalMultiStep.Price(usage.Duration)
		if err != nil {
			return nil, err
		}
		items = multiStep

		if offering.RentalMultiStepShift != nil {
			items, err = offering.RentalMultiStepShift.ApplyShiftSurcharge(shiftOrDefault(usage), items)
			if err != nil {
				return nil, err
			}
		}

	default:
		return nil, nil
	}

	if len(items) == 0 {
		return nil, nil
	}
	return &types.Group{
		Title:    "Rental",
		Category: types.CategoryRental,
		Items:    items,
	}, nil
}

// applyMargins adjusts every unit price for the marketplace take rate
// and the customer discount.
func applyMargins(groups []*types.Group, takeRate, discount decimal.NullDecimal) {
	one := decimal.NewFromInt(1)
	factor := one
	if takeRate.Valid {
		factor = one.Add(takeRate.Decimal)
	}
	if discount.Valid {
		factor = factor.Mul(one.Sub(discount.Decimal))
	}
	if factor.Equal(one) {
		return
	}

	for _, g := range groups {
		for i := range g.Items {
			g.Items[i].UnitPrice = g.Items[i].UnitPrice.Mul(factor)
		}
	}
}

func milesOrZero(usage Usage) decimal.Decimal {
	if usage.Miles.Valid {
		return usage.Miles.Decimal
	}
	return decimal.Zero
}

func shiftOrDefault(usage Usage) int {
	if usage.ShiftCount == 0 {
		return 1
	}
	return usage.ShiftCount
}
