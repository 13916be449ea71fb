// Package catalog - Safe CTY attribute conversion
// Attribute values are never blindly passed through; nulls and unknowns
// are handled explicitly.
package catalog

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"marketplace-pricing/internal/errors"
)

// attrDecimal decodes an optional decimal attribute. A missing or null
// attribute yields an invalid NullDecimal, never zero.
func attrDecimal(attrs hcl.Attributes, name string) (decimal.NullDecimal, error) {
	attr, ok := attrs[name]
	if !ok {
		return decimal.NullDecimal{}, nil
	}

	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return decimal.NullDecimal{}, errors.Parsing("evaluating attribute "+name, diags)
	}
	if val.IsNull() || !val.IsKnown() {
		return decimal.NullDecimal{}, nil
	}
	if val.Type() != cty.Number {
		return decimal.NullDecimal{}, errors.Newf(errors.TypeParsing,
			"attribute %s must be a number, got %s", name, val.Type().FriendlyName())
	}

	d, err := ctyNumberToDecimal(val)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}

// requireDecimal decodes a mandatory decimal attribute.
func requireDecimal(attrs hcl.Attributes, name string) (decimal.Decimal, error) {
	nd, err := attrDecimal(attrs, name)
	if err != nil {
		return decimal.Zero, err
	}
	if !nd.Valid {
		return decimal.Zero, errors.Newf(errors.TypeParsing, "attribute %s is required", name)
	}
	return nd.Decimal, nil
}

// attrInt decodes an optional integer attribute, defaulting to 0.
func attrInt(attrs hcl.Attributes, name string) (int64, error) {
	nd, err := attrDecimal(attrs, name)
	if err != nil {
		return 0, err
	}
	if !nd.Valid {
		return 0, nil
	}
	return nd.Decimal.IntPart(), nil
}

// attrString decodes an optional string attribute.
func attrString(attrs hcl.Attributes, name string) (string, error) {
	attr, ok := attrs[name]
	if !ok {
		return "", nil
	}
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", errors.Parsing("evaluating attribute "+name, diags)
	}
	if val.IsNull() || !val.IsKnown() || val.Type() != cty.String {
		return "", nil
	}
	return val.AsString(), nil
}

// ctyNumberToDecimal converts through the big.Float text form so no
// binary float rounding leaks into currency math.
func ctyNumberToDecimal(val cty.Value) (decimal.Decimal, error) {
	text := val.AsBigFloat().Text('f', -1)
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, errors.Parsing("converting number "+text, err)
	}
	return d, nil
}
