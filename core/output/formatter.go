// Package output provides quote rendering.
// This package produces human and machine-readable outputs.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"marketplace-pricing/core/types"
	"marketplace-pricing/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given quote
	Render(w io.Writer, quote *types.Quote) error
}

// New returns the formatter for a format name.
func New(format string) (Formatter, error) {
	switch Format(format) {
	case FormatCLI:
		return &CLIFormatter{ShowDetails: true}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeInput, "unknown output format: %s", format)
	}
}

// CLIFormatter renders a quote as an aligned text table.
type CLIFormatter struct {
	// ShowDetails includes per-line-item rows
	ShowDetails bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the group and item breakdown with totals.
func (f *CLIFormatter) Render(w io.Writer, quote *types.Quote) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for _, group := range quote.OrderedGroups() {
		fmt.Fprintf(tw, "%s\t\t\t%s\n", group.Title, money(group.Total()))
		if f.ShowDetails {
			for _, item := range group.Items {
				label := item.Description
				if label == "" {
					label = string(group.Category)
				}
				units := item.Units
				if units == "" {
					units = "x"
				}
				fmt.Fprintf(tw, "  %s\t%d %s @ %s\t%s\t\n",
					label, item.Quantity, units, money(item.UnitPrice), money(item.Total()))
			}
		}
	}

	fmt.Fprintf(tw, "\n")
	if quote.Tax.IsPositive() {
		fmt.Fprintf(tw, "Tax\t\t\t%s\n", money(quote.Tax))
	}
	fmt.Fprintf(tw, "Total\t\t\t%s\n", money(quote.Total))
	return tw.Flush()
}

// JSONFormatter renders a quote as indented JSON.
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the quote as JSON.
func (f *JSONFormatter) Render(w io.Writer, quote *types.Quote) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(quote)
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
