// Package cmd - quote command
package cmd

import (
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"marketplace-pricing/core/catalog"
	"marketplace-pricing/core/output"
	"marketplace-pricing/core/pricing"
	"marketplace-pricing/internal/config"
	"marketplace-pricing/internal/errors"
	"marketplace-pricing/internal/logging"
)

var (
	quoteOffering   string
	quoteCatalogDir string
	quoteFormat     string
	quoteDays       int64
	quoteHours      int64
	quoteShifts     int
	quoteMiles      float64
	quoteFrequency  float64
	quoteWasteType  string
	quoteTons       int64
	quoteDiscount   float64
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price an offering for a requested usage",
	Long: `Price a catalog offering against a requested usage and print the
itemized quote.

Examples:
  marketplace-pricing quote --offering roll-off-30yd --days 10
  marketplace-pricing quote --offering roll-off-30yd --days 10 --shifts 2
  marketplace-pricing quote --offering porta-potty --times-per-week 1
  marketplace-pricing quote --offering roll-off-30yd --days 10 --waste-type concrete --tons 4`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteOffering, "offering", "o", "", "offering ID to price (required)")
	quoteCmd.Flags().StringVar(&quoteCatalogDir, "catalog", "", "catalog directory (defaults to configured directory)")
	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "", "output format (cli, json)")
	quoteCmd.Flags().Int64Var(&quoteDays, "days", 0, "rental duration in days")
	quoteCmd.Flags().Int64Var(&quoteHours, "hours", 0, "additional rental duration in hours")
	quoteCmd.Flags().IntVar(&quoteShifts, "shifts", 1, "crew shifts per day (1, 2, or 3)")
	quoteCmd.Flags().Float64Var(&quoteMiles, "miles", -1, "haul distance in miles")
	quoteCmd.Flags().Float64Var(&quoteFrequency, "times-per-week", -1, "service frequency (0.5, 1, 2, 3, 4, 5)")
	quoteCmd.Flags().StringVar(&quoteWasteType, "waste-type", "", "material waste type")
	quoteCmd.Flags().Int64Var(&quoteTons, "tons", 1, "billed material tonnage")
	quoteCmd.Flags().Float64Var(&quoteDiscount, "discount", -1, "discount fraction (e.g. 0.05)")
	quoteCmd.MarkFlagRequired("offering")

	offeringsCmd.Flags().StringVar(&quoteCatalogDir, "catalog", "", "catalog directory (defaults to configured directory)")
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	dir := quoteCatalogDir
	if dir == "" {
		dir = cfg.Catalog.Directory
	}
	cat, err := catalog.Load(dir)
	if err != nil {
		return err
	}

	offering, err := cat.Offering(quoteOffering)
	if err != nil {
		return err
	}

	usage := pricing.Usage{
		Duration:   time.Duration(quoteDays)*24*time.Hour + time.Duration(quoteHours)*time.Hour,
		ShiftCount: quoteShifts,
		WasteType:  quoteWasteType,
		Tons:       quoteTons,
	}
	if quoteMiles >= 0 {
		usage.Miles = decimal.NewNullDecimal(decimal.NewFromFloat(quoteMiles))
	}
	if quoteFrequency >= 0 {
		usage.TimesPerWeek = decimal.NewNullDecimal(decimal.NewFromFloat(quoteFrequency))
	}
	if quoteDiscount >= 0 {
		usage.Discount = decimal.NewNullDecimal(decimal.NewFromFloat(quoteDiscount))
	}

	var taxer pricing.TaxCalculator
	if cfg.Pricing.DefaultTaxRate.IsPositive() {
		taxer = pricing.FlatTaxCalculator{Rate: cfg.Pricing.DefaultTaxRate}
	}

	engine := pricing.NewEngine(taxer)
	quote, err := engine.Quote(offering, usage)
	if err != nil {
		return err
	}

	logging.Info("quote generated",
		zap.String("offering", offering.ID),
		zap.String("quote", quote.ID))

	format := quoteFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	formatter, err := output.New(format)
	if err != nil {
		return err
	}
	if cli, ok := formatter.(*output.CLIFormatter); ok {
		cli.ShowDetails = cfg.Output.ShowDetails
	}
	return formatter.Render(os.Stdout, quote)
}

// offeringsCmd lists the catalog
var offeringsCmd = &cobra.Command{
	Use:   "offerings",
	Short: "List catalog offerings",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := quoteCatalogDir
		if dir == "" {
			dir = config.Get().Catalog.Directory
		}
		cat, err := catalog.Load(dir)
		if err != nil {
			return err
		}
		if cat.Len() == 0 {
			return errors.NotFound("offerings", dir)
		}
		for _, id := range cat.IDs() {
			cmd.Println(id)
		}
		return nil
	},
}
