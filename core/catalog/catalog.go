// Package catalog loads offering pricing policies from HCL files.
package catalog

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.uber.org/zap"

	"marketplace-pricing/core/pricing"
	"marketplace-pricing/internal/errors"
	"marketplace-pricing/internal/logging"
)

var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "offering", LabelNames: []string{"id"}},
	},
}

var offeringSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "name"},
		{Name: "fuel_environmental_markup"},
		{Name: "take_rate"},
		{Name: "max_discount"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "service"},
		{Type: "service_frequency"},
		{Type: "rental_one_step"},
		{Type: "rental_two_step"},
		{Type: "rental_multi_step"},
		{Type: "shift"},
		{Type: "material"},
		{Type: "delivery"},
		{Type: "removal"},
	},
}

var materialSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "waste_type", LabelNames: []string{"name"}},
	},
}

// Catalog is a read-only collection of priced offerings.
type Catalog struct {
	offerings map[string]*pricing.Offering
}

// Load parses every .hcl file under dir into a catalog.
func Load(dir string) (*Catalog, error) {
	parser := hclparse.NewParser()
	catalog := &Catalog{offerings: make(map[string]*pricing.Offering)}

	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(path, ".hcl") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Parsing("walking catalog directory", err)
	}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, errors.Parsing("parsing "+file, diags)
		}
		if err := catalog.loadFile(hclFile.Body); err != nil {
			return nil, err
		}
	}

	logging.Debug("catalog loaded",
		zap.String("dir", dir),
		zap.Int("offerings", len(catalog.offerings)))
	return catalog, nil
}

// Offering looks up an offering by ID.
func (c *Catalog) Offering(id string) (*pricing.Offering, error) {
	offering, ok := c.offerings[id]
	if !ok {
		return nil, errors.NotFound("offering", id)
	}
	return offering, nil
}

// IDs returns every offering ID, sorted.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.offerings))
	for id := range c.offerings {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of offerings.
func (c *Catalog) Len() int {
	return len(c.offerings)
}

func (c *Catalog) loadFile(body hcl.Body) error {
	content, diags := body.Content(rootSchema)
	if diags.HasErrors() {
		return errors.Parsing("reading catalog file", diags)
	}

	for _, block := range content.Blocks {
		offering, err := decodeOffering(block)
		if err != nil {
			return err
		}
		c.offerings[offering.ID] = offering
	}
	return nil
}

func decodeOffering(block *hcl.Block) (*pricing.Offering, error) {
	content, diags := block.Body.Content(offeringSchema)
	if diags.HasErrors() {
		return nil, errors.Parsing("reading offering "+block.Labels[0], diags)
	}

	offering := &pricing.Offering{ID: block.Labels[0]}

	var err error
	if offering.Name, err = attrString(content.Attributes, "name"); err != nil {
		return nil, err
	}
	if offering.FuelEnvironmentalMarkup, err = attrDecimal(content.Attributes, "fuel_environmental_markup"); err != nil {
		return nil, err
	}
	if offering.TakeRate, err = attrDecimal(content.Attributes, "take_rate"); err != nil {
		return nil, err
	}
	if offering.MaxDiscount, err = attrDecimal(content.Attributes, "max_discount"); err != nil {
		return nil, err
	}

	for _, inner := range content.Blocks {
		if err := decodePolicy(offering, inner); err != nil {
			return nil, err
		}
	}
	return offering, nil
}

func decodePolicy(offering *pricing.Offering, block *hcl.Block) error {
	if block.Type == "material" {
		policy, err := decodeMaterial(block.Body)
		if err != nil {
			return err
		}
		offering.Material = policy
		return nil
	}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return errors.Parsing("reading "+block.Type+" block", diags)
	}

	var err error
	switch block.Type {
	case "service":
		offering.Service, err = decodeService(attrs)
	case "delivery":
		offering.Delivery, err = decodeService(attrs)
	case "removal":
		offering.Removal, err = decodeService(attrs)
	case "service_frequency":
		offering.ServiceFrequency, err = decodeServiceFrequency(attrs)
	case "rental_one_step":
		offering.RentalOneStep, err = decodeRentalOneStep(attrs)
	case "rental_two_step":
		offering.RentalTwoStep, err = decodeRentalTwoStep(attrs)
	case "rental_multi_step":
		offering.RentalMultiStep, err = decodeRentalMultiStep(attrs)
	case "shift":
		offering.RentalMultiStepShift, err = decodeShift(attrs)
	}
	return err
}

func decodeService(attrs hcl.Attributes) (*pricing.ServicePolicy, error) {
	policy := &pricing.ServicePolicy{}
	var err error
	if policy.PricePerMile, err = attrDecimal(attrs, "price_per_mile"); err != nil {
		return nil, err
	}
	if policy.FlatRatePrice, err = attrDecimal(attrs, "flat_rate_price"); err != nil {
		return nil, err
	}
	return policy, nil
}

func decodeServiceFrequency(attrs hcl.Attributes) (*pricing.ServiceFrequencyPolicy, error) {
	policy := &pricing.ServiceFrequencyPolicy{}
	var err error
	if policy.EveryOtherWeek, err = attrDecimal(attrs, "every_other_week"); err != nil {
		return nil, err
	}
	if policy.OneTimePerWeek, err = attrDecimal(attrs, "one_time_per_week"); err != nil {
		return nil, err
	}
	if policy.TwoTimesPerWeek, err = attrDecimal(attrs, "two_times_per_week"); err != nil {
		return nil, err
	}
	if policy.ThreeTimesPerWeek, err = attrDecimal(attrs, "three_times_per_week"); err != nil {
		return nil, err
	}
	if policy.FourTimesPerWeek, err = attrDecimal(attrs, "four_times_per_week"); err != nil {
		return nil, err
	}
	if policy.FiveTimesPerWeek, err = attrDecimal(attrs, "five_times_per_week"); err != nil {
		return nil, err
	}
	return policy, nil
}

func decodeRentalOneStep(attrs hcl.Attributes) (*pricing.RentalOneStepPolicy, error) {
	policy := &pricing.RentalOneStepPolicy{}
	var err error
	if policy.Rate, err = attrDecimal(attrs, "rate"); err != nil {
		return nil, err
	}
	return policy, nil
}

func decodeRentalTwoStep(attrs hcl.Attributes) (*pricing.RentalTwoStepPolicy, error) {
	policy := &pricing.RentalTwoStepPolicy{}
	var err error
	if policy.IncludedDays, err = attrInt(attrs, "included_days"); err != nil {
		return nil, err
	}
	if policy.PricePerDayIncluded, err = attrDecimal(attrs, "price_per_day_included"); err != nil {
		return nil, err
	}
	if policy.PricePerDayAdditional, err = attrDecimal(attrs, "price_per_day_additional"); err != nil {
		return nil, err
	}
	return policy, nil
}

func decodeRentalMultiStep(attrs hcl.Attributes) (*pricing.RentalMultiStepPolicy, error) {
	policy := &pricing.RentalMultiStepPolicy{}
	var err error
	if policy.Hour, err = attrDecimal(attrs, "hour"); err != nil {
		return nil, err
	}
	if policy.Day, err = attrDecimal(attrs, "day"); err != nil {
		return nil, err
	}
	if policy.Week, err = attrDecimal(attrs, "week"); err != nil {
		return nil, err
	}
	if policy.TwoWeeks, err = attrDecimal(attrs, "two_weeks"); err != nil {
		return nil, err
	}
	if policy.Month, err = attrDecimal(attrs, "month"); err != nil {
		return nil, err
	}
	return policy, nil
}

func decodeShift(attrs hcl.Attributes) (*pricing.RentalMultiStepShiftPolicy, error) {
	policy := &pricing.RentalMultiStepShiftPolicy{}
	var err error
	if policy.TwoShift, err = attrDecimal(attrs, "two_shift"); err != nil {
		return nil, err
	}
	if policy.ThreeShift, err = attrDecimal(attrs, "three_shift"); err != nil {
		return nil, err
	}
	return policy, nil
}

func decodeMaterial(body hcl.Body) (*pricing.MaterialPolicy, error) {
	content, diags := body.Content(materialSchema)
	if diags.HasErrors() {
		return nil, errors.Parsing("reading material block", diags)
	}

	policy := &pricing.MaterialPolicy{}
	for _, block := range content.Blocks {
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, errors.Parsing("reading waste_type "+block.Labels[0], diags)
		}
		pricePerTon, err := requireDecimal(attrs, "price_per_ton")
		if err != nil {
			return nil, err
		}
		policy.WasteTypes = append(policy.WasteTypes, pricing.MaterialWasteType{
			WasteType:   block.Labels[0],
			PricePerTon: pricePerTon,
		})
	}
	return policy, nil
}
