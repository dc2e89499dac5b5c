// Package params holds the static parameter catalog for the joint-venture
// financial model: scenarios, monetization variants, equipment types,
// assembly options and revenue splits, plus the derived-value functions
// (equipment pricing chain, fixed-cost roll-up) built on top of them.
package params

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Canonical selector keys.
const (
	ScenarioBaseline    = "baseline"
	ScenarioOptimistic  = "optimistic"
	ScenarioPessimistic = "pessimistic"

	VariantSaleSubscription = "sale_subscription"
	VariantRevenueShare     = "revenue_share"

	EquipmentMini   = "mini"
	EquipmentRack   = "rack_1u2u"
	DefaultSplit    = "80_20"
	SplitEven       = "50_50"
	AssemblyVendor  = "vendor_assembled"
	AssemblyPartner = "partner_assembly"
	AssemblyMixed   = "mixed"
)

// UnknownKeyError reports a selector key that is not present in the catalog.
// It is only surfaced in strict mode; otherwise lookups fall back to the
// documented default.
type UnknownKeyError struct {
	Kind string
	Key  string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown %s key %q", e.Kind, e.Key)
}

// Catalog is the read-only parameter table set. Loaded once at process
// start; resolvers hand out value copies, so callers can edit working
// copies without mutating the canonical tables.
type Catalog struct {
	// Strict makes unknown selector keys an error instead of a silent
	// fallback to the default entry.
	Strict bool `yaml:"strict"`

	ExchangeRate         float64 `yaml:"exchange_rate"`           // RUB per USD
	IntellectualValueRUB float64 `yaml:"intellectual_value_rub"`  // software + license added value
	PartnerMarkupPercent float64 `yaml:"partner_markup_percent"`  // resale markup in the pricing chain
	PartnerOpCostsUSD    float64 `yaml:"partner_op_costs_usd"`    // annual
	LocalSupportUSD      float64 `yaml:"local_support_usd"`       // on-site assembly support surcharge
	VendorCosts          FixedCostItems `yaml:"vendor_costs"`
	HotelSavings         HotelSavings   `yaml:"hotel_savings"`

	Scenarios        map[string]ScenarioParams      `yaml:"scenarios"`
	Variants         map[string]MonetizationVariant `yaml:"variants"`
	EquipmentTypes   map[string]EquipmentType       `yaml:"equipment_types"`
	AssemblyOptions  map[string]AssemblyOption      `yaml:"assembly_options"`
	AssemblyVariants map[string]AssemblyVariant     `yaml:"assembly_variants"`
}

// Default returns the canonical catalog.
func Default() *Catalog {
	return &Catalog{
		ExchangeRate:         78,
		IntellectualValueRUB: 50000,
		PartnerMarkupPercent: 39,
		PartnerOpCostsUSD:    40000,
		LocalSupportUSD:      5000,
		VendorCosts: FixedCostItems{
			PayrollRUB:   3000000,
			OfficeRUB:    500000,
			TravelRUB:    500000,
			LogisticsRUB: 150000,
		},
		HotelSavings: HotelSavings{
			BillingUSD:    1000,
			EfficiencyUSD: 5000,
			DowntimeUSD:   1200,
		},
		Scenarios: map[string]ScenarioParams{
			ScenarioBaseline: {
				Key: ScenarioBaseline, Name: "Baseline",
				HotelsCount: 50, MonthlyFee: 500, SuccessRate: 100,
				CostMultiplier: 1.0,
			},
			ScenarioOptimistic: {
				Key: ScenarioOptimistic, Name: "Optimistic",
				HotelsCount: 75, MonthlyFee: 500, SuccessRate: 95,
				CostMultiplier: 1.0,
			},
			ScenarioPessimistic: {
				Key: ScenarioPessimistic, Name: "Pessimistic",
				HotelsCount: 30, MonthlyFee: 400, SuccessRate: 80,
				CostMultiplier: 1.3,
			},
		},
		Variants: map[string]MonetizationVariant{
			VariantSaleSubscription: {
				Key: VariantSaleSubscription, Name: "Equipment sale + subscription",
				Description:            "One-time equipment sale plus monthly software and service subscriptions",
				Kind:                   KindSaleSubscription,
				VendorSubscriptionFee:  20,
				PartnerSubscriptionFee: 480,
				PartnerMarkupPercent:   30,
			},
			VariantRevenueShare: {
				Key: VariantRevenueShare, Name: "Equipment rental (revenue share)",
				Description: "Equipment stays rented; the monthly fee is split between vendor and partner",
				Kind:        KindRevenueShare,
			},
		},
		EquipmentTypes: map[string]EquipmentType{
			EquipmentMini: {
				Key: EquipmentMini, Name: "GrandMaster Mini",
				Description:            "Oven-controlled quartz oscillator",
				BaseCostRUB:            90000,
				ComplexityFactor:       1.0,
				LocalAssemblyReduction: 0.15,
			},
			EquipmentRack: {
				Key: EquipmentRack, Name: "GrandMaster 1U/2U",
				Description:            "Rubidium/cesium reference",
				BaseCostRUB:            350000,
				ComplexityFactor:       1.5,
				LocalAssemblyReduction: 0.20,
			},
		},
		AssemblyOptions: map[string]AssemblyOption{
			AssemblyVendor: {
				Key: AssemblyVendor, Name: "Vendor-assembled",
				Description:    "Vendor builds and ships finished units",
				CostMultiplier: 1.0, VendorMargin: 0.30,
				DeliveryTime: "2-3 weeks",
			},
			AssemblyPartner: {
				Key: AssemblyPartner, Name: "Partner on-site assembly",
				Description:    "Vendor ships kits, partner assembles locally",
				CostMultiplier: 0.85, VendorMargin: 0.20,
				AssemblyFeeFraction: 0.10, OnSiteAssembly: true,
				DeliveryTime: "1-2 weeks",
			},
			AssemblyMixed: {
				Key: AssemblyMixed, Name: "Mixed",
				Description:    "Part finished units, part on-site assembly",
				CostMultiplier: 0.90, VendorMargin: 0.25,
				DeliveryTime: "1-3 weeks",
			},
		},
		AssemblyVariants: map[string]AssemblyVariant{
			DefaultSplit: {
				Key: DefaultSplit, Name: "Standard (80/20)",
				Description: "Vendor receives 80% of the monthly fee, partner 20%",
				VendorShare: 0.8, PartnerShare: 0.2,
			},
			SplitEven: {
				Key: SplitEven, Name: "Even (50/50)",
				Description: "Monthly fee split equally",
				VendorShare: 0.5, PartnerShare: 0.5,
			},
		},
	}
}

// Load returns the default catalog with overrides applied from a YAML file.
// An empty path returns the defaults unchanged.
func Load(path string) (*Catalog, error) {
	c := Default()
	if path == "" {
		return c, c.validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}
	return c, c.validate()
}

// validate fails fast on broken invariants, before any calculation runs.
func (c *Catalog) validate() error {
	if c.ExchangeRate <= 0 {
		return fmt.Errorf("exchange rate must be positive, got %v", c.ExchangeRate)
	}
	for _, v := range c.AssemblyVariants {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	for key, s := range c.Scenarios {
		if s.HotelsCount <= 0 {
			return fmt.Errorf("scenario %q: hotels_count must be positive", key)
		}
		if s.MonthlyFee <= 0 {
			return fmt.Errorf("scenario %q: monthly_fee must be positive", key)
		}
		if s.SuccessRate <= 0 || s.SuccessRate > 100 {
			return fmt.Errorf("scenario %q: success_rate must be in (0, 100]", key)
		}
	}
	return nil
}

// ResolveScenario resolves a scenario key. Unknown keys fall back to the
// baseline scenario unless the catalog is strict.
func (c *Catalog) ResolveScenario(key string) (ScenarioParams, error) {
	if s, ok := c.Scenarios[key]; ok {
		return normalizeScenario(s), nil
	}
	if c.Strict {
		return ScenarioParams{}, &UnknownKeyError{Kind: "scenario", Key: key}
	}
	return normalizeScenario(c.Scenarios[ScenarioBaseline]), nil
}

// normalizeScenario fills a neutral cost multiplier so downstream math never
// multiplies by zero for a scenario loaded without one.
func normalizeScenario(s ScenarioParams) ScenarioParams {
	if s.CostMultiplier == 0 {
		s.CostMultiplier = 1.0
	}
	return s
}

// ResolveVariant resolves a monetization variant key; unknown keys fall back
// to the revenue-share variant.
func (c *Catalog) ResolveVariant(key string) (MonetizationVariant, error) {
	if v, ok := c.Variants[key]; ok {
		return v, nil
	}
	if c.Strict {
		return MonetizationVariant{}, &UnknownKeyError{Kind: "variant", Key: key}
	}
	return c.Variants[VariantRevenueShare], nil
}

// ResolveEquipmentType resolves an equipment key; unknown keys fall back to
// the mini unit.
func (c *Catalog) ResolveEquipmentType(key string) (EquipmentType, error) {
	if e, ok := c.EquipmentTypes[key]; ok {
		return e, nil
	}
	if c.Strict {
		return EquipmentType{}, &UnknownKeyError{Kind: "equipment type", Key: key}
	}
	return c.EquipmentTypes[EquipmentMini], nil
}

// ResolveAssemblyOption resolves an assembly option key; unknown keys fall
// back to vendor assembly.
func (c *Catalog) ResolveAssemblyOption(key string) (AssemblyOption, error) {
	if a, ok := c.AssemblyOptions[key]; ok {
		return a, nil
	}
	if c.Strict {
		return AssemblyOption{}, &UnknownKeyError{Kind: "assembly option", Key: key}
	}
	return c.AssemblyOptions[AssemblyVendor], nil
}

// ResolveAssemblyVariant resolves a revenue-split key; unknown keys fall
// back to the 80/20 split. The share-partition invariant is re-checked on
// every resolution.
func (c *Catalog) ResolveAssemblyVariant(key string) (AssemblyVariant, error) {
	v, ok := c.AssemblyVariants[key]
	if !ok {
		if c.Strict {
			return AssemblyVariant{}, &UnknownKeyError{Kind: "assembly variant", Key: key}
		}
		v = c.AssemblyVariants[DefaultSplit]
	}
	if err := v.Validate(); err != nil {
		return AssemblyVariant{}, err
	}
	return v, nil
}
