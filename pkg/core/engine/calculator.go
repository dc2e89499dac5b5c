// Package engine implements the joint-venture calculation engine: a
// calculator bound to one (scenario, variant, equipment, assembly, split)
// tuple that derives revenue, cost, profit, ROI and payback figures for the
// three stakeholders (vendor, telecom partner, hotel customer).
package engine

import (
	"fmt"

	"venture_model/pkg/core/params"
)

// Calculator holds the resolved working state for one configuration tuple.
// The fields are plain values: callers may replace any of them wholesale
// between construction and summary calls (what-if edits), or use the With*
// builders for a copied instance. A calculator is not safe for concurrent
// mutation; construct one per request.
type Calculator struct {
	Scenario params.ScenarioParams
	Variant  params.MonetizationVariant
	Pricing  params.EquipmentPricing
	Costs    params.TotalCosts
	Split    params.AssemblyVariant

	// Constants resolved from the catalog alongside the five selectors.
	Savings           params.HotelSavings
	PartnerOpCostsUSD float64
	LocalSupportUSD   float64
	OnSiteAssembly    bool
}

// NewCalculator resolves the five selector keys against the catalog and
// returns a calculator bound to the result. Lookup failures follow the
// catalog's strict/fallback policy.
func NewCalculator(cat *params.Catalog, scenarioKey, variantKey, equipmentKey, assemblyKey, splitKey string) (*Calculator, error) {
	scenario, err := cat.ResolveScenario(scenarioKey)
	if err != nil {
		return nil, err
	}
	variant, err := cat.ResolveVariant(variantKey)
	if err != nil {
		return nil, err
	}
	pricing, err := cat.DerivePricing(equipmentKey, assemblyKey)
	if err != nil {
		return nil, err
	}
	assembly, err := cat.ResolveAssemblyOption(assemblyKey)
	if err != nil {
		return nil, err
	}
	split, err := cat.ResolveAssemblyVariant(splitKey)
	if err != nil {
		return nil, err
	}

	return &Calculator{
		Scenario:          scenario,
		Variant:           variant,
		Pricing:           pricing,
		Costs:             cat.AggregateFixedCosts(),
		Split:             split,
		Savings:           cat.HotelSavings,
		PartnerOpCostsUSD: cat.PartnerOpCostsUSD,
		LocalSupportUSD:   cat.LocalSupportUSD,
		OnSiteAssembly:    assembly.OnSiteAssembly,
	}, nil
}

// ValidationError reports an invalid numeric override, naming the field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Overrides carries the optional what-if edits a caller may apply on top of
// a resolved configuration. Fields are applied in a fixed order: hotel
// count, monthly fee, equipment cost, exchange rate.
type Overrides struct {
	HotelsCount      *int     `json:"hotels_count,omitempty"`
	MonthlyFee       *float64 `json:"monthly_fee,omitempty"`
	EquipmentCostUSD *float64 `json:"equipment_cost,omitempty"`
	ExchangeRate     *float64 `json:"exchange_rate,omitempty"`
}

// Apply validates and applies the overrides, returning a modified copy.
// The receiver is never mutated.
func (c Calculator) Apply(o Overrides) (Calculator, error) {
	if o.HotelsCount != nil {
		if *o.HotelsCount <= 0 {
			return c, &ValidationError{Field: "hotels_count", Reason: "must be positive"}
		}
		c = c.WithHotelsCount(*o.HotelsCount)
	}
	if o.MonthlyFee != nil {
		if *o.MonthlyFee <= 0 {
			return c, &ValidationError{Field: "monthly_fee", Reason: "must be positive"}
		}
		c = c.WithMonthlyFee(*o.MonthlyFee)
	}
	if o.EquipmentCostUSD != nil {
		if *o.EquipmentCostUSD <= 0 {
			return c, &ValidationError{Field: "equipment_cost", Reason: "must be positive"}
		}
		c = c.WithEquipmentCostUSD(*o.EquipmentCostUSD)
	}
	if o.ExchangeRate != nil {
		if *o.ExchangeRate <= 0 {
			return c, &ValidationError{Field: "exchange_rate", Reason: "must be positive"}
		}
		c = c.WithExchangeRate(*o.ExchangeRate)
	}
	return c, nil
}

// WithHotelsCount returns a copy with the scenario hotel count replaced.
func (c Calculator) WithHotelsCount(n int) Calculator {
	c.Scenario.HotelsCount = n
	return c
}

// WithMonthlyFee returns a copy with the scenario monthly fee replaced.
func (c Calculator) WithMonthlyFee(fee float64) Calculator {
	c.Scenario.MonthlyFee = fee
	return c
}

// WithEquipmentCostUSD returns a copy whose base manufacturing cost is
// replaced (given in USD) and whose pricing chain is re-derived from it.
func (c Calculator) WithEquipmentCostUSD(usd float64) Calculator {
	c.Pricing.RebaseCostUSD(usd)
	return c
}

// WithExchangeRate returns a copy with every derived USD figure recomputed
// from its RUB source at the new rate.
func (c Calculator) WithExchangeRate(rate float64) Calculator {
	c.Pricing.Reprice(rate)
	c.Costs.Convert(rate)
	return c
}

// WithScenario returns a copy bound to different scenario parameters.
func (c Calculator) WithScenario(s params.ScenarioParams) Calculator {
	c.Scenario = s
	return c
}

// WithTotalCosts returns a copy with the fixed-cost aggregate replaced.
func (c Calculator) WithTotalCosts(t params.TotalCosts) Calculator {
	c.Costs = t
	return c
}

// WithSplit returns a copy bound to a different revenue split.
func (c Calculator) WithSplit(v params.AssemblyVariant) Calculator {
	c.Split = v
	return c
}
