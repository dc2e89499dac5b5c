package analysis

import (
	"venture_model/pkg/core/engine"
	"venture_model/pkg/core/params"
)

// Sweepable parameter names.
const (
	ParamHotelsCount   = "hotels_count"
	ParamMonthlyFee    = "monthly_fee"
	ParamEquipmentCost = "equipment_cost"
)

// SensitivityRow is one result of a parameter sweep.
type SensitivityRow struct {
	Value         float64 `json:"value"`
	VendorProfit  float64 `json:"vendor_profit"`
	VendorROI     float64 `json:"vendor_roi"`
	PartnerProfit float64 `json:"partner_profit"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// Sensitivity sweeps a single parameter over the given values. For each
// value a fresh engine is built from the base configuration, exactly one
// field is overridden and a full summary recomputed; rows preserve input
// order. An unknown parameter name is a validation error.
func Sensitivity(cat *params.Catalog, parameter string, values []float64, scenarioKey, variantKey string) ([]SensitivityRow, error) {
	switch parameter {
	case ParamHotelsCount, ParamMonthlyFee, ParamEquipmentCost:
	default:
		return nil, &engine.ValidationError{Field: "parameter", Reason: "must be one of hotels_count, monthly_fee, equipment_cost"}
	}

	rows := make([]SensitivityRow, 0, len(values))
	for _, value := range values {
		base, err := engine.NewCalculator(cat, scenarioKey, variantKey,
			params.EquipmentMini, params.AssemblyVendor, params.DefaultSplit)
		if err != nil {
			return nil, err
		}

		var overrides engine.Overrides
		switch parameter {
		case ParamHotelsCount:
			n := int(value)
			overrides.HotelsCount = &n
		case ParamMonthlyFee:
			v := value
			overrides.MonthlyFee = &v
		case ParamEquipmentCost:
			v := value
			overrides.EquipmentCostUSD = &v
		}
		calc, err := base.Apply(overrides)
		if err != nil {
			return nil, err
		}

		summary := calc.Summary()
		rows = append(rows, SensitivityRow{
			Value:         value,
			VendorProfit:  summary.Vendor.NetProfit,
			VendorROI:     summary.Vendor.ROI,
			PartnerProfit: summary.Partner.NetProfit,
			TotalRevenue:  summary.Vendor.TotalRevenue,
		})
	}
	return rows, nil
}

// BreakEvenSide holds one party's break-even figures.
type BreakEvenSide struct {
	MonthlyCosts           float64 `json:"monthly_costs"`
	MonthlyRevenuePerHotel float64 `json:"monthly_revenue_per_hotel"`
	BreakevenHotels        float64 `json:"breakeven_hotels"`
}

// BreakEvenResult pairs the vendor and partner break-even points.
type BreakEvenResult struct {
	Vendor  BreakEvenSide `json:"vendor"`
	Partner BreakEvenSide `json:"partner"`
}

// BreakEven computes the hotel count at which each party's share of the
// monthly fee covers its fixed monthly costs. The split and fee are
// parameters rather than hardcoded constants so callers can run it against
// the live revenue-share selection.
func BreakEven(cat *params.Catalog, split params.AssemblyVariant, monthlyFee float64) BreakEvenResult {
	vendorMonthly := cat.AggregateFixedCosts().TotalUSD / 12
	vendorPerHotel := monthlyFee * split.VendorShare

	partnerMonthly := cat.PartnerOpCostsUSD / 12
	partnerPerHotel := monthlyFee * split.PartnerShare

	return BreakEvenResult{
		Vendor: BreakEvenSide{
			MonthlyCosts:           vendorMonthly,
			MonthlyRevenuePerHotel: vendorPerHotel,
			BreakevenHotels:        safeDiv(vendorMonthly, vendorPerHotel),
		},
		Partner: BreakEvenSide{
			MonthlyCosts:           partnerMonthly,
			MonthlyRevenuePerHotel: partnerPerHotel,
			BreakevenHotels:        safeDiv(partnerMonthly, partnerPerHotel),
		},
	}
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// WhatIfResult is one named perturbation of the baseline rental
// configuration, reported with absolute figures and deltas against the
// unperturbed base.
type WhatIfResult struct {
	Name               string  `json:"name"`
	VendorProfit       float64 `json:"vendor_profit"`
	VendorROI          float64 `json:"vendor_roi"`
	PartnerProfit      float64 `json:"partner_profit"`
	VendorProfitDelta  float64 `json:"vendor_profit_delta"`
	VendorROIDelta     float64 `json:"vendor_roi_delta"`
	PartnerProfitDelta float64 `json:"partner_profit_delta"`
}

// WhatIf runs the fixed set of illustrative perturbations against the
// baseline revenue-share configuration: more hotels, a cheaper fee, higher
// fixed costs, and a combined case.
func WhatIf(cat *params.Catalog) ([]WhatIfResult, error) {
	base, err := engine.NewCalculator(cat, params.ScenarioBaseline, params.VariantRevenueShare,
		params.EquipmentMini, params.AssemblyVendor, params.DefaultSplit)
	if err != nil {
		return nil, err
	}
	baseSummary := base.Summary()

	inflatedCosts := base.Costs
	inflatedCosts.PayrollRUB *= 1.3
	inflatedCosts.OfficeRUB *= 1.3
	inflatedCosts.TravelRUB *= 1.3
	inflatedCosts.LogisticsRUB *= 1.3
	inflatedCosts.Convert(inflatedCosts.ExchangeRate)

	cases := []struct {
		name string
		calc engine.Calculator
	}{
		{"Hotels +25%", base.WithHotelsCount(62)},
		{"Monthly fee -20%", base.WithMonthlyFee(400)},
		{"Fixed costs +30%", base.WithTotalCosts(inflatedCosts)},
		{"75 hotels at $400", base.WithHotelsCount(75).WithMonthlyFee(400)},
	}

	results := make([]WhatIfResult, 0, len(cases))
	for _, tc := range cases {
		summary := tc.calc.Summary()
		results = append(results, WhatIfResult{
			Name:               tc.name,
			VendorProfit:       summary.Vendor.NetProfit,
			VendorROI:          summary.Vendor.ROI,
			PartnerProfit:      summary.Partner.NetProfit,
			VendorProfitDelta:  summary.Vendor.NetProfit - baseSummary.Vendor.NetProfit,
			VendorROIDelta:     summary.Vendor.ROI - baseSummary.Vendor.ROI,
			PartnerProfitDelta: summary.Partner.NetProfit - baseSummary.Partner.NetProfit,
		})
	}
	return results, nil
}
