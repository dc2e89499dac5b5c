// Package analysis runs the calculation engine across parameter grids:
// scenario comparison, single-parameter sensitivity sweeps, break-even and
// what-if reports. All functions are batch callers of the engine with no
// shared mutable state between iterations.
package analysis

import (
	"venture_model/pkg/core/engine"
	"venture_model/pkg/core/params"
)

// comparisonScenarios and comparisonVariants fix the grid order: scenario
// outer loop, variant inner loop.
var comparisonScenarios = []string{
	params.ScenarioBaseline,
	params.ScenarioOptimistic,
	params.ScenarioPessimistic,
}

var comparisonVariants = []string{
	params.VariantSaleSubscription,
	params.VariantRevenueShare,
}

// ComparisonEntry is one cell of the scenario x variant grid.
type ComparisonEntry struct {
	ScenarioKey string                  `json:"scenario_key"`
	VariantKey  string                  `json:"variant_key"`
	Summary     engine.FinancialSummary `json:"summary"`
	Payback     *engine.Payback         `json:"payback"`
}

// CompareAll computes one summary per (scenario, variant) combination of the
// three canonical scenarios and two canonical variants, in fixed order.
func CompareAll(cat *params.Catalog) ([]ComparisonEntry, error) {
	results := make([]ComparisonEntry, 0, len(comparisonScenarios)*len(comparisonVariants))
	for _, scenario := range comparisonScenarios {
		for _, variant := range comparisonVariants {
			calc, err := engine.NewCalculator(cat, scenario, variant,
				params.EquipmentMini, params.AssemblyVendor, params.DefaultSplit)
			if err != nil {
				return nil, err
			}
			results = append(results, ComparisonEntry{
				ScenarioKey: scenario,
				VariantKey:  variant,
				Summary:     calc.Summary(),
				Payback:     calc.PaybackPeriod(),
			})
		}
	}
	return results, nil
}
