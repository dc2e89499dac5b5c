package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venture_model/pkg/core/analysis"
	"venture_model/pkg/core/engine"
	"venture_model/pkg/core/params"
)

const tol = 1e-6

func TestCompareAll_GridOrder(t *testing.T) {
	entries, err := analysis.CompareAll(params.Default())
	require.NoError(t, err)
	require.Len(t, entries, 6)

	// Scenario outer loop, variant inner loop.
	wantScenarios := []string{
		params.ScenarioBaseline, params.ScenarioBaseline,
		params.ScenarioOptimistic, params.ScenarioOptimistic,
		params.ScenarioPessimistic, params.ScenarioPessimistic,
	}
	wantVariants := []string{
		params.VariantSaleSubscription, params.VariantRevenueShare,
		params.VariantSaleSubscription, params.VariantRevenueShare,
		params.VariantSaleSubscription, params.VariantRevenueShare,
	}
	for i, e := range entries {
		assert.Equal(t, wantScenarios[i], e.ScenarioKey)
		assert.Equal(t, wantVariants[i], e.VariantKey)
	}

	// Baseline rental cell carries the canonical figures.
	rental := entries[1]
	assert.InDelta(t, 240000, rental.Summary.Vendor.TotalRevenue, tol)
	assert.InDelta(t, 186794.871795, rental.Summary.Vendor.NetProfit, 1e-4)
	require.NotNil(t, rental.Payback)
	assert.InDelta(t, 3.41797, rental.Payback.Months, 1e-4)
}

func TestCompareAll_PessimisticRentalNeverPaysBack(t *testing.T) {
	entries, err := analysis.CompareAll(params.Default())
	require.NoError(t, err)

	// Pessimistic rental: revenue 92,160 vs costs 69,166.67, still
	// profitable, so payback exists.
	pessimistic := entries[5]
	assert.Equal(t, params.ScenarioPessimistic, pessimistic.ScenarioKey)
	assert.InDelta(t, 92160, pessimistic.Summary.Vendor.TotalRevenue, tol)
	assert.NotNil(t, pessimistic.Payback)
}

func TestSensitivity_HotelsCount(t *testing.T) {
	rows, err := analysis.Sensitivity(params.Default(), analysis.ParamHotelsCount,
		[]float64{30, 50, 75}, params.ScenarioBaseline, params.VariantRevenueShare)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Rows preserve input order; revenue = n x 500 x 0.8 x 12.
	assert.Equal(t, 30.0, rows[0].Value)
	assert.InDelta(t, 144000, rows[0].TotalRevenue, tol)
	assert.InDelta(t, 240000, rows[1].TotalRevenue, tol)
	assert.InDelta(t, 360000, rows[2].TotalRevenue, tol)

	// Profit is revenue minus the fixed $53,205.13.
	assert.InDelta(t, 144000-53205.128205, rows[0].VendorProfit, 1e-4)
}

func TestSensitivity_MonthlyFeeAffectsBothParties(t *testing.T) {
	rows, err := analysis.Sensitivity(params.Default(), analysis.ParamMonthlyFee,
		[]float64{400, 600}, params.ScenarioBaseline, params.VariantRevenueShare)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// 50 x fee x 0.2 x 12 - 40,000 for the partner side.
	assert.InDelta(t, 48000-40000, rows[0].PartnerProfit, tol)
	assert.InDelta(t, 72000-40000, rows[1].PartnerProfit, tol)
}

func TestSensitivity_UnknownParameter(t *testing.T) {
	_, err := analysis.Sensitivity(params.Default(), "weather",
		[]float64{1}, params.ScenarioBaseline, params.VariantRevenueShare)
	var validation *engine.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "parameter", validation.Field)
}

func TestSensitivity_EmptyValues(t *testing.T) {
	rows, err := analysis.Sensitivity(params.Default(), analysis.ParamEquipmentCost,
		nil, params.ScenarioBaseline, params.VariantSaleSubscription)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

// Vendor: $53,205.13/12 = $4,433.76 monthly vs $400/hotel -> 11.08 hotels.
// Partner: $40,000/12 = $3,333.33 monthly vs $100/hotel -> 33.33 hotels.
func TestBreakEven_CanonicalSplit(t *testing.T) {
	cat := params.Default()
	split, err := cat.ResolveAssemblyVariant(params.DefaultSplit)
	require.NoError(t, err)

	be := analysis.BreakEven(cat, split, 500)

	assert.InDelta(t, 4433.760684, be.Vendor.MonthlyCosts, 1e-4)
	assert.InDelta(t, 400, be.Vendor.MonthlyRevenuePerHotel, tol)
	assert.InDelta(t, 11.0844, be.Vendor.BreakevenHotels, 1e-4)

	assert.InDelta(t, 3333.333333, be.Partner.MonthlyCosts, 1e-4)
	assert.InDelta(t, 100, be.Partner.MonthlyRevenuePerHotel, tol)
	assert.InDelta(t, 33.333333, be.Partner.BreakevenHotels, 1e-4)
}

func TestBreakEven_ZeroRevenueGuard(t *testing.T) {
	cat := params.Default()
	split := params.AssemblyVariant{Key: "all_partner", VendorShare: 0, PartnerShare: 1}

	be := analysis.BreakEven(cat, split, 500)
	assert.Equal(t, 0.0, be.Vendor.BreakevenHotels)
	assert.InDelta(t, 6.666667, be.Partner.BreakevenHotels, 1e-4) // 3333.33 / 500
}

func TestWhatIf_CasesAndDeltas(t *testing.T) {
	results, err := analysis.WhatIf(params.Default())
	require.NoError(t, err)
	require.Len(t, results, 4)

	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Name
	}
	assert.Equal(t, []string{
		"Hotels +25%", "Monthly fee -20%", "Fixed costs +30%", "75 hotels at $400",
	}, names)

	// Hotels +25%: 62 x 500 x 0.8 x 12 = 297,600; +57,600 vendor,
	// +14,400 partner against the 50-hotel base.
	assert.InDelta(t, 297600-53205.128205, results[0].VendorProfit, 1e-4)
	assert.InDelta(t, 57600, results[0].VendorProfitDelta, 1e-4)
	assert.InDelta(t, 14400, results[0].PartnerProfitDelta, 1e-4)

	// Monthly fee -20%: vendor revenue drops by 48,000, partner by 12,000.
	assert.InDelta(t, -48000, results[1].VendorProfitDelta, 1e-4)
	assert.InDelta(t, -12000, results[1].PartnerProfitDelta, 1e-4)

	// Fixed costs +30%: 4,150,000 x 1.3 / 78 = 69,166.67; the partner is
	// untouched by vendor overhead.
	assert.InDelta(t, 240000-69166.666667, results[2].VendorProfit, 1e-4)
	assert.InDelta(t, 0, results[2].PartnerProfitDelta, tol)

	// Combined: 75 x 400 x 0.8 x 12 = 288,000 -> +48,000 vendor.
	assert.InDelta(t, 48000, results[3].VendorProfitDelta, 1e-4)
}
