package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venture_model/pkg/core/engine"
	"venture_model/pkg/core/params"
)

const tol = 1e-6

func newRentalBaseline(t *testing.T) *engine.Calculator {
	t.Helper()
	calc, err := engine.NewCalculator(params.Default(),
		params.ScenarioBaseline, params.VariantRevenueShare,
		params.EquipmentMini, params.AssemblyVendor, params.DefaultSplit)
	require.NoError(t, err)
	return calc
}

func newSaleBaseline(t *testing.T) *engine.Calculator {
	t.Helper()
	calc, err := engine.NewCalculator(params.Default(),
		params.ScenarioBaseline, params.VariantSaleSubscription,
		params.EquipmentMini, params.AssemblyVendor, params.DefaultSplit)
	require.NoError(t, err)
	return calc
}

// Rental, baseline, 80/20: 50 hotels x $500 x 12 = $300,000 annual pool.
// Vendor 80% = $240,000, partner 20% = $60,000. No equipment sale.
func TestVendorRevenue_RentalSplitsPool(t *testing.T) {
	calc := newRentalBaseline(t)

	vendor := calc.VendorRevenue()
	assert.InDelta(t, 0, vendor.EquipmentRevenue, tol)
	assert.InDelta(t, 240000, vendor.SubscriptionRevenue, tol)
	assert.InDelta(t, 240000, vendor.TotalRevenue, tol)
	assert.InDelta(t, 50, vendor.EffectiveHotels, tol)

	partner := calc.PartnerRevenue()
	assert.InDelta(t, 60000, partner.SubscriptionRevenue, tol)

	// The two shares partition the pool exactly.
	assert.InDelta(t, 300000, vendor.SubscriptionRevenue+partner.SubscriptionRevenue, tol)
}

// Sale variant, baseline: equipment = 50 x $2333.33 = $116,666.67, software
// subscription = 50 x $20 x 12 = $12,000.
func TestVendorRevenue_SaleVariant(t *testing.T) {
	calc := newSaleBaseline(t)

	vendor := calc.VendorRevenue()
	assert.InDelta(t, 50*182000.0/78, vendor.EquipmentRevenue, tol)
	assert.InDelta(t, 12000, vendor.SubscriptionRevenue, tol)
	assert.InDelta(t, vendor.EquipmentRevenue+12000, vendor.TotalRevenue, tol)
}

// Sale variant partner economics: per-unit resale profit at the variant's
// 30% markup = $2333.33 x 0.30 = $700; x 50 units = $35,000. Service
// subscription = 50 x $480 x 12 = $288,000. Net = $323,000 - $40,000.
func TestPartnerRevenue_SaleVariant(t *testing.T) {
	calc := newSaleBaseline(t)

	partner := calc.PartnerRevenue()
	assert.InDelta(t, 35000, partner.EquipmentProfit, 1e-4)
	assert.InDelta(t, 288000, partner.SubscriptionRevenue, tol)
	assert.InDelta(t, 0, partner.AssemblyFeeRevenue, tol) // vendor-assembled
	assert.InDelta(t, 40000, partner.OperationalCosts, tol)
	assert.InDelta(t, 283000, partner.NetProfit, 1e-4)
}

// Partner on-site assembly adds the local support surcharge to operating
// costs and earns the assembly fee per effective hotel.
func TestPartnerRevenue_OnSiteAssembly(t *testing.T) {
	calc, err := engine.NewCalculator(params.Default(),
		params.ScenarioBaseline, params.VariantSaleSubscription,
		params.EquipmentMini, params.AssemblyPartner, params.DefaultSplit)
	require.NoError(t, err)

	partner := calc.PartnerRevenue()
	assert.InDelta(t, 45000, partner.OperationalCosts, tol) // 40000 + 5000
	// fee = 126500 RUB x 0.10 / 78 x 50 hotels.
	assert.InDelta(t, 50*12650.0/78, partner.AssemblyFeeRevenue, tol)
}

// Fixed costs $53,205.13; rental revenue $240,000; profit $186,794.87.
// Under rental the vendor carries no per-unit manufacturing cost.
func TestVendorProfitability_Rental(t *testing.T) {
	calc := newRentalBaseline(t)

	prof := calc.VendorProfitability()
	assert.InDelta(t, 53205.128205, prof.TotalCosts, 1e-4)
	assert.InDelta(t, 186794.871795, prof.NetProfit, 1e-4)
	assert.InDelta(t, prof.NetProfit/240000*100, prof.MarginPercent, tol)
	assert.InDelta(t, prof.NetProfit/prof.TotalCosts*100, prof.ROIPercent, tol)
}

// Under the sale variant the vendor also buys the units it sells: adjusted
// cost $1153.85 x 50 raw hotels = $57,692.31 on top of fixed costs.
func TestVendorProfitability_SaleCarriesAcquisition(t *testing.T) {
	calc := newSaleBaseline(t)

	prof := calc.VendorProfitability()
	expectedCosts := 4150000.0/78 + 90000.0/78*50
	assert.InDelta(t, expectedCosts, prof.TotalCosts, 1e-4)
}

// The pessimistic cost multiplier (1.3) inflates vendor and partner cost
// lines but never revenue.
func TestCostMultiplier_AppliesToCostsOnly(t *testing.T) {
	calc, err := engine.NewCalculator(params.Default(),
		params.ScenarioPessimistic, params.VariantRevenueShare,
		params.EquipmentMini, params.AssemblyVendor, params.DefaultSplit)
	require.NoError(t, err)

	vendor := calc.VendorRevenue()
	// effective = 30 x 80% = 24; revenue = 24 x 400 x 0.8 x 12 = 92160.
	assert.InDelta(t, 24, vendor.EffectiveHotels, tol)
	assert.InDelta(t, 92160, vendor.TotalRevenue, tol)

	prof := calc.VendorProfitability()
	assert.InDelta(t, 4150000.0/78*1.3, prof.TotalCosts, 1e-4)

	partner := calc.PartnerRevenue()
	assert.InDelta(t, 52000, partner.OperationalCosts, tol) // 40000 x 1.3
	assert.InDelta(t, 23040-52000, partner.NetProfit, tol)
}

// The three savings categories are fixed constants; the scenario changes the
// customer's annual cost (through its fee) but never the benefit side.
func TestHotelBenefits_SavingsFixedAcrossScenarios(t *testing.T) {
	for _, scenario := range []string{
		params.ScenarioBaseline, params.ScenarioOptimistic, params.ScenarioPessimistic,
	} {
		calc, err := engine.NewCalculator(params.Default(),
			scenario, params.VariantRevenueShare,
			params.EquipmentMini, params.AssemblyVendor, params.DefaultSplit)
		require.NoError(t, err)

		hotels := calc.HotelBenefits()
		assert.InDelta(t, 1000, hotels.BillingSavings, tol, scenario)
		assert.InDelta(t, 5000, hotels.EfficiencySavings, tol, scenario)
		assert.InDelta(t, 1200, hotels.DowntimeSavings, tol, scenario)
		assert.InDelta(t, 7200, hotels.TotalBenefit, tol, scenario)
	}

	// Optimistic: same $500 fee as baseline, so the same 20% return.
	optimistic, err := engine.NewCalculator(params.Default(),
		params.ScenarioOptimistic, params.VariantRevenueShare,
		params.EquipmentMini, params.AssemblyVendor, params.DefaultSplit)
	require.NoError(t, err)
	assert.InDelta(t, 6000, optimistic.HotelBenefits().AnnualCost, tol)
	assert.InDelta(t, 20, optimistic.HotelBenefits().ROIPercent, tol)
}

// Baseline: benefit $7,200 vs cost $6,000 -> ROI 20%. At a $700 fee the
// cost ($8,400) exceeds the benefit and ROI clamps to zero.
func TestHotelBenefits_ROIFloor(t *testing.T) {
	calc := newRentalBaseline(t)

	assert.InDelta(t, 20, calc.HotelBenefits().ROIPercent, tol)

	expensive := calc.WithMonthlyFee(700)
	hotels := expensive.HotelBenefits()
	assert.InDelta(t, 8400, hotels.AnnualCost, tol)
	assert.Equal(t, 0.0, hotels.ROIPercent)
}

// Rental baseline: monthly profit $186,794.87/12 = $15,566.24; payback =
// $53,205.13 / $15,566.24 = 3.418 months.
func TestPaybackPeriod(t *testing.T) {
	calc := newRentalBaseline(t)

	pb := calc.PaybackPeriod()
	require.NotNil(t, pb)
	assert.InDelta(t, 3.41797, pb.Months, 1e-4)
	assert.InDelta(t, pb.Months/12, pb.Years, tol)
	assert.InDelta(t, 15566.239316, pb.MonthlyProfit, 1e-4)
}

// A configuration that never turns a profit has no payback, represented as
// nil rather than an error or an infinite number.
func TestPaybackPeriod_NilWhenUnprofitable(t *testing.T) {
	calc := newRentalBaseline(t)

	starved := calc.WithHotelsCount(1) // 1 x 500 x 0.8 x 12 = 4800 < costs
	assert.Nil(t, starved.PaybackPeriod())
}

func TestSummary_ComposesBlocks(t *testing.T) {
	calc := newRentalBaseline(t)

	s := calc.Summary()
	assert.Equal(t, "Baseline", s.Scenario)
	assert.Equal(t, params.EquipmentMini, s.EquipmentType)
	assert.Equal(t, params.DefaultSplit, s.AssemblyVariant)
	assert.Equal(t, 50, s.HotelsCount)
	assert.InDelta(t, 50, s.EffectiveHotels, tol)
	assert.InDelta(t, 240000, s.Vendor.TotalRevenue, tol)
	assert.InDelta(t, 20000, s.Partner.NetProfit, tol)
	assert.InDelta(t, 20, s.Hotels.ROI, tol)

	// Pure function of the working state: calling twice changes nothing.
	assert.Equal(t, s, calc.Summary())
}
