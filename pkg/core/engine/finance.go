package engine

import "venture_model/pkg/core/params"

const monthsPerYear = 12

// VendorRevenue is the vendor-side revenue breakdown.
type VendorRevenue struct {
	EquipmentRevenue    float64 `json:"equipment_revenue"`
	SubscriptionRevenue float64 `json:"subscription_revenue"`
	TotalRevenue        float64 `json:"total_revenue"`
	EffectiveHotels     float64 `json:"effective_hotels"`
}

// PartnerRevenue is the partner-side revenue and profit breakdown.
type PartnerRevenue struct {
	EquipmentProfit     float64 `json:"equipment_profit"`
	SubscriptionRevenue float64 `json:"subscription_revenue"`
	AssemblyFeeRevenue  float64 `json:"assembly_fee_revenue"`
	TotalRevenue        float64 `json:"total_revenue"`
	OperationalCosts    float64 `json:"operational_costs"`
	NetProfit           float64 `json:"net_profit"`
	EffectiveHotels     float64 `json:"effective_hotels"`
}

// HotelBenefits is the customer-side cost/benefit breakdown.
type HotelBenefits struct {
	AnnualCost        float64 `json:"annual_cost"`
	BillingSavings    float64 `json:"billing_savings"`
	EfficiencySavings float64 `json:"efficiency_savings"`
	DowntimeSavings   float64 `json:"downtime_savings"`
	TotalBenefit      float64 `json:"total_benefit"`
	ROIPercent        float64 `json:"roi_percent"`
	EffectiveHotels   float64 `json:"effective_hotels"`
}

// VendorProfitability aggregates vendor revenue against total costs.
type VendorProfitability struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalCosts    float64 `json:"total_costs"`
	NetProfit     float64 `json:"net_profit"`
	MarginPercent float64 `json:"profit_margin_percent"`
	ROIPercent    float64 `json:"roi_percent"`
}

// Payback describes when cumulative vendor profit covers total costs. A nil
// *Payback means payback is never achieved (non-positive monthly profit);
// that case is a valid result, not an error.
type Payback struct {
	Months        float64 `json:"payback_months"`
	Years         float64 `json:"payback_years"`
	MonthlyProfit float64 `json:"monthly_profit"`
}

// VendorRevenue derives the vendor's annual revenue under the bound
// monetization variant.
func (c *Calculator) VendorRevenue() VendorRevenue {
	effective := c.Scenario.EffectiveHotels()

	var equipment, subscription float64
	if c.Variant.Kind == params.KindSaleSubscription {
		// One-time equipment sale to the partner plus a software
		// subscription per hotel.
		equipment = effective * c.Pricing.SellingPriceUSD
		subscription = effective * c.Variant.VendorSubscriptionFee * monthsPerYear
	} else {
		// Rental: no equipment sale, the vendor takes its share of the
		// monthly fee.
		subscription = effective * c.Scenario.MonthlyFee * c.Split.VendorShare * monthsPerYear
	}

	return VendorRevenue{
		EquipmentRevenue:    equipment,
		SubscriptionRevenue: subscription,
		TotalRevenue:        equipment + subscription,
		EffectiveHotels:     effective,
	}
}

// PartnerRevenue derives the partner's annual revenue, operating costs and
// net profit.
func (c *Calculator) PartnerRevenue() PartnerRevenue {
	effective := c.Scenario.EffectiveHotels()

	var equipmentProfit, subscription, assemblyFee float64
	if c.Variant.Kind == params.KindSaleSubscription {
		// Resale margin on each unit, using the variant's configured markup.
		markup := c.Variant.PartnerMarkupPercent / 100
		resale := c.Pricing.SellingPriceUSD * (1 + markup)
		equipmentProfit = effective * (resale - c.Pricing.SellingPriceUSD)
		subscription = effective * c.Variant.PartnerSubscriptionFee * monthsPerYear
		assemblyFee = effective * c.Pricing.AssemblyFeeUSD
	} else {
		subscription = effective * c.Scenario.MonthlyFee * c.Split.PartnerShare * monthsPerYear
	}

	operational := c.PartnerOpCostsUSD
	if c.OnSiteAssembly {
		operational += c.LocalSupportUSD
	}
	operational *= c.Scenario.CostMultiplier

	total := equipmentProfit + subscription + assemblyFee

	return PartnerRevenue{
		EquipmentProfit:     equipmentProfit,
		SubscriptionRevenue: subscription,
		AssemblyFeeRevenue:  assemblyFee,
		TotalRevenue:        total,
		OperationalCosts:    operational,
		NetProfit:           total - operational,
		EffectiveHotels:     effective,
	}
}

// HotelBenefits derives the customer's annual cost against the three fixed
// savings categories. ROI is floored at 0 when the benefit does not exceed
// the cost; the floor is intentional policy, a deployment that does not pay
// for itself reports zero return rather than a negative one.
func (c *Calculator) HotelBenefits() HotelBenefits {
	annualCost := c.Scenario.MonthlyFee * monthsPerYear

	billing := c.Savings.BillingUSD
	efficiency := c.Savings.EfficiencyUSD
	downtime := c.Savings.DowntimeUSD
	totalBenefit := billing + efficiency + downtime

	roi := 0.0
	if totalBenefit > annualCost {
		roi = (totalBenefit - annualCost) / annualCost * 100
	}

	return HotelBenefits{
		AnnualCost:        annualCost,
		BillingSavings:    billing,
		EfficiencySavings: efficiency,
		DowntimeSavings:   downtime,
		TotalBenefit:      totalBenefit,
		ROIPercent:        roi,
		EffectiveHotels:   c.Scenario.EffectiveHotels(),
	}
}

// VendorProfitability aggregates vendor revenue against fixed operating
// costs plus, under the sale variant only, the acquisition cost of the
// equipment itself (the vendor bears manufacturing cost only when it sells
// units, never under rental). Costs scale with the scenario's cost
// multiplier; revenue never does.
func (c *Calculator) VendorProfitability() VendorProfitability {
	revenue := c.VendorRevenue()

	costs := c.Costs.TotalUSD
	if c.Variant.Kind == params.KindSaleSubscription {
		costs += c.Pricing.AdjustedCostUSD * float64(c.Scenario.HotelsCount)
	}
	costs *= c.Scenario.CostMultiplier

	profit := revenue.TotalRevenue - costs

	margin := 0.0
	if revenue.TotalRevenue > 0 {
		margin = profit / revenue.TotalRevenue * 100
	}
	roi := 0.0
	if costs > 0 {
		roi = profit / costs * 100
	}

	return VendorProfitability{
		TotalRevenue:  revenue.TotalRevenue,
		TotalCosts:    costs,
		NetProfit:     profit,
		MarginPercent: margin,
		ROIPercent:    roi,
	}
}

// PaybackPeriod returns nil when the vendor's monthly profit is
// non-positive: payback is never achieved and that must stay representable
// as an explicit signal rather than an infinity or an error.
func (c *Calculator) PaybackPeriod() *Payback {
	prof := c.VendorProfitability()
	monthly := prof.NetProfit / monthsPerYear
	if monthly <= 0 {
		return nil
	}
	months := prof.TotalCosts / monthly
	return &Payback{
		Months:        months,
		Years:         months / monthsPerYear,
		MonthlyProfit: monthly,
	}
}
