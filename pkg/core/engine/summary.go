package engine

// VendorSummary is the vendor block of a FinancialSummary.
type VendorSummary struct {
	EquipmentRevenue    float64 `json:"equipment_revenue"`
	SubscriptionRevenue float64 `json:"subscription_revenue"`
	TotalRevenue        float64 `json:"total_revenue"`
	TotalCosts          float64 `json:"total_costs"`
	NetProfit           float64 `json:"net_profit"`
	ProfitMargin        float64 `json:"profit_margin"`
	ROI                 float64 `json:"roi"`
}

// PartnerSummary is the partner block of a FinancialSummary.
type PartnerSummary struct {
	EquipmentProfit     float64 `json:"equipment_profit"`
	SubscriptionRevenue float64 `json:"subscription_revenue"`
	AssemblyFeeRevenue  float64 `json:"assembly_fee_revenue"`
	OperationalCosts    float64 `json:"operational_costs"`
	NetProfit           float64 `json:"net_profit"`
}

// HotelSummary is the customer block of a FinancialSummary.
type HotelSummary struct {
	AnnualCost        float64 `json:"annual_cost"`
	BillingSavings    float64 `json:"billing_savings"`
	EfficiencySavings float64 `json:"efficiency_savings"`
	DowntimeSavings   float64 `json:"downtime_savings"`
	TotalBenefit      float64 `json:"total_benefit"`
	ROI               float64 `json:"roi"`
}

// FinancialSummary is the engine's primary output: the per-stakeholder
// breakdowns plus the identifiers of the configuration that produced them.
// It is recomputed on demand and never cached.
type FinancialSummary struct {
	Scenario        string  `json:"scenario"`
	Variant         string  `json:"variant"`
	EquipmentType   string  `json:"equipment_type"`
	EquipmentName   string  `json:"equipment_name"`
	AssemblyOption  string  `json:"assembly_option"`
	AssemblyName    string  `json:"assembly_name"`
	AssemblyVariant string  `json:"assembly_variant"`
	HotelsCount     int     `json:"hotels_count"`
	EffectiveHotels float64 `json:"effective_hotels"`

	Vendor  VendorSummary  `json:"vendor"`
	Partner PartnerSummary `json:"partner"`
	Hotels  HotelSummary   `json:"hotels"`
}

// Summary composes the four query methods into one nested record. Pure
// function of the calculator's current working state.
func (c *Calculator) Summary() FinancialSummary {
	revenue := c.VendorRevenue()
	partner := c.PartnerRevenue()
	hotels := c.HotelBenefits()
	profitability := c.VendorProfitability()

	return FinancialSummary{
		Scenario:        c.Scenario.Name,
		Variant:         c.Variant.Name,
		EquipmentType:   c.Pricing.EquipmentKey,
		EquipmentName:   c.Pricing.EquipmentName,
		AssemblyOption:  c.Pricing.AssemblyKey,
		AssemblyName:    c.Pricing.AssemblyName,
		AssemblyVariant: c.Split.Key,
		HotelsCount:     c.Scenario.HotelsCount,
		EffectiveHotels: revenue.EffectiveHotels,
		Vendor: VendorSummary{
			EquipmentRevenue:    revenue.EquipmentRevenue,
			SubscriptionRevenue: revenue.SubscriptionRevenue,
			TotalRevenue:        revenue.TotalRevenue,
			TotalCosts:          profitability.TotalCosts,
			NetProfit:           profitability.NetProfit,
			ProfitMargin:        profitability.MarginPercent,
			ROI:                 profitability.ROIPercent,
		},
		Partner: PartnerSummary{
			EquipmentProfit:     partner.EquipmentProfit,
			SubscriptionRevenue: partner.SubscriptionRevenue,
			AssemblyFeeRevenue:  partner.AssemblyFeeRevenue,
			OperationalCosts:    partner.OperationalCosts,
			NetProfit:           partner.NetProfit,
		},
		Hotels: HotelSummary{
			AnnualCost:        hotels.AnnualCost,
			BillingSavings:    hotels.BillingSavings,
			EfficiencySavings: hotels.EfficiencySavings,
			DowntimeSavings:   hotels.DowntimeSavings,
			TotalBenefit:      hotels.TotalBenefit,
			ROI:               hotels.ROIPercent,
		},
	}
}
