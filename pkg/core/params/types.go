package params

import (
	"fmt"
	"math"
)

// ScenarioParams describes one named deployment scenario.
// CostMultiplier defaults to 1.0 (neutral); the pessimistic scenario carries
// a value above 1 that inflates vendor and partner cost lines.
type ScenarioParams struct {
	Key            string  `yaml:"key"`
	Name           string  `yaml:"name"`
	HotelsCount    int     `yaml:"hotels_count"`
	MonthlyFee     float64 `yaml:"monthly_fee"`  // USD per hotel
	SuccessRate    float64 `yaml:"success_rate"` // percent, (0, 100]
	CostMultiplier float64 `yaml:"cost_multiplier"`
}

// EffectiveHotels returns the hotel count scaled by the assumed deployment
// success rate.
func (s ScenarioParams) EffectiveHotels() float64 {
	return float64(s.HotelsCount) * s.SuccessRate / 100.0
}

// VariantKind tags the two monetization shapes.
type VariantKind string

const (
	// KindSaleSubscription: equipment is sold once, both parties charge a
	// recurring subscription on top.
	KindSaleSubscription VariantKind = "sale_subscription"
	// KindRevenueShare: equipment is rented; the monthly fee is split
	// between vendor and partner by the selected revenue split.
	KindRevenueShare VariantKind = "revenue_share"
)

// MonetizationVariant selects which revenue formulas apply. The subscription
// and markup fields are only meaningful for KindSaleSubscription; under
// KindRevenueShare the split comes from the selected AssemblyVariant.
type MonetizationVariant struct {
	Key                    string      `yaml:"key"`
	Name                   string      `yaml:"name"`
	Description            string      `yaml:"description"`
	Kind                   VariantKind `yaml:"kind"`
	VendorSubscriptionFee  float64     `yaml:"vendor_subscription_fee"`  // USD/month per hotel
	PartnerSubscriptionFee float64     `yaml:"partner_subscription_fee"` // USD/month per hotel
	PartnerMarkupPercent   float64     `yaml:"partner_markup_percent"`   // resale markup on selling price
}

// EquipmentType describes one sellable hardware configuration.
type EquipmentType struct {
	Key                    string  `yaml:"key"`
	Name                   string  `yaml:"name"`
	Description            string  `yaml:"description"`
	BaseCostRUB            float64 `yaml:"base_cost_rub"` // manufacturing cost
	ComplexityFactor       float64 `yaml:"complexity_factor"`
	LocalAssemblyReduction float64 `yaml:"local_assembly_reduction"` // fraction
}

// AssemblyOption describes who assembles the equipment and on what terms.
type AssemblyOption struct {
	Key                 string  `yaml:"key"`
	Name                string  `yaml:"name"`
	Description         string  `yaml:"description"`
	CostMultiplier      float64 `yaml:"cost_multiplier"` // applied to base manufacturing cost
	VendorMargin        float64 `yaml:"vendor_margin"`   // fraction
	AssemblyFeeFraction float64 `yaml:"assembly_fee_fraction"`
	OnSiteAssembly      bool    `yaml:"on_site_assembly"` // partner assembles locally
	DeliveryTime        string  `yaml:"delivery_time"`    // display only
}

// AssemblyVariant is a revenue split between vendor and partner. The two
// shares must partition the fee exactly.
type AssemblyVariant struct {
	Key          string  `yaml:"key"`
	Name         string  `yaml:"name"`
	Description  string  `yaml:"description"`
	VendorShare  float64 `yaml:"vendor_share"`
	PartnerShare float64 `yaml:"partner_share"`
}

const shareSumTolerance = 1e-9

// Validate checks the share-partition invariant.
func (v AssemblyVariant) Validate() error {
	if math.Abs(v.VendorShare+v.PartnerShare-1.0) > shareSumTolerance {
		return fmt.Errorf("assembly variant %q: shares %.4f + %.4f do not sum to 1.0",
			v.Key, v.VendorShare, v.PartnerShare)
	}
	return nil
}

// FixedCostItems are the vendor's four operating-cost line items, held in
// the secondary currency.
type FixedCostItems struct {
	PayrollRUB   float64 `yaml:"payroll_rub"`
	OfficeRUB    float64 `yaml:"office_rub"`
	TravelRUB    float64 `yaml:"travel_rub"`
	LogisticsRUB float64 `yaml:"logistics_rub"`
}

// HotelSavings are the three fixed annual savings categories per hotel (USD).
type HotelSavings struct {
	BillingUSD    float64 `yaml:"billing_usd"`
	EfficiencyUSD float64 `yaml:"efficiency_usd"`
	DowntimeUSD   float64 `yaml:"downtime_usd"`
}

// Total returns the summed annual benefit.
func (h HotelSavings) Total() float64 {
	return h.BillingUSD + h.EfficiencyUSD + h.DowntimeUSD
}

// TotalCosts is the vendor's fixed operating-cost aggregate, materialized in
// both currencies at a given exchange rate.
type TotalCosts struct {
	ExchangeRate float64 `json:"exchange_rate"`

	PayrollRUB   float64 `json:"payroll_rub"`
	OfficeRUB    float64 `json:"office_rub"`
	TravelRUB    float64 `json:"travel_rub"`
	LogisticsRUB float64 `json:"logistics_rub"`
	TotalRUB     float64 `json:"total_rub"`

	PayrollUSD   float64 `json:"payroll_usd"`
	OfficeUSD    float64 `json:"office_usd"`
	TravelUSD    float64 `json:"travel_usd"`
	LogisticsUSD float64 `json:"logistics_usd"`
	TotalUSD     float64 `json:"total_usd"`
}

// Convert recomputes every USD field from its RUB source at the given rate.
// RUB values are the source of truth; the conversion never runs the other way.
func (t *TotalCosts) Convert(rate float64) {
	t.ExchangeRate = rate
	t.PayrollUSD = t.PayrollRUB / rate
	t.OfficeUSD = t.OfficeRUB / rate
	t.TravelUSD = t.TravelRUB / rate
	t.LogisticsUSD = t.LogisticsRUB / rate
	t.TotalRUB = t.PayrollRUB + t.OfficeRUB + t.TravelRUB + t.LogisticsRUB
	t.TotalUSD = t.TotalRUB / rate
}
