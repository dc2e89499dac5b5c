package params

// EquipmentPricing is the derived price chain for one equipment type under
// one assembly option. RUB values are the source of truth; every USD field
// is materialized from its RUB counterpart at ExchangeRate. The chain knobs
// (multiplier, margin, markup, fee fraction) are carried along so the chain
// can be re-run after an override.
type EquipmentPricing struct {
	EquipmentKey         string  `json:"equipment_type"`
	EquipmentName        string  `json:"equipment_name"`
	EquipmentDescription string  `json:"equipment_description"`
	AssemblyKey          string  `json:"assembly_option"`
	AssemblyName         string  `json:"assembly_name"`
	DeliveryTime         string  `json:"delivery_time"`
	ComplexityFactor     float64 `json:"complexity_factor"`

	ExchangeRate         float64 `json:"exchange_rate"`
	CostMultiplier       float64 `json:"cost_multiplier"`
	VendorMargin         float64 `json:"vendor_margin"`
	PartnerMarkupPercent float64 `json:"partner_markup_percent"`
	AssemblyFeeFraction  float64 `json:"assembly_fee_fraction"`
	IntellectualValueRUB float64 `json:"intellectual_value_rub"`

	BaseCostRUB     float64 `json:"base_cost_rub"`
	AdjustedCostRUB float64 `json:"adjusted_cost_rub"`
	TotalCostRUB    float64 `json:"total_cost_rub"`
	SellingPriceRUB float64 `json:"selling_price_rub"`
	ResalePriceRUB  float64 `json:"resale_price_rub"`
	AssemblyFeeRUB  float64 `json:"assembly_fee_rub"`

	BaseCostUSD     float64 `json:"base_cost_usd"`
	AdjustedCostUSD float64 `json:"adjusted_cost_usd"`
	TotalCostUSD    float64 `json:"total_cost_usd"`
	SellingPriceUSD float64 `json:"selling_price_usd"`
	ResalePriceUSD  float64 `json:"resale_price_usd"`
	AssemblyFeeUSD  float64 `json:"assembly_fee_usd"`
}

// DerivePricing runs the pricing chain for the given equipment type and
// assembly option. Idempotent and side-effect-free: unknown keys follow the
// catalog's fallback/strict policy, the catalog itself is never touched.
func (c *Catalog) DerivePricing(equipmentKey, assemblyKey string) (EquipmentPricing, error) {
	eq, err := c.ResolveEquipmentType(equipmentKey)
	if err != nil {
		return EquipmentPricing{}, err
	}
	asm, err := c.ResolveAssemblyOption(assemblyKey)
	if err != nil {
		return EquipmentPricing{}, err
	}

	p := EquipmentPricing{
		EquipmentKey:         eq.Key,
		EquipmentName:        eq.Name,
		EquipmentDescription: eq.Description,
		AssemblyKey:          asm.Key,
		AssemblyName:         asm.Name,
		DeliveryTime:         asm.DeliveryTime,
		ComplexityFactor:     eq.ComplexityFactor,

		ExchangeRate:         c.ExchangeRate,
		CostMultiplier:       asm.CostMultiplier,
		VendorMargin:         asm.VendorMargin,
		PartnerMarkupPercent: c.PartnerMarkupPercent,
		AssemblyFeeFraction:  asm.AssemblyFeeFraction,
		IntellectualValueRUB: c.IntellectualValueRUB,

		BaseCostRUB: eq.BaseCostRUB,
	}
	p.Rederive()
	return p, nil
}

// Rederive re-runs the chain from BaseCostRUB:
// adjusted cost -> total cost (+intellectual value) -> vendor selling price
// (x 1+margin) -> partner resale price (x 1+markup) -> assembly fee
// (fraction of total cost), then converts everything to USD.
func (p *EquipmentPricing) Rederive() {
	p.AdjustedCostRUB = p.BaseCostRUB * p.CostMultiplier
	p.TotalCostRUB = p.AdjustedCostRUB + p.IntellectualValueRUB
	p.SellingPriceRUB = p.TotalCostRUB * (1 + p.VendorMargin)
	p.ResalePriceRUB = p.SellingPriceRUB * (1 + p.PartnerMarkupPercent/100)
	p.AssemblyFeeRUB = p.TotalCostRUB * p.AssemblyFeeFraction
	p.convert()
}

// Reprice changes the exchange rate and recomputes every USD field from its
// RUB source. The RUB chain is untouched.
func (p *EquipmentPricing) Reprice(rate float64) {
	p.ExchangeRate = rate
	p.convert()
}

// RebaseCostUSD replaces the base manufacturing cost (given in USD) and
// re-runs the whole chain so every dependent field stays consistent.
func (p *EquipmentPricing) RebaseCostUSD(usd float64) {
	p.BaseCostRUB = usd * p.ExchangeRate
	p.Rederive()
}

func (p *EquipmentPricing) convert() {
	p.BaseCostUSD = p.BaseCostRUB / p.ExchangeRate
	p.AdjustedCostUSD = p.AdjustedCostRUB / p.ExchangeRate
	p.TotalCostUSD = p.TotalCostRUB / p.ExchangeRate
	p.SellingPriceUSD = p.SellingPriceRUB / p.ExchangeRate
	p.ResalePriceUSD = p.ResalePriceRUB / p.ExchangeRate
	p.AssemblyFeeUSD = p.AssemblyFeeRUB / p.ExchangeRate
}

// AggregateFixedCosts sums the vendor's four operating-cost line items and
// converts them at the catalog's exchange rate.
func (c *Catalog) AggregateFixedCosts() TotalCosts {
	t := TotalCosts{
		PayrollRUB:   c.VendorCosts.PayrollRUB,
		OfficeRUB:    c.VendorCosts.OfficeRUB,
		TravelRUB:    c.VendorCosts.TravelRUB,
		LogisticsRUB: c.VendorCosts.LogisticsRUB,
	}
	t.Convert(c.ExchangeRate)
	return t
}
