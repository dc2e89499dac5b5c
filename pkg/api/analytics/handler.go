// Package analytics exposes chart-ready reshapes of the financial summary
// and the break-even endpoint.
package analytics

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"venture_model/pkg/api/respond"
	"venture_model/pkg/core/analysis"
	"venture_model/pkg/core/engine"
	"venture_model/pkg/core/params"
)

// Handler serves the analytics and break-even endpoints.
type Handler struct {
	catalog *params.Catalog
	log     *zap.Logger
}

func NewHandler(cat *params.Catalog, log *zap.Logger) *Handler {
	strict := *cat
	strict.Strict = true
	return &Handler{catalog: &strict, log: log}
}

// Series is one label/value chart series.
type Series struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// Charts groups the chart series derived from one summary.
type Charts struct {
	RevenueComparison       Series `json:"revenue_comparison"`
	ProfitComparison        Series `json:"profit_comparison"`
	VendorRevenueBreakdown  Series `json:"vendor_revenue_breakdown"`
	PartnerRevenueBreakdown Series `json:"partner_revenue_breakdown"`
	HotelBenefitsBreakdown  Series `json:"hotel_benefits_breakdown"`
}

// Metrics are the aggregate headline figures.
type Metrics struct {
	TotalProjectValue float64         `json:"total_project_value"`
	VendorROI         float64         `json:"vendor_roi"`
	PartnerROI        float64         `json:"partner_roi"`
	HotelROI          float64         `json:"hotel_roi"`
	PaybackPeriod     *engine.Payback `json:"payback_period"`
}

// AnalyticsResponse is the full analytics payload.
type AnalyticsResponse struct {
	Summary engine.FinancialSummary `json:"summary"`
	Charts  Charts                  `json:"charts"`
	Metrics Metrics                 `json:"metrics"`
}

// AnalyticsRequest selects the configuration to chart.
type AnalyticsRequest struct {
	Scenario        string `json:"scenario"`
	Variant         string `json:"variant"`
	EquipmentType   string `json:"equipment_type"`
	AssemblyOption  string `json:"assembly_option"`
	AssemblyVariant string `json:"assembly_variant"`
}

// HandleAnalytics implements POST /api/analytics.
func (h *Handler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	if respond.CORS(w, r) {
		return
	}

	var req AnalyticsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if req.Scenario == "" {
		req.Scenario = params.ScenarioBaseline
	}
	if req.Variant == "" {
		req.Variant = params.VariantSaleSubscription
	}
	if req.EquipmentType == "" {
		req.EquipmentType = params.EquipmentMini
	}
	if req.AssemblyOption == "" {
		req.AssemblyOption = params.AssemblyVendor
	}
	if req.AssemblyVariant == "" {
		req.AssemblyVariant = params.DefaultSplit
	}

	calc, err := engine.NewCalculator(h.catalog,
		req.Scenario, req.Variant, req.EquipmentType, req.AssemblyOption, req.AssemblyVariant)
	if err != nil {
		respond.FromError(w, err)
		return
	}

	summary := calc.Summary()
	partnerRevenue := summary.Partner.EquipmentProfit + summary.Partner.SubscriptionRevenue

	partnerROI := 0.0
	if summary.Partner.OperationalCosts > 0 {
		partnerROI = summary.Partner.NetProfit / summary.Partner.OperationalCosts * 100
	}

	respond.OK(w, AnalyticsResponse{
		Summary: summary,
		Charts: Charts{
			RevenueComparison: Series{
				Labels: []string{"Vendor", "Partner"},
				Data:   []float64{summary.Vendor.TotalRevenue, partnerRevenue},
			},
			ProfitComparison: Series{
				Labels: []string{"Vendor", "Partner"},
				Data:   []float64{summary.Vendor.NetProfit, summary.Partner.NetProfit},
			},
			VendorRevenueBreakdown: Series{
				Labels: []string{"Equipment revenue", "Subscription revenue"},
				Data:   []float64{summary.Vendor.EquipmentRevenue, summary.Vendor.SubscriptionRevenue},
			},
			PartnerRevenueBreakdown: Series{
				Labels: []string{"Equipment profit", "Subscription revenue"},
				Data:   []float64{summary.Partner.EquipmentProfit, summary.Partner.SubscriptionRevenue},
			},
			HotelBenefitsBreakdown: Series{
				Labels: []string{"Billing savings", "Efficiency savings", "Downtime savings"},
				Data: []float64{
					summary.Hotels.BillingSavings,
					summary.Hotels.EfficiencySavings,
					summary.Hotels.DowntimeSavings,
				},
			},
		},
		Metrics: Metrics{
			TotalProjectValue: summary.Vendor.TotalRevenue + partnerRevenue,
			VendorROI:         summary.Vendor.ROI,
			PartnerROI:        partnerROI,
			HotelROI:          summary.Hotels.ROI,
			PaybackPeriod:     calc.PaybackPeriod(),
		},
	})
}

// HandleBreakeven implements GET /api/breakeven using the canonical 80/20
// split and the baseline monthly fee as illustrative constants.
func (h *Handler) HandleBreakeven(w http.ResponseWriter, r *http.Request) {
	if respond.CORS(w, r) {
		return
	}

	split, err := h.catalog.ResolveAssemblyVariant(params.DefaultSplit)
	if err != nil {
		respond.FromError(w, err)
		return
	}
	baseline, err := h.catalog.ResolveScenario(params.ScenarioBaseline)
	if err != nil {
		respond.FromError(w, err)
		return
	}

	respond.OK(w, analysis.BreakEven(h.catalog, split, baseline.MonthlyFee))
}
