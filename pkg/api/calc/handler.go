// Package calc exposes the calculation endpoints: single calculation with
// overrides, scenario comparison, and sensitivity sweeps.
package calc

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"venture_model/pkg/api/respond"
	"venture_model/pkg/core/analysis"
	"venture_model/pkg/core/engine"
	"venture_model/pkg/core/params"
)

// Handler serves the calculation endpoints. The HTTP layer always resolves
// selectors strictly: a typo in a key should be a 400, not a silently
// different configuration.
type Handler struct {
	catalog *params.Catalog
	log     *zap.Logger
}

// NewHandler binds the handler to a catalog. The catalog is copied with
// strict lookups enabled.
func NewHandler(cat *params.Catalog, log *zap.Logger) *Handler {
	strict := *cat
	strict.Strict = true
	return &Handler{catalog: &strict, log: log}
}

// Selectors are the five configuration keys shared by several request
// bodies. Zero values fall back to the canonical defaults.
type Selectors struct {
	Scenario        string `json:"scenario"`
	Variant         string `json:"variant"`
	EquipmentType   string `json:"equipment_type"`
	AssemblyOption  string `json:"assembly_option"`
	AssemblyVariant string `json:"assembly_variant"`
}

func (s *Selectors) applyDefaults() {
	if s.Scenario == "" {
		s.Scenario = params.ScenarioBaseline
	}
	if s.Variant == "" {
		s.Variant = params.VariantRevenueShare
	}
	if s.EquipmentType == "" {
		s.EquipmentType = params.EquipmentMini
	}
	if s.AssemblyOption == "" {
		s.AssemblyOption = params.AssemblyVendor
	}
	if s.AssemblyVariant == "" {
		s.AssemblyVariant = params.DefaultSplit
	}
}

// newCalculator builds a strict calculator for the given selectors.
func (h *Handler) newCalculator(s Selectors) (*engine.Calculator, error) {
	return engine.NewCalculator(h.catalog,
		s.Scenario, s.Variant, s.EquipmentType, s.AssemblyOption, s.AssemblyVariant)
}

// CalculateRequest selects a configuration and optionally overrides the
// derived numeric fields.
type CalculateRequest struct {
	Selectors
	engine.Overrides
}

// CalculateResponse returns the full model output for one configuration.
type CalculateResponse struct {
	Summary         engine.FinancialSummary `json:"summary"`
	Payback         *engine.Payback         `json:"payback"`
	EquipmentPrices params.EquipmentPricing `json:"equipment_prices"`
	Costs           params.TotalCosts       `json:"costs"`
}

// HandleCalculate implements POST /api/calculate.
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	if respond.CORS(w, r) {
		return
	}

	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	req.applyDefaults()

	base, err := h.newCalculator(req.Selectors)
	if err != nil {
		respond.FromError(w, err)
		return
	}
	calc, err := base.Apply(req.Overrides)
	if err != nil {
		respond.FromError(w, err)
		return
	}

	h.log.Info("calculation served",
		zap.String("scenario", req.Scenario),
		zap.String("variant", req.Variant),
		zap.String("equipment_type", req.EquipmentType))

	respond.OK(w, CalculateResponse{
		Summary:         calc.Summary(),
		Payback:         calc.PaybackPeriod(),
		EquipmentPrices: calc.Pricing,
		Costs:           calc.Costs,
	})
}

// CompareRequest lists the scenario/variant pairs to compare.
type CompareRequest struct {
	Scenarios []Selectors `json:"scenarios"`
}

// CompareEntry is one compared configuration.
type CompareEntry struct {
	Scenario string                  `json:"scenario"`
	Variant  string                  `json:"variant"`
	Summary  engine.FinancialSummary `json:"summary"`
	Payback  *engine.Payback         `json:"payback"`
}

// HandleCompare implements POST /api/compare.
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	if respond.CORS(w, r) {
		return
	}

	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	results := make([]CompareEntry, 0, len(req.Scenarios))
	for _, sel := range req.Scenarios {
		sel.applyDefaults()
		calc, err := h.newCalculator(sel)
		if err != nil {
			respond.FromError(w, err)
			return
		}
		summary := calc.Summary()
		results = append(results, CompareEntry{
			Scenario: summary.Scenario,
			Variant:  summary.Variant,
			Summary:  summary,
			Payback:  calc.PaybackPeriod(),
		})
	}
	respond.OK(w, results)
}

// SensitivityRequest names one parameter and the values to sweep.
type SensitivityRequest struct {
	Parameter string    `json:"parameter"`
	Values    []float64 `json:"values"`
	Scenario  string    `json:"scenario"`
	Variant   string    `json:"variant"`
}

// SensitivityResponse echoes the parameter with one row per value.
type SensitivityResponse struct {
	Parameter string                    `json:"parameter"`
	Results   []analysis.SensitivityRow `json:"results"`
}

// HandleSensitivity implements POST /api/sensitivity.
func (h *Handler) HandleSensitivity(w http.ResponseWriter, r *http.Request) {
	if respond.CORS(w, r) {
		return
	}

	var req SensitivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if req.Scenario == "" {
		req.Scenario = params.ScenarioBaseline
	}
	if req.Variant == "" {
		req.Variant = params.VariantRevenueShare
	}

	rows, err := analysis.Sensitivity(h.catalog, req.Parameter, req.Values, req.Scenario, req.Variant)
	if err != nil {
		respond.FromError(w, err)
		return
	}
	respond.OK(w, SensitivityResponse{Parameter: req.Parameter, Results: rows})
}
