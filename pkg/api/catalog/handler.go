// Package catalog exposes the static scenario/variant listing.
package catalog

import (
	"net/http"

	"venture_model/pkg/api/respond"
	"venture_model/pkg/core/params"
)

// Handler serves the read-only catalog listing.
type Handler struct {
	catalog *params.Catalog
}

func NewHandler(cat *params.Catalog) *Handler {
	return &Handler{catalog: cat}
}

// ScenarioInfo is the display shape of one scenario.
type ScenarioInfo struct {
	Name        string  `json:"name"`
	HotelsCount int     `json:"hotels_count"`
	MonthlyFee  float64 `json:"monthly_fee"`
	SuccessRate float64 `json:"success_rate"`
}

// VariantInfo is the display shape of one monetization variant.
type VariantInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Listing pairs the scenario and variant tables.
type Listing struct {
	Scenarios map[string]ScenarioInfo `json:"scenarios"`
	Variants  map[string]VariantInfo  `json:"variants"`
}

// HandleScenarios implements GET /api/scenarios.
func (h *Handler) HandleScenarios(w http.ResponseWriter, r *http.Request) {
	if respond.CORS(w, r) {
		return
	}

	scenarios := make(map[string]ScenarioInfo, len(h.catalog.Scenarios))
	for key, s := range h.catalog.Scenarios {
		scenarios[key] = ScenarioInfo{
			Name:        s.Name,
			HotelsCount: s.HotelsCount,
			MonthlyFee:  s.MonthlyFee,
			SuccessRate: s.SuccessRate,
		}
	}

	variants := make(map[string]VariantInfo, len(h.catalog.Variants))
	for key, v := range h.catalog.Variants {
		variants[key] = VariantInfo{Name: v.Name, Description: v.Description}
	}

	respond.OK(w, Listing{Scenarios: scenarios, Variants: variants})
}
