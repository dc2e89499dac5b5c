// The analyzer runs the batch analyses from the command line: scenario
// comparison table, what-if report, break-even points, and single-parameter
// sensitivity sweeps, with an optional JSON export of the full analysis.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"venture_model/pkg/config"
	"venture_model/pkg/core/analysis"
	"venture_model/pkg/core/params"
)

func main() {
	mode := flag.String("mode", "full", "Mode: full, compare, whatif, breakeven or sensitivity")
	parameter := flag.String("parameter", "hotels_count", "Parameter to sweep in sensitivity mode")
	valuesStr := flag.String("values", "", "Comma-separated sweep values, e.g. 30,50,75")
	scenario := flag.String("scenario", params.ScenarioBaseline, "Base scenario key")
	variant := flag.String("variant", params.VariantRevenueShare, "Base variant key")
	export := flag.String("export", "", "Write the full analysis to this JSON file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}
	cat, err := params.Load(cfg.CatalogPath)
	if err != nil {
		fatal(err)
	}
	cat.Strict = cfg.StrictLookups

	switch *mode {
	case "compare":
		err = printComparison(cat)
	case "whatif":
		err = printWhatIf(cat)
	case "breakeven":
		err = printBreakEven(cat)
	case "sensitivity":
		err = printSensitivity(cat, *parameter, *valuesStr, *scenario, *variant)
	case "full":
		err = runFull(cat)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		fatal(err)
	}

	if *export != "" {
		if err := exportJSON(cat, *export); err != nil {
			fatal(err)
		}
		fmt.Printf("Analysis exported to %s\n", *export)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func printComparison(cat *params.Catalog) error {
	entries, err := analysis.CompareAll(cat)
	if err != nil {
		return err
	}

	fmt.Println("=== SCENARIO COMPARISON ===")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Scenario\tVariant\tEff. hotels\tVendor revenue\tVendor profit\tVendor ROI\tPartner profit\tHotel ROI")
	for _, e := range entries {
		s := e.Summary
		fmt.Fprintf(w, "%s\t%s\t%.0f\t$%.0f\t$%.0f\t%.1f%%\t$%.0f\t%.0f%%\n",
			s.Scenario, s.Variant, s.EffectiveHotels,
			s.Vendor.TotalRevenue, s.Vendor.NetProfit, s.Vendor.ROI,
			s.Partner.NetProfit, s.Hotels.ROI)
	}
	return w.Flush()
}

func printWhatIf(cat *params.Catalog) error {
	results, err := analysis.WhatIf(cat)
	if err != nil {
		return err
	}

	fmt.Println("=== WHAT-IF ANALYSIS ===")
	for _, r := range results {
		fmt.Printf("%s:\n", r.Name)
		fmt.Printf("  Vendor profit:  $%.0f (%+.0f)\n", r.VendorProfit, r.VendorProfitDelta)
		fmt.Printf("  Vendor ROI:     %.1f%% (%+.1f)\n", r.VendorROI, r.VendorROIDelta)
		fmt.Printf("  Partner profit: $%.0f (%+.0f)\n", r.PartnerProfit, r.PartnerProfitDelta)
	}
	return nil
}

func printBreakEven(cat *params.Catalog) error {
	split, err := cat.ResolveAssemblyVariant(params.DefaultSplit)
	if err != nil {
		return err
	}
	baseline, err := cat.ResolveScenario(params.ScenarioBaseline)
	if err != nil {
		return err
	}
	be := analysis.BreakEven(cat, split, baseline.MonthlyFee)

	fmt.Println("=== BREAK-EVEN ANALYSIS ===")
	fmt.Printf("Vendor:  monthly costs $%.0f, $%.0f per hotel -> %.1f hotels\n",
		be.Vendor.MonthlyCosts, be.Vendor.MonthlyRevenuePerHotel, be.Vendor.BreakevenHotels)
	fmt.Printf("Partner: monthly costs $%.0f, $%.0f per hotel -> %.1f hotels\n",
		be.Partner.MonthlyCosts, be.Partner.MonthlyRevenuePerHotel, be.Partner.BreakevenHotels)
	return nil
}

func printSensitivity(cat *params.Catalog, parameter, valuesStr, scenario, variant string) error {
	if valuesStr == "" {
		return fmt.Errorf("sensitivity mode requires -values")
	}
	var values []float64
	for _, part := range strings.Split(valuesStr, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fmt.Errorf("bad sweep value %q: %w", part, err)
		}
		values = append(values, v)
	}

	rows, err := analysis.Sensitivity(cat, parameter, values, scenario, variant)
	if err != nil {
		return err
	}

	fmt.Printf("=== SENSITIVITY: %s ===\n", parameter)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Value\tVendor profit\tVendor ROI\tPartner profit\tTotal revenue")
	for _, r := range rows {
		fmt.Fprintf(w, "%.0f\t$%.0f\t%.1f%%\t$%.0f\t$%.0f\n",
			r.Value, r.VendorProfit, r.VendorROI, r.PartnerProfit, r.TotalRevenue)
	}
	return w.Flush()
}

func runFull(cat *params.Catalog) error {
	if err := printComparison(cat); err != nil {
		return err
	}
	fmt.Println()
	if err := printWhatIf(cat); err != nil {
		return err
	}
	fmt.Println()
	return printBreakEven(cat)
}

// exportJSON mirrors the web API's shapes into a file for offline review.
func exportJSON(cat *params.Catalog, path string) error {
	comparison, err := analysis.CompareAll(cat)
	if err != nil {
		return err
	}
	whatIf, err := analysis.WhatIf(cat)
	if err != nil {
		return err
	}
	split, err := cat.ResolveAssemblyVariant(params.DefaultSplit)
	if err != nil {
		return err
	}
	baseline, err := cat.ResolveScenario(params.ScenarioBaseline)
	if err != nil {
		return err
	}

	payload := map[string]interface{}{
		"comparison": comparison,
		"what_if":    whatIf,
		"break_even": analysis.BreakEven(cat, split, baseline.MonthlyFee),
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
