package main

import (
	"fmt"
	"io"

	"github.com/strikerdlm/BudgetNormobaricHypox/internal/budget"
)

// renderReport prints the human-readable report. Monetary and volume values
// are rounded here, at the presentation boundary only.
func renderReport(w io.Writer, r *budget.Report) {
	fmt.Fprintln(w, "=== Normobaric Hypoxia Training Budget ===")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Physiological Parameters ---")
	fmt.Fprintf(w, "Simulated Altitude:        %.0f m\n", r.Profile.AltitudeMeters)
	fmt.Fprintf(w, "Atmospheric Pressure:      %.2f kPa\n", r.Profile.PressureKPa)
	fmt.Fprintf(w, "Inspired PO2:              %.2f kPa\n", r.Profile.InspiredPO2KPa)
	fmt.Fprintf(w, "Arterial O2 Saturation:    %.2f %%\n", r.Profile.SaturationPercent)
	fmt.Fprintf(w, "Ventilation Rate:          %.2f L/min\n", r.Profile.VentilationLPerMin)
	fmt.Fprintf(w, "Heart Rate:                %.2f bpm\n", r.Profile.HeartRateBPM)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Weekly Consumption ---")
	fmt.Fprintf(w, "Compressed Air:            %.2f m3\n", r.Weekly.Air)
	fmt.Fprintf(w, "Nitrogen:                  %.2f m3\n", r.Weekly.Nitrogen)
	fmt.Fprintf(w, "Oxygen:                    %.2f m3\n", r.Weekly.Oxygen)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Total Consumption ---")
	fmt.Fprintf(w, "Compressed Air:            %.2f m3\n", r.Total.Air)
	fmt.Fprintf(w, "Nitrogen:                  %.2f m3\n", r.Total.Nitrogen)
	fmt.Fprintf(w, "Oxygen:                    %.2f m3\n", r.Total.Oxygen)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Budget Summary ---")
	fmt.Fprintf(w, "Compressed Air Cost:       %.2f\n", budget.Round2(r.GasCosts.Air))
	fmt.Fprintf(w, "Nitrogen Cost:             %.2f\n", budget.Round2(r.GasCosts.Nitrogen))
	fmt.Fprintf(w, "Oxygen Cost:               %.2f\n", budget.Round2(r.GasCosts.Oxygen))
	fmt.Fprintf(w, "Weekly Cost:               %.2f\n", budget.Round2(r.WeeklyCost))
	fmt.Fprintf(w, "Total Program Cost:        %.2f\n", budget.Round2(r.TotalCost))
	fmt.Fprintf(w, "Contingency (%.0f%%):        %.2f\n", r.Params.ContingencyPercent, budget.Round2(r.ContingencyAmount))
	fmt.Fprintf(w, "Grand Total:               %.2f\n", budget.Round2(r.GrandTotal))
}
