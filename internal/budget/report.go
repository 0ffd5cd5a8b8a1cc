// Package budget implements the gas-budget estimate for a normobaric hypoxia
// training program: a deterministic, side-effect-free mapping from a
// parameter set to a structured cost report.
package budget

import (
	"fmt"
	"math"

	"github.com/strikerdlm/BudgetNormobaricHypox/internal/physio"
)

// CostBreakdown holds program-total cost per supply gas.
type CostBreakdown struct {
	Air      float64 `json:"air"`
	Nitrogen float64 `json:"nitrogen"`
	Oxygen   float64 `json:"oxygen"`
}

// Report is the full estimate for one training program. Monetary values are
// kept at full precision; rounding happens only when rendering.
type Report struct {
	Params  TrainingParameters `json:"parameters"`
	Profile physio.Profile     `json:"physiological_profile"`

	Weekly GasVolumes `json:"weekly_consumption"`
	Total  GasVolumes `json:"total_consumption"`

	GasCosts          CostBreakdown `json:"gas_costs"`
	WeeklyCost        float64       `json:"weekly_cost"`
	TotalCost         float64       `json:"total_cost"`
	ContingencyAmount float64       `json:"contingency_amount"`
	GrandTotal        float64       `json:"grand_total"`
}

// Estimate validates the parameters and policy, computes the physiological
// profile at the simulated altitude, and aggregates gas volumes and costs.
// Identical inputs always produce identical reports.
func Estimate(p TrainingParameters, policy MixingPolicy) (*Report, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid training parameters: %w", err)
	}
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mixing policy: %w", err)
	}

	profile := physio.ProfileAt(p.AltitudeMeters)
	consumption := ComputeConsumption(p, profile, policy)

	costs := CostBreakdown{
		Air:      consumption.Total.Air * p.Prices.Air,
		Nitrogen: consumption.Total.Nitrogen * p.Prices.Nitrogen,
		Oxygen:   consumption.Total.Oxygen * p.Prices.Oxygen,
	}
	weeklyCost := consumption.Weekly.Air*p.Prices.Air +
		consumption.Weekly.Nitrogen*p.Prices.Nitrogen +
		consumption.Weekly.Oxygen*p.Prices.Oxygen
	totalCost := costs.Air + costs.Nitrogen + costs.Oxygen
	contingency := totalCost * p.ContingencyPercent / 100

	return &Report{
		Params:            p,
		Profile:           profile,
		Weekly:            consumption.Weekly,
		Total:             consumption.Total,
		GasCosts:          costs,
		WeeklyCost:        weeklyCost,
		TotalCost:         totalCost,
		ContingencyAmount: contingency,
		GrandTotal:        totalCost + contingency,
	}, nil
}

// Round2 rounds to two decimal places. For use at the presentation boundary
// only; internal values stay at full precision so rounding error does not
// compound across weeks.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
