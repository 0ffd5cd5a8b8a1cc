package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/strikerdlm/BudgetNormobaricHypox/internal/budget"
	"github.com/strikerdlm/BudgetNormobaricHypox/internal/physio"
)

// --- Tool definitions ---

var toolEstimateBudget = mcp.NewTool("estimate_budget",
	mcp.WithDescription("Estimate gas consumption and cost for a normobaric hypoxia training program. Returns weekly and total volumes per gas (compressed air, nitrogen, oxygen), cost breakdown, contingency, and grand total. Omitted parameters use the configured program defaults."),
	mcp.WithNumber("students_per_week", mcp.Description("Number of students trained per week")),
	mcp.WithNumber("weeks", mcp.Description("Program length in weeks")),
	mcp.WithNumber("session_duration_minutes", mcp.Description("Duration of each session in minutes")),
	mcp.WithNumber("recovery_duration_minutes", mcp.Description("Recovery phase duration in minutes (breathed on oxygen)")),
	mcp.WithNumber("simulated_altitude_meters", mcp.Description("Simulated altitude in meters (0-8000)")),
	mcp.WithNumber("duration_at_altitude_minutes", mcp.Description("Time spent at simulated altitude per session, in minutes")),
	mcp.WithNumber("price_air", mcp.Description("Price of compressed air per m3")),
	mcp.WithNumber("price_nitrogen", mcp.Description("Price of nitrogen per m3")),
	mcp.WithNumber("price_oxygen", mcp.Description("Price of oxygen per m3")),
	mcp.WithNumber("contingency_percent", mcp.Description("Budget contingency as a percentage, e.g. 10 for 10%")),
)

var toolGetPhysiology = mcp.NewTool("get_physiology",
	mcp.WithDescription("Physiological profile of an average resting adult at a simulated altitude: atmospheric pressure, inspired PO2, arterial oxygen saturation, ventilation rate, and heart rate."),
	mcp.WithNumber("altitude_m", mcp.Required(), mcp.Description("Simulated altitude in meters (0-8000)")),
)

// paramsFromRequest layers tool-call arguments over the configured defaults.
func paramsFromRequest(req mcp.CallToolRequest, defaults budget.TrainingParameters) budget.TrainingParameters {
	p := defaults
	p.StudentsPerWeek = req.GetInt("students_per_week", defaults.StudentsPerWeek)
	p.Weeks = req.GetInt("weeks", defaults.Weeks)
	p.SessionDurationMin = req.GetFloat("session_duration_minutes", defaults.SessionDurationMin)
	p.RecoveryDurationMin = req.GetFloat("recovery_duration_minutes", defaults.RecoveryDurationMin)
	p.AltitudeMeters = req.GetFloat("simulated_altitude_meters", defaults.AltitudeMeters)
	p.DurationAtAltitudeMin = req.GetFloat("duration_at_altitude_minutes", defaults.DurationAtAltitudeMin)
	p.Prices.Air = req.GetFloat("price_air", defaults.Prices.Air)
	p.Prices.Nitrogen = req.GetFloat("price_nitrogen", defaults.Prices.Nitrogen)
	p.Prices.Oxygen = req.GetFloat("price_oxygen", defaults.Prices.Oxygen)
	p.ContingencyPercent = req.GetFloat("contingency_percent", defaults.ContingencyPercent)
	return p
}

// --- Tool handlers ---

func (h *handlers) estimateBudget(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := paramsFromRequest(req, h.defaults)

	report, err := budget.Estimate(params, h.policy)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(report)
	if err != nil {
		h.log.Error("mcp estimate_budget", "error", err)
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPhysiology(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	altitude, err := req.RequireFloat("altitude_m")
	if err != nil {
		return mcp.NewToolResultError("altitude_m parameter is required"), nil
	}
	if altitude < 0 || altitude > physio.MaxAltitudeMeters {
		return mcp.NewToolResultError("altitude_m must be within [0, 8000]"), nil
	}

	result, err := mcp.NewToolResultJSON(physio.ProfileAt(altitude))
	if err != nil {
		h.log.Error("mcp get_physiology", "error", err)
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
