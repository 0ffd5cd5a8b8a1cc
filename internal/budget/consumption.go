package budget

import "github.com/strikerdlm/BudgetNormobaricHypox/internal/physio"

const litersPerCubicMeter = 1000.0

// GasVolumes holds consumed volumes per supply gas, in m³.
type GasVolumes struct {
	Air      float64 `json:"air_m3"`
	Nitrogen float64 `json:"nitrogen_m3"`
	Oxygen   float64 `json:"oxygen_m3"`
}

func (v GasVolumes) scale(f float64) GasVolumes {
	return GasVolumes{Air: v.Air * f, Nitrogen: v.Nitrogen * f, Oxygen: v.Oxygen * f}
}

// Consumption holds gas volumes at the three aggregation levels of a program.
type Consumption struct {
	PerSession GasVolumes `json:"per_session"`
	Weekly     GasVolumes `json:"weekly"`
	Total      GasVolumes `json:"total"`
}

// ComputeConsumption derives gas volumes from the physiological profile and
// the program schedule. Air is breathed at the altitude-adjusted ventilation
// rate for the time spent at altitude; nitrogen follows the mixing policy;
// recovery oxygen is breathed at the sea-level baseline rate, since the
// student is back on a normoxic mix by then.
func ComputeConsumption(p TrainingParameters, profile physio.Profile, policy MixingPolicy) Consumption {
	perSession := GasVolumes{
		Air: profile.VentilationLPerMin * p.DurationAtAltitudeMin / litersPerCubicMeter,
	}
	perSession.Nitrogen = perSession.Air * policy.NitrogenTopUpFraction
	perSession.Oxygen = physio.BaselineVentilationLMin * p.RecoveryDurationMin / litersPerCubicMeter * policy.RecoveryOxygenFraction

	weekly := perSession.scale(float64(p.StudentsPerWeek))
	total := weekly.scale(float64(p.Weeks))

	return Consumption{PerSession: perSession, Weekly: weekly, Total: total}
}
