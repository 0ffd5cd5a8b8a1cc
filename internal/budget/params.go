package budget

import (
	"fmt"

	"github.com/strikerdlm/BudgetNormobaricHypox/internal/physio"
)

// GasPrices holds unit prices per m³ of delivered gas, in the operator's
// currency.
type GasPrices struct {
	Air      float64 `json:"air" yaml:"air"`
	Nitrogen float64 `json:"nitrogen" yaml:"nitrogen"`
	Oxygen   float64 `json:"oxygen" yaml:"oxygen"`
}

// TrainingParameters describes one training program to estimate. The record
// is treated as immutable for the duration of a calculation.
type TrainingParameters struct {
	StudentsPerWeek       int       `json:"students_per_week"`
	Weeks                 int       `json:"weeks"`
	SessionDurationMin    float64   `json:"session_duration_minutes"`
	RecoveryDurationMin   float64   `json:"recovery_duration_minutes"`
	AltitudeMeters        float64   `json:"simulated_altitude_meters"`
	DurationAtAltitudeMin float64   `json:"duration_at_altitude_minutes"`
	Prices                GasPrices `json:"prices"`
	ContingencyPercent    float64   `json:"contingency_percent"`
}

// Validate rejects parameter sets the calculator cannot meaningfully price.
// Called before any computation; a zero-student or zero-week program is an
// input error, not a zero-cost estimate.
func (p TrainingParameters) Validate() error {
	if p.StudentsPerWeek < 1 {
		return fmt.Errorf("students_per_week must be at least 1, got %d", p.StudentsPerWeek)
	}
	if p.Weeks < 1 {
		return fmt.Errorf("weeks must be at least 1, got %d", p.Weeks)
	}
	if p.SessionDurationMin <= 0 {
		return fmt.Errorf("session_duration_minutes must be positive, got %g", p.SessionDurationMin)
	}
	if p.RecoveryDurationMin <= 0 {
		return fmt.Errorf("recovery_duration_minutes must be positive, got %g", p.RecoveryDurationMin)
	}
	if p.DurationAtAltitudeMin <= 0 {
		return fmt.Errorf("duration_at_altitude_minutes must be positive, got %g", p.DurationAtAltitudeMin)
	}
	if p.AltitudeMeters < 0 {
		return fmt.Errorf("simulated_altitude_meters must not be negative, got %g", p.AltitudeMeters)
	}
	if p.AltitudeMeters > physio.MaxAltitudeMeters {
		return fmt.Errorf("simulated_altitude_meters %g exceeds supported maximum %g", p.AltitudeMeters, physio.MaxAltitudeMeters)
	}
	if p.Prices.Air < 0 || p.Prices.Nitrogen < 0 || p.Prices.Oxygen < 0 {
		return fmt.Errorf("gas prices must not be negative")
	}
	if p.ContingencyPercent < 0 {
		return fmt.Errorf("contingency_percent must not be negative, got %g", p.ContingencyPercent)
	}
	return nil
}
