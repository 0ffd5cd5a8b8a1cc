package budget

import "fmt"

// MixingPolicy captures how the simulated altitude is produced from supply
// gases. These are operational tuning knobs, not physiological derivations:
// the chamber breathes compressed air, nitrogen is injected on top of the air
// stream to dilute the oxygen fraction, and pure oxygen is supplied during
// the recovery phase.
type MixingPolicy struct {
	// NitrogenTopUpFraction is the m³ of nitrogen injected per m³ of
	// compressed air consumed at altitude.
	NitrogenTopUpFraction float64 `json:"nitrogen_top_up_fraction" yaml:"nitrogen_top_up_fraction"`

	// RecoveryOxygenFraction is the fraction of the recovery-phase breathing
	// volume supplied from the oxygen line. 1.0 means recovery is breathed
	// entirely on pure oxygen.
	RecoveryOxygenFraction float64 `json:"recovery_oxygen_fraction" yaml:"recovery_oxygen_fraction"`
}

// DefaultMixingPolicy reflects the standard chamber setup: 5% nitrogen top-up
// and pure oxygen throughout recovery.
var DefaultMixingPolicy = MixingPolicy{
	NitrogenTopUpFraction:  0.05,
	RecoveryOxygenFraction: 1.0,
}

// Validate checks the policy independently of any training parameters.
func (m MixingPolicy) Validate() error {
	if m.NitrogenTopUpFraction < 0 || m.NitrogenTopUpFraction > 1 {
		return fmt.Errorf("nitrogen_top_up_fraction must be within [0,1], got %g", m.NitrogenTopUpFraction)
	}
	if m.RecoveryOxygenFraction < 0 || m.RecoveryOxygenFraction > 1 {
		return fmt.Errorf("recovery_oxygen_fraction must be within [0,1], got %g", m.RecoveryOxygenFraction)
	}
	return nil
}
