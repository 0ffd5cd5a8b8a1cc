package physio

import (
	"math"
	"testing"
)

// TestSeaLevelReference verifies that altitude zero reduces to standard
// sea-level values: 101.325 kPa, 97-99% saturation, baseline ventilation and
// heart rate with no hypoxic adjustment.
func TestSeaLevelReference(t *testing.T) {
	p := ProfileAt(0)

	if math.Abs(p.PressureKPa-101.325) > 0.5 {
		t.Errorf("pressure at sea level = %.3f kPa, want 101.325 +/- 0.5", p.PressureKPa)
	}
	if p.SaturationPercent < 97 || p.SaturationPercent > 99 {
		t.Errorf("saturation at sea level = %.2f%%, want within [97,99]", p.SaturationPercent)
	}
	if p.VentilationLPerMin != BaselineVentilationLMin {
		t.Errorf("ventilation at sea level = %.2f, want %.2f", p.VentilationLPerMin, BaselineVentilationLMin)
	}
	if p.HeartRateBPM != BaselineHeartRateBPM {
		t.Errorf("heart rate at sea level = %.2f, want %.2f", p.HeartRateBPM, BaselineHeartRateBPM)
	}
}

// TestMonotonicity sweeps the supported altitude range and verifies the
// directional guarantees: pressure and saturation fall, ventilation and heart
// rate never fall, and saturation stays within [0,100].
func TestMonotonicity(t *testing.T) {
	prev := ProfileAt(0)
	for alt := 100.0; alt <= MaxAltitudeMeters; alt += 100 {
		p := ProfileAt(alt)

		if p.PressureKPa >= prev.PressureKPa {
			t.Fatalf("pressure not strictly decreasing at %.0f m: %.4f >= %.4f", alt, p.PressureKPa, prev.PressureKPa)
		}
		if p.SaturationPercent > prev.SaturationPercent {
			t.Fatalf("saturation increasing at %.0f m: %.4f > %.4f", alt, p.SaturationPercent, prev.SaturationPercent)
		}
		if p.SaturationPercent < 0 || p.SaturationPercent > 100 {
			t.Fatalf("saturation out of bounds at %.0f m: %.4f", alt, p.SaturationPercent)
		}
		if p.VentilationLPerMin < prev.VentilationLPerMin {
			t.Fatalf("ventilation decreasing at %.0f m: %.4f < %.4f", alt, p.VentilationLPerMin, prev.VentilationLPerMin)
		}
		if p.HeartRateBPM < prev.HeartRateBPM {
			t.Fatalf("heart rate decreasing at %.0f m: %.4f < %.4f", alt, p.HeartRateBPM, prev.HeartRateBPM)
		}
		prev = p
	}
}

// TestHypoxicResponse verifies that a realistic training altitude produces a
// clearly hypoxic profile: desaturation below 90% and ventilation and heart
// rate above baseline.
func TestHypoxicResponse(t *testing.T) {
	p := ProfileAt(5000)

	if p.SaturationPercent >= 90 {
		t.Errorf("saturation at 5000 m = %.2f%%, want < 90", p.SaturationPercent)
	}
	if p.SaturationPercent < 70 {
		t.Errorf("saturation at 5000 m = %.2f%%, implausibly low for the averaged-adult model", p.SaturationPercent)
	}
	if p.VentilationLPerMin <= BaselineVentilationLMin {
		t.Errorf("ventilation at 5000 m = %.2f, want above baseline %.2f", p.VentilationLPerMin, BaselineVentilationLMin)
	}
	if p.HeartRateBPM <= BaselineHeartRateBPM {
		t.Errorf("heart rate at 5000 m = %.2f, want above baseline %.2f", p.HeartRateBPM, BaselineHeartRateBPM)
	}
}

// TestProfileDeterministic verifies that repeated calls with the same
// altitude return identical profiles.
func TestProfileDeterministic(t *testing.T) {
	a := ProfileAt(3500)
	b := ProfileAt(3500)
	if a != b {
		t.Errorf("ProfileAt(3500) not deterministic: %+v vs %+v", a, b)
	}
}
