// Package physio models the physiological response of an average resting
// adult to a simulated altitude. The values are approximations intended for
// gas-budget planning, not for clinical use.
package physio

import "math"

// Sea-level reference values for an average resting adult.
const (
	SeaLevelPressureKPa     = 101.325 // standard atmosphere
	BaselineVentilationLMin = 6.0     // resting minute ventilation
	BaselineHeartRateBPM    = 70.0    // resting heart rate
)

// MaxAltitudeMeters is the upper bound of the supported altitude range. The
// approximation curves are calibrated for realistic training altitudes only.
const MaxAltitudeMeters = 8000.0

const (
	// Barometric formula coefficients (ISA troposphere).
	pressureLapse    = 2.25577e-5 // per meter
	pressureExponent = 5.25588

	fiO2          = 0.2095 // fraction of inspired oxygen in dry air
	waterVaporKPa = 6.266  // saturated water vapor pressure at body temperature

	// Fraction of inspired PO2 that reaches arterial blood, folding the
	// alveolar gas equation and the alveolar-arterial gradient into a single
	// averaged-adult constant.
	arterialFraction = 0.63

	kPaPerMmHg = 0.133322

	// Hypoxic response gains, per percentage point of saturation deficit
	// relative to sea level.
	ventilationGain = 0.07 // fractional increase of minute ventilation
	heartRateGain   = 1.0  // bpm

	// Minute ventilation cap; beyond this the averaged-adult model would
	// predict unsustainable breathing rates.
	maxVentilationLMin = 60.0
)

// Profile holds the physiological values of an average resting adult at a
// given simulated altitude.
type Profile struct {
	AltitudeMeters     float64 `json:"altitude_m"`
	PressureKPa        float64 `json:"atmospheric_pressure_kpa"`
	InspiredPO2KPa     float64 `json:"partial_pressure_o2_kpa"`
	SaturationPercent  float64 `json:"arterial_o2_saturation_percent"`
	VentilationLPerMin float64 `json:"ventilation_rate_l_per_min"`
	HeartRateBPM       float64 `json:"heart_rate_bpm"`
}

// seaLevelSaturation anchors the hypoxic-response curves so that the deficit
// is exactly zero at altitude zero.
var seaLevelSaturation = saturationAt(0)

// PressureAt returns the atmospheric pressure in kPa at the given altitude,
// using the standard barometric formula. Strictly decreasing in altitude.
func PressureAt(altitudeMeters float64) float64 {
	return SeaLevelPressureKPa * math.Pow(1-pressureLapse*altitudeMeters, pressureExponent)
}

// InspiredPO2 returns the partial pressure of oxygen in humidified inspired
// air, in kPa, for a given atmospheric pressure in kPa.
func InspiredPO2(pressureKPa float64) float64 {
	return (pressureKPa - waterVaporKPa) * fiO2
}

// saturation estimates arterial oxygen saturation in percent from an arterial
// PO2 in mmHg, using the Severinghaus approximation of the oxyhemoglobin
// dissociation curve. Monotone increasing, bounded to [0,100].
func saturation(paO2MmHg float64) float64 {
	if paO2MmHg <= 0 {
		return 0
	}
	s := 100 / (23400/(math.Pow(paO2MmHg, 3)+150*paO2MmHg) + 1)
	return math.Min(s, 100)
}

func saturationAt(altitudeMeters float64) float64 {
	piO2 := InspiredPO2(PressureAt(altitudeMeters))
	paO2MmHg := arterialFraction * piO2 / kPaPerMmHg
	return saturation(paO2MmHg)
}

// ProfileAt computes the full physiological profile at the given simulated
// altitude in meters. All outputs are continuous and monotone over the
// supported range: pressure and saturation fall with altitude, ventilation
// and heart rate rise with the saturation deficit.
func ProfileAt(altitudeMeters float64) Profile {
	pressure := PressureAt(altitudeMeters)
	piO2 := InspiredPO2(pressure)
	sat := saturationAt(altitudeMeters)

	deficit := math.Max(0, seaLevelSaturation-sat)
	ventilation := math.Min(BaselineVentilationLMin*(1+ventilationGain*deficit), maxVentilationLMin)
	heartRate := BaselineHeartRateBPM + heartRateGain*deficit

	return Profile{
		AltitudeMeters:     altitudeMeters,
		PressureKPa:        pressure,
		InspiredPO2KPa:     piO2,
		SaturationPercent:  sat,
		VentilationLPerMin: ventilation,
		HeartRateBPM:       heartRate,
	}
}
