package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
server:
  host: "0.0.0.0"
  port: 9090
program:
  students_per_week: 12
  weeks: 8
  session_duration_minutes: 30
  recovery_duration_minutes: 10
  simulated_altitude_meters: 5500
  duration_at_altitude_minutes: 25
  contingency_percent: 15
prices:
  air: 0.10
  nitrogen: 0.50
  oxygen: 1.20
mixing:
  nitrogen_top_up_fraction: 0.08
  recovery_oxygen_fraction: 1.0
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestDefaultValid verifies the built-in defaults pass validation, since they
// are used whenever no config file is given.
func TestDefaultValid(t *testing.T) {
	if err := Default().validate(); err != nil {
		t.Errorf("built-in defaults invalid: %v", err)
	}
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields
// populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Program.StudentsPerWeek != 12 {
		t.Errorf("program.students_per_week = %d, want 12", cfg.Program.StudentsPerWeek)
	}
	if cfg.Program.AltitudeMeters != 5500 {
		t.Errorf("program.simulated_altitude_meters = %g, want 5500", cfg.Program.AltitudeMeters)
	}
	if cfg.Prices.Oxygen != 1.20 {
		t.Errorf("prices.oxygen = %g, want 1.20", cfg.Prices.Oxygen)
	}
	if cfg.Mixing.NitrogenTopUpFraction != 0.08 {
		t.Errorf("mixing.nitrogen_top_up_fraction = %g, want 0.08", cfg.Mixing.NitrogenTopUpFraction)
	}
}

// TestLoadPartialKeepsDefaults verifies that keys absent from the YAML keep
// their built-in default values.
func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeTemp(t, "program:\n  weeks: 12\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Program.Weeks != 12 {
		t.Errorf("program.weeks = %d, want 12", cfg.Program.Weeks)
	}
	if cfg.Program.StudentsPerWeek != 20 {
		t.Errorf("program.students_per_week = %d, want default 20", cfg.Program.StudentsPerWeek)
	}
	if cfg.Prices.Air != 17853 {
		t.Errorf("prices.air = %g, want default 17853", cfg.Prices.Air)
	}
}

// TestEnvOverride verifies that HYPOXBUDGET_ env vars take precedence over
// YAML values, so deployments can override prices without editing the file.
func TestEnvOverride(t *testing.T) {
	t.Setenv("HYPOXBUDGET_SERVER_PORT", "7777")
	t.Setenv("HYPOXBUDGET_PRICE_AIR", "0.42")
	t.Setenv("HYPOXBUDGET_PRICE_OXYGEN", "2.50")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 7777 {
		t.Errorf("server.port = %d, want 7777", cfg.Server.Port)
	}
	if cfg.Prices.Air != 0.42 {
		t.Errorf("prices.air = %g, want 0.42", cfg.Prices.Air)
	}
	if cfg.Prices.Oxygen != 2.50 {
		t.Errorf("prices.oxygen = %g, want 2.50", cfg.Prices.Oxygen)
	}
	// Unchanged fields keep YAML values
	if cfg.Prices.Nitrogen != 0.50 {
		t.Errorf("prices.nitrogen = %g, want 0.50", cfg.Prices.Nitrogen)
	}
}

// TestValidationBadProgram verifies that explicit invalid program defaults in
// the file are rejected at load time, not at first calculation.
func TestValidationBadProgram(t *testing.T) {
	_, err := Load(writeTemp(t, "program:\n  weeks: 0\n"))
	if err == nil {
		t.Fatal("expected validation error for weeks: 0")
	}
}

// TestLoadMissingFile verifies a missing config path surfaces a clear error.
func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

// TestParamsConversion verifies the Config-to-TrainingParameters assembly so
// every surface receives an explicit record instead of reading config state.
func TestParamsConversion(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := cfg.Params()
	if p.StudentsPerWeek != 12 || p.Weeks != 8 {
		t.Errorf("schedule = %d students, %d weeks, want 12 and 8", p.StudentsPerWeek, p.Weeks)
	}
	if p.AltitudeMeters != 5500 || p.DurationAtAltitudeMin != 25 {
		t.Errorf("altitude = %g m for %g min, want 5500 and 25", p.AltitudeMeters, p.DurationAtAltitudeMin)
	}
	if p.Prices != cfg.Prices {
		t.Errorf("prices = %+v, want %+v", p.Prices, cfg.Prices)
	}
	if p.ContingencyPercent != 15 {
		t.Errorf("contingency = %g, want 15", p.ContingencyPercent)
	}
}
