package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/strikerdlm/BudgetNormobaricHypox/internal/budget"
	"gopkg.in/yaml.v3"
)

// Config holds the default parameter set and serving options. It only
// supplies defaults: every calculation still receives an explicit parameter
// record, so repeated or concurrent estimates cannot interfere.
type Config struct {
	Server  ServerConfig        `yaml:"server"`
	Program ProgramConfig       `yaml:"program"`
	Prices  budget.GasPrices    `yaml:"prices"`
	Mixing  budget.MixingPolicy `yaml:"mixing"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type ProgramConfig struct {
	StudentsPerWeek       int     `yaml:"students_per_week"`
	Weeks                 int     `yaml:"weeks"`
	SessionDurationMin    float64 `yaml:"session_duration_minutes"`
	RecoveryDurationMin   float64 `yaml:"recovery_duration_minutes"`
	AltitudeMeters        float64 `yaml:"simulated_altitude_meters"`
	DurationAtAltitudeMin float64 `yaml:"duration_at_altitude_minutes"`
	ContingencyPercent    float64 `yaml:"contingency_percent"`
}

// Default returns the built-in defaults: the standard 26-week program at
// 7620 m (25,000 ft) with Colombian gas prices in COP per m³.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: 8080},
		Program: ProgramConfig{
			StudentsPerWeek:       20,
			Weeks:                 26,
			SessionDurationMin:    20,
			RecoveryDurationMin:   5,
			AltitudeMeters:        7620,
			DurationAtAltitudeMin: 20,
			ContingencyPercent:    10,
		},
		Prices: budget.GasPrices{Air: 17853, Nitrogen: 17838, Oxygen: 19654},
		Mixing: budget.DefaultMixingPolicy,
	}
}

// Load reads config from a YAML file layered over the built-in defaults,
// then applies environment variable overrides. Env vars use the prefix
// HYPOXBUDGET_ and underscore-separated paths:
//
//	HYPOXBUDGET_SERVER_HOST, HYPOXBUDGET_SERVER_PORT,
//	HYPOXBUDGET_PRICE_AIR, HYPOXBUDGET_PRICE_NITROGEN, HYPOXBUDGET_PRICE_OXYGEN
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HYPOXBUDGET_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("HYPOXBUDGET_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("HYPOXBUDGET_PRICE_AIR"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Prices.Air = price
		}
	}
	if v := os.Getenv("HYPOXBUDGET_PRICE_NITROGEN"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Prices.Nitrogen = price
		}
	}
	if v := os.Getenv("HYPOXBUDGET_PRICE_OXYGEN"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Prices.Oxygen = price
		}
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("program defaults: %w", err)
	}
	if err := c.Mixing.Validate(); err != nil {
		return fmt.Errorf("mixing policy: %w", err)
	}
	return nil
}

// Params assembles the default TrainingParameters record from the config.
func (c *Config) Params() budget.TrainingParameters {
	return budget.TrainingParameters{
		StudentsPerWeek:       c.Program.StudentsPerWeek,
		Weeks:                 c.Program.Weeks,
		SessionDurationMin:    c.Program.SessionDurationMin,
		RecoveryDurationMin:   c.Program.RecoveryDurationMin,
		AltitudeMeters:        c.Program.AltitudeMeters,
		DurationAtAltitudeMin: c.Program.DurationAtAltitudeMin,
		Prices:                c.Prices,
		ContingencyPercent:    c.Program.ContingencyPercent,
	}
}
