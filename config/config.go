package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/maelcorre/gridcap/core/metrics"
	"github.com/maelcorre/gridcap/core/model"
	"github.com/maelcorre/gridcap/core/plan"
)

type Config struct {
	// LimitsPath points at an optional technical limits document. A
	// missing or malformed document falls back to built-in defaults and
	// is never an error.
	LimitsPath string         `json:"limits_path"`
	Plan       PlanConfig     `json:"plan"`
	Metrics    metrics.Config `json:"metrics"`
}

// PlanConfig describes the expansion scenario to solve.
type PlanConfig struct {
	Name       string            `json:"scenario"`
	DemandMW   float64           `json:"demand_mw"`
	Generators []GeneratorConfig `json:"generators"`
	Storage    []StorageConfig   `json:"storage"`
}

type GeneratorConfig struct {
	Carrier      string  `json:"carrier"`
	CapitalCost  float64 `json:"capital_cost"`
	Availability float64 `json:"availability"`
}

type StorageConfig struct {
	Carrier      string  `json:"carrier"`
	PowerCost    float64 `json:"power_cost"`
	EnergyCost   float64 `json:"energy_cost"`
	Contribution float64 `json:"contribution"`
	// Policy fields; both rules are optional.
	MinDurationHours     *float64 `json:"min_duration_hours"`
	DischargeChargeRatio *float64 `json:"discharge_charge_ratio"`
	RoundTripEfficiency  float64  `json:"round_trip_efficiency"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("GC_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "gc_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Plan.SetDefaults()
	if err := cfg.Plan.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
}

// SetDefaults applies sane defaults.
func (c *PlanConfig) SetDefaults() {
	if c.Name == "" {
		c.Name = "base"
	}
	for i := range c.Generators {
		if c.Generators[i].Availability == 0 {
			c.Generators[i].Availability = 1
		}
	}
	for i := range c.Storage {
		if c.Storage[i].Contribution == 0 {
			c.Storage[i].Contribution = 1
		}
		if c.Storage[i].RoundTripEfficiency == 0 {
			c.Storage[i].RoundTripEfficiency = 1
		}
	}
}

// Validate checks mandatory fields.
func (c PlanConfig) Validate() error {
	if c.DemandMW <= 0 {
		return fmt.Errorf("plan demand_mw must be positive, got %v", c.DemandMW)
	}
	if len(c.Generators) == 0 && len(c.Storage) == 0 {
		return fmt.Errorf("plan needs at least one technology")
	}
	for _, s := range c.Storage {
		if s.Carrier == "" {
			return fmt.Errorf("storage entry without carrier")
		}
		if err := s.policy().Validate(); err != nil {
			return fmt.Errorf("storage %s: %w", s.Carrier, err)
		}
	}
	for _, g := range c.Generators {
		if g.Carrier == "" {
			return fmt.Errorf("generator entry without carrier")
		}
	}
	return nil
}

func (s StorageConfig) policy() model.StoragePolicy {
	p := model.StoragePolicy{
		MinDurationHours:     s.MinDurationHours,
		DischargeChargeRatio: s.DischargeChargeRatio,
		RoundTripEfficiency:  s.RoundTripEfficiency,
	}
	p.SetDefaults()
	return p
}

// Scenario converts the validated plan configuration into the model types
// consumed by the builder.
func (c PlanConfig) Scenario() plan.Scenario {
	sc := plan.Scenario{Name: c.Name, DemandMW: c.DemandMW}
	for _, g := range c.Generators {
		sc.Generators = append(sc.Generators, model.GeneratorTech{
			Carrier:      g.Carrier,
			CapitalCost:  g.CapitalCost,
			Availability: g.Availability,
		})
	}
	for _, s := range c.Storage {
		sc.Storage = append(sc.Storage, model.StorageTech{
			Carrier:      s.Carrier,
			PowerCost:    s.PowerCost,
			EnergyCost:   s.EnergyCost,
			Contribution: s.Contribution,
			Policy:       s.policy(),
		})
	}
	return sc
}
