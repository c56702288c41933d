package sim

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// CostConfig groups the cost parameters of the inventory policy.
type CostConfig struct {
	OrderSetup     float64 `yaml:"order_setup"`      // fixed cost per order placed
	OrderPerItem   float64 `yaml:"order_per_item"`   // variable cost per unit ordered
	HoldingPerItem float64 `yaml:"holding_per_item"` // cost per unit held, per month
	BacklogPerItem float64 `yaml:"backlog_per_item"` // cost per unit backlogged, per month
}

// DemandConfig groups the demand process parameters.
type DemandConfig struct {
	Sizes            []float64 `yaml:"sizes"`             // support of the demand size distribution
	Probs            []float64 `yaml:"probs"`             // weights, parallel to Sizes
	MeanInterarrival float64   `yaml:"mean_interarrival"` // exponential mean inter-demand time, months
	StartInventory   float64   `yaml:"start_inventory"`   // level at the start of every run
}

// ScenarioSpec is the top-level scenario configuration.
// Loaded from YAML via LoadScenario(path).
type ScenarioSpec struct {
	Costs        CostConfig   `yaml:"costs"`
	Demand       DemandConfig `yaml:"demand"`
	ReviewPeriod float64      `yaml:"review_period"` // months between inventory checks
}

// DefaultScenario returns the reference parameterization: demand sizes
// {1,2,3,4} with probabilities {1/6,1/3,1/3,1/6}, mean inter-demand time
// 0.1 months, 60 units of starting inventory, monthly reviews.
func DefaultScenario() ScenarioSpec {
	return ScenarioSpec{
		Costs: CostConfig{
			OrderSetup:     32,
			OrderPerItem:   3,
			HoldingPerItem: 1,
			BacklogPerItem: 5,
		},
		Demand: DemandConfig{
			Sizes:            []float64{1, 2, 3, 4},
			Probs:            []float64{1.0 / 6, 1.0 / 3, 1.0 / 3, 1.0 / 6},
			MeanInterarrival: 0.1,
			StartInventory:   60,
		},
		ReviewPeriod: 1.0,
	}
}

// LoadScenario reads a scenario YAML file on top of the default
// parameterization, so a file may override only the fields it names.
// Unknown fields are rejected.
func LoadScenario(path string) (*ScenarioSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	spec := DefaultScenario()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing scenario file %s: %w", path, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks the scenario before any simulation work begins.
func (s *ScenarioSpec) Validate() error {
	if err := validateFinitePositive("review_period", s.ReviewPeriod); err != nil {
		return err
	}
	if err := s.Costs.validate(); err != nil {
		return err
	}
	return s.Demand.validate()
}

func (c *CostConfig) validate() error {
	for _, f := range []struct {
		name string
		val  float64
	}{
		{"costs.order_setup", c.OrderSetup},
		{"costs.order_per_item", c.OrderPerItem},
		{"costs.holding_per_item", c.HoldingPerItem},
		{"costs.backlog_per_item", c.BacklogPerItem},
	} {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) || f.val < 0 {
			return fmt.Errorf("%w: %s must be finite and non-negative, got %v", ErrInvalidInput, f.name, f.val)
		}
	}
	return nil
}

func (d *DemandConfig) validate() error {
	if len(d.Sizes) == 0 {
		return fmt.Errorf("%w: demand.sizes must not be empty", ErrInvalidInput)
	}
	if len(d.Probs) != len(d.Sizes) {
		return fmt.Errorf("%w: demand.probs has %d entries, want %d to match demand.sizes",
			ErrInvalidInput, len(d.Probs), len(d.Sizes))
	}
	sum := 0.0
	for i, p := range d.Probs {
		if math.IsNaN(p) || p < 0 {
			return fmt.Errorf("%w: demand.probs[%d] must be non-negative, got %v", ErrInvalidInput, i, p)
		}
		sum += p
	}
	if sum <= 0 {
		return fmt.Errorf("%w: demand.probs must have a positive sum", ErrInvalidInput)
	}
	if err := validateFinitePositive("demand.mean_interarrival", d.MeanInterarrival); err != nil {
		return err
	}
	if math.IsNaN(d.StartInventory) || math.IsInf(d.StartInventory, 0) {
		return fmt.Errorf("%w: demand.start_inventory must be finite, got %v", ErrInvalidInput, d.StartInventory)
	}
	return nil
}

func validateFinitePositive(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) || val <= 0 {
		return fmt.Errorf("%w: %s must be finite and positive, got %v", ErrInvalidInput, name, val)
	}
	return nil
}
