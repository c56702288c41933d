package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inventory-sim/inventory-sim/sim/trace"
)

// Options toggles optional per-run outputs.
type Options struct {
	RecordTrace bool // record the full (time, level) history
}

// Simulation executes one replication of the inventory policy model. Each
// Simulation owns an independent InventoryState, scheduler, and random
// stream; replications never share mutable state.
type Simulation struct {
	scenario ScenarioSpec
	rng      *RandomStream
	opts     Options
	inv      *InventoryState
}

// NewSimulation prepares a single replication drawing from the stream
// derived from (key, streamName).
func NewSimulation(key SimulationKey, streamName string, scenario ScenarioSpec, opts Options) *Simulation {
	return &Simulation{
		scenario: scenario,
		rng:      NewRandomStream(key, streamName, scenario.Demand),
		opts:     opts,
	}
}

// Run drives the model to the horizon and returns the averaged costs.
// A non-positive horizon or a negative order size is rejected before any
// simulation work happens. A negative reorder point is permitted; it
// models replenishment triggered only once demand is backlogged.
func (s *Simulation) Run(horizon, reorderPoint, orderSize float64) (ExperimentResult, error) {
	if horizon <= 0 {
		return ExperimentResult{}, fmt.Errorf("%w: horizon must be positive, got %v", ErrInvalidInput, horizon)
	}
	if orderSize < 0 {
		return ExperimentResult{}, fmt.Errorf("%w: order size must be non-negative, got %v", ErrInvalidInput, orderSize)
	}

	s.inv = NewInventoryState(s.scenario.Demand.StartInventory, reorderPoint, orderSize, s.opts.RecordTrace)
	sched := NewScheduler()
	sched.Spawn(&reviewActivity{inv: s.inv, costs: s.scenario.Costs, rng: s.rng, period: s.scenario.ReviewPeriod})
	sched.Spawn(&demandActivity{inv: s.inv, costs: s.scenario.Costs, rng: s.rng})

	if err := sched.RunUntil(horizon); err != nil {
		return ExperimentResult{}, err
	}

	res := newExperimentResult(s.inv, horizon)
	logrus.Debugf("run finished: rp=%.1f os=%.1f total=%.1f ordering=%.1f holding=%.1f shortage=%.1f",
		res.ReorderPoint, res.OrderSize, res.TotalCost, res.OrderingCost, res.HoldingCost, res.ShortageCost)
	return res, nil
}

// Trace returns the recorded level history, or nil when trace recording
// was not requested or Run has not been called.
func (s *Simulation) Trace() *trace.LevelTrace {
	if s.inv == nil {
		return nil
	}
	return s.inv.History
}
