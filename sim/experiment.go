package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// progressEvery is the replication interval for progress notifications.
const progressEvery = 100

// ExperimentRunner sweeps candidate policy parameters, executing
// independent replications of the simulation for each. Every replication
// derives a fresh random stream from the runner's master key and a
// monotonically increasing replication counter, so a fixed key reproduces
// the full result sequence while no two replications share draws.
type ExperimentRunner struct {
	key      SimulationKey
	scenario ScenarioSpec
	horizon  float64 // horizon for single-replication objective evaluations
	reps     int     // replications executed so far, across all calls
}

// NewExperimentRunner creates a runner. horizon is the simulated duration
// used when the runner serves as an optimization objective via TotalCost.
func NewExperimentRunner(key SimulationKey, scenario ScenarioSpec, horizon float64) *ExperimentRunner {
	return &ExperimentRunner{key: key, scenario: scenario, horizon: horizon}
}

// replicate runs one replication on a freshly derived stream.
func (r *ExperimentRunner) replicate(horizon, reorderPoint, orderSize float64) (ExperimentResult, error) {
	s := NewSimulation(r.key, ReplicationStream(r.reps), r.scenario, Options{})
	r.reps++
	return s.Run(horizon, reorderPoint, orderSize)
}

// RunExperiments runs numRep replications for every (reorderPoint,
// orderSize) pair in the cross product of the candidate lists, in order,
// and returns one ExperimentResult per replication. Progress is logged
// every 100 completed replications. Inputs are validated before any
// simulation work; a failure in any inner run is propagated immediately.
func (r *ExperimentRunner) RunExperiments(horizon float64, reorderPoints, orderSizes []float64, numRep int) ([]ExperimentResult, error) {
	if horizon <= 0 {
		return nil, fmt.Errorf("%w: horizon must be positive, got %v", ErrInvalidInput, horizon)
	}
	if numRep <= 0 {
		return nil, fmt.Errorf("%w: replication count must be positive, got %d", ErrInvalidInput, numRep)
	}
	if len(reorderPoints) == 0 {
		return nil, fmt.Errorf("%w: empty reorder point candidate list", ErrInvalidInput)
	}
	if len(orderSizes) == 0 {
		return nil, fmt.Errorf("%w: empty order size candidate list", ErrInvalidInput)
	}

	total := len(reorderPoints) * len(orderSizes) * numRep
	results := make([]ExperimentResult, 0, total)
	for _, rp := range reorderPoints {
		for _, os := range orderSizes {
			for k := 0; k < numRep; k++ {
				res, err := r.replicate(horizon, rp, os)
				if err != nil {
					return nil, err
				}
				results = append(results, res)
				if len(results)%progressEvery == 0 {
					logrus.Infof("completed %d/%d replications", len(results), total)
				}
			}
		}
	}
	return results, nil
}

// TotalCost runs one fresh replication at the runner's horizon and returns
// its averaged total cost: one noisy observation of the objective for the
// local-search optimizer. It satisfies optimize.Evaluator.
func (r *ExperimentRunner) TotalCost(reorderPoint, orderSize float64) (float64, error) {
	res, err := r.replicate(r.horizon, reorderPoint, orderSize)
	if err != nil {
		return 0, err
	}
	return res.TotalCost, nil
}
