// Package optimize searches for low-cost inventory policy parameters,
// treating the simulator as a noisy black-box objective.
package optimize

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/inventory-sim/inventory-sim/sim"
)

// Evaluator produces one noisy observation of the objective at a candidate
// point. sim.ExperimentRunner satisfies it with a fresh replication per
// call.
type Evaluator interface {
	TotalCost(reorderPoint, orderSize float64) (float64, error)
}

// Bounds is a closed interval a coordinate is clamped into.
type Bounds struct {
	Min, Max float64
}

func (b Bounds) clamp(x float64) float64 {
	return math.Max(b.Min, math.Min(x, b.Max))
}

var (
	// ReorderPointBounds is the search box for the reorder point.
	ReorderPointBounds = Bounds{Min: 0, Max: 100}
	// OrderSizeBounds is the search box for the order size.
	OrderSizeBounds = Bounds{Min: 5, Max: 100}
)

// maxStep is the half-width of the uniform perturbation applied to each
// coordinate when generating a neighbor.
const maxStep = 20.0

// Point is a candidate (reorder point, order size) pair.
type Point struct {
	ReorderPoint float64
	OrderSize    float64
}

// LocalSearch is a greedy stochastic hill-climber over the two policy
// parameters. Path holds the accepted points in order, beginning with the
// start point; Cost holds their averaged total costs in parallel.
//
// The incumbent's cost is never re-sampled at comparison time and
// non-improving candidates are never accepted, so the search is sensitive
// to sampling noise and can settle on a spurious local optimum. That
// fragility is preserved deliberately.
type LocalSearch struct {
	Path []Point
	Cost []float64

	eval Evaluator
	rng  *rand.Rand
	runs int
}

// Run performs an n-step greedy search from start: one initial evaluation
// plus n-1 neighbor steps, each scored by averaging runs fresh
// replications. Candidates are perturbations of the current point, clamped
// into the box bounds; a candidate is accepted only if its average cost is
// strictly below the best seen so far.
func Run(eval Evaluator, start Point, n, runs int, seed uint64) (*LocalSearch, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: step count must be positive, got %d", sim.ErrInvalidInput, n)
	}
	if runs <= 0 {
		return nil, fmt.Errorf("%w: replications per evaluation must be positive, got %d", sim.ErrInvalidInput, runs)
	}

	ls := &LocalSearch{
		eval: eval,
		rng:  rand.New(rand.NewPCG(seed, seed)),
		runs: runs,
	}

	best, err := ls.evaluate(start)
	if err != nil {
		return nil, err
	}
	ls.Path = append(ls.Path, start)
	ls.Cost = append(ls.Cost, best)
	logrus.Infof("local search start (%.2f, %.2f) at cost %.2f", start.ReorderPoint, start.OrderSize, best)

	current := start
	for i := 1; i < n; i++ {
		cand := ls.neighbor(current)
		val, err := ls.evaluate(cand)
		if err != nil {
			return nil, err
		}
		if val < best {
			best = val
			current = cand
			ls.Path = append(ls.Path, cand)
			ls.Cost = append(ls.Cost, val)
			logrus.Infof("step %d: accepted (%.2f, %.2f) at cost %.2f", i, cand.ReorderPoint, cand.OrderSize, val)
		} else {
			logrus.Debugf("step %d: rejected (%.2f, %.2f) at cost %.2f, best %.2f", i, cand.ReorderPoint, cand.OrderSize, val, best)
		}
	}
	return ls, nil
}

// Best returns the last accepted point and its cost.
func (ls *LocalSearch) Best() (Point, float64) {
	last := len(ls.Path) - 1
	return ls.Path[last], ls.Cost[last]
}

// evaluate scores a point by averaging runs independent replications.
func (ls *LocalSearch) evaluate(p Point) (float64, error) {
	vals := make([]float64, ls.runs)
	for j := range vals {
		c, err := ls.eval.TotalCost(p.ReorderPoint, p.OrderSize)
		if err != nil {
			return 0, err
		}
		vals[j] = c
	}
	return stat.Mean(vals, nil), nil
}

// neighbor perturbs each coordinate by an independent uniform draw in
// [-maxStep, maxStep], then clamps into the box bounds.
func (ls *LocalSearch) neighbor(p Point) Point {
	return Point{
		ReorderPoint: ReorderPointBounds.clamp(p.ReorderPoint + ls.uniformStep()),
		OrderSize:    OrderSizeBounds.clamp(p.OrderSize + ls.uniformStep()),
	}
}

func (ls *LocalSearch) uniformStep() float64 {
	return -maxStep + 2*maxStep*ls.rng.Float64()
}
