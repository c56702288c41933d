package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible set of simulation runs.
// Two runs with the same SimulationKey, stream name, and identical
// configuration MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Stream names ===

// StreamSearch is the derived stream for optimizer perturbations.
const StreamSearch = "search"

// ReplicationStream returns the stream name for replication N. Runners
// increment N across every replication they execute, so no two
// replications ever share a draw sequence.
func ReplicationStream(n int) string {
	return fmt.Sprintf("replication_%d", n)
}

// DeriveSeed returns the seed for the named stream: the master key XORed
// with a 64-bit FNV-1a hash of the stream name. Distinct names yield
// decorrelated draw sequences; the same (key, name) pair is stable.
func DeriveSeed(key SimulationKey, name string) uint64 {
	return uint64(int64(key) ^ fnv1a64(name))
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// === RandomStream ===

// Replenishment lead times are uniform on [0.5, 1.0) months.
const (
	leadTimeMin = 0.5
	leadTimeMax = 1.0
)

// RandomStream supplies every stochastic draw for one simulation run:
// exponential inter-demand times, categorical demand sizes, and uniform
// replenishment lead times. All three distributions share one underlying
// source, so a run consumes a single conceptual stream.
//
// Thread-safety: NOT thread-safe. Must be used from a single goroutine.
type RandomStream struct {
	interarrival distuv.Exponential
	demandSize   distuv.Categorical
	sizes        []float64
	leadTime     distuv.Uniform
}

// NewRandomStream derives an independent stream for the named run from the
// master key and the demand process parameters.
func NewRandomStream(key SimulationKey, name string, demand DemandConfig) *RandomStream {
	seed := DeriveSeed(key, name)
	src := rand.NewPCG(seed, seed)
	return &RandomStream{
		interarrival: distuv.Exponential{Rate: 1 / demand.MeanInterarrival, Src: src},
		demandSize:   distuv.NewCategorical(demand.Probs, src),
		sizes:        demand.Sizes,
		leadTime:     distuv.Uniform{Min: leadTimeMin, Max: leadTimeMax, Src: src},
	}
}

// Interarrival draws the next inter-demand time.
func (rs *RandomStream) Interarrival() float64 {
	return rs.interarrival.Rand()
}

// DemandSize draws one demand size from the configured discrete
// distribution.
func (rs *RandomStream) DemandSize() float64 {
	return rs.sizes[int(rs.demandSize.Rand())]
}

// LeadTime draws a replenishment lead time.
func (rs *RandomStream) LeadTime() float64 {
	return rs.leadTime.Rand()
}
