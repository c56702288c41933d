package sim

import "math"

// ExperimentResult is the immutable cost summary of one replication:
// accumulated costs divided by the horizon, rounded to one decimal place.
type ExperimentResult struct {
	ReorderPoint float64
	OrderSize    float64
	TotalCost    float64
	OrderingCost float64
	HoldingCost  float64
	ShortageCost float64
}

// round1 rounds to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// newExperimentResult derives the averaged result from the accumulators of
// a finished run.
func newExperimentResult(inv *InventoryState, horizon float64) ExperimentResult {
	total := inv.OrderingCost + inv.HoldingCost + inv.ShortageCost
	return ExperimentResult{
		ReorderPoint: inv.ReorderPoint,
		OrderSize:    inv.OrderSize,
		TotalCost:    round1(total / horizon),
		OrderingCost: round1(inv.OrderingCost / horizon),
		HoldingCost:  round1(inv.HoldingCost / horizon),
		ShortageCost: round1(inv.ShortageCost / horizon),
	}
}
