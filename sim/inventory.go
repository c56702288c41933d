package sim

import "github.com/inventory-sim/inventory-sim/sim/trace"

// InventoryState holds the inventory level and cost accumulators for one
// replication. A negative level represents backlog. Exactly one activity
// touches the state at a time (resumption is strictly sequential), so no
// locking is needed within a run, and no state is ever shared across runs.
type InventoryState struct {
	Level        float64
	ReorderPoint float64
	OrderSize    float64
	LastChange   float64 // simulated time of the most recent Level mutation

	OrderingCost float64
	HoldingCost  float64
	ShortageCost float64

	History *trace.LevelTrace // nil unless trace recording was requested
}

func NewInventoryState(startLevel, reorderPoint, orderSize float64, recordTrace bool) *InventoryState {
	inv := &InventoryState{
		Level:        startLevel,
		ReorderPoint: reorderPoint,
		OrderSize:    orderSize,
	}
	if recordTrace {
		inv.History = &trace.LevelTrace{}
		inv.History.Record(0, startLevel)
	}
	return inv
}

// accrueCosts integrates holding or shortage cost over [LastChange, now] at
// the level that held throughout that interval. The level process is
// piecewise constant, so the rectangle rule is exact. This must run before
// every mutation of Level; skipping it for any transition loses that
// interval's cost irrecoverably.
func (inv *InventoryState) accrueCosts(now float64, costs CostConfig) {
	elapsed := now - inv.LastChange
	if inv.Level <= 0 {
		inv.ShortageCost += -inv.Level * costs.BacklogPerItem * elapsed
	} else {
		inv.HoldingCost += inv.Level * costs.HoldingPerItem * elapsed
	}
}

// Apply accrues the elapsed interval's holding or shortage cost, shifts
// Level by delta, and stamps the mutation time.
func (inv *InventoryState) Apply(now, delta float64, costs CostConfig) {
	inv.accrueCosts(now, costs)
	inv.Level += delta
	inv.LastChange = now
	if inv.History != nil {
		inv.History.Record(now, inv.Level)
	}
}
