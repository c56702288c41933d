package sim

import "testing"

func TestInventoryState_Apply_HoldingCostExact(t *testing.T) {
	// GIVEN a level held constant at 10 for 3.5 months
	costs := CostConfig{HoldingPerItem: 1, BacklogPerItem: 5}
	inv := NewInventoryState(10, 0, 0, false)

	// WHEN a mutation arrives at t=3.5
	inv.Apply(3.5, -2, costs)

	// THEN holding cost is exactly level * rate * elapsed
	if inv.HoldingCost != 10*1*3.5 {
		t.Errorf("holding cost: got %v, want 35", inv.HoldingCost)
	}
	if inv.ShortageCost != 0 {
		t.Errorf("shortage cost: got %v, want 0", inv.ShortageCost)
	}
	if inv.Level != 8 {
		t.Errorf("level: got %v, want 8", inv.Level)
	}
	if inv.LastChange != 3.5 {
		t.Errorf("last change: got %v, want 3.5", inv.LastChange)
	}
}

func TestInventoryState_Apply_ShortageCostExact(t *testing.T) {
	// GIVEN a backlog of 4 units held for 2 months
	costs := CostConfig{HoldingPerItem: 1, BacklogPerItem: 5}
	inv := NewInventoryState(-4, 0, 0, false)

	// WHEN a replenishment arrives at t=2
	inv.Apply(2, 10, costs)

	// THEN shortage cost is exactly |level| * rate * elapsed
	if inv.ShortageCost != 4*5*2 {
		t.Errorf("shortage cost: got %v, want 40", inv.ShortageCost)
	}
	if inv.HoldingCost != 0 {
		t.Errorf("holding cost: got %v, want 0", inv.HoldingCost)
	}
	if inv.Level != 6 {
		t.Errorf("level: got %v, want 6", inv.Level)
	}
}

func TestInventoryState_Apply_ZeroLevelAccruesAsShortage(t *testing.T) {
	// GIVEN a level of exactly zero
	costs := CostConfig{HoldingPerItem: 1, BacklogPerItem: 5}
	inv := NewInventoryState(0, 0, 0, false)

	// WHEN time passes before the next mutation
	inv.Apply(4, -1, costs)

	// THEN the interval is costed on the shortage branch, contributing zero
	if inv.ShortageCost != 0 {
		t.Errorf("shortage cost at zero level: got %v, want 0", inv.ShortageCost)
	}
	if inv.HoldingCost != 0 {
		t.Errorf("holding cost at zero level: got %v, want 0", inv.HoldingCost)
	}
}

func TestInventoryState_Accumulators_MonotonicallyNonDecreasing(t *testing.T) {
	costs := CostConfig{HoldingPerItem: 1, BacklogPerItem: 5}
	inv := NewInventoryState(3, 0, 0, false)

	times := []float64{0.5, 1.25, 2.0, 3.75, 5.0}
	deltas := []float64{-2, -2, -3, 6, -1}
	prevHolding, prevShortage := 0.0, 0.0
	for i := range times {
		inv.Apply(times[i], deltas[i], costs)
		if inv.HoldingCost < prevHolding {
			t.Fatalf("holding cost decreased at step %d: %v -> %v", i, prevHolding, inv.HoldingCost)
		}
		if inv.ShortageCost < prevShortage {
			t.Fatalf("shortage cost decreased at step %d: %v -> %v", i, prevShortage, inv.ShortageCost)
		}
		prevHolding, prevShortage = inv.HoldingCost, inv.ShortageCost
	}
}

func TestInventoryState_History_RecordedOnlyWhenRequested(t *testing.T) {
	costs := CostConfig{HoldingPerItem: 1, BacklogPerItem: 5}

	bare := NewInventoryState(60, 20, 40, false)
	bare.Apply(1, -3, costs)
	if bare.History != nil {
		t.Error("history recorded without trace option")
	}

	traced := NewInventoryState(60, 20, 40, true)
	traced.Apply(1, -3, costs)
	traced.Apply(2.5, -4, costs)
	pts := traced.History.Points
	if len(pts) != 3 {
		t.Fatalf("trace points: got %d, want 3", len(pts))
	}
	if pts[0].Time != 0 || pts[0].Level != 60 {
		t.Errorf("trace start: got %+v, want (0, 60)", pts[0])
	}
	if pts[2].Time != 2.5 || pts[2].Level != 53 {
		t.Errorf("trace end: got %+v, want (2.5, 53)", pts[2])
	}
}
