package sim

import "testing"

func testStream(seed int64) *RandomStream {
	return NewRandomStream(NewSimulationKey(seed), ReplicationStream(0), DefaultScenario().Demand)
}

func TestReviewActivity_OrdersDeficitPlusOrderSize(t *testing.T) {
	// GIVEN a level of 10 at a reorder point of 20 with order size 40
	costs := DefaultScenario().Costs
	inv := NewInventoryState(10, 20, 40, false)
	sched := NewScheduler()
	sched.Spawn(&reviewActivity{inv: inv, costs: costs, rng: testStream(42), period: 1.0})

	// WHEN the first review fires but the order is still in transit
	// (lead times are at least 0.5)
	if err := sched.RunUntil(0.4); err != nil {
		t.Fatalf("RunUntil: %v", err)
	}

	// THEN 40 + 20 - 10 = 50 units were ordered and their cost booked at
	// placement time, while the level is untouched
	wantOrdering := 32 + 3*50.0
	if inv.OrderingCost != wantOrdering {
		t.Errorf("ordering cost: got %v, want %v", inv.OrderingCost, wantOrdering)
	}
	if inv.Level != 10 {
		t.Errorf("level before arrival: got %v, want 10", inv.Level)
	}
}

func TestReviewActivity_OrderArrivesBeforeNextReview(t *testing.T) {
	// GIVEN the same triggered order; lead times in [0.5, 1.0) always beat
	// the next monthly review
	costs := DefaultScenario().Costs
	inv := NewInventoryState(10, 20, 40, false)
	sched := NewScheduler()
	sched.Spawn(&reviewActivity{inv: inv, costs: costs, rng: testStream(42), period: 1.0})

	// WHEN the clock passes the second review
	if err := sched.RunUntil(1.4); err != nil {
		t.Fatalf("RunUntil: %v", err)
	}

	// THEN the order arrived, the second review saw 60 > 20 and placed
	// nothing further
	if inv.Level != 60 {
		t.Errorf("level after arrival: got %v, want 60", inv.Level)
	}
	if inv.OrderingCost != 32+3*50.0 {
		t.Errorf("ordering cost: got %v, want exactly one order booked", inv.OrderingCost)
	}
	if inv.ShortageCost != 0 {
		t.Errorf("shortage cost: got %v, want 0", inv.ShortageCost)
	}
	if inv.HoldingCost <= 0 {
		t.Errorf("holding cost: got %v, want positive accrual before arrival", inv.HoldingCost)
	}
}

func TestOrderActivities_OverlapIndependently(t *testing.T) {
	// GIVEN two orders placed at the same instant, both in flight at once
	costs := DefaultScenario().Costs
	inv := NewInventoryState(0, 0, 0, false)
	sched := NewScheduler()
	rng := testStream(42)
	sched.Spawn(&orderActivity{inv: inv, costs: costs, rng: rng, units: 10})
	sched.Spawn(&orderActivity{inv: inv, costs: costs, rng: rng, units: 20})

	// WHEN both lead times elapse
	if err := sched.RunUntil(2); err != nil {
		t.Fatalf("RunUntil: %v", err)
	}

	// THEN neither cancels or merges with the other: both setups are
	// booked and both quantities arrive
	if inv.OrderingCost != 2*32+3*30.0 {
		t.Errorf("ordering cost: got %v, want both orders booked", inv.OrderingCost)
	}
	if inv.Level != 30 {
		t.Errorf("level: got %v, want 30", inv.Level)
	}
}

func TestDemandActivity_ConsumesInventory(t *testing.T) {
	// GIVEN only the demand process running on a large stock
	costs := DefaultScenario().Costs
	inv := NewInventoryState(1000, 0, 0, false)
	sched := NewScheduler()
	sched.Spawn(&demandActivity{inv: inv, costs: costs, rng: testStream(42)})

	// WHEN a few months pass
	if err := sched.RunUntil(3); err != nil {
		t.Fatalf("RunUntil: %v", err)
	}

	// THEN demand arrivals have drawn the level down and holding cost has
	// accrued for every interval
	if inv.Level >= 1000 {
		t.Errorf("level: got %v, want below the starting 1000", inv.Level)
	}
	if inv.HoldingCost <= 0 {
		t.Errorf("holding cost: got %v, want positive", inv.HoldingCost)
	}
	if inv.LastChange <= 0 || inv.LastChange > 3 {
		t.Errorf("last change: got %v, want within (0, 3]", inv.LastChange)
	}
}
