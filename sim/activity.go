package sim

import "github.com/sirupsen/logrus"

// reviewActivity checks the inventory level at a fixed period and places a
// replenishment order whenever the level has fallen to the reorder point.
// Long-lived: it reschedules itself on every resumption.
type reviewActivity struct {
	inv    *InventoryState
	costs  CostConfig
	rng    *RandomStream
	period float64
}

func (a *reviewActivity) Resume(sched *Scheduler) error {
	if a.inv.Level <= a.inv.ReorderPoint {
		units := a.inv.OrderSize + a.inv.ReorderPoint - a.inv.Level
		logrus.Debugf("[t=%08.4f] review: level %.2f at reorder point %.2f, ordering %.2f units",
			sched.Now(), a.inv.Level, a.inv.ReorderPoint, units)
		sched.Spawn(&orderActivity{inv: a.inv, costs: a.costs, rng: a.rng, units: units})
	}
	return sched.ScheduleTimeout(a, a.period)
}

// demandActivity draws exponentially distributed inter-demand times and a
// categorical demand size, consuming inventory on each arrival. The size
// is drawn together with the wait; pending holds it until the wait expires
// so that the elapsed interval's cost is accrued at the pre-arrival level.
type demandActivity struct {
	inv     *InventoryState
	costs   CostConfig
	rng     *RandomStream
	pending float64
	waiting bool
}

func (a *demandActivity) Resume(sched *Scheduler) error {
	if a.waiting {
		a.inv.Apply(sched.Now(), -a.pending, a.costs)
		logrus.Debugf("[t=%08.4f] demand: -%.0f units, level now %.2f",
			sched.Now(), a.pending, a.inv.Level)
	}
	iat := a.rng.Interarrival()
	a.pending = a.rng.DemandSize()
	a.waiting = true
	return sched.ScheduleTimeout(a, iat)
}

// orderActivity is an ephemeral activity covering one replenishment order
// from placement to arrival. The ordering cost is booked at placement
// time, not arrival. Several orders may be in flight at once; each runs to
// completion independently and cannot be cancelled or merged.
type orderActivity struct {
	inv    *InventoryState
	costs  CostConfig
	rng    *RandomStream
	units  float64
	placed bool
}

func (a *orderActivity) Resume(sched *Scheduler) error {
	if !a.placed {
		a.placed = true
		a.inv.OrderingCost += a.costs.OrderSetup + a.costs.OrderPerItem*a.units
		lead := a.rng.LeadTime()
		logrus.Debugf("[t=%08.4f] order placed: %.2f units, lead time %.4f",
			sched.Now(), a.units, lead)
		return sched.ScheduleTimeout(a, lead)
	}
	a.inv.Apply(sched.Now(), a.units, a.costs)
	logrus.Debugf("[t=%08.4f] order arrived: +%.2f units, level now %.2f",
		sched.Now(), a.units, a.inv.Level)
	return nil
}
