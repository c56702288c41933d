// Package sim provides the discrete-event simulation core for a
// single-product, periodic-review inventory replenishment model.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - scheduler.go: the logical clock and the time-ordered resumption queue
//   - activity.go: the review, demand, and order-fulfillment activities
//   - simulation.go: one replication from input validation to averaged costs
//
// # Architecture
//
// The scheduler knows nothing about inventory; it resumes Activities in
// (due time, sequence number) order. The three activity types own all
// domain logic: they mutate a single InventoryState and accrue holding and
// shortage costs with a rectangle-rule integral anchored at the state's
// last mutation time. Sub-packages:
//   - sim/trace/: (time, level) history recording and summary statistics
//   - sim/optimize/: greedy stochastic local search over policy parameters
//
// ExperimentRunner sweeps a cross product of candidate parameters, running
// independent replications whose random streams are derived from a single
// master SimulationKey, so a fixed key reproduces every result bit for bit.
package sim
