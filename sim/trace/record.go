// Package trace records the inventory level history of a simulation run
// for downstream reporting and charting layers.
package trace

// LevelPoint is one observation of the inventory level.
type LevelPoint struct {
	Time  float64
	Level float64
}

// LevelTrace is the ordered (time, level) history of one replication:
// the starting level at time zero followed by one point per mutation.
type LevelTrace struct {
	Points []LevelPoint
}

// Record appends an observation. Callers append in non-decreasing time
// order; the trace does not reorder.
func (lt *LevelTrace) Record(time, level float64) {
	lt.Points = append(lt.Points, LevelPoint{Time: time, Level: level})
}

// Len returns the number of recorded points.
func (lt *LevelTrace) Len() int {
	if lt == nil {
		return 0
	}
	return len(lt.Points)
}
