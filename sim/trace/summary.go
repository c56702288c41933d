package trace

// TraceSummary aggregates statistics from a LevelTrace.
type TraceSummary struct {
	Mutations        int     // level changes after the starting point
	MinLevel         float64
	MaxLevel         float64
	TimeWeightedMean float64 // integral of level over time, divided by duration
	BackloggedShare  float64 // fraction of time spent at level <= 0
}

// Summarize computes aggregate statistics over the traced interval up to
// horizon. The level is piecewise constant, so each point's level holds
// until the next point (or the horizon, for the last one). Safe for nil or
// empty traces (returns zero-value fields).
func Summarize(lt *LevelTrace, horizon float64) *TraceSummary {
	s := &TraceSummary{}
	if lt == nil || len(lt.Points) == 0 {
		return s
	}

	pts := lt.Points
	s.Mutations = len(pts) - 1
	s.MinLevel = pts[0].Level
	s.MaxLevel = pts[0].Level

	var integral, backlogged, total float64
	for i, p := range pts {
		if p.Level < s.MinLevel {
			s.MinLevel = p.Level
		}
		if p.Level > s.MaxLevel {
			s.MaxLevel = p.Level
		}
		end := horizon
		if i+1 < len(pts) {
			end = pts[i+1].Time
		}
		dt := end - p.Time
		if dt <= 0 {
			continue
		}
		integral += p.Level * dt
		if p.Level <= 0 {
			backlogged += dt
		}
		total += dt
	}
	if total > 0 {
		s.TimeWeightedMean = integral / total
		s.BackloggedShare = backlogged / total
	}
	return s
}
