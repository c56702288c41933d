package trace

import (
	"math"
	"testing"
)

func TestLevelTrace_Record_AppendsInOrder(t *testing.T) {
	lt := &LevelTrace{}
	lt.Record(0, 60)
	lt.Record(1.5, 57)
	lt.Record(2.0, 55)

	if lt.Len() != 3 {
		t.Fatalf("Len: got %d, want 3", lt.Len())
	}
	if lt.Points[1] != (LevelPoint{Time: 1.5, Level: 57}) {
		t.Errorf("point[1]: got %+v", lt.Points[1])
	}
}

func TestLevelTrace_Len_NilSafe(t *testing.T) {
	var lt *LevelTrace
	if lt.Len() != 0 {
		t.Errorf("nil trace Len: got %d, want 0", lt.Len())
	}
}

func TestSummarize_NilAndEmptyTraces(t *testing.T) {
	if s := Summarize(nil, 10); *s != (TraceSummary{}) {
		t.Errorf("nil trace summary: got %+v, want zero value", s)
	}
	if s := Summarize(&LevelTrace{}, 10); *s != (TraceSummary{}) {
		t.Errorf("empty trace summary: got %+v, want zero value", s)
	}
}

func TestSummarize_HandComputedIntegral(t *testing.T) {
	// Level 10 on [0,2), -5 on [2,3), 20 on [3,5] up to horizon 5.
	lt := &LevelTrace{}
	lt.Record(0, 10)
	lt.Record(2, -5)
	lt.Record(3, 20)

	s := Summarize(lt, 5)

	if s.Mutations != 2 {
		t.Errorf("mutations: got %d, want 2", s.Mutations)
	}
	if s.MinLevel != -5 || s.MaxLevel != 20 {
		t.Errorf("min/max: got %v/%v, want -5/20", s.MinLevel, s.MaxLevel)
	}
	// integral = 10*2 + (-5)*1 + 20*2 = 55 over 5 months
	if math.Abs(s.TimeWeightedMean-11) > 1e-12 {
		t.Errorf("time-weighted mean: got %v, want 11", s.TimeWeightedMean)
	}
	// one backlogged month out of five
	if math.Abs(s.BackloggedShare-0.2) > 1e-12 {
		t.Errorf("backlogged share: got %v, want 0.2", s.BackloggedShare)
	}
}

func TestSummarize_SinglePointSpansWholeHorizon(t *testing.T) {
	lt := &LevelTrace{}
	lt.Record(0, 60)

	s := Summarize(lt, 4)

	if s.Mutations != 0 {
		t.Errorf("mutations: got %d, want 0", s.Mutations)
	}
	if s.TimeWeightedMean != 60 {
		t.Errorf("time-weighted mean: got %v, want 60", s.TimeWeightedMean)
	}
	if s.BackloggedShare != 0 {
		t.Errorf("backlogged share: got %v, want 0", s.BackloggedShare)
	}
}
