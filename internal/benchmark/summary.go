package benchmark

import (
	"fmt"
	"time"
)

// Summary of a benchmark run. Time is the sum of search times, Elapsed the wall time.
type Summary struct {
	Positions int
	Failures  int
	Nodes     int64
	Time      time.Duration
	Elapsed   time.Duration
}

func (s *Summary) add(r *Result) {
	s.Positions++
	if !r.OK() {
		s.Failures++
	}
	s.Nodes += r.Nodes
	s.Time += r.Time
}

func (s *Summary) MeanTime() time.Duration {
	if s.Positions == 0 {
		return 0
	}
	return s.Time / time.Duration(s.Positions)
}

func (s *Summary) MeanNodes() float64 {
	if s.Positions == 0 {
		return 0
	}
	return float64(s.Nodes) / float64(s.Positions)
}

// KNodesPerSecond is measured against search time, so it does not grow with threads.
func (s *Summary) KNodesPerSecond() float64 {
	var seconds = s.Time.Seconds()
	if seconds == 0 {
		return 0
	}
	return float64(s.Nodes) / seconds / 1000
}

func (s Summary) String() string {
	return fmt.Sprintf("Positions %v Failures %v MeanTime %v MeanNodes %.1f KNPS %.1f Elapsed %v",
		s.Positions, s.Failures, s.MeanTime(), s.MeanNodes(), s.KNodesPerSecond(), s.Elapsed)
}
