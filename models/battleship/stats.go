package battleship

import (
	"math"

	"github.com/dariubs/percent"
)

type ShotStats struct {
	ShotsFired int `json:"shots_fired"`
	Hits       int `json:"hits"`
	Misses     int `json:"misses"`
}

func (s ShotStats) record(result AttackResult) ShotStats {
	s.ShotsFired++
	if result == AttackResultHit {
		s.Hits++
	} else {
		s.Misses++
	}
	return s
}

// Accuracy is the rounded hit percentage; 0 before the first shot.
func (s ShotStats) Accuracy() int {
	if s.ShotsFired == 0 {
		return 0
	}
	return int(math.Round(percent.PercentOf(s.Hits, s.ShotsFired)))
}
