package derive

import vo "repairsync/internal/domain/lifecycle/valueobjects"

const (
	qualityBaseline         = 5.0
	reworkPenalty           = 2.0
	repeatedReworkPenalty   = 1.0
)

// QualityScore derives the heuristic quality score: baseline 5.0, minus 2.0
// for any rework, minus a further 1.0 for repeated rework, floored at 0.
func QualityScore(rework vo.ReworkInfo) float64 {
	score := qualityBaseline
	if rework.IsRework {
		score -= reworkPenalty
	}
	if rework.Count > 1 {
		score -= repeatedReworkPenalty
	}
	if score < 0 {
		score = 0
	}
	return score
}
