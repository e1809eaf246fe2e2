package stats

import (
	"sort"

	"github.com/verte-zerg/casedrill/internal/model"
)

// WeakestStyle selects the lowest-accuracy style that was missed at least once.
func WeakestStyle(aggs []model.StyleAggregate) (string, bool) {
	candidates := make([]model.StyleAggregate, 0, len(aggs))
	for _, agg := range aggs {
		if agg.Incorrect > 0 {
			candidates = append(candidates, agg)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	sort.Slice(candidates, func(i, j int) bool {
		ai := Accuracy(candidates[i].Correct, candidates[i].Incorrect)
		aj := Accuracy(candidates[j].Correct, candidates[j].Incorrect)
		if ai == aj {
			return candidates[i].Style < candidates[j].Style
		}
		return ai < aj
	})
	return candidates[0].Style, true
}
