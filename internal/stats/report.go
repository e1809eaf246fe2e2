package stats

import (
	"context"

	"github.com/verte-zerg/casedrill/internal/model"
	"github.com/verte-zerg/casedrill/internal/store"
)

// BuildReport loads the journal and prepares the run summary.
func BuildReport(ctx context.Context, st *store.Store) (model.RunSummary, error) {
	scores, err := st.ListScores(ctx)
	if err != nil {
		return model.RunSummary{}, err
	}
	styles, err := st.ListStyleAggregates(ctx)
	if err != nil {
		return model.RunSummary{}, err
	}

	summary := model.RunSummary{
		Rounds: len(scores),
		Scores: scores,
		Styles: styles,
	}
	for _, s := range scores {
		if s > summary.BestScore {
			summary.BestScore = s
		}
	}
	for _, agg := range styles {
		summary.Correct += agg.Correct
	}
	return summary, nil
}
