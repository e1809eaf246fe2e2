package stats

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/casedrill/internal/model"
	"github.com/verte-zerg/casedrill/internal/store"
)

func TestBuildReport(t *testing.T) {
	st, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	rounds := []struct {
		style   string
		correct bool
		score   int
	}{
		{"snake case", true, 1},
		{"camel case", true, 2},
		{"camel case", false, 0},
		{"kebab case", true, 1},
	}
	for i, r := range rounds {
		round := model.Round{
			Player:     "Al",
			Difficulty: model.Hard,
			Style:      r.style,
			Correct:    r.correct,
			ScoreAfter: r.score,
			AnsweredAt: time.Unix(0, 0).Add(time.Duration(i) * time.Minute),
		}
		if _, err := st.InsertRound(ctx, round); err != nil {
			t.Fatalf("insert round: %v", err)
		}
	}

	report, err := BuildReport(ctx, st)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if report.Rounds != 4 {
		t.Fatalf("expected 4 rounds, got %d", report.Rounds)
	}
	if report.Correct != 3 {
		t.Fatalf("expected 3 correct, got %d", report.Correct)
	}
	if report.BestScore != 2 {
		t.Fatalf("expected best score 2, got %d", report.BestScore)
	}
	if len(report.Styles) != 3 {
		t.Fatalf("expected 3 styles, got %d", len(report.Styles))
	}

	var buf bytes.Buffer
	if err := RenderSummary(&buf, report); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Rounds: 4", "Correct: 3", "Accuracy: 75.00%", "Best score: 2", "Per-Style", "Practice more: camel case"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, model.RunSummary{}); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	if buf.String() != "No rounds played.\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
