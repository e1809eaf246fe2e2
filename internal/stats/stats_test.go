package stats

import (
	"testing"

	"github.com/verte-zerg/casedrill/internal/model"
)

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
	if got := Sparkline([]int{3, 3, 3}); got != "+++" {
		t.Fatalf("expected flat sparkline, got %q", got)
	}
	got := Sparkline([]int{0, 9})
	if got != " @" {
		t.Fatalf("expected min and max glyphs, got %q", got)
	}
}

func TestAccuracy(t *testing.T) {
	if got := Accuracy(0, 0); got != 0 {
		t.Fatalf("expected 0 accuracy with no answers, got %v", got)
	}
	if got := Accuracy(3, 1); got != 0.75 {
		t.Fatalf("expected 0.75, got %v", got)
	}
}

func TestWeakestStyle(t *testing.T) {
	aggs := []model.StyleAggregate{
		{Style: "snake case", Correct: 3, Incorrect: 1},
		{Style: "camel case", Correct: 1, Incorrect: 1},
		{Style: "kebab case", Correct: 0, Incorrect: 0},
		{Style: "pascal case", Correct: 1, Incorrect: 1},
	}
	got, ok := WeakestStyle(aggs)
	if !ok || got != "camel case" {
		t.Fatalf("expected camel case, got %q (%v)", got, ok)
	}
	if _, ok := WeakestStyle([]model.StyleAggregate{{Style: "snake case", Correct: 2}}); ok {
		t.Fatalf("expected no weak style when nothing was missed")
	}
}
