// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/verte-zerg/casedrill/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Accuracy returns the share of correct answers, or 0 with no answers.
func Accuracy(correct, incorrect int) float64 {
	den := float64(correct + incorrect)
	if den <= 0 {
		return 0
	}
	return float64(correct) / den
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []int) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == minVal {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := float64(v-minVal) / float64(maxVal-minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints the end-of-run summary.
func RenderSummary(w io.Writer, summary model.RunSummary) error {
	if summary.Rounds == 0 {
		_, err := fmt.Fprintln(w, "No rounds played.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Rounds: %d\n", summary.Rounds); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Correct: %d\n", summary.Correct); err != nil {
		return err
	}
	acc := Accuracy(summary.Correct, summary.Rounds-summary.Correct)
	if _, err := fmt.Fprintf(w, "Accuracy: %.2f%%\n", acc*100); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best score: %d\n", summary.BestScore); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Score trend: [%s]\n", Sparkline(summary.Scores)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return RenderStyleTable(w, summary.Styles)
}

// RenderStyleTable prints per-style aggregates, weakest first.
func RenderStyleTable(w io.Writer, aggs []model.StyleAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No style stats found.")
		return err
	}
	rows := make([]model.StyleAggregate, len(aggs))
	copy(rows, aggs)
	sort.Slice(rows, func(i, j int) bool {
		ai := Accuracy(rows[i].Correct, rows[i].Incorrect)
		aj := Accuracy(rows[j].Correct, rows[j].Incorrect)
		if ai == aj {
			return rows[i].Style < rows[j].Style
		}
		return ai < aj
	})

	if _, err := fmt.Fprintln(w, "Per-Style"); err != nil {
		return err
	}
	tableRows := make([]styleRow, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, newStyleRow(r))
	}
	for _, line := range formatStyleTable(tableRows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if weakest, ok := WeakestStyle(aggs); ok {
		if _, err := fmt.Fprintf(w, "\nPractice more: %s\n", weakest); err != nil {
			return err
		}
	}
	return nil
}
