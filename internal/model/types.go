// Package model defines shared data structures.
package model

import "time"

// Difficulty is the practice mode picked on the mode selection screen.
type Difficulty int

const (
	// Unselected means no mode has been picked yet.
	Unselected Difficulty = iota
	// Normal shows the expected answer as a hint and keeps the score on a miss.
	Normal
	// Hard hides the hint and resets the score on a miss.
	Hard
)

// String returns the display name of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	default:
		return "unselected"
	}
}

// Round captures one evaluated answer.
type Round struct {
	Player     string
	Difficulty Difficulty
	Style      string
	Phrase     string
	Expected   string
	Typed      string
	Correct    bool
	ScoreAfter int
	AnsweredAt time.Time
}

// Aggregated round stats for reporting.

// StyleAggregate aggregates rounds for one case style.
type StyleAggregate struct {
	Style     string
	Correct   int
	Incorrect int
}

// RunSummary summarizes every round of the current run.
type RunSummary struct {
	Rounds    int
	Correct   int
	BestScore int
	Scores    []int
	Styles    []StyleAggregate
}
