package render

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/casedrill/internal/casing"
	"github.com/verte-zerg/casedrill/internal/game"
	"github.com/verte-zerg/casedrill/internal/generator"
	"github.com/verte-zerg/casedrill/internal/model"
)

func challenge() generator.Challenge {
	style, _ := casing.Lookup("snake case")
	return generator.NewChallenge([]string{"create", "read"}, style)
}

func practiceState(d model.Difficulty, typed string) game.State {
	return game.State{
		Phase:      game.Practicing,
		Name:       "Al",
		Difficulty: d,
		Score:      3,
		Challenge:  challenge(),
		Typed:      typed,
	}
}

func TestFullRenderIsIdempotent(t *testing.T) {
	states := []game.State{
		{Phase: game.EnteringName, Name: "Al"},
		{Phase: game.SelectingMode, Name: "Al"},
		practiceState(model.Normal, "create_"),
		practiceState(model.Hard, "create_"),
		{Phase: game.AwaitingAcknowledgment, Feedback: game.Feedback{Outcome: game.Lost}},
		{Phase: game.ScoreResetNotice},
	}
	for _, st := range states {
		first := Text(Full(st, 80))
		second := Text(Full(st, 80))
		if first != second {
			t.Fatalf("%s: render differs between calls", st.Phase)
		}
		if first == "" {
			t.Fatalf("%s: empty render", st.Phase)
		}
	}
}

func TestInputLineMatchesFullRow(t *testing.T) {
	states := []game.State{
		{Phase: game.EnteringName},
		{Phase: game.EnteringName, Name: "Al"},
		practiceState(model.Normal, ""),
		practiceState(model.Normal, "create_read"),
		practiceState(model.Hard, "create_read"),
	}
	for _, width := range []int{0, 80, 12} {
		for _, st := range states {
			row, ok := InputRow(st)
			if !ok {
				t.Fatalf("%s: expected an input row", st.Phase)
			}
			lines := Full(st, width)
			if lines[row] != InputLine(st, width) {
				t.Fatalf("%s/%d: row %d is %q, input line is %q", st.Phase, width, row, lines[row], InputLine(st, width))
			}
		}
	}
}

func TestInputRowIndependentOfContent(t *testing.T) {
	short, _ := InputRow(practiceState(model.Normal, ""))
	long, _ := InputRow(practiceState(model.Normal, strings.Repeat("x", 500)))
	if short != long {
		t.Fatalf("input row moved with content: %d vs %d", short, long)
	}
	hard, _ := InputRow(practiceState(model.Hard, ""))
	if hard != short-2 {
		t.Fatalf("expected hard row two above normal row, got %d and %d", hard, short)
	}
	for _, p := range []game.Phase{game.SelectingMode, game.AwaitingAcknowledgment, game.ScoreResetNotice} {
		if _, ok := InputRow(game.State{Phase: p}); ok {
			t.Fatalf("%s: expected no input row", p)
		}
	}
}

func TestHintOnlyInNormalMode(t *testing.T) {
	normal := Text(Full(practiceState(model.Normal, ""), 0))
	if !strings.Contains(normal, "Hint:   create_read") {
		t.Fatalf("expected hint in normal mode:\n%s", normal)
	}
	hard := Text(Full(practiceState(model.Hard, ""), 0))
	if strings.Contains(hard, "Hint:") || strings.Contains(hard, "create_read") {
		t.Fatalf("hard mode must not reveal the answer:\n%s", hard)
	}
	if !containsAll(hard, []string{"Words:  create read", "Task:   Convert to snake case", "Score: 3"}) {
		t.Fatalf("practice screen missing content:\n%s", hard)
	}
}

func TestLegendPerPhase(t *testing.T) {
	name := Text(Full(game.State{Phase: game.EnteringName}, 0))
	if !strings.Contains(name, "Ctrl+Q - Quit") || strings.Contains(name, "Ctrl+S") {
		t.Fatalf("unexpected name legend:\n%s", name)
	}
	mode := Text(Full(game.State{Phase: game.SelectingMode, Name: "Al"}, 0))
	if !containsAll(mode, []string{"Hello, Al!", "1. Normal (with hint)", "2. Hard", "Ctrl+S - Restart | Ctrl+Q - Quit"}) {
		t.Fatalf("unexpected mode screen:\n%s", mode)
	}
	if strings.Contains(mode, "Ctrl+R") {
		t.Fatalf("mode screen must not offer score reset:\n%s", mode)
	}
	practice := Text(Full(practiceState(model.Hard, ""), 0))
	if !strings.Contains(practice, "Ctrl+R - Reset Score | Ctrl+S - Restart | Ctrl+Q - Quit") {
		t.Fatalf("unexpected practice legend:\n%s", practice)
	}
}

func TestFeedbackBanners(t *testing.T) {
	cases := []struct {
		outcome game.Outcome
		want    []string
	}{
		{game.Correct, []string{"✓ CORRECT!", "Score: 4"}},
		{game.Wrong, []string{"✗ Wrong", "Score: 4"}},
		{game.Lost, []string{"✗ YOU LOSE!", "Score reset to 0"}},
	}
	for _, tc := range cases {
		st := game.State{
			Phase: game.AwaitingAcknowledgment,
			Feedback: game.Feedback{
				Outcome:  tc.outcome,
				Style:    "snake case",
				Expected: "create_read",
				Typed:    " createRead",
				Score:    4,
			},
		}
		out := Text(Full(st, 0))
		want := append(tc.want, "Style:      snake case", "Answer:     create_read", "You typed:   createRead", "Press Enter to continue...")
		if !containsAll(out, want) {
			t.Fatalf("feedback screen missing content:\n%s", out)
		}
	}
}

func TestScoreResetNotice(t *testing.T) {
	out := Text(Full(game.State{Phase: game.ScoreResetNotice}, 0))
	if !containsAll(out, []string{"Score reset to 0!", "Press any key to continue..."}) {
		t.Fatalf("unexpected notice:\n%s", out)
	}
}

func TestTruncateKeepsLinesWithinWidth(t *testing.T) {
	st := practiceState(model.Hard, strings.Repeat("a", 200))
	line := InputLine(st, 20)
	if w := runewidth.StringWidth(line); w > 20 {
		t.Fatalf("expected width <= 20, got %d", w)
	}
	if !strings.HasSuffix(line, ellipsis) {
		t.Fatalf("expected ellipsis, got %q", line)
	}
	if got := len(Full(st, 20)); got != len(Full(st, 0)) {
		t.Fatalf("truncation changed line count: %d", got)
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
