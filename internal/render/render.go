// Package render turns a session snapshot into screen lines.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/casedrill/internal/game"
	"github.com/verte-zerg/casedrill/internal/keys"
	"github.com/verte-zerg/casedrill/internal/model"
)

const (
	margin   = "  "
	ruleLen  = 40
	ellipsis = "…"
	title    = "Naming Convention Practice"
)

// Input rows depend only on phase and difficulty.
const (
	nameInputRow         = 4
	practiceInputRowHard = 10
	// The hint line and its spacer sit above the answer in Normal mode.
	practiceInputRowNormal = practiceInputRowHard + 2
)

var (
	ruleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	correctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	wrongStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// Full returns every line of the screen for the current phase. Plain
// lines wider than width are truncated; width <= 0 disables truncation.
func Full(st game.State, width int) []string {
	switch st.Phase {
	case game.EnteringName:
		return nameScreen(st, width)
	case game.SelectingMode:
		return modeScreen(st, width)
	case game.Practicing:
		return practiceScreen(st, width)
	case game.AwaitingAcknowledgment:
		return feedbackScreen(st, width)
	case game.ScoreResetNotice:
		return scoreResetScreen()
	default:
		return nil
	}
}

// InputRow returns the row of the editable line, if the phase has one.
func InputRow(st game.State) (int, bool) {
	switch st.Phase {
	case game.EnteringName:
		return nameInputRow, true
	case game.Practicing:
		if st.Difficulty == model.Normal {
			return practiceInputRowNormal, true
		}
		return practiceInputRowHard, true
	default:
		return 0, false
	}
}

// InputLine renders only the editable line. It equals Full(st, width)[row].
func InputLine(st game.State, width int) string {
	switch st.Phase {
	case game.EnteringName:
		return plain(width, "> %s", st.Name)
	case game.Practicing:
		return plain(width, "Answer: %s", st.Typed)
	default:
		return ""
	}
}

// Text joins screen lines for display.
func Text(lines []string) string {
	return strings.Join(lines, "\n")
}

func nameScreen(st game.State, width int) []string {
	return []string{
		"",
		plain(width, "%s", title),
		"",
		plain(width, "What is your name?"),
		InputLine(st, width),
		"",
		footer(keys.Default.Quit),
	}
}

func modeScreen(st game.State, width int) []string {
	k := keys.Default
	return []string{
		"",
		plain(width, "Hello, %s!", st.Name),
		"",
		plain(width, "Select difficulty:"),
		"",
		option(k.SelectNormal),
		option(k.SelectHard),
		"",
		plain(width, "Press 1 or 2 to select"),
		"",
		footer(k.Restart, k.Quit),
	}
}

func practiceScreen(st game.State, width int) []string {
	lines := []string{
		"",
		"",
		rule(),
		"",
		plain(width, "Words:  %s", st.Challenge.Phrase()),
		"",
		plain(width, "Task:   Convert to %s", st.Challenge.Style.Name),
		"",
		rule(),
		"",
	}
	if st.Difficulty == model.Normal {
		hint := strings.TrimPrefix(plain(width, "Hint:   %s", st.Challenge.Expected), margin)
		lines = append(lines, margin+hintStyle.Render(hint), "")
	}
	k := keys.Default
	return append(lines,
		InputLine(st, width),
		"",
		plain(width, "Score: %d", st.Score),
		"",
		footer(k.ResetScore, k.Restart, k.Quit),
	)
}

func feedbackScreen(st game.State, width int) []string {
	fb := st.Feedback
	var banner, scoreLine string
	switch fb.Outcome {
	case game.Correct:
		banner = correctStyle.Render("✓ CORRECT!")
		scoreLine = plain(width, "Score: %d", fb.Score)
	case game.Lost:
		banner = wrongStyle.Render("✗ YOU LOSE!")
		scoreLine = plain(width, "Score reset to 0")
	default:
		banner = wrongStyle.Render("✗ Wrong")
		scoreLine = plain(width, "Score: %d", fb.Score)
	}
	return []string{
		"",
		"",
		rule(),
		"",
		margin + banner,
		"",
		rule(),
		"",
		plain(width, "Style:      %s", fb.Style),
		plain(width, "Answer:     %s", fb.Expected),
		plain(width, "You typed:  %s", fb.Typed),
		"",
		scoreLine,
		"",
		plain(width, "Press Enter to continue..."),
	}
}

func scoreResetScreen() []string {
	return []string{
		"",
		"",
		margin + "Score reset to 0!",
		"",
		margin + "Press any key to continue...",
	}
}

func option(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("%s%s. %s", margin, h.Key, h.Desc)
}

func footer(bindings ...key.Binding) string {
	return margin + footerStyle.Render(keys.Legend(bindings...))
}

func rule() string {
	return margin + ruleStyle.Render(strings.Repeat("━", ruleLen))
}

func plain(width int, format string, args ...any) string {
	return truncate(margin+fmt.Sprintf(format, args...), width)
}

func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}
