// Package game implements the practice session state machine.
package game

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/casedrill/internal/generator"
	"github.com/verte-zerg/casedrill/internal/keys"
	"github.com/verte-zerg/casedrill/internal/model"
)

// Phase is the screen the session is on.
type Phase int

// Session phases. AwaitingAcknowledgment and ScoreResetNotice are
// sub-states of practicing that wait for a key before the next round.
const (
	EnteringName Phase = iota
	SelectingMode
	Practicing
	AwaitingAcknowledgment
	ScoreResetNotice
)

func (p Phase) String() string {
	switch p {
	case EnteringName:
		return "entering-name"
	case SelectingMode:
		return "selecting-mode"
	case Practicing:
		return "practicing"
	case AwaitingAcknowledgment:
		return "awaiting-acknowledgment"
	case ScoreResetNotice:
		return "score-reset-notice"
	default:
		return "unknown"
	}
}

// Redraw tells the caller how much of the screen changed.
type Redraw int

const (
	// RedrawNone means nothing visible changed.
	RedrawNone Redraw = iota
	// RedrawPartial means only the input line changed.
	RedrawPartial
	// RedrawFull means the whole screen must be cleared and redrawn.
	RedrawFull
)

// Effect is the result of handling one key press.
type Effect struct {
	Redraw Redraw
	Quit   bool
	// Round is set when an answer was evaluated.
	Round *model.Round
}

// Outcome classifies an evaluated answer.
type Outcome int

const (
	// Correct means the answer matched.
	Correct Outcome = iota
	// Wrong is a miss in Normal mode; the score is kept.
	Wrong
	// Lost is a miss in Hard mode; the score went back to zero.
	Lost
)

// Feedback describes the last evaluated answer.
type Feedback struct {
	Outcome  Outcome
	Style    string
	Expected string
	Typed    string
	Score    int
}

// ChallengeSource creates new challenges.
type ChallengeSource interface {
	Generate() generator.Challenge
}

// State is a read-only snapshot of the session used for rendering.
type State struct {
	Phase      Phase
	Name       string
	Difficulty model.Difficulty
	Score      int
	Challenge  generator.Challenge
	Typed      string
	Feedback   Feedback
}

// Session owns all mutable game state.
type Session struct {
	gen  ChallengeSource
	keys keys.KeyMap

	phase      Phase
	name       string
	difficulty model.Difficulty
	score      int
	challenge  generator.Challenge
	typed      string
	feedback   Feedback
}

// New returns a session on the name entry screen.
func New(gen ChallengeSource) *Session {
	return &Session{gen: gen, keys: keys.Default}
}

// State returns a snapshot of the current state.
func (s *Session) State() State {
	return State{
		Phase:      s.phase,
		Name:       s.name,
		Difficulty: s.difficulty,
		Score:      s.score,
		Challenge:  s.challenge,
		Typed:      s.typed,
		Feedback:   s.feedback,
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Handle applies one key press and reports what changed.
func (s *Session) Handle(k Key) Effect {
	switch s.phase {
	case AwaitingAcknowledgment:
		if !matches(k, s.keys.Submit) {
			return Effect{}
		}
		s.nextChallenge()
		s.phase = Practicing
		return Effect{Redraw: RedrawFull}
	case ScoreResetNotice:
		s.phase = Practicing
		return Effect{Redraw: RedrawFull}
	}

	switch {
	case matches(k, s.keys.Quit):
		return Effect{Quit: true}
	case matches(k, s.keys.ResetScore):
		if s.phase != Practicing {
			return Effect{}
		}
		s.ResetScore()
		return Effect{Redraw: RedrawFull}
	case matches(k, s.keys.Restart):
		if s.phase == EnteringName {
			return Effect{}
		}
		s.Restart()
		return Effect{Redraw: RedrawFull}
	case k.Ctrl:
		return Effect{}
	}

	switch s.phase {
	case EnteringName:
		return s.handleName(k)
	case SelectingMode:
		return s.handleMode(k)
	case Practicing:
		return s.handleAnswer(k)
	}
	return Effect{}
}

// ResetScore zeroes the score and replaces the challenge. The notice
// screen stays up until the next key press.
func (s *Session) ResetScore() {
	s.score = 0
	s.nextChallenge()
	s.phase = ScoreResetNotice
}

// Restart puts the session back to its initial values in place.
func (s *Session) Restart() {
	s.phase = EnteringName
	s.name = ""
	s.difficulty = model.Unselected
	s.score = 0
	s.challenge = generator.Challenge{}
	s.typed = ""
	s.feedback = Feedback{}
}

func (s *Session) handleName(k Key) Effect {
	switch {
	case matches(k, s.keys.Submit):
		// Literal emptiness: a name of only spaces is accepted.
		if s.name == "" {
			return Effect{}
		}
		s.phase = SelectingMode
		return Effect{Redraw: RedrawFull}
	case matches(k, s.keys.Erase):
		s.name = dropLastRune(s.name)
		return Effect{Redraw: RedrawPartial}
	case k.Code == KeyRune:
		text := printable(k.Runes)
		if text == "" {
			return Effect{}
		}
		s.name += text
		return Effect{Redraw: RedrawPartial}
	}
	return Effect{}
}

func (s *Session) handleMode(k Key) Effect {
	switch {
	case matches(k, s.keys.SelectNormal):
		s.selectMode(model.Normal)
	case matches(k, s.keys.SelectHard):
		s.selectMode(model.Hard)
	default:
		return Effect{}
	}
	return Effect{Redraw: RedrawFull}
}

func (s *Session) selectMode(d model.Difficulty) {
	s.difficulty = d
	s.nextChallenge()
	s.phase = Practicing
}

func (s *Session) handleAnswer(k Key) Effect {
	switch {
	case matches(k, s.keys.Submit):
		round := s.evaluate()
		return Effect{Redraw: RedrawFull, Round: &round}
	case matches(k, s.keys.Erase):
		s.typed = dropLastRune(s.typed)
		return Effect{Redraw: RedrawPartial}
	case k.Code == KeyRune:
		text := printable(k.Runes)
		if text == "" {
			return Effect{}
		}
		s.typed += text
		return Effect{Redraw: RedrawPartial}
	}
	return Effect{}
}

func (s *Session) evaluate() model.Round {
	correct := Check(s.typed, s.challenge.Expected)
	outcome := Correct
	switch {
	case correct:
		s.score++
	case s.difficulty == model.Hard:
		s.score = 0
		outcome = Lost
	default:
		outcome = Wrong
	}
	s.feedback = Feedback{
		Outcome:  outcome,
		Style:    s.challenge.Style.Name,
		Expected: s.challenge.Expected,
		Typed:    s.typed,
		Score:    s.score,
	}
	s.phase = AwaitingAcknowledgment
	return model.Round{
		Player:     s.name,
		Difficulty: s.difficulty,
		Style:      s.challenge.Style.Name,
		Phrase:     s.challenge.Phrase(),
		Expected:   s.challenge.Expected,
		Typed:      s.typed,
		Correct:    correct,
		ScoreAfter: s.score,
	}
}

func (s *Session) nextChallenge() {
	s.challenge = s.gen.Generate()
	s.typed = ""
}

// Check reports whether typed matches expected after trimming surrounding
// whitespace. Case and inner whitespace must match exactly.
func Check(typed, expected string) bool {
	return strings.TrimSpace(typed) == expected
}

func dropLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

func printable(runes []rune) string {
	var b strings.Builder
	for _, r := range runes {
		if unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// matches keeps pasted text such as "esc" from triggering a binding.
func matches(k Key, b ...key.Binding) bool {
	if k.Code == KeyRune && len(k.Runes) != 1 {
		return false
	}
	return key.Matches(k, b...)
}
