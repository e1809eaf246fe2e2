// Package generator builds practice challenges.
package generator

import (
	"math/rand"
	"strings"
	"time"

	"github.com/verte-zerg/casedrill/internal/casing"
)

const (
	// MinWords is the smallest phrase length.
	MinWords = 2
	// MaxWords is the largest phrase length.
	MaxWords = 4
)

// Source provides uniform random integers in [0, n).
type Source interface {
	Intn(n int) int
}

// Challenge is one round's phrase, target style and expected answer.
// It is built once by Generate and never modified.
type Challenge struct {
	Words    []string
	Style    casing.Style
	Expected string
}

// NewChallenge builds a challenge and computes its expected answer.
func NewChallenge(words []string, style casing.Style) Challenge {
	w := make([]string, len(words))
	copy(w, words)
	return Challenge{
		Words:    w,
		Style:    style,
		Expected: style.Apply(strings.Join(w, " ")),
	}
}

// Phrase returns the words joined with single spaces.
func (c Challenge) Phrase() string {
	return strings.Join(c.Words, " ")
}

// Generator produces randomized challenges.
type Generator struct {
	rnd    Source
	words  []string
	styles []casing.Style
}

// New returns a Generator seeded with the current time.
func New(words []string, styles []casing.Style) *Generator {
	return NewWithSource(rand.New(rand.NewSource(time.Now().UnixNano())), words, styles)
}

// NewWithSource returns a Generator drawing from src.
func NewWithSource(src Source, words []string, styles []casing.Style) *Generator {
	return &Generator{rnd: src, words: words, styles: styles}
}

// Generate draws 2-4 words with replacement and one style, all uniformly.
func (g *Generator) Generate() Challenge {
	count := MinWords + g.rnd.Intn(MaxWords-MinWords+1)
	words := make([]string, 0, count)
	for i := 0; i < count; i++ {
		words = append(words, g.words[g.rnd.Intn(len(g.words))])
	}
	style := g.styles[g.rnd.Intn(len(g.styles))]
	return NewChallenge(words, style)
}
